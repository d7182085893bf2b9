// Package bough is a retained-mode GUI widget toolkit for game render loops.
//
// Bough keeps a tree of widgets rooted at [System.Root]. Each frame the host
// feeds pointer and key input through [System.UpdateInput] and draws the
// tree with [System.Render]. Drawing goes through the [Renderer] interface;
// an [Ebitengine] implementation ships in this package and an OpenGL one in
// bough/backend/opengl.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and drives
// the system for you:
//
//	sys := bough.NewSystem(bough.SystemConfig{Width: 640, Height: 480})
//	// ... add widgets ...
//	bough.Run(sys, bough.RunConfig{Title: "My Game"})
//
// For full control, call [System.Update] and [System.Draw] from your own
// [ebiten.Game], or [System.UpdateInput] and [System.Render] from any loop.
//
// # Coordinates
//
// GUI space has its origin at the bottom-left of the viewport with Y up.
// A widget's position and size are fractions of its parent's size unless
// it has [OptionNoNormalize], in which case they are pixels relative to the
// parent. The resolved pixel rectangle is available through [Widget.BaseRect]
// and is kept current whenever the widget or an ancestor changes.
//
//	panel, _ := bough.NewFrame(sys.Root(), bough.FrameConfig{
//		WidgetConfig: bough.WidgetConfig{
//			Name: "panel",
//			Pos:  bough.Vec2{X: 0.1, Y: 0.1},
//			Size: bough.Vec2{X: 0.5, Y: 0.5},
//		},
//	})
//
// # Input
//
// Each frame the pointer is dispatched from the root down through every
// widget it is over, parents before children and in ascending z-order.
// Widgets receive OnHover, OnClick, OnRelease, OnActive, OnMouseEnter and
// OnMouseExit callbacks, and the deepest clicked widget takes focus. Keys
// go to hovered widgets only.
//
// # Scrolling
//
// A [ScrollFrame] clips its children and adds a [Scrollbar] along each axis
// its content overflows. Dragging the slider shifts the content.
//
// # Animation
//
// [Widget.Animate] moves a numeric attribute to a target over a wall-clock
// duration using [gween]. Steps are applied as deltas, so concurrent
// animations on the same attribute compose.
//
// # Themes
//
// Widget appearance comes from a [Theme], usually loaded from YAML with
// [LoadThemeYAML]. Per-widget overrides go in [WidgetConfig.Theme].
//
// # ECS integration
//
// Widget events can be published into a [Donburi] world through the adapter
// in bough/ecs; see [System.SetEventStore].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package bough
