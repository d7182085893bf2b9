package bough

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Commonly used colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
)

// toRGBA converts to a premultiplied color.RGBA for image fills.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// Vec2 is a 2D vector used for cursor positions, widget positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in GUI space. The origin is the
// bottom-left corner of the viewport with Y increasing upward, matching the
// host engine's GL viewport.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersect returns the overlap of r and other. Disjoint rectangles yield a
// zero-size rectangle positioned at the clamped origin.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Options is a bitmask of per-widget behavior flags.
type Options uint16

const (
	OptionDefault     Options = 0
	OptionCenterX     Options = 1  // center horizontally in the parent, ignoring X
	OptionCenterY     Options = 2  // center vertically in the parent, ignoring Y
	OptionNoNormalize Options = 4  // position and size are pixels, not parent fractions
	OptionNoTheme     Options = 8  // ignore the system theme, use built-in defaults
	OptionNoFocus     Options = 16 // clicking does not take focus

	OptionCentered = OptionCenterX | OptionCenterY
)

// MouseState is the pointer state the host reports for one frame.
type MouseState uint8

const (
	MouseNone    MouseState = 0 // no button activity
	MouseClick   MouseState = 1 // button went down this frame
	MouseRelease MouseState = 2 // button went up this frame
	MouseActive  MouseState = 4 // button held down
)

// String returns the lowercase name of the state.
func (m MouseState) String() string {
	switch m {
	case MouseNone:
		return "none"
	case MouseClick:
		return "click"
	case MouseRelease:
		return "release"
	case MouseActive:
		return "active"
	default:
		return "unknown"
	}
}

// KeyEvent is one key press forwarded by the host. Key is the host's key
// code; the toolkit never interprets it.
type KeyEvent struct {
	Key     int
	Shifted bool
}

// WidgetType distinguishes drawing and interaction behavior for a Widget.
type WidgetType uint8

const (
	WidgetTypeContainer   WidgetType = iota // groups children, draws nothing itself
	WidgetTypeFrame                         // colored quad with optional border
	WidgetTypeScrollFrame                   // clipping frame that grows scrollbars on overflow
	WidgetTypeScrollbar                     // slot and slider pair
)

// String returns the name of the widget type.
func (t WidgetType) String() string {
	switch t {
	case WidgetTypeContainer:
		return "container"
	case WidgetTypeFrame:
		return "frame"
	case WidgetTypeScrollFrame:
		return "scrollframe"
	case WidgetTypeScrollbar:
		return "scrollbar"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of widget interaction forwarded to an EventStore.
type EventType uint8

const (
	EventClick      EventType = iota // pointer clicked inside the widget
	EventRelease                     // pointer released inside the widget
	EventActive                      // pointer held inside the widget
	EventMouseEnter                  // pointer entered the widget's bounds
	EventMouseExit                   // pointer left the widget's bounds
	EventKey                         // key forwarded to a hovered widget
	EventScroll                      // scrollbar moved its slider this frame
)
