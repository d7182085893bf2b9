package bough

import (
	"image"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	whiteOnce sync.Once
	// whiteSub is the 1x1 interior of a 3x3 white image; sampling away from
	// the edges avoids bleeding at quad borders.
	whiteSub *ebiten.Image
)

func whiteImage() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(image.White)
		whiteSub = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

// EbitenRenderer implements Renderer on top of an *ebiten.Image. GUI space is
// Y-up; the renderer flips it against the target's height.
type EbitenRenderer struct {
	target *ebiten.Image
	dst    *ebiten.Image
	blend  ebiten.Blend

	verts []ebiten.Vertex
	inds  []uint16
}

// NewEbitenRenderer creates a renderer drawing onto target.
func NewEbitenRenderer(target *ebiten.Image) *EbitenRenderer {
	return &EbitenRenderer{
		target: target,
		dst:    target,
		blend:  ebiten.BlendSourceOver,
		verts:  make([]ebiten.Vertex, 0, 16),
		inds:   make([]uint16, 0, 24),
	}
}

// SetTarget retargets the renderer, e.g. to a new frame's screen image.
func (r *EbitenRenderer) SetTarget(target *ebiten.Image) {
	r.target = target
	r.dst = target
}

// flipY converts a GUI-space y to image space.
func (r *EbitenRenderer) flipY(y float64) float32 {
	return float32(float64(r.target.Bounds().Dy()) - y)
}

// SetScissor implements Renderer by drawing into a sub-image.
func (r *EbitenRenderer) SetScissor(rect Rect) {
	h := float64(r.target.Bounds().Dy())
	clip := image.Rect(
		int(math.Floor(rect.X)),
		int(math.Floor(h-(rect.Y+rect.Height))),
		int(math.Ceil(rect.X+rect.Width)),
		int(math.Ceil(h-rect.Y)),
	).Intersect(r.target.Bounds())
	r.dst = r.target.SubImage(clip).(*ebiten.Image)
}

// DisableScissor implements Renderer.
func (r *EbitenRenderer) DisableScissor() {
	r.dst = r.target
}

// SetBlending implements Renderer.
func (r *EbitenRenderer) SetBlending(enabled bool) {
	if enabled {
		r.blend = ebiten.BlendSourceOver
	} else {
		r.blend = ebiten.BlendCopy
	}
}

// DrawQuad implements Renderer.
func (r *EbitenRenderer) DrawQuad(corners [4]Vec2, colors [4]Color) {
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	r.appendQuad(corners, colors)
	r.flush()
}

// DrawQuadOutline implements Renderer via OutlineQuads.
func (r *EbitenRenderer) DrawQuadOutline(corners [4]Vec2, c Color, width float64) {
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	colors := [4]Color{c, c, c, c}
	for _, q := range OutlineQuads(corners, width) {
		r.appendQuad(q, colors)
	}
	r.flush()
}

func (r *EbitenRenderer) appendQuad(corners [4]Vec2, colors [4]Color) {
	base := uint16(len(r.verts))
	for i, p := range corners {
		c := colors[i]
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   r.flipY(p.Y),
			SrcX:   1.5,
			SrcY:   1.5,
			ColorR: float32(c.R),
			ColorG: float32(c.G),
			ColorB: float32(c.B),
			ColorA: float32(c.A),
		})
	}
	r.inds = append(r.inds, base, base+1, base+2, base, base+2, base+3)
}

func (r *EbitenRenderer) flush() {
	if len(r.inds) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{Blend: r.blend}
	r.dst.DrawTriangles(r.verts, r.inds, whiteImage(), op)
}

// ReadEbitenInput polls ebiten for one frame of GUI input. screenHeight flips
// ebiten's Y-down cursor into GUI space.
func ReadEbitenInput(screenHeight float64) (Vec2, MouseState, []KeyEvent) {
	mx, my := ebiten.CursorPosition()
	cursor := Vec2{float64(mx), screenHeight - float64(my)}

	state := MouseNone
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		state = MouseClick
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		state = MouseRelease
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		state = MouseActive
	}

	var keys []KeyEvent
	pressed := inpututil.AppendJustPressedKeys(nil)
	if len(pressed) > 0 {
		shifted := ebiten.IsKeyPressed(ebiten.KeyShift)
		keys = make([]KeyEvent, len(pressed))
		for i, k := range pressed {
			keys[i] = KeyEvent{Key: int(k), Shifted: shifted}
		}
	}
	return cursor, state, keys
}

// Update feeds one frame of input into the tree: a queued synthetic frame if
// one is pending, otherwise ebiten's live input. Call from ebiten.Game.Update.
func (s *System) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if s.processInjectedInput() {
		return
	}
	s.UpdateInput(ReadEbitenInput(s.root.baseHeight))
}

// Draw renders the tree onto screen. Call from ebiten.Game.Draw.
func (s *System) Draw(screen *ebiten.Image) {
	if s.ebitenRenderer == nil {
		s.ebitenRenderer = NewEbitenRenderer(screen)
	} else {
		s.ebitenRenderer.SetTarget(screen)
	}
	s.Render(s.ebitenRenderer)
	s.flushScreenshots(screen)
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Background fills the screen before the GUI is drawn.
	Background Color
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	// Update, if set, runs once per tick after input has been dispatched.
	// Returning an error stops the loop.
	Update func() error
}

type game struct {
	sys *System
	cfg RunConfig
	fps *fpsOverlay
}

func (g *game) Update() error {
	g.sys.Update()
	if g.cfg.Update != nil {
		return g.cfg.Update()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background.toRGBA())
	g.sys.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if float64(outsideWidth) != g.sys.root.width || float64(outsideHeight) != g.sys.root.height {
		g.sys.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives sys until the window closes or
// RunConfig.Update returns an error.
func Run(sys *System, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = int(sys.root.width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(sys.root.height)
	}
	g := &game{sys: sys, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay(sys)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
