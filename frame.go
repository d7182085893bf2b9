package bough

// FrameThemeSection is the theme section frames and scroll frames read.
const FrameThemeSection = "Frame"

// frameThemeDefaults are the built-in Frame options.
var frameThemeDefaults = map[string]any{
	"Color1":      Color{0, 0, 0, 0},
	"Color2":      Color{0, 0, 0, 0},
	"Color3":      Color{0, 0, 0, 0},
	"Color4":      Color{0, 0, 0, 0},
	"BorderSize":  0.0,
	"BorderColor": Color{0, 0, 0, 1},
}

// FrameConfig configures a frame or scroll frame.
type FrameConfig struct {
	WidgetConfig

	// Border is the outline width in pixels. Zero uses the theme's BorderSize.
	Border float64
}

// Frame holds the appearance of a frame widget.
type Frame struct {
	// Colors are the fill colors at the bottom-left, bottom-right, top-right
	// and top-left corners.
	Colors [4]Color
	// BorderColor is the outline color.
	BorderColor Color
	// Border is the outline width in pixels; 0 disables the outline.
	Border float64
}

// SetColor fills the frame with a single color.
func (f *Frame) SetColor(c Color) {
	f.Colors = [4]Color{c, c, c, c}
}

// NewFrame creates a frame and attaches it to parent.
func NewFrame(parent *Widget, cfg FrameConfig) (*Widget, error) {
	w := newFrameWidget(parent, WidgetTypeFrame, cfg)
	if err := parent.Attach(w); err != nil {
		return nil, err
	}
	return w, nil
}

func newFrameWidget(parent *Widget, typ WidgetType, cfg FrameConfig) *Widget {
	w := newWidget(typ, cfg.WidgetConfig)
	w.applyTheme(parent.system, FrameThemeSection, cfg.SubTheme, frameThemeDefaults, cfg.Theme)
	w.Frame = &Frame{
		Colors: [4]Color{
			themeColor(w.Theme, "Color1"),
			themeColor(w.Theme, "Color2"),
			themeColor(w.Theme, "Color3"),
			themeColor(w.Theme, "Color4"),
		},
		BorderColor: themeColor(w.Theme, "BorderColor"),
		Border:      cfg.Border,
	}
	if w.Frame.Border == 0 {
		w.Frame.Border = themeFloat(w.Theme, "BorderSize")
	}
	return w
}

// drawFrame issues the fill quad and, when the border is set, the outline.
func drawFrame(w *Widget, rc *renderContext) {
	f := w.Frame
	corners := w.Corners()
	rc.r.DrawQuad(corners, f.Colors)
	if f.Border > 0 {
		rc.r.DrawQuadOutline(corners, f.BorderColor, f.Border)
	}
}
