package bough

import "math"

// ScrollbarThemeSection is the theme section scrollbars read.
const ScrollbarThemeSection = "Scrollbar"

// scrollbarThemeDefaults are the built-in Scrollbar options.
var scrollbarThemeDefaults = map[string]any{
	"SlotColor1":        Color{0.2, 0.2, 0.2, 1},
	"SlotColor2":        Color{0.2, 0.2, 0.2, 1},
	"SlotColor3":        Color{0.2, 0.2, 0.2, 1},
	"SlotColor4":        Color{0.2, 0.2, 0.2, 1},
	"SlotBorderSize":    1.0,
	"SlotBorderColor":   Color{0, 0, 0, 1},
	"SliderColor1":      Color{0.4, 0.4, 0.4, 1},
	"SliderColor2":      Color{0.4, 0.4, 0.4, 1},
	"SliderColor3":      Color{0.4, 0.4, 0.4, 1},
	"SliderColor4":      Color{0.4, 0.4, 0.4, 1},
	"SliderBorderSize":  1.0,
	"SliderBorderColor": Color{0, 0, 0, 1},
}

// scrollEpsilon absorbs the rounding left over from converting the slider's
// normalized position back to pixels.
const scrollEpsilon = 1e-9

// ScrollState is the interaction state of a scrollbar.
type ScrollState uint8

const (
	ScrollIdle     ScrollState = iota // not being scrolled
	ScrollJumping                     // slot clicked; slider will center under the cursor
	ScrollDragging                    // slider follows the cursor at the grab offset
)

// ScrollbarConfig configures a scrollbar.
type ScrollbarConfig struct {
	WidgetConfig

	// Horizontal makes the slider travel along X. Scrollbars are vertical
	// by default.
	Horizontal bool
}

// Scrollbar is a slot (the track) containing a movable slider. While the
// pointer drags it, the slider follows the cursor, clamped to the slot, and
// OnScroll fires once per frame in which it moved.
type Scrollbar struct {
	widget *Widget
	slot   *Widget
	slider *Widget

	vertical bool
	state    ScrollState
	offset   float64 // pixels from the slider's near edge to the grab point
	change   float64 // slider movement during the last drawn frame

	// OnScroll runs once per frame in which the slider moved. The argument
	// is the scrollbar widget; read Bar.Change for the movement.
	OnScroll func(*Widget)
}

// NewScrollbar creates a scrollbar and attaches it to parent.
func NewScrollbar(parent *Widget, cfg ScrollbarConfig) (*Widget, error) {
	w := newWidget(WidgetTypeScrollbar, cfg.WidgetConfig)
	w.applyTheme(parent.system, ScrollbarThemeSection, cfg.SubTheme, scrollbarThemeDefaults, cfg.Theme)
	if err := parent.Attach(w); err != nil {
		return nil, err
	}

	bar := &Scrollbar{widget: w, vertical: !cfg.Horizontal}
	w.Bar = bar

	// Child names derive from w.Name, which is unique among its siblings, and
	// w has no other children yet, so these attaches cannot fail.
	bar.slot = newWidget(WidgetTypeFrame, WidgetConfig{Name: w.Name + "_slot", Size: Vec2{1, 1}})
	bar.slot.Frame = &Frame{
		Colors: [4]Color{
			themeColor(w.Theme, "SlotColor1"),
			themeColor(w.Theme, "SlotColor2"),
			themeColor(w.Theme, "SlotColor3"),
			themeColor(w.Theme, "SlotColor4"),
		},
		BorderColor: themeColor(w.Theme, "SlotBorderColor"),
		Border:      themeFloat(w.Theme, "SlotBorderSize"),
	}
	bar.slot.clickHook = bar.jumpToPoint
	w.attachChild(bar.slot)

	bar.slider = newWidget(WidgetTypeFrame, WidgetConfig{Name: w.Name + "_slider", Size: Vec2{1, 1}})
	bar.slider.Frame = &Frame{
		Colors: [4]Color{
			themeColor(w.Theme, "SliderColor1"),
			themeColor(w.Theme, "SliderColor2"),
			themeColor(w.Theme, "SliderColor3"),
			themeColor(w.Theme, "SliderColor4"),
		},
		BorderColor: themeColor(w.Theme, "SliderBorderColor"),
		Border:      themeFloat(w.Theme, "SliderBorderSize"),
	}
	bar.slider.clickHook = bar.beginDrag
	bar.slot.attachChild(bar.slider)

	return w, nil
}

// Vertical reports whether the slider travels along Y.
func (b *Scrollbar) Vertical() bool { return b.vertical }

// State returns the current interaction state.
func (b *Scrollbar) State() ScrollState { return b.state }

// IsScrolling reports whether the scrollbar is consuming pointer frames.
func (b *Scrollbar) IsScrolling() bool { return b.state != ScrollIdle }

// Change returns the slider movement during the last drawn frame: pixels when
// the scrollbar has OptionNoNormalize, otherwise a fraction of the slot length.
func (b *Scrollbar) Change() float64 { return b.change }

// Slot returns the track widget.
func (b *Scrollbar) Slot() *Widget { return b.slot }

// Slider returns the movable widget.
func (b *Scrollbar) Slider() *Widget { return b.slider }

// SliderSize returns the slider length as a fraction of the slot.
func (b *Scrollbar) SliderSize() float64 {
	if b.vertical {
		return b.slider.height
	}
	return b.slider.width
}

// SetSliderSize sets the slider length as a fraction of the slot.
func (b *Scrollbar) SetSliderSize(size float64) {
	if b.vertical {
		b.slider.SetHeight(size)
	} else {
		b.slider.SetWidth(size)
	}
}

// SliderPosition returns the slider's offset along the slot as a fraction.
func (b *Scrollbar) SliderPosition() float64 {
	if b.vertical {
		return b.slider.y
	}
	return b.slider.x
}

// SetSliderPosition moves the slider along the slot without firing OnScroll.
func (b *Scrollbar) SetSliderPosition(pos float64) {
	if b.vertical {
		b.slider.SetY(pos)
	} else {
		b.slider.SetX(pos)
	}
}

// jumpToPoint runs when the slot is clicked: the slider will center itself
// under the cursor on the next frame.
func (b *Scrollbar) jumpToPoint(*Widget) {
	if b.state != ScrollIdle {
		return
	}
	b.state = ScrollJumping
	if b.vertical {
		b.offset = b.slider.baseHeight / 2
	} else {
		b.offset = b.slider.baseWidth / 2
	}
}

// beginDrag runs when the slider is clicked. The slot is dispatched first, so
// this replaces a jump started by the same click.
func (b *Scrollbar) beginDrag(*Widget) {
	s := b.widget.system
	if s == nil {
		return
	}
	b.state = ScrollDragging
	if b.vertical {
		b.offset = s.cursor.Y - b.slider.baseY
	} else {
		b.offset = s.cursor.X - b.slider.baseX
	}
}

// update moves the slider toward the cursor. Called once per draw.
func (b *Scrollbar) update(s *System) {
	if b.state == ScrollIdle {
		b.change = 0
		return
	}
	if s.clickState != MouseClick && s.clickState != MouseActive {
		b.state = ScrollIdle
		b.change = 0
		return
	}
	if b.state == ScrollJumping {
		b.state = ScrollDragging
	}

	w := b.widget
	var lo, hi, cursor, current, length float64
	if b.vertical {
		lo = w.baseY
		hi = w.baseY + w.baseHeight - b.slider.baseHeight
		cursor = s.cursor.Y
		current = b.slider.baseY
		length = w.baseHeight
	} else {
		lo = w.baseX
		hi = w.baseX + w.baseWidth - b.slider.baseWidth
		cursor = s.cursor.X
		current = b.slider.baseX
		length = w.baseWidth
	}

	target := math.Min(hi, math.Max(cursor-b.offset, lo))
	change := target - current
	if math.Abs(change) < scrollEpsilon || length == 0 {
		b.change = 0
		return
	}

	b.SetSliderPosition(b.SliderPosition() + change/length)
	if w.Options&OptionNoNormalize != 0 {
		b.change = change
	} else {
		b.change = change / length
	}
	w.fire(b.OnScroll)
	s.emit(EventScroll, w, KeyEvent{}, b.change)
}
