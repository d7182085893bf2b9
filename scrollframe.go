package bough

// ScrollbarThickness is the cross-axis size in pixels of the scrollbars a
// scroll frame creates.
const ScrollbarThickness = 10.0

// Overflow records which axes of a scroll frame's content exceed its extent.
type Overflow uint8

const (
	OverflowNone       Overflow = 0
	OverflowHorizontal Overflow = 1
	OverflowVertical   Overflow = 2
	OverflowBoth                = OverflowHorizontal | OverflowVertical
)

// Bounds is an axis-aligned box in a scroll frame's local pixel space, where
// (0, 0) is the frame's bottom-left corner.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// ScrollFrame is a frame that clips its children and adds a scrollbar on each
// axis where the children extend past its edges. Dragging a scrollbar shifts
// every other child the opposite way.
type ScrollFrame struct {
	widget   *Widget
	bounds   Bounds
	overflow Overflow
	outdated bool

	vbar, hbar *Widget
	// Visible extent divided by content extent, captured when each scrollbar
	// was created and kept for its lifetime.
	vFactor, hFactor float64
}

// NewScrollFrame creates a scroll frame and attaches it to parent. It uses
// the Frame theme section.
func NewScrollFrame(parent *Widget, cfg FrameConfig) (*Widget, error) {
	w := newFrameWidget(parent, WidgetTypeScrollFrame, cfg)
	w.Scroll = &ScrollFrame{widget: w}
	if err := parent.Attach(w); err != nil {
		return nil, err
	}
	w.Scroll.bounds = Bounds{MaxX: w.baseWidth, MaxY: w.baseHeight}
	return w, nil
}

// Bounds returns the box computed by the last DetermineBounds.
func (sf *ScrollFrame) Bounds() Bounds { return sf.bounds }

// Overflow returns the overflow computed by the last DetermineBounds.
func (sf *ScrollFrame) Overflow() Overflow { return sf.overflow }

// VerticalScrollbar returns the vertical scrollbar, or nil.
func (sf *ScrollFrame) VerticalScrollbar() *Widget { return sf.vbar }

// HorizontalScrollbar returns the horizontal scrollbar, or nil.
func (sf *ScrollFrame) HorizontalScrollbar() *Widget { return sf.hbar }

// Outdated reports whether the bounds will be recomputed on the next draw.
func (sf *ScrollFrame) Outdated() bool { return sf.outdated }

// MarkOutdated schedules a bounds recomputation for the next draw. Attaching
// or detaching children does this automatically; call it after moving or
// resizing children.
func (sf *ScrollFrame) MarkOutdated() { sf.outdated = true }

func (sf *ScrollFrame) vbarName() string { return sf.widget.Name + "_vsb" }
func (sf *ScrollFrame) hbarName() string { return sf.widget.Name + "_hsb" }

// childChanged is called after a child is attached or detached. The frame's
// own scrollbars do not invalidate the bounds.
func (sf *ScrollFrame) childChanged(child *Widget) {
	if child.Type == WidgetTypeScrollbar && (child.Name == sf.vbarName() || child.Name == sf.hbarName()) {
		return
	}
	sf.outdated = true
}

// DetermineBounds recomputes the content box from scratch as the union of the
// frame's own extent and every child's rectangle, then creates or removes
// scrollbars to match.
func (sf *ScrollFrame) DetermineBounds() {
	w := sf.widget
	b := Bounds{MaxX: w.baseWidth, MaxY: w.baseHeight}
	for _, child := range w.children {
		if child == sf.vbar || child == sf.hbar {
			continue
		}
		x0 := child.baseX - w.baseX
		y0 := child.baseY - w.baseY
		b.MinX = min(b.MinX, x0)
		b.MaxX = max(b.MaxX, x0+child.baseWidth)
		b.MinY = min(b.MinY, y0)
		b.MaxY = max(b.MaxY, y0+child.baseHeight)
	}
	sf.bounds = b

	sf.overflow = OverflowNone
	if b.MinX < 0 || b.MaxX > w.baseWidth {
		sf.overflow |= OverflowHorizontal
	}
	if b.MinY < 0 || b.MaxY > w.baseHeight {
		sf.overflow |= OverflowVertical
	}

	if sf.overflow&OverflowHorizontal != 0 {
		if sf.hbar == nil {
			sf.addScrollbar(false)
		}
	} else if sf.hbar != nil {
		sf.hbar.Dispose()
		sf.hbar = nil
	}

	if sf.overflow&OverflowVertical != 0 {
		if sf.vbar == nil {
			sf.addScrollbar(true)
		}
	} else if sf.vbar != nil {
		sf.vbar.Dispose()
		sf.vbar = nil
	}
}

// addScrollbar creates the scrollbar for one axis. The vertical bar runs
// along the right edge with its slider at the top; the horizontal bar runs
// along the bottom edge with its slider at the left.
func (sf *ScrollFrame) addScrollbar(vertical bool) {
	w := sf.widget
	cfg := ScrollbarConfig{Horizontal: !vertical}
	var factor float64
	if vertical {
		t := ScrollbarThickness / max(w.baseWidth, ScrollbarThickness)
		cfg.Name = sf.vbarName()
		cfg.Size = Vec2{t, 1}
		cfg.Pos = Vec2{1 - t, 0}
		factor = w.baseHeight / sf.bounds.Height()
	} else {
		t := ScrollbarThickness / max(w.baseHeight, ScrollbarThickness)
		cfg.Name = sf.hbarName()
		cfg.Size = Vec2{1, t}
		factor = w.baseWidth / sf.bounds.Width()
	}

	bar, err := NewScrollbar(w, cfg)
	if err != nil {
		// A user child already holds the name; leave that axis without a bar.
		return
	}
	bar.Bar.SetSliderSize(factor)
	bar.Bar.OnScroll = sf.scroll
	if vertical {
		bar.Bar.SetSliderPosition(1 - factor)
		sf.vbar, sf.vFactor = bar, factor
	} else {
		bar.Bar.SetSliderPosition(0)
		sf.hbar, sf.hFactor = bar, factor
	}
}

// scroll shifts every non-scrollbar child against the slider's movement. The
// shift is a fraction of the frame's extent, converted to pixels for
// children with OptionNoNormalize.
func (sf *ScrollFrame) scroll(bar *Widget) {
	w := sf.widget
	change := bar.Bar.Change()
	for _, child := range w.ordered() {
		if child.parent != w || child == sf.vbar || child == sf.hbar {
			continue
		}
		pixels := child.Options&OptionNoNormalize != 0
		switch bar {
		case sf.vbar:
			d := change / sf.vFactor
			if pixels {
				d *= w.baseHeight
			}
			child.SetY(child.y - d)
		case sf.hbar:
			d := change / sf.hFactor
			if pixels {
				d *= w.baseWidth
			}
			child.SetX(child.x - d)
		}
	}
}
