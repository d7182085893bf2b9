package bough

import (
	"testing"
)

func newScrollFrame(t *testing.T, parent *Widget, name string, x, y, w, h float64) *Widget {
	t.Helper()
	sf, err := NewScrollFrame(parent, FrameConfig{WidgetConfig: WidgetConfig{
		Name: name, Pos: Vec2{x, y}, Size: Vec2{w, h}, Options: OptionNoNormalize,
	}})
	if err != nil {
		t.Fatalf("NewScrollFrame(%q): %v", name, err)
	}
	return sf
}

func TestScrollFrameNoOverflow(t *testing.T) {
	s, _ := newTestSystem()
	region := newScrollFrame(t, s.Root(), "region", 0, 0, 100, 100)
	pixelFrame(t, region, "child", 10, 10, 50, 50)

	s.Render(&recordRenderer{})

	sf := region.Scroll
	if sf.Overflow() != OverflowNone {
		t.Errorf("overflow = %d, want none", sf.Overflow())
	}
	if sf.Bounds() != (Bounds{0, 100, 0, 100}) {
		t.Errorf("bounds = %+v", sf.Bounds())
	}
	if sf.VerticalScrollbar() != nil || sf.HorizontalScrollbar() != nil {
		t.Error("no scrollbars expected")
	}
}

func TestScrollFrameVerticalOverflow(t *testing.T) {
	s, _ := newTestSystem()
	region := newScrollFrame(t, s.Root(), "region", 0, 0, 100, 100)
	child := pixelFrame(t, region, "child", 0, 0, 50, 150)
	sf := region.Scroll

	if !sf.Outdated() {
		t.Fatal("attaching a child should mark the bounds outdated")
	}
	s.Render(&recordRenderer{})
	if sf.Outdated() {
		t.Error("drawing should recompute the bounds")
	}

	if sf.Bounds() != (Bounds{MinX: 0, MaxX: 100, MinY: 0, MaxY: 150}) {
		t.Errorf("bounds = %+v", sf.Bounds())
	}
	if sf.Overflow() != OverflowVertical {
		t.Errorf("overflow = %d, want vertical", sf.Overflow())
	}
	vbar := sf.VerticalScrollbar()
	if vbar == nil {
		t.Fatal("expected a vertical scrollbar")
	}
	if sf.HorizontalScrollbar() != nil {
		t.Error("unexpected horizontal scrollbar")
	}
	if vbar.Name != "region_vsb" || region.Child("region_vsb") != vbar {
		t.Errorf("scrollbar name = %q", vbar.Name)
	}
	if !vbar.Bar.Vertical() {
		t.Error("scrollbar should be vertical")
	}
	if got := vbar.Bar.SliderSize(); !approxEqual(got, 100.0/150.0) {
		t.Errorf("slider size = %v, want 2/3", got)
	}
	if got := vbar.Bar.SliderPosition(); !approxEqual(got, 1-100.0/150.0) {
		t.Errorf("slider position = %v, want 1/3", got)
	}
	if got := vbar.BaseRect(); got != (Rect{90, 0, 10, 100}) {
		t.Errorf("scrollbar rect = %+v, want right edge strip", got)
	}

	// Removing the overflowing child removes the bar.
	child.Dispose()
	s.Render(&recordRenderer{})
	if sf.VerticalScrollbar() != nil || region.Child("region_vsb") != nil {
		t.Error("scrollbar should be removed once content fits")
	}
	if !vbar.IsDisposed() {
		t.Error("removed scrollbar should be disposed")
	}
}

func TestScrollFrameBothAxes(t *testing.T) {
	s, _ := newTestSystem()
	region := newScrollFrame(t, s.Root(), "region", 0, 0, 100, 100)
	pixelFrame(t, region, "child", -20, -30, 200, 100)

	s.Render(&recordRenderer{})
	sf := region.Scroll
	if sf.Bounds() != (Bounds{MinX: -20, MaxX: 180, MinY: -30, MaxY: 100}) {
		t.Errorf("bounds = %+v", sf.Bounds())
	}
	if sf.Overflow() != OverflowBoth {
		t.Errorf("overflow = %d, want both", sf.Overflow())
	}
	hbar := sf.HorizontalScrollbar()
	if hbar == nil || hbar.Name != "region_hsb" || hbar.Bar.Vertical() {
		t.Fatal("expected a horizontal scrollbar")
	}
	if got := hbar.Bar.SliderSize(); !approxEqual(got, 0.5) {
		t.Errorf("horizontal slider size = %v, want 0.5", got)
	}
	if got := hbar.Bar.SliderPosition(); got != 0 {
		t.Errorf("horizontal slider position = %v, want 0", got)
	}
	if got := hbar.BaseRect(); got != (Rect{0, 0, 100, 10}) {
		t.Errorf("horizontal scrollbar rect = %+v", got)
	}
}

func TestScrollFrameScrollbarsExcludedFromBounds(t *testing.T) {
	s, _ := newTestSystem()
	region := newScrollFrame(t, s.Root(), "region", 0, 0, 100, 100)
	pixelFrame(t, region, "child", 0, 0, 50, 150)
	s.Render(&recordRenderer{})

	region.Scroll.MarkOutdated()
	s.Render(&recordRenderer{})
	if region.Scroll.Bounds().MaxY != 150 {
		t.Errorf("bounds = %+v", region.Scroll.Bounds())
	}
	n := 0
	for _, c := range region.Children() {
		if c.Type == WidgetTypeScrollbar {
			n++
		}
	}
	if n != 1 {
		t.Errorf("scrollbars = %d, want exactly 1", n)
	}
}

func TestScrollFrameNameCollision(t *testing.T) {
	s, _ := newTestSystem()
	region := newScrollFrame(t, s.Root(), "region", 0, 0, 100, 100)
	pixelFrame(t, region, "region_vsb", 0, 0, 50, 150)

	s.Render(&recordRenderer{})
	if region.Scroll.VerticalScrollbar() != nil {
		t.Error("a user child holding the name should block the scrollbar")
	}
}

// scrollScenario builds root 800x600 -> region 200x200 at (100, 100) ->
// content 50x300 at the region's origin. The content uses normalized
// geometry unless pixels is set.
func scrollScenario(t *testing.T, pixels bool) (*System, *Widget, *Widget) {
	t.Helper()
	s, _ := newTestSystem()
	region := newScrollFrame(t, s.Root(), "region", 100, 100, 200, 200)
	var content *Widget
	if pixels {
		content = pixelFrame(t, region, "content", 0, 0, 50, 300)
	} else {
		content = mustFrame(t, region, FrameConfig{WidgetConfig: WidgetConfig{
			Name: "content", Size: Vec2{0.25, 1.5},
		}})
	}
	s.Render(&recordRenderer{})
	if region.Scroll.Bounds() != (Bounds{0, 200, 0, 300}) {
		t.Fatalf("bounds = %+v, want {0 200 0 300}", region.Scroll.Bounds())
	}
	return s, region, content
}

func TestScrollDragMovesContent(t *testing.T) {
	s, region, content := scrollScenario(t, false)
	vbar := region.Scroll.VerticalScrollbar()
	if vbar == nil {
		t.Fatal("expected a vertical scrollbar")
	}
	if got := vbar.BaseRect(); got != (Rect{290, 100, 10, 200}) {
		t.Fatalf("scrollbar rect = %+v", got)
	}

	// Grab the slider (y 166.67..300) and drag down 60px, 30% of the slot.
	s.UpdateInput(Vec2{295, 250}, MouseClick, nil)
	s.Render(&recordRenderer{})
	if vbar.Bar.State() != ScrollDragging {
		t.Fatalf("state = %d, want dragging", vbar.Bar.State())
	}
	if content.Y() != 0 {
		t.Fatalf("content moved on grab: y = %v", content.Y())
	}

	s.UpdateInput(Vec2{295, 190}, MouseActive, nil)
	s.Render(&recordRenderer{})

	if got := vbar.Bar.Change(); !approxEqual(got, -0.3) {
		t.Errorf("change = %v, want -0.3", got)
	}
	if got := content.Y(); !approxEqual(got, 0.45) {
		t.Errorf("content y = %v, want 0.45", got)
	}
	if got := content.BaseY(); !approxEqual(got, 100+0.45*200) {
		t.Errorf("content base y = %v, want 190", got)
	}

	s.UpdateInput(Vec2{295, 190}, MouseRelease, nil)
	s.Render(&recordRenderer{})
	if vbar.Bar.IsScrolling() || vbar.Bar.Change() != 0 {
		t.Error("release should end the drag")
	}
	if region.Scroll.Outdated() {
		t.Error("scrolling must not invalidate the bounds")
	}
}

func TestScrollDragMovesPixelContent(t *testing.T) {
	s, region, content := scrollScenario(t, true)
	_ = region

	s.UpdateInput(Vec2{295, 250}, MouseClick, nil)
	s.Render(&recordRenderer{})
	s.UpdateInput(Vec2{295, 190}, MouseActive, nil)
	s.Render(&recordRenderer{})

	if got := content.Y(); !approxEqual(got, 90) {
		t.Errorf("pixel content y = %v, want 90", got)
	}
}

func TestScrollFullTravel(t *testing.T) {
	s, region, content := scrollScenario(t, false)
	vbar := region.Scroll.VerticalScrollbar()
	size := vbar.Bar.SliderSize()

	total := 0.0
	vbar.Bar.OnScroll = func(b *Widget) {
		total += b.Bar.Change()
		region.Scroll.scroll(b)
	}

	s.UpdateInput(Vec2{295, 250}, MouseClick, nil)
	s.Render(&recordRenderer{})
	for _, y := range []float64{200, 120, -500, -900} {
		s.UpdateInput(Vec2{295, y}, MouseActive, nil)
		s.Render(&recordRenderer{})
	}

	if !approxEqual(total, -(1 - size)) {
		t.Errorf("total change = %v, want %v", total, -(1 - size))
	}
	if got := vbar.Bar.SliderPosition(); !approxEqual(got, 0) {
		t.Errorf("slider position = %v, want 0", got)
	}
	if got := content.Y(); !approxEqual(got, 0.5) {
		t.Errorf("content y = %v, want 0.5", got)
	}
}

func TestScrollJumpToPoint(t *testing.T) {
	s, region, content := scrollScenario(t, false)
	vbar := region.Scroll.VerticalScrollbar()

	// Click the slot below the slider; the slider centers on the cursor,
	// clamped to the bottom of the slot.
	s.UpdateInput(Vec2{295, 120}, MouseClick, nil)
	if vbar.Bar.State() != ScrollJumping {
		t.Fatalf("state = %d, want jumping", vbar.Bar.State())
	}
	s.Render(&recordRenderer{})

	if vbar.Bar.State() != ScrollDragging {
		t.Errorf("state = %d, want dragging after the jump", vbar.Bar.State())
	}
	if got := vbar.Bar.SliderPosition(); !approxEqual(got, 0) {
		t.Errorf("slider position = %v, want 0", got)
	}
	if got := content.Y(); !approxEqual(got, 0.5) {
		t.Errorf("content y = %v, want 0.5", got)
	}
}

func TestScrollHorizontal(t *testing.T) {
	s, _ := newTestSystem()
	region := newScrollFrame(t, s.Root(), "region", 100, 100, 200, 200)
	content := mustFrame(t, region, FrameConfig{WidgetConfig: WidgetConfig{
		Name: "content", Size: Vec2{1.5, 0.5},
	}})
	s.Render(&recordRenderer{})

	hbar := region.Scroll.HorizontalScrollbar()
	if hbar == nil {
		t.Fatal("expected a horizontal scrollbar")
	}
	if region.Scroll.VerticalScrollbar() != nil {
		t.Error("unexpected vertical scrollbar")
	}

	// Slider spans x 100..233.33; drag it right 60px.
	s.UpdateInput(Vec2{150, 105}, MouseClick, nil)
	s.Render(&recordRenderer{})
	s.UpdateInput(Vec2{210, 105}, MouseActive, nil)
	s.Render(&recordRenderer{})

	if got := hbar.Bar.Change(); !approxEqual(got, 0.3) {
		t.Errorf("change = %v, want 0.3", got)
	}
	if got := content.X(); !approxEqual(got, -0.45) {
		t.Errorf("content x = %v, want -0.45", got)
	}
	if content.Y() != 0 {
		t.Error("horizontal scrolling must not move content vertically")
	}
}
