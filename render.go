package bough

import (
	"math"
	"time"
)

// Renderer is the drawing collaborator the host provides. Coordinates are GUI
// space: pixels from the bottom-left of the viewport, Y up.
type Renderer interface {
	// SetScissor restricts all following drawing to r.
	SetScissor(r Rect)
	// DisableScissor removes any scissor rectangle.
	DisableScissor()
	// SetBlending toggles source-over alpha blending.
	SetBlending(enabled bool)
	// DrawQuad fills the quad with a color per corner. Corners and colors
	// are ordered bottom-left, bottom-right, top-right, top-left.
	DrawQuad(corners [4]Vec2, colors [4]Color)
	// DrawQuadOutline strokes the quad's edges with the given line width.
	DrawQuadOutline(corners [4]Vec2, color Color, width float64)
}

// OutlineQuads expands the edges of a quad into one filled quad per edge,
// width pixels thick and centered on the edge. Edges are extended by half the
// width at both ends so the corners are covered. Degenerate edges yield a
// zero quad. Backends without a native stroke use this for DrawQuadOutline.
func OutlineQuads(corners [4]Vec2, width float64) [4][4]Vec2 {
	var out [4][4]Vec2
	half := width / 2
	for i := range 4 {
		a, b := corners[i], corners[(i+1)%4]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		ex, ey := dx/l*half, dy/l*half
		nx, ny := -ey, ex
		out[i] = [4]Vec2{
			{a.X - ex - nx, a.Y - ey - ny},
			{b.X + ex - nx, b.Y + ey - ny},
			{b.X + ex + nx, b.Y + ey + ny},
			{a.X - ex + nx, a.Y - ey + ny},
		}
	}
	return out
}

// renderContext tracks the scissor stack for one Render call.
type renderContext struct {
	r     Renderer
	clips []Rect
}

// pushClip intersects r with the current clip and makes it active.
func (rc *renderContext) pushClip(r Rect) {
	if n := len(rc.clips); n > 0 {
		r = r.Intersect(rc.clips[n-1])
	}
	rc.clips = append(rc.clips, r)
	rc.r.SetScissor(r)
}

// popClip restores the enclosing clip, or disables clipping at the top level.
func (rc *renderContext) popClip() {
	rc.clips = rc.clips[:len(rc.clips)-1]
	if n := len(rc.clips); n > 0 {
		rc.r.SetScissor(rc.clips[n-1])
		return
	}
	rc.r.DisableScissor()
}

// Render advances every animation and then draws the tree bottom-to-top by
// z-order. Call once per frame.
func (s *System) Render(r Renderer) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	advanceAnimations(s.root, s.clock())

	if s.debug {
		stats.animateTime = time.Since(t0)
		t0 = time.Now()
	}

	rc := &renderContext{r: r}
	r.SetBlending(true)
	s.drawWidget(s.root, rc, &stats)

	if s.debug {
		stats.drawTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// drawWidget draws w and then its visible children.
func (s *System) drawWidget(w *Widget, rc *renderContext, stats *debugStats) {
	if !w.Visible {
		return
	}
	stats.widgetCount++
	switch w.Type {
	case WidgetTypeFrame:
		drawFrame(w, rc)
		s.drawChildren(w, rc, stats)
	case WidgetTypeScrollFrame:
		s.drawScrollFrame(w, rc, stats)
	case WidgetTypeScrollbar:
		w.Bar.update(s)
		s.drawChildren(w, rc, stats)
	default:
		s.drawChildren(w, rc, stats)
	}
}

func (s *System) drawChildren(w *Widget, rc *renderContext, stats *debugStats) {
	for _, child := range w.ordered() {
		if child.parent == w {
			s.drawWidget(child, rc, stats)
		}
	}
}

// drawScrollFrame recomputes stale bounds, then draws the frame and its
// children clipped to the frame's padded rectangle. The clip is popped even
// if drawing panics.
func (s *System) drawScrollFrame(w *Widget, rc *renderContext, stats *debugStats) {
	sf := w.Scroll
	if sf.outdated {
		sf.outdated = false
		var t0 time.Time
		if s.debug {
			t0 = time.Now()
		}
		sf.DetermineBounds()
		if s.debug {
			stats.boundsTime += time.Since(t0)
		}
	}

	pad := w.Frame.Border / 2
	rc.pushClip(Rect{
		X:      w.baseX - pad,
		Y:      w.baseY - pad,
		Width:  w.baseWidth + w.Frame.Border,
		Height: w.baseHeight + w.Frame.Border,
	})
	defer rc.popClip()

	drawFrame(w, rc)
	s.drawChildren(w, rc, stats)
}
