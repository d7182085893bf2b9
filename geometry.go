package bough

// X returns the local x position.
func (w *Widget) X() float64 { return w.x }

// Y returns the local y position.
func (w *Widget) Y() float64 { return w.y }

// Width returns the local width.
func (w *Widget) Width() float64 { return w.width }

// Height returns the local height.
func (w *Widget) Height() float64 { return w.height }

// Position returns the local position.
func (w *Widget) Position() Vec2 { return Vec2{w.x, w.y} }

// Size returns the local size.
func (w *Widget) Size() Vec2 { return Vec2{w.width, w.height} }

// Aspect returns the aspect ratio constraint, or 0 if unconstrained.
func (w *Widget) Aspect() float64 { return w.aspect }

// BaseX returns the absolute x position in pixels.
func (w *Widget) BaseX() float64 { return w.baseX }

// BaseY returns the absolute y position in pixels.
func (w *Widget) BaseY() float64 { return w.baseY }

// BaseWidth returns the absolute width in pixels.
func (w *Widget) BaseWidth() float64 { return w.baseWidth }

// BaseHeight returns the absolute height in pixels.
func (w *Widget) BaseHeight() float64 { return w.baseHeight }

// BaseRect returns the absolute rectangle in pixels.
func (w *Widget) BaseRect() Rect {
	return Rect{X: w.baseX, Y: w.baseY, Width: w.baseWidth, Height: w.baseHeight}
}

// Corners returns the absolute corners ordered bottom-left, bottom-right,
// top-right, top-left.
func (w *Widget) Corners() [4]Vec2 {
	x0, y0 := w.baseX, w.baseY
	x1, y1 := w.baseX+w.baseWidth, w.baseY+w.baseHeight
	return [4]Vec2{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// containsPoint tests (x, y) against the corner rectangle, inclusive on all
// four edges.
func (w *Widget) containsPoint(p Vec2) bool {
	c := w.Corners()
	return c[0].X <= p.X && p.X <= c[1].X &&
		c[0].Y <= p.Y && p.Y <= c[2].Y
}

// SetX sets the local x position and updates the subtree's absolute geometry.
func (w *Widget) SetX(x float64) {
	w.x = x
	propagateGeometry(w)
}

// SetY sets the local y position and updates the subtree's absolute geometry.
func (w *Widget) SetY(y float64) {
	w.y = y
	propagateGeometry(w)
}

// SetWidth sets the local width and updates the subtree's absolute geometry.
func (w *Widget) SetWidth(width float64) {
	w.width = width
	propagateGeometry(w)
}

// SetHeight sets the local height and updates the subtree's absolute geometry.
func (w *Widget) SetHeight(height float64) {
	w.height = height
	propagateGeometry(w)
}

// SetPosition sets both local coordinates with a single propagation pass.
func (w *Widget) SetPosition(x, y float64) {
	w.x, w.y = x, y
	propagateGeometry(w)
}

// SetSize sets both local dimensions with a single propagation pass.
func (w *Widget) SetSize(width, height float64) {
	w.width, w.height = width, height
	propagateGeometry(w)
}

// SetAspect sets the aspect ratio constraint. Zero removes it.
func (w *Widget) SetAspect(aspect float64) {
	w.aspect = aspect
	propagateGeometry(w)
}

// SetOptions replaces the option flags and re-resolves geometry, since
// OptionNoNormalize and the centering flags change how it is derived.
func (w *Widget) SetOptions(opts Options) {
	w.Options = opts
	propagateGeometry(w)
}

// propagateGeometry resolves w's absolute geometry from its parent and then
// walks the subtree parent-before-child. Local values are never touched.
func propagateGeometry(w *Widget) {
	w.resolveGeometry()
	for _, child := range w.children {
		propagateGeometry(child)
	}
}

// resolveGeometry derives the absolute rectangle of w alone. A widget without
// a parent is its own reference frame: no normalization and no offset.
func (w *Widget) resolveGeometry() {
	p := w.parent
	normalize := p != nil && w.Options&OptionNoNormalize == 0

	var bw, bh, bx, by float64
	if normalize {
		if w.aspect != 0 {
			bw = w.height * w.aspect * p.baseHeight
		} else {
			bw = w.width * p.baseWidth
		}
		bh = w.height * p.baseHeight
		bx = w.x * p.baseWidth
		by = w.y * p.baseHeight
	} else {
		if w.aspect != 0 {
			bw = w.height * w.aspect
		} else {
			bw = w.width
		}
		bh = w.height
		bx = w.x
		by = w.y
	}

	if p != nil {
		if w.Options&OptionCenterX != 0 {
			bx = (p.baseWidth - bw) / 2
		}
		if w.Options&OptionCenterY != 0 {
			by = (p.baseHeight - bh) / 2
		}
		bx += p.baseX
		by += p.baseY
	}

	w.baseX, w.baseY = bx, by
	w.baseWidth, w.baseHeight = bw, bh
}
