package bough

// UpdateInput feeds one frame of host input into the tree: the cursor
// position in GUI space, the pointer state, and any key presses.
func (s *System) UpdateInput(cursor Vec2, state MouseState, keys []KeyEvent) {
	s.cursor = cursor
	s.clickState = state
	s.handleMouse(s.root, cursor, state)
	for _, k := range keys {
		s.handleKey(s.root, k)
	}
}

// handleMouse runs the mouse state machine for w, which the caller has
// already hit-tested, and recurses into the children under the cursor.
func (s *System) handleMouse(w *Widget, pos Vec2, state MouseState) {
	if !w.Visible || w.Frozen {
		s.updateHover(w)
		return
	}

	w.fire(w.OnHover)

	switch state {
	case MouseClick:
		w.fire(w.clickHook)
		w.fire(w.OnClick)
		s.emit(EventClick, w, KeyEvent{}, 0)
	case MouseRelease:
		w.fire(w.OnRelease)
		s.emit(EventRelease, w, KeyEvent{}, 0)
	case MouseActive:
		w.fire(w.OnActive)
		s.emit(EventActive, w, KeyEvent{}, 0)
	}
	if w.disposed {
		return
	}

	// Parents run before children, so the deepest clicked widget keeps focus.
	if state == MouseClick && !s.LockFocus && w.Options&OptionNoFocus == 0 {
		s.focused = w
	}

	if !w.hover {
		w.fire(w.OnMouseEnter)
		s.emit(EventMouseEnter, w, KeyEvent{}, 0)
	}
	w.hover = true

	for _, child := range w.ordered() {
		if child.parent != w {
			continue
		}
		if child.containsPoint(pos) {
			s.handleMouse(child, pos, state)
		} else {
			s.updateHover(child)
		}
	}
}

// updateHover clears the hover flag through the whole subtree, firing
// mouse-exit for every widget that was hovered. Visibility and frozen state
// are ignored so no stale hover survives.
func (s *System) updateHover(w *Widget) {
	if w.hover {
		w.hover = false
		w.fire(w.OnMouseExit)
		s.emit(EventMouseExit, w, KeyEvent{}, 0)
	}
	for _, child := range w.ordered() {
		if child.parent == w {
			s.updateHover(child)
		}
	}
}

// handleKey forwards a key to w and, recursively, to its hovered children.
func (s *System) handleKey(w *Widget, k KeyEvent) {
	if !w.hover {
		return
	}
	if w.OnKey != nil && !w.disposed {
		w.OnKey(w, k)
	}
	if w.disposed {
		return
	}
	s.emit(EventKey, w, k, 0)
	for _, child := range w.ordered() {
		if child.parent == w {
			s.handleKey(child, k)
		}
	}
}
