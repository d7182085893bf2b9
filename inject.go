package bough

// syntheticFrame is one queued frame of input. Coordinates are GUI space,
// identical to what UpdateInput receives.
type syntheticFrame struct {
	cursor Vec2
	state  MouseState
	keys   []KeyEvent
}

// InjectPress queues a frame in which the button goes down at (x, y).
// The frame is consumed by the next Update.
func (s *System) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticFrame{cursor: Vec2{x, y}, state: MouseClick})
}

// InjectMove queues a frame with the button held at (x, y). Use this between
// InjectPress and InjectRelease to simulate a drag.
func (s *System) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticFrame{cursor: Vec2{x, y}, state: MouseActive})
}

// InjectRelease queues a frame in which the button goes up at (x, y).
func (s *System) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticFrame{cursor: Vec2{x, y}, state: MouseRelease})
}

// InjectHover queues a frame with no button activity at (x, y).
func (s *System) InjectHover(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticFrame{cursor: Vec2{x, y}, state: MouseNone})
}

// InjectKey queues a frame delivering key at (x, y) with no button activity.
// Keys only reach hovered widgets, so (x, y) decides who receives it.
func (s *System) InjectKey(x, y float64, key KeyEvent) {
	s.injectQueue = append(s.injectQueue, syntheticFrame{
		cursor: Vec2{x, y},
		state:  MouseNone,
		keys:   []KeyEvent{key},
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (s *System) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated held frames over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes `frames` frames. Minimum frames is
// 2 (press + release).
func (s *System) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// PendingInjected returns the number of queued synthetic frames.
func (s *System) PendingInjected() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one queued frame and feeds it through
// UpdateInput. Returns true if a frame was consumed (live input should be
// skipped).
func (s *System) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	f := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue[len(s.injectQueue)-1] = syntheticFrame{}
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.UpdateInput(f.cursor, f.state, f.keys)
	return true
}

// UpdateInjected feeds one queued synthetic frame through UpdateInput and
// reports whether there was one. Hosts that read input themselves call it in
// place of UpdateInput while PendingInjected is non-zero.
func (s *System) UpdateInjected() bool {
	return s.processInjectedInput()
}
