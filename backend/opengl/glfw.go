package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/phanxgames/bough"
)

// GLFWInputAdapter turns GLFW window input into the per-frame values
// bough.System.UpdateInput expects. Only the left mouse button drives the GUI.
type GLFWInputAdapter struct {
	window *glfw.Window

	pressed  bool // press seen since the last Poll
	released bool // release seen since the last Poll
	deferred bool // release to report on the next Poll
	keys     []bough.KeyEvent
}

// NewGLFWInputAdapter creates an adapter and installs its callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{window: window}
	window.SetKeyCallback(a.keyCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	return a
}

// Poll returns one frame of input. Call once per frame after glfw.PollEvents.
// The cursor is flipped into GUI space against the window height.
func (a *GLFWInputAdapter) Poll() (bough.Vec2, bough.MouseState, []bough.KeyEvent) {
	x, y := a.window.GetCursorPos()
	_, h := a.window.GetSize()
	cursor := bough.Vec2{X: x, Y: float64(h) - y}

	state := bough.MouseNone
	switch {
	case a.deferred:
		state = bough.MouseRelease
		a.deferred = false
	case a.pressed:
		state = bough.MouseClick
		// A click and release within one frame: report the release next.
		a.deferred = a.released
	case a.released:
		state = bough.MouseRelease
	case a.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press:
		state = bough.MouseActive
	}
	a.pressed, a.released = false, false

	keys := a.keys
	a.keys = nil
	return cursor, state, keys
}

// Update polls input and feeds it to sys, unless sys has queued synthetic
// input for this frame.
func (a *GLFWInputAdapter) Update(sys *bough.System) {
	if sys.PendingInjected() > 0 {
		// Drain live events so they don't leak into a later frame.
		a.Poll()
		sys.UpdateInjected()
		return
	}
	sys.UpdateInput(a.Poll())
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	a.keys = append(a.keys, bough.KeyEvent{
		Key:     int(key),
		Shifted: mods&glfw.ModShift != 0,
	})
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		a.pressed = true
	case glfw.Release:
		a.released = true
	}
}
