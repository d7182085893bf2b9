package bough

import (
	"encoding/json"
	"fmt"
)

// testStep is one action of a test script. Coordinates are GUI space.
type testStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Key     int     `json:"key,omitempty"`
	Shifted bool    `json:"shifted,omitempty"`
}

// testActions lists the supported actions.
var testActions = map[string]bool{
	"click": true, "press": true, "move": true, "release": true,
	"drag": true, "hover": true, "key": true,
	"wait": true, "screenshot": true,
}

// apply queues the step's input on s and returns how many further frames to
// idle before the next step.
func (st testStep) apply(s *System) int {
	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "hover":
		s.InjectHover(st.X, st.Y)
	case "key":
		s.InjectKey(st.X, st.Y, KeyEvent{Key: st.Key, Shifted: st.Shifted})
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		// The frame that runs the step counts as the first.
		return max(st.Frames-1, 0)
	}
	return 0
}

// TestRunner plays a scripted sequence of input and screenshots, one step per
// frame once the previous step's injected input has drained. Attach it with
// System.SetTestRunner.
type TestRunner struct {
	steps []testStep
	next  int
	idle  int
	done  bool
}

// LoadTestScript parses a JSON test script of the form
//
//	{"steps": [{"action": "click", "x": 100, "y": 200}, ...]}
//
// Actions: click, press, move, release, hover, key, drag, wait, screenshot.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []testStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !testActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches runner to s. System.Update advances it every frame
// before reading input.
func (s *System) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether every step has run and its input has drained.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(s *System) {
	switch {
	case r.done, len(s.injectQueue) > 0:
		return
	case r.idle > 0:
		r.idle--
		return
	case r.next >= len(r.steps):
		r.done = true
		return
	}

	r.idle = r.steps[r.next].apply(s)
	r.next++

	if r.next == len(r.steps) && r.idle == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
