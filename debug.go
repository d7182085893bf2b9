package bough

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when System.debug is true.
type debugStats struct {
	animateTime time.Duration
	boundsTime  time.Duration
	drawTime    time.Duration
	widgetCount int
}

// debugLog prints timing and draw stats to stderr.
func (s *System) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[bough] animate: %v | bounds: %v | draw: %v | total: %v\n",
		stats.animateTime, stats.boundsTime, stats.drawTime-stats.boundsTime,
		stats.animateTime+stats.drawTime)
	_, _ = fmt.Fprintf(os.Stderr, "[bough] widgets drawn: %d | focused: %s\n",
		stats.widgetCount, focusName(s.focused))
}

func focusName(w *Widget) string {
	if w == nil {
		return "<none>"
	}
	return w.Name
}

// debugCheckDisposed panics with a descriptive message when a disposed widget
// is used in a tree operation. Only called in debug mode; in release mode the
// operation returns ErrStructure instead.
func debugCheckDisposed(w *Widget, op string) {
	if w.disposed {
		panic(fmt.Sprintf("bough debug: %s on disposed widget %q", op, w.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(w *Widget) {
	depth := 0
	for p := w; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[bough] warning: tree depth %d exceeds %d (widget %q)\n",
			depth, debugMaxTreeDepth, w.Name)
	}
}

// debugCheckChildCount warns on stderr if a widget has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(w *Widget) {
	if len(w.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[bough] warning: widget %q has %d children (threshold %d)\n",
			w.Name, len(w.children), debugMaxChildCount)
	}
}
