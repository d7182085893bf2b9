package bough

import (
	"time"
)

// EventStore is the interface for optional ECS integration. When set on a
// System, widget interaction events for widgets with a non-zero EntityID are
// forwarded to it.
type EventStore interface {
	EmitEvent(event WidgetEvent)
}

// WidgetEvent carries interaction data for the ECS bridge.
type WidgetEvent struct {
	Type     EventType
	EntityID uint32
	Widget   string
	CursorX  float64
	CursorY  float64
	State    MouseState
	// Key is valid for EventKey.
	Key KeyEvent
	// Change is valid for EventScroll.
	Change float64
}

// SystemConfig configures a new System.
type SystemConfig struct {
	// Width and Height are the viewport size in pixels.
	Width, Height float64
	// Theme is optional; widgets fall back to their built-in defaults.
	Theme Theme
	// Clock drives animations. Defaults to time.Now.
	Clock func() time.Time
}

// System owns the widget tree and the per-frame input state. It is not safe
// for concurrent use; the host calls UpdateInput and Render from its frame
// loop.
type System struct {
	root    *Widget
	theme   Theme
	clock   func() time.Time
	store   EventStore
	focused *Widget
	debug   bool

	// LockFocus stops clicks from moving focus.
	LockFocus bool

	cursor     Vec2
	clickState MouseState

	// ScreenshotDir is where Screenshot writes PNGs. Defaults to "screenshots".
	ScreenshotDir string

	injectQueue     []syntheticFrame
	testRunner      *TestRunner
	screenshotQueue []string
	ebitenRenderer  *EbitenRenderer
}

// NewSystem creates a system with a root widget covering the viewport. The
// root uses pixel geometry and starts out focused.
func NewSystem(cfg SystemConfig) *System {
	s := &System{
		theme:         cfg.Theme,
		clock:         cfg.Clock,
		ScreenshotDir: "screenshots",
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	root := newWidget(WidgetTypeContainer, WidgetConfig{
		Name:    "root",
		Size:    Vec2{cfg.Width, cfg.Height},
		Options: OptionNoNormalize,
	})
	root.system = s
	root.Theme = map[string]any{}
	propagateGeometry(root)
	s.root = root
	s.focused = root
	return s
}

// Root returns the root widget.
func (s *System) Root() *Widget {
	return s.root
}

// Resize changes the viewport size; the whole tree re-derives its geometry.
func (s *System) Resize(width, height float64) {
	s.root.SetSize(width, height)
}

// Theme returns the system theme, or nil.
func (s *System) Theme() Theme {
	return s.theme
}

// SetTheme replaces the theme used by widgets created from now on.
func (s *System) SetTheme(t Theme) {
	s.theme = t
}

// SetClock replaces the animation clock.
func (s *System) SetClock(clock func() time.Time) {
	if clock == nil {
		clock = time.Now
	}
	s.clock = clock
}

// Focused returns the widget that last took focus by being clicked.
func (s *System) Focused() *Widget {
	return s.focused
}

// SetFocused moves focus to w, regardless of LockFocus.
func (s *System) SetFocused(w *Widget) {
	s.focused = w
}

// CursorPos returns the cursor position reported for the current frame.
func (s *System) CursorPos() Vec2 {
	return s.cursor
}

// ClickState returns the pointer state reported for the current frame.
func (s *System) ClickState() MouseState {
	return s.clickState
}

// SetEventStore sets the optional ECS bridge.
func (s *System) SetEventStore(store EventStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-widget
// use panics, tree depth and child count warnings are printed, and per-frame
// timing stats are logged to stderr.
func (s *System) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set System debug flag so that widget
// operations (which may run before a widget has a System) can check it
// cheaply. Only valid with a single System.
var globalDebug bool

// emit forwards an interaction to the event store.
func (s *System) emit(typ EventType, w *Widget, key KeyEvent, change float64) {
	if s == nil || s.store == nil || w.EntityID == 0 {
		return
	}
	s.store.EmitEvent(WidgetEvent{
		Type:     typ,
		EntityID: w.EntityID,
		Widget:   w.Name,
		CursorX:  s.cursor.X,
		CursorY:  s.cursor.Y,
		State:    s.clickState,
		Key:      key,
		Change:   change,
	})
}
