package bough

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrStructure reports an attach that would break the tree: a nil or
// disposed widget, a widget that already has a parent, a duplicate sibling
// name, or a cycle. The tree is left unchanged.
var ErrStructure = errors.New("bough: structural error")

// ErrLookup reports a detach of a widget that is not a child of the receiver.
var ErrLookup = errors.New("bough: widget not found")

// WidgetConfig holds the construction parameters shared by every widget type.
type WidgetConfig struct {
	// Name must be unique among siblings. Empty picks the first free
	// decimal name ("1", "2", ...).
	Name string

	// Pos and Size are fractions of the parent's size unless Options
	// contains OptionNoNormalize, in which case they are pixels.
	Pos  Vec2
	Size Vec2

	// Aspect, when non-zero, derives the width from the height.
	Aspect float64

	Options Options

	// SubTheme selects the theme section "<Section>:<SubTheme>".
	SubTheme string

	// Theme overrides individual resolved theme options.
	Theme map[string]any
}

// Widget is the single node type of the GUI tree. Behavior specific to frames,
// scroll frames and scrollbars hangs off the optional Frame, Scroll and Bar
// pointers, selected by Type.
type Widget struct {
	Name    string
	Type    WidgetType
	Options Options

	// Hierarchy. parent and system never own what they point to.
	system         *System
	parent         *Widget
	children       []*Widget
	byName         map[string]*Widget
	sortedChildren []*Widget
	childrenSorted bool

	// Local geometry, normalized unless OptionNoNormalize.
	x, y          float64
	width, height float64
	aspect        float64

	// Absolute geometry, derived by propagateGeometry.
	baseX, baseY          float64
	baseWidth, baseHeight float64

	zIndex int

	// Visible hides the widget and its subtree from drawing and input.
	Visible bool
	// Frozen keeps the widget drawn but stops it reacting to input.
	Frozen bool
	hover  bool

	// Theme is the resolved option map for this widget's theme section.
	Theme        map[string]any
	themeSection string

	anims []*Animation

	// Type-specific state.
	Frame  *Frame
	Scroll *ScrollFrame
	Bar    *Scrollbar

	// Metadata
	UserData any
	EntityID uint32

	// Per-widget callbacks (nil by default).
	OnClick      func(*Widget)
	OnRelease    func(*Widget)
	OnHover      func(*Widget)
	OnActive     func(*Widget)
	OnMouseEnter func(*Widget)
	OnMouseExit  func(*Widget)
	OnKey        func(*Widget, KeyEvent)

	// Internal handlers run before the public callback of the same event.
	clickHook func(*Widget)

	disposed bool
}

// newWidget builds a detached widget of the given type. Geometry is resolved
// once the widget is attached.
func newWidget(typ WidgetType, cfg WidgetConfig) *Widget {
	w := &Widget{
		Name:           cfg.Name,
		Type:           typ,
		Options:        cfg.Options,
		x:              cfg.Pos.X,
		y:              cfg.Pos.Y,
		width:          cfg.Size.X,
		height:         cfg.Size.Y,
		aspect:         cfg.Aspect,
		Visible:        true,
		childrenSorted: true,
	}
	return w
}

// NewWidget creates a plain container widget and attaches it to parent.
func NewWidget(parent *Widget, cfg WidgetConfig) (*Widget, error) {
	w := newWidget(WidgetTypeContainer, cfg)
	if err := parent.Attach(w); err != nil {
		return nil, err
	}
	return w, nil
}

// --- Tree manipulation ---

// Attach adds child as the last child of w and resolves its geometry against
// w. An empty child name is replaced with the first free decimal name.
func (w *Widget) Attach(child *Widget) error {
	if err := w.checkAttach(child); err != nil {
		return err
	}
	if child.parent != nil || (child.system != nil && child.system.root == child) {
		return fmt.Errorf("%w: %q is already attached", ErrStructure, child.Name)
	}
	w.attachChild(child)
	return nil
}

// Detach removes child from w's children. The child keeps its subtree and
// can be attached elsewhere. Hovered widgets in the subtree get OnMouseExit
// first, and focus inside it returns to the root.
func (w *Widget) Detach(child *Widget) error {
	if child == nil || child.parent != w || w.byName[child.Name] != child {
		name := "<nil>"
		if child != nil {
			name = child.Name
		}
		return fmt.Errorf("%w: %q is not a child of %q", ErrLookup, name, w.Name)
	}
	if s := w.system; s != nil {
		s.updateHover(child)
		if child.parent != w {
			// An exit callback already moved it.
			return nil
		}
	}
	w.detachChild(child)
	releaseFocus(child)
	return nil
}

// Reparent moves w under newParent. The move is validated against newParent
// before w leaves its current parent. Like Detach, it ends hover in the
// subtree; focus is kept unless w moves into another system's tree.
func (w *Widget) Reparent(newParent *Widget) error {
	if newParent == nil {
		return fmt.Errorf("%w: nil parent for %q", ErrStructure, w.Name)
	}
	if newParent == w.parent {
		return nil
	}
	if w.system != nil && w.system.root == w {
		return fmt.Errorf("%w: cannot reparent the root widget", ErrStructure)
	}
	if err := newParent.checkAttach(w); err != nil {
		return err
	}
	if s := w.system; s != nil && w.parent != nil {
		s.updateHover(w)
		// Exit callbacks may have changed the tree.
		if newParent == w.parent {
			return nil
		}
		if err := newParent.checkAttach(w); err != nil {
			return err
		}
	}
	leaving := w.system != nil && newParent.system != w.system
	if w.parent != nil {
		w.parent.detachChild(w)
	}
	if leaving {
		releaseFocus(w)
	}
	newParent.attachChild(w)
	return nil
}

// checkAttach validates everything about attaching child except whether it
// currently has a parent.
func (w *Widget) checkAttach(child *Widget) error {
	if child == nil {
		return fmt.Errorf("%w: cannot attach nil widget to %q", ErrStructure, w.Name)
	}
	if globalDebug {
		debugCheckDisposed(w, "Attach (parent)")
		debugCheckDisposed(child, "Attach (child)")
	}
	if w.disposed || child.disposed {
		return fmt.Errorf("%w: disposed widget in attach of %q to %q", ErrStructure, child.Name, w.Name)
	}
	if isAncestor(child, w) {
		return fmt.Errorf("%w: attaching %q to %q would create a cycle", ErrStructure, child.Name, w.Name)
	}
	if child.Name != "" {
		if _, taken := w.byName[child.Name]; taken {
			return fmt.Errorf("%w: %q already has a child named %q", ErrStructure, w.Name, child.Name)
		}
	}
	return nil
}

func (w *Widget) attachChild(child *Widget) {
	if child.Name == "" {
		child.Name = w.freeName()
	}
	if w.byName == nil {
		w.byName = make(map[string]*Widget)
	}
	child.parent = w
	w.children = append(w.children, child)
	w.byName[child.Name] = child
	w.childrenSorted = false
	setSubtreeSystem(child, w.system)
	propagateGeometry(child)
	if w.Scroll != nil {
		w.Scroll.childChanged(child)
	}
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(w)
	}
}

func (w *Widget) detachChild(child *Widget) {
	for i, c := range w.children {
		if c == child {
			copy(w.children[i:], w.children[i+1:])
			w.children[len(w.children)-1] = nil
			w.children = w.children[:len(w.children)-1]
			break
		}
	}
	delete(w.byName, child.Name)
	child.parent = nil
	clearHover(child)
	w.childrenSorted = false
	if w.Scroll != nil {
		w.Scroll.childChanged(child)
	}
}

// freeName returns the first decimal name not used by a child of w.
func (w *Widget) freeName() string {
	for i := 1; ; i++ {
		name := strconv.Itoa(i)
		if _, taken := w.byName[name]; !taken {
			return name
		}
	}
}

// Children returns the children in insertion order. The returned slice MUST
// NOT be mutated by the caller.
func (w *Widget) Children() []*Widget {
	return w.children
}

// NumChildren returns the number of children.
func (w *Widget) NumChildren() int {
	return len(w.children)
}

// Child returns the child with the given name, or nil.
func (w *Widget) Child(name string) *Widget {
	return w.byName[name]
}

// Parent returns the widget's parent, or nil for the root and detached widgets.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// System returns the system the widget is attached to, or nil.
func (w *Widget) System() *System {
	return w.system
}

// ZIndex returns the widget's draw and hit order among its siblings.
func (w *Widget) ZIndex() int {
	return w.zIndex
}

// SetZIndex sets the draw order among siblings. Higher values draw later,
// on top of lower ones; equal values keep insertion order.
func (w *Widget) SetZIndex(z int) {
	if w.zIndex == z {
		return
	}
	w.zIndex = z
	if w.parent != nil {
		w.parent.childrenSorted = false
	}
}

// Hovered reports whether the cursor was inside the widget during the last
// input dispatch.
func (w *Widget) Hovered() bool {
	return w.hover
}

// ordered returns the children sorted by ZIndex, stable on insertion order.
// The slice is replaced, never rewritten, when the order changes, so callers
// iterating an earlier result keep a consistent snapshot.
func (w *Widget) ordered() []*Widget {
	if !w.childrenSorted {
		sorted := make([]*Widget, len(w.children))
		copy(sorted, w.children)
		for i := 1; i < len(sorted); i++ {
			key := sorted[i]
			j := i - 1
			for j >= 0 && sorted[j].zIndex > key.zIndex {
				sorted[j+1] = sorted[j]
				j--
			}
			sorted[j+1] = key
		}
		w.sortedChildren = sorted
		w.childrenSorted = true
	}
	return w.sortedChildren
}

// --- Disposal ---

// Dispose detaches the widget from its parent and marks it and its whole
// subtree as disposed. Callbacks of disposed widgets never fire again.
func (w *Widget) Dispose() {
	if w.disposed {
		return
	}
	if w.parent != nil {
		w.parent.detachChild(w)
	}
	releaseFocus(w)
	w.dispose()
}

func (w *Widget) dispose() {
	w.disposed = true
	for _, child := range w.children {
		child.parent = nil
		child.dispose()
	}
	w.children = nil
	w.byName = nil
	w.sortedChildren = nil
	w.anims = nil
	w.system = nil
	w.UserData = nil
	w.OnClick = nil
	w.OnRelease = nil
	w.OnHover = nil
	w.OnActive = nil
	w.OnMouseEnter = nil
	w.OnMouseExit = nil
	w.OnKey = nil
	w.clickHook = nil
	if w.Bar != nil {
		w.Bar.OnScroll = nil
	}
}

// IsDisposed returns true if the widget has been disposed.
func (w *Widget) IsDisposed() bool {
	return w.disposed
}

// BindTo wraps fn so that it becomes a no-op once target is disposed. Use it
// when a callback on one widget acts on another that may be destroyed first.
func BindTo(target *Widget, fn func(source *Widget)) func(*Widget) {
	return func(source *Widget) {
		if target == nil || target.disposed {
			return
		}
		fn(source)
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Widget) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// clearHover resets the hover flag through the subtree without firing
// callbacks.
func clearHover(w *Widget) {
	w.hover = false
	for _, child := range w.children {
		clearHover(child)
	}
}

// releaseFocus hands focus back to the root when w's subtree holds it and w
// is leaving the tree. Releasing the root itself clears focus.
func releaseFocus(w *Widget) {
	s := w.system
	if s == nil || s.focused == nil || !isAncestor(w, s.focused) {
		return
	}
	s.focused = s.root
	if s.root == w {
		s.focused = nil
	}
}

func setSubtreeSystem(w *Widget, s *System) {
	w.system = s
	for _, child := range w.children {
		setSubtreeSystem(child, s)
	}
}

// fire invokes fn for w unless w has been disposed.
func (w *Widget) fire(fn func(*Widget)) {
	if fn != nil && !w.disposed {
		fn(w)
	}
}
