package bough

import (
	"errors"
	"testing"
)

func TestNewSystemRoot(t *testing.T) {
	s, _ := newTestSystem()
	root := s.Root()

	if root.Name != "root" {
		t.Errorf("root name = %q, want %q", root.Name, "root")
	}
	if root.Parent() != nil {
		t.Error("root should have no parent")
	}
	if root.System() != s {
		t.Error("root.System() should be the system")
	}
	if got := root.BaseRect(); got != (Rect{0, 0, 800, 600}) {
		t.Errorf("root rect = %+v", got)
	}
	if s.Focused() != root {
		t.Error("root should start focused")
	}
}

func TestAttachAutoName(t *testing.T) {
	s, _ := newTestSystem()
	a, _ := NewWidget(s.Root(), WidgetConfig{})
	b, _ := NewWidget(s.Root(), WidgetConfig{Name: "3"})
	c, _ := NewWidget(s.Root(), WidgetConfig{})
	d, _ := NewWidget(s.Root(), WidgetConfig{})

	if a.Name != "1" || b.Name != "3" || c.Name != "2" || d.Name != "4" {
		t.Errorf("names = %q %q %q %q, want 1 3 2 4", a.Name, b.Name, c.Name, d.Name)
	}
	if s.Root().Child("2") != c {
		t.Error("Child(\"2\") should find c")
	}
}

func TestAttachDuplicateName(t *testing.T) {
	s, _ := newTestSystem()
	if _, err := NewWidget(s.Root(), WidgetConfig{Name: "x"}); err != nil {
		t.Fatal(err)
	}
	_, err := NewWidget(s.Root(), WidgetConfig{Name: "x"})
	if !errors.Is(err, ErrStructure) {
		t.Fatalf("err = %v, want ErrStructure", err)
	}
	if s.Root().NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", s.Root().NumChildren())
	}
}

func TestAttachErrors(t *testing.T) {
	s, _ := newTestSystem()
	root := s.Root()
	a, _ := NewWidget(root, WidgetConfig{Name: "a"})
	b, _ := NewWidget(a, WidgetConfig{Name: "b"})

	tests := []struct {
		name   string
		parent *Widget
		child  *Widget
	}{
		{"nil child", root, nil},
		{"already attached", root, b},
		{"root as child", a, root},
		{"cycle", b, a},
		{"self", a, a},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.parent.Attach(tt.child); !errors.Is(err, ErrStructure) {
				t.Errorf("Attach err = %v, want ErrStructure", err)
			}
		})
	}
	if b.Parent() != a || a.Parent() != root {
		t.Error("failed attaches must leave the tree unchanged")
	}
}

func TestAttachDisposed(t *testing.T) {
	s, _ := newTestSystem()
	w, _ := NewWidget(s.Root(), WidgetConfig{Name: "w"})
	w.Dispose()
	if err := s.Root().Attach(w); !errors.Is(err, ErrStructure) {
		t.Errorf("err = %v, want ErrStructure", err)
	}
}

func TestDetach(t *testing.T) {
	s, _ := newTestSystem()
	root := s.Root()
	a, _ := NewWidget(root, WidgetConfig{Name: "a"})
	b, _ := NewWidget(a, WidgetConfig{Name: "b"})

	if err := root.Detach(b); !errors.Is(err, ErrLookup) {
		t.Errorf("detach grandchild err = %v, want ErrLookup", err)
	}
	if err := root.Detach(nil); !errors.Is(err, ErrLookup) {
		t.Errorf("detach nil err = %v, want ErrLookup", err)
	}
	if err := a.Detach(b); err != nil {
		t.Fatal(err)
	}
	if b.Parent() != nil || a.Child("b") != nil || a.NumChildren() != 0 {
		t.Error("b should be fully detached")
	}
	// Name is free again.
	if _, err := NewWidget(a, WidgetConfig{Name: "b"}); err != nil {
		t.Errorf("reusing detached name: %v", err)
	}
}

func TestReparent(t *testing.T) {
	s, _ := newTestSystem()
	root := s.Root()
	left := pixelFrame(t, root, "left", 0, 0, 100, 100)
	right := pixelFrame(t, root, "right", 400, 0, 200, 200)
	child := mustFrame(t, left, FrameConfig{WidgetConfig: WidgetConfig{
		Name: "child", Pos: Vec2{0.5, 0.5}, Size: Vec2{0.5, 0.5},
	}})

	if err := child.Reparent(right); err != nil {
		t.Fatal(err)
	}
	if child.Parent() != right || left.NumChildren() != 0 {
		t.Fatal("child should now live under right")
	}
	if got := child.BaseRect(); got != (Rect{500, 100, 100, 100}) {
		t.Errorf("rect after reparent = %+v, want {500 100 100 100}", got)
	}
}

func TestReparentRejected(t *testing.T) {
	s, _ := newTestSystem()
	root := s.Root()
	a, _ := NewWidget(root, WidgetConfig{Name: "a"})
	b, _ := NewWidget(a, WidgetConfig{Name: "b"})
	other, _ := NewWidget(root, WidgetConfig{Name: "other"})
	_, _ = NewWidget(other, WidgetConfig{Name: "b"})

	if err := a.Reparent(b); !errors.Is(err, ErrStructure) {
		t.Errorf("cycle err = %v", err)
	}
	if err := b.Reparent(other); !errors.Is(err, ErrStructure) {
		t.Errorf("duplicate name err = %v", err)
	}
	if b.Parent() != a {
		t.Error("rejected reparent must keep the old parent")
	}
	if err := root.Reparent(a); !errors.Is(err, ErrStructure) {
		t.Errorf("root reparent err = %v", err)
	}
}

func TestDetachClearsSubtreeHover(t *testing.T) {
	s, _ := newTestSystem()
	root := s.Root()
	a := pixelFrame(t, root, "a", 0, 0, 100, 100)
	b := pixelFrame(t, a, "b", 0, 0, 50, 50)
	other := pixelFrame(t, root, "other", 400, 400, 100, 100)
	var log eventLog
	log.watch(a)
	log.watch(b)

	s.UpdateInput(Vec2{10, 10}, MouseNone, nil)
	if !a.hover || !b.hover {
		t.Fatal("a and b should be hovered")
	}

	if err := root.Detach(a); err != nil {
		t.Fatal(err)
	}
	if a.hover || b.hover {
		t.Errorf("hover after detach: a=%v b=%v", a.hover, b.hover)
	}
	if log.count("a:exit") != 1 || log.count("b:exit") != 1 {
		t.Errorf("exits after detach: %v", log)
	}

	if err := other.Attach(a); err != nil {
		t.Fatal(err)
	}
	s.UpdateInput(Vec2{410, 410}, MouseNone, nil)
	if log.count("a:enter") != 2 || log.count("b:enter") != 2 {
		t.Errorf("enters after reattach: %v", log)
	}
}

func TestReparentClearsSubtreeHover(t *testing.T) {
	s, _ := newTestSystem()
	root := s.Root()
	a := pixelFrame(t, root, "a", 0, 0, 100, 100)
	b := pixelFrame(t, a, "b", 0, 0, 50, 50)
	other := pixelFrame(t, root, "other", 400, 400, 100, 100)
	var log eventLog
	log.watch(b)

	s.UpdateInput(Vec2{10, 10}, MouseNone, nil)
	if err := a.Reparent(other); err != nil {
		t.Fatal(err)
	}
	if b.hover || log.count("b:exit") != 1 {
		t.Errorf("b.hover = %v, exits = %d after reparent", b.hover, log.count("b:exit"))
	}

	s.UpdateInput(Vec2{410, 410}, MouseNone, nil)
	if log.count("b:enter") != 2 {
		t.Errorf("b enters = %d, want 2", log.count("b:enter"))
	}
}

func TestDetachReleasesFocus(t *testing.T) {
	s, _ := newTestSystem()
	root := s.Root()
	a := pixelFrame(t, root, "a", 0, 0, 100, 100)
	b := pixelFrame(t, a, "b", 0, 0, 50, 50)

	s.UpdateInput(Vec2{10, 10}, MouseClick, nil)
	if s.Focused() != b {
		t.Fatalf("focused = %v, want b", s.Focused())
	}
	if err := root.Detach(a); err != nil {
		t.Fatal(err)
	}
	if s.Focused() != root {
		t.Errorf("focused = %q after detach, want root", s.Focused().Name)
	}
}

func TestReparentFocus(t *testing.T) {
	s, _ := newTestSystem()
	root := s.Root()
	a := pixelFrame(t, root, "a", 0, 0, 100, 100)
	other := pixelFrame(t, root, "other", 400, 400, 100, 100)
	s.SetFocused(a)

	// Moving within the tree keeps focus.
	if err := a.Reparent(other); err != nil {
		t.Fatal(err)
	}
	if s.Focused() != a {
		t.Errorf("focused = %q after reparent within the tree, want a", s.Focused().Name)
	}

	// Moving into another system's tree releases it.
	s2, _ := newTestSystem()
	if err := a.Reparent(s2.Root()); err != nil {
		t.Fatal(err)
	}
	if s.Focused() != root {
		t.Errorf("focused = %q after leaving the tree, want root", s.Focused().Name)
	}
	if a.System() != s2 {
		t.Error("a should belong to the new system")
	}
}

func TestChildrenSnapshotDuringMutation(t *testing.T) {
	s, _ := newTestSystem()
	root := s.Root()
	var visited []string
	for _, name := range []string{"a", "b", "c"} {
		w := pixelFrame(t, root, name, 0, 0, 800, 600)
		w.OnClick = func(w *Widget) {
			visited = append(visited, w.Name)
			if w.Name == "a" {
				// Remove a later sibling and add a new one mid-dispatch.
				root.Child("b").Dispose()
				pixelFrame(t, root, "d", 0, 0, 800, 600)
			}
		}
	}

	s.UpdateInput(Vec2{10, 10}, MouseClick, nil)

	want := []string{"a", "c"}
	if len(visited) != len(want) {
		t.Fatalf("visited = %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited = %v, want %v", visited, want)
		}
	}
}

func TestZIndexOrdering(t *testing.T) {
	s, _ := newTestSystem()
	root := s.Root()
	a, _ := NewWidget(root, WidgetConfig{Name: "a"})
	b, _ := NewWidget(root, WidgetConfig{Name: "b"})
	c, _ := NewWidget(root, WidgetConfig{Name: "c"})

	a.SetZIndex(2)
	got := root.ordered()
	if got[0] != b || got[1] != c || got[2] != a {
		t.Errorf("order = %s %s %s, want b c a", got[0].Name, got[1].Name, got[2].Name)
	}
	// Children keeps insertion order.
	if root.Children()[0] != a {
		t.Error("Children should not be reordered")
	}
}

func TestDispose(t *testing.T) {
	s, _ := newTestSystem()
	root := s.Root()
	parent, _ := NewWidget(root, WidgetConfig{Name: "parent"})
	child, _ := NewWidget(parent, WidgetConfig{Name: "child"})
	child.OnClick = func(*Widget) {}
	s.SetFocused(child)

	parent.Dispose()

	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Fatal("subtree should be disposed")
	}
	if root.Child("parent") != nil {
		t.Error("disposed widget should be detached")
	}
	if child.OnClick != nil {
		t.Error("callbacks should be cleared")
	}
	if s.Focused() != root {
		t.Error("focus inside a disposed subtree should move to root")
	}
	parent.Dispose() // idempotent
}

func TestDisposeDuringCallback(t *testing.T) {
	s, _ := newTestSystem()
	w := pixelFrame(t, s.Root(), "w", 0, 0, 100, 100)
	inner := pixelFrame(t, w, "inner", 0, 0, 100, 100)
	var innerClicked, released bool
	inner.OnClick = func(*Widget) { innerClicked = true }
	w.OnRelease = func(*Widget) { released = true }
	w.OnClick = func(self *Widget) { self.Dispose() }

	s.UpdateInput(Vec2{50, 50}, MouseClick, nil)

	if innerClicked {
		t.Error("children of a widget disposed mid-dispatch must not receive events")
	}
	s.UpdateInput(Vec2{50, 50}, MouseRelease, nil)
	if released {
		t.Error("disposed widget must not receive later events")
	}
}

func TestBindTo(t *testing.T) {
	s, _ := newTestSystem()
	target, _ := NewWidget(s.Root(), WidgetConfig{Name: "target"})
	calls := 0
	fn := BindTo(target, func(*Widget) { calls++ })

	fn(nil)
	target.Dispose()
	fn(nil)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDebugDisposedAttachPanics(t *testing.T) {
	s, _ := newTestSystem()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	w, _ := NewWidget(s.Root(), WidgetConfig{Name: "w"})
	w.Dispose()

	defer func() {
		if recover() == nil {
			t.Error("expected panic attaching a disposed widget in debug mode")
		}
	}()
	_ = s.Root().Attach(w)
}
