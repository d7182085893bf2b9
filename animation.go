package bough

import (
	"slices"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Attribute names an animatable numeric property of a Widget. Scalar
// properties have Len 1; array properties such as a position are animated
// component-wise.
type Attribute struct {
	Name string
	Len  int
	get  func(*Widget) []float64
	set  func(*Widget, []float64)
}

// NewAttribute defines a custom animatable attribute with n components.
func NewAttribute(name string, n int, get func(*Widget) []float64, set func(*Widget, []float64)) Attribute {
	return Attribute{Name: name, Len: n, get: get, set: set}
}

// Built-in geometry attributes. Writes go through the geometry setters, so
// every step propagates to the subtree.
var (
	AttrX = NewAttribute("x", 1,
		func(w *Widget) []float64 { return []float64{w.x} },
		func(w *Widget, v []float64) { w.SetX(v[0]) })
	AttrY = NewAttribute("y", 1,
		func(w *Widget) []float64 { return []float64{w.y} },
		func(w *Widget, v []float64) { w.SetY(v[0]) })
	AttrWidth = NewAttribute("width", 1,
		func(w *Widget) []float64 { return []float64{w.width} },
		func(w *Widget, v []float64) { w.SetWidth(v[0]) })
	AttrHeight = NewAttribute("height", 1,
		func(w *Widget) []float64 { return []float64{w.height} },
		func(w *Widget, v []float64) { w.SetHeight(v[0]) })
	AttrPosition = NewAttribute("position", 2,
		func(w *Widget) []float64 { return []float64{w.x, w.y} },
		func(w *Widget, v []float64) { w.SetPosition(v[0], v[1]) })
	AttrSize = NewAttribute("size", 2,
		func(w *Widget) []float64 { return []float64{w.width, w.height} },
		func(w *Widget, v []float64) { w.SetSize(v[0], v[1]) })
)

// Animation linearly moves one attribute of a widget from the value it had
// when scheduled to a target over a wall-clock duration. Each step adds the
// interpolated delta since the previous step to the attribute's current
// value, so other writers to the same attribute are not overwritten.
type Animation struct {
	widget     *Widget
	attr       Attribute
	to         []float64
	applied    []float64 // interpolated value reached so far, per component
	tweens     []*gween.Tween
	start      time.Time
	lastUpdate time.Time
	duration   time.Duration
	onComplete func()
	done       bool
}

// Animate schedules attr to move to target over d. onComplete, if non-nil,
// runs exactly once when the duration has elapsed. The animation advances
// during System.Render.
//
// Panics if attr is not a defined attribute or target has the wrong length.
func (w *Widget) Animate(attr Attribute, target []float64, d time.Duration, onComplete func()) *Animation {
	if attr.get == nil || attr.set == nil {
		panic("bough: animate on undefined attribute " + attr.Name)
	}
	if len(target) != attr.Len {
		panic("bough: animate " + attr.Name + ": target length does not match attribute")
	}
	now := w.now()
	from := attr.get(w)
	a := &Animation{
		widget:     w,
		attr:       attr,
		to:         slices.Clone(target),
		applied:    from,
		tweens:     make([]*gween.Tween, attr.Len),
		start:      now,
		lastUpdate: now,
		duration:   d,
		onComplete: onComplete,
	}
	secs := float32(d.Seconds())
	for i := range a.tweens {
		a.tweens[i] = gween.New(float32(from[i]), float32(target[i]), secs, ease.Linear)
	}
	w.anims = append(w.anims, a)
	return a
}

// Move animates the widget's position to pos over d.
func (w *Widget) Move(pos Vec2, d time.Duration, onComplete func()) *Animation {
	return w.Animate(AttrPosition, []float64{pos.X, pos.Y}, d, onComplete)
}

// NumAnimations returns the number of animations still running on w.
func (w *Widget) NumAnimations() int {
	return len(w.anims)
}

// Done reports whether the animation has completed.
func (a *Animation) Done() bool {
	return a.done
}

// Attribute returns the animated attribute.
func (a *Animation) Attribute() Attribute {
	return a.attr
}

// update advances the animation to now. It returns false once the duration
// has elapsed, after applying the remaining delta and running onComplete.
func (a *Animation) update(now time.Time) bool {
	w := a.widget
	if w.disposed {
		return false
	}

	current := a.attr.get(w)
	if now.Sub(a.start) >= a.duration {
		for i := range current {
			current[i] += a.to[i] - a.applied[i]
		}
		a.attr.set(w, current)
		if a.onComplete != nil {
			a.onComplete()
		}
		return false
	}

	dt := float32(now.Sub(a.lastUpdate).Seconds())
	a.lastUpdate = now
	for i, tw := range a.tweens {
		v, _ := tw.Update(dt)
		current[i] += float64(v) - a.applied[i]
		a.applied[i] = float64(v)
	}
	a.attr.set(w, current)
	return true
}

// advanceAnimations steps every animation in the subtree rooted at w.
// Finished animations are removed after the widget's whole list has been
// stepped, so one never runs after completing. Hidden widgets animate too.
func advanceAnimations(w *Widget, now time.Time) {
	if len(w.anims) > 0 {
		running := slices.Clone(w.anims)
		for _, a := range running {
			if !a.update(now) {
				a.done = true
			}
		}
		w.anims = slices.DeleteFunc(w.anims, func(a *Animation) bool { return a.done })
	}
	for _, child := range w.ordered() {
		if child.parent == w {
			advanceAnimations(child, now)
		}
	}
}

// now returns the attached system's clock time, or wall time when detached.
func (w *Widget) now() time.Time {
	if w.system != nil {
		return w.system.clock()
	}
	return time.Now()
}
