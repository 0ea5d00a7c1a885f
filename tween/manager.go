// This package provides [Manager], a tween engine that implements
// [juice.Scene] on top of [gween].
//
// A few properties that the manager respects:
//   - Tick-rate independent: animations advance by the time given
//     to [Manager.Update](), so they look the same regardless of
//     your ebiten.TPS() value.
//   - Deferred callbacks: start and completion callbacks are only
//     invoked from Update(), never from [Manager.Animate]().
//   - Unmanaged overlaps: animations on the same target and property
//     don't cancel each other. The last one updated wins each tick.
//
// Easing functions are selected by name; see [Easing]() for the
// built-in vocabulary.
//
// [gween]: https://github.com/tanema/gween
package tween

import (
	"errors"
	"fmt"
	"time"

	"github.com/edwinsyarief/juice"
)

var (
	ErrUnknownEase = errors.New("unknown easing function")
	ErrNilTarget   = errors.New("nil animation target")
)

type entry interface {
	update(dt float32)
	done() bool
	Remove()
}

// The tween engine. The zero value is ready to use, but [NewManager]()
// is provided for symmetry with the rest of the module.
//
// A manager is not safe for concurrent use: animations must be
// requested from the same goroutine that calls [Manager.Update]().
type Manager struct {
	entries []entry
}

var _ juice.Scene = (*Manager)(nil)

// Creates a new, empty tween manager.
func NewManager() *Manager {
	return &Manager{}
}

// Registers a new property animation. The animation starts on the
// next [Manager.Update]() after its delay elapses (and only after
// [Tween.Resume]() if it was requested as paused).
func (self *Manager) Animate(target juice.Target, request juice.Request) (juice.Handle, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	easing, err := Easing(request.Ease)
	if err != nil {
		return nil, fmt.Errorf("can't animate %d properties: %w", len(request.Props), err)
	}
	tween := newTween(target, request, easing)
	self.entries = append(self.entries, tween)
	return tween, nil
}

// Schedules fn to be invoked once, on the first [Manager.Update]()
// where the given delay has fully elapsed.
func (self *Manager) After(delay time.Duration, fn func()) juice.Handle {
	timer := &Timer{left: float32(delay.Seconds()), fn: fn}
	self.entries = append(self.entries, timer)
	return timer
}

// Advances all the animations and timers by the given time.
// Typically called from your game's Update() with a fixed
// 1/TPS step:
//
//	manager.Update(time.Second / time.Duration(ebiten.TPS()))
//
// Animations and timers registered during the update (e.g. from
// callbacks) are first advanced on the next call.
func (self *Manager) Update(dt time.Duration) {
	seconds := float32(dt.Seconds())
	// the range only sees the entries present before any callback runs
	for _, e := range self.entries {
		e.update(seconds)
	}

	// remove finished entries, preserving order
	kept := self.entries[:0]
	for _, e := range self.entries {
		if !e.done() {
			kept = append(kept, e)
		}
	}
	clear(self.entries[len(kept):])
	self.entries = kept
}

// Returns the number of pending animations and timers.
func (self *Manager) Len() int {
	return len(self.entries)
}

// Removes all the animations and timers without invoking
// any callbacks. Can be called from a callback during
// [Manager.Update]().
func (self *Manager) Clear() {
	for _, e := range self.entries {
		e.Remove()
	}
	self.entries = nil
}

// --- timers ---

// A one-shot timer created by [Manager.After]().
type Timer struct {
	left    float32 // seconds
	fn      func()
	fired   bool
	removed bool
}

// Cancels the timer if it hasn't fired yet.
func (self *Timer) Remove() { self.removed = true }

// Returns whether the timer callback has already been invoked.
func (self *Timer) Fired() bool { return self.fired }

func (self *Timer) done() bool { return self.fired || self.removed }

func (self *Timer) update(dt float32) {
	if self.done() {
		return
	}
	self.left -= dt
	if self.left > 0 {
		return
	}
	self.fired = true
	if self.fn != nil {
		self.fn()
	}
}
