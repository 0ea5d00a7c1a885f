package tween

import (
	"github.com/edwinsyarief/juice"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type track struct {
	prop  juice.Property
	from  float32
	to    float32
	tween *gween.Tween
}

// A running property animation. Returned as the [juice.Handle]
// of every [Manager.Animate]() call.
type Tween struct {
	target   juice.Target
	request  juice.Request
	easing   ease.TweenFunc
	tracks   []track
	duration float32 // seconds
	delay    float32 // seconds left before starting
	elapsed  float32 // seconds into the current half
	repeats  int     // full cycles left after the current one

	started   bool
	reversing bool
	paused    bool
	finished  bool
	removed   bool
}

func newTween(target juice.Target, request juice.Request, easing ease.TweenFunc) *Tween {
	tracks := make([]track, len(request.Props))
	for i, pv := range request.Props {
		tracks[i] = track{prop: pv.Prop, to: float32(pv.Value)}
	}
	return &Tween{
		target:   target,
		request:  request,
		easing:   easing,
		tracks:   tracks,
		duration: float32(request.Duration.Seconds()),
		delay:    float32(request.Delay.Seconds()),
		repeats:  max(request.Repeat, 0),
		paused:   request.Paused,
	}
}

// Returns the animated target.
func (self *Tween) Target() juice.Target { return self.target }

// Stops the animation where it is. No completion callback is
// invoked. Safe to call multiple times.
func (self *Tween) Remove() { self.removed = true }

// Returns whether [Tween.Remove]() has been called.
func (self *Tween) IsRemoved() bool { return self.removed }

// Pauses the animation, including its initial delay.
func (self *Tween) Pause() { self.paused = true }

// Resumes a paused animation. Animations requested with
// Paused: true don't start until this is called.
func (self *Tween) Resume() { self.paused = false }

// Returns whether the animation has started and is neither
// paused, finished nor removed.
func (self *Tween) IsPlaying() bool {
	return self.started && !self.paused && !self.finished && !self.removed
}

// Returns whether the animation ran to completion.
func (self *Tween) IsFinished() bool { return self.finished }

func (self *Tween) done() bool { return self.finished || self.removed }

func (self *Tween) update(dt float32) {
	if self.done() || self.paused {
		return
	}

	if !self.started {
		if self.delay > dt {
			self.delay -= dt
			return
		}
		dt -= self.delay
		self.delay = 0
		self.start()
		if self.done() {
			return // removed by the start callback
		}
	}

	// time left past the end of a half carries into the next one
	for {
		left, ended := self.advance(dt)
		if !ended || !self.next() {
			return
		}
		dt = left
	}
}

// next moves to the following half (yoyo) or cycle, or finishes the
// animation. Returns false once finished.
func (self *Tween) next() bool {
	switch {
	case self.request.Yoyo && !self.reversing:
		self.reversing = true
	case self.repeats > 0:
		self.repeats -= 1
		self.reversing = false
	default:
		self.finished = true
		if self.request.OnComplete != nil {
			self.request.OnComplete(self, self.target)
		}
		return false
	}
	self.rewind()
	return true
}

// start captures the current property values as the origin of
// the animation.
func (self *Tween) start() {
	self.started = true
	for i := range self.tracks {
		self.tracks[i].from = float32(self.target.Get(self.tracks[i].prop))
	}
	self.rewind()
	if self.request.OnStart != nil {
		self.request.OnStart(self, self.target)
	}
}

func (self *Tween) rewind() {
	self.elapsed = 0
	for i := range self.tracks {
		tr := &self.tracks[i]
		begin, end := tr.from, tr.to
		if self.reversing {
			begin, end = end, begin
		}
		tr.tween = gween.New(begin, end, self.duration, self.easing)
	}
}

// advance steps all the tracks within the current half. Returns
// whether the half ended and, if so, the part of dt left over.
func (self *Tween) advance(dt float32) (left float32, ended bool) {
	remaining := self.duration - self.elapsed
	if dt < remaining {
		self.elapsed += dt
		for i := range self.tracks {
			value, _ := self.tracks[i].tween.Update(dt)
			self.target.Set(self.tracks[i].prop, float64(value))
		}
		return 0, false
	}

	self.elapsed = self.duration
	for i := range self.tracks {
		tr := &self.tracks[i]
		end := tr.to
		if self.reversing {
			end = tr.from
		}
		self.target.Set(tr.prop, float64(end))
	}
	return dt - remaining, true
}
