package juice

import (
	"image/color"
	"reflect"
	"time"
)

// fakeTarget stores properties in a map and records tint changes.
type fakeTarget struct {
	props map[Property]float64
	tint  color.Color
}

func newFakeTarget(x, y float64) *fakeTarget {
	return &fakeTarget{props: map[Property]float64{
		PropX: x, PropY: y, PropScaleX: 1, PropScaleY: 1, PropAngle: 0, PropAlpha: 1,
	}}
}

func (self *fakeTarget) Get(prop Property) float64        { return self.props[prop] }
func (self *fakeTarget) Set(prop Property, value float64) { self.props[prop] = value }
func (self *fakeTarget) SetTintFill(clr color.Color)      { self.tint = clr }
func (self *fakeTarget) ClearTint()                       { self.tint = nil }

type fakeHandle struct {
	removed int
}

func (self *fakeHandle) Remove() { self.removed++ }

type fakeTimer struct {
	delay  time.Duration
	fn     func()
	handle *fakeHandle
}

// fakeScene records every request without animating anything.
type fakeScene struct {
	targets  []Target
	requests []Request
	handles  []*fakeHandle
	timers   []fakeTimer
	err      error
}

func (self *fakeScene) Animate(target Target, request Request) (Handle, error) {
	if self.err != nil {
		return nil, self.err
	}
	handle := &fakeHandle{}
	self.targets = append(self.targets, target)
	self.requests = append(self.requests, request)
	self.handles = append(self.handles, handle)
	return handle, nil
}

func (self *fakeScene) After(delay time.Duration, fn func()) Handle {
	handle := &fakeHandle{}
	self.timers = append(self.timers, fakeTimer{delay: delay, fn: fn, handle: handle})
	return handle
}

func (self *fakeScene) last() Request {
	return self.requests[len(self.requests)-1]
}

// start and complete simulate the host lifecycle of request i.
func (self *fakeScene) start(i int) {
	self.requests[i].OnStart(self.handles[i], self.targets[i])
}

func (self *fakeScene) complete(i int) {
	self.requests[i].OnComplete(self.handles[i], self.targets[i])
}

// withoutCallbacks makes requests and params comparable with reflect.DeepEqual.
func withoutCallbacks(request Request) Request {
	request.OnStart, request.OnComplete = nil, nil
	return request
}

func paramsEqual(a, b Params) bool {
	if (a.OnStart == nil) != (b.OnStart == nil) || (a.OnComplete == nil) != (b.OnComplete == nil) {
		return false
	}
	a.OnStart, a.OnComplete, b.OnStart, b.OnComplete = nil, nil, nil, nil
	return reflect.DeepEqual(a, b)
}
