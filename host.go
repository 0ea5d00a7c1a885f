package juice

import (
	"image/color"
	"time"
)

// --- host collaborators ---

// The animation context the effects are issued against. The
// [tween.Manager] type in this module is the reference
// implementation, but any tween-capable engine can be adapted.
//
// [tween.Manager]: https://pkg.go.dev/github.com/edwinsyarief/juice/tween#Manager
type Scene interface {
	// Registers a property animation for the given target and
	// returns a handle to it. The request callbacks must be invoked
	// by the host on its own ticks, never during Animate itself.
	Animate(target Target, request Request) (Handle, error)

	// Schedules fn to be invoked once after the given delay.
	After(delay time.Duration, fn func()) Handle
}

// A drawable entity whose properties can be animated.
//
// The facade only reads and writes targets through this interface,
// it never owns them.
type Target interface {
	Get(prop Property) float64
	Set(prop Property, value float64)

	// Replaces the target colors with the given one, preserving
	// transparency.
	SetTintFill(clr color.Color)
	ClearTint()
}

// A host animation instance.
type Handle interface {
	// Stops the animation (or timer) and releases it. Safe to
	// call multiple times.
	Remove()
}

// Invoked by the host with the animation handle and its target.
type Callback func(handle Handle, target Target)

// Animatable target properties.
type Property uint8

const (
	PropX Property = iota
	PropY
	PropScaleX
	PropScaleY
	PropAngle // degrees
	PropAlpha
	propEndSentinel
)

var propertyNames = [propEndSentinel]string{"x", "y", "scaleX", "scaleY", "angle", "alpha"}

func (self Property) String() string {
	if self >= propEndSentinel {
		return "Property(invalid)"
	}
	return propertyNames[self]
}

// The end value of a property within a [Request].
type PropValue struct {
	Prop  Property
	Value float64
}

// A single animation request. All values are fully resolved,
// hosts don't need to apply any fallbacks on their own.
type Request struct {
	Props    []PropValue
	Duration time.Duration
	Yoyo     bool
	Repeat   int
	Ease     string
	Delay    time.Duration
	Paused   bool

	OnStart    Callback
	OnComplete Callback
}

// Returns the end value requested for the given property and
// whether the request drives it at all.
func (self Request) Value(prop Property) (float64, bool) {
	for _, pv := range self.Props {
		if pv.Prop == prop {
			return pv.Value, true
		}
	}
	return 0, false
}
