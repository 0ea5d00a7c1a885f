package juice

import (
	"math"
	"time"
)

// Value used in place of an explicit zero x or y override. It
// produces no visible motion, but it's not zero, so it survives
// the fallback to the effect defaults. See [Merge]().
const ZeroSentinel = 0.00001

// Fully resolved effect parameters. Used both for the defaults of
// each effect kind (see [Preset]()) and for the result of [Merge]().
type Params struct {
	X, Y           float64
	Alpha          float64
	ScaleX, ScaleY float64
	Angle          float64
	Duration       time.Duration
	Yoyo           bool
	Repeat         int
	Ease           string
	Delay          time.Duration
	Paused         bool
	OnStart        Callback
	OnComplete     Callback
}

// Optional per call overrides for an effect. Nil fields fall back
// to the effect defaults. Use [Float](), [Int](), [Bool](), [Dur]()
// and [Ease]() to fill the fields inline:
//
//	fx.Shake(sprite, &juice.Config{X: juice.Float(0), Y: juice.Float(5)}, false)
//
// Effects that play once (scale up and down, fade in and out, flips)
// ignore Yoyo and Repeat. Bounce ignores Yoyo.
type Config struct {
	X, Y           *float64
	Alpha          *float64
	ScaleX, ScaleY *float64
	Angle          *float64
	Duration       *time.Duration
	Yoyo           *bool
	Repeat         *int
	Ease           *string
	Delay          *time.Duration
	Paused         *bool
	OnStart        Callback
	OnComplete     Callback
}

// Merges the defaults of an effect with the given override. A nil
// override is the same as an empty one.
//
// Override values are only used when present and non-zero: zero
// numbers, NaN, false, empty strings and zero durations all fall
// back to the defaults. The x and y fields are special: an explicit
// zero is replaced by [ZeroSentinel] so it isn't overridden by the
// default displacement. No other field gets this treatment, so
// e.g. Angle: 0 or Yoyo: false resolve to the default values.
//
// The override is never modified.
func Merge(defaults Params, override *Config) Params {
	if override == nil {
		return defaults
	}

	x, y := override.X, override.Y
	if x != nil && *x == 0 {
		x = Float(ZeroSentinel)
	}
	if y != nil && *y == 0 {
		y = Float(ZeroSentinel)
	}

	return Params{
		X:          pickFloat(x, defaults.X),
		Y:          pickFloat(y, defaults.Y),
		Alpha:      pickFloat(override.Alpha, defaults.Alpha),
		ScaleX:     pickFloat(override.ScaleX, defaults.ScaleX),
		ScaleY:     pickFloat(override.ScaleY, defaults.ScaleY),
		Angle:      pickFloat(override.Angle, defaults.Angle),
		Duration:   pick(override.Duration, defaults.Duration),
		Yoyo:       pick(override.Yoyo, defaults.Yoyo),
		Repeat:     pick(override.Repeat, defaults.Repeat),
		Ease:       pick(override.Ease, defaults.Ease),
		Delay:      pick(override.Delay, defaults.Delay),
		Paused:     pick(override.Paused, defaults.Paused),
		OnStart:    pickCallback(override.OnStart, defaults.OnStart),
		OnComplete: pickCallback(override.OnComplete, defaults.OnComplete),
	}
}

func pick[T comparable](value *T, fallback T) T {
	var zero T
	if value == nil || *value == zero {
		return fallback
	}
	return *value
}

func pickFloat(value *float64, fallback float64) float64 {
	if value == nil || math.IsNaN(*value) {
		return fallback
	}
	return pick(value, fallback)
}

func pickCallback(value, fallback Callback) Callback {
	if value == nil {
		return fallback
	}
	return value
}

// --- override constructors ---

// Returns a pointer to the given value, for [Config] fields.
func Float(value float64) *float64 { return &value }

// Returns a pointer to the given value, for [Config] fields.
func Int(value int) *int { return &value }

// Returns a pointer to the given value, for [Config] fields.
func Bool(value bool) *bool { return &value }

// Returns a pointer to the given value, for [Config] fields.
func Dur(value time.Duration) *time.Duration { return &value }

// Returns a pointer to the given easing name, for [Config] fields.
func Ease(name string) *string { return &name }
