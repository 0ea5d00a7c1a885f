package juice

import "time"

// Direction for the flip and spin effects. The zero value behaves
// like [Flipped].
type Direction uint8

const (
	DirDefault Direction = iota // same as Flipped
	Flipped                     // scale sign -1
	Restored                    // scale sign +1
)

func (self Direction) scaleSign() float64 {
	if self == Restored {
		return 1
	}
	return -1
}

// Amounts used by the relative presets.
const (
	ScaleStep   = 0.25 // added or subtracted by ScaleUp and ScaleDown
	PulseFactor = 1.25 // applied to the current scale by Pulse
)

// Which of the resolved yoyo and repeat values an effect forwards
// to the host. Effects that play once ignore both, so overrides
// can't make them loop.
type loopMode uint8

const (
	loopsAll    loopMode = iota // yoyo and repeat
	loopsRepeat                 // repeat only
	loopsNone
)

type preset struct {
	defaults func(target Target, dir Direction) Params
	props    func(params Params, target Target) []PropValue
	loops    loopMode
}

// Returns the default parameters of the given effect kind. Some
// presets depend on the current values of the target (scale ups,
// pulses) or on the flip direction; the direction is ignored for
// all other kinds. Reading a target happens only for the kinds
// that need it, so nil can be passed otherwise.
func Preset(kind Kind, target Target, dir Direction) Params {
	if kind >= kindEndSentinel {
		panic(invalidKind)
	}
	if kind == KindFlash {
		return Params{Duration: DefaultFlashDuration}
	}
	return presets[kind].defaults(target, dir)
}

var presets = [kindEndSentinel]preset{
	KindShake: {
		defaults: func(Target, Direction) Params {
			return Params{X: 5, Y: 0, Duration: 50 * time.Millisecond, Yoyo: true, Repeat: 8, Ease: "Bounce.easeInOut"}
		},
		props: func(p Params, t Target) []PropValue {
			return []PropValue{{PropX, t.Get(PropX) + p.X}, {PropY, t.Get(PropY) - p.Y}}
		},
	},
	KindWobble: {
		defaults: func(Target, Direction) Params {
			return Params{X: 20, Y: 0, Duration: 150 * time.Millisecond, Yoyo: true, Repeat: 5, Ease: "Sine.easeInOut"}
		},
		props: func(p Params, t Target) []PropValue {
			return []PropValue{{PropX, t.Get(PropX) + p.X}, {PropY, t.Get(PropY) + p.Y}}
		},
	},
	KindScaleUp: {
		defaults: func(t Target, _ Direction) Params {
			return Params{
				ScaleX:   t.Get(PropScaleX) + ScaleStep,
				ScaleY:   t.Get(PropScaleY) + ScaleStep,
				Duration: 750 * time.Millisecond,
			}
		},
		props: scaleProps,
		loops: loopsNone,
	},
	KindScaleDown: {
		defaults: func(t Target, _ Direction) Params {
			return Params{
				ScaleX:   t.Get(PropScaleX) - ScaleStep,
				ScaleY:   t.Get(PropScaleY) - ScaleStep,
				Duration: 750 * time.Millisecond,
			}
		},
		props: scaleProps,
		loops: loopsNone,
	},
	KindPulse: {
		defaults: func(t Target, _ Direction) Params {
			return Params{
				ScaleX:   t.Get(PropScaleX) * PulseFactor,
				ScaleY:   t.Get(PropScaleY) * PulseFactor,
				Duration: 750 * time.Millisecond,
				Yoyo:     true,
				Repeat:   2,
				Ease:     "Quad.easeInOut",
			}
		},
		props: scaleProps,
	},
	KindRotate: {
		defaults: func(Target, Direction) Params {
			return Params{Angle: 360, Duration: 500 * time.Millisecond, Ease: "Circular.easeInOut"}
		},
		props: func(p Params, _ Target) []PropValue {
			return []PropValue{{PropAngle, p.Angle}}
		},
	},
	KindBounce: {
		defaults: func(Target, Direction) Params {
			return Params{Y: 25, Duration: 1000 * time.Millisecond, Ease: "Bounce"}
		},
		props: func(p Params, t Target) []PropValue {
			return []PropValue{{PropY, t.Get(PropY) + p.Y}}
		},
		loops: loopsRepeat,
	},
	KindFadeIn: {
		defaults: func(Target, Direction) Params {
			return Params{Alpha: 1, Duration: 750 * time.Millisecond, Ease: "Circular.easeIn"}
		},
		props: alphaProps,
		loops: loopsNone,
	},
	KindFadeOut: {
		defaults: func(Target, Direction) Params {
			return Params{Alpha: 0, Duration: 750 * time.Millisecond, Ease: "Circular.easeOut"}
		},
		props: alphaProps,
		loops: loopsNone,
	},
	KindFadeInOut: {
		defaults: func(Target, Direction) Params {
			return Params{Alpha: 0, Duration: 500 * time.Millisecond, Yoyo: true, Repeat: 3, Ease: "Circular.easeInOut"}
		},
		props: alphaProps,
	},
	KindFlipX: {
		defaults: func(_ Target, dir Direction) Params {
			return Params{ScaleX: dir.scaleSign(), Duration: 500 * time.Millisecond, Ease: "Sine.easeInOut"}
		},
		props: func(p Params, _ Target) []PropValue {
			return []PropValue{{PropScaleX, p.ScaleX}}
		},
		loops: loopsNone,
	},
	KindFlipY: {
		defaults: func(_ Target, dir Direction) Params {
			return Params{ScaleY: dir.scaleSign(), Duration: 500 * time.Millisecond, Ease: "Sine.easeInOut"}
		},
		props: func(p Params, _ Target) []PropValue {
			return []PropValue{{PropScaleY, p.ScaleY}}
		},
		loops: loopsNone,
	},
	KindSpinX: {
		defaults: func(_ Target, dir Direction) Params {
			return Params{ScaleX: dir.scaleSign(), Duration: 500 * time.Millisecond, Yoyo: true, Repeat: 3, Ease: "Sine.easeInOut"}
		},
		props: func(p Params, _ Target) []PropValue {
			return []PropValue{{PropScaleX, p.ScaleX}}
		},
	},
	KindSpinY: {
		defaults: func(_ Target, dir Direction) Params {
			return Params{ScaleY: dir.scaleSign(), Duration: 500 * time.Millisecond, Yoyo: true, Repeat: 3, Ease: "Sine.easeInOut"}
		},
		props: func(p Params, _ Target) []PropValue {
			return []PropValue{{PropScaleY, p.ScaleY}}
		},
	},
}

func scaleProps(p Params, _ Target) []PropValue {
	return []PropValue{{PropScaleX, p.ScaleX}, {PropScaleY, p.ScaleY}}
}

func alphaProps(p Params, _ Target) []PropValue {
	return []PropValue{{PropAlpha, p.Alpha}}
}
