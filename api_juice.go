// Package juice provides preset visual feedback effects ("juice")
// for sprites: shakes, wobbles, pulses, fades, flips, spins, bounces
// and flashes.
//
// Effects are thin presets over a host tweening engine that
// implements [Scene]; the juice package never interpolates anything
// on its own. The [tween] sub-package provides a ready to use host
// built on gween, and the [sprite] sub-package an Ebitengine target.
//
// Basic usage:
//
//	scene := tween.NewManager()
//	fx := juice.New(scene)
//	fx.Shake(player, nil, false)
//	fx.Add(player).Pulse(nil, nil, false).FadeOut(nil, nil, true)
//
// All effect methods return immediately. The host is in charge of
// advancing the animations and invoking the callbacks later on.
//
// [tween]: https://pkg.go.dev/github.com/edwinsyarief/juice/tween
// [sprite]: https://pkg.go.dev/github.com/edwinsyarief/juice/sprite
package juice

import (
	"image/color"
	"time"
)

// The effect facade. Create it with [New]().
//
// The facade is not safe for concurrent use; call it from the
// same goroutine that advances the host [Scene].
type Juice struct {
	scene   Scene
	target  Target
	handles map[Kind]Handle
	err     error
}

// Creates a new effect facade issuing its animations to the
// given scene. Panics if the scene is nil.
func New(scene Scene) *Juice {
	if scene == nil {
		panic(nilScene)
	}
	return &Juice{scene: scene, handles: make(map[Kind]Handle)}
}

// --- chaining ---

// Sets the chained target, which is used by all effect methods
// whenever their target argument is nil:
//
//	fx.Add(player).Shake(nil, nil, false).Flash(nil, 0, nil)
//
// The chained target is kept until the next Add() call.
func (self *Juice) Add(target Target) *Juice {
	self.target = target
	return self
}

// Returns the chained target set with [Juice.Add](), if any.
func (self *Juice) Target() Target {
	return self.target
}

// --- state ---

// Returns the handle of the most recent animation of the given
// kind, or nil if there's none. Each kind keeps a single slot that
// is overwritten whenever a new effect of that kind starts, so
// e.g. starting a new shake doesn't affect the stored fade handle.
//
// [Juice.ShakeY]() and [Juice.WobbleY]() share the slots of
// [KindShake] and [KindWobble].
func (self *Juice) Handle(kind Kind) Handle {
	return self.handles[kind]
}

// Returns the first error reported by the host [Scene], unmodified.
// Effects whose animation request fails are skipped, but the chain
// keeps going, so you can check once at the end:
//
//	if err := fx.Add(player).Shake(nil, nil, false).Err(); err != nil {
//		// ...
//	}
func (self *Juice) Err() error {
	return self.err
}

// --- position effects ---

// Shakes the target around its current position. By default the
// shake is horizontal, 5 units, 8 yoyo repeats of 50ms with a
// bouncy ease. A positive Y override moves the target up.
func (self *Juice) Shake(target Target, config *Config, destroyOnComplete bool) *Juice {
	return self.tweenEffect(KindShake, target, DirDefault, config, destroyOnComplete)
}

// Vertical version of [Juice.Shake](). Same as passing
// &Config{X: Float(0), Y: Float(5)} to Shake().
func (self *Juice) ShakeY(target Target) *Juice {
	return self.Shake(target, &Config{X: Float(0), Y: Float(5)}, false)
}

// Similar to [Juice.Shake](), but wider and smoother: 20 units,
// 5 yoyo repeats of 150ms with a sine ease.
func (self *Juice) Wobble(target Target, config *Config, destroyOnComplete bool) *Juice {
	return self.tweenEffect(KindWobble, target, DirDefault, config, destroyOnComplete)
}

// Vertical version of [Juice.Wobble](). Same as passing
// &Config{X: Float(0), Y: Float(20)} to Wobble().
func (self *Juice) WobbleY(target Target) *Juice {
	return self.Wobble(target, &Config{X: Float(0), Y: Float(20)}, false)
}

// Drops the target 25 units down from its current position in
// one second, with a bounce ease.
func (self *Juice) Bounce(target Target, config *Config, destroyOnComplete bool) *Juice {
	return self.tweenEffect(KindBounce, target, DirDefault, config, destroyOnComplete)
}

// --- scale effects ---

// Grows the target scale by [ScaleStep] in 750ms.
func (self *Juice) ScaleUp(target Target, config *Config, destroyOnComplete bool) *Juice {
	return self.tweenEffect(KindScaleUp, target, DirDefault, config, destroyOnComplete)
}

// Shrinks the target scale by [ScaleStep] in 750ms.
func (self *Juice) ScaleDown(target Target, config *Config, destroyOnComplete bool) *Juice {
	return self.tweenEffect(KindScaleDown, target, DirDefault, config, destroyOnComplete)
}

// Pulses the target scale up to [PulseFactor] times its current
// value and back, twice.
func (self *Juice) Pulse(target Target, config *Config, destroyOnComplete bool) *Juice {
	return self.tweenEffect(KindPulse, target, DirDefault, config, destroyOnComplete)
}

// Flips the horizontal scale of the target to -1 ([Flipped], also
// the default) or back to 1 ([Restored]).
func (self *Juice) FlipX(target Target, dir Direction, config *Config, destroyOnComplete bool) *Juice {
	return self.tweenEffect(KindFlipX, target, dir, config, destroyOnComplete)
}

// Vertical version of [Juice.FlipX]().
func (self *Juice) FlipY(target Target, dir Direction, config *Config, destroyOnComplete bool) *Juice {
	return self.tweenEffect(KindFlipY, target, dir, config, destroyOnComplete)
}

// Like [Juice.FlipX](), but oscillating back and forth three
// times, which looks like the target is spinning around.
func (self *Juice) SpinX(target Target, dir Direction, config *Config, destroyOnComplete bool) *Juice {
	return self.tweenEffect(KindSpinX, target, dir, config, destroyOnComplete)
}

// Vertical version of [Juice.SpinX]().
func (self *Juice) SpinY(target Target, dir Direction, config *Config, destroyOnComplete bool) *Juice {
	return self.tweenEffect(KindSpinY, target, dir, config, destroyOnComplete)
}

// --- angle and alpha effects ---

// Rotates the target to 360 degrees in 500ms. The angle is
// absolute, so rotating again without resetting does nothing
// unless a different Angle is passed.
func (self *Juice) Rotate(target Target, config *Config, destroyOnComplete bool) *Juice {
	return self.tweenEffect(KindRotate, target, DirDefault, config, destroyOnComplete)
}

// Fades the target alpha to 1 in 750ms.
func (self *Juice) FadeIn(target Target, config *Config, destroyOnComplete bool) *Juice {
	return self.tweenEffect(KindFadeIn, target, DirDefault, config, destroyOnComplete)
}

// Fades the target alpha to 0 in 750ms.
//
// Notice that an Alpha: 0 override falls back to the default,
// see [Merge]().
func (self *Juice) FadeOut(target Target, config *Config, destroyOnComplete bool) *Juice {
	return self.tweenEffect(KindFadeOut, target, DirDefault, config, destroyOnComplete)
}

// Blinks the target alpha between its current value and 0.
func (self *Juice) FadeInOut(target Target, config *Config, destroyOnComplete bool) *Juice {
	return self.tweenEffect(KindFadeInOut, target, DirDefault, config, destroyOnComplete)
}

// --- immediate effects ---

// Fills the target with the given tint and clears it after the
// given duration. Zero durations and nil tints fall back to
// [DefaultFlashDuration] and [DefaultFlashTint]. Doesn't involve
// any tween, only a host timer.
func (self *Juice) Flash(target Target, duration time.Duration, tint color.Color) *Juice {
	target = self.resolveTarget(target)
	if duration <= 0 {
		duration = DefaultFlashDuration
	}
	if tint == nil {
		tint = DefaultFlashTint
	}

	target.SetTintFill(tint)
	self.handles[KindFlash] = self.scene.After(duration, target.ClearTint)
	return self
}

// Immediately sets alpha and scale to 1, angle to 0 and clears any
// tint. Position is left untouched, and animations in progress are
// not stopped.
func (self *Juice) Reset(target Target) *Juice {
	target = self.resolveTarget(target)
	target.Set(PropAlpha, 1)
	target.Set(PropScaleX, 1)
	target.Set(PropScaleY, 1)
	target.Set(PropAngle, 0)
	target.ClearTint()
	return self
}
