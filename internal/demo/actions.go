// Package demo holds the effect bindings shared by the demo binaries:
// one key per effect, each one issuing the effect on the player and
// returning the equivalent call to display on screen.
package demo

import (
	"fmt"
	"strings"

	"github.com/edwinsyarief/juice"
	"github.com/edwinsyarief/juice/internal/demostate"
)

// What the actions operate on.
type Player struct {
	FX     *juice.Juice
	Target juice.Target
	State  *demostate.State

	// Overrides loaded from an effects file, may be nil.
	Configs map[juice.Kind]*juice.Config

	// Position restored by the reset action.
	HomeX, HomeY float64

	// Invoked by the damage action, may be nil.
	OnHit func()
}

// A key bound to an effect.
type Action struct {
	Key  rune
	Name string
	run  func(p *Player) string
}

// Issues the effect and returns the equivalent call. The call is
// also stored as the last call in the player state.
func (self Action) Run(player *Player) string {
	call := self.run(player)
	if player.State != nil {
		player.State.LastCall = call
	}
	return call
}

// The demo bindings in display order.
var Actions = []Action{
	{'r', "reset", func(p *Player) string {
		p.Target.Set(juice.PropX, p.HomeX)
		p.Target.Set(juice.PropY, p.HomeY)
		p.FX.Reset(p.Target)
		return "fx.Reset(sprite)"
	}},
	{'s', "shake", tweened(juice.KindShake, (*juice.Juice).Shake, "Shake")},
	{'S', "shakeY", func(p *Player) string {
		p.FX.ShakeY(p.Target)
		return "fx.ShakeY(sprite)"
	}},
	{'w', "wobble", tweened(juice.KindWobble, (*juice.Juice).Wobble, "Wobble")},
	{'W', "wobbleY", func(p *Player) string {
		p.FX.WobbleY(p.Target)
		return "fx.WobbleY(sprite)"
	}},
	{'f', "flash", func(p *Player) string {
		p.FX.Flash(p.Target, 0, nil)
		return "fx.Flash(sprite, 0, nil)"
	}},
	{'g', "grow", tweened(juice.KindScaleUp, (*juice.Juice).ScaleUp, "ScaleUp")},
	{'h', "shrink", tweened(juice.KindScaleDown, (*juice.Juice).ScaleDown, "ScaleDown")},
	{'p', "pulse", tweened(juice.KindPulse, (*juice.Juice).Pulse, "Pulse")},
	{'i', "fadeIn", func(p *Player) string {
		p.Target.Set(juice.PropAlpha, 0)
		p.FX.FadeIn(p.Target, p.config(juice.KindFadeIn), false)
		return p.call("FadeIn", juice.KindFadeIn)
	}},
	{'o', "fadeOut", tweened(juice.KindFadeOut, (*juice.Juice).FadeOut, "FadeOut")},
	{'u', "fadeInOut", tweened(juice.KindFadeInOut, (*juice.Juice).FadeInOut, "FadeInOut")},
	{'x', "flipX", toggled(juice.KindFlipX, (*juice.Juice).FlipX, "FlipX", func(s *demostate.State) *bool { return &s.FlipX })},
	{'y', "flipY", toggled(juice.KindFlipY, (*juice.Juice).FlipY, "FlipY", func(s *demostate.State) *bool { return &s.FlipY })},
	{'X', "spinX", toggled(juice.KindSpinX, (*juice.Juice).SpinX, "SpinX", func(s *demostate.State) *bool { return &s.SpinX })},
	{'Y', "spinY", toggled(juice.KindSpinY, (*juice.Juice).SpinY, "SpinY", func(s *demostate.State) *bool { return &s.SpinY })},
	{'t', "rotate", tweened(juice.KindRotate, (*juice.Juice).Rotate, "Rotate")},
	{'b', "bounce", tweened(juice.KindBounce, (*juice.Juice).Bounce, "Bounce")},
	{'d', "damage", func(p *Player) string {
		p.FX.Shake(p.Target, p.config(juice.KindShake), false)
		p.FX.Flash(p.Target, 0, nil)
		if p.OnHit != nil {
			p.OnHit()
		}
		return p.call("Shake", juice.KindShake) + "; fx.Flash(sprite, 0, nil)"
	}},
}

// Returns the action bound to the given key.
func Lookup(key rune) (Action, bool) {
	for _, action := range Actions {
		if action.Key == key {
			return action, true
		}
	}
	return Action{}, false
}

// Returns a one line summary of the key bindings.
func Help() string {
	return HelpLines(len(Actions))[0]
}

// Returns the key bindings summary split in lines of at most
// perLine bindings.
func HelpLines(perLine int) []string {
	if perLine <= 0 {
		panic("expected perLine > 0")
	}
	var lines []string
	var line strings.Builder
	for i, action := range Actions {
		if i%perLine != 0 {
			line.WriteByte(' ')
		}
		fmt.Fprintf(&line, "%c:%s", action.Key, action.Name)
		if i%perLine == perLine-1 || i == len(Actions)-1 {
			lines = append(lines, line.String())
			line.Reset()
		}
	}
	return lines
}

type effectFunc func(fx *juice.Juice, target juice.Target, config *juice.Config, destroyOnComplete bool) *juice.Juice

type directedFunc func(fx *juice.Juice, target juice.Target, dir juice.Direction, config *juice.Config, destroyOnComplete bool) *juice.Juice

func tweened(kind juice.Kind, effect effectFunc, method string) func(p *Player) string {
	return func(p *Player) string {
		effect(p.FX, p.Target, p.config(kind), false)
		return p.call(method, kind)
	}
}

// Alternates between flipping and restoring on each press.
func toggled(kind juice.Kind, effect directedFunc, method string, flag func(*demostate.State) *bool) func(p *Player) string {
	return func(p *Player) string {
		next := true
		if p.State != nil {
			next = *flag(p.State)
			*flag(p.State) = !next
		}
		if next {
			effect(p.FX, p.Target, juice.Flipped, p.config(kind), false)
			return fmt.Sprintf("fx.%s(sprite, juice.Flipped, %s, false)", method, p.configArg(kind))
		}
		effect(p.FX, p.Target, juice.Restored, p.config(kind), false)
		return fmt.Sprintf("fx.%s(sprite, juice.Restored, %s, false)", method, p.configArg(kind))
	}
}

func (self *Player) config(kind juice.Kind) *juice.Config {
	return self.Configs[kind]
}

func (self *Player) configArg(kind juice.Kind) string {
	if self.config(kind) == nil {
		return "nil"
	}
	return "cfg[" + kind.String() + "]"
}

func (self *Player) call(method string, kind juice.Kind) string {
	return fmt.Sprintf("fx.%s(sprite, %s, false)", method, self.configArg(kind))
}
