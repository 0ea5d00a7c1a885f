package tween

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

type easeFamily struct {
	name           string
	in, out, inOut ease.TweenFunc
}

// Built-in easing families. A bare family name ("Bounce") means
// its easeOut variant.
var families = []easeFamily{
	{"Quad", ease.InQuad, ease.OutQuad, ease.InOutQuad},
	{"Cubic", ease.InCubic, ease.OutCubic, ease.InOutCubic},
	{"Quart", ease.InQuart, ease.OutQuart, ease.InOutQuart},
	{"Quint", ease.InQuint, ease.OutQuint, ease.InOutQuint},
	{"Sine", ease.InSine, ease.OutSine, ease.InOutSine},
	{"Expo", ease.InExpo, ease.OutExpo, ease.InOutExpo},
	{"Circular", ease.InCirc, ease.OutCirc, ease.InOutCirc},
	{"Elastic", ease.InElastic, ease.OutElastic, ease.InOutElastic},
	{"Back", ease.InBack, ease.OutBack, ease.InOutBack},
	{"Bounce", ease.InBounce, ease.OutBounce, ease.InOutBounce},
}

var easings = buildEasings()

func buildEasings() map[string]ease.TweenFunc {
	table := map[string]ease.TweenFunc{
		"":       ease.Linear,
		"Linear": ease.Linear,
		"Power0": ease.Linear,
	}
	for _, family := range families {
		table[family.name] = family.out
		table[family.name+".easeIn"] = family.in
		table[family.name+".easeOut"] = family.out
		table[family.name+".easeInOut"] = family.inOut
	}
	return table
}

// Returns the easing function registered under the given name.
// The empty name is linear. Unknown names return an error
// wrapping [ErrUnknownEase].
func Easing(name string) (ease.TweenFunc, error) {
	fn, found := easings[name]
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	return fn, nil
}

// Registers a custom easing function under the given name, or
// replaces an existing one. Must not be called while a [Manager]
// is being updated on another goroutine.
func RegisterEasing(name string, fn ease.TweenFunc) {
	if fn == nil {
		panic("can't register a nil easing function")
	}
	easings[name] = fn
}
