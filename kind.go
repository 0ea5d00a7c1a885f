package juice

import "fmt"

// Effect kinds. Each kind keeps its own handle slot on [Juice],
// see [Juice.Handle]().
type Kind uint8

const (
	KindShake Kind = iota
	KindWobble
	KindScaleUp
	KindScaleDown
	KindPulse
	KindFlash
	KindRotate
	KindBounce
	KindFadeIn
	KindFadeOut
	KindFadeInOut
	KindFlipX
	KindFlipY
	KindSpinX
	KindSpinY
	kindEndSentinel
)

var kindNames = [kindEndSentinel]string{
	"shake", "wobble", "scaleUp", "scaleDown", "pulse", "flash",
	"rotate", "bounce", "fadeIn", "fadeOut", "fadeInOut",
	"flipX", "flipY", "spinX", "spinY",
}

func (self Kind) String() string {
	if self >= kindEndSentinel {
		return fmt.Sprintf("Kind(%d)", uint8(self))
	}
	return kindNames[self]
}

// Returns the kind with the given [Kind.String]() name.
func ParseKind(name string) (Kind, error) {
	for i, kindName := range kindNames {
		if kindName == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown effect kind %q", name)
}

// Returns all the effect kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindEndSentinel)
	for kind := Kind(0); kind < kindEndSentinel; kind++ {
		kinds = append(kinds, kind)
	}
	return kinds
}
