package juice

import (
	"image/color"
	"time"
)

// Fallbacks used by [Juice.Flash]() when no duration or tint is given.
var (
	DefaultFlashDuration time.Duration = 150 * time.Millisecond
	DefaultFlashTint     color.Color   = color.White
)
