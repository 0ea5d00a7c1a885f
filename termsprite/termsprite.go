// Package termsprite implements [juice.Target] for terminal screens.
// Each source pixel is rendered as two character cells wide and one
// tall, so sprites keep their proportions on most terminal fonts.
package termsprite

import (
	"image"
	"image/color"
	"math"

	"github.com/edwinsyarief/juice"
	"github.com/gdamore/tcell/v2"
)

// Horizontal cells per world unit.
const CellAspect = 2

// A terminal sprite. Position is in world units: one unit is one
// source pixel, which is CellAspect columns and one row.
type Sprite struct {
	pixels *image.RGBA
	x, y   float64
	scaleX float64
	scaleY float64
	angle  float64 // degrees
	alpha  float64
	tint   color.Color
}

var _ juice.Target = (*Sprite)(nil)

// Creates a sprite from the given pixels centered at (x, y).
func New(pixels *image.RGBA, x, y float64) *Sprite {
	return &Sprite{pixels: pixels, x: x, y: y, scaleX: 1, scaleY: 1, alpha: 1}
}

func (self *Sprite) Get(prop juice.Property) float64 {
	switch prop {
	case juice.PropX:
		return self.x
	case juice.PropY:
		return self.y
	case juice.PropScaleX:
		return self.scaleX
	case juice.PropScaleY:
		return self.scaleY
	case juice.PropAngle:
		return self.angle
	case juice.PropAlpha:
		return self.alpha
	}
	panic("invalid sprite property " + prop.String())
}

func (self *Sprite) Set(prop juice.Property, value float64) {
	switch prop {
	case juice.PropX:
		self.x = value
	case juice.PropY:
		self.y = value
	case juice.PropScaleX:
		self.scaleX = value
	case juice.PropScaleY:
		self.scaleY = value
	case juice.PropAngle:
		self.angle = value
	case juice.PropAlpha:
		self.alpha = value
	default:
		panic("invalid sprite property " + prop.String())
	}
}

func (self *Sprite) SetTintFill(clr color.Color) { self.tint = clr }
func (self *Sprite) ClearTint()                  { self.tint = nil }

// Returns the color of the sprite at the given screen cell,
// already blended over bg, and whether the sprite covers the cell.
func (self *Sprite) Cell(col, row int, bg color.RGBA) (color.RGBA, bool) {
	if self.pixels == nil || self.alpha <= 0 || self.scaleX == 0 || self.scaleY == 0 {
		return bg, false
	}

	// cell center to sprite local coordinates
	dx := (float64(col)+0.5)/CellAspect - self.x
	dy := float64(row) + 0.5 - self.y
	sin, cos := math.Sincos(-self.angle * math.Pi / 180.0)
	lx := (dx*cos - dy*sin) / self.scaleX
	ly := (dx*sin + dy*cos) / self.scaleY

	bounds := self.pixels.Bounds()
	px := int(math.Floor(lx + float64(bounds.Dx())/2.0))
	py := int(math.Floor(ly + float64(bounds.Dy())/2.0))
	if px < 0 || py < 0 || px >= bounds.Dx() || py >= bounds.Dy() {
		return bg, false
	}
	src := self.pixels.RGBAAt(bounds.Min.X+px, bounds.Min.Y+py)
	if src.A == 0 {
		return bg, false
	}

	if self.tint != nil {
		r, g, b, _ := self.tint.RGBA()
		src = color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), src.A}
	}
	a := min(self.alpha, 1.0) * float64(src.A) / 255.0
	return color.RGBA{
		R: lerp8(bg.R, src.R, a),
		G: lerp8(bg.G, src.G, a),
		B: lerp8(bg.B, src.B, a),
		A: 255,
	}, true
}

// Paints the sprite on the screen over the given background.
func (self *Sprite) Draw(screen tcell.Screen, bg color.RGBA) {
	width, height := screen.Size()
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			clr, covered := self.Cell(col, row, bg)
			if !covered {
				continue
			}
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func lerp8(from, to uint8, t float64) uint8 {
	return uint8(math.Round(float64(from) + (float64(to)-float64(from))*t))
}
