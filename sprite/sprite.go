// Package sprite provides an Ebitengine image wrapper implementing
// [juice.Target], so it can be used directly with the effects of the
// juice package.
package sprite

import (
	"image/color"
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/juice"
	"github.com/edwinsyarief/juice/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// A drawable image with a position, scale, angle, alpha and an
// optional tint fill. The image is drawn centered on its position.
type Sprite struct {
	image    *ebiten.Image
	position ebimath.Vector
	scale    ebimath.Vector
	angle    float64 // degrees
	alpha    float64
	tint     color.Color // nil if no tint fill is active

	drawOpts  ebiten.DrawImageOptions
	colorOpts colorm.DrawImageOptions
}

var _ juice.Target = (*Sprite)(nil)

// Creates a sprite for the given image at the given position,
// with scale 1, angle 0 and alpha 1. The image may be nil, in
// which case nothing is drawn.
func New(image *ebiten.Image, x, y float64) *Sprite {
	return &Sprite{
		image:    image,
		position: ebimath.V(x, y),
		scale:    ebimath.V(1, 1),
		alpha:    1,
	}
}

// --- juice.Target implementation ---

func (self *Sprite) Get(prop juice.Property) float64 {
	switch prop {
	case juice.PropX:
		return self.position.X
	case juice.PropY:
		return self.position.Y
	case juice.PropScaleX:
		return self.scale.X
	case juice.PropScaleY:
		return self.scale.Y
	case juice.PropAngle:
		return self.angle
	case juice.PropAlpha:
		return self.alpha
	default:
		panic("invalid sprite property " + prop.String())
	}
}

func (self *Sprite) Set(prop juice.Property, value float64) {
	switch prop {
	case juice.PropX:
		self.position.X = value
	case juice.PropY:
		self.position.Y = value
	case juice.PropScaleX:
		self.scale.X = value
	case juice.PropScaleY:
		self.scale.Y = value
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

// --- accessors ---

func (self *Sprite) Image() *ebiten.Image     { return self.image }
func (self *Sprite) Position() ebimath.Vector { return self.position }
func (self *Sprite) SetPosition(x, y float64) { self.position = ebimath.V(x, y) }
func (self *Sprite) Scale() ebimath.Vector    { return self.scale }
func (self *Sprite) SetScale(x, y float64)    { self.scale = ebimath.V(x, y) }
func (self *Sprite) Angle() float64           { return self.angle }
func (self *Sprite) Alpha() float64           { return self.alpha }

// Returns the active tint fill color, or nil if there's none.
func (self *Sprite) Tint() color.Color { return self.tint }

// --- drawing ---

// Returns the transform applied to the image when drawing.
func (self *Sprite) GeoM() ebiten.GeoM {
	var geom ebiten.GeoM
	if self.image != nil {
		bounds := self.image.Bounds()
		geom.Translate(-float64(bounds.Dx())/2.0, -float64(bounds.Dy())/2.0)
	}
	geom.Scale(self.scale.X, self.scale.Y)
	geom.Rotate(self.angle * math.Pi / 180.0)
	geom.Translate(self.position.X, self.position.Y)
	return geom
}

// Draws the sprite on the given canvas.
func (self *Sprite) Draw(canvas *ebiten.Image) {
	if self.image == nil || self.alpha <= 0 {
		return
	}
	alpha := min(self.alpha, 1.0)

	if self.tint == nil {
		self.drawOpts.GeoM = self.GeoM()
		self.drawOpts.ColorScale.Reset()
		self.drawOpts.ColorScale.ScaleAlpha(float32(alpha))
		self.drawOpts.Filter = ebiten.FilterLinear
		canvas.DrawImage(self.image, &self.drawOpts)
		return
	}

	// tint fill: keep the image alpha, replace its colors
	r, g, b, _ := utils.ColorToF32(self.tint)
	var colorM colorm.ColorM
	colorM.Scale(0, 0, 0, alpha)
	colorM.Translate(float64(r), float64(g), float64(b), 0)
	self.colorOpts.GeoM = self.GeoM()
	self.colorOpts.Filter = ebiten.FilterLinear
	colorm.DrawImage(canvas, self.image, colorM, &self.colorOpts)
}
