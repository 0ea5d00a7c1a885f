package utils

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Create a low resolution image from a simple mask. The value
// 0 is always reserved for transparent, and higher values will
// index the given colors. If no colors are given, 1 will be
// white by default. Each mask cell is expanded into a block of
// cellSize x cellSize pixels. Example usage:
//
//	heart := utils.MaskToImage(7, 1, []uint8{
//	    0, 1, 1, 0, 1, 1, 0,
//	    1, 1, 1, 1, 1, 1, 1,
//	    1, 1, 1, 1, 1, 1, 1,
//	    0, 1, 1, 1, 1, 1, 0,
//	    0, 0, 1, 1, 1, 0, 0,
//	    0, 0, 0, 1, 0, 0, 0,
//	}, utils.RGB(255, 0, 0))
func MaskToImage(width, cellSize int, mask []uint8, colors ...color.RGBA) *ebiten.Image {
	return ebiten.NewImageFromImage(MaskToRGBA(width, cellSize, mask, colors...))
}

// Same as [MaskToImage](), but returning a CPU side image.
func MaskToRGBA(width, cellSize int, mask []uint8, colors ...color.RGBA) *image.RGBA {
	// safety assertions
	if width <= 0 {
		panic("expected width > 0")
	}
	if cellSize <= 0 {
		panic("expected cellSize > 0")
	}
	height := len(mask) / width
	if height*width != len(mask) {
		panic("given width can't split given mask into rows of equal length")
	}

	// no colors fallback
	if len(colors) == 0 {
		colors = []color.RGBA{{255, 255, 255, 255}}
	}

	// create image
	rgba := image.NewRGBA(image.Rect(0, 0, width*cellSize, height*cellSize))
	for index, value := range mask {
		if value == 0 {
			continue
		}
		if int(value) > len(colors) {
			panic("mask value has no matching color")
		}
		clr := colors[value-1]
		cellX, cellY := (index%width)*cellSize, (index/width)*cellSize
		for y := cellY; y < cellY+cellSize; y++ {
			for x := cellX; x < cellX+cellSize; x++ {
				rgba.SetRGBA(x, y, clr)
			}
		}
	}
	return rgba
}

// Returns [color.RGBA]{r, g, b, 255}.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Returns [color.RGBA]{r, g, b, a} after checking that the
// given values constitute a valid premultiplied-alpha color
// (a >= r,g,b). On invalid colors, the function panics.
func RGBA(r, g, b, a uint8) color.RGBA {
	if r > a || g > a || b > a {
		panic("invalid color.RGBA values: premultiplied-alpha requires a >= r,g,b")
	}
	return color.RGBA{r, g, b, a}
}

// Converts a color to float32 RGBA values in [0, 1] range.
//
// This is the format that [ebiten.Vertex] expects.
func ColorToF32(clr color.Color) (r, g, b, a float32) {
	r16, g16, b16, a16 := clr.RGBA()
	return float32(r16) / 65535.0, float32(g16) / 65535.0, float32(b16) / 65535.0, float32(a16) / 65535.0
}
