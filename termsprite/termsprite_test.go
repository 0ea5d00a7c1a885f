package termsprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/edwinsyarief/juice"
	"github.com/gdamore/tcell/v2"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func solid(width, height int, clr color.RGBA) *image.RGBA {
	pixels := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels.SetRGBA(x, y, clr)
		}
	}
	return pixels
}

func coveredCells(s *Sprite, width, height int) int {
	count := 0
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if _, covered := s.Cell(col, row, black); covered {
				count++
			}
		}
	}
	return count
}

func TestCell_Coverage(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Sprite)
		want  int
	}{
		{"identity", func(*Sprite) {}, 8},
		{"scaled up", func(s *Sprite) { s.Set(juice.PropScaleX, 2); s.Set(juice.PropScaleY, 2) }, 32},
		{"flipped", func(s *Sprite) { s.Set(juice.PropScaleX, -1) }, 8},
		{"zero scale", func(s *Sprite) { s.Set(juice.PropScaleY, 0) }, 0},
		{"transparent", func(s *Sprite) { s.Set(juice.PropAlpha, 0) }, 0},
		{"moved off screen", func(s *Sprite) { s.Set(juice.PropX, -10) }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(solid(2, 2, red), 5, 5)
			tt.setup(s)
			if got := coveredCells(s, 20, 10); got != tt.want {
				t.Errorf("covered cells = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCell_Bounds(t *testing.T) {
	s := New(solid(2, 2, red), 5, 5)

	tests := []struct {
		col, row int
		want     bool
	}{
		{8, 4, true},
		{11, 5, true},
		{7, 4, false},
		{12, 4, false},
		{8, 3, false},
		{8, 6, false},
	}
	for _, tt := range tests {
		if _, got := s.Cell(tt.col, tt.row, black); got != tt.want {
			t.Errorf("Cell(%d, %d) covered = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestCell_Rotation(t *testing.T) {
	s := New(solid(4, 2, red), 5, 5)
	if _, covered := s.Cell(9, 6, black); covered {
		t.Fatal("unrotated sprite covers a cell below it")
	}
	s.Set(juice.PropAngle, 90)
	if _, covered := s.Cell(9, 6, black); !covered {
		t.Error("rotated sprite does not cover the cell below its center")
	}
}

func TestCell_Colors(t *testing.T) {
	s := New(solid(2, 2, red), 5, 5)

	if got, _ := s.Cell(8, 4, black); got != red {
		t.Errorf("opaque color = %v, want %v", got, red)
	}

	s.Set(juice.PropAlpha, 0.5)
	if got, _ := s.Cell(8, 4, black); got != (color.RGBA{128, 0, 0, 255}) {
		t.Errorf("half alpha color = %v, want {128 0 0 255}", got)
	}

	s.Set(juice.PropAlpha, 1)
	s.SetTintFill(color.White)
	if got, _ := s.Cell(8, 4, black); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("tinted color = %v, want white", got)
	}
	s.ClearTint()
	if got, _ := s.Cell(8, 4, black); got != red {
		t.Errorf("color after ClearTint() = %v, want %v", got, red)
	}
}

func TestCell_TransparentPixels(t *testing.T) {
	pixels := solid(2, 2, red)
	pixels.SetRGBA(0, 0, color.RGBA{})
	s := New(pixels, 5, 5)

	if _, covered := s.Cell(8, 4, black); covered {
		t.Error("transparent pixel reported as covered")
	}
	if _, covered := s.Cell(10, 4, black); !covered {
		t.Error("opaque pixel not covered")
	}
}

func TestGetSet(t *testing.T) {
	s := New(nil, 1, 2)
	want := map[juice.Property]float64{
		juice.PropX: 1, juice.PropY: 2, juice.PropScaleX: 1, juice.PropScaleY: 1, juice.PropAngle: 0, juice.PropAlpha: 1,
	}
	for prop, value := range want {
		if got := s.Get(prop); got != value {
			t.Errorf("Get(%s) = %v, want %v", prop, got, value)
		}
		s.Set(prop, value+3)
		if got := s.Get(prop); got != value+3 {
			t.Errorf("Get(%s) after Set = %v, want %v", prop, got, value+3)
		}
	}
	if _, covered := s.Cell(0, 0, black); covered {
		t.Error("sprite without pixels covers cells")
	}
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	New(solid(2, 2, red), 5, 5).Draw(screen, black)

	_, _, style, _ := screen.GetContent(8, 4)
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("covered cell background = %v, want red", bg)
	}
	_, _, style, _ = screen.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); bg == tcell.NewRGBColor(255, 0, 0) {
		t.Error("uncovered cell painted")
	}
}
