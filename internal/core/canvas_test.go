package core

import (
	"errors"
	"testing"
)

var (
	red   = RGB(255, 0, 0)
	green = RGB(0, 255, 0)
	blue  = RGB(0, 0, 255)
)

// checker builds a 2x2-cell texture: cell (0,0) red, (1,0) green, (0,1) blue, (1,1) transparent.
func checker(cell int) *Texture {
	tex := NewTexture(cell*2, cell*2)
	for y := 0; y < cell*2; y++ {
		for x := 0; x < cell*2; x++ {
			switch {
			case x < cell && y < cell:
				tex.Set(x, y, red)
			case y < cell:
				tex.Set(x, y, green)
			case x < cell:
				tex.Set(x, y, blue)
			}
		}
	}
	return tex
}

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(8, 4)

	if c.Width() != 8 || c.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 8x4", c.Width(), c.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if c.At(x, y) != ColorBlack {
				t.Errorf("new canvas should be black, got %v at (%d, %d)", c.At(x, y), x, y)
			}
		}
	}
}

func TestCanvasSetAtClear(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(1, 2, red)
	if c.At(1, 2) != red {
		t.Errorf("At(1, 2) = %v, expected red", c.At(1, 2))
	}

	// Out of bounds should be silent
	c.Set(-1, 0, red)
	c.Set(4, 0, red)
	if c.At(-1, 0) != ColorBlack || c.At(0, 99) != ColorBlack {
		t.Error("out of bounds At should return black")
	}

	c.Clear(ColorWhite)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c.At(x, y) != ColorWhite {
				t.Errorf("after Clear expected white at (%d, %d)", x, y)
			}
		}
	}
}

func TestCanvasCopyCell(t *testing.T) {
	c := NewCanvas(8, 8)
	tex := checker(2)

	// Green cell (1,0) to (4,4)
	if err := c.Copy(tex, NewRect(2, 0, 2, 2), NewRect(4, 4, 2, 2)); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	for y := 4; y < 6; y++ {
		for x := 4; x < 6; x++ {
			if c.At(x, y) != green {
				t.Errorf("expected green at (%d, %d), got %v", x, y, c.At(x, y))
			}
		}
	}
	if c.At(3, 4) != ColorBlack || c.At(6, 4) != ColorBlack {
		t.Error("Copy wrote outside its destination")
	}
}

func TestCanvasCopySkipsTransparent(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(ColorWhite)

	// Transparent cell (1,1)
	if err := c.Copy(checker(2), NewRect(2, 2, 2, 2), NewRect(0, 0, 2, 2)); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if c.At(0, 0) != ColorWhite {
		t.Errorf("transparent pixels must not overwrite, got %v", c.At(0, 0))
	}
}

func TestCanvasCopyScales(t *testing.T) {
	c := NewCanvas(8, 8)

	// Whole 4x4 checker stretched to 8x8: each texel becomes 2x2
	if err := c.Copy(checker(2), NewRect(0, 0, 4, 4), NewRect(0, 0, 8, 8)); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	tests := []struct {
		x, y     int
		expected Color
	}{
		{0, 0, red},
		{3, 3, red},
		{4, 0, green},
		{7, 3, green},
		{0, 4, blue},
		{7, 7, ColorBlack}, // transparent quadrant leaves the clear color
	}
	for _, tc := range tests {
		if got := c.At(tc.x, tc.y); got != tc.expected {
			t.Errorf("At(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestCanvasCopyClipsDestination(t *testing.T) {
	c := NewCanvas(4, 4)

	if err := c.Copy(checker(2), NewRect(0, 0, 2, 2), NewRect(3, -1, 2, 2)); err != nil {
		t.Fatalf("partially visible copy should not fail: %v", err)
	}
	if c.At(3, 0) != red {
		t.Errorf("visible part not drawn, got %v", c.At(3, 0))
	}

	if err := c.Copy(checker(2), NewRect(0, 0, 2, 2), NewRect(50, 50, 2, 2)); err != nil {
		t.Fatalf("fully clipped copy should not fail: %v", err)
	}
}

func TestCanvasCopyErrors(t *testing.T) {
	c := NewCanvas(4, 4)
	tex := checker(2)

	tests := []struct {
		name string
		tex  *Texture
		src  Rect
		dst  Rect
	}{
		{"nil texture", nil, NewRect(0, 0, 1, 1), NewRect(0, 0, 1, 1)},
		{"source outside", tex, NewRect(30*2, 0, 2, 2), NewRect(0, 0, 2, 2)},
		{"empty source", tex, NewRect(0, 0, 0, 2), NewRect(0, 0, 2, 2)},
		{"empty destination", tex, NewRect(0, 0, 2, 2), NewRect(0, 0, 2, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := c.Copy(tc.tex, tc.src, tc.dst)
			if !errors.Is(err, ErrRender) {
				t.Errorf("Copy() error = %v, expected ErrRender", err)
			}
		})
	}
}

func TestCanvasCopyRepeat(t *testing.T) {
	c := NewCanvas(2, 2)
	tex := checker(1)
	tex.Repeat = true

	// (2,0) wraps to texel (0,0), which is red
	if err := c.Copy(tex, NewRect(2, 0, 1, 1), NewRect(0, 0, 1, 1)); err != nil {
		t.Fatalf("repeating texture should accept any source: %v", err)
	}
	if c.At(0, 0) != red {
		t.Errorf("At(0, 0) = %v, expected red", c.At(0, 0))
	}
}

func TestCanvasDownsample(t *testing.T) {
	c := NewCanvas(4, 4)
	fill(c, NewRect(0, 0, 2, 2), red)
	fill(c, NewRect(2, 0, 2, 2), green)
	fill(c, NewRect(0, 2, 4, 1), blue)

	// 4 cols x 2 rows = 4x4 sub-pixels: one to one
	cells := c.Downsample(4, 2, nil)
	if len(cells) != 8 {
		t.Fatalf("len = %d, expected 8", len(cells))
	}
	if cells[0] != (Cell{Top: red, Bottom: red}) {
		t.Errorf("cell (0,0) = %v", cells[0])
	}
	if cells[3] != (Cell{Top: green, Bottom: green}) {
		t.Errorf("cell (3,0) = %v", cells[3])
	}
	if cells[4] != (Cell{Top: blue, Bottom: ColorBlack}) {
		t.Errorf("cell (0,1) = %v", cells[4])
	}
}

func TestCanvasDownsampleLetterbox(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Clear(ColorWhite)

	// 6 cols x 1 row = 6x2 sub-pixels; a square canvas fills the middle 2 columns
	cells := c.Downsample(6, 1, nil)
	if cells[0].Top != ColorBlack || cells[5].Top != ColorBlack {
		t.Error("sides should be letterboxed in black")
	}
	if cells[2].Top != ColorWhite || cells[3].Bottom != ColorWhite {
		t.Error("centre should show the canvas")
	}
}

func TestCanvasDownsampleReusesBuffer(t *testing.T) {
	c := NewCanvas(4, 4)
	buf := make([]Cell, 0, 16)

	out := c.Downsample(4, 2, buf)
	if &out[0] != &buf[:1][0] {
		t.Error("Downsample should reuse a large enough buffer")
	}
	if got := c.Downsample(0, 10, buf); len(got) != 0 {
		t.Errorf("zero columns should produce no cells, got %d", len(got))
	}
}

func fill(c *Canvas, r Rect, col Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.Set(x, y, col)
		}
	}
}
