package core

import "fmt"

// RenderTarget is anything a texture region can be blitted onto.
// Canvas is the production implementation; tests substitute recorders.
type RenderTarget interface {
	// Clear fills the whole target with c.
	Clear(c Color)

	// Copy blits the src region of tex onto the dst region of the target,
	// scaling with nearest-neighbour sampling when the sizes differ.
	Copy(tex *Texture, src, dst Rect) error
}

// Texture is an immutable-after-load block of pixels.
type Texture struct {
	width  int
	height int
	pix    []Color

	// Repeat makes sampling wrap around instead of rejecting
	// source rectangles that leave the texture.
	Repeat bool
}

// NewTexture allocates a fully transparent texture.
func NewTexture(width, height int) *Texture {
	return &Texture{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Set writes a pixel. Out-of-bounds coordinates are silently ignored.
func (t *Texture) Set(x, y int, c Color) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	t.pix[y*t.width+x] = c
}

// At returns a pixel, or transparent for out-of-bounds coordinates.
func (t *Texture) At(x, y int) Color {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return Color{}
	}
	return t.pix[y*t.width+x]
}

// Bounds returns the full texture rectangle.
func (t *Texture) Bounds() Rect {
	return NewRect(0, 0, t.width, t.height)
}

// Canvas is a 2D pixel buffer the game renders into.
// It decouples game rendering from the terminal: platforms downsample it
// into character cells when presenting.
type Canvas struct {
	width  int
	height int
	pix    []Color
}

// NewCanvas creates a canvas with the given logical size, cleared to black.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
	c.Clear(ColorBlack)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills the entire canvas with the given color.
func (c *Canvas) Clear(col Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// Set places a pixel at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = col
}

// At returns the pixel at the given position.
// Returns black for out-of-bounds coordinates.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ColorBlack
	}
	return c.pix[y*c.width+x]
}

// Copy implements RenderTarget. The destination is clipped to the canvas;
// the source must lie inside the texture unless the texture repeats.
func (c *Canvas) Copy(tex *Texture, src, dst Rect) error {
	if tex == nil {
		return fmt.Errorf("canvas: nil texture: %w", ErrRender)
	}
	if src.Empty() || dst.Empty() {
		return fmt.Errorf("canvas: empty rect src=%v dst=%v: %w", src, dst, ErrRender)
	}
	if !tex.Repeat && !src.Within(tex.width, tex.height) {
		return fmt.Errorf("canvas: source %v outside %dx%d texture: %w",
			src, tex.width, tex.height, ErrRender)
	}

	x0 := Max(dst.X, 0)
	y0 := Max(dst.Y, 0)
	x1 := Min(dst.Right(), c.width)
	y1 := Min(dst.Bottom(), c.height)

	for y := y0; y < y1; y++ {
		sy := src.Y + (y-dst.Y)*src.H/dst.H
		for x := x0; x < x1; x++ {
			sx := src.X + (x-dst.X)*src.W/dst.W
			var col Color
			if tex.Repeat {
				col = tex.At(wrap(sx, tex.width), wrap(sy, tex.height))
			} else {
				col = tex.At(sx, sy)
			}
			if col.Transparent() {
				continue
			}
			c.pix[y*c.width+x] = col
		}
	}
	return nil
}

// wrap maps v into [0, n) for any sign of v.
func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
