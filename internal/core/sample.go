package core

// HalfBlock is the glyph used to show two vertical pixels in one terminal cell:
// the foreground paints the top half, the background the bottom half.
const HalfBlock = '▀'

// Cell is one terminal cell worth of canvas pixels.
type Cell struct {
	Top    Color
	Bottom Color
}

// Downsample maps the canvas onto a cols x rows grid of half-block cells,
// preserving the aspect ratio and letterboxing the rest in black.
// The result is row-major and reuses dst when it is large enough.
func (c *Canvas) Downsample(cols, rows int, dst []Cell) []Cell {
	n := cols * rows
	if n <= 0 {
		return dst[:0]
	}
	if cap(dst) < n {
		dst = make([]Cell, n)
	}
	dst = dst[:n]

	subRows := rows * 2
	scale := float64(cols) / float64(c.width)
	if s := float64(subRows) / float64(c.height); s < scale {
		scale = s
	}
	vw := int(float64(c.width) * scale)
	vh := int(float64(c.height) * scale)
	offX := (cols - vw) / 2
	offY := (subRows - vh) / 2

	sample := func(px, py int) Color {
		lx, ly := px-offX, py-offY
		if lx < 0 || ly < 0 || lx >= vw || ly >= vh {
			return ColorBlack
		}
		sx := Min(int((float64(lx)+0.5)/scale), c.width-1)
		sy := Min(int((float64(ly)+0.5)/scale), c.height-1)
		return c.pix[sy*c.width+sx]
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			dst[y*cols+x] = Cell{
				Top:    sample(x, y*2),
				Bottom: sample(x, y*2+1),
			}
		}
	}
	return dst
}
