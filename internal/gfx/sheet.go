package gfx

import (
	"fmt"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// SpriteSheet is a texture divided into fixed-size cells addressed by column and row.
// The texture is shared: several sheets may reference the same cached texture.
type SpriteSheet struct {
	texture    *core.Texture
	cellWidth  int
	cellHeight int
}

// NewSpriteSheet wraps an already loaded texture.
func NewSpriteSheet(tex *core.Texture, cellWidth, cellHeight int) (*SpriteSheet, error) {
	if tex == nil {
		return nil, fmt.Errorf("gfx: sprite sheet without texture: %w", core.ErrLoad)
	}
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("gfx: invalid cell size %dx%d: %w", cellWidth, cellHeight, core.ErrLoad)
	}
	return &SpriteSheet{
		texture:    tex,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}, nil
}

// LoadSpriteSheet loads the texture at path through the cache.
func LoadSpriteSheet(textures *TextureCache, path string, cellWidth, cellHeight int) (*SpriteSheet, error) {
	tex, err := textures.Load(path)
	if err != nil {
		return nil, err
	}
	return NewSpriteSheet(tex, cellWidth, cellHeight)
}

// CellWidth returns the width of one cell in pixels.
func (s *SpriteSheet) CellWidth() int {
	return s.cellWidth
}

// CellHeight returns the height of one cell in pixels.
func (s *SpriteSheet) CellHeight() int {
	return s.cellHeight
}

// Texture returns the shared backing texture.
func (s *SpriteSheet) Texture() *core.Texture {
	return s.texture
}

// CellRect returns the source rectangle of cell (col, row).
// No bounds checking: addressing a cell outside the texture is the caller's problem.
func (s *SpriteSheet) CellRect(col, row int) core.Rect {
	return core.NewRect(col*s.cellWidth, row*s.cellHeight, s.cellWidth, s.cellHeight)
}

// DrawCell blits cell (col, row) unscaled with its top-left corner at (x, y).
func (s *SpriteSheet) DrawCell(dst core.RenderTarget, col, row, x, y int) error {
	return s.DrawCellTo(dst, col, row, core.NewRect(x, y, s.cellWidth, s.cellHeight))
}

// DrawCellTo blits cell (col, row) into an arbitrary destination rectangle.
func (s *SpriteSheet) DrawCellTo(dst core.RenderTarget, col, row int, to core.Rect) error {
	return dst.Copy(s.texture, s.CellRect(col, row), to)
}
