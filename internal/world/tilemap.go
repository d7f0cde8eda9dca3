package world

import (
	"fmt"
	"io/fs"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/gfx"
)

// CellRef addresses one cell of the tile atlas.
type CellRef struct {
	Col int
	Row int
}

// AtlasCells maps every tile kind to its atlas cell.
type AtlasCells struct {
	Air    CellRef
	Ground CellRef
	Block  CellRef
}

// DefaultAtlasCells is the layout of the bundled day.png atlas.
func DefaultAtlasCells() AtlasCells {
	return AtlasCells{
		Air:    CellRef{Col: 30, Row: 0},
		Ground: CellRef{Col: 0, Row: 0},
		Block:  CellRef{Col: 0, Row: 1},
	}
}

// Cell returns the atlas cell for a tile kind.
func (a AtlasCells) Cell(k TileKind) CellRef {
	switch k {
	case TileGround:
		return a.Ground
	case TileBlock:
		return a.Block
	default:
		return a.Air
	}
}

// TileMap is a level bound to the atlas it is drawn with.
// It is immutable after loading.
type TileMap struct {
	level Level
	atlas *gfx.SpriteSheet
	cells AtlasCells
}

// NewTileMap binds a parsed level to an atlas.
func NewTileMap(level Level, atlas *gfx.SpriteSheet, cells AtlasCells) *TileMap {
	return &TileMap{level: level, atlas: atlas, cells: cells}
}

// Load reads the level at levelPath from fsys and loads its atlas through the
// texture cache with the given cell size.
func Load(fsys fs.FS, levelPath, atlasPath string, textures *gfx.TextureCache, cellW, cellH int) (*TileMap, error) {
	data, err := fs.ReadFile(fsys, levelPath)
	if err != nil {
		return nil, fmt.Errorf("world: read %s: %w: %w", levelPath, core.ErrLoad, err)
	}

	level, err := ParseFile(levelPath, data)
	if err != nil {
		return nil, fmt.Errorf("world: %s: %w", levelPath, err)
	}

	atlas, err := gfx.LoadSpriteSheet(textures, atlasPath, cellW, cellH)
	if err != nil {
		return nil, fmt.Errorf("world: atlas for %s: %w", levelPath, err)
	}

	return NewTileMap(level, atlas, DefaultAtlasCells()), nil
}

// WithCells returns a copy of the map drawn with a different atlas layout.
func (m *TileMap) WithCells(cells AtlasCells) *TileMap {
	clone := *m
	clone.cells = cells
	return &clone
}

// Level returns the parsed level description.
func (m *TileMap) Level() *Level {
	return &m.level
}

// Width returns the map width in tiles.
func (m *TileMap) Width() int {
	return m.level.Width
}

// Height returns the map height in tiles.
func (m *TileMap) Height() int {
	return m.level.Height
}

// Spawn returns the spawn point in tile units.
func (m *TileMap) Spawn() core.Vec2f {
	return m.level.Spawn
}

// SpawnPixels returns the spawn point in canvas pixels.
func (m *TileMap) SpawnPixels() core.Vec2f {
	return m.level.Spawn.Mul(core.Vec2i(m.atlas.CellWidth(), m.atlas.CellHeight()))
}

// Atlas returns the sprite sheet the map is drawn with.
func (m *TileMap) Atlas() *gfx.SpriteSheet {
	return m.atlas
}

// TileAt returns the tile at (x, y).
func (m *TileMap) TileAt(x, y int) (TileKind, bool) {
	return m.level.TileAt(x, y)
}

// Draw blits every tile, row-major, at (x*cellW, y*cellH). A failing tile
// does not stop the pass; the first failure is returned with the number of
// failed tiles.
func (m *TileMap) Draw(dst core.RenderTarget) error {
	var (
		first  error
		failed int
	)
	cw, ch := m.atlas.CellWidth(), m.atlas.CellHeight()

	for y := 0; y < m.level.Height; y++ {
		for x := 0; x < m.level.Width; x++ {
			kind, ok := m.level.TileAt(x, y)
			if !ok {
				failed++
				if first == nil {
					first = fmt.Errorf("world: tile (%d, %d) missing from %d-tile grid: %w",
						x, y, len(m.level.Tiles), core.ErrRender)
				}
				continue
			}

			cell := m.cells.Cell(kind)
			if err := m.atlas.DrawCell(dst, cell.Col, cell.Row, x*cw, y*ch); err != nil {
				failed++
				if first == nil {
					first = err
				}
			}
		}
	}

	if failed > 1 {
		return fmt.Errorf("%w (%d tiles failed)", first, failed)
	}
	return first
}
