package game

import (
	"fmt"
	"io/fs"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/entity"
	"github.com/vovakirdan/tui-tiles/internal/gfx"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

// SceneConfig names the assets a session is built from.
type SceneConfig struct {
	Level      string // Level file path inside FS
	Atlas      string // Tile atlas path
	CellWidth  int
	CellHeight int
	Cells      world.AtlasCells

	PlayerSprite string
	PlayerWidth  int
	PlayerHeight int
}

// Scene is a loaded map with its player placed at the spawn point.
type Scene struct {
	Map    *world.TileMap
	Player *entity.Player
}

// LoadScene loads the level, atlas and player sprite through textures.
// Sessions sharing textures share decoded images.
func LoadScene(fsys fs.FS, textures *gfx.TextureCache, sc SceneConfig) (*Scene, error) {
	tilemap, err := world.Load(fsys, sc.Level, sc.Atlas, textures, sc.CellWidth, sc.CellHeight)
	if err != nil {
		return nil, err
	}
	tilemap = tilemap.WithCells(sc.Cells)

	tex, err := textures.Load(sc.PlayerSprite)
	if err != nil {
		return nil, fmt.Errorf("game: player sprite: %w", err)
	}
	sprite, err := gfx.NewSpriteSheet(tex, tex.Width(), tex.Height())
	if err != nil {
		return nil, fmt.Errorf("game: player sprite: %w", err)
	}

	w, h := sc.PlayerWidth, sc.PlayerHeight
	if w <= 0 {
		w = tex.Width()
	}
	if h <= 0 {
		h = tex.Height()
	}

	return &Scene{
		Map:    tilemap,
		Player: entity.NewPlayer(sprite, tilemap.SpawnPixels(), w, h),
	}, nil
}

// DefaultSceneConfig matches the bundled assets.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Level:        "worlds/1.lvl",
		Atlas:        "spritesheets/day.png",
		CellWidth:    32,
		CellHeight:   32,
		Cells:        world.DefaultAtlasCells(),
		PlayerSprite: "sprites/player.png",
		PlayerWidth:  16,
		PlayerHeight: 16,
	}
}

// Bounds returns the pixel size of the scene's map.
func (s *Scene) Bounds() core.Rect {
	a := s.Map.Atlas()
	return core.NewRect(0, 0, s.Map.Width()*a.CellWidth(), s.Map.Height()*a.CellHeight())
}
