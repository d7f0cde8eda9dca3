// Package world loads tile levels and draws them through a sprite atlas.
package world

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// TileKind is the closed set of tile types.
type TileKind int

const (
	TileAir    TileKind = iota // Empty space, also the fallback for unknown runes
	TileGround                 // Solid ground
	TileBlock                  // Floating block
)

// String returns a human-readable name for the tile kind.
func (k TileKind) String() string {
	switch k {
	case TileAir:
		return "Air"
	case TileGround:
		return "Ground"
	case TileBlock:
		return "Block"
	default:
		return "Unknown"
	}
}

// TileFromRune maps a level character to a tile kind.
// Characters:
//
//	'#' = ground
//	'.' = air
//	'-' = block
//
// Anything else is air.
func TileFromRune(r rune) TileKind {
	switch r {
	case '#':
		return TileGround
	case '.':
		return TileAir
	case '-':
		return TileBlock
	default:
		return TileAir
	}
}

// mapMarker separates the header from the tile grid in text levels.
const mapMarker = "MAP"

// MaxSide bounds level width and height, in tiles.
const MaxSide = 4096

// Level is a parsed level description, independent of any atlas.
type Level struct {
	ID     string
	Name   string
	Width  int
	Height int
	Spawn  core.Vec2f // In tile units
	Tiles  []TileKind // Row-major, index = x + y*Width
}

// TileAt returns the tile at (x, y). ok is false outside the grid or past
// the end of a short grid.
func (l *Level) TileAt(x, y int) (kind TileKind, ok bool) {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return TileAir, false
	}
	i := x + y*l.Width
	if i >= len(l.Tiles) {
		return TileAir, false
	}
	return l.Tiles[i], true
}

// Counts returns how many tiles of each kind the grid holds.
func (l *Level) Counts() map[TileKind]int {
	counts := make(map[TileKind]int)
	for _, k := range l.Tiles {
		counts[k]++
	}
	return counts
}

// ParseText parses the positional text format:
//
//	<width> <height> <spawnX> <spawnY>
//	MAP
//	<height rows of width characters>
//
// Everything after the first MAP marker, trimmed and with line breaks removed,
// is the row-major grid. A grid longer than width*height is truncated; a
// shorter one is kept as is and reported when drawn.
func ParseText(data string) (Level, error) {
	fields := strings.Fields(data)
	if len(fields) < 4 {
		return Level{}, fmt.Errorf("world: header needs 4 fields, got %d: %w", len(fields), core.ErrParse)
	}

	width, err := strconv.ParseUint(fields[0], 10, 31)
	if err != nil {
		return Level{}, fmt.Errorf("world: width %q: %w: %w", fields[0], core.ErrParse, err)
	}
	height, err := strconv.ParseUint(fields[1], 10, 31)
	if err != nil {
		return Level{}, fmt.Errorf("world: height %q: %w: %w", fields[1], core.ErrParse, err)
	}
	spawnX, err := strconv.Atoi(fields[2])
	if err != nil {
		return Level{}, fmt.Errorf("world: spawn x %q: %w: %w", fields[2], core.ErrParse, err)
	}
	spawnY, err := strconv.Atoi(fields[3])
	if err != nil {
		return Level{}, fmt.Errorf("world: spawn y %q: %w: %w", fields[3], core.ErrParse, err)
	}

	if err := checkSize(int(width), int(height)); err != nil {
		return Level{}, err
	}

	_, grid, found := strings.Cut(data, mapMarker)
	if !found {
		return Level{}, fmt.Errorf("world: missing %s marker: %w", mapMarker, core.ErrParse)
	}
	grid = strings.TrimSpace(grid)
	grid = strings.NewReplacer("\n", "", "\r", "").Replace(grid)

	level := Level{
		Width:  int(width),
		Height: int(height),
		Spawn:  core.Vec2i(spawnX, spawnY),
	}
	level.Tiles = tilesFromGrid(grid, level.Width*level.Height)
	return level, nil
}

func checkSize(width, height int) error {
	if width > MaxSide || height > MaxSide {
		return fmt.Errorf("world: level size %dx%d exceeds %d: %w", width, height, MaxSide, core.ErrParse)
	}
	return nil
}

// tilesFromGrid converts runes to tiles, keeping at most limit entries.
// The header size is untrusted, so capacity follows the grid.
func tilesFromGrid(grid string, limit int) []TileKind {
	tiles := make([]TileKind, 0, min(limit, utf8.RuneCountInString(grid)))
	for _, r := range grid {
		if len(tiles) == limit {
			break
		}
		tiles = append(tiles, TileFromRune(r))
	}
	return tiles
}

// yamlLevel is the YAML level structure.
type yamlLevel struct {
	ID     string    `yaml:"id"`
	Name   string    `yaml:"name"`
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	Spawn  yamlPoint `yaml:"spawn"`
	Rows   []string  `yaml:"rows"`
}

type yamlPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseYAML parses a YAML level. Missing width/height are derived from the rows.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("world: yaml unmarshal: %w: %w", core.ErrParse, err)
	}
	if yl.Height == 0 {
		yl.Height = len(yl.Rows)
	}
	if yl.Width == 0 {
		for _, row := range yl.Rows {
			yl.Width = core.Max(yl.Width, len([]rune(row)))
		}
	}
	if yl.Width <= 0 || yl.Height <= 0 {
		return Level{}, fmt.Errorf("world: yaml level has no size: %w", core.ErrParse)
	}
	if err := checkSize(yl.Width, yl.Height); err != nil {
		return Level{}, err
	}

	return Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Width:  yl.Width,
		Height: yl.Height,
		Spawn:  core.Vec2i(yl.Spawn.X, yl.Spawn.Y),
		Tiles:  tilesFromGrid(strings.Join(yl.Rows, ""), yl.Width*yl.Height),
	}, nil
}

// ParseFile routes to the parser for the file's extension and fills in the
// ID from the file name when the format does not carry one.
func ParseFile(name string, data []byte) (Level, error) {
	var (
		level Level
		err   error
	)
	ext := strings.ToLower(path.Ext(name))
	switch ext {
	case ".lvl", ".txt":
		level, err = ParseText(string(data))
	case ".yaml", ".yml":
		level, err = ParseYAML(data)
	default:
		return Level{}, fmt.Errorf("world: unsupported level extension %q: %w", ext, core.ErrParse)
	}
	if err != nil {
		return Level{}, err
	}

	if level.ID == "" {
		level.ID = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	if level.Name == "" {
		level.Name = level.ID
	}
	return level, nil
}

// FormatExtensions returns supported level file extensions.
func FormatExtensions() []string {
	return []string{".lvl", ".txt", ".yaml", ".yml"}
}
