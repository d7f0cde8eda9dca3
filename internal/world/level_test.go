package world

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

func TestTileFromRune(t *testing.T) {
	tests := []struct {
		r        rune
		expected TileKind
	}{
		{'#', TileGround},
		{'.', TileAir},
		{'-', TileBlock},
		{'x', TileAir},
		{' ', TileAir},
		{'é', TileAir},
	}

	for _, tc := range tests {
		if got := TileFromRune(tc.r); got != tc.expected {
			t.Errorf("TileFromRune(%q) = %v, expected %v", tc.r, got, tc.expected)
		}
	}
}

func TestParseTextSingleRow(t *testing.T) {
	level, err := ParseText("4 1 0 0\nMAP\n#.-.")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}

	if level.Width != 4 || level.Height != 1 {
		t.Errorf("size = %dx%d, expected 4x1", level.Width, level.Height)
	}
	expected := []TileKind{TileGround, TileAir, TileBlock, TileAir}
	if len(level.Tiles) != len(expected) {
		t.Fatalf("tiles = %v, expected %v", level.Tiles, expected)
	}
	for i := range expected {
		if level.Tiles[i] != expected[i] {
			t.Errorf("tile %d = %v, expected %v", i, level.Tiles[i], expected[i])
		}
	}
}

func TestParseTextMultiRow(t *testing.T) {
	level, err := ParseText("10 2 3 1\r\nMAP\r\n##########\r\n..........\r\n")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}

	if level.Spawn != core.Vec2(3, 1) {
		t.Errorf("spawn = %v, expected (3, 1)", level.Spawn)
	}
	counts := level.Counts()
	if counts[TileGround] != 10 || counts[TileAir] != 10 {
		t.Errorf("counts = %v", counts)
	}
	if k, _ := level.TileAt(9, 0); k != TileGround {
		t.Errorf("top row should be ground, got %v", k)
	}
	if k, _ := level.TileAt(0, 1); k != TileAir {
		t.Errorf("bottom row should be air, got %v", k)
	}
}

func TestParseTextNegativeSpawn(t *testing.T) {
	level, err := ParseText("1 1 -2 5 MAP #")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if level.Spawn != core.Vec2(-2, 5) {
		t.Errorf("spawn = %v", level.Spawn)
	}
}

func TestParseTextTruncatesLongGrid(t *testing.T) {
	level, err := ParseText("2 1 0 0\nMAP\n#-#-#-")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if len(level.Tiles) != 2 {
		t.Errorf("len(tiles) = %d, expected 2", len(level.Tiles))
	}
}

func TestParseTextKeepsShortGrid(t *testing.T) {
	level, err := ParseText("3 2 0 0\nMAP\n##")
	if err != nil {
		t.Fatalf("short grid should parse: %v", err)
	}
	if len(level.Tiles) != 2 {
		t.Errorf("len(tiles) = %d, expected 2", len(level.Tiles))
	}
	if _, ok := level.TileAt(2, 1); ok {
		t.Error("TileAt past the grid should report !ok")
	}
}

func TestParseTextLargeHeaderShortGrid(t *testing.T) {
	level, err := ParseText("4096 4096 0 0\nMAP\n#-")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if len(level.Tiles) != 2 || cap(level.Tiles) != 2 {
		t.Errorf("tiles len/cap = %d/%d, expected 2/2", len(level.Tiles), cap(level.Tiles))
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"non-numeric width", "four 1 0 0\nMAP\n...."},
		{"non-numeric height", "4 one 0 0\nMAP\n...."},
		{"negative width", "-4 1 0 0\nMAP\n...."},
		{"non-numeric spawn", "4 1 x 0\nMAP\n...."},
		{"short header", "4 1"},
		{"empty", ""},
		{"missing marker", "4 1 0 0\n#.-."},
		{"huge header", "2147483647 2147483647 0 0\nMAP\n#"},
		{"width past max", "4097 1 0 0\nMAP\n#"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseText(tc.data)
			if !errors.Is(err, core.ErrParse) {
				t.Errorf("error = %v, expected ErrParse", err)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: caves
name: The Caves
spawn: {x: 1, y: 0}
rows:
  - "#..#"
  - "#--#"
`)

	level, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if level.ID != "caves" || level.Name != "The Caves" {
		t.Errorf("id/name = %q/%q", level.ID, level.Name)
	}
	if level.Width != 4 || level.Height != 2 {
		t.Errorf("size = %dx%d, expected 4x2", level.Width, level.Height)
	}
	if level.Spawn != core.Vec2(1, 0) {
		t.Errorf("spawn = %v", level.Spawn)
	}
	if k, _ := level.TileAt(1, 1); k != TileBlock {
		t.Errorf("TileAt(1, 1) = %v, expected Block", k)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	if _, err := ParseYAML([]byte("rows: [")); !errors.Is(err, core.ErrParse) {
		t.Errorf("broken yaml error = %v", err)
	}
	if _, err := ParseYAML([]byte("id: empty")); !errors.Is(err, core.ErrParse) {
		t.Errorf("sizeless level error = %v", err)
	}
	if _, err := ParseYAML([]byte("width: 4294967296\nheight: 4294967296\nrows: [\"#\"]")); !errors.Is(err, core.ErrParse) {
		t.Errorf("oversized level error = %v", err)
	}
}

func TestParseFile(t *testing.T) {
	level, err := ParseFile("worlds/1.lvl", []byte("2 1 0 0 MAP #."))
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if level.ID != "1" || level.Name != "1" {
		t.Errorf("id/name = %q/%q, expected 1/1", level.ID, level.Name)
	}

	if _, err := ParseFile("worlds/1.json", nil); !errors.Is(err, core.ErrParse) {
		t.Errorf("unknown extension error = %v", err)
	}
}
