package world

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/gfx"
	"github.com/vovakirdan/tui-tiles/internal/resource"
)

type copyCall struct {
	src, dst core.Rect
}

type recorder struct {
	calls  []copyCall
	failAt int // 1-based call that fails, 0 for never
}

func (r *recorder) Clear(core.Color) {}

func (r *recorder) Copy(_ *core.Texture, src, dst core.Rect) error {
	r.calls = append(r.calls, copyCall{src: src, dst: dst})
	if r.failAt > 0 && len(r.calls) == r.failAt {
		return core.ErrRender
	}
	return nil
}

func testAtlas(t *testing.T) *gfx.SpriteSheet {
	t.Helper()
	sheet, err := gfx.NewSpriteSheet(core.NewTexture(1024, 64), 32, 32)
	if err != nil {
		t.Fatalf("NewSpriteSheet failed: %v", err)
	}
	return sheet
}

func testTextures() *gfx.TextureCache {
	return resource.New[string, *core.Texture](resource.LoaderFunc[string, *core.Texture](
		func(path string) (*core.Texture, error) {
			if strings.Contains(path, "missing") {
				return nil, errors.New("no such file")
			}
			return core.NewTexture(1024, 64), nil
		}))
}

func TestTileMapDrawOrderAndCells(t *testing.T) {
	level, err := ParseText("2 2 0 0\nMAP\n#.\n-#")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	m := NewTileMap(level, testAtlas(t), DefaultAtlasCells())

	rec := &recorder{}
	if err := m.Draw(rec); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	expected := []copyCall{
		{src: core.NewRect(0, 0, 32, 32), dst: core.NewRect(0, 0, 32, 32)},    // ground
		{src: core.NewRect(960, 0, 32, 32), dst: core.NewRect(32, 0, 32, 32)}, // air
		{src: core.NewRect(0, 32, 32, 32), dst: core.NewRect(0, 32, 32, 32)},  // block
		{src: core.NewRect(0, 0, 32, 32), dst: core.NewRect(32, 32, 32, 32)},  // ground
	}
	if len(rec.calls) != len(expected) {
		t.Fatalf("calls = %d, expected %d", len(rec.calls), len(expected))
	}
	for i := range expected {
		if rec.calls[i] != expected[i] {
			t.Errorf("call %d = %+v, expected %+v", i, rec.calls[i], expected[i])
		}
	}
}

func TestTileMapDrawContinuesPastFailure(t *testing.T) {
	level, _ := ParseText("3 1 0 0\nMAP\n###")
	m := NewTileMap(level, testAtlas(t), DefaultAtlasCells())

	rec := &recorder{failAt: 2}
	err := m.Draw(rec)
	if !errors.Is(err, core.ErrRender) {
		t.Errorf("error = %v, expected ErrRender", err)
	}
	if len(rec.calls) != 3 {
		t.Errorf("calls = %d, every tile should still be attempted", len(rec.calls))
	}
}

func TestTileMapDrawShortGrid(t *testing.T) {
	level, _ := ParseText("2 2 0 0\nMAP\n##")
	m := NewTileMap(level, testAtlas(t), DefaultAtlasCells())

	rec := &recorder{}
	err := m.Draw(rec)
	if !errors.Is(err, core.ErrRender) {
		t.Errorf("error = %v, expected ErrRender", err)
	}
	if !strings.Contains(err.Error(), "2 tiles failed") {
		t.Errorf("error should count failed tiles: %v", err)
	}
	if len(rec.calls) != 2 {
		t.Errorf("calls = %d, expected the 2 present tiles", len(rec.calls))
	}
}

func TestTileMapWithCells(t *testing.T) {
	level, _ := ParseText("1 1 0 0 MAP .")
	m := NewTileMap(level, testAtlas(t), DefaultAtlasCells())
	custom := m.WithCells(AtlasCells{Air: CellRef{Col: 2, Row: 1}})

	rec := &recorder{}
	if err := custom.Draw(rec); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if rec.calls[0].src != core.NewRect(64, 32, 32, 32) {
		t.Errorf("src = %v", rec.calls[0].src)
	}
	if m.cells != DefaultAtlasCells() {
		t.Error("WithCells should not modify the original map")
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"worlds/1.lvl": {Data: []byte("3 2 1 1\nMAP\n...\n###\n")},
	}

	m, err := Load(fsys, "worlds/1.lvl", "spritesheets/day.png", testTextures(), 32, 32)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Width() != 3 || m.Height() != 2 {
		t.Errorf("size = %dx%d", m.Width(), m.Height())
	}
	if m.Level().ID != "1" {
		t.Errorf("id = %q", m.Level().ID)
	}
	if m.Spawn() != core.Vec2(1, 1) {
		t.Errorf("spawn = %v", m.Spawn())
	}
	if m.SpawnPixels() != core.Vec2(32, 32) {
		t.Errorf("spawn pixels = %v", m.SpawnPixels())
	}
	if k, ok := m.TileAt(2, 1); !ok || k != TileGround {
		t.Errorf("TileAt(2, 1) = %v, %v", k, ok)
	}
}

func TestLoadErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"worlds/1.lvl":   {Data: []byte("3 1 0 0\nMAP\n###")},
		"worlds/bad.lvl": {Data: []byte("three 1 0 0\nMAP\n###")},
	}

	tests := []struct {
		name     string
		level    string
		atlas    string
		expected error
	}{
		{"missing level", "worlds/2.lvl", "day.png", core.ErrLoad},
		{"bad header", "worlds/bad.lvl", "day.png", core.ErrParse},
		{"missing atlas", "worlds/1.lvl", "missing.png", core.ErrLoad},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(fsys, tc.level, tc.atlas, testTextures(), 32, 32)
			if !errors.Is(err, tc.expected) {
				t.Errorf("error = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestLoadSharesAtlas(t *testing.T) {
	fsys := fstest.MapFS{
		"a.lvl": {Data: []byte("1 1 0 0 MAP #")},
		"b.lvl": {Data: []byte("1 1 0 0 MAP -")},
	}
	textures := testTextures()

	a, err := Load(fsys, "a.lvl", "day.png", textures, 32, 32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Load(fsys, "b.lvl", "day.png", textures, 32, 32)
	if err != nil {
		t.Fatal(err)
	}
	if a.Atlas().Texture() != b.Atlas().Texture() {
		t.Error("maps using the same atlas path should share the texture")
	}
	if textures.Len() != 1 {
		t.Errorf("cache len = %d, expected 1", textures.Len())
	}
}
