package gfx

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/resource"
)

// encodePNG builds a w x h PNG whose pixel (x, y) has red = x and green = y.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

type copyCall struct {
	tex      *core.Texture
	src, dst core.Rect
}

type recorder struct {
	calls []copyCall
	err   error
}

func (r *recorder) Clear(core.Color) {}

func (r *recorder) Copy(tex *core.Texture, src, dst core.Rect) error {
	r.calls = append(r.calls, copyCall{tex: tex, src: src, dst: dst})
	return r.err
}

func TestTextureLoaderDecodesPNG(t *testing.T) {
	fsys := fstest.MapFS{
		"sprites/player.png": {Data: encodePNG(t, 4, 3)},
	}

	tex, err := TextureLoader{FS: fsys}.Load("sprites/player.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tex.Width() != 4 || tex.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 4x3", tex.Width(), tex.Height())
	}
	if got := tex.At(3, 2); got != (core.Color{R: 3, G: 2, B: 7, A: 255}) {
		t.Errorf("At(3, 2) = %v", got)
	}
}

func TestTextureLoaderErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.png": {Data: []byte("not a png")},
	}
	loader := TextureLoader{FS: fsys}

	if _, err := loader.Load("missing.png"); err == nil {
		t.Error("missing file should fail")
	}
	if _, err := loader.Load("broken.png"); err == nil {
		t.Error("undecodable file should fail")
	}
}

func TestTextureCacheSharesTextures(t *testing.T) {
	fsys := fstest.MapFS{
		"day.png": {Data: encodePNG(t, 64, 64)},
	}
	cache := NewTextureCache(fsys, nil)

	a, err := LoadSpriteSheet(cache, "day.png", 32, 32)
	if err != nil {
		t.Fatalf("LoadSpriteSheet failed: %v", err)
	}
	b, err := LoadSpriteSheet(cache, "day.png", 16, 16)
	if err != nil {
		t.Fatalf("LoadSpriteSheet failed: %v", err)
	}
	if a.Texture() != b.Texture() {
		t.Error("sheets built from the same path should share one texture")
	}

	if _, err := LoadSpriteSheet(cache, "night.png", 32, 32); !errors.Is(err, core.ErrLoad) {
		t.Errorf("missing atlas error = %v, expected ErrLoad", err)
	}
}

func TestPlaceholderLoader(t *testing.T) {
	cache := resource.New[string, *core.Texture](PlaceholderLoader{
		Next: TextureLoader{FS: fstest.MapFS{}},
	})

	tex, err := cache.Load("gone.png")
	if err != nil {
		t.Fatalf("placeholder loader should not fail: %v", err)
	}
	if !tex.Repeat {
		t.Error("placeholder should repeat")
	}

	// Any cell of a repeating texture can be drawn
	c := core.NewCanvas(32, 32)
	if err := c.Copy(tex, core.NewRect(30*32, 0, 32, 32), core.NewRect(0, 0, 32, 32)); err != nil {
		t.Errorf("copy from placeholder failed: %v", err)
	}
	if c.At(0, 0) != core.ColorMagenta {
		t.Errorf("At(0, 0) = %v, expected magenta", c.At(0, 0))
	}
}

func TestNewSpriteSheetValidation(t *testing.T) {
	tex := core.NewTexture(8, 8)

	if _, err := NewSpriteSheet(nil, 8, 8); !errors.Is(err, core.ErrLoad) {
		t.Errorf("nil texture error = %v", err)
	}
	if _, err := NewSpriteSheet(tex, 0, 8); err == nil {
		t.Error("zero cell width should fail")
	}
	if _, err := NewSpriteSheet(tex, 8, -1); err == nil {
		t.Error("negative cell height should fail")
	}
}

func TestSpriteSheetDrawCell(t *testing.T) {
	tex := core.NewTexture(128, 64)
	sheet, err := NewSpriteSheet(tex, 32, 32)
	if err != nil {
		t.Fatalf("NewSpriteSheet failed: %v", err)
	}

	rec := &recorder{}
	if err := sheet.DrawCell(rec, 3, 1, 64, 96); err != nil {
		t.Fatalf("DrawCell failed: %v", err)
	}

	if len(rec.calls) != 1 {
		t.Fatalf("calls = %d, expected 1", len(rec.calls))
	}
	call := rec.calls[0]
	if call.tex != tex {
		t.Error("DrawCell should blit from the shared texture")
	}
	if call.src != core.NewRect(96, 32, 32, 32) {
		t.Errorf("src = %v", call.src)
	}
	if call.dst != core.NewRect(64, 96, 32, 32) {
		t.Errorf("dst = %v", call.dst)
	}
}

func TestSpriteSheetPropagatesRenderError(t *testing.T) {
	sheet, _ := NewSpriteSheet(core.NewTexture(32, 32), 32, 32)
	rec := &recorder{err: core.ErrRender}

	if err := sheet.DrawCell(rec, 0, 0, 0, 0); !errors.Is(err, core.ErrRender) {
		t.Errorf("error = %v, expected ErrRender", err)
	}
}

func TestSpriteSheetDrawCellTo(t *testing.T) {
	sheet, _ := NewSpriteSheet(core.NewTexture(64, 64), 64, 64)
	rec := &recorder{}

	to := core.NewRect(10, 20, 16, 16)
	if err := sheet.DrawCellTo(rec, 0, 0, to); err != nil {
		t.Fatalf("DrawCellTo failed: %v", err)
	}
	if rec.calls[0].src != core.NewRect(0, 0, 64, 64) || rec.calls[0].dst != to {
		t.Errorf("call = %+v", rec.calls[0])
	}
}
