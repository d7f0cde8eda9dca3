// Package gfx turns image files into textures and draws sprite sheet cells.
package gfx

import (
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/resource"
)

// TextureCache is the shared texture store handed to sheets and entities.
type TextureCache = resource.Cache[string, *core.Texture]

// TextureLoader decodes image files from a filesystem into textures.
// It implements resource.Loader so it can back a TextureCache.
type TextureLoader struct {
	FS     fs.FS
	Logger *log.Logger
}

// NewTextureCache creates a cache that decodes textures from fsys.
func NewTextureCache(fsys fs.FS, logger *log.Logger) *TextureCache {
	return resource.New[string, *core.Texture](TextureLoader{FS: fsys, Logger: logger})
}

// Load reads and decodes the image at path.
func (l TextureLoader) Load(path string) (*core.Texture, error) {
	f, err := l.FS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gfx: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("gfx: decode %s: %w", path, err)
	}

	tex := FromImage(img)
	if l.Logger != nil {
		l.Logger.Info("loaded texture", "path", path, "width", tex.Width(), "height", tex.Height())
	}
	return tex, nil
}

// FromImage converts any decoded image into a texture.
func FromImage(img image.Image) *core.Texture {
	b := img.Bounds()
	tex := core.NewTexture(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			tex.Set(x-b.Min.X, y-b.Min.Y, core.Color{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(bl >> 8),
				A: uint8(a >> 8),
			})
		}
	}
	return tex
}

// PlaceholderLoader wraps another loader and substitutes a placeholder
// texture when loading fails, so a missing asset degrades the picture
// instead of ending the session.
type PlaceholderLoader struct {
	Next   resource.Loader[string, *core.Texture]
	Logger *log.Logger
}

// Load implements resource.Loader.
func (l PlaceholderLoader) Load(path string) (*core.Texture, error) {
	tex, err := l.Next.Load(path)
	if err == nil {
		return tex, nil
	}
	if l.Logger != nil {
		l.Logger.Warn("using placeholder texture", "path", path, "error", err)
	}
	return Placeholder(), nil
}

// Placeholder returns a repeating magenta/black checkerboard.
func Placeholder() *core.Texture {
	const size = 8
	tex := core.NewTexture(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/4+y/4)%2 == 0 {
				tex.Set(x, y, core.ColorMagenta)
			} else {
				tex.Set(x, y, core.ColorBlack)
			}
		}
	}
	tex.Repeat = true
	return tex
}
