// Package assets holds the bundled sprites, tile atlas and levels.
package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed sprites spritesheets worlds
var FS embed.FS

// Open returns the asset filesystem: root on disk when set, otherwise the
// bundled files.
func Open(root string) fs.FS {
	if root != "" {
		return os.DirFS(root)
	}
	return FS
}
