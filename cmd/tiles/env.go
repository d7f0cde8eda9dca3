package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/assets"
	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/gfx"
	"github.com/vovakirdan/tui-tiles/internal/resource"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

// env is everything a command needs after flags and config are resolved.
type env struct {
	cfg      config.Config
	logger   *log.Logger
	assets   fs.FS
	textures *gfx.TextureCache
	levels   *world.Loader

	closeLog func() error
}

// loadEnv resolves config and flags. defaultLog receives logs when no log
// file is configured.
func loadEnv(defaultLog io.Writer) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagRenderer != "" {
		cfg.Window.Renderer = flagRenderer
	}
	if flagAssets != "" {
		cfg.Assets.Root = flagAssets
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	e := &env{cfg: cfg, closeLog: func() error { return nil }}

	out := defaultLog
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		e.closeLog = f.Close
	}
	e.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiles",
		Level:           cfg.LogLevel(),
	})
	e.logger.Debug("config loaded", "source", cfg.Source)

	e.assets = assets.Open(cfg.Assets.Root)
	e.textures = newTextures(e.assets, cfg.Assets.PlaceholderOnError, e.logger)
	e.levels = world.NewLoader(e.assets, cfg.World.Dir)
	return e, nil
}

// newTextures builds the shared texture cache, substituting a placeholder for
// unreadable images when placeholder is set.
func newTextures(fsys fs.FS, placeholder bool, logger *log.Logger) *gfx.TextureCache {
	if !placeholder {
		return gfx.NewTextureCache(fsys, logger)
	}
	return resource.New[string, *core.Texture](gfx.PlaceholderLoader{
		Next:   gfx.TextureLoader{FS: fsys, Logger: logger},
		Logger: logger,
	})
}
