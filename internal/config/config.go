// Package config provides YAML-based configuration loading for the game:
// window, loop timing, physics, assets and key bindings.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/game"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

// Config contains all configuration for a play session.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Loop    LoopConfig    `yaml:"loop"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	World   WorldConfig   `yaml:"world"`
	Input   InputConfig   `yaml:"input"`
	Assets  AssetsConfig  `yaml:"assets"`
	Log     LogConfig     `yaml:"log"`

	// Source is where the configuration was loaded from.
	Source string `yaml:"-"`
}

// WindowConfig defines the logical canvas and how it is shown.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`  // Logical canvas pixels
	Height     int    `yaml:"height"` // Logical canvas pixels
	ClearColor string `yaml:"clear_color"`
	Renderer   string `yaml:"renderer"` // Registered backend name
}

// LoopConfig defines the game loop timing.
type LoopConfig struct {
	FixedStep  float64 `yaml:"fixed_step"`  // Seconds per physics tick
	FrameLimit int     `yaml:"frame_limit"` // Frames per second, 0 = unthrottled
}

// PhysicsConfig defines player movement.
type PhysicsConfig struct {
	Damping      float32 `yaml:"damping"`
	Acceleration float32 `yaml:"acceleration"`
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Sprite string `yaml:"sprite"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CellConfig addresses one atlas cell.
type CellConfig struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// TilesConfig maps tile kinds to atlas cells.
type TilesConfig struct {
	Air    CellConfig `yaml:"air"`
	Ground CellConfig `yaml:"ground"`
	Block  CellConfig `yaml:"block"`
}

// WorldConfig defines where levels and the atlas come from.
type WorldConfig struct {
	Level      string      `yaml:"level"` // Level ID played by default
	Dir        string      `yaml:"dir"`   // Level directory inside the assets
	Atlas      string      `yaml:"atlas"`
	CellWidth  int         `yaml:"cell_width"`
	CellHeight int         `yaml:"cell_height"`
	Tiles      TilesConfig `yaml:"tiles"`
}

// InputConfig defines key handling.
type InputConfig struct {
	Hold     time.Duration       `yaml:"hold"`
	Bindings map[string][]string `yaml:"bindings"` // Action name -> key names
}

// AssetsConfig defines where assets are read from.
type AssetsConfig struct {
	Root               string `yaml:"root"` // Empty = embedded assets
	PlaceholderOnError bool   `yaml:"placeholder_on_error"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// actionNames maps binding names in YAML to actions.
var actionNames = map[string]core.Action{
	"move_left":  core.ActionMoveLeft,
	"move_right": core.ActionMoveRight,
	"move_up":    core.ActionMoveUp,
	"move_down":  core.ActionMoveDown,
	"cancel":     core.ActionCancel,
}

// Validate checks the configuration for values the game cannot run with.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0,
		"window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	if _, err := core.ParseHex(c.Window.ClearColor); err != nil {
		errs = append(errs, fmt.Errorf("window.clear_color: %w", err))
	}
	check(c.Loop.FixedStep > 0, "loop.fixed_step must be positive, got %v", c.Loop.FixedStep)
	check(c.Loop.FrameLimit >= 0, "loop.frame_limit must not be negative, got %d", c.Loop.FrameLimit)
	check(c.Physics.Damping >= 0 && c.Physics.Damping <= 1,
		"physics.damping must be within [0, 1], got %v", c.Physics.Damping)
	check(c.World.CellWidth > 0 && c.World.CellHeight > 0,
		"world cell size must be positive, got %dx%d", c.World.CellWidth, c.World.CellHeight)
	check(c.World.Atlas != "", "world.atlas is required")
	check(c.Player.Sprite != "", "player.sprite is required")
	check(c.Input.Hold >= 0, "input.hold must not be negative, got %v", c.Input.Hold)
	for name := range c.Input.Bindings {
		_, ok := actionNames[name]
		check(ok, "input.bindings: unknown action %q", name)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("log.level: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w: %w", core.ErrInit, errors.Join(errs...))
	}
	return nil
}

// RuntimeConfig converts the loop, physics, window and input sections for the
// game and its window backend. The config must be valid.
func (c Config) RuntimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Title = c.Window.Title
	rc.CanvasW = c.Window.Width
	rc.CanvasH = c.Window.Height
	if col, err := core.ParseHex(c.Window.ClearColor); err == nil {
		rc.ClearColor = col
	}
	rc.FixedStep = c.Loop.FixedStep
	rc.FrameLimit = c.Loop.FrameLimit
	rc.Damping = c.Physics.Damping
	rc.Accel = c.Physics.Acceleration
	if c.Input.Hold > 0 {
		rc.HoldDuration = c.Input.Hold
	}
	rc.Bindings = c.Bindings()
	return rc
}

// Bindings returns the default bindings overridden by the configured ones.
func (c Config) Bindings() core.KeyBindings {
	b := core.DefaultBindings()
	for name, keys := range c.Input.Bindings {
		action, ok := actionNames[name]
		if !ok {
			continue
		}
		bound := make([]core.Key, 0, len(keys))
		for _, k := range keys {
			bound = append(bound, core.NormalizeKey(k))
		}
		b[action] = bound
	}
	return b
}

// Scene returns the assets for playing the level file at levelPath.
func (c Config) Scene(levelPath string) game.SceneConfig {
	t := c.World.Tiles
	return game.SceneConfig{
		Level:      levelPath,
		Atlas:      c.World.Atlas,
		CellWidth:  c.World.CellWidth,
		CellHeight: c.World.CellHeight,
		Cells: world.AtlasCells{
			Air:    world.CellRef{Col: t.Air.Col, Row: t.Air.Row},
			Ground: world.CellRef{Col: t.Ground.Col, Row: t.Ground.Row},
			Block:  world.CellRef{Col: t.Block.Col, Row: t.Block.Row},
		},
		PlayerSprite: c.Player.Sprite,
		PlayerWidth:  c.Player.Width,
		PlayerHeight: c.Player.Height,
	}
}

// LogLevel returns the configured log level, Info when unset or invalid.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
