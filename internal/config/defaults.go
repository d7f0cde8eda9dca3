package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tiles.yaml
var defaultTilesYAML []byte

// DefaultConfig returns the default configuration, matching the embedded
// defaults/tiles.yaml.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:      "I Wanna Be The Suleyth",
			Width:      768,
			Height:     432,
			ClearColor: "#ffffff",
			Renderer:   "tcell",
		},
		Loop: LoopConfig{
			FixedStep:  0.01,
			FrameLimit: 60,
		},
		Physics: PhysicsConfig{
			Damping:      0.2,
			Acceleration: 1.0,
		},
		Player: PlayerConfig{
			Sprite: "sprites/player.png",
			Width:  16,
			Height: 16,
		},
		World: WorldConfig{
			Level:      "1",
			Dir:        "worlds",
			Atlas:      "spritesheets/day.png",
			CellWidth:  32,
			CellHeight: 32,
			Tiles: TilesConfig{
				Air:    CellConfig{Col: 30, Row: 0},
				Ground: CellConfig{Col: 0, Row: 0},
				Block:  CellConfig{Col: 0, Row: 1},
			},
		},
		Input: InputConfig{
			Hold: 150 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
		Source: "default",
	}
}
