// tiles is a tile-map walking game for the terminal.
//
// Usage:
//
//	tiles                    - Play the default level
//	tiles play [level]       - Play a level
//	tiles levels             - List available levels
//	tiles menu               - Pick a level interactively
//	tiles serve              - Serve the game over SSH
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.tiles, ./configs, embedded)
//	--renderer <name>   - Window backend: tcell or ansi
//	--assets <dir>      - Load assets from a directory instead of the bundled ones
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-tiles/internal/platform/stream"
	_ "github.com/vovakirdan/tui-tiles/internal/platform/terminal"
)

var (
	// Global flags
	flagConfig   string
	flagRenderer string
	flagAssets   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Walk a tile map in your terminal",
	Long: `Tiles draws a tile map with a player sprite you can move around,
rendered with half-block characters in true color.

Available commands:
  play     - Play a level (the default command)
  levels   - Show all available levels
  menu     - Interactive level picker
  serve    - Start SSH server for remote play

Examples:
  tiles
  tiles play 2
  tiles play --renderer ansi
  tiles menu
  tiles serve --ssh :2222`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeLevels,
	RunE:              runPlay,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagRenderer, "renderer", "", "Window backend (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides config, default: bundled assets)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}
