package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/game"
	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level. Without an argument the configured default
level is played.

Controls:
  WASD/Arrows  - Move
  Esc/Q        - Quit
  Ctrl+C       - Quit

Examples:
  tiles play
  tiles play 2
  tiles play 1 --renderer ansi
  tiles play --assets ./res --log-file tiles.log`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeLevels,
	RunE:              runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	// The terminal belongs to the game, so logs go to a file or nowhere
	e, err := loadEnv(io.Discard)
	if err != nil {
		return err
	}
	defer e.closeLog()

	if err := checkRenderer(e.cfg.Window.Renderer); err != nil {
		return err
	}

	id := e.cfg.World.Level
	if len(args) > 0 {
		id = args[0]
	}
	lf, err := e.levels.LoadByID(id)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return playLevel(ctx, e, lf)
}

// completeLevels offers level IDs for the level argument.
func completeLevels(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	e, err := loadEnv(io.Discard)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer e.closeLog()

	ids, err := e.levels.ListIDs()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

// checkRenderer fails fast on a backend name nothing registered, before any
// level or texture is loaded.
func checkRenderer(name string) error {
	if !registry.Exists(name) {
		return fmt.Errorf("unknown renderer %q, see tiles levels: %w", name, core.ErrInit)
	}
	return nil
}

// playLevel opens the configured backend and runs lf until the player quits.
func playLevel(ctx context.Context, e *env, lf world.LevelFile) error {
	scene, err := game.LoadScene(e.assets, e.textures, e.cfg.Scene(lf.Path))
	if err != nil {
		return err
	}

	rc := e.cfg.RuntimeConfig()
	win, err := registry.Create(e.cfg.Window.Renderer, rc)
	if err != nil {
		return err
	}
	defer win.Close()

	e.logger.Info("playing", "level", lf.ID, "renderer", e.cfg.Window.Renderer)
	g := game.New(win, scene.Map, scene.Player,
		game.WithConfig(rc),
		game.WithLogger(e.logger),
	)
	return g.Run(ctx)
}
