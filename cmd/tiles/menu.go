package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level interactively",
	Long: `Opens a level picker. Choosing a level plays it; quitting the game
returns to the picker.

Controls:
  Up/Down, j/k  - Navigate
  Enter         - Play
  Q/Esc         - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	e, err := loadEnv(io.Discard)
	if err != nil {
		return err
	}
	defer e.closeLog()

	if err := checkRenderer(e.cfg.Window.Renderer); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for ctx.Err() == nil {
		levels, err := e.levels.LoadAll()
		if err != nil {
			return err
		}

		result, err := tui.RunMenu(levels)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}

		if err := playLevel(ctx, e, result.Level); err != nil {
			return err
		}
	}
	return nil
}
