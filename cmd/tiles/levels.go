package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows every level found in the level directory, with its size and spawn point.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	e, err := loadEnv(os.Stderr)
	if err != nil {
		return err
	}
	defer e.closeLog()

	levels, err := e.levels.LoadAll()
	if err != nil {
		return err
	}
	printLevels(os.Stdout, levels)
	return nil
}

func printLevels(w io.Writer, levels []world.LevelFile) {
	if len(levels) == 0 {
		fmt.Fprintln(w, "No levels available.")
		return
	}

	fmt.Fprintln(w, "Available levels:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Fprintf(w, "  %-*s  %-7s  %-7s  %s\n", maxIDLen, "ID", "Size", "Spawn", "Name")
	fmt.Fprintf(w, "  %-*s  %-7s  %-7s  %s\n", maxIDLen, "--", "----", "-----", "----")
	for _, l := range levels {
		fmt.Fprintf(w, "  %-*s  %-7s  %-7s  %s\n", maxIDLen, l.ID,
			fmt.Sprintf("%dx%d", l.Width, l.Height),
			fmt.Sprintf("%.0f,%.0f", l.Spawn.X, l.Spawn.Y),
			l.Name)
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, "Renderers:")
	for _, b := range registry.List() {
		fmt.Fprintf(w, " %s", b.Name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'tiles play <id>' to play a level.")
}
