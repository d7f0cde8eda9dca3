package stream

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/registry"
)

// Name is the registry name of this backend.
const Name = "ansi"

func init() {
	registry.Register(Name, "plain ANSI escape renderer on stdin/stdout", Open)
}

// Open puts stdin into raw mode and renders to stdout.
func Open(cfg core.RuntimeConfig) (core.Window, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stream: stdin is not a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("stream: raw mode: %w", err)
	}

	w, err := New(cfg, Options{
		In:       os.Stdin,
		Out:      os.Stdout,
		Size:     StdoutSize,
		Renderer: lipgloss.NewRenderer(os.Stdout),
		OnClose: func() error {
			return term.Restore(fd, oldState)
		},
	})
	if err != nil {
		term.Restore(fd, oldState)
		return nil, err
	}
	return w, nil
}

// StdoutSize returns the size of the terminal attached to stdout.
func StdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
