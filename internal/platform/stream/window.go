// Package stream is the ANSI window backend. It writes frames as escape
// sequences to any io.Writer and parses keys from any io.Reader, so the same
// window serves a local raw-mode terminal and an SSH session.
package stream

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/input"
)

// ANSI control sequences.
const (
	cursorHome  = "\033[H"
	clearScreen = "\033[2J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	resetStyle  = "\033[0m"
)

// maxStyles bounds the per-window style cache.
const maxStyles = 4096

// SizeFunc returns the terminal size in cells.
type SizeFunc func() (cols, rows int, err error)

// Options wires a window to its terminal.
type Options struct {
	In       io.Reader
	Out      io.Writer
	Size     SizeFunc
	Renderer *lipgloss.Renderer // Defaults to lipgloss.NewRenderer(Out)

	// OnClose runs after the terminal has been restored, e.g. to leave raw mode.
	OnClose func() error
}

// Window renders a core.Canvas as lipgloss-styled half-block runs.
type Window struct {
	out      io.Writer
	size     SizeFunc
	renderer *lipgloss.Renderer
	onClose  func() error

	canvas *core.Canvas
	cells  []core.Cell
	styles map[core.Cell]lipgloss.Style
	frame  bytes.Buffer

	stream *input.Stream
	keys   *input.Parser
	holds  *input.HoldTracker
	now    func() time.Time

	cols, rows int
	pending    []core.Event
	eof        bool

	closeOnce sync.Once
}

// New starts reading input and prepares the terminal: hidden cursor, cleared
// screen and the window title.
func New(cfg core.RuntimeConfig, opts Options) (*Window, error) {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.NewRenderer(opts.Out)
	}

	w := &Window{
		out:      opts.Out,
		size:     opts.Size,
		renderer: r,
		onClose:  opts.OnClose,
		canvas:   core.NewCanvas(cfg.CanvasW, cfg.CanvasH),
		styles:   make(map[core.Cell]lipgloss.Style),
		stream:   input.StartStream(opts.In),
		keys:     input.NewParser(input.EscDelay),
		holds:    input.NewHoldTracker(cfg.HoldDuration),
		now:      time.Now,
	}

	if _, err := fmt.Fprintf(w.out, "\033]0;%s\a%s%s%s", cfg.Title, hideCursor, clearScreen, cursorHome); err != nil {
		return nil, fmt.Errorf("stream: setup terminal: %w", err)
	}
	return w, nil
}

// Target returns the logical canvas.
func (w *Window) Target() core.RenderTarget {
	return w.canvas
}

// PollEvents parses all input received since the last call. An escape
// sequence cut short by the end of a read is held for up to input.EscDelay.
// The end of the input stream is reported once as EventQuit.
func (w *Window) PollEvents() []core.Event {
	out := w.pending
	w.pending = nil

	buf, closed := w.stream.Drain()
	now := w.now()
	keys := w.keys.Feed(buf, now)
	if closed {
		keys = append(keys, w.keys.Flush()...)
	}
	for _, k := range keys {
		if k == core.KeyCtrlC {
			out = append(out, core.Event{Type: core.EventQuit})
			continue
		}
		w.holds.Press(k, now)
		out = append(out, core.Event{Type: core.EventKeyDown, Key: k})
	}

	if closed && !w.eof {
		w.eof = true
		out = append(out, core.Event{Type: core.EventQuit})
	}
	return out
}

// KeyDown reports whether k was pressed within the hold window.
func (w *Window) KeyDown(k core.Key) bool {
	return w.holds.Down(k, w.now())
}

// Present writes the canvas as one buffered frame.
func (w *Window) Present() error {
	cols, rows, err := w.size()
	if err != nil {
		return fmt.Errorf("stream: terminal size: %w", err)
	}

	w.frame.Reset()
	if cols != w.cols || rows != w.rows {
		if w.cols != 0 || w.rows != 0 {
			w.pending = append(w.pending, core.Event{Type: core.EventResize})
		}
		w.cols, w.rows = cols, rows
		w.frame.WriteString(resetStyle + clearScreen)
	}
	w.frame.WriteString(cursorHome)

	w.cells = w.canvas.Downsample(cols, rows, w.cells)
	w.renderCells(cols, rows)

	if _, err := w.out.Write(w.frame.Bytes()); err != nil {
		return fmt.Errorf("stream: write frame: %w", err)
	}
	return nil
}

// Close stops reading input, restores the cursor and clears the screen.
func (w *Window) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.stream.Stop()
		_, err = io.WriteString(w.out, resetStyle+clearScreen+cursorHome+showCursor)
		if w.onClose != nil {
			if cerr := w.onClose(); err == nil {
				err = cerr
			}
		}
	})
	return err
}
