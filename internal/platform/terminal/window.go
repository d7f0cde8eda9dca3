// Package terminal is the tcell window backend: it owns the terminal screen,
// pumps tcell events on a goroutine and presents the canvas as half-block cells.
package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/input"
	"github.com/vovakirdan/tui-tiles/internal/registry"
)

// Name is the registry name of this backend.
const Name = "tcell"

func init() {
	registry.Register(Name, "full-screen tcell renderer (default)", Open)
}

// Window presents a core.Canvas on a tcell screen.
type Window struct {
	screen tcell.Screen
	canvas *core.Canvas
	cells  []core.Cell
	holds  *input.HoldTracker
	now    func() time.Time

	events    chan tcell.Event
	done      chan struct{}
	closeOnce sync.Once
}

// Open creates and initializes a tcell screen for the current terminal.
func Open(cfg core.RuntimeConfig) (core.Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init screen: %w", err)
	}
	return NewWindow(screen, cfg), nil
}

// NewWindow wraps an initialized screen. The window takes ownership of the
// screen and finalizes it on Close.
func NewWindow(screen tcell.Screen, cfg core.RuntimeConfig) *Window {
	screen.HideCursor()
	screen.SetTitle(cfg.Title)
	screen.Clear()

	w := &Window{
		screen: screen,
		canvas: core.NewCanvas(cfg.CanvasW, cfg.CanvasH),
		holds:  input.NewHoldTracker(cfg.HoldDuration),
		now:    time.Now,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}

	go w.pump()
	return w
}

// pump forwards screen events until the screen is finalized.
func (w *Window) pump() {
	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case w.events <- ev:
		case <-w.done:
			return
		}
	}
}

// Target returns the logical canvas.
func (w *Window) Target() core.RenderTarget {
	return w.canvas
}

// PollEvents drains pending tcell events without blocking.
func (w *Window) PollEvents() []core.Event {
	var out []core.Event
	now := w.now()

	for {
		select {
		case ev := <-w.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					out = append(out, core.Event{Type: core.EventQuit})
					continue
				}
				k, ok := keyName(ev)
				if !ok {
					continue
				}
				w.holds.Press(k, now)
				out = append(out, core.Event{Type: core.EventKeyDown, Key: k})
			case *tcell.EventResize:
				w.screen.Sync()
				out = append(out, core.Event{Type: core.EventResize})
			}
		default:
			return out
		}
	}
}

// KeyDown reports whether k was pressed within the hold window.
func (w *Window) KeyDown(k core.Key) bool {
	return w.holds.Down(k, w.now())
}

// Present downsamples the canvas to the screen size and shows it.
func (w *Window) Present() error {
	cols, rows := w.screen.Size()
	w.cells = w.canvas.Downsample(cols, rows, w.cells)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := w.cells[y*cols+x]
			style := tcell.StyleDefault.
				Foreground(rgb(c.Top)).
				Background(rgb(c.Bottom))
			w.screen.SetContent(x, y, core.HalfBlock, nil, style)
		}
	}

	w.screen.Show()
	return nil
}

// Close stops the event pump and restores the terminal.
func (w *Window) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.screen.Fini()
	})
	return nil
}

func rgb(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// keyName translates a tcell key event into a core key name.
func keyName(ev *tcell.EventKey) (core.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyUp, true
	case tcell.KeyDown:
		return core.KeyDown, true
	case tcell.KeyLeft:
		return core.KeyLeft, true
	case tcell.KeyRight:
		return core.KeyRight, true
	case tcell.KeyEscape:
		return core.KeyEsc, true
	case tcell.KeyEnter:
		return core.KeyEnter, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.KeyBackspace, true
	case tcell.KeyRune:
		return core.NormalizeKey(string(ev.Rune())), true
	}
	return "", false
}
