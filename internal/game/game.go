// Package game runs the fixed-timestep loop: physics at a constant rate,
// input and rendering once per frame.
package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/entity"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

// State is the loop lifecycle.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// renderLogEvery limits how often repeated render failures are logged.
const renderLogEvery = 300

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the runtime configuration. Defaults to core.DefaultConfig().
func WithConfig(cfg core.RuntimeConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(g *Game) {
		if c != nil {
			g.clock = c
		}
	}
}

// Game owns one play session: a window, the map and the player.
type Game struct {
	win     core.Window
	tilemap *world.TileMap
	player  *entity.Player

	cfg    core.RuntimeConfig
	logger *log.Logger
	clock  Clock

	state       State
	accumulated float64 // Seconds not yet consumed by fixed updates
	last        time.Time
	input       core.InputFrame

	ticks          uint64
	frames         uint64
	renderFailures uint64
}

// New creates a game ready to Run.
func New(win core.Window, tilemap *world.TileMap, player *entity.Player, opts ...Option) *Game {
	g := &Game{
		win:     win,
		tilemap: tilemap,
		player:  player,
		cfg:     core.DefaultConfig(),
		logger:  log.New(io.Discard),
		clock:   RealClock(),
		input:   core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.cfg.Bindings == nil {
		g.cfg.Bindings = core.DefaultBindings()
	}
	return g
}

// Run drives frames until the player quits, a fatal error occurs or ctx is
// cancelled. Quitting and cancellation both return nil.
func (g *Game) Run(ctx context.Context) error {
	if g.cfg.FixedStep <= 0 {
		return fmt.Errorf("game: fixed step must be positive, got %v: %w", g.cfg.FixedStep, core.ErrInit)
	}

	g.state = StateRunning
	g.last = g.clock.Now()
	g.logger.Info("game started",
		"level", g.tilemap.Level().ID,
		"spawn", g.tilemap.Spawn(),
		"size", fmt.Sprintf("%dx%d", g.tilemap.Width(), g.tilemap.Height()),
		"step", g.cfg.FixedStep)

	for {
		select {
		case <-ctx.Done():
			g.state = StateTerminated
			g.logger.Info("game cancelled", "ticks", g.ticks, "frames", g.frames)
			return nil
		default:
		}

		running, err := g.Frame()
		if err != nil {
			g.logger.Error("game stopped", "err", err)
			return err
		}
		if !running {
			g.logger.Info("game ended", "ticks", g.ticks, "frames", g.frames)
			return nil
		}
	}
}

// Frame runs one loop iteration: fixed updates for the elapsed time, event
// handling and rendering. running is false once the game has terminated.
func (g *Game) Frame() (running bool, err error) {
	if g.state == StateTerminated {
		return false, nil
	}

	start := g.clock.Now()
	if g.last.IsZero() {
		g.last = start
	}
	frameTime := float64(start.Sub(g.last).Nanoseconds()) / 1e9
	g.last = start

	g.Advance(frameTime)

	if !g.HandleInput() {
		g.state = StateTerminated
		return false, nil
	}

	if err := g.Render(); err != nil {
		g.state = StateTerminated
		return false, err
	}

	g.throttle(start)
	return true, nil
}

// Advance adds frameTime seconds to the accumulator and runs as many fixed
// updates as it covers. Returns the number of updates run.
func (g *Game) Advance(frameTime float64) int {
	g.accumulated += frameTime

	n := 0
	for g.accumulated >= g.cfg.FixedStep {
		g.FixedUpdate()
		g.accumulated -= g.cfg.FixedStep
		n++
	}
	return n
}

// FixedUpdate samples held movement keys, accelerates and integrates the player.
func (g *Game) FixedUpdate() {
	g.input.Clear()
	for _, a := range core.MoveActions {
		for _, k := range g.cfg.Bindings.Keys(a) {
			if g.win.KeyDown(k) {
				g.input.Set(a)
				break
			}
		}
	}

	g.player.Accelerate(g.input, g.cfg.Accel)
	g.player.Update(g.cfg.Damping)
	g.ticks++
}

// HandleInput drains window events. Returns false when the game should end.
func (g *Game) HandleInput() bool {
	for _, ev := range g.win.PollEvents() {
		switch ev.Type {
		case core.EventQuit:
			return false
		case core.EventKeyDown:
			if ev.Key == core.KeyCtrlC || g.cfg.Bindings.Is(core.ActionCancel, ev.Key) {
				return false
			}
		case core.EventResize:
			g.logger.Debug("window resized")
		}
	}
	return true
}

// Render clears the target, draws the map and the player, then presents.
// Draw failures are logged and the frame is still shown; a Present failure
// is returned.
func (g *Game) Render() error {
	target := g.win.Target()
	target.Clear(g.cfg.ClearColor)

	if err := g.tilemap.Draw(target); err != nil {
		g.renderFailed("map", err)
	}
	if err := g.player.Draw(target); err != nil {
		g.renderFailed("player", err)
	}

	if err := g.win.Present(); err != nil {
		return fmt.Errorf("game: present: %w", err)
	}
	g.frames++
	return nil
}

func (g *Game) renderFailed(what string, err error) {
	g.renderFailures++
	if g.renderFailures == 1 || g.renderFailures%renderLogEvery == 0 {
		g.logger.Warn("render failed", "what", what, "err", err, "failures", g.renderFailures)
	}
}

// throttle sleeps out the rest of the frame interval.
func (g *Game) throttle(start time.Time) {
	interval := g.cfg.FrameInterval()
	if interval <= 0 {
		return
	}
	if elapsed := g.clock.Now().Sub(start); elapsed < interval {
		g.clock.Sleep(interval - elapsed)
	}
}

// State returns the loop state.
func (g *Game) State() State {
	return g.state
}

// Ticks returns the number of fixed updates run.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Frames returns the number of frames presented.
func (g *Game) Frames() uint64 {
	return g.frames
}

// RenderFailures returns the number of failed map or player draws.
func (g *Game) RenderFailures() uint64 {
	return g.renderFailures
}

// Player returns the controlled player.
func (g *Game) Player() *entity.Player {
	return g.player
}
