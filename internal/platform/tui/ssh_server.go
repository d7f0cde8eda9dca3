package tui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/game"
	"github.com/vovakirdan/tui-tiles/internal/gfx"
	"github.com/vovakirdan/tui-tiles/internal/platform/stream"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tiles/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	Runtime      core.RuntimeConfig
	Scene        game.SceneConfig // Level is replaced per session
	Assets       fs.FS
	Levels       *world.Loader
	DefaultLevel string

	// Textures is shared by every session.
	Textures *gfx.TextureCache
	Logger   *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:      ":23234",
		IdleTimeout:  30 * time.Minute,
		Runtime:      core.DefaultConfig(),
		Scene:        game.DefaultSceneConfig(),
		DefaultLevel: "1",
	}
}

// SSHServer serves one game per SSH session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tiles-ssh",
		})
	}
	if cfg.Assets == nil || cfg.Levels == nil || cfg.Textures == nil {
		return nil, fmt.Errorf("tui: ssh server needs assets, levels and textures: %w", core.ErrInit)
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".tiles", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.gameMiddleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// gameMiddleware runs a game on the session's terminal until the player
// quits or disconnects.
func (s *SSHServer) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		defer next(sess)

		pty, winCh, ok := sess.Pty()
		if !ok {
			wish.Fatalln(sess, "tiles: a PTY is required, connect with ssh -t")
			return
		}

		logger := s.logger.With("user", sess.User())
		if err := s.play(sess, pty, winCh, logger); err != nil {
			logger.Error("session failed", "error", err)
			wish.Errorln(sess, err)
		}
	}
}

func (s *SSHServer) play(sess ssh.Session, pty ssh.Pty, winCh <-chan ssh.Window, logger *log.Logger) error {
	id := sessionLevel(sess.Command(), s.config.DefaultLevel)
	lf, err := s.config.Levels.LoadByID(id)
	if err != nil {
		return err
	}

	sc := s.config.Scene
	sc.Level = lf.Path
	scene, err := game.LoadScene(s.config.Assets, s.config.Textures, sc)
	if err != nil {
		return err
	}

	size := newSizeTracker(pty.Window.Width, pty.Window.Height)
	go func() {
		for w := range winCh {
			size.update(w.Width, w.Height)
		}
	}()

	win, err := stream.New(s.config.Runtime, stream.Options{
		In:       sess,
		Out:      sess,
		Size:     size.getSize,
		Renderer: bubbletea.MakeRenderer(sess),
	})
	if err != nil {
		return err
	}
	defer win.Close()

	logger.Info("game session", "level", lf.ID, "term", pty.Term, "size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))
	g := game.New(win, scene.Map, scene.Player,
		game.WithConfig(s.config.Runtime),
		game.WithLogger(logger),
	)
	return g.Run(sess.Context())
}

// sessionLevel picks the level named by the SSH command, e.g. `ssh -t host 2`.
func sessionLevel(cmd []string, def string) string {
	if len(cmd) > 0 && cmd[0] != "" {
		return cmd[0]
	}
	return def
}

// ListenAndServe starts the SSH server and blocks until ctx is done.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ stream.SizeFunc = (*sizeTracker)(nil).getSize
