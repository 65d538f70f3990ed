// Package app wires configuration, content, the loading sequence and the
// terminal UI into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/logging"
	"folio/internal/ui"
	"folio/internal/watcher"
)

// App is the folio application.
type App struct {
	config  *config.Config
	session string
	load    func(path string) (*content.Portfolio, error)

	ctx    context.Context
	cancel context.CancelFunc

	program        *tea.Program
	contentWatcher *watcher.Watcher
	signalCleanup  func()

	mu           sync.Mutex
	running      bool
	shutdownOnce sync.Once
}

// New creates the application from a validated configuration.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		config:  cfg,
		session: uuid.NewString(),
		load:    content.Load,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Session returns the id attached to this run's log records.
func (a *App) Session() string { return a.session }

// setupLogging sends logs to a file in the config directory so they do
// not interfere with the TUI.
func (a *App) setupLogging() {
	dir, err := config.Dir()
	if err != nil || a.config.Logging.Level == "" {
		logging.DisableLogging()
		return
	}
	level := logging.ParseLevel(a.config.Logging.Level)
	if err := logging.EnableFileLogging(dir, level, "session", a.session); err != nil {
		// Silently continue with logging disabled
		logging.DisableLogging()
	}
}

// Run shows the loading screen and then the portfolio until the user quits.
func (a *App) Run() error {
	a.setupLogging()
	defer logging.Close()

	opts, err := UIOptions(a.config)
	if err != nil {
		return err
	}

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(a.ctx),
	}
	if a.config.UI.MouseEnabled() {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	a.mu.Lock()
	a.program = tea.NewProgram(ui.New(opts), programOpts...)
	a.running = true
	a.mu.Unlock()

	logging.Info("starting folio", "version", a.config.Version, "content", a.config.Content.Path,
		"theme", a.config.UI.Theme, "join", a.config.Loader.Join)

	a.startContentWatcher()
	a.signalCleanup = a.setupSignalHandler()
	defer a.Shutdown()

	_, runErr := a.program.Run()

	a.mu.Lock()
	a.running = false
	a.mu.Unlock()

	if errors.Is(runErr, tea.ErrProgramKilled) && a.ctx.Err() != nil {
		// Shut down by a signal.
		return nil
	}
	if runErr != nil {
		return fmt.Errorf("ui: %w", runErr)
	}
	return nil
}

// Shutdown stops background work and cancels the application context.
// It is safe to call more than once.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		logging.Debug("starting shutdown")
		a.cancel()

		if a.signalCleanup != nil {
			a.signalCleanup()
		}
		if a.contentWatcher != nil {
			if err := a.contentWatcher.Stop(); err != nil {
				logging.Debug("error stopping content watcher", "error", err)
			}
		}
		logging.Debug("shutdown complete")
	})
}

// safeSendToProgram sends a message to the Bubble Tea program if one is
// running. It copies the program reference under lock.
func (a *App) safeSendToProgram(msg tea.Msg) {
	a.mu.Lock()
	program := a.program
	running := a.running
	a.mu.Unlock()

	if program != nil && running {
		program.Send(msg)
	}
}

// startContentWatcher reloads content when it changes on disk.
func (a *App) startContentWatcher() {
	path := a.config.Content.Path
	if path == "" || !a.config.Content.Watch {
		return
	}

	w, err := newContentWatcher(path, a.config.Content.DebounceMs)
	if err != nil {
		logging.Warn("failed to create content watcher", "path", path, "error", err)
		return
	}
	w.OnChange(func(changes []watcher.Change) {
		a.safeSendToProgram(Reload(path, changes))
	})
	if err := w.Start(); err != nil {
		logging.Warn("failed to start content watcher", "path", path, "error", err)
		_ = w.Stop()
		return
	}
	a.contentWatcher = w
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
