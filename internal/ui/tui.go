package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/content"
	"folio/internal/loader"
	"folio/internal/logging"
)

// Phase is the top-level screen being shown.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseShowing
)

func (p Phase) String() string {
	if p == PhaseShowing {
		return "showing"
	}
	return "loading"
}

// Options configures the terminal portfolio.
type Options struct {
	Loader      loader.Options
	ContentPath string
	Theme       ThemeType
	View        PortfolioOptions
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Loader: loader.DefaultOptions(),
		Theme:  ThemeDark,
		View:   DefaultPortfolioOptions(),
	}
}

// Model represents the main TUI model. It shows the loading screen until
// the sequence completes, then the portfolio.
type Model struct {
	opts      Options
	styles    *Styles
	lock      *ScrollLock
	phase     Phase
	loader    LoaderModel
	portfolio PortfolioModel

	asset    *content.Portfolio
	assetErr error
	outcome  loader.Outcome
	width    int
	height   int
	quitting bool
}

// New creates the root model.
func New(opts Options) *Model {
	styles := DefaultStyles()
	if opts.Theme != "" {
		styles.ApplyTheme(opts.Theme)
	}
	theme := GetTheme(opts.Theme)
	if opts.View.CodeStyle == "" {
		opts.View.CodeStyle = theme.CodeStyle
	}
	if opts.View.MarkdownStyle == "" {
		opts.View.MarkdownStyle = markdownStyleFor(opts.Theme)
	}

	lock := &ScrollLock{}
	m := &Model{
		opts:   opts,
		styles: styles,
		lock:   lock,
		phase:  PhaseLoading,
		width:  80,
		height: 24,
	}
	m.loader = NewLoaderModel(opts.Loader, "VIRENDER", styles, lock, nil)
	return m
}

func markdownStyleFor(theme ThemeType) string {
	if theme == ThemeMono {
		return "notty"
	}
	return "dark"
}

// Init starts the loading sequence and the content load together.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loader.Init(),
		LoadAssetCmd(m.opts.ContentPath),
		tea.SetWindowTitle("VIRENDER · Portfolio"),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.loader.SetSize(msg.Width, msg.Height)
		if m.phase == PhaseShowing {
			var cmd tea.Cmd
			m.portfolio, cmd = m.portfolio.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case AssetReadyMsg:
		m.asset, m.assetErr = msg.Portfolio, msg.Err
		if m.phase == PhaseShowing && msg.Portfolio != nil {
			// Content arrived after a max-wait completion.
			cmd := m.portfolio.SetPortfolio(msg.Portfolio)
			return m, cmd
		}
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd

	case LoadingCompleteMsg:
		cmd := m.show(msg.Outcome)
		return m, cmd

	case ContentChangedMsg:
		cmd := m.handleContentChanged(msg)
		return m, cmd

	case loaderTickMsg, loaderGraceMsg, loaderExpireMsg:
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd
	}

	if m.phase == PhaseShowing {
		var cmd tea.Cmd
		m.portfolio, cmd = m.portfolio.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleGlobalKeys handles keys that apply in every phase.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.teardown()
		return tea.Quit, true
	case "q", "esc":
		if m.phase == PhaseLoading {
			m.teardown()
			return tea.Quit, true
		}
		if msg.String() == "q" && !m.portfolio.MenuOpen() {
			m.teardown()
			return tea.Quit, true
		}
		if m.portfolio.MenuOpen() {
			m.portfolio.menuOpen = false
			m.portfolio.resize()
			return nil, true
		}
	}
	if m.phase == PhaseLoading {
		return nil, true
	}
	return nil, false
}

// teardown cancels a loading sequence that has not finished.
func (m *Model) teardown() {
	m.quitting = true
	m.loader.Cancel()
}

// show switches to the portfolio once loading completes.
func (m *Model) show(outcome loader.Outcome) tea.Cmd {
	if m.phase == PhaseShowing {
		return nil
	}
	m.outcome = outcome
	m.phase = PhaseShowing

	asset := m.asset
	if asset == nil {
		asset = content.Default()
	}
	m.portfolio = NewPortfolioModel(asset, m.opts.View, m.styles, m.lock)
	m.portfolio.SetSize(m.width, m.height)

	cmds := []tea.Cmd{m.portfolio.Init()}
	if m.assetErr != nil {
		cmds = append(cmds, m.portfolio.ToastCmd(ToastError, "Could not load content, showing built-in portfolio"))
	}
	if outcome.Degraded {
		cmds = append(cmds, m.portfolio.ToastCmd(ToastWarning, "Loading took too long ("+outcome.Reason+")"))
	}
	logging.Info("showing portfolio", "projects", len(asset.Projects), "degraded", outcome.Degraded,
		"elapsed", outcome.Elapsed.Round(time.Millisecond))
	return tea.Batch(cmds...)
}

func (m *Model) handleContentChanged(msg ContentChangedMsg) tea.Cmd {
	if msg.Err != nil {
		logging.Warn("content reload failed", "paths", msg.Paths, "error", msg.Err)
		if m.phase == PhaseShowing {
			return m.portfolio.ToastCmd(ToastError, "Reload failed: "+msg.Err.Error())
		}
		return nil
	}
	if msg.Portfolio == nil {
		return nil
	}
	if m.phase == PhaseLoading {
		m.asset = msg.Portfolio
		return nil
	}
	logging.Info("content reloaded", "paths", msg.Paths, "projects", len(msg.Portfolio.Projects))
	cmd := m.portfolio.SetPortfolio(msg.Portfolio)
	return tea.Batch(cmd, m.portfolio.ToastCmd(ToastInfo, "Content reloaded"))
}

// Phase returns the current phase.
func (m Model) Phase() Phase { return m.phase }

// Outcome returns how the loading sequence finished.
func (m Model) Outcome() loader.Outcome { return m.outcome }

// Loader returns the loading screen model.
func (m Model) Loader() LoaderModel { return m.loader }

// Portfolio returns the portfolio view. It is only meaningful once
// Phase is PhaseShowing.
func (m Model) Portfolio() PortfolioModel { return m.portfolio }

// ScrollLocked reports whether page scrolling is currently suppressed.
func (m Model) ScrollLocked() bool { return m.lock.Locked() }

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == PhaseLoading {
		return m.loader.View()
	}
	return m.portfolio.View()
}
