package ui

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/loader"
	"folio/internal/logging"
)

const maxBarWidth = 64

var lastLoaderID atomic.Int64

func nextLoaderID() int {
	return int(lastLoaderID.Add(1))
}

// Loader messages carry the id of the LoaderModel that scheduled them so
// that deadlines from a torn-down loader are dropped.
type (
	loaderTickMsg   struct{ id int }
	loaderGraceMsg  struct{ id int }
	loaderExpireMsg struct{ id int }
)

// LoaderModel is the loading screen. It drives a loader.Sequencer from
// Bubble Tea messages: ticks and deadlines are tea.Tick commands, and the
// asset-ready signal is an AssetReadyMsg.
type LoaderModel struct {
	id      int
	seq     *loader.Sequencer
	bar     progress.Model
	styles  *Styles
	title   string
	width   int
	height  int
	release func()
}

// NewLoaderModel creates the loading screen and acquires guard for the
// lifetime of the sequence. onComplete may be nil.
func NewLoaderModel(opts loader.Options, title string, styles *Styles, guard loader.Guard, onComplete func()) LoaderModel {
	bar := progress.New(
		progress.WithGradient(string(ColorGradient1), string(ColorGradient3)),
		progress.WithoutPercentage(),
	)
	bar.Width = maxBarWidth

	return LoaderModel{
		id:      nextLoaderID(),
		seq:     loader.NewSequencer(opts, onComplete),
		bar:     bar,
		styles:  styles,
		title:   title,
		release: loader.Hold(guard),
	}
}

// Init starts the progress timer and, when configured, the max-wait deadline.
func (m LoaderModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tick()}
	if wait := m.seq.Options().MaxWait; wait > 0 {
		id := m.id
		cmds = append(cmds, tea.Tick(wait, func(time.Time) tea.Msg { return loaderExpireMsg{id: id} }))
	}
	return tea.Batch(cmds...)
}

// Update handles loader messages.
func (m LoaderModel) Update(msg tea.Msg) (LoaderModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case loaderTickMsg:
		if msg.id != m.id {
			return m, nil
		}
		t := m.seq.Tick()
		logging.Debug("loader tick", "percent", m.seq.Percent(), "transition", t.String())
		if t == loader.TransitionNone && m.seq.State() == loader.StateLoading && m.seq.Snapshot().TimerActive {
			return m, m.tick()
		}
		return m, m.finish(t)

	case AssetReadyMsg:
		return m, m.finish(m.seq.MarkAssetReady())

	case loaderExpireMsg:
		if msg.id != m.id {
			return m, nil
		}
		t := m.seq.Expire()
		if t == loader.TransitionFinish {
			logging.Warn("loader max wait elapsed", "percent", m.seq.Percent(), "asset_ready", m.seq.Snapshot().AssetReady)
		}
		return m, m.finish(t)

	case loaderGraceMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.release()
		if !m.seq.Finish() {
			return m, nil
		}
		outcome := m.seq.Outcome()
		logging.Info("loading complete", "ticks", outcome.Ticks, "elapsed", outcome.Elapsed, "degraded", outcome.Degraded)
		return m, func() tea.Msg { return LoadingCompleteMsg{Outcome: outcome} }
	}

	return m, nil
}

// finish schedules the grace deadline on TransitionFinish. Only the tick
// handler reschedules the progress timer, so one tick is in flight at a time.
func (m LoaderModel) finish(t loader.Transition) tea.Cmd {
	if t != loader.TransitionFinish {
		return nil
	}
	id := m.id
	return tea.Tick(m.seq.Options().GraceDelay, func(time.Time) tea.Msg { return loaderGraceMsg{id: id} })
}

func (m LoaderModel) tick() tea.Cmd {
	id := m.id
	return tea.Tick(m.seq.Options().Interval, func(time.Time) tea.Msg { return loaderTickMsg{id: id} })
}

// Cancel tears the loader down early. Pending ticks and the grace deadline
// become no-ops and the guard is released. Safe to call at any time.
func (m LoaderModel) Cancel() {
	if m.seq.Cancel() {
		logging.Debug("loader cancelled", "percent", m.seq.Percent())
	}
	m.release()
}

// SetSize sets the size of the loading screen.
func (m *LoaderModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.bar.Width = min(maxBarWidth, max(10, width*64/100))
}

// Percent returns the displayed progress.
func (m LoaderModel) Percent() int { return m.seq.Percent() }

// State returns the sequencer state.
func (m LoaderModel) State() loader.State { return m.seq.State() }

// Snapshot returns the sequencer progress state.
func (m LoaderModel) Snapshot() loader.ProgressState { return m.seq.Snapshot() }

// View renders the loading screen centered in the window.
func (m LoaderModel) View() string {
	percent := m.seq.Percent()
	caption := fmt.Sprintf("Loading your experience... %d%%", percent)

	parts := []string{
		m.styles.LoaderTitle.Render(m.title),
		m.bar.ViewAs(float64(percent) / 100),
		m.styles.LoaderCaption.Render(caption),
	}
	if out := m.seq.Outcome(); out.Degraded {
		parts = append(parts, m.styles.LoaderNote.Render("continuing without waiting: "+out.Reason))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
