package ui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/content"
	"folio/internal/loader"
)

func newTestLoader(t *testing.T, opts loader.Options, lock *ScrollLock, onComplete func()) LoaderModel {
	t.Helper()
	require.NoError(t, opts.Validate())
	return NewLoaderModel(opts, "VIRENDER", DefaultStyles(), lock, onComplete)
}

func tickN(m LoaderModel, n int) LoaderModel {
	for range n {
		m, _ = m.Update(loaderTickMsg{id: m.id})
	}
	return m
}

func TestLoaderModelCompletes(t *testing.T) {
	lock := &ScrollLock{}
	calls := 0
	m := newTestLoader(t, loader.DefaultOptions(), lock, func() { calls++ })
	require.True(t, lock.Locked(), "scroll is locked while loading")

	m = tickN(m, 10)
	assert.Equal(t, 100, m.Percent())
	assert.False(t, m.Snapshot().TimerActive, "immediate join stops ticking at full")

	m, cmd := m.Update(AssetReadyMsg{Portfolio: content.Default()})
	require.NotNil(t, cmd, "grace delay scheduled")
	assert.Equal(t, loader.StateReadyToFinish, m.State())
	assert.True(t, lock.Locked(), "lock held through the grace delay")

	m, cmd = m.Update(loaderGraceMsg{id: m.id})
	require.NotNil(t, cmd)
	msg, ok := cmd().(LoadingCompleteMsg)
	require.True(t, ok)
	assert.Equal(t, 10, msg.Outcome.Ticks)
	assert.False(t, msg.Outcome.Degraded)
	assert.Equal(t, loader.StateDone, m.State())
	assert.Equal(t, 1, calls)
	assert.False(t, lock.Locked())

	// A duplicate grace deadline does nothing.
	_, cmd = m.Update(loaderGraceMsg{id: m.id})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, calls)
}

func TestLoaderModelWaitsForAsset(t *testing.T) {
	m := newTestLoader(t, loader.DefaultOptions(), nil, nil)

	m = tickN(m, 5)
	m, cmd := m.Update(AssetReadyMsg{})
	assert.Nil(t, cmd, "the tick already in flight keeps the timer going")
	assert.Equal(t, loader.StateLoading, m.State())
	assert.Equal(t, 50, m.Percent())

	_, cmd = m.Update(AssetReadyMsg{})
	assert.Nil(t, cmd, "duplicate ready signal")

	m, cmd = m.Update(loaderTickMsg{id: m.id})
	assert.NotNil(t, cmd)
	m = tickN(m, 4)
	assert.Equal(t, loader.StateReadyToFinish, m.State())
}

func TestLoaderModelTickJoin(t *testing.T) {
	opts := loader.DefaultOptions()
	opts.Join = loader.JoinOnTick
	m := newTestLoader(t, opts, nil, nil)

	m = tickN(m, 12)
	assert.Equal(t, 100, m.Percent())
	assert.True(t, m.Snapshot().TimerActive, "tick join keeps polling at full")

	m, cmd := m.Update(AssetReadyMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, loader.StateLoading, m.State(), "completion waits for the next tick")

	m, cmd = m.Update(loaderTickMsg{id: m.id})
	require.NotNil(t, cmd)
	assert.Equal(t, loader.StateReadyToFinish, m.State())
}

func TestLoaderModelDropsStaleMessages(t *testing.T) {
	m := newTestLoader(t, loader.DefaultOptions(), nil, nil)
	other := newTestLoader(t, loader.DefaultOptions(), nil, nil)
	require.NotEqual(t, m.id, other.id)

	m, cmd := m.Update(loaderTickMsg{id: other.id})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Percent())

	_, cmd = m.Update(loaderExpireMsg{id: other.id})
	assert.Nil(t, cmd)
	assert.Equal(t, loader.StateLoading, m.State())
}

func TestLoaderModelCancel(t *testing.T) {
	lock := &ScrollLock{}
	calls := 0
	m := newTestLoader(t, loader.DefaultOptions(), lock, func() { calls++ })
	m = tickN(m, 10)
	m, _ = m.Update(AssetReadyMsg{})
	require.Equal(t, loader.StateReadyToFinish, m.State())

	m.Cancel()
	m.Cancel()
	assert.Equal(t, loader.StateCancelled, m.State())
	assert.False(t, lock.Locked())

	// The grace deadline already in flight fires into a cancelled loader.
	_, cmd := m.Update(loaderGraceMsg{id: m.id})
	assert.Nil(t, cmd)
	assert.Zero(t, calls)

	_, cmd = m.Update(loaderTickMsg{id: m.id})
	assert.Nil(t, cmd)
}

func TestLoaderModelExpire(t *testing.T) {
	opts := loader.DefaultOptions()
	opts.MaxWait = time.Second
	m := newTestLoader(t, opts, nil, nil)
	assert.NotNil(t, m.Init())

	m = tickN(m, 3)
	m, cmd := m.Update(loaderExpireMsg{id: m.id})
	require.NotNil(t, cmd)
	assert.Equal(t, loader.StateReadyToFinish, m.State())
	assert.Contains(t, m.View(), loader.ReasonAssetNotReady)

	m, cmd = m.Update(loaderGraceMsg{id: m.id})
	require.NotNil(t, cmd)
	msg := cmd().(LoadingCompleteMsg)
	assert.True(t, msg.Outcome.Degraded)
	assert.Equal(t, loader.ReasonAssetNotReady, msg.Outcome.Reason)
	assert.Equal(t, 30, msg.Outcome.Percent)
}

func TestLoaderModelView(t *testing.T) {
	m := newTestLoader(t, loader.DefaultOptions(), nil, nil)
	m = tickN(m, 4)

	view := m.View()
	assert.Contains(t, view, "VIRENDER")
	assert.Contains(t, view, "Loading your experience... 40%")

	m.SetSize(100, 30)
	assert.Equal(t, 30, len(strings.Split(m.View(), "\n")))
	assert.Equal(t, 64, m.bar.Width)

	m.SetSize(20, 10)
	assert.Equal(t, 12, m.bar.Width)
}

// loaderHost runs a LoaderModel inside a real program and counts the
// ticks it receives.
type loaderHost struct {
	loader  LoaderModel
	ready   bool
	ticks   int
	outcome loader.Outcome
	done    bool
}

func (h *loaderHost) Init() tea.Cmd {
	cmds := []tea.Cmd{h.loader.Init()}
	if h.ready {
		cmds = append(cmds, func() tea.Msg { return AssetReadyMsg{Portfolio: content.Default()} })
	}
	return tea.Batch(cmds...)
}

func (h *loaderHost) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadingCompleteMsg:
		h.outcome = msg.Outcome
		h.done = true
		return h, tea.Quit
	case loaderTickMsg:
		h.ticks++
	}
	var cmd tea.Cmd
	h.loader, cmd = h.loader.Update(msg)
	return h, cmd
}

func (h *loaderHost) View() string { return "" }

func runLoaderProgram(t *testing.T, h *loaderHost) time.Duration {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p := tea.NewProgram(h,
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	start := time.Now()
	_, err := p.Run()
	elapsed := time.Since(start)
	require.NoError(t, err)
	require.True(t, h.done, "loading completed")
	return elapsed
}

func TestLoaderModelProgramKeepsTickRate(t *testing.T) {
	opts := loader.Options{
		Interval:   30 * time.Millisecond,
		Step:       10,
		Max:        100,
		GraceDelay: 10 * time.Millisecond,
		Join:       loader.JoinImmediate,
	}

	for _, join := range []loader.JoinMode{loader.JoinImmediate, loader.JoinOnTick} {
		t.Run(string(join), func(t *testing.T) {
			opts.Join = join
			h := &loaderHost{loader: newTestLoader(t, opts, nil, nil), ready: true}

			elapsed := runLoaderProgram(t, h)
			minimum := time.Duration(opts.TicksToFull())*opts.Interval + opts.GraceDelay
			assert.GreaterOrEqual(t, elapsed, minimum)
			assert.Equal(t, opts.TicksToFull(), h.outcome.Ticks)
			assert.Equal(t, opts.TicksToFull(), h.ticks, "one tick chain")
			assert.False(t, h.outcome.Degraded)
		})
	}
}
