package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/content"
	"folio/internal/loader"
)

func newTestModel(t *testing.T) tea.Model {
	t.Helper()
	opts := DefaultOptions()
	opts.View = testViewOptions()
	m := New(opts)
	require.Equal(t, PhaseLoading, m.Phase())
	require.True(t, m.ScrollLocked())
	require.NotNil(t, m.Init())
	return m
}

func step(t *testing.T, m tea.Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// runLoader drives the loading screen to completion and delivers the
// completion message.
func runLoader(t *testing.T, model tea.Model, asset AssetReadyMsg) Model {
	t.Helper()
	m, _ := step(t, model, tea.WindowSizeMsg{Width: 100, Height: 30})
	id := m.Loader().id
	for range 10 {
		m, _ = step(t, m, loaderTickMsg{id: id})
	}
	m, _ = step(t, m, asset)
	require.Equal(t, loader.StateReadyToFinish, m.Loader().State())

	m, cmd := step(t, m, loaderGraceMsg{id: id})
	require.NotNil(t, cmd)
	complete := cmd()
	require.IsType(t, LoadingCompleteMsg{}, complete)

	m, _ = step(t, m, complete)
	return m
}

func TestModelLoadsThenShows(t *testing.T) {
	m := runLoader(t, newTestModel(t), AssetReadyMsg{Portfolio: content.Default()})

	assert.Equal(t, PhaseShowing, m.Phase())
	assert.False(t, m.ScrollLocked())
	assert.False(t, m.Outcome().Degraded)
	assert.Zero(t, m.Portfolio().Toasts())
	assert.Contains(t, m.View(), "V I R E N D E R")

	m, _ = step(t, m, keyRunes("2"))
	assert.Equal(t, SectionProjects, m.Portfolio().ActiveSection())
}

func TestModelScrollLockedWhileLoading(t *testing.T) {
	m, _ := step(t, newTestModel(t), tea.WindowSizeMsg{Width: 100, Height: 30})
	m, cmd := step(t, m, keyRunes("j"))
	assert.Nil(t, cmd)
	assert.Equal(t, PhaseLoading, m.Phase())
	assert.Contains(t, m.View(), "Loading your experience... 0%")
}

func TestModelQuitDuringLoading(t *testing.T) {
	m, _ := step(t, newTestModel(t), tea.WindowSizeMsg{Width: 100, Height: 30})
	id := m.Loader().id
	m, _ = step(t, m, loaderTickMsg{id: id})

	m, cmd := step(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, loader.StateCancelled, m.Loader().State())
	assert.False(t, m.ScrollLocked(), "teardown releases the scroll lock")
	assert.Empty(t, m.View())

	// Deadlines already scheduled are no-ops.
	m, cmd = step(t, m, loaderGraceMsg{id: id})
	assert.Nil(t, cmd)
	_, cmd = step(t, m, loaderTickMsg{id: id})
	assert.Nil(t, cmd)
}

func TestModelCtrlCQuitsWhenShowing(t *testing.T) {
	m := runLoader(t, newTestModel(t), AssetReadyMsg{Portfolio: content.Default()})
	_, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelAssetErrorFallsBack(t *testing.T) {
	asset := AssetReadyMsg{Portfolio: content.Default(), Err: errors.New("boom")}
	m := runLoader(t, newTestModel(t), asset)

	assert.Equal(t, PhaseShowing, m.Phase())
	assert.Equal(t, 1, m.Portfolio().Toasts())
	assert.Len(t, m.Portfolio().Portfolio().Projects, 3)
}

func TestModelMaxWait(t *testing.T) {
	opts := DefaultOptions()
	opts.View = testViewOptions()
	opts.Loader.MaxWait = 2 * time.Second
	model := New(opts)

	m, _ := step(t, model, tea.WindowSizeMsg{Width: 100, Height: 30})
	id := m.Loader().id
	m, _ = step(t, m, loaderTickMsg{id: id})
	m, _ = step(t, m, loaderExpireMsg{id: id})
	m, cmd := step(t, m, loaderGraceMsg{id: id})
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())

	assert.Equal(t, PhaseShowing, m.Phase())
	assert.True(t, m.Outcome().Degraded)
	assert.Equal(t, 1, m.Portfolio().Toasts())

	// The content arrives late and replaces the built-in portfolio.
	late := content.Default()
	late.Projects = late.Projects[:2]
	m, _ = step(t, m, AssetReadyMsg{Portfolio: late})
	assert.Len(t, m.Portfolio().Portfolio().Projects, 2)
}

func TestModelContentChanged(t *testing.T) {
	m := runLoader(t, newTestModel(t), AssetReadyMsg{Portfolio: content.Default()})

	p := content.Default()
	p.Profile.Name = "ANOTHER"
	m, cmd := step(t, m, ContentChangedMsg{Portfolio: p, Paths: []string{"portfolio.yaml"}})
	assert.NotNil(t, cmd)
	assert.Equal(t, "ANOTHER", m.Portfolio().Portfolio().Profile.Name)

	m, _ = step(t, m, ContentChangedMsg{Err: errors.New("bad yaml")})
	assert.Equal(t, "ANOTHER", m.Portfolio().Portfolio().Profile.Name, "failed reload keeps content")
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "showing", PhaseShowing.String())
}
