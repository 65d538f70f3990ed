package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/content"
	"folio/internal/loader"
	"folio/internal/logging"
)

// AssetReadyMsg reports that the portfolio content has been loaded. When
// loading failed, Err is set and Portfolio holds the built-in fallback.
type AssetReadyMsg struct {
	Portfolio *content.Portfolio
	Err       error
}

// LoadingCompleteMsg is sent once the loading screen has finished.
type LoadingCompleteMsg struct {
	Outcome loader.Outcome
}

// ContentChangedMsg carries a portfolio reloaded after a change on disk.
type ContentChangedMsg struct {
	Portfolio *content.Portfolio
	Paths     []string
	Err       error
}

// clipboardMsg reports the result of copying a project link.
type clipboardMsg struct {
	url string
	err error
}

// LoadAssetCmd loads the portfolio at path. It always produces an
// AssetReadyMsg so the loading screen can finish.
func LoadAssetCmd(path string) tea.Cmd {
	return func() tea.Msg {
		p, err := content.Load(path)
		if err != nil {
			logging.Error("failed to load content, using built-in portfolio", "path", path, "error", err)
			return AssetReadyMsg{Portfolio: content.Default(), Err: err}
		}
		logging.Debug("content loaded", "path", path, "projects", len(p.Projects))
		return AssetReadyMsg{Portfolio: p}
	}
}
