package app

import (
	"fmt"

	"folio/internal/config"
	"folio/internal/loader"
	"folio/internal/ui"
)

// LoaderOptions converts the loader configuration into sequence options.
func LoaderOptions(c config.LoaderConfig) (loader.Options, error) {
	join, err := loader.ParseJoinMode(c.Join)
	if err != nil {
		return loader.Options{}, err
	}

	opts := loader.DefaultOptions()
	opts.Interval = c.TickInterval
	opts.Step = c.Step
	opts.GraceDelay = c.GraceDelay
	opts.MaxWait = c.MaxWait
	opts.Join = join

	if err := opts.Validate(); err != nil {
		return loader.Options{}, err
	}
	return opts, nil
}

// UIOptions builds the terminal UI options from the configuration.
func UIOptions(cfg *config.Config) (ui.Options, error) {
	lopts, err := LoaderOptions(cfg.Loader)
	if err != nil {
		return ui.Options{}, fmt.Errorf("%w: %v", config.ErrInvalidLoader, err)
	}

	view := ui.DefaultPortfolioOptions()
	view.Animations = cfg.UI.Animations
	view.RevealThreshold = cfg.UI.RevealThreshold
	view.RevealStagger = cfg.UI.RevealStagger
	view.ScrolledOffset = config.DefaultScrolledOffset
	view.NarrowWidth = config.DefaultNarrowWidth
	view.SceneInterval = config.DefaultSceneInterval
	view.ToastDuration = config.DefaultToastDuration
	view.ShowHelp = cfg.UI.ShowHelp
	view.MouseEnabled = cfg.UI.MouseEnabled()

	// Leave the code and markdown styles to the theme unless overridden.
	view.CodeStyle = ""
	view.MarkdownStyle = ""
	if cfg.UI.CodeStyle != config.DefaultCodeStyle {
		view.CodeStyle = cfg.UI.CodeStyle
	}

	return ui.Options{
		Loader:      lopts,
		ContentPath: cfg.Content.Path,
		Theme:       ui.ThemeType(cfg.UI.Theme),
		View:        view,
	}, nil
}
