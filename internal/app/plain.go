package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"folio/internal/content"
	"folio/internal/loader"
	"folio/internal/logging"
)

const plainWrap = 80

type loadResult struct {
	portfolio *content.Portfolio
	err       error
}

// RunPlain runs the loading sequence without a TUI, printing progress
// lines to w, then prints the portfolio as rendered markdown. It is meant
// for pipes and terminals without alt-screen support.
func (a *App) RunPlain(ctx context.Context, w io.Writer) error {
	opts, err := LoaderOptions(a.config.Loader)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.signalCleanup = a.setupSignalHandler()
	defer a.Shutdown()
	go func() {
		select {
		case <-a.ctx.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	last := -1
	runner := loader.NewRunner(opts, nil).OnProgress(func(percent int) {
		if percent != last {
			fmt.Fprintf(w, "Loading your experience... %d%%\n", percent)
			last = percent
		}
	})
	if err := runner.Start(ctx); err != nil {
		return err
	}
	defer runner.Stop()

	loaded := make(chan loadResult, 1)
	go func() {
		p, err := a.load(a.config.Content.Path)
		loaded <- loadResult{portfolio: p, err: err}
		runner.AssetReady()
	}()

	outcome, err := runner.Wait(ctx)
	if err != nil {
		return err
	}
	if outcome.Degraded {
		fmt.Fprintf(w, "Continuing without waiting: %s\n", outcome.Reason)
	}

	var res loadResult
	if outcome.Degraded && outcome.Reason == loader.ReasonAssetNotReady {
		// Max wait elapsed first; take the content only if it has landed since.
		select {
		case res = <-loaded:
		default:
			logging.Warn("content not loaded in time, using built-in portfolio", "path", a.config.Content.Path)
			res.portfolio = content.Default()
		}
	} else {
		select {
		case res = <-loaded:
		case <-ctx.Done():
			return loader.ErrCancelled
		}
	}
	p := res.portfolio
	if res.err != nil {
		logging.Error("failed to load content, using built-in portfolio", "path", a.config.Content.Path, "error", res.err)
		fmt.Fprintf(w, "Could not load content (%v), showing built-in portfolio\n", res.err)
		p = content.Default()
	}
	logging.Info("plain render", "ticks", outcome.Ticks, "elapsed", outcome.Elapsed, "degraded", outcome.Degraded)

	fmt.Fprintln(w)
	return RenderMarkdown(w, p, markdownStyle(a.config.UI.Theme))
}

// RenderMarkdown writes the portfolio to w as markdown rendered with the
// named glamour style. The style "raw" writes the markdown source.
func RenderMarkdown(w io.Writer, p *content.Portfolio, style string) error {
	md := p.Markdown()
	if style == "raw" {
		_, err := io.WriteString(w, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(plainWrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render portfolio: %w", err)
	}
	_, err = io.WriteString(w, strings.TrimRight(out, "\n")+"\n")
	return err
}

// markdownStyle picks the glamour style for a theme.
func markdownStyle(theme string) string {
	if theme == "mono" {
		return "notty"
	}
	return "dark"
}
