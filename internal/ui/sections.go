package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/highlight"
)

const (
	sceneHeight  = 5
	minHero      = 12
	maxCardWidth = 76
)

// spaced renders a name as letter-spaced display text.
func spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

func renderHero(p content.Profile, scene Scene, width, height int, s *Styles) string {
	height = max(height, minHero)

	var parts []string
	parts = append(parts, scene.Render(width, sceneHeight, s.SceneColors), "")
	parts = append(parts, s.HeroName.Render(spaced(p.Name)))
	if p.Title != "" {
		parts = append(parts, s.HeroTitle.Render(p.Title))
	}
	if p.Tagline != "" {
		parts = append(parts, s.HeroTagline.Width(min(width, 64)).Align(lipgloss.Center).Render(p.Tagline))
	}
	parts = append(parts, "", s.HeroHint.Render("scroll ↓  ·  2 projects  ·  3 about"))

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func cardWidth(width int) int {
	return max(min(width-4, maxCardWidth), 20)
}

// renderCard renders a project card. Hidden cards keep the same size so
// revealing one never shifts the layout.
func renderCard(proj content.Project, width int, shown, selected, expanded bool, hl *highlight.Highlighter, s *Styles) string {
	w := cardWidth(width)
	inner := w - 4 // border + padding

	lines := []string{
		s.CardTitle.Render(fmt.Sprintf("%02d  %s", proj.ID, proj.Title)),
	}
	if proj.Description != "" {
		lines = append(lines, s.CardBody.Width(inner).Render(proj.Description))
	}
	if len(proj.Tags) > 0 {
		tags := make([]string, 0, len(proj.Tags))
		for _, t := range proj.Tags {
			tags = append(tags, s.Tag.Render(t))
		}
		lines = append(lines, "", lipgloss.NewStyle().Width(inner).Render(strings.Join(tags, " ")))
	}
	if link := proj.Link(); link != "" {
		lines = append(lines, s.Dim.Render(truncate(link, inner)))
	}
	if expanded && proj.Snippet != "" {
		code := hl.HighlightWithLineNumbers(proj.Snippet, proj.Language, 1)
		lines = append(lines, "", s.Snippet.Render(code))
	}

	body := strings.Join(lines, "\n")
	style := s.Card
	switch {
	case !shown:
		// Render plain text so the hidden card does not leak colors.
		body = lipgloss.NewStyle().Width(inner).Render(stripToWidth(body))
		style = s.CardHidden
	case selected:
		style = s.CardSelected
	}
	return style.Width(w - 2).Render(body)
}

// stripToWidth blanks out a rendered block while keeping its shape.
func stripToWidth(block string) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = strings.Repeat(" ", lipgloss.Width(l))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// aboutRenderer caches the glamour rendering of the about markdown for a width.
type aboutRenderer struct {
	style  string
	width  int
	source string
	out    string
}

func (a *aboutRenderer) render(md string, width int) string {
	if a.out != "" && a.width == width && a.source == md {
		return a.out
	}
	a.width, a.source = width, md

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(a.style),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err == nil {
		if out, err := r.Render(md); err == nil {
			a.out = strings.TrimRight(out, "\n")
			return a.out
		}
	}
	a.out = lipgloss.NewStyle().Width(max(width-4, 20)).Render(md)
	return a.out
}

func renderFooter(p content.Profile, width int, now time.Time, s *Styles) string {
	var links []string
	for _, l := range p.Links {
		links = append(links, s.FooterLink.Render(l.Label))
	}
	if p.Email != "" {
		links = append(links, s.FooterLink.Render(p.Email))
	}

	lines := []string{
		fmt.Sprintf("© %d %s. All rights reserved.", now.Year(), p.Name),
	}
	if len(links) > 0 {
		lines = append(lines, strings.Join(links, s.Dim.Render("  ·  ")))
	}
	lines = append(lines, s.Dim.Render("press g to go back to top ↑"))

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return s.Footer.Width(width).Align(lipgloss.Center).Render(body)
}
