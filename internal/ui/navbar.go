package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Section identifies a navigable part of the portfolio.
type Section int

const (
	SectionHome Section = iota
	SectionProjects
	SectionAbout
	sectionCount
)

// Sections lists the navigable sections in page order.
var Sections = []Section{SectionHome, SectionProjects, SectionAbout}

func (s Section) String() string {
	switch s {
	case SectionHome:
		return "home"
	case SectionProjects:
		return "projects"
	case SectionAbout:
		return "about"
	default:
		return "unknown"
	}
}

// navbar holds what the navigation bar needs to render.
type navbar struct {
	brand    string
	active   Section
	compact  bool // scrolled past the hero top
	narrow   bool // items collapse behind the menu toggle
	menuOpen bool
}

func (n navbar) render(width int, s *Styles) string {
	brand := s.NavBrand.Render(n.brand)

	var right string
	if n.narrow {
		icon := "☰"
		if n.menuOpen {
			icon = "✕"
		}
		right = s.NavItem.Render(icon + " menu")
	} else {
		items := make([]string, 0, len(Sections))
		for _, sec := range Sections {
			items = append(items, n.item(sec, s))
		}
		right = lipgloss.JoinHorizontal(lipgloss.Top, items...)
	}

	bar := s.NavBar
	if n.compact {
		bar = s.NavBarCompact
	}
	inner := max(width-bar.GetHorizontalFrameSize(), 0)
	gap := max(inner-lipgloss.Width(brand)-lipgloss.Width(right), 1)
	line := brand + strings.Repeat(" ", gap) + right
	out := bar.Width(width).Render(line)

	if n.narrow && n.menuOpen {
		lines := []string{out}
		for _, sec := range Sections {
			lines = append(lines, s.NavMenuItem.Render(n.item(sec, s)))
		}
		lines = append(lines, s.NavMenuDivider.Render(strings.Repeat("─", max(width, 0))))
		out = strings.Join(lines, "\n")
	}
	return out
}

func (n navbar) item(sec Section, s *Styles) string {
	label := sec.String()
	if sec == n.active {
		return s.NavItemActive.Render(label)
	}
	return s.NavItem.Render(label)
}
