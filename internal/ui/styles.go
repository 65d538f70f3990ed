package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors for the UI theme - Muted Professional Palette
var (
	ColorPrimary   = lipgloss.Color("#A78BFA") // Soft Purple (Lavender 400)
	ColorSecondary = lipgloss.Color("#22D3EE") // Bright Cyan (Cyan 400)
	ColorSuccess   = lipgloss.Color("#059669") // Emerald 600 (muted green)
	ColorWarning   = lipgloss.Color("#D97706") // Amber 600 (muted amber)
	ColorError     = lipgloss.Color("#DC2626") // Red 600 (muted red)
	ColorMuted     = lipgloss.Color("#9CA3AF") // Neutral Gray (Gray 400)
	ColorText      = lipgloss.Color("#F1F5F9") // Soft White (Slate 100)
	ColorBg        = lipgloss.Color("#0F172A") // Deep Navy (Slate 900)

	// Extended semantic colors
	ColorBorder    = lipgloss.Color("#1E293B") // Subtle Slate Border
	ColorHighlight = lipgloss.Color("#E9D5FF") // Soft Purple (Purple 200)
	ColorDim       = lipgloss.Color("#6B7280") // Gray 500 (slightly lighter)
	ColorAccent    = lipgloss.Color("#F472B6") // Pink Accent (Pink 400)
	ColorInfo      = lipgloss.Color("#2DD4BF") // Teal Info (Teal 400)

	// Gradient colors (used sparingly)
	ColorGradient1 = lipgloss.Color("#C084FC") // Purple 500
	ColorGradient2 = lipgloss.Color("#818CF8") // Indigo 500
	ColorGradient3 = lipgloss.Color("#38BDF8") // Sky 500
)

// Styles contains all UI styles.
type Styles struct {
	App lipgloss.Style

	// Loading screen
	LoaderTitle   lipgloss.Style
	LoaderCaption lipgloss.Style
	LoaderNote    lipgloss.Style

	// Navbar
	NavBrand       lipgloss.Style
	NavItem        lipgloss.Style
	NavItemActive  lipgloss.Style
	NavBar         lipgloss.Style
	NavBarCompact  lipgloss.Style
	NavMenuItem    lipgloss.Style
	NavMenuDivider lipgloss.Style

	// Sections
	HeroName     lipgloss.Style
	HeroTitle    lipgloss.Style
	HeroTagline  lipgloss.Style
	HeroHint     lipgloss.Style
	SectionTitle lipgloss.Style
	Footer       lipgloss.Style
	FooterLink   lipgloss.Style

	// Project cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardHidden   lipgloss.Style
	CardTitle    lipgloss.Style
	CardBody     lipgloss.Style
	Tag          lipgloss.Style
	Snippet      lipgloss.Style

	// Additional styles
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style

	// Scene shape colors, cycled by shape index
	SceneColors []lipgloss.Color
}

// DefaultStyles returns the default UI styles.
func DefaultStyles() *Styles {
	return &Styles{
		App: lipgloss.NewStyle(),

		LoaderTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			MarginBottom(1),

		LoaderCaption: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),

		LoaderNote: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Italic(true),

		NavBrand: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText),

		NavItem: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1),

		NavItemActive: lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		NavBar: lipgloss.NewStyle().
			Padding(1, 2),

		NavBarCompact: lipgloss.NewStyle().
			Padding(0, 2).
			Background(ColorBorder),

		NavMenuItem: lipgloss.NewStyle().
			Foreground(ColorMuted).
			PaddingLeft(4),

		NavMenuDivider: lipgloss.NewStyle().
			Foreground(ColorBorder),

		HeroName: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		HeroTitle: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true),

		HeroTagline: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),

		HeroHint: lipgloss.NewStyle().
			Foreground(ColorDim),

		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			MarginBottom(1),

		Footer: lipgloss.NewStyle().
			Foreground(ColorDim).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorBorder),

		FooterLink: lipgloss.NewStyle().
			Foreground(ColorSecondary),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1),

		CardHidden: lipgloss.NewStyle().
			BorderStyle(lipgloss.HiddenBorder()).
			Foreground(ColorBorder).
			Faint(true).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText),

		CardBody: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Tag: lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Background(ColorBorder).
			Padding(0, 1),

		Snippet: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorDim).
			PaddingLeft(1),

		Dim: lipgloss.NewStyle().
			Foreground(ColorDim),

		Highlight: lipgloss.NewStyle().
			Foreground(ColorHighlight),

		Accent: lipgloss.NewStyle().
			Foreground(ColorAccent),

		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true),

		SceneColors: []lipgloss.Color{ColorGradient1, ColorGradient2, ColorGradient3, ColorAccent},
	}
}
