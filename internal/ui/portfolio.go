package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/highlight"
	"folio/internal/logging"
)

// PortfolioOptions configures the portfolio view.
type PortfolioOptions struct {
	Animations      bool
	RevealThreshold float64
	RevealStagger   time.Duration
	ScrolledOffset  int // lines scrolled before the navbar turns compact
	NarrowWidth     int // below this width the nav items collapse into a menu
	SceneInterval   time.Duration
	ToastDuration   time.Duration
	CodeStyle       string
	MarkdownStyle   string
	ShowHelp        bool
	MouseEnabled    bool

	// Clipboard copies text; nil uses the system clipboard.
	Clipboard func(string) error
	// Now returns the current time; nil uses time.Now.
	Now func() time.Time
}

// DefaultPortfolioOptions returns the default view options.
func DefaultPortfolioOptions() PortfolioOptions {
	return PortfolioOptions{
		Animations:      true,
		RevealThreshold: 0.3,
		RevealStagger:   200 * time.Millisecond,
		ScrolledOffset:  3,
		NarrowWidth:     60,
		SceneInterval:   100 * time.Millisecond,
		ToastDuration:   3 * time.Second,
		CodeStyle:       "monokai",
		MarkdownStyle:   "dark",
		ShowHelp:        true,
		MouseEnabled:    true,
	}
}

// layout records where each part of the page starts, in content lines.
type layout struct {
	sectionTop [sectionCount]int
	heroHeight int
	cardTop    []int
	cardHeight []int
	total      int
}

// PortfolioModel is the scrollable single-page portfolio.
type PortfolioModel struct {
	portfolio *content.Portfolio
	opts      PortfolioOptions
	styles    *Styles
	keys      keyMap
	help      help.Model
	viewport  viewport.Model
	lock      *ScrollLock
	hl        *highlight.Highlighter
	about     *aboutRenderer
	toasts    *ToastManager

	width  int
	height int
	layout layout

	scene        Scene
	sceneRunning bool
	reveal       Reveal
	selected     int
	expanded     map[int]bool
	menuOpen     bool
}

// NewPortfolioModel creates the portfolio view. lock may be nil.
func NewPortfolioModel(p *content.Portfolio, opts PortfolioOptions, styles *Styles, lock *ScrollLock) PortfolioModel {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = opts.MouseEnabled

	h := help.New()
	h.ShowAll = false

	m := PortfolioModel{
		portfolio: p,
		opts:      opts,
		styles:    styles,
		keys:      defaultKeyMap(),
		help:      h,
		viewport:  vp,
		lock:      lock,
		hl:        highlight.New(opts.CodeStyle),
		about:     &aboutRenderer{style: opts.MarkdownStyle},
		toasts:    NewToastManager(),
		width:     80,
		height:    24,
		scene:     NewScene(),
		reveal:    NewReveal(len(p.Projects), opts.RevealThreshold, opts.RevealStagger, opts.Animations),
		expanded:  make(map[int]bool),
	}
	m.resize()
	return m
}

// Init starts the hero animation and reveals cards already in view.
func (m *PortfolioModel) Init() tea.Cmd {
	return m.observe()
}

// SetSize sets the size of the portfolio view.
func (m *PortfolioModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.resize()
}

// SetPortfolio replaces the content, keeping the scroll position.
func (m *PortfolioModel) SetPortfolio(p *content.Portfolio) tea.Cmd {
	m.portfolio = p
	m.reveal = NewReveal(len(p.Projects), m.opts.RevealThreshold, m.opts.RevealStagger, m.opts.Animations)
	m.expanded = make(map[int]bool)
	m.selected = min(m.selected, max(len(p.Projects)-1, 0))
	m.resize()
	return m.observe()
}

// Portfolio returns the content being shown.
func (m PortfolioModel) Portfolio() *content.Portfolio { return m.portfolio }

// ToastCmd shows a toast in the portfolio view.
func (m *PortfolioModel) ToastCmd(t ToastType, message string) tea.Cmd {
	cmd := m.toasts.Show(t, message, m.opts.ToastDuration)
	m.resize()
	return cmd
}

// Toasts returns the number of visible toasts.
func (m PortfolioModel) Toasts() int { return m.toasts.Count() }

// Update handles portfolio messages.
func (m PortfolioModel) Update(msg tea.Msg) (PortfolioModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		cmd := m.observe()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.lock.Locked() {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		scrollCmd := m.afterScroll()
		return m, tea.Batch(cmd, scrollCmd)

	case TickMsg:
		if !m.sceneRunning {
			return m, nil
		}
		m.scene = m.scene.Advance(m.opts.SceneInterval)
		if !m.heroInView() {
			m.sceneRunning = false
			return m, nil
		}
		m.refresh()
		return m, TickCmd(m.opts.SceneInterval)

	case revealMsg:
		if m.reveal.Apply(msg) {
			m.refresh()
		}
		return m, nil

	case clipboardMsg:
		var cmd tea.Cmd
		if msg.err != nil {
			logging.Warn("failed to copy project link", "url", msg.url, "error", msg.err)
			cmd = m.toasts.Show(ToastError, "Could not copy link: "+msg.err.Error(), m.opts.ToastDuration)
		} else {
			cmd = m.toasts.Show(ToastSuccess, "Copied "+msg.url, m.opts.ToastDuration)
		}
		m.resize()
		return m, cmd

	case toastExpiredMsg:
		m.toasts.Dismiss(msg.id)
		m.toasts.Prune()
		m.resize()
		return m, nil
	}

	return m, nil
}

func (m PortfolioModel) handleKey(msg tea.KeyMsg) (PortfolioModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.Menu):
		if m.narrow() {
			m.menuOpen = !m.menuOpen
			m.resize()
		}
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		cmd := m.copySelected()
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		if len(m.portfolio.Projects) > 0 {
			m.expanded[m.selected] = !m.expanded[m.selected]
			m.refresh()
			cmd := m.observe()
			return m, cmd
		}
		return m, nil
	case key.Matches(msg, m.keys.NextCard):
		cmd := m.selectCard(m.selected + 1)
		return m, cmd
	case key.Matches(msg, m.keys.PrevCard):
		cmd := m.selectCard(m.selected - 1)
		return m, cmd
	}

	if m.lock.Locked() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
	case key.Matches(msg, m.keys.Up):
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
	case key.Matches(msg, m.keys.Top):
		m.ScrollToTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.Home):
		m.ScrollToSection(SectionHome)
	case key.Matches(msg, m.keys.Projects):
		m.ScrollToSection(SectionProjects)
	case key.Matches(msg, m.keys.About):
		m.ScrollToSection(SectionAbout)
	case key.Matches(msg, m.keys.NextSection):
		m.ScrollToSection((m.ActiveSection() + 1) % sectionCount)
	default:
		return m, nil
	}
	cmd := m.afterScroll()
	return m, cmd
}

// ScrollToSection scrolls so that the section starts at the top of the
// view. Selecting a section closes the menu.
func (m *PortfolioModel) ScrollToSection(s Section) {
	m.menuOpen = false
	if s == SectionHome {
		m.ScrollToTop()
		return
	}
	m.resize()
	m.viewport.SetYOffset(m.layout.sectionTop[s])
}

// ScrollToTop scrolls back to the hero.
func (m *PortfolioModel) ScrollToTop() {
	m.menuOpen = false
	m.viewport.GotoTop()
	m.resize()
}

// YOffset returns the first visible content line.
func (m PortfolioModel) YOffset() int { return m.viewport.YOffset }

// ActiveSection returns the section the reader is in: the last one whose
// top is above the upper third of the view.
func (m PortfolioModel) ActiveSection() Section {
	if m.viewport.AtBottom() && m.viewport.YOffset > 0 {
		return SectionAbout
	}
	probe := m.viewport.YOffset + m.viewport.Height/3
	active := SectionHome
	for _, s := range Sections {
		if m.layout.sectionTop[s] <= probe {
			active = s
		}
	}
	return active
}

// Compact reports whether the navbar is in its scrolled form.
func (m PortfolioModel) Compact() bool {
	return m.viewport.YOffset > m.opts.ScrolledOffset
}

// MenuOpen reports whether the narrow-width menu is open.
func (m PortfolioModel) MenuOpen() bool { return m.menuOpen }

// Selected returns the index of the selected project.
func (m PortfolioModel) Selected() int { return m.selected }

// CardShown reports whether project card i has been revealed.
func (m PortfolioModel) CardShown(i int) bool { return m.reveal.Shown(i) }

func (m PortfolioModel) narrow() bool {
	return m.width < m.opts.NarrowWidth
}

func (m *PortfolioModel) selectCard(i int) tea.Cmd {
	n := len(m.portfolio.Projects)
	if n == 0 {
		return nil
	}
	m.selected = (i + n) % n
	m.refresh()

	// Bring the card into view when it is off screen.
	top, h := m.layout.cardTop[m.selected], m.layout.cardHeight[m.selected]
	if top < m.viewport.YOffset || top+h > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(top)
	}
	return m.afterScroll()
}

func (m *PortfolioModel) copySelected() tea.Cmd {
	if len(m.portfolio.Projects) == 0 {
		return nil
	}
	link := m.portfolio.Projects[m.selected].Link()
	if link == "" {
		return m.ToastCmd(ToastWarning, "This project has no link")
	}
	write := m.opts.Clipboard
	return func() tea.Msg {
		return clipboardMsg{url: link, err: write(link)}
	}
}

// afterScroll updates scroll-dependent chrome and visibility.
func (m *PortfolioModel) afterScroll() tea.Cmd {
	m.resize()
	return m.observe()
}

// observe recomputes which cards and the hero are in view.
func (m *PortfolioModel) observe() tea.Cmd {
	fractions := make([]float64, len(m.layout.cardTop))
	for i := range fractions {
		fractions[i] = VisibleFraction(m.layout.cardTop[i], m.layout.cardHeight[i], m.viewport.YOffset, m.viewport.Height)
	}
	cmd, changed := m.reveal.Observe(fractions)
	if changed {
		m.refresh()
	}

	var sceneCmd tea.Cmd
	if m.opts.Animations && !m.sceneRunning && m.heroInView() {
		m.sceneRunning = true
		sceneCmd = TickCmd(m.opts.SceneInterval)
	}
	return tea.Batch(cmd, sceneCmd)
}

// heroHeight fills the window below the expanded navbar, so the hero
// does not change size as the navbar compacts.
func (m PortfolioModel) heroHeight() int {
	nav := navbar{brand: m.portfolio.Profile.Name, narrow: m.narrow()}
	h := m.height - lipgloss.Height(nav.render(m.width, m.styles))
	if hv := m.helpView(); hv != "" {
		h -= lipgloss.Height(hv)
	}
	return h
}

func (m PortfolioModel) heroInView() bool {
	return VisibleFraction(0, m.layout.heroHeight, m.viewport.YOffset, m.viewport.Height) > 0
}

func (m PortfolioModel) navbar() navbar {
	return navbar{
		brand:    m.portfolio.Profile.Name,
		active:   m.ActiveSection(),
		compact:  m.Compact(),
		narrow:   m.narrow(),
		menuOpen: m.menuOpen,
	}
}

func (m PortfolioModel) helpView() string {
	if !m.opts.ShowHelp {
		return ""
	}
	m.help.Width = m.width
	return m.help.View(m.keys)
}

func (m PortfolioModel) toastView() string {
	return m.toasts.View(m.width)
}

// resize fits the viewport between the navbar and the help bar, then
// re-renders the page.
func (m *PortfolioModel) resize() {
	chrome := lipgloss.Height(m.navbar().render(m.width, m.styles))
	if hv := m.helpView(); hv != "" {
		chrome += lipgloss.Height(hv)
	}
	if tv := m.toastView(); tv != "" {
		chrome += lipgloss.Height(tv)
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chrome, 1)
	m.refresh()
}

// refresh re-renders the page content and records its layout.
func (m *PortfolioModel) refresh() {
	var b strings.Builder
	var lay layout
	line := 0

	add := func(block string) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block)
		line += lipgloss.Height(block)
	}

	p := m.portfolio
	lay.sectionTop[SectionHome] = 0
	hero := renderHero(p.Profile, m.scene, m.width, m.heroHeight(), m.styles)
	add(hero)
	lay.heroHeight = line

	lay.sectionTop[SectionProjects] = line
	add(m.styles.SectionTitle.Render(centerIn(m.width, "Featured Projects")))
	lay.cardTop = make([]int, len(p.Projects))
	lay.cardHeight = make([]int, len(p.Projects))
	for i, proj := range p.Projects {
		card := renderCard(proj, m.width, m.reveal.Shown(i), i == m.selected, m.expanded[i], m.hl, m.styles)
		card = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, card)
		lay.cardTop[i] = line
		lay.cardHeight[i] = lipgloss.Height(card)
		add(card)
	}
	if len(p.Projects) == 0 {
		add(m.styles.Dim.Render(centerIn(m.width, "No projects yet.")))
	}
	add("")

	lay.sectionTop[SectionAbout] = line
	add(m.styles.SectionTitle.Render(centerIn(m.width, "About")))
	add(m.about.render(p.Profile.About, m.width))
	add("")
	add(renderFooter(p.Profile, m.width, m.opts.Now(), m.styles))

	lay.total = line
	m.layout = lay
	m.viewport.SetContent(b.String())
}

func centerIn(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// View renders the navbar, toasts, page and help bar.
func (m PortfolioModel) View() string {
	parts := []string{m.navbar().render(m.width, m.styles)}
	if tv := m.toastView(); tv != "" {
		parts = append(parts, tv)
	}
	parts = append(parts, m.viewport.View())
	if hv := m.helpView(); hv != "" {
		parts = append(parts, hv)
	}
	return strings.Join(parts, "\n")
}

// Summary describes the view for logs.
func (m PortfolioModel) Summary() string {
	return fmt.Sprintf("%s@%d/%d", m.ActiveSection(), m.viewport.YOffset, m.layout.total)
}
