package ui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// shape is one decorative glyph floating in the hero.
type shape struct {
	glyph string
	col   float64 // horizontal position as a fraction of width
	phase float64
	speed float64 // radians per second
	amp   float64 // rows
}

// Scene is the hero's floating-shapes decoration: a handful of glyphs
// bobbing on sine curves.
type Scene struct {
	shapes  []shape
	elapsed time.Duration
}

// NewScene returns the default set of shapes.
func NewScene() Scene {
	return Scene{shapes: []shape{
		{glyph: "◆", col: 0.12, phase: 0, speed: 1.6, amp: 1.5},
		{glyph: "●", col: 0.30, phase: 1.3, speed: 1.1, amp: 1.0},
		{glyph: "▲", col: 0.55, phase: 2.1, speed: 1.9, amp: 1.5},
		{glyph: "■", col: 0.74, phase: 0.7, speed: 1.3, amp: 1.0},
		{glyph: "✦", col: 0.90, phase: 2.8, speed: 2.2, amp: 1.5},
	}}
}

// Advance moves the scene forward by dt.
func (s Scene) Advance(dt time.Duration) Scene {
	s.elapsed += dt
	return s
}

// Offset returns the vertical offset of shape i at the scene's current time.
func (s Scene) Offset(i int) int {
	sh := s.shapes[i]
	t := s.elapsed.Seconds()
	return int(math.Round(sh.amp * math.Sin(sh.phase+t*sh.speed)))
}

// Render draws the scene into a width×height block.
func (s Scene) Render(width, height int, colors []lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	rows := make([][]string, height)
	for r := range rows {
		rows[r] = make([]string, width)
		for c := range rows[r] {
			rows[r][c] = " "
		}
	}

	mid := height / 2
	for i, sh := range s.shapes {
		row := min(max(mid+s.Offset(i), 0), height-1)
		col := min(int(sh.col*float64(width)), width-1)
		glyph := sh.glyph
		if len(colors) > 0 {
			glyph = lipgloss.NewStyle().Foreground(colors[i%len(colors)]).Render(glyph)
		}
		rows[row][col] = glyph
	}

	lines := make([]string, height)
	for r, cells := range rows {
		lines[r] = strings.Join(cells, "")
	}
	return strings.Join(lines, "\n")
}
