package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// VisibleFraction returns how much of the span [top, top+height) lies
// inside the view [viewTop, viewTop+viewHeight), from 0 to 1.
func VisibleFraction(top, height, viewTop, viewHeight int) float64 {
	if height <= 0 || viewHeight <= 0 {
		return 0
	}
	start := max(top, viewTop)
	end := min(top+height, viewTop+viewHeight)
	if end <= start {
		return 0
	}
	return float64(end-start) / float64(height)
}

// revealMsg reveals card index if gen still matches its visibility generation.
type revealMsg struct {
	index int
	gen   int
}

// Reveal tracks which project cards are in view and which have finished
// their staggered entrance. A card leaving the view is hidden again so it
// replays the entrance next time.
type Reveal struct {
	threshold float64
	stagger   time.Duration
	animate   bool

	inView []bool
	shown  []bool
	gen    []int
}

// NewReveal tracks n cards.
func NewReveal(n int, threshold float64, stagger time.Duration, animate bool) Reveal {
	return Reveal{
		threshold: threshold,
		stagger:   stagger,
		animate:   animate,
		inView:    make([]bool, n),
		shown:     make([]bool, n),
		gen:       make([]int, n),
	}
}

// Len returns the number of tracked cards.
func (r Reveal) Len() int { return len(r.shown) }

// Shown reports whether card i is revealed.
func (r Reveal) Shown(i int) bool {
	return i >= 0 && i < len(r.shown) && r.shown[i]
}

// Observe updates visibility from per-card visible fractions and returns
// the commands that complete newly started entrances. changed reports
// whether any card became shown or hidden immediately.
func (r *Reveal) Observe(fractions []float64) (cmd tea.Cmd, changed bool) {
	var cmds []tea.Cmd
	for i := range r.inView {
		f := 0.0
		if i < len(fractions) {
			f = fractions[i]
		}
		visible := f > 0 && f >= r.threshold

		switch {
		case visible && !r.inView[i]:
			r.inView[i] = true
			r.gen[i]++
			delay := time.Duration(i) * r.stagger
			if !r.animate || delay <= 0 {
				r.shown[i] = true
				changed = true
				continue
			}
			msg := revealMsg{index: i, gen: r.gen[i]}
			cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg { return msg }))
		case !visible && r.inView[i]:
			r.inView[i] = false
			r.gen[i]++
			if r.shown[i] {
				r.shown[i] = false
				changed = true
			}
		}
	}
	return tea.Batch(cmds...), changed
}

// Apply completes a staggered entrance. It reports whether a card changed.
func (r *Reveal) Apply(msg revealMsg) bool {
	i := msg.index
	if i < 0 || i >= len(r.shown) || msg.gen != r.gen[i] || !r.inView[i] || r.shown[i] {
		return false
	}
	r.shown[i] = true
	return true
}
