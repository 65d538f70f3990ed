package ui

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// Toast represents a single toast notification.
type Toast struct {
	ID        int
	Type      ToastType
	Message   string
	Duration  time.Duration
	CreatedAt time.Time
}

// IsExpired returns true if the toast should be removed.
func (t *Toast) IsExpired(now time.Time) bool {
	return now.Sub(t.CreatedAt) >= t.Duration
}

// toastExpiredMsg asks the manager to drop expired toasts.
type toastExpiredMsg struct{ id int }

// ToastManager manages toast notifications.
type ToastManager struct {
	mu        sync.Mutex
	toasts    []Toast
	maxToasts int
	nextID    int
	now       func() time.Time
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{
		maxToasts: 3,
		nextID:    1,
		now:       time.Now,
	}
}

// Show displays a new toast and returns the command that expires it.
func (m *ToastManager) Show(toastType ToastType, message string, duration time.Duration) tea.Cmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	toast := Toast{
		ID:        m.nextID,
		Type:      toastType,
		Message:   message,
		Duration:  duration,
		CreatedAt: m.now(),
	}
	m.nextID++

	// Add to the beginning (newest first)
	m.toasts = append([]Toast{toast}, m.toasts...)
	if len(m.toasts) > m.maxToasts {
		m.toasts = m.toasts[:m.maxToasts]
	}

	id := toast.ID
	return tea.Tick(duration, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

// ShowSuccess displays a success toast.
func (m *ToastManager) ShowSuccess(message string) tea.Cmd {
	return m.Show(ToastSuccess, message, 3*time.Second)
}

// ShowError displays an error toast.
func (m *ToastManager) ShowError(message string) tea.Cmd {
	return m.Show(ToastError, message, 5*time.Second)
}

// ShowWarning displays a warning toast.
func (m *ToastManager) ShowWarning(message string) tea.Cmd {
	return m.Show(ToastWarning, message, 4*time.Second)
}

// Dismiss removes a toast by ID.
func (m *ToastManager) Dismiss(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, toast := range m.toasts {
		if toast.ID == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

// Prune removes expired toasts.
func (m *ToastManager) Prune() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	active := m.toasts[:0]
	for _, toast := range m.toasts {
		if !toast.IsExpired(now) {
			active = append(active, toast)
		}
	}
	m.toasts = active
}

// Count returns the number of active toasts.
func (m *ToastManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.toasts)
}

// View renders all active toasts, newest first.
func (m *ToastManager) View(width int) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.toasts) == 0 {
		return ""
	}

	lines := make([]string, 0, len(m.toasts))
	for _, toast := range m.toasts {
		lines = append(lines, renderToast(toast, width))
	}
	return strings.Join(lines, "\n")
}

// renderToast renders a single toast as a compact line: ✓ Message
func renderToast(toast Toast, width int) string {
	var icon string
	var iconColor lipgloss.Color

	switch toast.Type {
	case ToastSuccess:
		icon, iconColor = "✓", ColorSuccess
	case ToastError:
		icon, iconColor = "✗", ColorError
	case ToastWarning:
		icon, iconColor = "⚠", ColorWarning
	default: // ToastInfo
		icon, iconColor = "ℹ", ColorInfo
	}

	iconStyle := lipgloss.NewStyle().Foreground(iconColor).Bold(true)
	msgStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	msg := []rune(toast.Message)
	maxLen := max(width-5, 20)
	if len(msg) > maxLen {
		msg = append(msg[:maxLen-1], '…')
	}

	return iconStyle.Render(icon) + " " + msgStyle.Render(string(msg))
}
