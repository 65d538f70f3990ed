package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlightAddsEscapes(t *testing.T) {
	h := New("monokai")
	out := h.Highlight("package main\n\nfunc main() {}\n", "go")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "main")
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestHighlightPlain(t *testing.T) {
	h := New("none")
	assert.Equal(t, "x := 1", h.Highlight("x := 1", "go"))
}

func TestHighlightWithLineNumbers(t *testing.T) {
	h := New("none")
	out := h.HighlightWithLineNumbers("a\nb\nc", "text", 9)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "9")
	assert.True(t, strings.HasSuffix(lines[0], " │ a"))
	assert.Contains(t, lines[2], "11")
	assert.True(t, strings.HasSuffix(lines[2], " │ c"))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Python", LanguageName("", "python"))
	assert.Equal(t, "Go", LanguageName("", "go"))
	assert.Equal(t, "text", LanguageName("", "definitely-not-a-language"))
}

func TestDefaultStyle(t *testing.T) {
	assert.Equal(t, "monokai", New("").Style())
}

func TestHighlightCached(t *testing.T) {
	h := New("monokai")
	first := h.Highlight("x := 1", "go")
	second := h.Highlight("x := 1", "go")
	assert.Equal(t, first, second)

	hits, misses := h.cache.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}
