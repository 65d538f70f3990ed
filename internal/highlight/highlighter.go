// Package highlight renders project code snippets with chroma.
package highlight

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/cache"
)

// cacheSize bounds the number of highlighted snippets kept in memory.
const cacheSize = 64

type cacheKey struct {
	code string
	lang string
}

// Highlighter provides syntax highlighting for snippets.
type Highlighter struct {
	style     string
	formatter chroma.Formatter
	plain     bool
	cache     *cache.LRU[cacheKey, string]
}

// New creates a new Highlighter with the specified style.
// Supported styles include "monokai", "dracula", "github-dark", "native".
// The style "none" disables highlighting.
func New(style string) *Highlighter {
	if style == "" {
		style = "monokai"
	}

	return &Highlighter{
		style:     style,
		formatter: formatters.Get("terminal256"),
		plain:     style == "none",
		cache:     cache.New[cacheKey, string](cacheSize),
	}
}

// Style returns the configured style name.
func (h *Highlighter) Style() string { return h.style }

// Highlight applies syntax highlighting to code based on language. When
// lang is unknown the lexer is guessed from the code itself. Results are
// cached, since snippets are re-rendered on every frame.
func (h *Highlighter) Highlight(code, lang string) string {
	if h.plain {
		return code
	}
	return h.cache.GetOrSet(cacheKey{code: code, lang: lang}, func() string {
		return h.highlight(code, lang)
	})
}

func (h *Highlighter) highlight(code, lang string) string {
	lexer := lexerFor(code, lang)
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(h.style)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return strings.TrimRight(buf.String(), "\n")
}

// HighlightWithLineNumbers highlights code with a line number gutter.
func (h *Highlighter) HighlightWithLineNumbers(code, lang string, startLine int) string {
	highlighted := h.Highlight(code, lang)
	lines := strings.Split(highlighted, "\n")

	width := len(fmt.Sprint(startLine + len(lines) - 1))
	lineNumStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lineNumStyle.Render(fmt.Sprintf("%*d", width, startLine+i)))
		result.WriteString(" │ ")
		result.WriteString(line)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}

	return result.String()
}

// LanguageName returns the lexer name used for lang, or "text".
func LanguageName(code, lang string) string {
	lexer := lexerFor(code, lang)
	if lexer == lexers.Fallback {
		return "text"
	}
	return lexer.Config().Name
}

func lexerFor(code, lang string) chroma.Lexer {
	if lang != "" {
		if lexer := lexers.Get(lang); lexer != nil {
			return lexer
		}
	}
	if lexer := lexers.Analyse(code); lexer != nil {
		return lexer
	}
	return lexers.Fallback
}
