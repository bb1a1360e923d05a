package highlight

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Terminal highlights for a 256-colour terminal with a right-aligned line
// number gutter.
type Terminal struct {
	style     *chroma.Style
	formatter chroma.Formatter
	gutter    lipgloss.Style
}

// NewTerminal returns a Terminal highlighter using the named chroma style.
func NewTerminal(style string) *Terminal {
	return &Terminal{
		style:     styles.Get(style),
		formatter: formatters.Get("terminal256"),
		gutter:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (t *Terminal) Highlight(text, lang string) (string, error) {
	lexer := lexers.Get(knownLanguage(lang))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", fmt.Errorf("tokenising %s: %w", lang, err)
	}
	lines := chroma.SplitTokensIntoLines(it.Tokens())
	if n := len(lines); n > 0 && isBlank(lines[n-1]) {
		lines = lines[:n-1]
	}
	width := len(strconv.Itoa(len(lines)))

	var out strings.Builder
	var buf bytes.Buffer
	for i, line := range lines {
		buf.Reset()
		if err := t.formatter.Format(&buf, t.style, chroma.Literator(trimNewlines(line)...)); err != nil {
			return "", fmt.Errorf("formatting line %d: %w", i+1, err)
		}
		out.WriteString(t.gutter.Render(fmt.Sprintf("%*d │ ", width, i+1)))
		out.Write(buf.Bytes())
		out.WriteByte('\n')
	}
	return out.String(), nil
}

func trimNewlines(tokens []chroma.Token) []chroma.Token {
	out := make([]chroma.Token, 0, len(tokens))
	for _, tok := range tokens {
		tok.Value = strings.TrimRight(tok.Value, "\n")
		if tok.Value != "" {
			out = append(out, tok)
		}
	}
	return out
}

func isBlank(tokens []chroma.Token) bool {
	for _, tok := range tokens {
		if strings.TrimRight(tok.Value, "\n") != "" {
			return false
		}
	}
	return true
}
