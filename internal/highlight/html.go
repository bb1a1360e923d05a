package highlight

import (
	"bytes"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// HTML highlights through goldmark's fenced code blocks with chroma inline
// styles and line numbers.
type HTML struct {
	md goldmark.Markdown
}

// NewHTML returns an HTML highlighter using the named chroma style.
func NewHTML(style string) *HTML {
	md := goldmark.New(
		goldmark.WithExtensions(
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithLineNumbers(true),
					chromahtml.TabWidth(4),
				),
			),
		),
	)
	return &HTML{md: md}
}

// Highlight returns a <pre> block for text.
func (h *HTML) Highlight(text, lang string) (string, error) {
	src := fenced(text, knownLanguage(lang))
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("highlighting %s: %w", lang, err)
	}
	return buf.String(), nil
}

// fenced wraps text in a backtick fence longer than any backtick run inside
// it, so the source can never close the block early.
func fenced(text, lang string) string {
	fence := strings.Repeat("`", max(3, longestRun(text, '`')+1))
	var b strings.Builder
	b.WriteString(fence)
	b.WriteString(lang)
	b.WriteByte('\n')
	b.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(fence)
	b.WriteByte('\n')
	return b.String()
}

func longestRun(s string, c byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return longest
}
