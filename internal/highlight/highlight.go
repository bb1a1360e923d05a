// Package highlight turns raw source text into highlighted, line-numbered
// markup for the explorer's content pane.
package highlight

import (
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/ziadkadry99/codeview/internal/config"
)

// Highlighter renders text in the given language.
type Highlighter interface {
	Highlight(text, lang string) (string, error)
}

// Chroma style names per theme.
const (
	DarkStyle  = "monokai"
	LightStyle = "github"
)

// StyleFor returns the chroma style matching theme.
func StyleFor(theme config.Theme) string {
	if theme == config.ThemeLight {
		return LightStyle
	}
	return DarkStyle
}

// knownLanguage returns lang when chroma has a lexer for it, else "text".
func knownLanguage(lang string) string {
	if lang != "" && lexers.Get(lang) != nil {
		return lang
	}
	return "text"
}
