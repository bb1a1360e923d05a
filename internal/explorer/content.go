package explorer

import (
	"strings"

	"github.com/ziadkadry99/codeview/internal/tree"
)

// Placeholder is shown in the content pane while no file is selected.
const Placeholder = "Select a file from the sidebar to view its contents."

// Content is the content pane for the current selection.
type Content struct {
	Empty    bool
	Name     string
	Path     string
	URL      string
	Text     string
	Language string
}

// Content derives the content pane from the active file.
func (s *State) Content() Content {
	n := s.Active()
	if n == nil {
		return Content{Empty: true, Language: s.language}
	}
	return s.ContentFor(n)
}

// LinkBuilder turns a node path into a link to the file in its source
// repository.
type LinkBuilder struct {
	// Marker is stripped from the front of the path, e.g. "./".
	Marker  string
	RepoURL string
	Branch  string
}

// URL returns RepoURL/blob/Branch/<path without marker>, or "" when no
// repository is configured.
func (l LinkBuilder) URL(path string) string {
	if l.RepoURL == "" {
		return ""
	}
	rest := path
	if l.Marker != "" {
		rest = strings.TrimPrefix(rest, l.Marker)
	}
	return strings.TrimSuffix(l.RepoURL, "/") + "/blob/" + l.Branch + "/" + rest
}

// ContentFor is Content for an explicit node rather than the selection.
// The static site uses it to render every file up front.
func (s *State) ContentFor(n *tree.Node) Content {
	return Content{
		Name:     n.Name,
		Path:     n.Path,
		URL:      s.links.URL(n.Path),
		Text:     n.Content,
		Language: s.language,
	}
}
