package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/ziadkadry99/codeview/internal/explorer"
	"github.com/ziadkadry99/codeview/internal/tree"
)

// treeHTML renders the whole forest as nested lists for the sidebar. Every
// directory starts closed; script.js restores the stored ones on load.
// ids maps file paths to the id of their content template.
func treeHTML(s *explorer.State, ids map[string]int) string {
	var b strings.Builder
	renderChildren(&b, s, s.Forest(), 0, ids)
	return b.String()
}

func renderChildren(b *strings.Builder, s *explorer.State, nodes []*tree.Node, depth int, ids map[string]int) {
	if depth == 0 {
		b.WriteString(`<ul class="tree" role="tree">` + "\n")
	} else {
		b.WriteString(`<ul role="group">` + "\n")
	}
	for _, n := range nodes {
		name := html.EscapeString(n.Name)
		path := html.EscapeString(n.Path)
		pad := s.Padding(depth)
		if n.IsDir() {
			fmt.Fprintf(b, `<li class="dir" data-path="%s" role="treeitem" aria-expanded="false">`, path)
			fmt.Fprintf(b, `<div class="row" style="padding-left: %dpx"><span class="chevron">&#8250;</span><span class="icon icon-dir"></span><span class="name">%s</span></div>`+"\n", pad, name)
			renderChildren(b, s, n.Children, depth+1, ids)
			b.WriteString("</li>\n")
			continue
		}
		fmt.Fprintf(b, `<li class="file" data-path="%s" data-id="%d" role="treeitem">`, path, ids[n.Path])
		fmt.Fprintf(b, `<div class="row" style="padding-left: %dpx"><span class="chevron-spacer"></span><span class="icon icon-file"></span><span class="name">%s</span></div></li>`+"\n", pad, name)
	}
	b.WriteString("</ul>\n")
}

// fileIDs numbers the files in document order.
func fileIDs(f tree.Forest) map[string]int {
	ids := make(map[string]int)
	f.Walk(func(n *tree.Node, _ int) bool {
		if n.IsFile() {
			ids[n.Path] = len(ids)
		}
		return true
	})
	return ids
}
