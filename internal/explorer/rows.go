package explorer

import "github.com/ziadkadry99/codeview/internal/tree"

// Row is one visible line of the navigation tree.
type Row struct {
	Node    *tree.Node
	Depth   int
	Padding int
	Open    bool
	Active  bool
	// Rotation of the disclosure chevron in degrees: 0 closed, 90 open.
	Rotation int
}

// Rows renders the visible rows in document order. The children of a
// closed directory are not emitted.
func (s *State) Rows() []Row {
	var rows []Row
	s.forest.Walk(func(n *tree.Node, depth int) bool {
		r := Row{
			Node:    n,
			Depth:   depth,
			Padding: s.Padding(depth),
			Active:  s.IsActive(n.Path),
		}
		if n.IsDir() {
			r.Open = s.expanded[n.Path]
			if r.Open {
				r.Rotation = 90
			}
		}
		rows = append(rows, r)
		return r.Open
	})
	return rows
}

// Padding is the left indent of a row at depth.
func (s *State) Padding(depth int) int { return depth*s.unit + s.offset }
