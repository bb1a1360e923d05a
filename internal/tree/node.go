// Package tree holds the documentation tree: its node type, the JSON
// document it is exchanged as, and the builder that produces it from a
// source directory.
package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind tags a Node as a directory or a file.
type Kind string

const (
	KindDirectory Kind = "directory"
	KindFile      Kind = "file"
)

// Node is one entry of the documentation tree. Directories carry Children,
// files carry Content. Path is the node's identity.
type Node struct {
	Name     string
	Kind     Kind
	Path     string
	Children []*Node
	Content  string
}

// NewDirectory returns a directory node. A nil children slice becomes empty.
func NewDirectory(name, path string, children []*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{Name: name, Kind: KindDirectory, Path: path, Children: children}
}

// NewFile returns a file node.
func NewFile(name, path, content string) *Node {
	return &Node{Name: name, Kind: KindFile, Path: path, Content: content}
}

// IsDir reports whether n is a directory.
func (n *Node) IsDir() bool { return n.Kind == KindDirectory }

// IsFile reports whether n is a file.
func (n *Node) IsFile() bool { return n.Kind == KindFile }

type directoryJSON struct {
	Name     string  `json:"name"`
	Type     Kind    `json:"type"`
	Path     string  `json:"path"`
	Children []*Node `json:"children"`
}

type fileJSON struct {
	Name    string `json:"name"`
	Type    Kind   `json:"type"`
	Path    string `json:"path"`
	Content string `json:"content"`
}

// MarshalJSON writes the variant's fields only; an empty directory
// serializes "children": [].
func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case KindDirectory:
		children := n.Children
		if children == nil {
			children = []*Node{}
		}
		return marshalRaw(directoryJSON{Name: n.Name, Type: n.Kind, Path: n.Path, Children: children})
	case KindFile:
		return marshalRaw(fileJSON{Name: n.Name, Type: n.Kind, Path: n.Path, Content: n.Content})
	default:
		return nil, fmt.Errorf("tree: node %q has unknown type %q", n.Path, n.Kind)
	}
}

// marshalRaw is json.Marshal without HTML escaping, so source text such as
// "a && <-ch" is written as is.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON accepts either variant and rejects unknown types.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name     string  `json:"name"`
		Type     Kind    `json:"type"`
		Path     string  `json:"path"`
		Children []*Node `json:"children"`
		Content  string  `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Path == "" {
		return fmt.Errorf("tree: node %q has no path", raw.Name)
	}

	switch raw.Type {
	case KindDirectory:
		*n = *NewDirectory(raw.Name, raw.Path, raw.Children)
	case KindFile:
		*n = *NewFile(raw.Name, raw.Path, raw.Content)
	default:
		return fmt.Errorf("tree: node %q has unknown type %q", raw.Path, raw.Type)
	}
	return nil
}

// Forest is the ordered list of top-level nodes; it is the document root.
type Forest []*Node

// Walk visits every node depth-first in document order. Returning false
// from fn skips that node's children.
func (f Forest) Walk(fn func(n *Node, depth int) bool) {
	var walk func(nodes []*Node, depth int)
	walk = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			if fn(n, depth) && n.IsDir() {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(f, 0)
}

// Index maps every path to its node.
func (f Forest) Index() map[string]*Node {
	idx := make(map[string]*Node)
	f.Walk(func(n *Node, _ int) bool {
		idx[n.Path] = n
		return true
	})
	return idx
}

// Count returns the number of directories and files.
func (f Forest) Count() (dirs, files int) {
	f.Walk(func(n *Node, _ int) bool {
		if n.IsDir() {
			dirs++
		} else {
			files++
		}
		return true
	})
	return dirs, files
}

// Validate checks that paths are unique across the forest.
func (f Forest) Validate() error {
	seen := make(map[string]bool)
	var err error
	f.Walk(func(n *Node, _ int) bool {
		if err != nil {
			return false
		}
		if seen[n.Path] {
			err = fmt.Errorf("tree: duplicate path %q", n.Path)
			return false
		}
		seen[n.Path] = true
		return true
	})
	return err
}
