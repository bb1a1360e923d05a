// Package explorer is the interactive state of a documentation tree: which
// file is selected, which directories are open and how wide the navigation
// panel is. The static site, the live server and the terminal browser all
// render from a State.
package explorer

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/ziadkadry99/codeview/internal/logging"
	"github.com/ziadkadry99/codeview/internal/tree"
)

var (
	ErrUnknownPath  = errors.New("explorer: unknown path")
	ErrNotDirectory = errors.New("explorer: not a directory")
	ErrNotFile      = errors.New("explorer: not a file")
)

// Persister keeps the open directories between sessions. Implementations
// must not fail: a broken store reads as empty.
type Persister interface {
	Load() map[string]bool
	SetOpen(path string, open bool)
	Clear()
}

// Options configures a State. Zero values fall back to defaults.
type Options struct {
	// Unit and Offset give a row's left padding: depth*Unit + Offset.
	Unit   int
	Offset int
	// Language tags file content for the highlighter.
	Language string
	Panel    *Panel
	Links    LinkBuilder
	Logger   *zap.Logger
}

const (
	DefaultUnit   = 12
	DefaultOffset = 16
)

// State is the explorer state machine. It is not safe for concurrent use.
type State struct {
	forest    tree.Forest
	index     map[string]*tree.Node
	store     Persister
	expanded  map[string]bool
	active    string
	listeners []func(*tree.Node)

	unit     int
	offset   int
	language string
	links    LinkBuilder
	log      *zap.Logger

	Panel *Panel
}

// New builds a State over forest and restores the open directories from
// store. Stored paths that are not directories of this forest are ignored.
func New(forest tree.Forest, store Persister, opts Options) *State {
	s := &State{
		forest:   forest,
		index:    forest.Index(),
		store:    store,
		expanded: make(map[string]bool),
		unit:     opts.Unit,
		offset:   opts.Offset,
		language: opts.Language,
		links:    opts.Links,
		log:      logging.OrNop(opts.Logger),
		Panel:    opts.Panel,
	}
	if s.unit == 0 {
		s.unit = DefaultUnit
	}
	if s.offset == 0 {
		s.offset = DefaultOffset
	}
	if s.Panel == nil {
		s.Panel = DefaultPanel()
	}

	if store != nil {
		for path, open := range store.Load() {
			if n, ok := s.index[path]; open && ok && n.IsDir() {
				s.expanded[path] = true
			}
		}
	}
	s.log.Debug("explorer state ready",
		zap.Int("nodes", len(s.index)),
		zap.Int("restored_open", len(s.expanded)))
	return s
}

// Forest returns the tree the state was built over.
func (s *State) Forest() tree.Forest { return s.forest }

// Language returns the highlighter tag of every file.
func (s *State) Language() string { return s.language }

// Lookup returns the node at path.
func (s *State) Lookup(path string) (*tree.Node, error) {
	n, ok := s.index[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return n, nil
}

// OnSelect registers fn to be called with the full node on every selection.
func (s *State) OnSelect(fn func(*tree.Node)) {
	s.listeners = append(s.listeners, fn)
}

// Toggle flips one directory between open and closed and writes the new
// state to the store. Other directories keep their own state.
func (s *State) Toggle(path string) (bool, error) {
	n, err := s.Lookup(path)
	if err != nil {
		return false, err
	}
	if !n.IsDir() {
		return false, fmt.Errorf("%w: %q", ErrNotDirectory, path)
	}

	open := !s.expanded[path]
	if open {
		s.expanded[path] = true
	} else {
		delete(s.expanded, path)
	}
	if s.store != nil {
		s.store.SetOpen(path, open)
	}
	s.log.Debug("toggled directory", zap.String("path", path), zap.Bool("open", open))
	return open, nil
}

// Select makes the file at path the active one.
func (s *State) Select(path string) (*tree.Node, error) {
	n, err := s.Lookup(path)
	if err != nil {
		return nil, err
	}
	if !n.IsFile() {
		return nil, fmt.Errorf("%w: %q", ErrNotFile, path)
	}
	s.active = path
	for _, fn := range s.listeners {
		fn(n)
	}
	s.log.Debug("selected file", zap.String("path", path))
	return n, nil
}

// Activate is a click on the row at path: files are selected, directories
// toggled.
func (s *State) Activate(path string) error {
	n, err := s.Lookup(path)
	if err != nil {
		return err
	}
	if n.IsDir() {
		_, err = s.Toggle(path)
	} else {
		_, err = s.Select(path)
	}
	return err
}

// CollapseAll closes every directory and forgets the stored state.
func (s *State) CollapseAll() {
	s.expanded = make(map[string]bool)
	if s.store != nil {
		s.store.Clear()
	}
}

func (s *State) IsOpen(path string) bool { return s.expanded[path] }

func (s *State) IsActive(path string) bool { return s.active != "" && path == s.active }

// ActivePath returns the selected file path, or "" when none.
func (s *State) ActivePath() string { return s.active }

// Active returns the selected node, or nil.
func (s *State) Active() *tree.Node {
	if s.active == "" {
		return nil
	}
	return s.index[s.active]
}

// Expanded returns the open directory paths in sorted order.
func (s *State) Expanded() []string {
	paths := make([]string, 0, len(s.expanded))
	for p := range s.expanded {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
