package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/codeview/internal/config"
	"github.com/ziadkadry99/codeview/internal/store"
	"github.com/ziadkadry99/codeview/internal/tree"
)

const storageKey = "go-patterns-opened-folders"

// fixture:
//
//	creational/
//	  builder/
//	    main.go
//	  singleton.go
//	structural/
//	  adapter.go
//	README.go
func fixture() tree.Forest {
	base := "./design_patterns"
	return tree.Forest{
		tree.NewDirectory("creational", base+"/creational", []*tree.Node{
			tree.NewDirectory("builder", base+"/creational/builder", []*tree.Node{
				tree.NewFile("main.go", base+"/creational/builder/main.go", "package main\n"),
			}),
			tree.NewFile("singleton.go", base+"/creational/singleton.go", "package creational\n"),
		}),
		tree.NewDirectory("structural", base+"/structural", []*tree.Node{
			tree.NewFile("adapter.go", base+"/structural/adapter.go", "package structural\n"),
		}),
		tree.NewFile("README.go", base+"/README.go", "// Package patterns\n"),
	}
}

func newState(t *testing.T) (*State, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	s := New(fixture(), store.NewExpansion(kv, storageKey, nil), Options{Language: "go"})
	return s, kv
}

func rowPaths(rows []Row) []string {
	paths := make([]string, len(rows))
	for i, r := range rows {
		paths[i] = r.Node.Path
	}
	return paths
}

func TestInitiallyClosed(t *testing.T) {
	s, _ := newState(t)
	assert.Equal(t, []string{
		"./design_patterns/creational",
		"./design_patterns/structural",
		"./design_patterns/README.go",
	}, rowPaths(s.Rows()))
	assert.Empty(t, s.Expanded())
	assert.Equal(t, "", s.ActivePath())
}

func TestToggleOpensOnlyThatDirectory(t *testing.T) {
	s, _ := newState(t)

	open, err := s.Toggle("./design_patterns/creational")
	require.NoError(t, err)
	assert.True(t, open)

	assert.Equal(t, []string{
		"./design_patterns/creational",
		"./design_patterns/creational/builder",
		"./design_patterns/creational/singleton.go",
		"./design_patterns/structural",
		"./design_patterns/README.go",
	}, rowPaths(s.Rows()))
	assert.False(t, s.IsOpen("./design_patterns/structural"))
	assert.False(t, s.IsOpen("./design_patterns/creational/builder"))
}

func TestDoubleToggleIsIdempotent(t *testing.T) {
	tests := []struct {
		name      string
		startOpen bool
	}{
		{"from closed", false},
		{"from open", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := store.NewMemory()
			exp := store.NewExpansion(kv, storageKey, nil)
			if tt.startOpen {
				exp.SetOpen("./design_patterns/structural", true)
			}
			s := New(fixture(), exp, Options{})

			beforeRows := rowPaths(s.Rows())
			beforeStore := exp.Load()

			path := "./design_patterns/structural"
			_, err := s.Toggle(path)
			require.NoError(t, err)
			_, err = s.Toggle(path)
			require.NoError(t, err)

			assert.Equal(t, tt.startOpen, s.IsOpen(path))
			assert.Equal(t, beforeRows, rowPaths(s.Rows()))
			assert.Equal(t, beforeStore, exp.Load())
		})
	}
}

func TestToggleWritesThrough(t *testing.T) {
	s, kv := newState(t)
	_, err := s.Toggle("./design_patterns/creational")
	require.NoError(t, err)

	raw, ok, err := kv.Get(storageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"./design_patterns/creational":true}`, raw)

	_, err = s.Toggle("./design_patterns/creational")
	require.NoError(t, err)
	raw, _, _ = kv.Get(storageKey)
	assert.JSONEq(t, `{}`, raw)
}

func TestClosingParentKeepsChildState(t *testing.T) {
	s, _ := newState(t)
	_, _ = s.Toggle("./design_patterns/creational")
	_, _ = s.Toggle("./design_patterns/creational/builder")
	_, _ = s.Toggle("./design_patterns/creational")

	assert.NotContains(t, rowPaths(s.Rows()), "./design_patterns/creational/builder/main.go")
	assert.True(t, s.IsOpen("./design_patterns/creational/builder"))

	_, _ = s.Toggle("./design_patterns/creational")
	assert.Contains(t, rowPaths(s.Rows()), "./design_patterns/creational/builder/main.go")
}

func TestRestoreFromStore(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(storageKey, `{
		"./design_patterns/structural": true,
		"./design_patterns/creational": false,
		"./design_patterns/README.go": true,
		"./design_patterns/gone": true
	}`))

	s := New(fixture(), store.NewExpansion(kv, storageKey, nil), Options{})
	assert.Equal(t, []string{"./design_patterns/structural"}, s.Expanded())
}

func TestCorruptStoreStartsClosed(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(storageKey, "{{{"))
	s := New(fixture(), store.NewExpansion(kv, storageKey, nil), Options{})
	assert.Empty(t, s.Expanded())

	// Still usable afterwards.
	_, err := s.Toggle("./design_patterns/creational")
	require.NoError(t, err)
	assert.True(t, s.IsOpen("./design_patterns/creational"))
}

func TestNilPersister(t *testing.T) {
	s := New(fixture(), nil, Options{})
	_, err := s.Toggle("./design_patterns/creational")
	require.NoError(t, err)
	s.CollapseAll()
	assert.Empty(t, s.Expanded())
}

func TestSelectAThenB(t *testing.T) {
	s, _ := newState(t)
	a := "./design_patterns/README.go"
	b := "./design_patterns/structural/adapter.go"

	_, err := s.Select(a)
	require.NoError(t, err)
	_, err = s.Toggle("./design_patterns/structural")
	require.NoError(t, err)
	_, err = s.Select(b)
	require.NoError(t, err)

	assert.Equal(t, b, s.ActivePath())
	assert.False(t, s.IsActive(a))

	var active []string
	for _, r := range s.Rows() {
		if r.Active {
			active = append(active, r.Node.Path)
		}
	}
	assert.Equal(t, []string{b}, active)
}

func TestSelectNotifiesWithNode(t *testing.T) {
	s, _ := newState(t)
	var got []*tree.Node
	s.OnSelect(func(n *tree.Node) { got = append(got, n) })

	_, err := s.Select("./design_patterns/README.go")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "README.go", got[0].Name)
	assert.Equal(t, "// Package patterns\n", got[0].Content)
}

func TestWrongKindAndUnknownPath(t *testing.T) {
	s, _ := newState(t)

	_, err := s.Toggle("./design_patterns/README.go")
	assert.ErrorIs(t, err, ErrNotDirectory)

	_, err = s.Select("./design_patterns/creational")
	assert.ErrorIs(t, err, ErrNotFile)

	_, err = s.Toggle("./nope")
	assert.ErrorIs(t, err, ErrUnknownPath)
	_, err = s.Select("./nope")
	assert.ErrorIs(t, err, ErrUnknownPath)
	assert.ErrorIs(t, s.Activate("./nope"), ErrUnknownPath)

	assert.Empty(t, s.Expanded())
	assert.Equal(t, "", s.ActivePath())
}

func TestActivate(t *testing.T) {
	s, _ := newState(t)
	require.NoError(t, s.Activate("./design_patterns/creational"))
	assert.True(t, s.IsOpen("./design_patterns/creational"))

	require.NoError(t, s.Activate("./design_patterns/creational/singleton.go"))
	assert.Equal(t, "./design_patterns/creational/singleton.go", s.ActivePath())
	assert.True(t, s.IsOpen("./design_patterns/creational"))
}

func TestRowsPaddingAndRotation(t *testing.T) {
	s, _ := newState(t)
	_, _ = s.Toggle("./design_patterns/creational")
	_, _ = s.Toggle("./design_patterns/creational/builder")

	byPath := map[string]Row{}
	for _, r := range s.Rows() {
		byPath[r.Node.Path] = r
	}

	top := byPath["./design_patterns/creational"]
	assert.Equal(t, 0, top.Depth)
	assert.Equal(t, 16, top.Padding)
	assert.Equal(t, 90, top.Rotation)

	leaf := byPath["./design_patterns/creational/builder/main.go"]
	assert.Equal(t, 2, leaf.Depth)
	assert.Equal(t, 2*12+16, leaf.Padding)
	assert.Equal(t, 0, leaf.Rotation)

	closed := byPath["./design_patterns/structural"]
	assert.False(t, closed.Open)
	assert.Equal(t, 0, closed.Rotation)
}

func TestCustomPadding(t *testing.T) {
	s := New(fixture(), nil, Options{Unit: 2, Offset: 1})
	_, _ = s.Toggle("./design_patterns/structural")
	for _, r := range s.Rows() {
		assert.Equal(t, r.Depth*2+1, r.Padding, r.Node.Path)
	}
}

func TestCollapseAll(t *testing.T) {
	s, kv := newState(t)
	_, _ = s.Toggle("./design_patterns/creational")
	_, _ = s.Toggle("./design_patterns/structural")

	s.CollapseAll()
	assert.Empty(t, s.Expanded())
	assert.Len(t, s.Rows(), 3)
	_, ok, err := kv.Get(storageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	opts := OptionsFromConfig(cfg, cfg.Terminal, nil)
	assert.Equal(t, "go", opts.Language)
	assert.Equal(t, 32, opts.Panel.Width())
	assert.Equal(t, 60, opts.Panel.Max)
	assert.Equal(t, "https://github.com/chinmay-sawant/go-design-patterns/blob/master/design_patterns/a.go",
		opts.Links.URL("./design_patterns/a.go"))

	cfg.Source.Language = ""
	cfg.Source.Extension = ".py"
	assert.Equal(t, "python", OptionsFromConfig(cfg, cfg.Panel, nil).Language)
}
