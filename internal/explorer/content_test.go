package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentPlaceholder(t *testing.T) {
	s, _ := newState(t)
	c := s.Content()
	assert.True(t, c.Empty)
	assert.Equal(t, "go", c.Language)
}

func TestContentForSelection(t *testing.T) {
	s := New(fixture(), nil, Options{
		Language: "go",
		Links: LinkBuilder{
			Marker:  "./",
			RepoURL: "https://github.com/chinmay-sawant/go-design-patterns",
			Branch:  "master",
		},
	})
	_, err := s.Select("./design_patterns/structural/adapter.go")
	require.NoError(t, err)

	c := s.Content()
	assert.False(t, c.Empty)
	assert.Equal(t, "adapter.go", c.Name)
	assert.Equal(t, "./design_patterns/structural/adapter.go", c.Path)
	assert.Equal(t, "package structural\n", c.Text)
	assert.Equal(t, "go", c.Language)
	assert.Equal(t,
		"https://github.com/chinmay-sawant/go-design-patterns/blob/master/design_patterns/structural/adapter.go",
		c.URL)
}

func TestLinkBuilder(t *testing.T) {
	tests := []struct {
		name string
		lb   LinkBuilder
		path string
		want string
	}{
		{
			"strips leading marker",
			LinkBuilder{Marker: "./", RepoURL: "https://example.com/r", Branch: "main"},
			"./a/b.go",
			"https://example.com/r/blob/main/a/b.go",
		},
		{
			"marker only stripped at the front",
			LinkBuilder{Marker: "./", RepoURL: "https://example.com/r", Branch: "main"},
			"a/./b.go",
			"https://example.com/r/blob/main/a/./b.go",
		},
		{
			"trailing slash on repo",
			LinkBuilder{Marker: "./", RepoURL: "https://example.com/r/", Branch: "dev"},
			"./x.go",
			"https://example.com/r/blob/dev/x.go",
		},
		{
			"no marker",
			LinkBuilder{RepoURL: "https://example.com/r", Branch: "main"},
			"./x.go",
			"https://example.com/r/blob/main/./x.go",
		},
		{
			"no repository",
			LinkBuilder{Marker: "./"},
			"./x.go",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lb.URL(tt.path))
		})
	}
}
