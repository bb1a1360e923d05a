package walker

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Listing is one directory level after filtering, partitioned and sorted.
type Listing struct {
	Dirs  []fs.DirEntry
	Files []fs.DirEntry
}

// Len returns the number of surviving entries.
func (l Listing) Len() int { return len(l.Dirs) + len(l.Files) }

// ListDir reads a single directory of fsys and returns its qualifying
// entries: hidden names, excluded directories and pattern matches are
// dropped; files must carry the filter's extension; anything that is
// neither a directory nor a regular file is ignored. Directories and files
// are each sorted with a Collator.
func ListDir(fsys fs.FS, dir string, f Filter) (Listing, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return Listing{}, fmt.Errorf("walker: read %s: %w", dir, err)
	}

	var l Listing
	for _, e := range entries {
		name := e.Name()
		if IsHidden(name) {
			continue
		}
		if MatchesExclude(path.Join(dir, name), f.ExcludePatterns) {
			continue
		}

		switch {
		case e.IsDir():
			if f.excludesDir(name) {
				continue
			}
			l.Dirs = append(l.Dirs, e)
		case e.Type().IsRegular():
			if !f.MatchesExtension(name) {
				continue
			}
			l.Files = append(l.Files, e)
		}
	}

	c := NewCollator()
	c.SortEntries(l.Dirs)
	c.SortEntries(l.Files)
	return l, nil
}

// Collator orders names the way a locale-aware string comparison does,
// breaking collation ties by byte order so the result is total.
// A Collator is not safe for concurrent use.
type Collator struct {
	c *collate.Collator
}

// NewCollator returns a Collator for the root locale.
func NewCollator() *Collator {
	return &Collator{c: collate.New(language.Und)}
}

// Compare returns -1, 0 or 1.
func (c *Collator) Compare(a, b string) int {
	if r := c.c.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// SortEntries sorts entries in place by name.
func (c *Collator) SortEntries(entries []fs.DirEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return c.Compare(entries[i].Name(), entries[j].Name()) < 0
	})
}

// SortStrings sorts names in place.
func (c *Collator) SortStrings(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return c.Compare(names[i], names[j]) < 0
	})
}
