package tree

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/ziadkadry99/codeview/internal/logging"
	"github.com/ziadkadry99/codeview/internal/progress"
	"github.com/ziadkadry99/codeview/internal/walker"
)

// Builder walks a source tree and produces the documentation forest.
type Builder struct {
	// BasePath prefixes every node path, e.g. "./design_patterns". It is
	// joined with "/" and never normalized, so a leading "./" is kept.
	BasePath string
	Filter   walker.Filter
	Logger   *zap.Logger
	Reporter progress.Reporter
}

// NewBuilder returns a Builder with a no-op logger and reporter.
func NewBuilder(basePath string, filter walker.Filter) *Builder {
	return &Builder{
		BasePath: basePath,
		Filter:   filter,
		Logger:   zap.NewNop(),
		Reporter: progress.Nop{},
	}
}

// Build walks fsys from its root. A missing root yields an empty forest and
// a logged warning. A directory that cannot be listed becomes an empty
// subtree and is logged. A file that cannot be read aborts the build.
func (b *Builder) Build(fsys fs.FS) (Forest, error) {
	log := logging.OrNop(b.Logger)
	rep := b.Reporter
	if rep == nil {
		rep = progress.Nop{}
	}

	if _, err := fs.Stat(fsys, "."); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn("source directory not found, writing empty tree", zap.Error(err))
			return Forest{}, nil
		}
		log.Error("cannot access source directory", zap.Error(err))
		return Forest{}, nil
	}

	rep.Start("Scanning " + b.BasePath)
	defer rep.Finish()

	nodes, err := b.readDir(fsys, ".", "", log, rep)
	if err != nil {
		return nil, err
	}
	return Forest(nodes), nil
}

// readDir builds the children of dir. rel is dir's path below the root
// using forward slashes ("" for the root itself).
func (b *Builder) readDir(fsys fs.FS, dir, rel string, log *zap.Logger, rep progress.Reporter) ([]*Node, error) {
	listing, err := walker.ListDir(fsys, dir, b.Filter)
	if err != nil {
		log.Error("error reading directory", zap.String("dir", dir), zap.Error(err))
		return []*Node{}, nil
	}

	nodes := make([]*Node, 0, listing.Len())
	for _, d := range listing.Dirs {
		childRel := joinRel(rel, d.Name())
		children, err := b.readDir(fsys, path.Join(dir, d.Name()), childRel, log, rep)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, NewDirectory(d.Name(), b.nodePath(childRel), children))
	}

	for _, f := range listing.Files {
		childRel := joinRel(rel, f.Name())
		data, err := fs.ReadFile(fsys, path.Join(dir, f.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", childRel, err)
		}
		rep.Step(childRel)
		nodes = append(nodes, NewFile(f.Name(), b.nodePath(childRel), string(data)))
	}

	return nodes, nil
}

// nodePath joins the base prefix and a relative path.
func (b *Builder) nodePath(rel string) string {
	if b.BasePath == "" {
		return rel
	}
	return strings.TrimSuffix(b.BasePath, "/") + "/" + rel
}

func joinRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}
