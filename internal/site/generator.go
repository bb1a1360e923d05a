package site

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ziadkadry99/codeview/internal/config"
	"github.com/ziadkadry99/codeview/internal/explorer"
	"github.com/ziadkadry99/codeview/internal/highlight"
	"github.com/ziadkadry99/codeview/internal/logging"
	"github.com/ziadkadry99/codeview/internal/tree"
)

// DataFile is the name of the tree document written next to the page.
const DataFile = "data.json"

// Generator renders a documentation tree into a self-contained static
// explorer: one page, its stylesheet and script, and the tree document.
type Generator struct {
	Forest      tree.Forest
	Config      *config.Config
	Highlighter highlight.Highlighter
	Logger      *zap.Logger
}

// NewGenerator returns a Generator highlighting with the theme's HTML style.
func NewGenerator(forest tree.Forest, cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		Forest:      forest,
		Config:      cfg,
		Highlighter: highlight.NewHTML(highlight.StyleFor(cfg.Site.Theme)),
		Logger:      logger,
	}
}

// pageData holds the data passed to the page template.
type pageData struct {
	Title       string
	Theme       config.Theme
	Placeholder string
	TreeHTML    template.HTML
	Files       []fileView
	StorageKey  string
	Panel       config.PanelConfig
}

type fileView struct {
	ID   int
	Name string
	Path string
	URL  string
	Body template.HTML
}

// Generate writes the site into outDir and returns the number of files
// rendered.
func (g *Generator) Generate(outDir string) (int, error) {
	log := logging.OrNop(g.Logger)
	cfg := g.Config

	state := explorer.New(g.Forest, nil, explorer.OptionsFromConfig(cfg, cfg.Panel, log))
	ids := fileIDs(g.Forest)

	files := make([]fileView, 0, len(ids))
	var renderErr error
	g.Forest.Walk(func(n *tree.Node, _ int) bool {
		if renderErr != nil {
			return false
		}
		if !n.IsFile() {
			return true
		}
		c := state.ContentFor(n)
		body, err := g.Highlighter.Highlight(c.Text, c.Language)
		if err != nil {
			renderErr = fmt.Errorf("rendering %s: %w", n.Path, err)
			return false
		}
		files = append(files, fileView{
			ID:   ids[n.Path],
			Name: c.Name,
			Path: c.Path,
			URL:  c.URL,
			Body: template.HTML(body),
		})
		return true
	})
	if renderErr != nil {
		return 0, renderErr
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}
	data := pageData{
		Title:       cfg.Site.Title,
		Theme:       cfg.Site.Theme,
		Placeholder: explorer.Placeholder,
		TreeHTML:    template.HTML(treeHTML(state, ids)),
		Files:       files,
		StorageKey:  cfg.Storage.Key,
		Panel:       cfg.Panel,
	}
	if err := writeTemplate(filepath.Join(outDir, "index.html"), tmpl, data); err != nil {
		return 0, fmt.Errorf("writing index.html: %w", err)
	}

	if err := os.WriteFile(filepath.Join(outDir, "style.css"), []byte(Stylesheet(cfg.Site.Theme)), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(outDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}
	if err := tree.WriteFile(filepath.Join(outDir, DataFile), g.Forest); err != nil {
		return 0, err
	}

	dirs, _ := g.Forest.Count()
	log.Info("site generated",
		zap.String("dir", outDir),
		zap.Int("files", len(files)),
		zap.Int("directories", dirs))
	return len(files), nil
}

func writeTemplate(path string, tmpl *template.Template, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Stylesheet returns the explorer CSS for theme.
func Stylesheet(theme config.Theme) string {
	palette := darkPalette
	if theme == config.ThemeLight {
		palette = lightPalette
	}
	return strings.TrimSpace(palette) + "\n\n" + cssContent
}
