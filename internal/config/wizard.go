package config

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
)

// projectMarkers maps marker files to a language extension.
var projectMarkers = map[string]string{
	"go.mod":           ".go",
	"package.json":     ".js",
	"tsconfig.json":    ".ts",
	"requirements.txt": ".py",
	"pyproject.toml":   ".py",
	"Cargo.toml":       ".rs",
	"pom.xml":          ".java",
	"Gemfile":          ".rb",
}

// detectExtension checks the current directory for well-known project markers.
func detectExtension() string {
	for marker, ext := range projectMarkers {
		matches, _ := filepath.Glob(marker)
		if len(matches) > 0 {
			return ext
		}
	}
	return ".go"
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to codeview! Let's configure your explorer.")
	fmt.Println()

	cfg := DefaultConfig()

	rootPrompt := promptui.Prompt{
		Label:   "Source directory to browse",
		Default: cfg.Source.Root,
	}
	root, err := rootPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source root: %w", err)
	}
	cfg.Source.Root = root
	cfg.Source.BasePath = BasePathFor(root)

	extPrompt := promptui.Prompt{
		Label:   "File extension to include",
		Default: detectExtension(),
		Validate: func(s string) error {
			if !strings.HasPrefix(s, ".") || len(s) < 2 {
				return fmt.Errorf("extension must start with a dot")
			}
			return nil
		},
	}
	ext, err := extPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("extension: %w", err)
	}
	cfg.Source.Extension = ext
	cfg.Source.Language = ""

	repoPrompt := promptui.Prompt{
		Label:   "Repository URL for source links",
		Default: cfg.Repository.URL,
	}
	repo, err := repoPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("repository url: %w", err)
	}
	cfg.Repository.URL = strings.TrimSuffix(repo, "/")

	branchPrompt := promptui.Prompt{
		Label:   "Branch",
		Default: cfg.Repository.Branch,
	}
	branch, err := branchPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("branch: %w", err)
	}
	cfg.Repository.Branch = branch

	themePrompt := promptui.Select{
		Label: "Select theme",
		Items: []string{string(ThemeDark), string(ThemeLight)},
	}
	_, theme, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Site.Theme = Theme(theme)

	excludePrompt := promptui.Prompt{
		Label:   "Extra excluded directory names (comma-separated, blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude dirs: %w", err)
	}
	cfg.Source.ExcludeDirs = append(cfg.Source.ExcludeDirs, splitAndTrim(excludeStr)...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// BasePathFor returns the node path prefix for a source root: "./" plus the
// slash form of a relative root, or the slash form of an absolute one.
func BasePathFor(root string) string {
	p := filepath.ToSlash(filepath.Clean(root))
	if filepath.IsAbs(root) || path.IsAbs(p) {
		return p
	}
	return "./" + strings.TrimPrefix(p, "./")
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
