package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ".go", cfg.Source.Extension)
	assert.Equal(t, "./design_patterns", cfg.Source.BasePath)
	assert.Equal(t, []string{"node_modules"}, cfg.Source.ExcludeDirs)
	assert.Equal(t, 180, cfg.Panel.Min)
	assert.Equal(t, 500, cfg.Panel.Max)
	assert.Equal(t, 260, cfg.Panel.Default)
	assert.Equal(t, "go-patterns-opened-folders", cfg.Storage.Key)
	assert.Equal(t, ThemeDark, cfg.Site.Theme)
}

func TestDefaultExcludeDirsNotShared(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source.ExcludeDirs[0] = "changed"
	assert.Equal(t, "node_modules", DefaultExcludeDirs[0])
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.codeview.yml")

	original := DefaultConfig()
	original.Source.Root = "examples"
	original.Source.Extension = ".py"
	original.Source.ExcludeDirs = []string{"node_modules", "venv"}
	original.Source.ExcludePatterns = []string{"**/testdata/**"}
	original.Site.Theme = ThemeLight
	original.Panel.Max = 640
	original.Storage.Driver = StorageFile
	original.Storage.Path = "state.json"

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.Source, loaded.Source)
	assert.Equal(t, original.Site, loaded.Site)
	assert.Equal(t, original.Panel, loaded.Panel)
	assert.Equal(t, original.Storage, loaded.Storage)
	assert.Equal(t, original.Repository, loaded.Repository)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	require.NoError(t, os.WriteFile(path, []byte("source:\n  extension: .rs\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ".rs", cfg.Source.Extension)
	assert.Equal(t, "design_patterns", cfg.Source.Root)
	assert.Equal(t, 260, cfg.Panel.Default)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Source, cfg.Source)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	require.NoError(t, DefaultConfig().Save(path))

	t.Setenv("CODEVIEW_SOURCE__ROOT", "other_patterns")
	t.Setenv("CODEVIEW_OUTPUT", "public/tree.json")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other_patterns", loaded.Source.Root)
	assert.Equal(t, "public/tree.json", loaded.Output)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CODEVIEW_OUTPUT", "output"},
		{"CODEVIEW_SOURCE__ROOT", "source.root"},
		{"CODEVIEW_SITE__OUTPUT_DIR", "site.output_dir"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, envKey(tt.in), tt.in)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty root", func(c *Config) { c.Source.Root = "" }, true},
		{"empty base path", func(c *Config) { c.Source.BasePath = "" }, true},
		{"extension without dot", func(c *Config) { c.Source.Extension = "go" }, true},
		{"bare dot extension", func(c *Config) { c.Source.Extension = "." }, true},
		{"empty output", func(c *Config) { c.Output = "" }, true},
		{"unknown theme", func(c *Config) { c.Site.Theme = "neon" }, true},
		{"panel max below min", func(c *Config) { c.Panel.Max = 100 }, true},
		{"panel default out of range", func(c *Config) { c.Panel.Default = 600 }, true},
		{"terminal min zero", func(c *Config) { c.Terminal.Min = 0 }, true},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "redis" }, true},
		{"file driver without path", func(c *Config) { c.Storage.Driver = StorageFile; c.Storage.Path = "" }, true},
		{"memory driver without path", func(c *Config) { c.Storage.Driver = StorageMemory; c.Storage.Path = "" }, false},
		{"empty storage key", func(c *Config) { c.Storage.Key = "" }, true},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLanguageFallback(t *testing.T) {
	cfg := DefaultConfig()
	detect := func(ext string) string { return "detected" + ext }

	assert.Equal(t, "go", cfg.Language(detect))

	cfg.Source.Language = ""
	assert.Equal(t, "detected.go", cfg.Language(detect))
}

func TestBasePathFor(t *testing.T) {
	tests := []struct {
		root string
		want string
	}{
		{"design_patterns", "./design_patterns"},
		{"./design_patterns/", "./design_patterns"},
		{"examples/go", "./examples/go"},
		{"/srv/design_patterns", "/srv/design_patterns"},
		{"/srv/../srv/patterns", "/srv/patterns"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BasePathFor(tt.root), tt.root)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"vendor", []string{"vendor"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitAndTrim(tt.input), tt.input)
	}
}
