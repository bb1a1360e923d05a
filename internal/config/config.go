package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CODEVIEW_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CODEVIEW_*). Nested keys use a double
// underscore: CODEVIEW_SOURCE__ROOT -> source.root.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validThemes = map[Theme]bool{
	ThemeDark:  true,
	ThemeLight: true,
}

var validDrivers = map[StorageDriver]bool{
	StorageSQLite: true,
	StorageFile:   true,
	StorageMemory: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Source.Root == "" {
		return fmt.Errorf("source.root is required")
	}
	if c.Source.BasePath == "" {
		return fmt.Errorf("source.base_path is required")
	}
	if !strings.HasPrefix(c.Source.Extension, ".") || len(c.Source.Extension) < 2 {
		return fmt.Errorf("invalid source.extension %q: must look like \".go\"", c.Source.Extension)
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}

	if c.Site.Theme != "" && !validThemes[c.Site.Theme] {
		return fmt.Errorf("invalid site.theme %q: must be one of dark, light", c.Site.Theme)
	}

	if err := c.Panel.validate("panel"); err != nil {
		return err
	}
	if err := c.Terminal.validate("terminal"); err != nil {
		return err
	}

	if !validDrivers[c.Storage.Driver] {
		return fmt.Errorf("invalid storage.driver %q: must be one of sqlite, file, memory", c.Storage.Driver)
	}
	if c.Storage.Driver != StorageMemory && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required for driver %s", c.Storage.Driver)
	}
	if c.Storage.Key == "" {
		return fmt.Errorf("storage.key is required")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	return nil
}

func (p PanelConfig) validate(name string) error {
	if p.Min <= 0 {
		return fmt.Errorf("%s.min must be positive", name)
	}
	if p.Max < p.Min {
		return fmt.Errorf("%s.max (%d) must not be below %s.min (%d)", name, p.Max, name, p.Min)
	}
	if p.Default < p.Min || p.Default > p.Max {
		return fmt.Errorf("%s.default (%d) must be within [%d, %d]", name, p.Default, p.Min, p.Max)
	}
	return nil
}

// Language returns the configured language tag, falling back to the given
// detector result when none is set.
func (c *Config) Language(detect func(ext string) string) string {
	if c.Source.Language != "" {
		return c.Source.Language
	}
	return detect(c.Source.Extension)
}
