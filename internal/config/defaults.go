package config

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".codeview.yml"

// DefaultExcludeDirs are directory names never materialized as nodes.
var DefaultExcludeDirs = []string{
	"node_modules",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Root:        "design_patterns",
			BasePath:    "./design_patterns",
			Extension:   ".go",
			Language:    "go",
			ExcludeDirs: append([]string(nil), DefaultExcludeDirs...),
		},
		Output: "site/data.json",
		Site: SiteConfig{
			OutputDir: "site",
			Title:     "Go Design Patterns",
			Theme:     ThemeDark,
		},
		Repository: RepositoryConfig{
			URL:    "https://github.com/chinmay-sawant/go-design-patterns",
			Branch: "master",
			Marker: "./",
		},
		Panel: PanelConfig{
			Min:     180,
			Max:     500,
			Default: 260,
		},
		Terminal: PanelConfig{
			Min:     16,
			Max:     60,
			Default: 32,
		},
		Storage: StorageConfig{
			Driver: StorageSQLite,
			Path:   ".codeview/state.db",
			Key:    "go-patterns-opened-folders",
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
