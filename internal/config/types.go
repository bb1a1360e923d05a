package config

// Theme selects the colour palette and highlighting style of the explorer.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// StorageDriver identifies the backend of the expansion store.
type StorageDriver string

const (
	StorageSQLite StorageDriver = "sqlite"
	StorageFile   StorageDriver = "file"
	StorageMemory StorageDriver = "memory"
)

// Config is the top-level codeview configuration, corresponding to .codeview.yml.
type Config struct {
	Source     SourceConfig     `yaml:"source" koanf:"source"`
	Output     string           `yaml:"output" koanf:"output"`
	Site       SiteConfig       `yaml:"site" koanf:"site"`
	Repository RepositoryConfig `yaml:"repository" koanf:"repository"`
	Panel      PanelConfig      `yaml:"panel" koanf:"panel"`
	Terminal   PanelConfig      `yaml:"terminal" koanf:"terminal"`
	Storage    StorageConfig    `yaml:"storage" koanf:"storage"`
	Server     ServerConfig     `yaml:"server" koanf:"server"`
	Log        LogConfig        `yaml:"log" koanf:"log"`
}

// SourceConfig describes the directory the tree builder walks.
type SourceConfig struct {
	Root            string   `yaml:"root" koanf:"root"`
	BasePath        string   `yaml:"base_path" koanf:"base_path"`
	Extension       string   `yaml:"extension" koanf:"extension"`
	Language        string   `yaml:"language" koanf:"language"`
	ExcludeDirs     []string `yaml:"exclude_dirs" koanf:"exclude_dirs"`
	ExcludePatterns []string `yaml:"exclude_patterns" koanf:"exclude_patterns"`
}

// SiteConfig controls the rendered explorer.
type SiteConfig struct {
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
	Title     string `yaml:"title" koanf:"title"`
	Theme     Theme  `yaml:"theme" koanf:"theme"`
}

// RepositoryConfig is used to build outbound source links.
type RepositoryConfig struct {
	URL    string `yaml:"url" koanf:"url"`
	Branch string `yaml:"branch" koanf:"branch"`
	Marker string `yaml:"marker" koanf:"marker"`
}

// PanelConfig bounds the resizable navigation panel.
type PanelConfig struct {
	Min     int `yaml:"min" koanf:"min"`
	Max     int `yaml:"max" koanf:"max"`
	Default int `yaml:"default" koanf:"default"`
}

// StorageConfig holds expansion store settings.
type StorageConfig struct {
	Driver StorageDriver `yaml:"driver" koanf:"driver"`
	Path   string        `yaml:"path" koanf:"path"`
	Key    string        `yaml:"key" koanf:"key"`
}

// ServerConfig holds settings for the live explorer server.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
