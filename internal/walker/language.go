package walker

import (
	"path/filepath"
	"strings"
)

// extensionToLanguage maps file extensions to highlighter language tags.
var extensionToLanguage = map[string]string{
	".go":    "go",
	".py":    "python",
	".ts":    "typescript",
	".tsx":   "tsx",
	".js":    "javascript",
	".jsx":   "jsx",
	".java":  "java",
	".rs":    "rust",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cc":    "cpp",
	".cs":    "csharp",
	".rb":    "ruby",
	".php":   "php",
	".swift": "swift",
	".kt":    "kotlin",
	".scala": "scala",
	".sh":    "bash",
	".sql":   "sql",
	".lua":   "lua",
	".dart":  "dart",
	".ex":    "elixir",
	".hs":    "haskell",
	".proto": "protobuf",
	".yaml":  "yaml",
	".yml":   "yaml",
	".json":  "json",
	".toml":  "toml",
	".md":    "markdown",
}

// DetectLanguage returns the language tag for an extension (".go") or a
// file name ("main.go"). Returns "text" for unrecognized input.
func DetectLanguage(nameOrExt string) string {
	ext := nameOrExt
	if !strings.HasPrefix(ext, ".") || strings.Count(ext, ".") > 1 {
		ext = filepath.Ext(nameOrExt)
	}
	if lang, ok := extensionToLanguage[strings.ToLower(ext)]; ok {
		return lang
	}
	return "text"
}
