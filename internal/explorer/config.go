package explorer

import (
	"go.uber.org/zap"

	"github.com/ziadkadry99/codeview/internal/config"
	"github.com/ziadkadry99/codeview/internal/walker"
)

// OptionsFromConfig derives State options from cfg. panel selects the pixel
// or terminal bounds.
func OptionsFromConfig(cfg *config.Config, panel config.PanelConfig, logger *zap.Logger) Options {
	return Options{
		Language: cfg.Language(walker.DetectLanguage),
		Panel:    NewPanel(panel.Min, panel.Max, panel.Default),
		Links: LinkBuilder{
			Marker:  cfg.Repository.Marker,
			RepoURL: cfg.Repository.URL,
			Branch:  cfg.Repository.Branch,
		},
		Logger: logger,
	}
}
