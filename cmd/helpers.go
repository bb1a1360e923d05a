package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/ziadkadry99/codeview/internal/config"
	"github.com/ziadkadry99/codeview/internal/logging"
	"github.com/ziadkadry99/codeview/internal/progress"
	"github.com/ziadkadry99/codeview/internal/tree"
	"github.com/ziadkadry99/codeview/internal/walker"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	return loadConfigWith(nil)
}

// loadConfigWith applies override to the loaded config before validating,
// so command flags can replace values the file gets wrong.
func loadConfigWith(override func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `codeview init` to create a config file", err)
	}
	if override != nil {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w\nRun `codeview init` to create a config file", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the command logger. --verbose forces debug output.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lc := logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}
	if verbose {
		lc.Level = "debug"
	}
	return logging.New(lc)
}

// buildForest walks the configured source root.
func buildForest(cfg *config.Config, log *zap.Logger, rep progress.Reporter) (tree.Forest, error) {
	b := tree.NewBuilder(cfg.Source.BasePath, walker.Filter{
		Extension:       cfg.Source.Extension,
		ExcludeDirs:     cfg.Source.ExcludeDirs,
		ExcludePatterns: cfg.Source.ExcludePatterns,
	})
	b.Logger = log
	if rep != nil {
		b.Reporter = rep
	}
	return b.Build(os.DirFS(cfg.Source.Root))
}

// loadForest reads the tree document at cfg.Output, building it from the
// source root when the document does not exist yet.
func loadForest(cfg *config.Config, log *zap.Logger) (tree.Forest, error) {
	forest, err := tree.Load(cfg.Output)
	if err == nil {
		return forest, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading tree %s: %w", cfg.Output, err)
	}

	log.Info("tree document not found, building from source", zap.String("root", cfg.Source.Root))
	forest, err = buildForest(cfg, log, nil)
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	return forest, nil
}
