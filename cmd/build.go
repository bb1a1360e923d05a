package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/codeview/internal/config"
	"github.com/ziadkadry99/codeview/internal/progress"
	"github.com/ziadkadry99/codeview/internal/tree"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Walk the source directory and write the tree document",
	Long: `Walks the configured source directory, keeps directories and files with the
configured extension, and writes the nested tree as JSON to the output path.
A missing source directory produces an empty tree.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("root", "", "source directory to walk (overrides config)")
	buildCmd.Flags().String("output", "", "tree document path (overrides config)")
	buildCmd.Flags().String("base-path", "", "prefix of every node path (overrides config)")
	buildCmd.Flags().String("extension", "", "file extension to include (overrides config)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := loadConfigWith(func(cfg *config.Config) {
		if v, _ := cmd.Flags().GetString("root"); v != "" {
			cfg.Source.Root = v
		}
		if v, _ := cmd.Flags().GetString("output"); v != "" {
			cfg.Output = v
		}
		if v, _ := cmd.Flags().GetString("base-path"); v != "" {
			cfg.Source.BasePath = v
		}
		if v, _ := cmd.Flags().GetString("extension"); v != "" {
			cfg.Source.Extension = v
		}
	})
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	forest, err := buildForest(cfg, log, progress.NewReporter())
	if err != nil {
		return fmt.Errorf("building tree: %w", err)
	}
	if err := tree.WriteFile(cfg.Output, forest); err != nil {
		return err
	}

	dirs, files := forest.Count()
	log.Debug("tree written",
		zap.String("output", cfg.Output),
		zap.Int("directories", dirs),
		zap.Int("files", files),
		zap.Duration("elapsed", time.Since(start)),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d directories, %d files) in %s\n",
		cfg.Output, dirs, files, time.Since(start).Round(time.Millisecond))
	return nil
}
