package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/codeview/internal/explorer"
	"github.com/ziadkadry99/codeview/internal/highlight"
	"github.com/ziadkadry99/codeview/internal/logging"
	"github.com/ziadkadry99/codeview/internal/store"
	"github.com/ziadkadry99/codeview/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the tree in the terminal",
	Long: `Opens the explorer in the terminal. Use the arrow keys or the mouse to move
through the tree, enter to open folders and files, and drag the divider or
press < and > to resize the navigation panel.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().String("log-file", "", "write JSON logs to this file")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// The UI owns the terminal, so logs go to a file or nowhere.
	log := logging.OrNop(nil)
	if path, _ := cmd.Flags().GetString("log-file"); path != "" {
		lc := logging.Config{Level: cfg.Log.Level, Format: "json", OutputPath: path}
		if verbose {
			lc.Level = "debug"
		}
		if log, err = logging.New(lc); err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
	}
	defer log.Sync()

	forest, err := loadForest(cfg, log)
	if err != nil {
		return err
	}

	kv, err := store.Open(cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening expansion store: %w", err)
	}
	defer kv.Close()

	persist := store.NewExpansion(kv, cfg.Storage.Key, log)
	state := explorer.New(forest, persist, tui.StateOptions(cfg, log))
	h := highlight.NewTerminal(highlight.StyleFor(cfg.Site.Theme))

	return tui.Run(tui.New(state, h, cfg.Site.Title))
}
