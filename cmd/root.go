package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/codeview/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "codeview",
	Short: "Browse a source tree as a documentation explorer",
	Long: `codeview walks a directory of example source files, writes the result as a
JSON tree and renders it as an explorer with a collapsible folder tree,
syntax-highlighted file contents and a resizable navigation panel. The
explorer is available as a static site, a live server or a terminal UI.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFileName, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
