package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/codeview/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize codeview configuration with an interactive wizard",
	Long: `Runs an interactive wizard that asks for the source directory, extension,
repository link and theme of the explorer, and writes them to .codeview.yml.
An existing file is kept unless --force is given.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(cfgFile); err == nil && !force {
		return fmt.Errorf("%s already exists; use --force to overwrite it", cfgFile)
	}
	_, err := config.RunWizard(cfgFile)
	return err
}
