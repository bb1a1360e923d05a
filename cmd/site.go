package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/codeview/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Generate the static explorer website",
	Long: `Renders the tree document into a self-contained static explorer: a single
page with the folder tree, highlighted file contents and a resizable panel.
Expanded folders are remembered in the browser's local storage.`,
	RunE: runSite,
}

func init() {
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 0, "port for the local dev server (defaults to server.port)")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	siteCmd.Flags().String("output", "", "override output directory (defaults to site.output_dir)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Site.OutputDir
	}

	forest, err := loadForest(cfg, log)
	if err != nil {
		return err
	}

	count, err := site.NewGenerator(forest, cfg, log).Generate(outputDir)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Static site generated: %s (%d files)\n", outputDir, count)

	serve, _ := cmd.Flags().GetBool("serve")
	if !serve {
		return nil
	}
	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Server.Port
	}
	open, _ := cmd.Flags().GetBool("open")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := site.Serve(ctx, outputDir, port, open, log); err != nil {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}
