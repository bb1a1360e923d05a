package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/codeview/internal/explorer"
	"github.com/ziadkadry99/codeview/internal/server"
	"github.com/ziadkadry99/codeview/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the live explorer server",
	Long: `Starts an HTTP server that renders the explorer on every request. Folder
expansion is kept server-side in the configured expansion store, so it
survives restarts. Prometheus metrics are exposed at /metrics.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port)")
	serveCmd.Flags().Bool("dev", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
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
	state := explorer.New(forest, persist, explorer.OptionsFromConfig(cfg, cfg.Panel, log))

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Server.Port
	}
	dev, _ := cmd.Flags().GetBool("dev")

	srv := server.New(server.Config{
		Port:     port,
		AllowAll: dev || cfg.Server.AllowAll,
		Title:    cfg.Site.Title,
		Theme:    cfg.Site.Theme,
	}, state, nil, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	fmt.Fprintf(cmd.OutOrStdout(), "Explorer running at http://localhost:%d\n", port)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down explorer server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown failed", zap.Error(err))
			return err
		}
		return nil
	}
}
