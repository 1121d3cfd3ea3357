package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/markermap/markermap/internal/httpserver"
	"github.com/markermap/markermap/internal/httpserver/deps"
	"github.com/markermap/markermap/internal/logger"
	"github.com/markermap/markermap/internal/mapcfg"
	"github.com/markermap/markermap/internal/store/file"
	"github.com/markermap/markermap/internal/version"
)

// runServe starts the HTTP server that renders the dataset on a map.
func (a *App) runServe(args []string) error {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	listen := fs.String("listen", a.cfg.ListenPort, "listen address")
	datasetPath := fs.String("dataset", a.cfg.DatasetFile, "path to the marker dataset")
	mapConfigPath := fs.String("map-config", a.cfg.MapConfigFile, "path to the map page config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mapConfig, err := mapcfg.NewLoader(*mapConfigPath).Load()
	if err != nil {
		return err
	}

	history, client, err := a.connectHistory()
	if err != nil {
		a.logger.Warn("outcome history unavailable, serving without it",
			logger.Error(err))
		history = nil
	}

	d := deps.Deps{
		Logger:      a.logger,
		StartTime:   time.Now(),
		Version:     version.Version,
		Commit:      version.Commit,
		BuildDate:   version.BuildDate,
		GoVersion:   version.GoVersion,
		Dataset:     file.NewStore(*datasetPath),
		MapConfig:   mapConfig,
		History:     history,
		HistorySize: a.cfg.HistorySize,
	}

	server := httpserver.New(*listen, a.logger, d)

	a.logger.Infof("starting markermap %s on %s", version.Version, *listen)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if client != nil {
		if err := client.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		}
	}

	a.logger.Info("markermap stopped cleanly")
	return nil
}
