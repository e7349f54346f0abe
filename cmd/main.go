package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukydev/prestige-car-hire/internal/config"
	"github.com/ukydev/prestige-car-hire/internal/db"
	"github.com/ukydev/prestige-car-hire/internal/handlers"
	"github.com/ukydev/prestige-car-hire/internal/uploads"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Fatal("Server exited")
	}
}

func newRootCmd() *cobra.Command {
	var port, uploadDir string

	cmd := &cobra.Command{
		Use:          "prestige-api",
		Short:        "Serve the Prestige Car Hire API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("upload-dir") {
				cfg.UploadDir = uploadDir
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides PORT)")
	cmd.Flags().StringVar(&uploadDir, "upload-dir", "", "directory for claim attachments (overrides UPLOAD_DIR)")
	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	files, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	store := openStore(ctx, cfg)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Disconnect(ctx); err != nil {
			log.WithError(err).Warn("Failed to disconnect from MongoDB")
		}
	}()

	h := handlers.NewHandler(store, files, handlers.Options{
		DatabaseURLSet: cfg.HasDatabase(),
		Logger:         log.StandardLogger(),
	})
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serve(ctx, srv)
}

// openStore connects to MongoDB when a URL is configured. Connection
// problems are logged rather than fatal; the API keeps serving and reports
// the database as unavailable.
func openStore(ctx context.Context, cfg *config.Config) *db.MongoStore {
	if !cfg.HasDatabase() {
		log.Warn("DATABASE_URL not set, running without a database")
		return db.NewMongoStore(nil, cfg.DatabaseName)
	}

	client, err := db.ConnectMongo(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Error("Failed to connect to MongoDB, running without a database")
		return db.NewMongoStore(nil, cfg.DatabaseName)
	}

	store := db.NewMongoStore(client, cfg.DatabaseName)
	if err := store.Ping(ctx); err != nil {
		log.WithError(err).Warn("MongoDB did not answer ping")
	} else {
		log.WithField("database", cfg.DatabaseName).Info("Connected to MongoDB")
	}
	return store
}

// serve runs srv until ctx is cancelled or the process is interrupted, then
// drains in-flight requests.
func serve(ctx context.Context, srv *http.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
