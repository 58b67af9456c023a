package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/ericfisherdev/creatortools/internal/adapter/driven/gemini"
	sqliteadapter "github.com/ericfisherdev/creatortools/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/creatortools/internal/adapter/driven/youtube"
	httphandler "github.com/ericfisherdev/creatortools/internal/adapter/driving/http"
	"github.com/ericfisherdev/creatortools/internal/application"
	"github.com/ericfisherdev/creatortools/internal/config"
	"github.com/ericfisherdev/creatortools/internal/domain/model"
	"github.com/ericfisherdev/creatortools/internal/domain/port/driven"
	"github.com/ericfisherdev/creatortools/internal/metrics"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (.env first, real environment wins).
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := config.NewLogger(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)
	logger.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"generation_timeout", cfg.GenerationTimeout,
		"credential_storage", cfg.HasSecretKey(),
	)
	if !cfg.HasSecretKey() {
		logger.Warn("CREATORTOOLS_SECRET_KEY not set, credentials cannot be stored and tools use the local generator")
	}

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open database (dual reader/writer with WAL mode) and migrate.
	db, err := sqliteadapter.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()
	if err := db.Migrate(); err != nil {
		return err
	}
	logger.Info("database ready", "path", db.Path())

	// 4. Wire adapters.
	credentialStore := sqliteadapter.NewCredentialRepo(db, cfg.SecretKey)
	generator := gemini.NewClient(
		gemini.WithBaseURL(cfg.GeminiBaseURL),
		gemini.WithTimeout(cfg.GenerationTimeout),
	)
	videoClients := application.NewVideoClientProvider(credentialStore,
		func(ctx context.Context, apiKey string) (driven.VideoPlatform, error) {
			return youtube.NewClient(ctx, apiKey, youtube.WithLogger(logger))
		},
	)
	m := metrics.New(prometheus.DefaultRegisterer)

	// 5. Create services.
	credentialSvc := application.NewCredentialService(credentialStore, logger)
	generationSvc := application.NewGenerationService(credentialStore, generator, logger,
		application.WithGenerationTimeout(cfg.GenerationTimeout),
		application.WithRecorder(m),
	)
	insightsSvc := application.NewInsightsService(videoClients, logger)

	// 6. Import keys supplied through the environment when nothing is stored yet.
	seeds := map[string]string{
		model.CredentialGemini:  cfg.GeminiAPIKey,
		model.CredentialYouTube: cfg.YouTubeAPIKey,
	}
	for id, secret := range seeds {
		if _, err := credentialSvc.Seed(ctx, id, secret); err != nil {
			logger.Warn("could not seed credential from environment", "id", id, "error", err)
		}
	}

	// 7. Create HTTP handler.
	apiHandler := httphandler.NewHandler(generationSvc, credentialSvc, insightsSvc, db, logger)
	handler := httphandler.NewServeMux(apiHandler, logger, m, promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.GenerationTimeout + 15*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// 8. Wait for shutdown signal or server failure.
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serverErr:
		return err
	}

	// 9. Graceful shutdown with 10s timeout to drain in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}
