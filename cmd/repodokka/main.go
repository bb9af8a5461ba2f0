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

	"github.com/jonmartinstorm/repodokka/internal/api"
	"github.com/jonmartinstorm/repodokka/internal/bqwriter"
	"github.com/jonmartinstorm/repodokka/internal/config"
	"github.com/jonmartinstorm/repodokka/internal/dbwriter"
	"github.com/jonmartinstorm/repodokka/internal/gitclone"
	"github.com/jonmartinstorm/repodokka/internal/llm"
	"github.com/jonmartinstorm/repodokka/internal/logger"
	"github.com/jonmartinstorm/repodokka/internal/tasks"
)

func main() {
	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, err := config.LoadAndValidateConfig()
	if err != nil {
		slog.Error("Ugyldig konfigurasjon", "error", err)
		os.Exit(1)
	}

	logger.SetupLogger()
	logger.SetDebug(cfg.Debug)

	cloner, err := gitclone.NewCloner(cfg.CloneDir, cfg.GitHubToken)
	if err != nil {
		slog.Error("Klarte ikke å sette opp klonekatalogen", "error", err)
		os.Exit(1)
	}

	llmService, err := llm.NewService(ctx, cfg)
	if err != nil {
		slog.Error("Klarte ikke å sette opp LLM-tjenesten", "error", err)
		os.Exit(1)
	}

	storage, err := setupStorage(ctx, cfg)
	if err != nil {
		slog.Error("Klarte ikke å sette opp lagring", "error", err)
		os.Exit(1)
	}

	server := api.NewServer(tasks.NewMemoryStore(), cloner, llmService, storage, cfg.Parallelism)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.Routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		slog.Info("Avslutningssignal mottatt – stopper serveren")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Klarte ikke å stoppe serveren pent", "error", err)
		}
	}()

	slog.Info("repodokka starter", "addr", cfg.Addr, "llm", cfg.LLM, "storage", cfg.Storage)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Serveren feilet", "error", err)
		os.Exit(1)
	}
}

// setupStorage velger lagringslag ut fra konfigurasjonen. StorageNone gir
// nil, som betyr at resultater kun holdes i minnet.
func setupStorage(ctx context.Context, cfg config.Config) (api.Storage, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		return dbwriter.NewPostgresWriter(cfg.PostgresDSN)
	case config.StorageBigQuery:
		return bqwriter.NewBigQueryWriter(ctx, cfg)
	default:
		return nil, nil
	}
}
