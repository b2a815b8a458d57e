package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpadapter "fitcoach/internal/adapters/http"
	"fitcoach/internal/adapters/llm"
	memstore "fitcoach/internal/adapters/storage/memory"
	mongostore "fitcoach/internal/adapters/storage/mongo"
	"fitcoach/internal/app/chat"
	"fitcoach/internal/config"
	"fitcoach/internal/domain"
	"fitcoach/internal/observability"
)

func main() {
	// Optional .env for local development; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := observability.Logger()
	ctx := context.Background()

	// LLM: mock or Gemini
	var generator domain.ResponseGenerator
	if cfg.UseMockLLM {
		logger.Info("using mock LLM client")
		generator = llm.NewMockLLM()
	} else {
		logger.Info("using Gemini LLM client", "model", cfg.ModelName)
		generator, err = llm.NewClient(ctx, cfg.GeminiAPIKey, cfg.ModelName, cfg.GenerateTimeout)
		if err != nil {
			log.Fatalf("error initializing Gemini client: %v", err)
		}
	}

	// Storage: MongoDB or memory
	var store domain.TurnStore
	var closeStore func(context.Context) error

	switch cfg.StorageBackend {
	case config.BackendMongo:
		logger.Info("using MongoDB storage", "database", cfg.DatabaseName)
		mstore, err := mongostore.NewStore(ctx, cfg.MongoURL, cfg.DatabaseName)
		if err != nil {
			log.Fatalf("error initializing Mongo store: %v", err)
		}
		store = mstore
		closeStore = mstore.Close
	default:
		logger.Info("using in-memory storage")
		store = memstore.NewTurnStore()
	}

	svc := chat.NewService(store, generator, chat.Options{
		ContextWindow: cfg.ContextWindow,
		HistoryLimit:  cfg.HistoryLimit,
		MaxMessageLen: cfg.MaxMessageLength,
	})

	handler := httpadapter.NewServer(svc, domain.Identity(cfg.UserID), "static")

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handler,
	}

	go func() {
		logger.Info("fitcoach API listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	if closeStore != nil {
		if err := closeStore(shutdownCtx); err != nil {
			logger.Error("store close", "error", err)
		}
	}
}
