package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedback-system/internal/config"
	"feedback-system/internal/database"
	"feedback-system/internal/handlers"
	"feedback-system/internal/logger"
	"feedback-system/internal/notify"
	"feedback-system/internal/repository"
	"feedback-system/internal/router"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logs := logger.Init(logger.Config{
		Service: "feedback-api",
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store repository.FeedbackStore
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warn().Msg("using in-memory store, records are lost on exit")
		store = repository.NewMemoryRepo()
	default:
		db, err := database.Connect(ctx, cfg.MongoURI, cfg.DBName)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := db.Disconnect(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("error disconnecting from MongoDB")
			}
		}()

		feedbackRepo := repository.NewFeedbackRepo(db)
		indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := feedbackRepo.EnsureIndexes(indexCtx); err != nil {
			log.Warn().Err(err).Msg("failed to create feedback indexes")
		}
		cancel()
		store = feedbackRepo
	}

	feedbackHandler := handlers.NewFeedbackHandler(store, notify.NewLogNotifier(logs))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.NewAPIRouter(feedbackHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("feedback API starting")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server failed")
		return
	}
	log.Info().Msg("server stopped")
}
