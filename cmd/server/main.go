package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bkhatib/fft-service/internal/ai"
	"github.com/bkhatib/fft-service/internal/config"
	httpapi "github.com/bkhatib/fft-service/internal/http"
	"github.com/bkhatib/fft-service/internal/notifier"
	"github.com/bkhatib/fft-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := log.Level(level).With().Str("service", "fft-service").Logger()

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	classifier := &service.Classifier{
		Oracle: ai.NewOpenAIOracle(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.OracleTimeout),
		Logger: logger,
	}
	if cfg.NotifierEnabled {
		classifier.Notifier = notifier.NewHTTPNotifier(cfg.InformaticaURL, cfg.InformaticaKey, notifier.Options{
			Timeout: cfg.NotifierTimeout,
		}, logger)
	} else {
		logger.Warn().Msg("case notifier disabled")
	}

	router := httpapi.Router(cfg, classifier, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("model", cfg.OpenAIModel).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
