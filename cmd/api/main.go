package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Seanneskie/llm-restaurant-pioneer/internal/config"
	"github.com/Seanneskie/llm-restaurant-pioneer/internal/foursquare"
	"github.com/Seanneskie/llm-restaurant-pioneer/internal/handler"
	"github.com/Seanneskie/llm-restaurant-pioneer/internal/llm"
	"github.com/Seanneskie/llm-restaurant-pioneer/internal/logging"
	middlewarepkg "github.com/Seanneskie/llm-restaurant-pioneer/internal/middleware"
	"github.com/Seanneskie/llm-restaurant-pioneer/internal/router"
	"github.com/Seanneskie/llm-restaurant-pioneer/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Init("llm-restaurant-pioneer", "development")
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logging.Init("llm-restaurant-pioneer", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	parser, err := llm.NewGeminiParser(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize gemini parser")
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}
	places := foursquare.NewClient(httpClient, cfg.FsqBaseURL, cfg.FsqAPIKey)

	searchService := service.NewSearchService(parser, places, cfg.EnrichLimit)
	executeHandler := handler.NewExecuteHandler(searchService, cfg.APICode)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{Execute: executeHandler})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	log.Info().Str("port", cfg.Port).Msg("api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
