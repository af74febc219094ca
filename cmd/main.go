package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/captionsmith/backend/docs"
	"github.com/captionsmith/backend/internal/cache"
	"github.com/captionsmith/backend/internal/config"
	"github.com/captionsmith/backend/internal/handler"
	"github.com/captionsmith/backend/internal/llm"
	"github.com/captionsmith/backend/internal/logging"
	"github.com/captionsmith/backend/internal/metrics"
	appmiddleware "github.com/captionsmith/backend/internal/middleware"
	"github.com/captionsmith/backend/internal/service"
	"github.com/captionsmith/backend/internal/upload"
)

// @title AI Social Media Caption Creator API
// @version 1.0.0
// @description Backend API for AI-powered social media caption generation
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		l := logging.Setup("info")
		l.Fatal().Err(err).Msg("config error")
	}
	logger := logging.Setup(cfg.Server.LogLevel)

	gemini, err := llm.NewGemini(ctx, cfg.Gemini)
	if err != nil {
		logger.Fatal().Err(err).Msg("gemini client error")
	}
	if err := gemini.Ping(ctx); err != nil {
		logger.Warn().Err(err).Msg("Gemini API key validation failed")
	} else {
		logger.Info().Msg("Gemini API key is valid")
	}

	captionService := service.NewCaptionService(logger, gemini)
	if cfg.CacheEnable {
		redisCache := cache.NewRedisCache(
			cfg.RedisConfig.Addr,
			cfg.RedisConfig.Password,
			cfg.RedisConfig.DB,
			cfg.RedisConfig.TTL,
		)
		captionService.SetCacheClient(redisCache)
		logger.Info().Msg("set redis as cache")
	}

	validator := upload.NewValidator(cfg.Upload.MaxFileSize)
	store, err := upload.NewStore(cfg.Upload.Dir)
	if err != nil {
		logger.Fatal().Err(err).Msg("upload store error")
	}

	g := handler.NewGenerateHandler(captionService, validator, store)

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		appmiddleware.RequestLogger(logger),
		chimiddleware.Recoverer,
		chimiddleware.Throttle(cfg.Server.ThrottleLimit),
		chimiddleware.Timeout(cfg.Server.Timeout),
		metrics.Middleware,
	}...)

	r.Get("/", g.Health)
	r.Get("/health", g.Health)
	r.Post("/generate/image", g.GenerateFromImage)
	r.Post("/generate/text", g.GenerateFromText)
	r.Post("/generate/file", g.GenerateFromFile)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Str("upload_dir", store.Dir()).
			Int64("max_file_size", cfg.Upload.MaxFileSize).
			Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}
	logger.Info().Msg("server stopped")
}
