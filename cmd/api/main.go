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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"nurtureplan/internal/api"
	"nurtureplan/internal/config"
	"nurtureplan/internal/dietplan"
	"nurtureplan/internal/metrics"
	"nurtureplan/internal/platform/gemini"
	"nurtureplan/internal/platform/localllm"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}

	setupLogger(cfg.Logging)
	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating gemini client")
	}
	defer geminiClient.Close()

	localLLMClient := localllm.NewClient(cfg.LocalLLM.URL, cfg.LocalLLM.Model)

	dbStore, err := dietplan.NewPostgresStore(cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating postgres store")
	}
	defer dbStore.Close()

	var planStore api.PlanStore = dbStore
	if cfg.Redis.Address != "" {
		rdb, err := dietplan.NewRedisClient(ctx, dietplan.RedisOptions{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, plan cache disabled")
		} else {
			defer rdb.Close()
			planStore = dietplan.NewCachedStore(dbStore, rdb, cfg.Redis.TTL, metrics.ObserveCacheLookup)
			log.Info().Str("address", cfg.Redis.Address).Dur("ttl", cfg.Redis.TTL).Msg("plan cache enabled")
		}
	}

	handler := api.NewHandler(geminiClient, localLLMClient, planStore, cfg.Images.Dir, cfg.Server.RequestTimeout)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: setupRouter(handler, cfg),
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}

func setupLogger(cfg config.LoggingConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	zerolog.DefaultContextLogger = &log.Logger
}

func setupRouter(handler *api.Handler, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), api.RequestID(), api.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", api.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", api.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.Register(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/images", cfg.Images.Dir)
	return r
}
