package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"task-manager/internal/config"
	httpapi "task-manager/internal/http"
	"task-manager/internal/logger"
	"task-manager/internal/repository"
	"task-manager/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("config")
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	log := logger.Get()

	pool, err := repository.CreatePool(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("create pool")
	}
	defer pool.Close()

	if err := repository.RunMigrations(pool); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	auth := service.NewAuthService(repository.NewUserRepository(pool), cfg.JWTSecret)

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleInterval(cfg.ProbeInterval, func() {
		probeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		stats := pool.Stats()
		if !pool.Healthy(probeCtx) {
			log.Error().Int("open_conns", stats.OpenConnections).Msg("database health probe failed")
			return
		}
		log.Debug().
			Int("open_conns", stats.OpenConnections).
			Int64("wait_count", stats.WaitCount).
			Msg("database healthy")
	}); err != nil {
		log.Fatal().Err(err).Msg("schedule health probe")
	}
	scheduler.Start()
	defer scheduler.Stop()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	httpapi.RegisterRoutes(r, pool, auth)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("shutdown complete")
}
