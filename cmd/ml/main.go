package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"wellness_gauntlet/internal/api"
	"wellness_gauntlet/internal/history"
	"wellness_gauntlet/internal/metrics"
	"wellness_gauntlet/internal/repository"
	"wellness_gauntlet/internal/server"
	"wellness_gauntlet/internal/service"
	"wellness_gauntlet/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	collector := metrics.NewCollector("ml")
	repo := repository.NewDefault()

	router := api.NewMLRouter(api.MLDeps{
		Forecasts:       service.NewForecastService(history.New(nil), collector),
		Recommendations: service.NewRecommendationService(repo, collector),
		Metrics:         collector,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger.Info("ML service configured",
		zap.String("addr", cfg.Server.Server().Addr()),
		zap.Bool("debug", cfg.Debug))

	if err := server.New("ml", cfg.Server.Server(), router).Run(ctx); err != nil {
		zapLogger.Fatal("ML service stopped", zap.Error(err))
	}
}
