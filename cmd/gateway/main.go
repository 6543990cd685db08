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
	"wellness_gauntlet/internal/mlclient"
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

	collector := metrics.NewCollector("gateway")
	client := mlclient.New(cfg.MLService.Client(), collector)

	router := api.NewGatewayRouter(api.GatewayDeps{
		Analytics: service.NewAnalyticsService(client, history.New(nil)),
		Metrics:   collector,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger.Info("Gateway configured",
		zap.String("addr", cfg.Server.Server().Addr()),
		zap.String("ml_service_url", cfg.MLService.URL))

	if err := server.New("gateway", cfg.Server.Server(), router).Run(ctx); err != nil {
		zapLogger.Fatal("Gateway stopped", zap.Error(err))
	}
}
