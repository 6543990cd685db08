package api

import (
	"net/http"
	"time"

	"wellness_gauntlet/internal/metrics"
	"wellness_gauntlet/internal/middleware"
	"wellness_gauntlet/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MLDeps struct {
	Forecasts       service.ForecastServiceI
	Recommendations service.RecommendationServiceI
	Metrics         *metrics.Collector
}

// NewMLRouter serves the model endpoints at the root path.
func NewMLRouter(d MLDeps) *gin.Engine {
	router := newBaseRouter("ml", d.Metrics)

	root := router.Group("/")
	NewForecastRoutes(root, d.Forecasts)
	NewRecommendationRoutes(root, d.Recommendations)

	return router
}

type GatewayDeps struct {
	Analytics service.AnalyticsServiceI
	Metrics   *metrics.Collector
}

// NewGatewayRouter serves the frontend API under /api with open CORS.
func NewGatewayRouter(d GatewayDeps) *gin.Engine {
	router := newBaseRouter("gateway", d.Metrics)

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodOptions,
	}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
	config.ExposeHeaders = []string{middleware.RequestIDHeader}
	config.MaxAge = 12 * time.Hour
	router.Use(cors.New(config))

	a := router.Group("/api")
	NewAnalyticsRoutes(a, d.Analytics)
	NewQuestRoutes(a, d.Analytics)

	return router
}

func newBaseRouter(name string, collector *metrics.Collector) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	if collector != nil {
		router.Use(middleware.Metrics(collector))
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{})))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": name})
	})

	return router
}
