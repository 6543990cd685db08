package api

import (
	"net/http"
	"time"

	"wellness_gauntlet/internal/service"
	"wellness_gauntlet/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type forecastRoutes struct {
	fs service.ForecastServiceI
}

func NewForecastRoutes(handler *gin.RouterGroup, fs service.ForecastServiceI) {
	r := &forecastRoutes{fs: fs}
	handler.POST("/forecast", r.GetForecast)
}

type ForecastPointResponse struct {
	Date             string `json:"date"`
	PredictedBalance int    `json:"predicted_balance"`
}

func (r *forecastRoutes) GetForecast(c *gin.Context) {
	log := logger.Logger()

	userID := readBody(c)["user_id"]
	log.Info("[ML] Forecast request", zap.Any("user_id", userID))

	points, err := r.fs.Forecast(c.Request.Context(), userID)
	if err != nil {
		log.Error("failed to build forecast", zap.Error(err), zap.Any("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build forecast"})
		return
	}

	out := make([]ForecastPointResponse, len(points))
	for i, p := range points {
		out[i] = ForecastPointResponse{
			Date:             p.Date.Format(time.DateOnly),
			PredictedBalance: p.PredictedBalance,
		}
	}

	c.JSON(http.StatusOK, out)
}
