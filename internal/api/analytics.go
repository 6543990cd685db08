package api

import (
	"net/http"
	"time"

	"wellness_gauntlet/internal/service"
	"wellness_gauntlet/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type analyticsRoutes struct {
	as service.AnalyticsServiceI
}

func NewAnalyticsRoutes(handler *gin.RouterGroup, as service.AnalyticsServiceI) {
	r := &analyticsRoutes{as: as}
	h := handler.Group("/analytics")
	{
		h.GET("/history/:user_id", r.GetHistory)
		h.GET("/forecast/:user_id", r.GetForecast)
	}
}

type WellnessLogResponse struct {
	LogDate         string `json:"log_date"`
	WellnessBalance int    `json:"wellness_balance"`
}

type ForecastValuesResponse struct {
	Values []ForecastPointResponse `json:"values"`
}

func (r *analyticsRoutes) GetHistory(c *gin.Context) {
	log := logger.Logger()

	userID := c.Param("user_id")
	log.Info("[API] History request", zap.String("user_id", userID))

	logs, err := r.as.History(c.Request.Context(), userID, c.Query("range"))
	if err != nil {
		log.Error("failed to get history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	out := make([]WellnessLogResponse, len(logs))
	for i, l := range logs {
		out[i] = WellnessLogResponse{
			LogDate:         l.LogDate.Format(time.DateOnly),
			WellnessBalance: l.WellnessBalance,
		}
	}

	c.JSON(http.StatusOK, out)
}

func (r *analyticsRoutes) GetForecast(c *gin.Context) {
	log := logger.Logger()

	userID := c.Param("user_id")
	log.Info("[API] Forecast request", zap.String("user_id", userID))

	points, err := r.as.Forecast(c.Request.Context(), userID)
	if err != nil {
		log.Error("[API] Forecast error", zap.Error(err), zap.Bool("ml_unavailable", errors.Is(err, service.ErrForecastUnavailable)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch forecast data"})
		return
	}

	out := ForecastValuesResponse{Values: make([]ForecastPointResponse, len(points))}
	for i, p := range points {
		out.Values[i] = ForecastPointResponse{
			Date:             p.Date.Format(time.DateOnly),
			PredictedBalance: p.PredictedBalance,
		}
	}

	c.JSON(http.StatusOK, out)
}
