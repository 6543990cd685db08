package api

import (
	"net/http"

	"wellness_gauntlet/internal/model"
	"wellness_gauntlet/internal/service"
	"wellness_gauntlet/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type questRoutes struct {
	as service.AnalyticsServiceI
}

func NewQuestRoutes(handler *gin.RouterGroup, as service.AnalyticsServiceI) {
	r := &questRoutes{as: as}
	h := handler.Group("/quests")
	{
		h.GET("/recommendations/:user_id", r.GetRecommendations)
	}
}

type RecommendationsResponse struct {
	Recommendations []QuestResponse `json:"recommendations"`
}

func (r *questRoutes) GetRecommendations(c *gin.Context) {
	log := logger.Logger()

	userID := c.Param("user_id")
	gem := model.Gem(c.Query("gem"))
	log.Info("[API] Recommendations request", zap.String("user_id", userID), zap.String("gem", string(gem)))

	quests, err := r.as.Recommendations(c.Request.Context(), userID, gem)
	if err != nil {
		log.Error("[API] Recommendations error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations"})
		return
	}

	c.JSON(http.StatusOK, RecommendationsResponse{Recommendations: questResponses(quests)})
}
