package api

import (
	"net/http"

	"wellness_gauntlet/internal/model"
	"wellness_gauntlet/internal/service"
	"wellness_gauntlet/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type recommendationRoutes struct {
	rs service.RecommendationServiceI
}

func NewRecommendationRoutes(handler *gin.RouterGroup, rs service.RecommendationServiceI) {
	r := &recommendationRoutes{rs: rs}
	handler.POST("/recommendations", r.GetRecommendations)
}

type QuestResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func questResponses(quests []model.Quest) []QuestResponse {
	out := make([]QuestResponse, len(quests))
	for i, q := range quests {
		out[i] = QuestResponse{
			ID:          q.ID,
			Name:        q.Name,
			Description: q.Description,
			Category:    string(q.Category),
		}
	}
	return out
}

func (r *recommendationRoutes) GetRecommendations(c *gin.Context) {
	log := logger.Logger()

	body := readBody(c)
	userID := body["user_id"]

	gem := service.DefaultGem
	raw, present := body["weakest_gem"]
	if present {
		// a present non-string label cannot equal any category
		gem = model.GemNone
		if s, ok := raw.(string); ok {
			gem = model.Gem(s)
		}
	}
	log.Info("[ML] Recommendation request", zap.Any("user_id", userID), zap.Any("weakest_gem", raw), zap.String("gem", string(gem)))

	quests, err := r.rs.Recommend(c.Request.Context(), gem)
	if err != nil {
		log.Error("failed to get recommendations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get recommendations"})
		return
	}

	c.JSON(http.StatusOK, questResponses(quests))
}
