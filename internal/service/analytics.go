package service

import (
	"context"
	"fmt"
	"time"

	"wellness_gauntlet/internal/model"
)

const (
	WeekRange = "week"

	weekDays  = 7
	monthDays = 30

	// DefaultFrontendGem is asked for when the frontend does not name a
	// category.
	DefaultFrontendGem = model.GemSoul
)

// AnalyticsService backs the frontend-facing gateway: it serves mock history
// locally and delegates forecasts and recommendations to the ML service.
type AnalyticsService struct {
	ml      MLClient
	history WellnessSource
	now     func() time.Time
}

func NewAnalyticsService(ml MLClient, history WellnessSource) *AnalyticsService {
	return &AnalyticsService{
		ml:      ml,
		history: history,
		now:     time.Now,
	}
}

// History returns a week of logs for range "week" and 30 days otherwise.
func (s *AnalyticsService) History(ctx context.Context, userID string, historyRange string) ([]model.WellnessLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	days := monthDays
	if historyRange == WeekRange {
		days = weekDays
	}

	return s.history.WellnessLogs(s.now().UTC(), days), nil
}

func (s *AnalyticsService) Forecast(ctx context.Context, userID string) ([]model.ForecastPoint, error) {
	points, err := s.ml.Forecast(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrForecastUnavailable, err)
	}
	return points, nil
}

func (s *AnalyticsService) Recommendations(ctx context.Context, userID string, gem model.Gem) ([]model.Quest, error) {
	if gem == "" {
		gem = DefaultFrontendGem
	}

	quests, err := s.ml.Recommendations(ctx, userID, gem)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecommendationsUnavailable, err)
	}
	return quests, nil
}
