package service

import (
	"context"
	"errors"
	"time"

	"wellness_gauntlet/internal/model"
)

var (
	ErrForecastUnavailable        = errors.New("forecast unavailable")
	ErrRecommendationsUnavailable = errors.New("recommendations unavailable")
)

type ForecastServiceI interface {
	Forecast(ctx context.Context, userID any) ([]model.ForecastPoint, error)
}

type RecommendationServiceI interface {
	Recommend(ctx context.Context, gem model.Gem) ([]model.Quest, error)
}

type AnalyticsServiceI interface {
	History(ctx context.Context, userID string, historyRange string) ([]model.WellnessLog, error)
	Forecast(ctx context.Context, userID string) ([]model.ForecastPoint, error)
	Recommendations(ctx context.Context, userID string, gem model.Gem) ([]model.Quest, error)
}

type QuestRepository interface {
	ListQuestsByCategory(ctx context.Context, category model.Gem, limit int) ([]model.Quest, error)
}

type HistorySource interface {
	Series(end time.Time, periods int) []model.HistoryPoint
}

type WellnessSource interface {
	WellnessLogs(end time.Time, days int) []model.WellnessLog
}

type MLClient interface {
	Forecast(ctx context.Context, userID string) ([]model.ForecastPoint, error)
	Recommendations(ctx context.Context, userID string, gem model.Gem) ([]model.Quest, error)
}

// Recorder receives domain metrics. A nil Recorder is allowed.
type Recorder interface {
	ObserveForecast(fitDuration time.Duration)
	ObserveRecommendations(gem string, count int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveForecast(time.Duration)      {}
func (nopRecorder) ObserveRecommendations(string, int) {}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
