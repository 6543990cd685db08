package mocks

import (
	"context"
	"time"

	"wellness_gauntlet/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockQuestRepository struct {
	mock.Mock
}

func (m *MockQuestRepository) ListQuestsByCategory(ctx context.Context, category model.Gem, limit int) ([]model.Quest, error) {
	args := m.Called(ctx, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Quest), args.Error(1)
}

type MockHistorySource struct {
	mock.Mock
}

func (m *MockHistorySource) Series(end time.Time, periods int) []model.HistoryPoint {
	args := m.Called(end, periods)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.HistoryPoint)
}

func (m *MockHistorySource) WellnessLogs(end time.Time, days int) []model.WellnessLog {
	args := m.Called(end, days)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.WellnessLog)
}

type MockMLClient struct {
	mock.Mock
}

func (m *MockMLClient) Forecast(ctx context.Context, userID string) ([]model.ForecastPoint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ForecastPoint), args.Error(1)
}

func (m *MockMLClient) Recommendations(ctx context.Context, userID string, gem model.Gem) ([]model.Quest, error) {
	args := m.Called(ctx, userID, gem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Quest), args.Error(1)
}
