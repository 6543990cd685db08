package mocks

import (
	"context"

	"wellness_gauntlet/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockForecastService struct {
	mock.Mock
}

func (m *MockForecastService) Forecast(ctx context.Context, userID any) ([]model.ForecastPoint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ForecastPoint), args.Error(1)
}

type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Recommend(ctx context.Context, gem model.Gem) ([]model.Quest, error) {
	args := m.Called(ctx, gem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Quest), args.Error(1)
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) History(ctx context.Context, userID string, historyRange string) ([]model.WellnessLog, error) {
	args := m.Called(ctx, userID, historyRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WellnessLog), args.Error(1)
}

func (m *MockAnalyticsService) Forecast(ctx context.Context, userID string) ([]model.ForecastPoint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ForecastPoint), args.Error(1)
}

func (m *MockAnalyticsService) Recommendations(ctx context.Context, userID string, gem model.Gem) ([]model.Quest, error) {
	args := m.Called(ctx, userID, gem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Quest), args.Error(1)
}
