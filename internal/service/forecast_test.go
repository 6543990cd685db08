package service

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"wellness_gauntlet/internal/forecast"
	"wellness_gauntlet/internal/history"
	"wellness_gauntlet/internal/model"
	"wellness_gauntlet/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	forecasts       int
	recommendations map[string]int
}

func (r *fakeRecorder) ObserveForecast(time.Duration) {
	r.forecasts++
}

func (r *fakeRecorder) ObserveRecommendations(gem string, count int) {
	if r.recommendations == nil {
		r.recommendations = make(map[string]int)
	}
	r.recommendations[gem] = count
}

func TestForecastService_Forecast(t *testing.T) {
	now := time.Date(2025, 5, 20, 18, 45, 0, 0, time.UTC)
	series := history.New(rand.New(rand.NewPCG(5, 6))).Series(now, history.DefaultPeriods)

	tests := []struct {
		name            string
		mockSetup       func(h *mocks.MockHistorySource)
		ctx             func() context.Context
		expectedError   error
		checkAdditional func(*testing.T, []model.ForecastPoint)
	}{
		{
			name: "Seven consecutive days",
			mockSetup: func(h *mocks.MockHistorySource) {
				h.On("Series", now, history.DefaultPeriods).Return(series)
			},
			checkAdditional: func(t *testing.T, points []model.ForecastPoint) {
				require.Len(t, points, ForecastHorizon)
				for i, p := range points {
					assert.Equal(t, now.AddDate(0, 0, i+1).Format(time.DateOnly), p.Date.Format(time.DateOnly))
					assert.Greater(t, p.PredictedBalance, 0)
					assert.Less(t, p.PredictedBalance, 150)
					if i > 0 {
						assert.Equal(t, 24*time.Hour, p.Date.Sub(points[i-1].Date))
					}
				}
			},
		},
		{
			name: "History too short",
			mockSetup: func(h *mocks.MockHistorySource) {
				h.On("Series", now, history.DefaultPeriods).Return(series[:1])
			},
			expectedError: forecast.ErrInsufficientData,
		},
		{
			name:      "Canceled context",
			mockSetup: func(h *mocks.MockHistorySource) {},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			expectedError: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &mocks.MockHistorySource{}
			tt.mockSetup(h)

			rec := &fakeRecorder{}
			s := NewForecastService(h, rec)
			s.now = func() time.Time { return now }

			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}

			points, err := s.Forecast(ctx, "user-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Zero(t, rec.forecasts)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, rec.forecasts)
			if tt.checkAdditional != nil {
				tt.checkAdditional(t, points)
			}
			h.AssertExpectations(t)
		})
	}
}

func TestForecastService_NowIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	local := time.Date(2025, 5, 21, 1, 30, 0, 0, loc)

	h := &mocks.MockHistorySource{}
	h.On("Series", mock.MatchedBy(func(end time.Time) bool {
		return end.Location() == time.UTC && end.Equal(local)
	}), history.DefaultPeriods).Return(history.New(nil).Series(local.UTC(), history.DefaultPeriods))

	s := NewForecastService(h, nil)
	s.now = func() time.Time { return local }

	points, err := s.Forecast(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, points, ForecastHorizon)
	assert.Equal(t, "2025-05-21", points[0].Date.Format(time.DateOnly))
	h.AssertExpectations(t)
}
