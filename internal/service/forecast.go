package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"wellness_gauntlet/internal/forecast"
	"wellness_gauntlet/internal/history"
	"wellness_gauntlet/internal/model"
	"wellness_gauntlet/pkg/logger"

	"go.uber.org/zap"
)

const ForecastHorizon = 7

type ForecastService struct {
	history  HistorySource
	cfg      forecast.Config
	recorder Recorder
	now      func() time.Time
}

func NewForecastService(history HistorySource, recorder Recorder) *ForecastService {
	cfg := forecast.DefaultConfig()
	cfg.DailySeasonality = forecast.On

	return &ForecastService{
		history:  history,
		cfg:      cfg,
		recorder: recorderOrNop(recorder),
		now:      time.Now,
	}
}

// Forecast fits the balance model on a fresh synthetic history and returns
// the next ForecastHorizon days. The user id is only logged.
func (s *ForecastService) Forecast(ctx context.Context, userID any) ([]model.ForecastPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	points := s.history.Series(s.now().UTC(), history.DefaultPeriods)
	ds := make([]time.Time, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		ds[i] = p.Date
		y[i] = p.Value
	}

	start := time.Now()
	m := forecast.New(s.cfg)
	if err := m.Fit(ds, y); err != nil {
		return nil, fmt.Errorf("failed to fit balance model: %w", err)
	}

	future, err := m.FutureDates(ForecastHorizon)
	if err != nil {
		return nil, fmt.Errorf("failed to extend forecast dates: %w", err)
	}

	preds, err := m.Predict(future)
	if err != nil {
		return nil, fmt.Errorf("failed to predict balance: %w", err)
	}
	s.recorder.ObserveForecast(time.Since(start))

	out := make([]model.ForecastPoint, len(preds))
	for i, p := range preds {
		out[i] = model.ForecastPoint{
			Date:             p.Date,
			PredictedBalance: int(math.RoundToEven(p.Yhat)),
		}
	}

	logger.Logger().Debug("balance forecast built",
		zap.Any("user_id", userID),
		zap.Int("history_points", len(points)),
		zap.Duration("fit_duration", time.Since(start)))

	return out, nil
}
