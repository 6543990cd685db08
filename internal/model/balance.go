package model

import "time"

// HistoryPoint is one day of synthetic balance history fed to the forecaster.
type HistoryPoint struct {
	Date  time.Time
	Value float64
}

type ForecastPoint struct {
	Date             time.Time
	PredictedBalance int
}

// WellnessLog is one day of the short history served to the frontend.
type WellnessLog struct {
	LogDate         time.Time
	WellnessBalance int
}
