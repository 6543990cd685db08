// Package history generates the synthetic balance series used in place of
// real user data.
package history

import (
	"math"
	"math/rand/v2"
	"time"

	"wellness_gauntlet/internal/model"
)

const (
	// DefaultPeriods is the length of the series fed to the forecaster.
	DefaultPeriods = 90

	minBalance = 20
	maxBalance = 100
)

// Generator draws noise from Rand. A nil Rand uses the shared
// goroutine-safe source, so every call yields a different series.
type Generator struct {
	Rand *rand.Rand
}

func New(r *rand.Rand) *Generator {
	return &Generator{Rand: r}
}

func (g *Generator) uniform() float64 {
	if g == nil || g.Rand == nil {
		return rand.Float64()
	}
	return g.Rand.Float64()
}

// Series returns periods daily points ending at end (inclusive). Point i is
// 60 + 20*sin(i/7) plus uniform noise in [-5, 5), clipped to [20, 100].
func (g *Generator) Series(end time.Time, periods int) []model.HistoryPoint {
	if periods <= 0 {
		return []model.HistoryPoint{}
	}

	points := make([]model.HistoryPoint, periods)
	for i := range points {
		v := 60 + 20*math.Sin(float64(i)/7) + (g.uniform()*10 - 5)
		points[i] = model.HistoryPoint{
			Date:  end.AddDate(0, 0, i-periods+1),
			Value: clamp(v, minBalance, maxBalance),
		}
	}
	return points
}

// WellnessLogs returns the short history shown on the analytics page: days
// entries, oldest first, the last one dated end.
func (g *Generator) WellnessLogs(end time.Time, days int) []model.WellnessLog {
	if days <= 0 {
		return []model.WellnessLog{}
	}

	logs := make([]model.WellnessLog, 0, days)
	for i := days - 1; i >= 0; i-- {
		v := 65 + math.Sin(float64(i)*0.5)*15 + (g.uniform()-0.5)*10
		logs = append(logs, model.WellnessLog{
			LogDate:         end.AddDate(0, 0, -i),
			WellnessBalance: int(math.Round(clamp(v, 0, 100))),
		})
	}
	return logs
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
