package history

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Series(t *testing.T) {
	end := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)
	g := New(rand.New(rand.NewPCG(1, 2)))

	points := g.Series(end, DefaultPeriods)
	require.Len(t, points, DefaultPeriods)

	assert.True(t, points[len(points)-1].Date.Equal(end))
	assert.True(t, points[0].Date.Equal(end.Add(-89*24*time.Hour)))

	for i, p := range points {
		assert.GreaterOrEqual(t, p.Value, 20.0)
		assert.LessOrEqual(t, p.Value, 100.0)
		if i > 0 {
			assert.Equal(t, 24*time.Hour, p.Date.Sub(points[i-1].Date))
		}
	}
}

func TestGenerator_SeriesFollowsSinusoid(t *testing.T) {
	g := New(rand.New(rand.NewPCG(7, 7)))
	points := g.Series(time.Now(), DefaultPeriods)

	// noise is bounded by 5, so every point stays near the base curve
	for i, p := range points {
		base := 60 + 20*sinOver7(i)
		assert.InDelta(t, base, p.Value, 5.0, "point %d", i)
	}
}

func TestGenerator_SeriesDiffersBetweenCalls(t *testing.T) {
	var g *Generator
	end := time.Now()

	a := g.Series(end, 10)
	b := g.Series(end, 10)
	assert.NotEqual(t, a, b)
}

func TestGenerator_SeriesEmpty(t *testing.T) {
	g := New(nil)
	assert.Empty(t, g.Series(time.Now(), 0))
	assert.Empty(t, g.WellnessLogs(time.Now(), -1))
}

func TestGenerator_WellnessLogs(t *testing.T) {
	end := time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC)
	g := New(rand.New(rand.NewPCG(3, 4)))

	for _, days := range []int{7, 30} {
		logs := g.WellnessLogs(end, days)
		require.Len(t, logs, days)

		assert.Equal(t, "2025-01-03", logs[days-1].LogDate.Format(time.DateOnly))
		for i, l := range logs {
			assert.GreaterOrEqual(t, l.WellnessBalance, 0)
			assert.LessOrEqual(t, l.WellnessBalance, 100)
			if i > 0 {
				assert.True(t, l.LogDate.After(logs[i-1].LogDate))
			}
		}
	}

	week := g.WellnessLogs(end, 7)
	assert.Equal(t, "2024-12-28", week[0].LogDate.Format(time.DateOnly))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		lo, hi float64
		want   float64
	}{
		{name: "below balance floor", v: 12.5, lo: minBalance, hi: maxBalance, want: 20},
		{name: "above balance ceiling", v: 104, lo: minBalance, hi: maxBalance, want: 100},
		{name: "inside balance range", v: 61.3, lo: minBalance, hi: maxBalance, want: 61.3},
		{name: "on balance floor", v: 20, lo: minBalance, hi: maxBalance, want: 20},
		{name: "negative log value", v: -3, lo: 0, hi: 100, want: 0},
		{name: "log value over 100", v: 100.4, lo: 0, hi: 100, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clamp(tt.v, tt.lo, tt.hi))
		})
	}
}

func sinOver7(i int) float64 {
	return math.Sin(float64(i) / 7)
}
