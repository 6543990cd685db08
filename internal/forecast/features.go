package forecast

import (
	"math"
	"time"
)

const secondsPerDay = 86400.0

// epochDays measures time in days since the Unix epoch so Fourier terms
// are aligned to the calendar rather than to the start of the history.
func epochDays(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9 / secondsPerDay
}

func fourierTerms(days, period float64, order int, dst []float64) []float64 {
	for n := 1; n <= order; n++ {
		x := 2 * math.Pi * float64(n) * days / period
		dst = append(dst, math.Sin(x), math.Cos(x))
	}
	return dst
}

// changepointsFor picks changepoint locations (in scaled time) from the
// first rangeShare of the history, skipping the very first point.
func changepointsFor(ts []float64, n int, rangeShare float64) []float64 {
	histSize := int(math.Floor(float64(len(ts)) * rangeShare))
	if n > histSize-1 {
		n = histSize - 1
	}
	if n <= 0 {
		return nil
	}

	cps := make([]float64, 0, n)
	step := float64(histSize-1) / float64(n)
	for i := 1; i <= n; i++ {
		cps = append(cps, ts[int(math.Round(step*float64(i)))])
	}
	return cps
}

func (m *Model) scaledTime(t time.Time) float64 {
	return t.Sub(m.start).Seconds() / m.tScale
}

// row builds the design row: intercept, slope, one hinge per changepoint,
// then the Fourier terms of every seasonality.
func (m *Model) row(t time.Time, dst []float64) []float64 {
	dst = dst[:0]
	st := m.scaledTime(t)
	dst = append(dst, 1, st)
	for _, cp := range m.changepoints {
		dst = append(dst, math.Max(0, st-cp))
	}
	days := epochDays(t)
	for _, s := range m.seasonalities {
		dst = fourierTerms(days, s.PeriodDays, s.FourierOrder, dst)
	}
	return dst
}

func (m *Model) trendColumns() int {
	return 2 + len(m.changepoints)
}

func (m *Model) columns() int {
	n := m.trendColumns()
	for _, s := range m.seasonalities {
		n += 2 * s.FourierOrder
	}
	return n
}

// priorScales returns the prior scale of every design column.
func (m *Model) priorScales() []float64 {
	scales := make([]float64, 0, m.columns())
	scales = append(scales, trendPriorScale, trendPriorScale)
	for range m.changepoints {
		scales = append(scales, m.cfg.ChangepointPriorScale)
	}
	for _, s := range m.seasonalities {
		for i := 0; i < 2*s.FourierOrder; i++ {
			scales = append(scales, s.PriorScale)
		}
	}
	return scales
}
