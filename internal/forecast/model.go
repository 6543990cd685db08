// Package forecast implements an additive time-series model: a piecewise
// linear trend with automatic changepoints plus Fourier seasonalities,
// fitted by penalised least squares.
package forecast

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrInsufficientData = errors.New("at least two observations are required")
	ErrLengthMismatch   = errors.New("dates and values differ in length")
	ErrInvalidValue     = errors.New("observation is not a finite number")
	ErrUnsortedDates    = errors.New("dates must be strictly increasing")
	ErrNotFitted        = errors.New("model has not been fitted")
	ErrSingular         = errors.New("design matrix is not positive definite")
)

type Prediction struct {
	Date     time.Time
	Yhat     float64
	Trend    float64
	Seasonal float64
}

type Model struct {
	cfg Config

	start  time.Time
	tScale float64
	yScale float64
	last   time.Time

	changepoints  []float64
	seasonalities []Seasonality

	beta   *mat.VecDense
	sigma  float64
	fitted bool
}

func New(cfg Config) *Model {
	return &Model{cfg: cfg}
}

// Seasonalities lists the components chosen by the last Fit.
func (m *Model) Seasonalities() []Seasonality {
	out := make([]Seasonality, len(m.seasonalities))
	copy(out, m.seasonalities)
	return out
}

func (m *Model) Fit(ds []time.Time, y []float64) error {
	if len(ds) != len(y) {
		return errors.Wrapf(ErrLengthMismatch, "%d dates, %d values", len(ds), len(y))
	}
	if len(ds) < 2 {
		return ErrInsufficientData
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidValue, "index %d", i)
		}
		if i > 0 && !ds[i].After(ds[i-1]) {
			return errors.Wrapf(ErrUnsortedDates, "index %d", i)
		}
	}

	m.fitted = false
	m.start = ds[0]
	m.last = ds[len(ds)-1]
	m.tScale = m.last.Sub(m.start).Seconds()

	m.yScale = 0
	for _, v := range y {
		m.yScale = math.Max(m.yScale, math.Abs(v))
	}
	if m.yScale == 0 {
		m.yScale = 1
	}

	ts := make([]float64, len(ds))
	for i, d := range ds {
		ts[i] = m.scaledTime(d)
	}
	m.changepoints = changepointsFor(ts, m.cfg.NChangepoints, m.cfg.ChangepointRange)
	m.seasonalities = m.chooseSeasonalities(ds)

	p := m.columns()
	x := mat.NewDense(len(ds), p, nil)
	ys := mat.NewVecDense(len(ds), nil)
	buf := make([]float64, 0, p)
	for i, d := range ds {
		buf = m.row(d, buf)
		x.SetRow(i, buf)
		ys.SetVec(i, y[i]/m.yScale)
	}

	// Gaussian priors turn the MAP estimate into ridge regression with a
	// per-column penalty noise^2 / scale^2.
	var xtx mat.SymDense
	xtx.SymOuterK(1, x.T())
	noise := m.cfg.ObservationNoise * m.cfg.ObservationNoise
	for j, s := range m.priorScales() {
		xtx.SetSym(j, j, xtx.At(j, j)+noise/(s*s))
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), ys)

	var chol mat.Cholesky
	if ok := chol.Factorize(&xtx); !ok {
		return ErrSingular
	}
	beta := mat.NewVecDense(p, nil)
	if err := chol.SolveVecTo(beta, &xty); err != nil {
		return errors.Wrap(err, "solve normal equations")
	}
	m.beta = beta

	var fitted mat.VecDense
	fitted.MulVec(x, beta)
	residuals := make([]float64, len(ds))
	for i := range residuals {
		residuals[i] = (ys.AtVec(i) - fitted.AtVec(i)) * m.yScale
	}
	m.sigma = stat.StdDev(residuals, nil)
	m.fitted = true

	return nil
}

func (m *Model) chooseSeasonalities(ds []time.Time) []Seasonality {
	span := m.last.Sub(m.start)
	minGap := ds[1].Sub(ds[0])
	for i := 2; i < len(ds); i++ {
		if g := ds[i].Sub(ds[i-1]); g < minGap {
			minGap = g
		}
	}

	enabled := func(tg Toggle, minSpan, maxGap time.Duration) bool {
		switch tg {
		case On:
			return true
		case Off:
			return false
		}
		return span >= minSpan && minGap < maxGap
	}

	day := 24 * time.Hour
	var out []Seasonality
	if enabled(m.cfg.YearlySeasonality, 730*day, 365*day) {
		out = append(out, Seasonality{Name: "yearly", PeriodDays: yearlyPeriod, FourierOrder: yearlyOrder, PriorScale: m.cfg.SeasonalityPriorScale})
	}
	if enabled(m.cfg.WeeklySeasonality, 14*day, 7*day) {
		out = append(out, Seasonality{Name: "weekly", PeriodDays: weeklyPeriod, FourierOrder: weeklyOrder, PriorScale: m.cfg.SeasonalityPriorScale})
	}
	if enabled(m.cfg.DailySeasonality, 2*day, day) {
		out = append(out, Seasonality{Name: "daily", PeriodDays: dailyPeriod, FourierOrder: dailyOrder, PriorScale: m.cfg.SeasonalityPriorScale})
	}
	return out
}

// FutureDates returns periods timestamps spaced one day apart, starting one
// day after the last fitted observation.
func (m *Model) FutureDates(periods int) ([]time.Time, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	if periods < 0 {
		return nil, errors.Errorf("negative forecast horizon %d", periods)
	}

	dates := make([]time.Time, 0, periods)
	for i := 1; i <= periods; i++ {
		dates = append(dates, m.last.AddDate(0, 0, i))
	}
	return dates, nil
}

func (m *Model) Predict(ds []time.Time) ([]Prediction, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	nTrend := m.trendColumns()
	beta := m.beta.RawVector().Data

	out := make([]Prediction, len(ds))
	buf := make([]float64, 0, m.columns())
	for i, d := range ds {
		buf = m.row(d, buf)

		var trend, seasonal float64
		for j, v := range buf {
			if j < nTrend {
				trend += v * beta[j]
			} else {
				seasonal += v * beta[j]
			}
		}
		trend *= m.yScale
		seasonal *= m.yScale

		out[i] = Prediction{
			Date:     d,
			Yhat:     trend + seasonal,
			Trend:    trend,
			Seasonal: seasonal,
		}
	}
	return out, nil
}

// Interval returns the bounds around p.Yhat that cover IntervalWidth of the
// residual distribution seen during Fit.
func (m *Model) Interval(p Prediction) (lower, upper float64, err error) {
	if !m.fitted {
		return 0, 0, ErrNotFitted
	}
	z := distuv.UnitNormal.Quantile(0.5 + m.cfg.IntervalWidth/2)
	return p.Yhat - z*m.sigma, p.Yhat + z*m.sigma, nil
}
