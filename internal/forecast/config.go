package forecast

// Toggle controls whether a built-in seasonality is included.
type Toggle int

const (
	// Auto enables the seasonality when the history is long and dense
	// enough to estimate it.
	Auto Toggle = iota
	On
	Off
)

type Config struct {
	// NChangepoints potential trend changepoints are placed uniformly over
	// the first ChangepointRange share of the history.
	NChangepoints         int
	ChangepointRange      float64
	ChangepointPriorScale float64

	SeasonalityPriorScale float64
	YearlySeasonality     Toggle
	WeeklySeasonality     Toggle
	DailySeasonality      Toggle

	// IntervalWidth is the coverage of the bounds returned by Model.Interval.
	IntervalWidth float64

	// ObservationNoise is the assumed noise level in scaled units. It sets
	// how strongly the priors pull coefficients towards zero.
	ObservationNoise float64
}

func DefaultConfig() Config {
	return Config{
		NChangepoints:         25,
		ChangepointRange:      0.8,
		ChangepointPriorScale: 0.05,
		SeasonalityPriorScale: 10,
		YearlySeasonality:     Auto,
		WeeklySeasonality:     Auto,
		DailySeasonality:      Auto,
		IntervalWidth:         0.8,
		ObservationNoise:      0.05,
	}
}

// Seasonality is a periodic component modelled by a Fourier series.
type Seasonality struct {
	Name         string
	PeriodDays   float64
	FourierOrder int
	PriorScale   float64
}

const (
	trendPriorScale = 5.0

	yearlyPeriod = 365.25
	weeklyPeriod = 7.0
	dailyPeriod  = 1.0

	yearlyOrder = 10
	weeklyOrder = 3
	dailyOrder  = 4
)
