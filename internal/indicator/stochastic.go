package indicator

import (
	"math"

	"github.com/quantforge-lab/freqgen/internal/types"
	"github.com/quantforge-lab/freqgen/pkg/dataframe"
	"github.com/quantforge-lab/freqgen/pkg/errors"
)

// Stochastic represents the slow stochastic oscillator.
type Stochastic struct {
	fastKPeriod int
	smoothK     int
	smoothD     int
}

// NewStochastic creates a new stochastic oscillator with default configuration.
func NewStochastic() Indicator {
	return &Stochastic{
		fastKPeriod: 14,
		smoothK:     3,
		smoothD:     3,
	}
}

// Name returns the name of the indicator.
func (s *Stochastic) Name() types.IndicatorType {
	return types.IndicatorTypeStochasticOscillator
}

// Config configures the stochastic oscillator. Expected parameters:
// fastKPeriod (int), smoothK (int), smoothD (int).
func (s *Stochastic) Config(params ...any) error {
	if len(params) != 3 {
		return errors.New(errors.ErrCodeMissingParameter,
			"Config expects 3 parameters: fastKPeriod (int), smoothK (int), smoothD (int)")
	}

	periods := make([]int, 3)

	for i, p := range params {
		v, ok := p.(int)
		if !ok {
			return errors.New(errors.ErrCodeInvalidType, "invalid type for period parameter, expected int")
		}

		if v <= 0 {
			return errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", v)
		}

		periods[i] = v
	}

	s.fastKPeriod = periods[0]
	s.smoothK = periods[1]
	s.smoothD = periods[2]

	return nil
}

// Populate appends the stoch_k and stoch_d columns. %K locates close within
// the rolling high-low range, smoothed over smoothK rows; %D is a further
// moving average of %K over smoothD rows.
func (s *Stochastic) Populate(df *dataframe.DataFrame) error {
	highs := df.Highs()
	lows := df.Lows()
	closes := df.Closes()

	rawK := nanSeries(len(closes))

	for i := s.fastKPeriod - 1; i < len(closes); i++ {
		highest := math.Inf(-1)
		lowest := math.Inf(1)

		for j := i - s.fastKPeriod + 1; j <= i; j++ {
			highest = math.Max(highest, highs[j])
			lowest = math.Min(lowest, lows[j])
		}

		if r := highest - lowest; r != 0 {
			rawK[i] = 100 * (closes[i] - lowest) / r
		}
	}

	// NaN warm-up rows poison the smoothing windows they fall in, which
	// extends the NaN prefix by smoothK-1 and smoothD-1 rows respectively.
	slowK := sma(rawK, s.smoothK)
	slowD := sma(slowK, s.smoothD)

	if err := df.AddColumn(types.ColumnStochK, slowK); err != nil {
		return err
	}

	return df.AddColumn(types.ColumnStochD, slowD)
}
