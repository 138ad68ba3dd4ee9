package indicator

import (
	"github.com/quantforge-lab/freqgen/internal/types"
	"github.com/quantforge-lab/freqgen/pkg/dataframe"
	"github.com/quantforge-lab/freqgen/pkg/errors"
)

// RSI represents the Relative Strength Index indicator.
type RSI struct {
	period int
}

// NewRSI creates a new RSI indicator with default configuration.
func NewRSI() Indicator {
	return &RSI{
		period: 14, // Default period
	}
}

// Name returns the name of the indicator.
func (r *RSI) Name() types.IndicatorType {
	return types.IndicatorTypeRSI
}

// Config configures the RSI indicator. Expected parameters: period (int).
func (r *RSI) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 1 parameter: period (int)")
	}

	period, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for period parameter, expected int")
	}

	if period <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	r.period = period

	return nil
}

// Populate appends the rsi column computed with Wilder's smoothing method.
// The first period rows hold NaN.
func (r *RSI) Populate(df *dataframe.DataFrame) error {
	closes := df.Closes()
	out := nanSeries(len(closes))

	if len(closes) > r.period {
		gains := make([]float64, len(closes))
		losses := make([]float64, len(closes))

		for i := 1; i < len(closes); i++ {
			change := closes[i] - closes[i-1]
			if change > 0 {
				gains[i] = change
			} else {
				losses[i] = -change
			}
		}

		// First average over the initial period of changes
		avgGain := 0.0
		avgLoss := 0.0

		for i := 1; i <= r.period; i++ {
			avgGain += gains[i]
			avgLoss += losses[i]
		}

		avgGain /= float64(r.period)
		avgLoss /= float64(r.period)
		out[r.period] = rsiValue(avgGain, avgLoss)

		// Subsequent averages using Wilder's smoothing method
		for i := r.period + 1; i < len(closes); i++ {
			avgGain = (avgGain*float64(r.period-1) + gains[i]) / float64(r.period)
			avgLoss = (avgLoss*float64(r.period-1) + losses[i]) / float64(r.period)
			out[i] = rsiValue(avgGain, avgLoss)
		}
	}

	return df.AddColumn(types.ColumnRSI, out)
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100 // Perfect uptrend
	}

	rs := avgGain / avgLoss

	return 100 - (100 / (1 + rs))
}
