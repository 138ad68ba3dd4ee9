package indicator

import (
	"github.com/quantforge-lab/freqgen/internal/types"
	"github.com/quantforge-lab/freqgen/pkg/dataframe"
	"github.com/quantforge-lab/freqgen/pkg/errors"
)

// EMAPair computes a fast and a slow exponential moving average over close
// prices, the pair used by trend-following entry conditions.
type EMAPair struct {
	fastPeriod int
	slowPeriod int
}

// NewEMAPair creates a new EMA pair indicator with default configuration.
func NewEMAPair() Indicator {
	return &EMAPair{
		fastPeriod: 9,
		slowPeriod: 21,
	}
}

// Name returns the name of the indicator.
func (e *EMAPair) Name() types.IndicatorType {
	return types.IndicatorTypeEMA
}

// Config configures the EMA pair. Expected parameters: fastPeriod (int), slowPeriod (int).
func (e *EMAPair) Config(params ...any) error {
	if len(params) != 2 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 2 parameters: fastPeriod (int), slowPeriod (int)")
	}

	fast, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for fastPeriod parameter, expected int")
	}

	slow, ok := params[1].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for slowPeriod parameter, expected int")
	}

	if fast <= 0 || slow <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "periods must be positive integers, got fast=%d slow=%d", fast, slow)
	}

	e.fastPeriod = fast
	e.slowPeriod = slow

	return nil
}

// Populate appends the ema_fast and ema_slow columns.
func (e *EMAPair) Populate(df *dataframe.DataFrame) error {
	closes := df.Closes()

	if err := df.AddColumn(types.ColumnEMAFast, ema(closes, e.fastPeriod)); err != nil {
		return err
	}

	return df.AddColumn(types.ColumnEMASlow, ema(closes, e.slowPeriod))
}
