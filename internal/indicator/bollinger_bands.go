package indicator

import (
	"math"

	"github.com/quantforge-lab/freqgen/internal/types"
	"github.com/quantforge-lab/freqgen/pkg/dataframe"
	"github.com/quantforge-lab/freqgen/pkg/errors"
)

// bbStdDevs is the band width in standard deviations. Fixed at 2, matching
// the generated strategies.
const bbStdDevs = 2.0

// BollingerBands represents the Bollinger Bands indicator.
type BollingerBands struct {
	period int
}

// NewBollingerBands creates a new Bollinger Bands indicator with default configuration.
func NewBollingerBands() Indicator {
	return &BollingerBands{
		period: 20,
	}
}

// Name returns the name of the indicator.
func (b *BollingerBands) Name() types.IndicatorType {
	return types.IndicatorTypeBollingerBands
}

// Config configures the Bollinger Bands indicator. Expected parameters: period (int).
func (b *BollingerBands) Config(params ...any) error {
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

	b.period = period

	return nil
}

// Populate appends the bb_upper, bb_middle, bb_lower and bb_percent columns.
// bb_percent locates close within the band: 0 at the lower band, 1 at the
// upper band.
func (b *BollingerBands) Populate(df *dataframe.DataFrame) error {
	closes := df.Closes()

	middle := sma(closes, b.period)
	deviation := stddev(closes, middle, b.period)

	upper := nanSeries(len(closes))
	lower := nanSeries(len(closes))
	percent := nanSeries(len(closes))

	for i := range closes {
		if math.IsNaN(middle[i]) || math.IsNaN(deviation[i]) {
			continue
		}

		upper[i] = middle[i] + bbStdDevs*deviation[i]
		lower[i] = middle[i] - bbStdDevs*deviation[i]

		if width := upper[i] - lower[i]; width != 0 {
			percent[i] = (closes[i] - lower[i]) / width
		}
	}

	if err := df.AddColumn(types.ColumnBBUpper, upper); err != nil {
		return err
	}

	if err := df.AddColumn(types.ColumnBBMiddle, middle); err != nil {
		return err
	}

	if err := df.AddColumn(types.ColumnBBLower, lower); err != nil {
		return err
	}

	return df.AddColumn(types.ColumnBBPercent, percent)
}
