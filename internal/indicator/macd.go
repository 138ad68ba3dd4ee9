package indicator

import (
	"math"

	"github.com/quantforge-lab/freqgen/internal/types"
	"github.com/quantforge-lab/freqgen/pkg/dataframe"
	"github.com/quantforge-lab/freqgen/pkg/errors"
)

// MACD represents the Moving Average Convergence Divergence indicator.
type MACD struct {
	fastPeriod   int
	slowPeriod   int
	signalPeriod int
}

// NewMACD creates a new MACD indicator with default configuration.
func NewMACD() Indicator {
	return &MACD{
		fastPeriod:   12,
		slowPeriod:   26,
		signalPeriod: 9,
	}
}

// Name returns the name of the indicator.
func (m *MACD) Name() types.IndicatorType {
	return types.IndicatorTypeMACD
}

// Config configures the MACD indicator. Expected parameters:
// fastPeriod (int), slowPeriod (int), signalPeriod (int).
func (m *MACD) Config(params ...any) error {
	if len(params) != 3 {
		return errors.New(errors.ErrCodeMissingParameter,
			"Config expects 3 parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int)")
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

	m.fastPeriod = periods[0]
	m.slowPeriod = periods[1]
	m.signalPeriod = periods[2]

	return nil
}

// Populate appends the macd, macdsignal and macdhist columns. The MACD line
// is the fast EMA minus the slow EMA of close; the signal line is an EMA of
// the MACD line; the histogram is their difference.
func (m *MACD) Populate(df *dataframe.DataFrame) error {
	closes := df.Closes()

	fast := ema(closes, m.fastPeriod)
	slow := ema(closes, m.slowPeriod)

	macdLine := nanSeries(len(closes))
	for i := range closes {
		if !math.IsNaN(fast[i]) && !math.IsNaN(slow[i]) {
			macdLine[i] = fast[i] - slow[i]
		}
	}

	signalLine := ema(macdLine, m.signalPeriod)

	hist := nanSeries(len(closes))
	for i := range closes {
		if !math.IsNaN(macdLine[i]) && !math.IsNaN(signalLine[i]) {
			hist[i] = macdLine[i] - signalLine[i]
		}
	}

	if err := df.AddColumn(types.ColumnMACD, macdLine); err != nil {
		return err
	}

	if err := df.AddColumn(types.ColumnMACDSignal, signalLine); err != nil {
		return err
	}

	return df.AddColumn(types.ColumnMACDHist, hist)
}
