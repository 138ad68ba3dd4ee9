package strategy

import (
	"github.com/quantforge-lab/freqgen/internal/types"
	"github.com/quantforge-lab/freqgen/pkg/dataframe"
)

// bbEntryThreshold is the bb_percent level below which price is considered
// near the lower band. Fixed, matching the generated strategies.
const bbEntryThreshold = 0.2

// Condition is a row-wise boolean predicate over indicator columns.
type Condition interface {
	// Name identifies the condition in logs and errors.
	Name() string
	// Mask evaluates the predicate for every row. A row whose inputs are
	// NaN never satisfies the predicate.
	Mask(df *dataframe.DataFrame) (dataframe.Mask, error)
}

// rsiOversold fires while RSI is below the oversold threshold.
type rsiOversold struct {
	threshold float64
}

func (c rsiOversold) Name() string { return "rsi_oversold" }

func (c rsiOversold) Mask(df *dataframe.DataFrame) (dataframe.Mask, error) {
	return df.LessThan(types.ColumnRSI, c.threshold)
}

// macdBullish fires while the MACD line is above its signal line or the
// histogram is positive.
type macdBullish struct{}

func (c macdBullish) Name() string { return "macd_bullish" }

func (c macdBullish) Mask(df *dataframe.DataFrame) (dataframe.Mask, error) {
	aboveSignal, err := df.GreaterThanColumn(types.ColumnMACD, types.ColumnMACDSignal)
	if err != nil {
		return nil, err
	}

	positiveHist, err := df.GreaterThan(types.ColumnMACDHist, 0)
	if err != nil {
		return nil, err
	}

	return dataframe.Or(aboveSignal, positiveHist), nil
}

// emaTrend fires while the fast EMA is above the slow EMA.
type emaTrend struct{}

func (c emaTrend) Name() string { return "ema_trend" }

func (c emaTrend) Mask(df *dataframe.DataFrame) (dataframe.Mask, error) {
	return df.GreaterThanColumn(types.ColumnEMAFast, types.ColumnEMASlow)
}

// bbReversion fires while close sits in the bottom fifth of the Bollinger band.
type bbReversion struct{}

func (c bbReversion) Name() string { return "bb_reversion" }

func (c bbReversion) Mask(df *dataframe.DataFrame) (dataframe.Mask, error) {
	return df.LessThan(types.ColumnBBPercent, bbEntryThreshold)
}

// stochasticOversold fires while slow %K is below the oversold threshold.
type stochasticOversold struct {
	threshold float64
}

func (c stochasticOversold) Name() string { return "stochastic_oversold" }

func (c stochasticOversold) Mask(df *dataframe.DataFrame) (dataframe.Mask, error) {
	return df.LessThan(types.ColumnStochK, c.threshold)
}

// adxStrength fires while ADX is above the trend-strength threshold.
type adxStrength struct {
	threshold float64
}

func (c adxStrength) Name() string { return "adx_strength" }

func (c adxStrength) Mask(df *dataframe.DataFrame) (dataframe.Mask, error) {
	return df.GreaterThan(types.ColumnADX, c.threshold)
}

// rsiOverbought fires while RSI is above the overbought threshold.
type rsiOverbought struct {
	threshold float64
}

func (c rsiOverbought) Name() string { return "rsi_overbought" }

func (c rsiOverbought) Mask(df *dataframe.DataFrame) (dataframe.Mask, error) {
	return df.GreaterThan(types.ColumnRSI, c.threshold)
}

// stochasticOverbought fires while slow %K is above the overbought threshold.
type stochasticOverbought struct {
	threshold float64
}

func (c stochasticOverbought) Name() string { return "stochastic_overbought" }

func (c stochasticOverbought) Mask(df *dataframe.DataFrame) (dataframe.Mask, error) {
	return df.GreaterThan(types.ColumnStochK, c.threshold)
}
