package types

type IndicatorType string

const (
	IndicatorTypeRSI                  IndicatorType = "rsi"
	IndicatorTypeMACD                 IndicatorType = "macd"
	IndicatorTypeEMA                  IndicatorType = "ema"
	IndicatorTypeBollingerBands       IndicatorType = "bollinger_bands"
	IndicatorTypeStochasticOscillator IndicatorType = "stochastic_oscillator"
	IndicatorTypeADX                  IndicatorType = "adx"
)

// Derived column names. Kept identical to the names the freqtrade host sees
// in generated strategies so native and generated runs read the same table.
const (
	ColumnRSI        = "rsi"
	ColumnMACD       = "macd"
	ColumnMACDSignal = "macdsignal"
	ColumnMACDHist   = "macdhist"
	ColumnEMAFast    = "ema_fast"
	ColumnEMASlow    = "ema_slow"
	ColumnBBUpper    = "bb_upper"
	ColumnBBMiddle   = "bb_middle"
	ColumnBBLower    = "bb_lower"
	ColumnBBPercent  = "bb_percent"
	ColumnStochK     = "stoch_k"
	ColumnStochD     = "stoch_d"
	ColumnADX        = "adx"
)
