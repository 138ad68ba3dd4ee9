package types

import "time"

// MarketData is a single OHLCV candle supplied by the host.
type MarketData struct {
	Time   time.Time `csv:"time" yaml:"time"`
	Open   float64   `csv:"open" yaml:"open"`
	High   float64   `csv:"high" yaml:"high"`
	Low    float64   `csv:"low" yaml:"low"`
	Close  float64   `csv:"close" yaml:"close"`
	Volume float64   `csv:"volume" yaml:"volume"`
}

// Metadata carries per-run context from the host (pair identifier etc.).
// It is opaque to the strategy and passed through unmodified.
type Metadata struct {
	Pair string
}

// InformativePair declares a supplementary (pair, timeframe) data request.
type InformativePair struct {
	Pair      string
	Timeframe string
}
