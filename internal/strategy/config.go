package strategy

import "github.com/quantforge-lab/freqgen/pkg/spec"

// ROIEntry is one row of the return-on-investment exit schedule: after
// AfterMinutes of holding, the host exits once return reaches MinReturn.
type ROIEntry struct {
	AfterMinutes int
	MinReturn    float64
}

// Config is the fixed scalar configuration of a strategy instance. The host
// reads it once at load time; it never changes afterwards.
type Config struct {
	MinimalROI           []ROIEntry
	Stoploss             float64
	TrailingStop         bool
	TrailingStopPositive float64
	TrailingStopOffset   float64
	Timeframe            string
	StartupCandleCount   int
}

// Defaults when trailing stop is disabled and no explicit values are given.
// The host ignores them while TrailingStop is false.
const (
	defaultTrailingStopPositive = 0.02
	defaultTrailingStopOffset   = 0.01
)

// configFromSpec flattens the generation-spec config into the runtime
// config, resolving the optional trailing fields.
func configFromSpec(c spec.Config) Config {
	return Config{
		MinimalROI: []ROIEntry{
			{AfterMinutes: 60, MinReturn: c.MinimalROI.After60},
			{AfterMinutes: 30, MinReturn: c.MinimalROI.After30},
			{AfterMinutes: 0, MinReturn: c.MinimalROI.After0},
		},
		Stoploss:             c.Stoploss,
		TrailingStop:         c.TrailingStop,
		TrailingStopPositive: c.TrailingStopPositive.TakeOr(defaultTrailingStopPositive),
		TrailingStopOffset:   c.TrailingStopOffset.TakeOr(defaultTrailingStopOffset),
		Timeframe:            c.Timeframe,
		StartupCandleCount:   c.StartupCandleCount,
	}
}
