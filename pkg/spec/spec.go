// Package spec defines the declarative generation spec that drives both the
// native strategy engine and the freqtrade source generator.
package spec

import (
	optional "github.com/moznion/go-optional"
)

// ROISchedule maps elapsed holding time in minutes to the minimum return at
// which the host takes profit. The three rows match the generated strategy's
// minimal_roi table.
type ROISchedule struct {
	After60 float64 `yaml:"60" json:"60" jsonschema:"title=ROI after 60 minutes,description=Minimum return to exit after 60 minutes"`
	After30 float64 `yaml:"30" json:"30" jsonschema:"title=ROI after 30 minutes,description=Minimum return to exit after 30 minutes"`
	After0  float64 `yaml:"0" json:"0" jsonschema:"title=ROI immediately,description=Minimum return to exit at any time"`
}

// Config holds the strategy-level scalars substituted verbatim into the
// generated class header. No range validation is applied: out-of-domain
// values (e.g. a positive stoploss) pass through unchanged.
type Config struct {
	MinimalROI           ROISchedule              `yaml:"minimal_roi" json:"minimal_roi" jsonschema:"title=Minimal ROI,description=Holding-time to minimum-return exit schedule"`
	Stoploss             float64                  `yaml:"stoploss" json:"stoploss" jsonschema:"title=Stoploss,description=Stop-loss as a signed fraction (e.g. -0.10)"`
	TrailingStop         bool                     `yaml:"trailing_stop" json:"trailing_stop" jsonschema:"title=Trailing Stop,description=Enable trailing stop-loss"`
	TrailingStopPositive optional.Option[float64] `yaml:"trailing_stop_positive" json:"trailing_stop_positive,omitempty" jsonschema:"title=Trailing Stop Positive,description=Trailing stop distance once in profit"`
	TrailingStopOffset   optional.Option[float64] `yaml:"trailing_stop_offset" json:"trailing_stop_offset,omitempty" jsonschema:"title=Trailing Stop Offset,description=Profit offset at which trailing activates"`
	Timeframe            string                   `yaml:"timeframe" json:"timeframe" jsonschema:"title=Timeframe,description=Candle timeframe label (e.g. 5m or 4h),required" validate:"required"`
	StartupCandleCount   int                      `yaml:"startup_candle_count" json:"startup_candle_count" jsonschema:"title=Startup Candle Count,description=Warm-up candles the host must provide before signals are trusted" validate:"gte=0"`
}

// Indicators selects which indicator blocks are computed and their
// parameters. A parameter is required whenever its flag is set.
type Indicators struct {
	UseRSI    bool `yaml:"use_rsi" json:"use_rsi" jsonschema:"title=Use RSI"`
	RSIPeriod int  `yaml:"rsi_period" json:"rsi_period,omitempty" jsonschema:"title=RSI Period"`

	UseMACD    bool `yaml:"use_macd" json:"use_macd" jsonschema:"title=Use MACD"`
	MACDFast   int  `yaml:"macd_fast" json:"macd_fast,omitempty" jsonschema:"title=MACD Fast Period"`
	MACDSlow   int  `yaml:"macd_slow" json:"macd_slow,omitempty" jsonschema:"title=MACD Slow Period"`
	MACDSignal int  `yaml:"macd_signal" json:"macd_signal,omitempty" jsonschema:"title=MACD Signal Period"`

	UseEMA  bool `yaml:"use_ema" json:"use_ema" jsonschema:"title=Use EMA Pair"`
	EMAFast int  `yaml:"ema_fast" json:"ema_fast,omitempty" jsonschema:"title=Fast EMA Period"`
	EMASlow int  `yaml:"ema_slow" json:"ema_slow,omitempty" jsonschema:"title=Slow EMA Period"`

	UseBB    bool `yaml:"use_bb" json:"use_bb" jsonschema:"title=Use Bollinger Bands"`
	BBPeriod int  `yaml:"bb_period" json:"bb_period,omitempty" jsonschema:"title=Bollinger Period"`

	UseStochastic     bool `yaml:"use_stochastic" json:"use_stochastic" jsonschema:"title=Use Stochastic"`
	StochasticPeriod  int  `yaml:"stochastic_period" json:"stochastic_period,omitempty" jsonschema:"title=Stochastic Fast-K Period"`
	StochasticSmoothK int  `yaml:"stochastic_smooth_k" json:"stochastic_smooth_k,omitempty" jsonschema:"title=Stochastic Slow-K Smoothing"`
	StochasticSmoothD int  `yaml:"stochastic_smooth_d" json:"stochastic_smooth_d,omitempty" jsonschema:"title=Stochastic Slow-D Smoothing"`

	UseADX    bool `yaml:"use_adx" json:"use_adx" jsonschema:"title=Use ADX"`
	ADXPeriod int  `yaml:"adx_period" json:"adx_period,omitempty" jsonschema:"title=ADX Period"`
}

// EntryConditions selects which predicates join the entry conjunction. All
// enabled conditions must agree before enter_long is set.
type EntryConditions struct {
	RSI         bool    `yaml:"entry_condition_rsi" json:"entry_condition_rsi" jsonschema:"title=RSI Oversold Entry"`
	RSIOversold float64 `yaml:"rsi_oversold" json:"rsi_oversold,omitempty" jsonschema:"title=RSI Oversold Threshold"`

	MACD bool `yaml:"entry_condition_macd" json:"entry_condition_macd" jsonschema:"title=MACD Bullish Entry"`
	EMA  bool `yaml:"entry_condition_ema" json:"entry_condition_ema" jsonschema:"title=EMA Trend Entry"`
	BB   bool `yaml:"entry_condition_bb" json:"entry_condition_bb" jsonschema:"title=Bollinger Reversion Entry"`

	Stochastic         bool    `yaml:"entry_condition_stochastic" json:"entry_condition_stochastic" jsonschema:"title=Stochastic Oversold Entry"`
	StochasticOversold float64 `yaml:"stochastic_oversold" json:"stochastic_oversold,omitempty" jsonschema:"title=Stochastic Oversold Threshold"`

	ADX          bool    `yaml:"entry_condition_adx" json:"entry_condition_adx" jsonschema:"title=ADX Strength Entry"`
	ADXThreshold float64 `yaml:"adx_threshold" json:"adx_threshold,omitempty" jsonschema:"title=ADX Threshold"`
}

// ExitConditions selects independent exit predicates. Any enabled condition
// firing on a row sets exit_long.
type ExitConditions struct {
	RSI           bool    `yaml:"exit_condition_rsi" json:"exit_condition_rsi" jsonschema:"title=RSI Overbought Exit"`
	RSIOverbought float64 `yaml:"rsi_overbought" json:"rsi_overbought,omitempty" jsonschema:"title=RSI Overbought Threshold"`

	Stochastic           bool    `yaml:"exit_condition_stochastic" json:"exit_condition_stochastic" jsonschema:"title=Stochastic Overbought Exit"`
	StochasticOverbought float64 `yaml:"stochastic_overbought" json:"stochastic_overbought,omitempty" jsonschema:"title=Stochastic Overbought Threshold"`
}

// Spec is a complete generation spec: one Spec produces one strategy.
type Spec struct {
	Name       string          `yaml:"name" json:"name" jsonschema:"title=Strategy Name,description=Class name of the generated strategy,required" validate:"required"`
	Config     Config          `yaml:"config" json:"config" jsonschema:"title=Strategy Config"`
	Indicators Indicators      `yaml:"indicators" json:"indicators" jsonschema:"title=Indicator Blocks"`
	Entry      EntryConditions `yaml:"entry" json:"entry" jsonschema:"title=Entry Conditions"`
	Exit       ExitConditions  `yaml:"exit" json:"exit" jsonschema:"title=Exit Conditions"`
}

// UnmarshalYAML implements custom unmarshaling for Config so that absent
// trailing-stop fields become None instead of Some(0).
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plain struct {
		MinimalROI           ROISchedule `yaml:"minimal_roi"`
		Stoploss             float64     `yaml:"stoploss"`
		TrailingStop         bool        `yaml:"trailing_stop"`
		TrailingStopPositive *float64    `yaml:"trailing_stop_positive"`
		TrailingStopOffset   *float64    `yaml:"trailing_stop_offset"`
		Timeframe            string      `yaml:"timeframe"`
		StartupCandleCount   int         `yaml:"startup_candle_count"`
	}

	var config plain
	if err := unmarshal(&config); err != nil {
		return err
	}

	c.MinimalROI = config.MinimalROI
	c.Stoploss = config.Stoploss
	c.TrailingStop = config.TrailingStop
	c.Timeframe = config.Timeframe
	c.StartupCandleCount = config.StartupCandleCount

	if config.TrailingStopPositive != nil {
		c.TrailingStopPositive = optional.Some(*config.TrailingStopPositive)
	}

	if config.TrailingStopOffset != nil {
		c.TrailingStopOffset = optional.Some(*config.TrailingStopOffset)
	}

	return nil
}
