// Package preset ships ready-made generation specs for common strategy
// shapes.
package preset

import (
	"sort"

	optional "github.com/moznion/go-optional"

	"github.com/quantforge-lab/freqgen/pkg/errors"
	"github.com/quantforge-lab/freqgen/pkg/spec"
)

// Preset is a named, described, ready-to-render generation spec.
type Preset struct {
	Name        string
	Description string
	Spec        spec.Spec
}

var presets = map[string]Preset{
	"rsi-reversal": {
		Name:        "rsi-reversal",
		Description: "Buy RSI oversold on 4h candles, rely on ROI and stoploss to exit",
		Spec: spec.Spec{
			Name: "RSIReversal",
			Config: spec.Config{
				MinimalROI:         spec.ROISchedule{After60: 0.05, After30: 0.03, After0: 0.01},
				Stoploss:           -0.10,
				TrailingStop:       false,
				Timeframe:          "4h",
				StartupCandleCount: 200,
			},
			Indicators: spec.Indicators{UseRSI: true, RSIPeriod: 14},
			Entry:      spec.EntryConditions{RSI: true, RSIOversold: 30},
		},
	},
	"ema-trend": {
		Name:        "ema-trend",
		Description: "EMA 9/21 trend with MACD confirmation and ADX strength filter",
		Spec: spec.Spec{
			Name: "EMATrend",
			Config: spec.Config{
				MinimalROI:           spec.ROISchedule{After60: 0.04, After30: 0.06, After0: 0.08},
				Stoploss:             -0.08,
				TrailingStop:         true,
				TrailingStopPositive: optional.Some(0.02),
				TrailingStopOffset:   optional.Some(0.03),
				Timeframe:            "1h",
				StartupCandleCount:   100,
			},
			Indicators: spec.Indicators{
				UseRSI: true, RSIPeriod: 14,
				UseMACD: true, MACDFast: 12, MACDSlow: 26, MACDSignal: 9,
				UseEMA: true, EMAFast: 9, EMASlow: 21,
				UseADX: true, ADXPeriod: 14,
			},
			Entry: spec.EntryConditions{
				MACD: true,
				EMA:  true,
				ADX:  true, ADXThreshold: 25,
			},
			Exit: spec.ExitConditions{RSI: true, RSIOverbought: 70},
		},
	},
	"bb-reversion": {
		Name:        "bb-reversion",
		Description: "Bollinger lower-band reversion with RSI filter and stochastic exit",
		Spec: spec.Spec{
			Name: "BollingerReversion",
			Config: spec.Config{
				MinimalROI:         spec.ROISchedule{After60: 0.02, After30: 0.03, After0: 0.04},
				Stoploss:           -0.05,
				TrailingStop:       false,
				Timeframe:          "15m",
				StartupCandleCount: 50,
			},
			Indicators: spec.Indicators{
				UseRSI: true, RSIPeriod: 14,
				UseBB: true, BBPeriod: 20,
				UseStochastic: true, StochasticPeriod: 14, StochasticSmoothK: 3, StochasticSmoothD: 3,
			},
			Entry: spec.EntryConditions{
				RSI: true, RSIOversold: 35,
				BB: true,
			},
			Exit: spec.ExitConditions{Stochastic: true, StochasticOverbought: 80},
		},
	},
}

// Get returns the named preset.
func Get(name string) (Preset, error) {
	p, exists := presets[name]
	if !exists {
		return Preset{}, errors.Newf(errors.ErrCodeUnknownPreset, "unknown preset %q", name)
	}

	return p, nil
}

// List returns all presets sorted by name.
func List() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
