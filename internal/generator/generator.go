// Package generator renders freqtrade strategy source files from a
// generation spec.
//
// The renderer is a structured builder: each generated function iterates an
// ordered list of (enabled, render) sections and appends only the enabled
// ones, so block order is fixed by construction and rendering the same spec
// twice yields byte-identical output.
package generator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/quantforge-lab/freqgen/pkg/errors"
	"github.com/quantforge-lab/freqgen/pkg/spec"
)

// section is one optional block of a generated function.
type section struct {
	enabled bool
	render  func(b *strings.Builder)
}

// Render emits a complete freqtrade strategy source for the given spec.
// An enabled block with missing or malformed parameters aborts rendering
// with an error naming the offending flag and parameter; config scalars are
// substituted verbatim with no range checks.
func Render(s *spec.Spec) (string, error) {
	if err := s.Validate(); err != nil {
		return "", errors.Wrap(errors.ErrCodeGenerationFailed, "cannot render strategy", err)
	}

	var b strings.Builder

	writeHeader(&b, s)
	writeIndicators(&b, s)
	writeEntryTrend(&b, s)
	writeExitTrend(&b, s)

	return b.String(), nil
}

func writeHeader(b *strings.Builder, s *spec.Spec) {
	b.WriteString("import talib.abstract as ta\n")
	b.WriteString("import pandas as pd\n")
	b.WriteString("from functools import reduce\n")
	b.WriteString("from pandas import DataFrame\n")
	b.WriteString("from freqtrade.strategy import IStrategy\n")
	b.WriteString("\n")

	fmt.Fprintf(b, "class %s(IStrategy):\n", s.Name)
	b.WriteString("    INTERFACE_VERSION: int = 3\n\n")

	b.WriteString("    minimal_roi = {\n")
	fmt.Fprintf(b, "        \"60\": %s,\n", num(s.Config.MinimalROI.After60))
	fmt.Fprintf(b, "        \"30\": %s,\n", num(s.Config.MinimalROI.After30))
	fmt.Fprintf(b, "        \"0\": %s\n", num(s.Config.MinimalROI.After0))
	b.WriteString("    }\n\n")

	fmt.Fprintf(b, "    stoploss = %s\n\n", num(s.Config.Stoploss))

	fmt.Fprintf(b, "    trailing_stop = %s\n", pyBool(s.Config.TrailingStop))
	fmt.Fprintf(b, "    trailing_stop_positive = %s\n", num(s.Config.TrailingStopPositive.TakeOr(0.02)))
	fmt.Fprintf(b, "    trailing_stop_positive_offset = %s\n", num(s.Config.TrailingStopOffset.TakeOr(0.01)))
	b.WriteString("    trailing_only_offset_is_reached = True\n\n")

	fmt.Fprintf(b, "    timeframe = '%s'\n\n", s.Config.Timeframe)

	fmt.Fprintf(b, "    startup_candle_count: int = %d\n\n", s.Config.StartupCandleCount)

	b.WriteString("    def informative_pairs(self):\n")
	b.WriteString("        return []\n")
}

func writeIndicators(b *strings.Builder, s *spec.Spec) {
	b.WriteString("\n    def populate_indicators(self, dataframe: DataFrame, metadata: dict) -> DataFrame:\n")

	sections := []section{
		{s.Indicators.UseRSI, func(b *strings.Builder) {
			fmt.Fprintf(b, "        dataframe['rsi'] = ta.RSI(dataframe, period=%d)\n", s.Indicators.RSIPeriod)
		}},
		{s.Indicators.UseMACD, func(b *strings.Builder) {
			fmt.Fprintf(b, "        macd = ta.MACD(dataframe, fastperiod=%d, slowperiod=%d, signalperiod=%d)\n",
				s.Indicators.MACDFast, s.Indicators.MACDSlow, s.Indicators.MACDSignal)
			b.WriteString("        dataframe['macd'] = macd['macd']\n")
			b.WriteString("        dataframe['macdsignal'] = macd['macdsignal']\n")
			b.WriteString("        dataframe['macdhist'] = macd['macdhist']\n")
		}},
		{s.Indicators.UseEMA, func(b *strings.Builder) {
			fmt.Fprintf(b, "        dataframe['ema_fast'] = ta.EMA(dataframe, timeperiod=%d)\n", s.Indicators.EMAFast)
			fmt.Fprintf(b, "        dataframe['ema_slow'] = ta.EMA(dataframe, timeperiod=%d)\n", s.Indicators.EMASlow)
		}},
		{s.Indicators.UseBB, func(b *strings.Builder) {
			fmt.Fprintf(b, "        bollinger = ta.BBANDS(dataframe, timeperiod=%d, nbdevup=2, nbdevdn=2)\n", s.Indicators.BBPeriod)
			b.WriteString("        dataframe['bb_upper'] = bollinger['upperband']\n")
			b.WriteString("        dataframe['bb_middle'] = bollinger['middleband']\n")
			b.WriteString("        dataframe['bb_lower'] = bollinger['lowerband']\n")
			b.WriteString("        dataframe['bb_percent'] = (dataframe['close'] - dataframe['bb_lower']) / (dataframe['bb_upper'] - dataframe['bb_lower'])\n")
		}},
		{s.Indicators.UseStochastic, func(b *strings.Builder) {
			fmt.Fprintf(b, "        stochastic = ta.STOCH(dataframe, fastk_period=%d, slowk_period=%d, slowd_period=%d)\n",
				s.Indicators.StochasticPeriod, s.Indicators.StochasticSmoothK, s.Indicators.StochasticSmoothD)
			b.WriteString("        dataframe['stoch_k'] = stochastic['slowk']\n")
			b.WriteString("        dataframe['stoch_d'] = stochastic['slowd']\n")
		}},
		{s.Indicators.UseADX, func(b *strings.Builder) {
			fmt.Fprintf(b, "        dataframe['adx'] = ta.ADX(dataframe, timeperiod=%d)\n", s.Indicators.ADXPeriod)
		}},
	}

	writeSections(b, sections)

	b.WriteString("\n        return dataframe\n")
}

func writeEntryTrend(b *strings.Builder, s *spec.Spec) {
	b.WriteString("\n    def populate_entry_trend(self, dataframe: DataFrame, metadata: dict) -> DataFrame:\n")
	b.WriteString("        conditions = []\n")

	sections := []section{
		{s.Entry.RSI, func(b *strings.Builder) {
			fmt.Fprintf(b, "        conditions.append(dataframe['rsi'] < %s)\n", num(s.Entry.RSIOversold))
		}},
		{s.Entry.MACD, func(b *strings.Builder) {
			b.WriteString("        conditions.append((dataframe['macd'] > dataframe['macdsignal']) | (dataframe['macdhist'] > 0))\n")
		}},
		{s.Entry.EMA, func(b *strings.Builder) {
			b.WriteString("        conditions.append(dataframe['ema_fast'] > dataframe['ema_slow'])\n")
		}},
		{s.Entry.BB, func(b *strings.Builder) {
			b.WriteString("        conditions.append(dataframe['bb_percent'] < 0.2)\n")
		}},
		{s.Entry.Stochastic, func(b *strings.Builder) {
			fmt.Fprintf(b, "        conditions.append(dataframe['stoch_k'] < %s)\n", num(s.Entry.StochasticOversold))
		}},
		{s.Entry.ADX, func(b *strings.Builder) {
			fmt.Fprintf(b, "        conditions.append(dataframe['adx'] > %s)\n", num(s.Entry.ADXThreshold))
		}},
	}

	rendered := writeSections(b, sections)

	// With no conditions enabled the assignment is omitted entirely: an
	// empty conjunction produces no signal, not "always enter".
	if rendered {
		b.WriteString("\n        if conditions:\n")
		b.WriteString("            dataframe.loc[\n")
		b.WriteString("                reduce(lambda x, y: x & y, conditions),\n")
		b.WriteString("                'enter_long'\n")
		b.WriteString("            ] = 1\n")
	}

	b.WriteString("\n        return dataframe\n")
}

func writeExitTrend(b *strings.Builder, s *spec.Spec) {
	b.WriteString("\n    def populate_exit_trend(self, dataframe: DataFrame, metadata: dict) -> DataFrame:\n")

	sections := []section{
		{s.Exit.RSI, func(b *strings.Builder) {
			b.WriteString("        dataframe.loc[\n")
			fmt.Fprintf(b, "            (dataframe['rsi'] > %s),\n", num(s.Exit.RSIOverbought))
			b.WriteString("            'exit_long'\n")
			b.WriteString("        ] = 1\n")
		}},
		{s.Exit.Stochastic, func(b *strings.Builder) {
			b.WriteString("        dataframe.loc[\n")
			fmt.Fprintf(b, "            (dataframe['stoch_k'] > %s),\n", num(s.Exit.StochasticOverbought))
			b.WriteString("            'exit_long'\n")
			b.WriteString("        ] = 1\n")
		}},
	}

	writeSections(b, sections)

	b.WriteString("\n        return dataframe\n")
}

// writeSections renders every enabled section in order, separated by blank
// lines, and reports whether any section was rendered.
func writeSections(b *strings.Builder, sections []section) bool {
	rendered := false

	for _, s := range sections {
		if !s.enabled {
			continue
		}

		b.WriteString("\n")
		s.render(b)

		rendered = true
	}

	return rendered
}

// num formats a numeric parameter for literal insertion into the source.
// decimal formatting keeps the shortest exact representation so identical
// specs always render identical text.
func num(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func pyBool(v bool) string {
	if v {
		return "True"
	}

	return "False"
}
