package spec

import (
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/quantforge-lab/freqgen/pkg/errors"
)

// blockParam ties a required parameter to the flag that enables it, so
// validation failures can name both.
type blockParam struct {
	flag    string
	param   string
	present bool
}

// Validate checks the spec for generation. Every enabled indicator or
// condition block must carry its required parameters, and every enabled
// condition must be backed by the indicator that computes its columns.
// Config scalars are deliberately not range-checked; they pass through to
// the generated source unchanged.
func (s *Spec) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid spec", err)
	}

	if !isIdentifier(s.Name) {
		return errors.Newf(errors.ErrCodeInvalidParameter,
			"name %q is not a valid strategy class name", s.Name)
	}

	checks := []blockParam{
		{"use_rsi", "rsi_period", !s.Indicators.UseRSI || s.Indicators.RSIPeriod > 0},
		{"use_macd", "macd_fast", !s.Indicators.UseMACD || s.Indicators.MACDFast > 0},
		{"use_macd", "macd_slow", !s.Indicators.UseMACD || s.Indicators.MACDSlow > 0},
		{"use_macd", "macd_signal", !s.Indicators.UseMACD || s.Indicators.MACDSignal > 0},
		{"use_ema", "ema_fast", !s.Indicators.UseEMA || s.Indicators.EMAFast > 0},
		{"use_ema", "ema_slow", !s.Indicators.UseEMA || s.Indicators.EMASlow > 0},
		{"use_bb", "bb_period", !s.Indicators.UseBB || s.Indicators.BBPeriod > 0},
		{"use_stochastic", "stochastic_period", !s.Indicators.UseStochastic || s.Indicators.StochasticPeriod > 0},
		{"use_stochastic", "stochastic_smooth_k", !s.Indicators.UseStochastic || s.Indicators.StochasticSmoothK > 0},
		{"use_stochastic", "stochastic_smooth_d", !s.Indicators.UseStochastic || s.Indicators.StochasticSmoothD > 0},
		{"use_adx", "adx_period", !s.Indicators.UseADX || s.Indicators.ADXPeriod > 0},
		{"entry_condition_rsi", "rsi_oversold", !s.Entry.RSI || s.Entry.RSIOversold > 0},
		{"entry_condition_stochastic", "stochastic_oversold", !s.Entry.Stochastic || s.Entry.StochasticOversold > 0},
		{"entry_condition_adx", "adx_threshold", !s.Entry.ADX || s.Entry.ADXThreshold > 0},
		{"exit_condition_rsi", "rsi_overbought", !s.Exit.RSI || s.Exit.RSIOverbought > 0},
		{"exit_condition_stochastic", "stochastic_overbought", !s.Exit.Stochastic || s.Exit.StochasticOverbought > 0},
	}

	for _, c := range checks {
		if !c.present {
			return errors.Newf(errors.ErrCodeMissingBlockParameter,
				"%s is enabled but %s is missing or not positive", c.flag, c.param)
		}
	}

	// A condition referencing a column nobody computes would fail at runtime
	// in the host; reject it at generation time instead.
	dependencies := []struct {
		condition string
		indicator string
		ok        bool
	}{
		{"entry_condition_rsi", "use_rsi", !s.Entry.RSI || s.Indicators.UseRSI},
		{"entry_condition_macd", "use_macd", !s.Entry.MACD || s.Indicators.UseMACD},
		{"entry_condition_ema", "use_ema", !s.Entry.EMA || s.Indicators.UseEMA},
		{"entry_condition_bb", "use_bb", !s.Entry.BB || s.Indicators.UseBB},
		{"entry_condition_stochastic", "use_stochastic", !s.Entry.Stochastic || s.Indicators.UseStochastic},
		{"entry_condition_adx", "use_adx", !s.Entry.ADX || s.Indicators.UseADX},
		{"exit_condition_rsi", "use_rsi", !s.Exit.RSI || s.Indicators.UseRSI},
		{"exit_condition_stochastic", "use_stochastic", !s.Exit.Stochastic || s.Indicators.UseStochastic},
	}

	for _, d := range dependencies {
		if !d.ok {
			return errors.Newf(errors.ErrCodeMissingBlockParameter,
				"%s is enabled but %s is not set", d.condition, d.indicator)
		}
	}

	if s.Config.TrailingStop {
		if s.Config.TrailingStopPositive.IsNone() {
			return errors.New(errors.ErrCodeMissingBlockParameter,
				"trailing_stop is enabled but trailing_stop_positive is missing")
		}

		if s.Config.TrailingStopOffset.IsNone() {
			return errors.New(errors.ErrCodeMissingBlockParameter,
				"trailing_stop is enabled but trailing_stop_offset is missing")
		}
	}

	return nil
}

// isIdentifier reports whether name is usable as a class name in the
// generated source.
func isIdentifier(name string) bool {
	for i, r := range name {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}

		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return name != ""
}
