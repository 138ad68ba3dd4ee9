// Package strategy implements the native strategy engine: indicator
// population and entry/exit signal population over an OHLCV dataframe,
// mirroring the semantics of the generated freqtrade strategies.
package strategy

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quantforge-lab/freqgen/internal/indicator"
	"github.com/quantforge-lab/freqgen/internal/logger"
	"github.com/quantforge-lab/freqgen/internal/types"
	"github.com/quantforge-lab/freqgen/pkg/dataframe"
	"github.com/quantforge-lab/freqgen/pkg/errors"
	"github.com/quantforge-lab/freqgen/pkg/spec"
)

// Definition is a loaded strategy instance: a fixed config plus configured
// indicators and entry/exit conditions. Instances are single-owner; the
// host invokes the populate methods once per data batch.
type Definition struct {
	id         uuid.UUID
	name       string
	config     Config
	indicators []indicator.Indicator
	entries    []Condition
	exits      []Condition
	log        *logger.Logger
}

// FromSpec builds a strategy definition from a validated generation spec.
// Indicators and conditions are assembled in the fixed priority order
// RSI, MACD, EMA, Bollinger, Stochastic, ADX.
func FromSpec(s *spec.Spec, log *logger.Logger) (*Definition, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	def := &Definition{
		id:     uuid.New(),
		name:   s.Name,
		config: configFromSpec(s.Config),
		log:    log,
	}

	type block struct {
		enabled bool
		kind    types.IndicatorType
		params  []any
	}

	blocks := []block{
		{s.Indicators.UseRSI, types.IndicatorTypeRSI,
			[]any{s.Indicators.RSIPeriod}},
		{s.Indicators.UseMACD, types.IndicatorTypeMACD,
			[]any{s.Indicators.MACDFast, s.Indicators.MACDSlow, s.Indicators.MACDSignal}},
		{s.Indicators.UseEMA, types.IndicatorTypeEMA,
			[]any{s.Indicators.EMAFast, s.Indicators.EMASlow}},
		{s.Indicators.UseBB, types.IndicatorTypeBollingerBands,
			[]any{s.Indicators.BBPeriod}},
		{s.Indicators.UseStochastic, types.IndicatorTypeStochasticOscillator,
			[]any{s.Indicators.StochasticPeriod, s.Indicators.StochasticSmoothK, s.Indicators.StochasticSmoothD}},
		{s.Indicators.UseADX, types.IndicatorTypeADX,
			[]any{s.Indicators.ADXPeriod}},
	}

	// The registry is per-definition: instances are configured below and
	// must not be shared across strategies.
	registry := indicator.NewDefaultRegistry()

	for _, b := range blocks {
		if !b.enabled {
			continue
		}

		ind, err := registry.GetIndicator(b.kind)
		if err != nil {
			return nil, err
		}

		if err := ind.Config(b.params...); err != nil {
			return nil, err
		}

		def.indicators = append(def.indicators, ind)
	}

	entries := []struct {
		enabled   bool
		condition Condition
	}{
		{s.Entry.RSI, rsiOversold{threshold: s.Entry.RSIOversold}},
		{s.Entry.MACD, macdBullish{}},
		{s.Entry.EMA, emaTrend{}},
		{s.Entry.BB, bbReversion{}},
		{s.Entry.Stochastic, stochasticOversold{threshold: s.Entry.StochasticOversold}},
		{s.Entry.ADX, adxStrength{threshold: s.Entry.ADXThreshold}},
	}

	for _, e := range entries {
		if e.enabled {
			def.entries = append(def.entries, e.condition)
		}
	}

	exits := []struct {
		enabled   bool
		condition Condition
	}{
		{s.Exit.RSI, rsiOverbought{threshold: s.Exit.RSIOverbought}},
		{s.Exit.Stochastic, stochasticOverbought{threshold: s.Exit.StochasticOverbought}},
	}

	for _, e := range exits {
		if e.enabled {
			def.exits = append(def.exits, e.condition)
		}
	}

	return def, nil
}

// ID returns the unique identifier of this strategy instance.
func (d *Definition) ID() uuid.UUID {
	return d.id
}

// Name returns the strategy name.
func (d *Definition) Name() string {
	return d.name
}

// Config returns the fixed strategy configuration the host reads at load time.
func (d *Definition) Config() Config {
	return d.config
}

// InformativePairs returns supplementary (pair, timeframe) data requests.
// The strategy uses none; this is a declared extension point.
func (d *Definition) InformativePairs() []types.InformativePair {
	return []types.InformativePair{}
}

// PopulateIndicators appends one column block per configured indicator.
// Existing columns are never mutated; indicator failures propagate to the
// caller unmodified.
func (d *Definition) PopulateIndicators(df *dataframe.DataFrame, meta types.Metadata) error {
	if df == nil || df.Len() == 0 {
		return errors.New(errors.ErrCodeEmptySeries, "cannot populate indicators over an empty series")
	}

	for _, ind := range d.indicators {
		if err := ind.Populate(df); err != nil {
			return err
		}
	}

	d.log.Debug("populated indicators",
		zap.String("strategy", d.name),
		zap.String("pair", meta.Pair),
		zap.Int("rows", df.Len()),
		zap.Int("indicators", len(d.indicators)))

	return nil
}

// PopulateEntryTrend marks enter_long on rows satisfying every enabled
// entry condition. With zero enabled conditions nothing is marked: the
// empty conjunction means no signal, never "always enter".
func (d *Definition) PopulateEntryTrend(df *dataframe.DataFrame, meta types.Metadata) error {
	if len(d.entries) == 0 {
		return nil
	}

	masks := make([]dataframe.Mask, 0, len(d.entries))

	for _, cond := range d.entries {
		mask, err := cond.Mask(df)
		if err != nil {
			return err
		}

		masks = append(masks, mask)
	}

	return df.MarkSignal(types.ColumnEnterLong, dataframe.And(masks...))
}

// PopulateExitTrend marks exit_long independently for each enabled exit
// condition. A row matching any condition is marked; later passes never
// clear earlier marks. This disjunctive behavior is deliberately asymmetric
// with the conjunctive entry path: exits are permissive, entries selective.
func (d *Definition) PopulateExitTrend(df *dataframe.DataFrame, meta types.Metadata) error {
	for _, cond := range d.exits {
		mask, err := cond.Mask(df)
		if err != nil {
			return err
		}

		if err := df.MarkSignal(types.ColumnExitLong, mask); err != nil {
			return err
		}
	}

	return nil
}
