// Package dataframe provides an aligned columnar view over OHLCV candles.
//
// A DataFrame owns an ordered candle series plus named derived columns
// (indicator values) and signal columns. Every derived column has exactly
// one value per candle; rows without a meaningful value hold NaN.
package dataframe

import (
	"math"

	"github.com/quantforge-lab/freqgen/internal/types"
	"github.com/quantforge-lab/freqgen/pkg/errors"
)

// reserved column names backed by the candle series itself.
var reservedColumns = map[string]bool{
	"time":   true,
	"open":   true,
	"high":   true,
	"low":    true,
	"close":  true,
	"volume": true,
}

// DataFrame is an ordered candle series with aligned derived columns.
type DataFrame struct {
	candles []types.MarketData
	order   []string
	columns map[string][]float64
}

// New creates a DataFrame over the given candles. The candle slice is not
// copied; the caller must not mutate it while the frame is in use.
func New(candles []types.MarketData) *DataFrame {
	return &DataFrame{
		candles: candles,
		columns: make(map[string][]float64),
	}
}

// Len returns the number of rows.
func (df *DataFrame) Len() int {
	return len(df.candles)
}

// Candle returns the candle at row i.
func (df *DataFrame) Candle(i int) types.MarketData {
	return df.candles[i]
}

// Opens returns the open price series.
func (df *DataFrame) Opens() []float64 {
	return df.priceSeries(func(c types.MarketData) float64 { return c.Open })
}

// Highs returns the high price series.
func (df *DataFrame) Highs() []float64 {
	return df.priceSeries(func(c types.MarketData) float64 { return c.High })
}

// Lows returns the low price series.
func (df *DataFrame) Lows() []float64 {
	return df.priceSeries(func(c types.MarketData) float64 { return c.Low })
}

// Closes returns the close price series.
func (df *DataFrame) Closes() []float64 {
	return df.priceSeries(func(c types.MarketData) float64 { return c.Close })
}

// Volumes returns the volume series.
func (df *DataFrame) Volumes() []float64 {
	return df.priceSeries(func(c types.MarketData) float64 { return c.Volume })
}

func (df *DataFrame) priceSeries(field func(types.MarketData) float64) []float64 {
	values := make([]float64, len(df.candles))
	for i, c := range df.candles {
		values[i] = field(c)
	}

	return values
}

// AddColumn appends a derived column. The column must be row-aligned with
// the candle series, must not shadow an OHLCV column, and must not overwrite
// an existing column.
func (df *DataFrame) AddColumn(name string, values []float64) error {
	if reservedColumns[name] {
		return errors.Newf(errors.ErrCodeInvalidParameter, "column name %q is reserved for price data", name)
	}

	if _, exists := df.columns[name]; exists {
		return errors.Newf(errors.ErrCodeColumnAlreadyExists, "column %q already exists", name)
	}

	if len(values) != len(df.candles) {
		return errors.Newf(errors.ErrCodeColumnLengthMismatch,
			"column %q has %d values for %d rows", name, len(values), len(df.candles))
	}

	df.columns[name] = values
	df.order = append(df.order, name)

	return nil
}

// Column returns the named derived column.
func (df *DataFrame) Column(name string) ([]float64, error) {
	values, exists := df.columns[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeColumnNotFound, "column %q not found", name)
	}

	return values, nil
}

// HasColumn reports whether the named derived column exists.
func (df *DataFrame) HasColumn(name string) bool {
	_, exists := df.columns[name]

	return exists
}

// ColumnNames returns the derived column names in insertion order.
func (df *DataFrame) ColumnNames() []string {
	names := make([]string, len(df.order))
	copy(names, df.order)

	return names
}

// MarkSignal sets the named signal column to 1 on every row where mask is
// true. The column is created NaN-filled on first use. Rows already marked
// by a previous call are never cleared, so repeated calls accumulate marks.
func (df *DataFrame) MarkSignal(name string, mask Mask) error {
	if len(mask) != 0 && len(mask) != len(df.candles) {
		return errors.Newf(errors.ErrCodeColumnLengthMismatch,
			"mask has %d values for %d rows", len(mask), len(df.candles))
	}

	values, exists := df.columns[name]
	if !exists {
		values = make([]float64, len(df.candles))
		for i := range values {
			values[i] = math.NaN()
		}

		df.columns[name] = values
		df.order = append(df.order, name)
	}

	for i, set := range mask {
		if set {
			values[i] = types.SignalValue
		}
	}

	return nil
}

// SignalRows returns the indices of rows where the named signal column is
// set. A missing signal column yields no rows: a strategy that never marked
// the column produced no signal.
func (df *DataFrame) SignalRows(name string) []int {
	values, exists := df.columns[name]
	if !exists {
		return nil
	}

	var rows []int

	for i, v := range values {
		if v == types.SignalValue {
			rows = append(rows, i)
		}
	}

	return rows
}
