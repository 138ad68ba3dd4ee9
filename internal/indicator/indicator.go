// Package indicator implements column-wise technical indicators over an
// aligned OHLCV dataframe.
//
// Every indicator recomputes from scratch over whatever series it is given;
// there is no incremental state between calls. Rows inside an indicator's
// warm-up prefix hold NaN.
package indicator

import (
	"github.com/quantforge-lab/freqgen/internal/types"
	"github.com/quantforge-lab/freqgen/pkg/dataframe"
)

// Indicator interface defines methods that any technical indicator must implement
type Indicator interface {
	// Name returns the name of the indicator
	Name() types.IndicatorType
	// Config configures the indicator parameters (periods, smoothing windows)
	Config(params ...any) error
	// Populate appends the indicator's derived columns to the dataframe.
	// It must not mutate existing columns.
	Populate(df *dataframe.DataFrame) error
}
