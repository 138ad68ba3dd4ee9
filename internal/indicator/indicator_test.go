package indicator

import (
	"time"

	"github.com/quantforge-lab/freqgen/internal/types"
	"github.com/quantforge-lab/freqgen/pkg/dataframe"
)

// frameFromCloses builds a dataframe whose candles track the given closes
// with a fixed 2-point high-low spread around them.
func frameFromCloses(closes ...float64) *dataframe.DataFrame {
	candles := make([]types.MarketData, len(closes))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, c := range closes {
		candles[i] = types.MarketData{
			Time:   base.Add(time.Duration(i) * time.Minute),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 100,
		}
	}

	return dataframe.New(candles)
}

// frameFromHLC builds a dataframe with explicit high/low/close rows.
func frameFromHLC(highs, lows, closes []float64) *dataframe.DataFrame {
	candles := make([]types.MarketData, len(closes))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := range closes {
		candles[i] = types.MarketData{
			Time:   base.Add(time.Duration(i) * time.Minute),
			Open:   closes[i],
			High:   highs[i],
			Low:    lows[i],
			Close:  closes[i],
			Volume: 100,
		}
	}

	return dataframe.New(candles)
}
