package indicator

import (
	"math"

	"github.com/quantforge-lab/freqgen/internal/types"
	"github.com/quantforge-lab/freqgen/pkg/dataframe"
	"github.com/quantforge-lab/freqgen/pkg/errors"
)

// ADX represents the Average Directional Index indicator.
type ADX struct {
	period int
}

// NewADX creates a new ADX indicator with default configuration.
func NewADX() Indicator {
	return &ADX{
		period: 14,
	}
}

// Name returns the name of the indicator.
func (a *ADX) Name() types.IndicatorType {
	return types.IndicatorTypeADX
}

// Config configures the ADX indicator. Expected parameters: period (int).
func (a *ADX) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 1 parameter: period (int)")
	}

	period, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for period parameter, expected int")
	}

	if period <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	a.period = period

	return nil
}

// Populate appends the adx column computed from Wilder's directional
// movement system: smoothed +DM/-DM over smoothed true range give the
// directional indices, and ADX is a Wilder average of their normalized
// difference. The warm-up prefix of 2*period rows holds NaN.
func (a *ADX) Populate(df *dataframe.DataFrame) error {
	highs := df.Highs()
	lows := df.Lows()
	closes := df.Closes()

	n := len(closes)
	out := nanSeries(n)

	if n >= 2*a.period {
		tr := make([]float64, n)
		plusDM := make([]float64, n)
		minusDM := make([]float64, n)

		for i := 1; i < n; i++ {
			upMove := highs[i] - highs[i-1]
			downMove := lows[i-1] - lows[i]

			if upMove > downMove && upMove > 0 {
				plusDM[i] = upMove
			}

			if downMove > upMove && downMove > 0 {
				minusDM[i] = downMove
			}

			tr[i] = math.Max(highs[i]-lows[i],
				math.Max(math.Abs(highs[i]-closes[i-1]), math.Abs(lows[i]-closes[i-1])))
		}

		// Initial Wilder sums over the first period
		smTR := 0.0
		smPlus := 0.0
		smMinus := 0.0

		for i := 1; i <= a.period; i++ {
			smTR += tr[i]
			smPlus += plusDM[i]
			smMinus += minusDM[i]
		}

		dx := nanSeries(n)
		dx[a.period] = dxValue(smPlus, smMinus, smTR)

		for i := a.period + 1; i < n; i++ {
			smTR = smTR - smTR/float64(a.period) + tr[i]
			smPlus = smPlus - smPlus/float64(a.period) + plusDM[i]
			smMinus = smMinus - smMinus/float64(a.period) + minusDM[i]
			dx[i] = dxValue(smPlus, smMinus, smTR)
		}

		// First ADX is the plain average of the first period DX values
		sum := 0.0
		for i := a.period; i < 2*a.period; i++ {
			sum += dx[i]
		}

		prev := sum / float64(a.period)
		out[2*a.period-1] = prev

		for i := 2 * a.period; i < n; i++ {
			prev = (prev*float64(a.period-1) + dx[i]) / float64(a.period)
			out[i] = prev
		}
	}

	return df.AddColumn(types.ColumnADX, out)
}

func dxValue(plus, minus, tr float64) float64 {
	if tr == 0 {
		return 0
	}

	plusDI := 100 * plus / tr
	minusDI := 100 * minus / tr

	if sum := plusDI + minusDI; sum != 0 {
		return 100 * math.Abs(plusDI-minusDI) / sum
	}

	return 0
}
