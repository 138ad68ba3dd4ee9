package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/quantforge-lab/freqgen/internal/types"
	"github.com/quantforge-lab/freqgen/pkg/errors"
)

type MACDTestSuite struct {
	suite.Suite
}

func TestMACDSuite(t *testing.T) {
	suite.Run(t, new(MACDTestSuite))
}

func (suite *MACDTestSuite) TestNewMACD() {
	macd := NewMACD()
	suite.NotNil(macd)

	impl := macd.(*MACD)
	suite.Equal(12, impl.fastPeriod)
	suite.Equal(26, impl.slowPeriod)
	suite.Equal(9, impl.signalPeriod)
}

func (suite *MACDTestSuite) TestName() {
	suite.Equal(types.IndicatorTypeMACD, NewMACD().Name())
}

func (suite *MACDTestSuite) TestConfigValid() {
	macd := NewMACD()
	impl := macd.(*MACD)

	suite.NoError(macd.Config(3, 5, 2))
	suite.Equal(3, impl.fastPeriod)
	suite.Equal(5, impl.slowPeriod)
	suite.Equal(2, impl.signalPeriod)
}

func (suite *MACDTestSuite) TestConfigErrors() {
	macd := NewMACD()

	err := macd.Config(3, 5)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingParameter))

	err = macd.Config(3, "five", 2)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidType))

	err = macd.Config(3, -5, 2)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}

func (suite *MACDTestSuite) TestPopulateAddsThreeColumns() {
	macd := NewMACD()
	suite.NoError(macd.Config(3, 5, 2))

	df := frameFromCloses(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	suite.NoError(macd.Populate(df))

	suite.True(df.HasColumn(types.ColumnMACD))
	suite.True(df.HasColumn(types.ColumnMACDSignal))
	suite.True(df.HasColumn(types.ColumnMACDHist))
}

func (suite *MACDTestSuite) TestPopulateFlatSeriesIsZero() {
	macd := NewMACD()
	suite.NoError(macd.Config(3, 5, 2))

	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 10
	}

	df := frameFromCloses(closes...)
	suite.NoError(macd.Populate(df))

	line, err := df.Column(types.ColumnMACD)
	suite.NoError(err)
	signal, err := df.Column(types.ColumnMACDSignal)
	suite.NoError(err)
	hist, err := df.Column(types.ColumnMACDHist)
	suite.NoError(err)

	// Once everything is warmed up both EMAs equal the price
	for i := 8; i < df.Len(); i++ {
		suite.InDelta(0.0, line[i], 1e-9)
		suite.InDelta(0.0, signal[i], 1e-9)
		suite.InDelta(0.0, hist[i], 1e-9)
	}
}

func (suite *MACDTestSuite) TestPopulateHistogramIsLineMinusSignal() {
	macd := NewMACD()
	suite.NoError(macd.Config(3, 5, 2))

	df := frameFromCloses(1, 3, 2, 5, 4, 7, 6, 9, 8, 11, 10, 13)
	suite.NoError(macd.Populate(df))

	line, _ := df.Column(types.ColumnMACD)
	signal, _ := df.Column(types.ColumnMACDSignal)
	hist, _ := df.Column(types.ColumnMACDHist)

	for i := range line {
		if math.IsNaN(line[i]) || math.IsNaN(signal[i]) {
			suite.True(math.IsNaN(hist[i]))
			continue
		}

		suite.InDelta(line[i]-signal[i], hist[i], 1e-9)
	}
}

func (suite *MACDTestSuite) TestPopulateWarmupIsNaN() {
	macd := NewMACD()
	suite.NoError(macd.Config(3, 5, 2))

	df := frameFromCloses(1, 2, 3, 4, 5, 6, 7, 8)
	suite.NoError(macd.Populate(df))

	line, _ := df.Column(types.ColumnMACD)

	// MACD needs the slow EMA, so the first slowPeriod-1 rows are NaN
	for i := 0; i < 4; i++ {
		suite.True(math.IsNaN(line[i]), "row %d should be warm-up NaN", i)
	}

	suite.False(math.IsNaN(line[4]))
}
