package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/quantforge-lab/freqgen/internal/types"
	"github.com/quantforge-lab/freqgen/pkg/errors"
)

type ADXTestSuite struct {
	suite.Suite
}

func TestADXSuite(t *testing.T) {
	suite.Run(t, new(ADXTestSuite))
}

func (suite *ADXTestSuite) TestNewADX() {
	adx := NewADX()
	suite.NotNil(adx)
	suite.Equal(14, adx.(*ADX).period)
}

func (suite *ADXTestSuite) TestName() {
	suite.Equal(types.IndicatorTypeADX, NewADX().Name())
}

func (suite *ADXTestSuite) TestConfigErrors() {
	adx := NewADX()

	err := adx.Config(14, 14)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingParameter))

	err = adx.Config("fourteen")
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidType))

	err = adx.Config(-1)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}

func (suite *ADXTestSuite) TestPopulateStrongTrendApproachesHundred() {
	adx := NewADX()
	suite.NoError(adx.Config(3))

	// Every bar moves up by one: all directional movement is positive, so
	// DX is 100 on every row and ADX settles at 100.
	n := 12
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		highs[i] = 10 + float64(i)
		lows[i] = 8 + float64(i)
		closes[i] = 9 + float64(i)
	}

	df := frameFromHLC(highs, lows, closes)
	suite.NoError(adx.Populate(df))

	values, err := df.Column(types.ColumnADX)
	suite.NoError(err)

	for i := 0; i < 5; i++ {
		suite.True(math.IsNaN(values[i]), "row %d should be warm-up NaN", i)
	}

	for i := 5; i < n; i++ {
		suite.InDelta(100.0, values[i], 1e-9)
	}
}

func (suite *ADXTestSuite) TestPopulateFlatMarketIsZero() {
	adx := NewADX()
	suite.NoError(adx.Config(2))

	n := 8
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		highs[i] = 11
		lows[i] = 9
		closes[i] = 10
	}

	df := frameFromHLC(highs, lows, closes)
	suite.NoError(adx.Populate(df))

	values, err := df.Column(types.ColumnADX)
	suite.NoError(err)

	// no directional movement at all
	for i := 3; i < n; i++ {
		suite.InDelta(0.0, values[i], 1e-9)
	}
}

func (suite *ADXTestSuite) TestPopulateShortSeriesAllNaN() {
	adx := NewADX()
	suite.NoError(adx.Config(5))

	df := frameFromCloses(1, 2, 3, 4)
	suite.NoError(adx.Populate(df))

	values, err := df.Column(types.ColumnADX)
	suite.NoError(err)

	for i := range values {
		suite.True(math.IsNaN(values[i]))
	}
}
