package preset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/quantforge-lab/freqgen/internal/generator"
	"github.com/quantforge-lab/freqgen/internal/strategy"
	"github.com/quantforge-lab/freqgen/pkg/errors"
)

type PresetTestSuite struct {
	suite.Suite
}

func TestPresetSuite(t *testing.T) {
	suite.Run(t, new(PresetTestSuite))
}

func (suite *PresetTestSuite) TestGet() {
	p, err := Get("rsi-reversal")
	suite.Require().NoError(err)

	suite.Equal("rsi-reversal", p.Name)
	suite.Equal("RSIReversal", p.Spec.Name)
	suite.Equal("4h", p.Spec.Config.Timeframe)
}

func (suite *PresetTestSuite) TestGetUnknown() {
	_, err := Get("no-such-preset")
	suite.True(errors.HasCode(err, errors.ErrCodeUnknownPreset))
	suite.Contains(err.Error(), "no-such-preset")
}

func (suite *PresetTestSuite) TestListIsSorted() {
	all := List()
	suite.Require().Len(all, 3)

	suite.Equal("bb-reversion", all[0].Name)
	suite.Equal("ema-trend", all[1].Name)
	suite.Equal("rsi-reversal", all[2].Name)
}

func (suite *PresetTestSuite) TestEveryPresetValidates() {
	for _, p := range List() {
		suite.Run(p.Name, func() {
			s := p.Spec
			suite.NoError(s.Validate())
			suite.NotEmpty(p.Description)
		})
	}
}

func (suite *PresetTestSuite) TestEveryPresetRenders() {
	for _, p := range List() {
		suite.Run(p.Name, func() {
			s := p.Spec

			source, err := generator.Render(&s)
			suite.Require().NoError(err)
			suite.Contains(source, fmt.Sprintf("class %s(IStrategy):", s.Name))
		})
	}
}

func (suite *PresetTestSuite) TestRSIReversalRender() {
	p, err := Get("rsi-reversal")
	suite.Require().NoError(err)

	source, err := generator.Render(&p.Spec)
	suite.Require().NoError(err)

	suite.Contains(source, "class RSIReversal(IStrategy):")
	suite.Contains(source, "\"60\": 0.05,")
	suite.Contains(source, "\"30\": 0.03,")
	suite.Contains(source, "\"0\": 0.01")
	suite.Contains(source, "stoploss = -0.1\n")
	suite.Contains(source, "timeframe = '4h'")
	suite.Contains(source, "startup_candle_count: int = 200")
	suite.Contains(source, "dataframe['rsi'] = ta.RSI(dataframe, period=14)")
	suite.Contains(source, "conditions.append(dataframe['rsi'] < 30)")

	// ROI and stoploss alone close the position; no exit conditions
	suite.NotContains(source, "'exit_long'")
}

func (suite *PresetTestSuite) TestEveryPresetLoadsAsStrategy() {
	for _, p := range List() {
		suite.Run(p.Name, func() {
			s := p.Spec

			def, err := strategy.FromSpec(&s, nil)
			suite.Require().NoError(err)
			suite.Equal(s.Name, def.Name())
		})
	}
}
