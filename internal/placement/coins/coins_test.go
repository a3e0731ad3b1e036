package coins_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/junglerando/rando-api/internal/pkg/rng"
	"github.com/junglerando/rando-api/internal/placement/coins"
)

type CoinsTestSuite struct {
	suite.Suite
}

func TestCoinsSuite(t *testing.T) {
	suite.Run(t, new(CoinsTestSuite))
}

// brokenRoller fails every roll.
type brokenRoller struct{}

func (brokenRoller) Roll(int) (int, error) { return 0, fmt.Errorf("dice jammed") }

func (brokenRoller) RollN(int, int) ([]int, error) { return nil, fmt.Errorf("dice jammed") }

func (s *CoinsTestSuite) TestVanilla() {
	req := coins.Vanilla()
	s.Assert().Equal(50, req[coins.AztecBeetle])
	s.Assert().Equal(10, req[coins.SealRace])
	s.Assert().Equal(25, req[coins.CastleCart])
	s.Assert().Equal([]byte{50, 50, 50, 50, 10, 10, 10, 25}, req.Bytes())
}

func (s *CoinsTestSuite) TestRandomizeWithinBounds() {
	for seed := int64(0); seed < 50; seed++ {
		req, err := coins.Randomize(rng.New(seed))
		s.Require().NoError(err)
		s.Require().Len(req, len(coins.AllMinigames))
		for _, m := range coins.AllMinigames {
			lo, hi := coins.Bounds(m)
			s.Assert().GreaterOrEqual(req[m], lo, string(m))
			s.Assert().LessOrEqual(req[m], hi, string(m))
		}
	}
}

func (s *CoinsTestSuite) TestRandomizeRollError() {
	_, err := coins.Randomize(brokenRoller{})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "aztec_beetle")
}
