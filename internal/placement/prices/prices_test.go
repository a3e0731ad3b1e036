package prices_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/logic"
	"github.com/junglerando/rando-api/internal/pkg/rng"
	"github.com/junglerando/rando-api/internal/placement/prices"
)

type PricesTestSuite struct {
	suite.Suite
	vanilla    prices.Table
	shop       prices.Shop
	byLocation map[entities.Location]int
}

func TestPricesSuite(t *testing.T) {
	suite.Run(t, new(PricesTestSuite))
}

func (s *PricesTestSuite) SetupTest() {
	s.vanilla = prices.VanillaPrices()
	s.shop = prices.VanillaShop()
	s.byLocation = s.shop.LocationPrices(s.vanilla)
}

func (s *PricesTestSuite) TestRandomizePricesCoversEveryKey() {
	for _, weight := range prices.Weights {
		s.Run(string(weight), func() {
			table, err := prices.RandomizePrices(weight, rng.New(42))
			s.Require().NoError(err)
			s.Assert().Len(table, len(s.vanilla))

			for item := range s.vanilla {
				p, ok := table[item]
				s.Require().True(ok, "missing %s", item)
				if n, progressive := prices.ProgressiveMoves[item]; progressive {
					s.Assert().Len(p, n)
				} else {
					s.Assert().Len(p, 1)
				}
				for _, v := range p {
					s.Assert().GreaterOrEqual(v, 0)
				}
			}
		})
	}
}

func (s *PricesTestSuite) TestRandomizePricesIsDeterministic() {
	a, err := prices.RandomizePrices(prices.WeightHigh, rng.New(7))
	s.Require().NoError(err)
	b, err := prices.RandomizePrices(prices.WeightHigh, rng.New(7))
	s.Require().NoError(err)
	s.Assert().Equal(a, b)
}

func (s *PricesTestSuite) TestRandomizePricesWeightsOrder() {
	total := func(w prices.Weight) int {
		sum := 0
		for seed := int64(0); seed < 20; seed++ {
			table, err := prices.RandomizePrices(w, rng.New(seed))
			s.Require().NoError(err)
			sum += prices.GetMaxForKong(prices.VanillaShop().LocationPrices(table), entities.KongDonkey)
		}
		return sum / 20
	}

	low, medium, high := total(prices.WeightLow), total(prices.WeightMedium), total(prices.WeightHigh)
	s.Assert().Less(low, medium)
	s.Assert().Less(medium, high)
	s.Assert().InDelta(40, low, 8)
	s.Assert().InDelta(110, high, 15)
}

func (s *PricesTestSuite) TestRandomizePricesFreeAndVanilla() {
	free, err := prices.RandomizePrices(prices.WeightFree, rng.New(1))
	s.Require().NoError(err)
	s.Assert().Equal([]int{0, 0, 0}, free[entities.ItemProgressiveInstrumentUpgrade])

	vanilla, err := prices.RandomizePrices(prices.WeightVanilla, rng.New(1))
	s.Require().NoError(err)
	s.Assert().Equal(s.vanilla, vanilla)

	vanilla[entities.ItemCoconut][0] = 99
	s.Assert().Equal(3, prices.VanillaPrices()[entities.ItemCoconut][0], "vanilla table must not be shared")
}

func (s *PricesTestSuite) TestRandomizePricesUnknownWeight() {
	_, err := prices.RandomizePrices(prices.Weight("extreme"), rng.New(1))
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = prices.ParseWeight("extreme")
	s.Assert().Error(err)
	w, err := prices.ParseWeight("medium")
	s.Require().NoError(err)
	s.Assert().Equal(prices.WeightMedium, w)
}

func (s *PricesTestSuite) TestGetMaxForKongVanilla() {
	for _, k := range entities.AllKongs {
		s.Assert().Equal(74, prices.GetMaxForKong(s.byLocation, k), k.String())
	}
}

func (s *PricesTestSuite) TestLocationPricesTiers() {
	s.Assert().Equal(5, s.byLocation[entities.LocationSuperSimianSlam])
	s.Assert().Equal(7, s.byLocation[entities.LocationSuperDuperSlam])
	s.Assert().Equal(5, s.byLocation[entities.LocationMusicUpgrade1])
	s.Assert().Equal(7, s.byLocation[entities.LocationThirdMelon])
	s.Assert().Equal(9, s.byLocation[entities.LocationMusicUpgrade2])
}

func (s *PricesTestSuite) TestLogicalPrice() {
	testCases := []struct {
		name      string
		location  entities.Location
		kong      entities.Kong
		decoupled bool
		expected  int
	}{
		{name: "first cranky move", location: entities.LocationBaboonBlast, kong: entities.KongDonkey, expected: 62},
		{name: "last cranky move", location: entities.LocationGorillaGrab, kong: entities.KongDonkey, expected: 74},
		{name: "gun group skips other kongs", location: entities.LocationPeanutGun, kong: entities.KongDiddy, expected: 74 - 3 - 5 - 5 - 7},
		{name: "first slam", location: entities.LocationSuperSimianSlam, kong: entities.KongTiny, expected: 67},
		{name: "decoupled", location: entities.LocationBaboonBlast, kong: entities.KongDonkey, decoupled: true, expected: 74},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, prices.LogicalPrice(tc.location, tc.kong, s.byLocation, tc.decoupled))
		})
	}
}

func (s *PricesTestSuite) TestGetPriceOfMoveItem() {
	testCases := []struct {
		name       string
		item       entities.Item
		slam       int
		belts      int
		upgrades   int
		expected   int
		expectedOK bool
	}{
		{name: "plain move", item: entities.ItemGorillaGone, expected: 7, expectedOK: true},
		{name: "second slam", item: entities.ItemProgressiveSlam, slam: 2, expected: 7, expectedOK: true},
		{name: "slam maxed", item: entities.ItemProgressiveSlam, slam: 3},
		{name: "no slam yet", item: entities.ItemProgressiveSlam, slam: 0},
		{name: "first belt", item: entities.ItemProgressiveAmmoBelt, expected: 3, expectedOK: true},
		{name: "belts maxed", item: entities.ItemProgressiveAmmoBelt, belts: 2},
		{name: "third upgrade", item: entities.ItemProgressiveInstrumentUpgrade, upgrades: 2, expected: 9, expectedOK: true},
		{name: "upgrades maxed", item: entities.ItemProgressiveInstrumentUpgrade, upgrades: 3},
		{name: "unpriced", item: entities.ItemCamera},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			price, ok := prices.GetPriceOfMoveItem(tc.item, s.vanilla, tc.slam, tc.belts, tc.upgrades)
			s.Assert().Equal(tc.expectedOK, ok)
			s.Assert().Equal(tc.expected, price)
		})
	}
}

func (s *PricesTestSuite) TestCanBuy() {
	st := logic.NewState(entities.AllKongs...)
	st.SlamLevel = 1
	st.Coins[entities.KongDonkey] = 5
	st.Coins[entities.KongDiddy] = 5
	st.Coins[entities.KongLanky] = 5
	st.Coins[entities.KongTiny] = 5
	st.Coins[entities.KongChunky] = 4

	s.Assert().True(prices.KongCanBuy(entities.LocationStrongKong, st, s.shop, s.vanilla, entities.KongDonkey))
	s.Assert().False(prices.KongCanBuy(entities.LocationGorillaGrab, st, s.shop, s.vanilla, entities.KongDonkey))

	s.Assert().True(prices.CanBuy(entities.LocationBaboonBlast, st, s.shop, s.vanilla))
	s.Assert().True(prices.AnyKongCanBuy(entities.LocationSuperSimianSlam, st, s.shop, s.vanilla))
	s.Assert().False(prices.EveryKongCanBuy(entities.LocationSuperSimianSlam, st, s.shop, s.vanilla))
	s.Assert().False(prices.CanBuy(entities.LocationSuperSimianSlam, st, s.shop, s.vanilla))

	st.SlamLevel = 3
	s.Assert().False(prices.AnyKongCanBuy(entities.LocationSuperSimianSlam, st, s.shop, s.vanilla))

	empty := prices.VanillaShop()
	empty[entities.LocationSniperSight] = entities.ItemNoItem
	st.Coins[entities.KongChunky] = 0
	s.Assert().True(prices.CanBuy(entities.LocationSniperSight, st, empty, s.vanilla))
}

func (s *PricesTestSuite) TestUnaffordable() {
	s.Assert().Empty(prices.Unaffordable(s.shop, s.vanilla, 74, false))
	s.Assert().Empty(prices.Unaffordable(s.shop, s.vanilla, 74, true))
	s.Assert().NotEmpty(prices.Unaffordable(s.shop, s.vanilla, 73, false))

	free, err := prices.RandomizePrices(prices.WeightFree, rng.New(3))
	s.Require().NoError(err)
	s.Assert().Empty(prices.Unaffordable(s.shop, free, 0, false))
}

func (s *PricesTestSuite) TestTableJSON() {
	data, err := json.Marshal(prices.Table{
		entities.ItemCoconut:         {3},
		entities.ItemProgressiveSlam: {5, 7},
	})
	s.Require().NoError(err)
	s.Assert().JSONEq(`{"Coconut":3,"ProgressiveSlam":[5,7]}`, string(data))
}
