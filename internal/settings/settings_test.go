package settings_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/pkg/rng"
	"github.com/junglerando/rando-api/internal/placement/prices"
	"github.com/junglerando/rando-api/internal/settings"
)

type SettingsTestSuite struct {
	suite.Suite
	rand *rng.Source
}

func TestSettingsSuite(t *testing.T) {
	suite.Run(t, new(SettingsTestSuite))
}

func (s *SettingsTestSuite) SetupTest() {
	s.rand = rng.New(7)
}

func (s *SettingsTestSuite) TestEmptyBodyUsesDefaults() {
	got, err := settings.FromPostBody(nil, s.rand)
	s.Require().NoError(err)

	s.Assert().GreaterOrEqual(got.Seed, int64(0))
	s.Assert().LessOrEqual(got.Seed, int64(settings.MaxSeed))
	s.Assert().Equal(prices.WeightMedium, got.RandomPrices)
	s.Assert().Equal(settings.MoveRandoOn, got.MoveRando)
	s.Assert().Equal(50, got.BlockerText)
	s.Assert().True(got.GenerateSpoilerLog)
}

func (s *SettingsTestSuite) TestEnumConversion() {
	testCases := []struct {
		name     string
		body     string
		expected prices.Weight
	}{
		{name: "by name", body: `{"seed": 5, "random_prices": "high"}`, expected: prices.WeightHigh},
		{name: "by ordinal", body: `{"seed": 5, "random_prices": 1}`, expected: prices.WeightFree},
		{name: "case insensitive", body: `{"seed": 5, "random_prices": "LOW"}`, expected: prices.WeightLow},
		{name: "unknown keeps default", body: `{"seed": 5, "random_prices": "extreme"}`, expected: prices.WeightMedium},
		{name: "ordinal out of range keeps default", body: `{"seed": 5, "random_prices": 17}`, expected: prices.WeightMedium},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := settings.FromPostBody([]byte(tc.body), s.rand)
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, got.RandomPrices)
		})
	}
}

func (s *SettingsTestSuite) TestListConversion() {
	got, err := settings.FromPostBody([]byte(`{"seed": 1, "starting_kongs_count": 2, "starting_kong_list": [3, "chunky"]}`), s.rand)
	s.Require().NoError(err)
	s.Assert().Equal([]entities.Kong{entities.KongTiny, entities.KongChunky}, got.StartingKongList)
	s.Assert().Equal([]entities.Kong{entities.KongTiny, entities.KongChunky}, got.StartingKongs())

	got, err = settings.FromPostBody([]byte(`{"seed": 1, "starting_kong_list": ["tiny", "funky"]}`), s.rand)
	s.Require().NoError(err)
	s.Assert().Equal([]entities.Kong{entities.KongDonkey}, got.StartingKongList)
}

func (s *SettingsTestSuite) TestSeed() {
	got, err := settings.FromPostBody([]byte(`{"seed": "424242"}`), s.rand)
	s.Require().NoError(err)
	s.Assert().Equal(int64(424242), got.Seed)

	got, err = settings.FromPostBody([]byte(`{"seed": ""}`), s.rand)
	s.Require().NoError(err)
	s.Assert().GreaterOrEqual(got.Seed, int64(0))
	s.Assert().LessOrEqual(got.Seed, int64(settings.MaxSeed))
}

func (s *SettingsTestSuite) TestWrappedPostBody() {
	testCases := []struct {
		name string
		body string
	}{
		{name: "encoded string", body: `{"post_body": "{\"seed\": 1234, \"move_rando\": \"off\", \"random_prices\": \"high\"}"}`},
		{name: "nested object", body: `{"post_body": {"seed": 1234, "move_rando": "off", "random_prices": "high"}}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := settings.FromPostBody([]byte(tc.body), s.rand)
			s.Require().NoError(err)
			s.Assert().Equal(int64(1234), got.Seed)
			s.Assert().Equal(settings.MoveRandoOff, got.MoveRando)
			s.Assert().Equal(prices.WeightHigh, got.RandomPrices)
		})
	}
}

func (s *SettingsTestSuite) TestWrappedPostBodyInvalid() {
	for _, body := range []string{
		`{"post_body": "{not json"}`,
		`{"post_body": ""}`,
		`{"post_body": 17}`,
	} {
		_, err := settings.FromPostBody([]byte(body), s.rand)
		s.Require().Error(err, body)
		s.Assert().True(errors.IsInvalidArgument(err), body)
	}
}

func (s *SettingsTestSuite) TestInvalidBody() {
	_, err := settings.FromPostBody([]byte(`[1, 2]`), s.rand)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = settings.FromPostBody([]byte(`{"generate_spoilerlog": "yes"}`), s.rand)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *SettingsTestSuite) TestClamps() {
	testCases := []struct {
		name   string
		mutate func(*settings.Settings)
		check  func(*settings.Settings)
	}{
		{
			name:   "blocker floor",
			mutate: func(st *settings.Settings) { st.BlockerText = 3 },
			check:  func(st *settings.Settings) { s.Assert().Equal(8, st.BlockerText) },
		},
		{
			name:   "blocker ceiling",
			mutate: func(st *settings.Settings) { st.BlockerText = 999 },
			check:  func(st *settings.Settings) { s.Assert().Equal(200, st.BlockerText) },
		},
		{
			name:   "troff ceiling",
			mutate: func(st *settings.Settings) { st.TroffText = 501 },
			check:  func(st *settings.Settings) { s.Assert().Equal(500, st.TroffText) },
		},
		{
			name:   "medals",
			mutate: func(st *settings.Settings) { st.MedalRequirement = -1 },
			check:  func(st *settings.Settings) { s.Assert().Equal(0, st.MedalRequirement) },
		},
		{
			name:   "medal cb requirement",
			mutate: func(st *settings.Settings) { st.MedalCBReq = 0 },
			check:  func(st *settings.Settings) { s.Assert().Equal(1, st.MedalCBReq) },
		},
		{
			name:   "fairies",
			mutate: func(st *settings.Settings) { st.RarewareGBFairies = 21 },
			check:  func(st *settings.Settings) { s.Assert().Equal(20, st.RarewareGBFairies) },
		},
		{
			name:   "progressive hints",
			mutate: func(st *settings.Settings) { st.ProgressiveHintText = 500 },
			check:  func(st *settings.Settings) { s.Assert().Equal(201, st.ProgressiveHintText) },
		},
		{
			name:   "volume",
			mutate: func(st *settings.Settings) { st.MusicVolume = 140 },
			check:  func(st *settings.Settings) { s.Assert().Equal(100, st.MusicVolume) },
		},
		{
			name: "starting moves with shop only shuffle",
			mutate: func(st *settings.Settings) {
				st.MoveRando = settings.MoveRandoOn
				st.StartingMovesCount = 12
			},
			check: func(st *settings.Settings) { s.Assert().Equal(4, st.StartingMovesCount) },
		},
		{
			name: "starting moves with item shuffle",
			mutate: func(st *settings.Settings) {
				st.ShuffleItems = true
				st.StartingMovesCount = 12
			},
			check: func(st *settings.Settings) { s.Assert().Equal(12, st.StartingMovesCount) },
		},
		{
			name: "crown door count",
			mutate: func(st *settings.Settings) {
				st.CrownDoorItem = settings.HelmDoorCompanyCoins
				st.CrownDoorItemCount = 9
			},
			check: func(st *settings.Settings) { s.Assert().Equal(2, st.CrownDoorItemCount) },
		},
		{
			name: "coin door rejects company coins",
			mutate: func(st *settings.Settings) {
				st.CoinDoorItem = settings.HelmDoorCompanyCoins
				st.CoinDoorItemCount = 0
			},
			check: func(st *settings.Settings) {
				s.Assert().Equal(settings.HelmDoorVanilla, st.CoinDoorItem)
				s.Assert().Equal(1, st.CoinDoorItemCount)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			st := settings.Defaults()
			tc.mutate(st)
			st.Normalize()
			tc.check(st)
		})
	}
}

func (s *SettingsTestSuite) TestMoveRandoOffForcesMoves() {
	st := settings.Defaults()
	st.MoveRando = settings.MoveRandoOff
	st.TrainingBarrels = settings.TrainingShuffled
	st.ShockwaveStatus = settings.ShockwaveShuffled
	st.Normalize()

	s.Assert().Equal(settings.TrainingNormal, st.TrainingBarrels)
	s.Assert().Equal(settings.ShockwaveVanilla, st.ShockwaveStatus)
	s.Assert().Equal(40, st.StartingMovesCount)
	s.Assert().True(st.StartWithSlam)
	s.Assert().Equal(prices.WeightMedium, st.RandomPrices)
}

func (s *SettingsTestSuite) TestStartWithIgnoresPrices() {
	st := settings.Defaults()
	st.MoveRando = settings.MoveRandoStartWith
	st.RandomPrices = prices.WeightHigh
	st.Normalize()

	s.Assert().Equal(prices.WeightVanilla, st.RandomPrices)
	s.Assert().Equal(40, st.StartingMovesCount)
}

func (s *SettingsTestSuite) TestLevelOrderForcesBossAndKongRando() {
	st := settings.Defaults()
	st.LevelRandomization = settings.LevelOrder
	st.MoveRando = settings.MoveRandoOff
	st.HardLevelProgression = true
	st.Normalize()

	s.Assert().True(st.BossLocationRando)
	s.Assert().True(st.BossKongRando)
	s.Assert().True(st.KongRando)
	s.Assert().True(st.HardLevelProgression)
	s.Assert().Equal(settings.MoveRandoOn, st.MoveRando)
}

func (s *SettingsTestSuite) TestVanillaLevelsDropHardProgression() {
	st := settings.Defaults()
	st.HardLevelProgression = true
	st.KongRando = true
	st.Normalize()

	s.Assert().False(st.HardLevelProgression)
	s.Assert().True(st.BossLocationRando)
}

func (s *SettingsTestSuite) TestFiveStartingKongsDisableKongRando() {
	st := settings.Defaults()
	st.KongRando = true
	st.StartingKongsCount = 5
	st.Normalize()

	s.Assert().False(st.KongRando)
	s.Assert().Equal(entities.AllKongs, st.StartingKongs())
}

func (s *SettingsTestSuite) TestTagBarrels() {
	st := settings.Defaults()
	st.DisableTagBarrels = true
	st.Normalize()
	s.Assert().True(st.EnableTagAnywhere)
}

func (s *SettingsTestSuite) TestEncodeRoundTrip() {
	st := settings.Defaults()
	st.Seed = 9001
	st.RandomFairies = true

	encoded, err := st.EncodeString()
	s.Require().NoError(err)
	s.Assert().NotContains(encoded, "=")

	decoded, err := settings.DecodeString(encoded)
	s.Require().NoError(err)
	s.Assert().Equal(st, decoded)

	_, err = settings.DecodeString("!!!")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *SettingsTestSuite) TestSeedHash() {
	a := settings.Defaults()
	a.Seed = 1234
	b := settings.Defaults()
	b.Seed = 1234

	hashA, err := a.SeedHash()
	s.Require().NoError(err)
	hashB, err := b.SeedHash()
	s.Require().NoError(err)
	s.Assert().Equal(hashA, hashB)
	for _, picture := range hashA {
		s.Assert().GreaterOrEqual(picture, 0)
		s.Assert().Less(picture, 10)
	}

	b.Seed = 1235
	hashC, err := b.SeedHash()
	s.Require().NoError(err)
	s.Assert().NotEqual(hashA, hashC)
}
