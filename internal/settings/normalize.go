package settings

import (
	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/placement/prices"
)

// Limits applied by Normalize.
const (
	MinBlocker         = 8
	MaxBlocker         = 200
	MaxTroff           = 500
	MaxMedals          = 40
	MaxMedalCBReq      = 100
	MaxFairies         = 20
	MaxProgressiveHint = 201
	MaxStartingMoves   = 40
	// MaxStartingMovesShopOnly applies when moves are shuffled into shops only.
	MaxStartingMovesShopOnly = 4
)

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Normalize clamps numeric options and applies the option dependencies.
// Level rules run first because they can turn move rando back on.
func (s *Settings) Normalize() {
	s.BlockerText = clamp(s.BlockerText, MinBlocker, MaxBlocker)
	s.TroffText = clamp(s.TroffText, 0, MaxTroff)
	s.MedalRequirement = clamp(s.MedalRequirement, 0, MaxMedals)
	s.MedalCBReq = clamp(s.MedalCBReq, 1, MaxMedalCBReq)
	s.RarewareGBFairies = clamp(s.RarewareGBFairies, 1, MaxFairies)
	s.ProgressiveHintText = clamp(s.ProgressiveHintText, 1, MaxProgressiveHint)
	s.MusicVolume = clamp(s.MusicVolume, 0, 100)
	s.SfxVolume = clamp(s.SfxVolume, 0, 100)
	s.CustomMusicProportion = clamp(s.CustomMusicProportion, 0, 100)

	s.CrownDoorItem, s.CrownDoorItemCount = clampDoor(crownDoorCaps, s.CrownDoorItem, s.CrownDoorItemCount)
	s.CoinDoorItem, s.CoinDoorItemCount = clampDoor(coinDoorCaps, s.CoinDoorItem, s.CoinDoorItemCount)

	maxStarting := MaxStartingMoves
	if !s.ShuffleItems && s.MoveRando != MoveRandoOff {
		maxStarting = MaxStartingMovesShopOnly
	}
	s.StartingMovesCount = clamp(s.StartingMovesCount, 0, maxStarting)

	switch {
	case s.LevelRandomization == LevelOrder:
		s.BossLocationRando = true
		s.BossKongRando = true
		s.KongRando = true
		if s.MoveRando == MoveRandoOff {
			s.MoveRando = MoveRandoOn
		}
	case s.LevelRandomization == LevelVanilla && s.KongRando:
		s.BossLocationRando = true
		s.BossKongRando = true
		s.HardLevelProgression = false
	default:
		s.HardLevelProgression = false
	}

	if s.MoveRando == MoveRandoOff || s.MoveRando == MoveRandoStartWith {
		s.TrainingBarrels = TrainingNormal
		s.ShockwaveStatus = ShockwaveVanilla
		s.StartingMovesCount = MaxStartingMoves
		s.StartWithSlam = true
	}
	if s.MoveRando == MoveRandoStartWith {
		s.RandomPrices = prices.WeightVanilla
	}

	if s.DisableTagBarrels {
		s.EnableTagAnywhere = true
	}

	s.StartingKongsCount = clamp(s.StartingKongsCount, 1, len(entities.AllKongs))
	if s.StartingKongsCount == len(entities.AllKongs) {
		s.KongRando = false
	}
}

// clampDoor resets an item the door does not accept to vanilla and keeps the
// count between 1 and the item's cap.
func clampDoor(caps map[HelmDoorItem]int, item HelmDoorItem, count int) (HelmDoorItem, int) {
	limit, ok := caps[item]
	if !ok {
		item = HelmDoorVanilla
		limit = caps[HelmDoorVanilla]
	}
	return item, clamp(count, 1, limit)
}
