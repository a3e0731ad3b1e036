// Package settings parses generation requests into a normalized Settings
// value. Normalization applies the same clamps and mutually exclusive option
// rules the settings page enforces, so a hand-written request cannot ask
// for a combination the page would never send.
package settings

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/pkg/rng"
	"github.com/junglerando/rando-api/internal/placement/prices"
)

// MaxSeed is the upper bound for a server-chosen seed.
const MaxSeed = 100000000

// Settings is one generation request.
type Settings struct {
	Seed               int64 `json:"seed"`
	GenerateSpoilerLog bool  `json:"generate_spoilerlog"`

	// Shops
	RandomPrices          prices.Weight   `json:"random_prices"`
	MoveRando             MoveRando       `json:"move_rando"`
	DecoupleMoveSequences bool            `json:"decouple_move_sequences"`
	TrainingBarrels       TrainingBarrels `json:"training_barrels"`
	ShockwaveStatus       ShockwaveStatus `json:"shockwave_status"`
	StartingMovesCount    int             `json:"starting_moves_count"`
	StartWithSlam         bool            `json:"start_with_slam"`
	ShuffleItems          bool            `json:"shuffle_items"`

	// Progression
	LevelRandomization   LevelRandomization `json:"level_randomization"`
	BossLocationRando    bool               `json:"boss_location_rando"`
	BossKongRando        bool               `json:"boss_kong_rando"`
	KongRando            bool               `json:"kong_rando"`
	HardLevelProgression bool               `json:"hard_level_progression"`
	StartingKongsCount   int                `json:"starting_kongs_count"`
	StartingKongList     []entities.Kong    `json:"starting_kong_list"`

	// Requirements
	RandomizeBlockerRequiredAmounts bool         `json:"randomize_blocker_required_amounts"`
	BlockerText                     int          `json:"blocker_text"`
	MaximizeHelmBlocker             bool         `json:"maximize_helm_blocker"`
	RandomizeCBRequiredAmounts      bool         `json:"randomize_cb_required_amounts"`
	TroffText                       int          `json:"troff_text"`
	MedalRequirement                int          `json:"medal_requirement"`
	MedalCBReq                      int          `json:"medal_cb_req"`
	RarewareGBFairies               int          `json:"rareware_gb_fairies"`
	ProgressiveHintText             int          `json:"progressive_hint_text"`
	CrownDoorItem                   HelmDoorItem `json:"crown_door_item"`
	CrownDoorItemCount              int          `json:"crown_door_item_count"`
	CoinDoorItem                    HelmDoorItem `json:"coin_door_item"`
	CoinDoorItemCount               int          `json:"coin_door_item_count"`
	RandomizeCoinRequirements       bool         `json:"randomize_coin_requirements"`

	// Locations
	RandomFairies        bool `json:"random_fairies"`
	WrinklyLocationRando bool `json:"wrinkly_location_rando"`
	TnSLocationRando     bool `json:"tns_location_rando"`
	ToughDoorSpots       bool `json:"tough_door_spots"`

	// Quality of life
	EnableTagAnywhere bool `json:"enable_tag_anywhere"`
	DisableTagBarrels bool `json:"disable_tag_barrels"`

	// Cosmetics
	RandomColors          bool `json:"random_colors"`
	RandomMusic           bool `json:"random_music"`
	MusicVolume           int  `json:"music_volume"`
	SfxVolume             int  `json:"sfx_volume"`
	CustomMusicProportion int  `json:"custom_music_proportion"`

	// SeedID is assigned once generation starts.
	SeedID string `json:"-"`
}

// Defaults returns the settings a request starts from before its body is applied.
func Defaults() *Settings {
	return &Settings{
		GenerateSpoilerLog:    true,
		RandomPrices:          prices.WeightMedium,
		MoveRando:             MoveRandoOn,
		TrainingBarrels:       TrainingNormal,
		ShockwaveStatus:       ShockwaveVanilla,
		StartingMovesCount:    4,
		LevelRandomization:    LevelVanilla,
		StartingKongsCount:    1,
		StartingKongList:      []entities.Kong{entities.KongDonkey},
		BlockerText:           50,
		TroffText:             300,
		MedalRequirement:      15,
		MedalCBReq:            75,
		RarewareGBFairies:     20,
		ProgressiveHintText:   60,
		CrownDoorItem:         HelmDoorVanilla,
		CrownDoorItemCount:    4,
		CoinDoorItem:          HelmDoorVanilla,
		CoinDoorItemCount:     2,
		MusicVolume:           100,
		SfxVolume:             100,
		CustomMusicProportion: 100,
	}
}

// FromPostBody builds settings from a request body, either the settings
// object itself or one wrapped under "post_body". Enum fields accept names
// or ordinals; a value that does not convert is dropped so the field keeps
// its default. A missing or zero seed is replaced by one drawn from r.
func FromPostBody(body []byte, r rng.Rand) (*Settings, error) {
	s := Defaults()
	if len(body) == 0 {
		s.Seed = int64(r.Intn(MaxSeed + 1))
		s.Normalize()
		return s, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.InvalidArgumentf("settings body is not a JSON object: %v", err)
	}
	if wrapped, ok := raw[postBodyKey]; ok {
		inner, err := unwrapPostBody(wrapped)
		if err != nil {
			return nil, err
		}
		raw = inner
	}

	for _, key := range numericFields {
		value, ok := raw[key]
		if !ok {
			continue
		}
		converted, ok := convertNumber(value)
		if !ok {
			delete(raw, key)
			continue
		}
		raw[key] = converted
	}

	for key, all := range enumFields {
		value, ok := raw[key]
		if !ok {
			continue
		}
		converted, ok := convertEnumValue(all, value)
		if !ok {
			delete(raw, key)
			continue
		}
		raw[key] = converted
	}

	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-encode settings")
	}
	if err := json.Unmarshal(normalized, s); err != nil {
		return nil, errors.InvalidArgumentf("invalid settings: %v", err)
	}

	if s.Seed <= 0 {
		s.Seed = int64(r.Intn(MaxSeed + 1))
	}

	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// postBodyKey wraps the settings as a JSON string in requests sent by the web
// front end.
const postBodyKey = "post_body"

// unwrapPostBody accepts the settings as a JSON-encoded string or as a
// nested object.
func unwrapPostBody(value json.RawMessage) (map[string]json.RawMessage, error) {
	var text string
	if err := json.Unmarshal(value, &text); err == nil {
		value = json.RawMessage(text)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(value, &raw); err != nil {
		return nil, errors.InvalidArgumentf("post_body is not a JSON object: %v", err)
	}
	return raw, nil
}

// Validate reports values Normalize cannot repair.
func (s *Settings) Validate() error {
	vb := errors.NewValidationBuilder()
	if s.Seed < 0 {
		vb.Field("seed", "must not be negative")
	}
	errors.ValidateRange("starting_kongs_count", s.StartingKongsCount, 1, len(entities.AllKongs), vb)
	return vb.Build()
}

// StartingKongs returns the kongs the player begins with, padded in game
// order up to StartingKongsCount.
func (s *Settings) StartingKongs() []entities.Kong {
	seen := make(map[entities.Kong]bool, len(entities.AllKongs))
	out := make([]entities.Kong, 0, s.StartingKongsCount)
	for _, k := range s.StartingKongList {
		if len(out) == s.StartingKongsCount {
			return out
		}
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for _, k := range entities.AllKongs {
		if len(out) == s.StartingKongsCount {
			break
		}
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// numericFields are the integer options. Form inputs post them as strings.
var numericFields = []string{
	"seed", "starting_moves_count", "starting_kongs_count", "blocker_text", "troff_text",
	"medal_requirement", "medal_cb_req", "rareware_gb_fairies", "progressive_hint_text",
	"crown_door_item_count", "coin_door_item_count", "music_volume", "sfx_volume",
	"custom_music_proportion",
}

// convertNumber accepts a JSON number or a string holding an integer. An
// empty string does not convert.
func convertNumber(raw json.RawMessage) (json.RawMessage, bool) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if _, err := n.Int64(); err == nil {
			return raw, true
		}
		return nil, false
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil, false
	}
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return nil, false
	}
	return json.RawMessage(strconv.FormatInt(v, 10)), true
}
