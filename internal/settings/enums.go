package settings

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/placement/prices"
)

// MoveRando controls how kong moves are placed.
type MoveRando string

// Move placement modes.
const (
	MoveRandoOff           MoveRando = "off"
	MoveRandoOn            MoveRando = "on"
	MoveRandoCrossPurchase MoveRando = "on_cross_purchase"
	MoveRandoStartWith     MoveRando = "start_with"
)

// MoveRandoModes lists every move placement mode.
var MoveRandoModes = []MoveRando{MoveRandoOff, MoveRandoOn, MoveRandoCrossPurchase, MoveRandoStartWith}

// Shuffled reports whether shop contents are randomized.
func (m MoveRando) Shuffled() bool {
	return m == MoveRandoOn || m == MoveRandoCrossPurchase
}

// LevelRandomization controls the order lobbies lead into levels.
type LevelRandomization string

// Level randomization modes.
const (
	LevelVanilla     LevelRandomization = "vanilla"
	LevelOrder       LevelRandomization = "level_order"
	LevelLoadingZone LevelRandomization = "loadingzone"
)

// LevelRandomizations lists every level randomization mode.
var LevelRandomizations = []LevelRandomization{LevelVanilla, LevelOrder, LevelLoadingZone}

// TrainingBarrels controls the training ground moves.
type TrainingBarrels string

// Training barrel modes.
const (
	TrainingNormal   TrainingBarrels = "normal"
	TrainingShuffled TrainingBarrels = "shuffled"
)

// TrainingBarrelModes lists every training barrel mode.
var TrainingBarrelModes = []TrainingBarrels{TrainingNormal, TrainingShuffled}

// ShockwaveStatus controls where the fairy camera and shockwave come from.
type ShockwaveStatus string

// Shockwave modes.
const (
	ShockwaveVanilla           ShockwaveStatus = "vanilla"
	ShockwaveShuffled          ShockwaveStatus = "shuffled"
	ShockwaveShuffledDecoupled ShockwaveStatus = "shuffled_decoupled"
	ShockwaveStartWith         ShockwaveStatus = "start_with"
)

// ShockwaveModes lists every shockwave mode.
var ShockwaveModes = []ShockwaveStatus{ShockwaveVanilla, ShockwaveShuffled, ShockwaveShuffledDecoupled, ShockwaveStartWith}

// HelmDoorItem is the collectible a Hideout Helm door asks for.
type HelmDoorItem string

// Helm door items. Not every item is valid on both doors.
const (
	HelmDoorVanilla      HelmDoorItem = "vanilla"
	HelmDoorGB           HelmDoorItem = "req_gb"
	HelmDoorBP           HelmDoorItem = "req_bp"
	HelmDoorCompanyCoins HelmDoorItem = "req_companycoins"
	HelmDoorKey          HelmDoorItem = "req_key"
	HelmDoorMedal        HelmDoorItem = "req_medal"
	HelmDoorCrown        HelmDoorItem = "req_crown"
	HelmDoorFairy        HelmDoorItem = "req_fairy"
	HelmDoorBean         HelmDoorItem = "req_bean"
	HelmDoorPearl        HelmDoorItem = "req_pearl"
	HelmDoorRainbowCoin  HelmDoorItem = "req_rainbowcoin"
)

// HelmDoorItems lists every helm door item.
var HelmDoorItems = []HelmDoorItem{
	HelmDoorVanilla, HelmDoorGB, HelmDoorBP, HelmDoorCompanyCoins, HelmDoorKey, HelmDoorMedal,
	HelmDoorCrown, HelmDoorFairy, HelmDoorBean, HelmDoorPearl, HelmDoorRainbowCoin,
}

// Per-door maximum counts. An item missing from a door's table is not
// allowed on that door.
var (
	crownDoorCaps = map[HelmDoorItem]int{
		HelmDoorVanilla:      10,
		HelmDoorGB:           201,
		HelmDoorBP:           40,
		HelmDoorCompanyCoins: 2,
		HelmDoorKey:          8,
		HelmDoorMedal:        40,
		HelmDoorFairy:        18,
		HelmDoorBean:         1,
		HelmDoorPearl:        5,
		HelmDoorRainbowCoin:  16,
	}
	coinDoorCaps = map[HelmDoorItem]int{
		HelmDoorVanilla:     2,
		HelmDoorGB:          201,
		HelmDoorBP:          40,
		HelmDoorKey:         8,
		HelmDoorMedal:       40,
		HelmDoorCrown:       10,
		HelmDoorFairy:       18,
		HelmDoorBean:        1,
		HelmDoorPearl:       5,
		HelmDoorRainbowCoin: 16,
	}
)

func names[T ~string](all []T) []string {
	out := make([]string, len(all))
	for i, v := range all {
		out[i] = string(v)
	}
	return out
}

// enumFields maps a post body key to the names its value may take. A value
// can be given by name or by ordinal into this list.
var enumFields = map[string][]string{
	"random_prices":       names(prices.Weights),
	"move_rando":          names(MoveRandoModes),
	"level_randomization": names(LevelRandomizations),
	"training_barrels":    names(TrainingBarrelModes),
	"shockwave_status":    names(ShockwaveModes),
	"crown_door_item":     names(HelmDoorItems),
	"coin_door_item":      names(HelmDoorItems),
	"starting_kong_list":  names(entities.AllKongs),
}

// convertEnum resolves one raw value to a canonical name.
func convertEnum(all []string, raw json.RawMessage) (string, bool) {
	var ordinal int
	if err := json.Unmarshal(raw, &ordinal); err == nil {
		if ordinal < 0 || ordinal >= len(all) {
			return "", false
		}
		return all[ordinal], true
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return "", false
	}
	for _, candidate := range all {
		if candidate == name {
			return candidate, true
		}
	}
	for _, candidate := range all {
		if strings.EqualFold(candidate, name) {
			return candidate, true
		}
	}
	if i, err := strconv.Atoi(name); err == nil && i >= 0 && i < len(all) {
		return all[i], true
	}
	return "", false
}

// convertEnumValue converts a scalar or a list. A list converts element by
// element and fails as a whole if any element fails.
func convertEnumValue(all []string, raw json.RawMessage) (json.RawMessage, bool) {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		converted := make([]string, 0, len(list))
		for _, item := range list {
			name, ok := convertEnum(all, item)
			if !ok {
				return nil, false
			}
			converted = append(converted, name)
		}
		out, err := json.Marshal(converted)
		return out, err == nil
	}

	name, ok := convertEnum(all, raw)
	if !ok {
		return nil, false
	}
	out, err := json.Marshal(name)
	return out, err == nil
}
