package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/placement/coins"
	"github.com/junglerando/rando-api/internal/placement/doors"
	"github.com/junglerando/rando-api/internal/placement/fairies"
	"github.com/junglerando/rando-api/internal/placement/prices"
	"github.com/junglerando/rando-api/internal/settings"
)

// Spoiler log section names.
const (
	SectionSettings         = "Settings"
	SectionCosmetics        = "Cosmetics"
	SectionSpoilerHints     = "Spoiler Hints"
	SectionSpoilerHintsData = "Spoiler Hints Data"
	SectionShopPrices       = "Shop Prices"
	SectionDoors            = "Doors"
	SectionFairies          = "Fairies"
	SectionRequirements     = "Requirements"
	SectionGeneration       = "Generation"
)

// PublicSections are kept when a seed is generated without a spoiler log.
var PublicSections = []string{SectionSettings, SectionCosmetics, SectionSpoilerHints, SectionSpoilerHintsData}

// Spoiler records every placement made for a seed.
type Spoiler struct {
	settings *settings.Settings

	Hash             [settings.HashLength]int
	Prices           prices.Table
	Shop             prices.Shop
	Doors            []doors.Placement
	Fairies          []fairies.Placement
	CoinRequirements coins.Requirements

	hints     map[string]string
	hintsData *hintsData
	internal  *generationData
}

// generationData only helps while debugging a generator run.
type generationData struct {
	ShopAttempts int `json:"shop_attempts"`
}

type shopHint struct {
	Location entities.Location `json:"location"`
	Vendor   entities.Vendor   `json:"vendor"`
	Price    int               `json:"price"`
}

type hintsData struct {
	Shops   map[entities.Item][]shopHint                `json:"shops"`
	Wrinkly map[entities.Level]map[entities.Kong]string `json:"wrinkly_doors"`
	Portals map[entities.Level]string                   `json:"portals"`
	Fairies map[entities.Level][]string                 `json:"fairies"`
}

func newSpoiler(s *settings.Settings) *Spoiler {
	return &Spoiler{
		settings: s,
		internal: &generationData{},
	}
}

// Settings returns the settings the seed was generated from
func (sp *Spoiler) Settings() *settings.Settings {
	return sp.settings
}

// HashString renders the hash the way the file select screen lists it.
func (sp *Spoiler) HashString() string {
	parts := make([]string, len(sp.Hash))
	for i, h := range sp.Hash {
		parts[i] = fmt.Sprint(h)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FlushAllExcessSpoilerData drops data only the generator needs.
func (sp *Spoiler) FlushAllExcessSpoilerData() {
	sp.internal = nil
}

// hintedItems are the purchases players ask about most.
var hintedItems = []entities.Item{
	entities.ItemCoconut, entities.ItemPeanut, entities.ItemGrape, entities.ItemFeather, entities.ItemPineapple,
	entities.ItemBongos, entities.ItemGuitar, entities.ItemTrombone, entities.ItemSaxophone, entities.ItemTriangle,
	entities.ItemProgressiveSlam,
}

func (sp *Spoiler) buildHints() {
	sp.hints = make(map[string]string)
	data := &hintsData{
		Shops:   make(map[entities.Item][]shopHint),
		Wrinkly: make(map[entities.Level]map[entities.Kong]string),
		Portals: make(map[entities.Level]string),
		Fairies: make(map[entities.Level][]string),
	}

	locationPrices := sp.Shop.LocationPrices(sp.Prices)
	for _, l := range entities.AllLocations {
		item := sp.Shop.Item(l)
		if item == entities.ItemNoItem {
			continue
		}
		data.Shops[item] = append(data.Shops[item], shopHint{
			Location: l,
			Vendor:   l.Info().Vendor,
			Price:    locationPrices[l],
		})
	}
	for _, item := range hintedItems {
		var where []string
		for _, h := range data.Shops[item] {
			where = append(where, fmt.Sprintf("%s (%s, %d coins)", h.Location, h.Vendor, h.Price))
		}
		if len(where) > 0 {
			sp.hints[string(item)] = strings.Join(where, "; ")
		}
	}

	for _, p := range sp.Doors {
		switch p.Type {
		case doors.DoorTypeWrinkly:
			if data.Wrinkly[p.Level] == nil {
				data.Wrinkly[p.Level] = make(map[entities.Kong]string)
			}
			name := "Vanilla"
			if p.Door != nil {
				name = p.Door.Name
			}
			data.Wrinkly[p.Level][p.Kong] = name
		case doors.DoorTypeTnS:
			name := "Vanilla"
			if !p.Vanilla() {
				name = p.Door.Name
			}
			data.Portals[p.Level] = name
			sp.hints[fmt.Sprintf("%s Boss Portal", p.Level)] = name
		}
	}

	for _, f := range sp.Fairies {
		data.Fairies[f.Level] = append(data.Fairies[f.Level], f.Fairy.Name)
	}
	sp.hintsData = data
}

type cosmetics struct {
	RandomColors          bool `json:"random_colors"`
	RandomMusic           bool `json:"random_music"`
	MusicVolume           int  `json:"music_volume"`
	SfxVolume             int  `json:"sfx_volume"`
	CustomMusicProportion int  `json:"custom_music_proportion"`
}

type shopEntry struct {
	Item         entities.Item `json:"item"`
	Price        int           `json:"price"`
	LogicalPrice int           `json:"logical_price"`
}

type helmDoor struct {
	Item  settings.HelmDoorItem `json:"item"`
	Count int                   `json:"count"`
}

type requirements struct {
	BlockerMax       int                `json:"blocker_max"`
	TroffMax         int                `json:"troff_max"`
	Medals           int                `json:"medals"`
	MedalCBReq       int                `json:"medal_cb_req"`
	Fairies          int                `json:"fairies"`
	HelmDoor1        helmDoor           `json:"helm_door_1"`
	HelmDoor2        helmDoor           `json:"helm_door_2"`
	CoinRequirements coins.Requirements `json:"race_coins"`
}

// Sections builds every spoiler section keyed by name.
func (sp *Spoiler) Sections() (map[string]any, error) {
	s := sp.settings

	settingsData, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode settings section")
	}
	settingsSection := make(map[string]any)
	if err := json.Unmarshal(settingsData, &settingsSection); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings section")
	}
	settingsSection["seed_id"] = s.SeedID
	settingsSection["seed_hash"] = sp.Hash

	locationPrices := sp.Shop.LocationPrices(sp.Prices)
	shop := make(map[entities.Location]shopEntry, len(entities.AllLocations))
	for _, l := range entities.AllLocations {
		shop[l] = shopEntry{
			Item:         sp.Shop.Item(l),
			Price:        locationPrices[l],
			LogicalPrice: logicalPrice(l, locationPrices, s.DecoupleMoveSequences),
		}
	}

	sections := map[string]any{
		SectionSettings: settingsSection,
		SectionCosmetics: cosmetics{
			RandomColors:          s.RandomColors,
			RandomMusic:           s.RandomMusic,
			MusicVolume:           s.MusicVolume,
			SfxVolume:             s.SfxVolume,
			CustomMusicProportion: s.CustomMusicProportion,
		},
		SectionSpoilerHints:     sp.hints,
		SectionSpoilerHintsData: sp.hintsData,
		SectionShopPrices: map[string]any{
			"prices":    sp.Prices,
			"locations": shop,
		},
		SectionDoors:   sp.Doors,
		SectionFairies: sp.Fairies,
		SectionRequirements: requirements{
			BlockerMax:       s.BlockerText,
			TroffMax:         s.TroffText,
			Medals:           s.MedalRequirement,
			MedalCBReq:       s.MedalCBReq,
			Fairies:          s.RarewareGBFairies,
			HelmDoor1:        helmDoor{Item: s.CrownDoorItem, Count: s.CrownDoorItemCount},
			HelmDoor2:        helmDoor{Item: s.CoinDoorItem, Count: s.CoinDoorItemCount},
			CoinRequirements: sp.CoinRequirements,
		},
	}
	if sp.internal != nil {
		sections[SectionGeneration] = sp.internal
	}
	return sections, nil
}

// logicalPrice takes the highest kong requirement for shared locations,
// since every kong has to be able to afford them.
func logicalPrice(l entities.Location, locationPrices map[entities.Location]int, decoupled bool) int {
	if kong := l.Info().Kong; kong != "" {
		return prices.LogicalPrice(l, kong, locationPrices, decoupled)
	}
	highest := 0
	for _, k := range entities.AllKongs {
		highest = max(highest, prices.LogicalPrice(l, k, locationPrices, decoupled))
	}
	return highest
}

// JSON renders the spoiler log.
func (sp *Spoiler) JSON() ([]byte, error) {
	sections, err := sp.Sections()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(sections)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode spoiler log")
	}
	return data, nil
}

// Filter keeps only the named sections of an encoded spoiler log.
func Filter(spoilerLog []byte, keep ...string) ([]byte, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(spoilerLog, &sections); err != nil {
		return nil, errors.InvalidArgumentf("spoiler log is not a JSON object: %v", err)
	}
	out := make(map[string]json.RawMessage, len(keep))
	for _, name := range keep {
		if section, ok := sections[name]; ok {
			out[name] = section
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode filtered spoiler log")
	}
	return data, nil
}
