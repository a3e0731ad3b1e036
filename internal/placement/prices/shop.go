package prices

import (
	"encoding/json"

	"github.com/junglerando/rando-api/internal/entities"
)

// Shop assigns an item to every shop location.
type Shop map[entities.Location]entities.Item

// VanillaShop returns the unshuffled shop contents.
func VanillaShop() Shop {
	out := make(Shop, len(entities.AllLocations))
	for _, l := range entities.AllLocations {
		out[l] = l.Info().VanillaItem
	}
	return out
}

// Item returns what the location sells, NoItem when empty.
func (s Shop) Item(l entities.Location) entities.Item {
	if item, ok := s[l]; ok {
		return item
	}
	return entities.ItemNoItem
}

// LocationPrices resolves a price for every shop location. A progressive item
// takes the tier matching how many earlier locations sell the same item.
func (s Shop) LocationPrices(t Table) map[entities.Location]int {
	out := make(map[entities.Location]int, len(entities.AllLocations))
	seen := make(map[entities.Item]int)
	for _, l := range entities.AllLocations {
		item := s.Item(l)
		if item == entities.ItemNoItem {
			out[l] = 0
			continue
		}
		tier := seen[item]
		seen[item]++
		price, _ := t.Price(item, tier)
		out[l] = price
	}
	return out
}

// MarshalJSON writes the shop keyed by location name.
func (s Shop) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(s))
	for l, item := range s {
		out[string(l)] = string(item)
	}
	return json.Marshal(out)
}

// GetMaxForKong is the most the kong could ever spend: every shared location
// plus every location only that kong can buy.
func GetMaxForKong(locationPrices map[entities.Location]int, kong entities.Kong) int {
	total := 0
	for _, l := range entities.SharedLocations() {
		total += locationPrices[l]
	}
	for _, l := range entities.KongLocations(kong) {
		total += locationPrices[l]
	}
	return total
}
