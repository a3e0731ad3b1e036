// Package prices holds shop prices: the vanilla table, weighted random
// tables, per-kong spending limits and the purchase checks used by logic.
package prices

import (
	"encoding/json"
	"math"

	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/pkg/rng"
)

// Weight selects the price distribution.
type Weight string

// Price weights.
const (
	WeightVanilla Weight = "vanilla"
	WeightFree    Weight = "free"
	WeightLow     Weight = "low"
	WeightMedium  Weight = "medium"
	WeightHigh    Weight = "high"
)

// Weights lists every accepted weight.
var Weights = []Weight{WeightVanilla, WeightFree, WeightLow, WeightMedium, WeightHigh}

// ParseWeight accepts a weight name.
func ParseWeight(s string) (Weight, error) {
	for _, w := range Weights {
		if string(w) == s {
			return w, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown price weight %q", s)
}

// Table maps an item to its price. Progressive items carry one price per tier,
// every other item exactly one.
type Table map[entities.Item][]int

// ProgressiveMoves is the number of tiers each progressive item has.
var ProgressiveMoves = map[entities.Item]int{
	entities.ItemProgressiveSlam:              2,
	entities.ItemProgressiveAmmoBelt:          2,
	entities.ItemProgressiveInstrumentUpgrade: 3,
}

// priceOrder fixes iteration order so a seed always draws prices in the same
// sequence.
var priceOrder = []entities.Item{
	entities.ItemBaboonBlast, entities.ItemStrongKong, entities.ItemGorillaGrab,
	entities.ItemChimpyCharge, entities.ItemRocketbarrel, entities.ItemSimianSpring,
	entities.ItemOrangstand, entities.ItemBaboonBalloon, entities.ItemOrangSprint,
	entities.ItemMiniMonkey, entities.ItemPonyTailTwirl, entities.ItemMonkeyport,
	entities.ItemHunkyChunky, entities.ItemPrimatePunch, entities.ItemGorillaGone,
	entities.ItemCoconut, entities.ItemPeanut, entities.ItemGrape, entities.ItemFeather, entities.ItemPineapple,
	entities.ItemHomingAmmo, entities.ItemSniperSight,
	entities.ItemBongos, entities.ItemGuitar, entities.ItemTrombone, entities.ItemSaxophone, entities.ItemTriangle,
	entities.ItemProgressiveSlam, entities.ItemProgressiveAmmoBelt, entities.ItemProgressiveInstrumentUpgrade,
}

var vanillaPrices = Table{
	entities.ItemBaboonBlast:   {3},
	entities.ItemStrongKong:    {5},
	entities.ItemGorillaGrab:   {7},
	entities.ItemChimpyCharge:  {3},
	entities.ItemRocketbarrel:  {5},
	entities.ItemSimianSpring:  {7},
	entities.ItemOrangstand:    {3},
	entities.ItemBaboonBalloon: {5},
	entities.ItemOrangSprint:   {7},
	entities.ItemMiniMonkey:    {3},
	entities.ItemPonyTailTwirl: {5},
	entities.ItemMonkeyport:    {7},
	entities.ItemHunkyChunky:   {3},
	entities.ItemPrimatePunch:  {5},
	entities.ItemGorillaGone:   {7},
	entities.ItemCoconut:       {3},
	entities.ItemPeanut:        {3},
	entities.ItemGrape:         {3},
	entities.ItemFeather:       {3},
	entities.ItemPineapple:     {3},
	entities.ItemHomingAmmo:    {5},
	entities.ItemSniperSight:   {7},
	entities.ItemBongos:        {3},
	entities.ItemGuitar:        {3},
	entities.ItemTrombone:      {3},
	entities.ItemSaxophone:     {3},
	entities.ItemTriangle:      {3},

	entities.ItemProgressiveSlam:              {5, 7},
	entities.ItemProgressiveAmmoBelt:          {3, 5},
	entities.ItemProgressiveInstrumentUpgrade: {5, 7, 9},
}

// VanillaPrices returns a fresh copy of the unmodified game prices.
func VanillaPrices() Table {
	return vanillaPrices.Clone()
}

// Items returns the priced items in draw order.
func Items() []entities.Item {
	return append([]entities.Item(nil), priceOrder...)
}

// Clone returns an independent copy.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for item, p := range t {
		out[item] = append([]int(nil), p...)
	}
	return out
}

// Price returns the price of the given tier of an item.
func (t Table) Price(item entities.Item, tier int) (int, bool) {
	p, ok := t[item]
	if !ok || tier < 0 || tier >= len(p) {
		return 0, false
	}
	return p[tier], true
}

// MarshalJSON writes single prices as numbers and progressive prices as lists.
func (t Table) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(t))
	for item, p := range t {
		if item.IsProgressive() {
			out[string(item)] = p
			continue
		}
		if len(p) > 0 {
			out[string(item)] = p[0]
		}
	}
	return json.Marshal(out)
}

type distribution struct {
	avg    float64
	stddev float64
}

// A kong can buy up to 14 items. Vanilla lets one kong spend up to 74 coins.
// low aims for a max near 40, high near 110, medium sits between them.
var distributions = map[Weight]distribution{
	WeightLow:    {avg: 2.8571, stddev: 2.8571 * 0.25},
	WeightMedium: {avg: 5.3571, stddev: 5.3571 * 0.25},
	WeightHigh:   {avg: 7.8571, stddev: 7.8571 * 0.2},
}

// RandomizePrices draws a full price table for the weight. Every vanilla key
// is present and progressive items get one price per tier.
func RandomizePrices(weight Weight, r rng.Rand) (Table, error) {
	switch weight {
	case WeightVanilla:
		return VanillaPrices(), nil
	case WeightFree:
		out := make(Table, len(priceOrder))
		for _, item := range priceOrder {
			out[item] = make([]int, tiers(item))
		}
		return out, nil
	}

	dist, ok := distributions[weight]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown price weight %q", weight)
	}

	out := make(Table, len(priceOrder))
	for _, item := range priceOrder {
		p := make([]int, tiers(item))
		for i := range p {
			p[i] = max(0, int(math.RoundToEven(r.Normal(dist.avg, dist.stddev))))
		}
		out[item] = p
	}
	return out, nil
}

func tiers(item entities.Item) int {
	if n, ok := ProgressiveMoves[item]; ok {
		return n
	}
	return 1
}
