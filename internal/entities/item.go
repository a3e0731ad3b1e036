package entities

import "github.com/junglerando/rando-api/internal/errors"

// Item is anything that can be sold in a shop or granted at start.
type Item string

// Items. Kong-specific moves first, then shared progressive items.
const (
	ItemNoItem Item = "NoItem"

	ItemBaboonBlast   Item = "BaboonBlast"
	ItemStrongKong    Item = "StrongKong"
	ItemGorillaGrab   Item = "GorillaGrab"
	ItemChimpyCharge  Item = "ChimpyCharge"
	ItemRocketbarrel  Item = "RocketbarrelBoost"
	ItemSimianSpring  Item = "SimianSpring"
	ItemOrangstand    Item = "Orangstand"
	ItemBaboonBalloon Item = "BaboonBalloon"
	ItemOrangSprint   Item = "OrangstandSprint"
	ItemMiniMonkey    Item = "MiniMonkey"
	ItemPonyTailTwirl Item = "PonyTailTwirl"
	ItemMonkeyport    Item = "Monkeyport"
	ItemHunkyChunky   Item = "HunkyChunky"
	ItemPrimatePunch  Item = "PrimatePunch"
	ItemGorillaGone   Item = "GorillaGone"

	ItemCoconut   Item = "Coconut"
	ItemPeanut    Item = "Peanut"
	ItemGrape     Item = "Grape"
	ItemFeather   Item = "Feather"
	ItemPineapple Item = "Pineapple"

	ItemBongos    Item = "Bongos"
	ItemGuitar    Item = "Guitar"
	ItemTrombone  Item = "Trombone"
	ItemSaxophone Item = "Saxophone"
	ItemTriangle  Item = "Triangle"

	ItemProgressiveSlam              Item = "ProgressiveSlam"
	ItemProgressiveAmmoBelt          Item = "ProgressiveAmmoBelt"
	ItemProgressiveInstrumentUpgrade Item = "ProgressiveInstrumentUpgrade"
	ItemHomingAmmo                   Item = "HomingAmmo"
	ItemSniperSight                  Item = "SniperSight"

	ItemVines     Item = "Vines"
	ItemSwim      Item = "Swim"
	ItemOranges   Item = "Oranges"
	ItemBarrels   Item = "Barrels"
	ItemCamera    Item = "Camera"
	ItemShockwave Item = "Shockwave"
)

// AllItems lists every item.
var AllItems = []Item{
	ItemNoItem,
	ItemBaboonBlast, ItemStrongKong, ItemGorillaGrab,
	ItemChimpyCharge, ItemRocketbarrel, ItemSimianSpring,
	ItemOrangstand, ItemBaboonBalloon, ItemOrangSprint,
	ItemMiniMonkey, ItemPonyTailTwirl, ItemMonkeyport,
	ItemHunkyChunky, ItemPrimatePunch, ItemGorillaGone,
	ItemCoconut, ItemPeanut, ItemGrape, ItemFeather, ItemPineapple,
	ItemBongos, ItemGuitar, ItemTrombone, ItemSaxophone, ItemTriangle,
	ItemProgressiveSlam, ItemProgressiveAmmoBelt, ItemProgressiveInstrumentUpgrade,
	ItemHomingAmmo, ItemSniperSight,
	ItemVines, ItemSwim, ItemOranges, ItemBarrels, ItemCamera, ItemShockwave,
}

// TrainingMoves are granted by the training barrels.
var TrainingMoves = []Item{ItemVines, ItemSwim, ItemOranges, ItemBarrels}

var itemOwners = map[Item]Kong{
	ItemBaboonBlast: KongDonkey, ItemStrongKong: KongDonkey, ItemGorillaGrab: KongDonkey,
	ItemCoconut: KongDonkey, ItemBongos: KongDonkey,
	ItemChimpyCharge: KongDiddy, ItemRocketbarrel: KongDiddy, ItemSimianSpring: KongDiddy,
	ItemPeanut: KongDiddy, ItemGuitar: KongDiddy,
	ItemOrangstand: KongLanky, ItemBaboonBalloon: KongLanky, ItemOrangSprint: KongLanky,
	ItemGrape: KongLanky, ItemTrombone: KongLanky,
	ItemMiniMonkey: KongTiny, ItemPonyTailTwirl: KongTiny, ItemMonkeyport: KongTiny,
	ItemFeather: KongTiny, ItemSaxophone: KongTiny,
	ItemHunkyChunky: KongChunky, ItemPrimatePunch: KongChunky, ItemGorillaGone: KongChunky,
	ItemPineapple: KongChunky, ItemTriangle: KongChunky,
}

func (i Item) String() string { return string(i) }

// Index returns the item's ordinal, -1 for an unknown item.
func (i Item) Index() int { return indexOf(AllItems, i) }

// Owner returns the kong that uses a kong-specific move. Shared items report false.
func (i Item) Owner() (Kong, bool) {
	k, ok := itemOwners[i]
	return k, ok
}

// IsProgressive reports whether the item stacks over several purchases.
func (i Item) IsProgressive() bool {
	switch i {
	case ItemProgressiveSlam, ItemProgressiveAmmoBelt, ItemProgressiveInstrumentUpgrade:
		return true
	}
	return false
}

// ParseItem accepts an item name or ordinal.
func ParseItem(s string) (Item, error) {
	if v, ok := parseName(AllItems, s); ok {
		return v, nil
	}
	return "", errors.InvalidArgumentf("unknown item %q", s)
}

// UnmarshalJSON accepts names and ordinals.
func (i *Item) UnmarshalJSON(data []byte) error {
	v, ok := parseJSON(AllItems, data)
	if !ok {
		return errors.InvalidArgumentf("unknown item %s", string(data))
	}
	*i = v
	return nil
}
