package logic

import "github.com/junglerando/rando-api/internal/entities"

// Predicate gates a region exit, an event, a door slot or a fairy.
type Predicate func(s *State) bool

// Always is satisfied by every state.
func Always(*State) bool { return true }

// Never is satisfied by no state.
func Never(*State) bool { return false }

// Has requires an item regardless of kong.
func Has(item entities.Item) Predicate {
	return func(s *State) bool { return s.HasMove(item) }
}

// IsKong requires the kong to be unlocked.
func IsKong(k entities.Kong) Predicate {
	return func(s *State) bool { return s.HasKong(k) }
}

// KongHas requires the kong and one of its moves.
func KongHas(k entities.Kong, item entities.Item) Predicate {
	return func(s *State) bool { return s.HasKong(k) && s.HasMove(item) }
}

// Event requires an event to have happened.
func Event(e entities.Event) Predicate {
	return func(s *State) bool { return s.HasEvent(e) }
}

// All requires every predicate.
func All(ps ...Predicate) Predicate {
	return func(s *State) bool {
		for _, p := range ps {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

// Any requires at least one predicate.
func Any(ps ...Predicate) Predicate {
	return func(s *State) bool {
		for _, p := range ps {
			if p(s) {
				return true
			}
		}
		return false
	}
}

// Slam requires at least the first slam tier.
func Slam(s *State) bool { return s.SlamLevel >= 1 }

// Named move requirements.
var (
	Camera  = Has(entities.ItemCamera)
	Vines   = Has(entities.ItemVines)
	Swim    = Has(entities.ItemSwim)
	Oranges = Has(entities.ItemOranges)
	Barrels = Has(entities.ItemBarrels)

	Blast      = KongHas(entities.KongDonkey, entities.ItemBaboonBlast)
	Strong     = KongHas(entities.KongDonkey, entities.ItemStrongKong)
	Grab       = KongHas(entities.KongDonkey, entities.ItemGorillaGrab)
	Charge     = KongHas(entities.KongDiddy, entities.ItemChimpyCharge)
	Jetpack    = KongHas(entities.KongDiddy, entities.ItemRocketbarrel)
	Spring     = KongHas(entities.KongDiddy, entities.ItemSimianSpring)
	Handstand  = KongHas(entities.KongLanky, entities.ItemOrangstand)
	Balloon    = KongHas(entities.KongLanky, entities.ItemBaboonBalloon)
	Sprint     = KongHas(entities.KongLanky, entities.ItemOrangSprint)
	Mini       = KongHas(entities.KongTiny, entities.ItemMiniMonkey)
	Twirl      = KongHas(entities.KongTiny, entities.ItemPonyTailTwirl)
	Monkeyport = KongHas(entities.KongTiny, entities.ItemMonkeyport)
	Hunky      = KongHas(entities.KongChunky, entities.ItemHunkyChunky)
	Punch      = KongHas(entities.KongChunky, entities.ItemPrimatePunch)
	Gone       = KongHas(entities.KongChunky, entities.ItemGorillaGone)

	Coconut   = KongHas(entities.KongDonkey, entities.ItemCoconut)
	Peanut    = KongHas(entities.KongDiddy, entities.ItemPeanut)
	Grape     = KongHas(entities.KongLanky, entities.ItemGrape)
	Feather   = KongHas(entities.KongTiny, entities.ItemFeather)
	Pineapple = KongHas(entities.KongChunky, entities.ItemPineapple)

	Bongos    = KongHas(entities.KongDonkey, entities.ItemBongos)
	Guitar    = KongHas(entities.KongDiddy, entities.ItemGuitar)
	Trombone  = KongHas(entities.KongLanky, entities.ItemTrombone)
	Saxophone = KongHas(entities.KongTiny, entities.ItemSaxophone)
	Triangle  = KongHas(entities.KongChunky, entities.ItemTriangle)
)
