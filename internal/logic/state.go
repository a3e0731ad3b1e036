// Package logic models what the player owns and which regions of the world
// that ownership opens up.
package logic

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/junglerando/rando-api/internal/entities"
)

// Progressive item caps.
const (
	MaxSlamLevel    = 3
	MaxAmmoBelts    = 2
	MaxInstUpgrades = 3
)

// State is the player's inventory at one point of a playthrough.
type State struct {
	Kongs  mapset.Set[entities.Kong]
	Moves  mapset.Set[entities.Item]
	Events mapset.Set[entities.Event]
	Coins  map[entities.Kong]int

	SlamLevel    int
	AmmoBelts    int
	InstUpgrades int
}

// NewState returns an empty inventory holding the given kongs.
func NewState(kongs ...entities.Kong) *State {
	s := &State{
		Kongs:  mapset.New[entities.Kong](),
		Moves:  mapset.New[entities.Item](),
		Events: mapset.New[entities.Event](),
		Coins:  make(map[entities.Kong]int, len(entities.AllKongs)),
	}
	for _, k := range kongs {
		s.Kongs.Put(k)
	}
	return s
}

// FullState owns every kong, move and event, with the given coin count per
// kong. It answers "can this ever be reached" questions during placement.
func FullState(coins int) *State {
	s := NewState(entities.AllKongs...)
	for _, item := range entities.AllItems {
		if item == entities.ItemNoItem || item.IsProgressive() {
			continue
		}
		s.Moves.Put(item)
	}
	for _, e := range entities.AllEvents {
		s.Events.Put(e)
	}
	for _, k := range entities.AllKongs {
		s.Coins[k] = coins
	}
	s.SlamLevel = MaxSlamLevel
	s.AmmoBelts = MaxAmmoBelts
	s.InstUpgrades = MaxInstUpgrades
	return s
}

// HasKong reports whether the kong is unlocked.
func (s *State) HasKong(k entities.Kong) bool { return s.Kongs.Has(k) }

// HasMove reports whether the move has been obtained.
func (s *State) HasMove(i entities.Item) bool { return s.Moves.Has(i) }

// HasEvent reports whether the event has happened.
func (s *State) HasEvent(e entities.Event) bool { return s.Events.Has(e) }

// AddKong unlocks a kong.
func (s *State) AddKong(k entities.Kong) { s.Kongs.Put(k) }

// AddEvent records an event.
func (s *State) AddEvent(e entities.Event) { s.Events.Put(e) }

// AddMove grants an item. Progressive items raise their tier up to the cap.
func (s *State) AddMove(i entities.Item) {
	switch i {
	case entities.ItemNoItem:
		return
	case entities.ItemProgressiveSlam:
		s.SlamLevel = min(s.SlamLevel+1, MaxSlamLevel)
	case entities.ItemProgressiveAmmoBelt:
		s.AmmoBelts = min(s.AmmoBelts+1, MaxAmmoBelts)
	case entities.ItemProgressiveInstrumentUpgrade:
		s.InstUpgrades = min(s.InstUpgrades+1, MaxInstUpgrades)
	default:
		s.Moves.Put(i)
	}
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	c := NewState()
	s.Kongs.Each(c.Kongs.Put)
	s.Moves.Each(c.Moves.Put)
	s.Events.Each(c.Events.Put)
	for k, v := range s.Coins {
		c.Coins[k] = v
	}
	c.SlamLevel = s.SlamLevel
	c.AmmoBelts = s.AmmoBelts
	c.InstUpgrades = s.InstUpgrades
	return c
}
