package doors

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/logic"
	"github.com/junglerando/rando-api/internal/pkg/rng"
)

// DoorType tells portals and hint doors apart.
type DoorType string

// Door types.
const (
	DoorTypeWrinkly DoorType = "wrinkly"
	DoorTypeTnS     DoorType = "tns"
)

// Placement is one door placed in a level. Door is nil for a T&S portal left
// at its vanilla position.
type Placement struct {
	Level entities.Level `json:"level"`
	Type  DoorType       `json:"type"`
	Kong  entities.Kong  `json:"kong,omitempty"`
	Door  *DoorData      `json:"door,omitempty"`
}

// Vanilla reports whether the door sits at its unmodified position.
func (p Placement) Vanilla() bool { return p.Door == nil }

// Options controls which doors move.
type Options struct {
	ShuffleWrinkly bool
	ShuffleTnS     bool
	ToughSpots     bool
	// State decides which slots are reachable. Nil means everything is owned.
	State *logic.State
}

// Shuffle places one Wrinkly door per kong and one T&S portal in every level
// that has door slots. Wrinkly doors go first; a T&S portal with no slot left
// stays at its vanilla position.
func Shuffle(r rng.Rand, opts Options) ([]Placement, error) {
	st := opts.State
	if st == nil {
		st = logic.FullState(0)
	}
	reachable, st := logic.Reachable(st)

	var out []Placement
	for _, level := range Levels() {
		slots := DoorLocations(level)
		usable := usableSlots(slots, reachable, st, opts.ToughSpots)

		wrinkly, err := placeWrinkly(level, slots, usable, r, opts.ShuffleWrinkly)
		if err != nil {
			return nil, err
		}
		out = append(out, wrinkly...)
		out = append(out, placeTnS(level, slots, usable, r, opts.ShuffleTnS))
	}
	return out, nil
}

func usableSlots(slots []DoorData, reachable mapset.Set[entities.Region], st *logic.State, toughSpots bool) []int {
	var out []int
	for i := range slots {
		d := &slots[i]
		if !d.Enabled || (d.ToughSpot && !toughSpots) {
			continue
		}
		if !reachable.Has(d.LogicRegion) || !d.Logic(st) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func placeWrinkly(level entities.Level, slots []DoorData, usable []int, r rng.Rand, shuffle bool) ([]Placement, error) {
	if !shuffle {
		out := make([]Placement, 0, len(entities.AllKongs))
		for i, k := range entities.AllKongs {
			slots[i].AssignDoor(k)
			out = append(out, Placement{Level: level, Type: DoorTypeWrinkly, Kong: k, Door: &slots[i]})
		}
		return out, nil
	}

	// Kongs with the fewest candidate slots pick first.
	order := slices.Clone(entities.AllKongs)
	r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	slices.SortStableFunc(order, func(a, b entities.Kong) int {
		return candidates(slots, usable, a) - candidates(slots, usable, b)
	})

	out := make([]Placement, 0, len(order))
	for _, k := range order {
		var open []int
		for _, i := range usable {
			if !slots[i].Placed && slots[i].AllowsKong(k) {
				open = append(open, i)
			}
		}
		if len(open) == 0 {
			return nil, errors.PlacementFailedf("no wrinkly door slot for %s in %s", k, level).
				WithMeta("level", string(level)).
				WithMeta("kong", string(k))
		}
		i := rng.Pick(r, open)
		slots[i].AssignDoor(k)
		out = append(out, Placement{Level: level, Type: DoorTypeWrinkly, Kong: k, Door: &slots[i]})
	}

	slices.SortFunc(out, func(a, b Placement) int { return a.Kong.Index() - b.Kong.Index() })
	return out, nil
}

func candidates(slots []DoorData, usable []int, k entities.Kong) int {
	n := 0
	for _, i := range usable {
		if slots[i].AllowsKong(k) {
			n++
		}
	}
	return n
}

func placeTnS(level entities.Level, slots []DoorData, usable []int, r rng.Rand, shuffle bool) Placement {
	p := Placement{Level: level, Type: DoorTypeTnS}
	if !shuffle {
		return p
	}
	var open []int
	for _, i := range usable {
		if !slots[i].Placed && slots[i].AllowsEveryKong() {
			open = append(open, i)
		}
	}
	if len(open) == 0 {
		return p
	}
	i := rng.Pick(r, open)
	slots[i].Placed = true
	p.Door = &slots[i]
	return p
}
