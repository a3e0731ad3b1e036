package fairies

import (
	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/logic"
	"github.com/junglerando/rando-api/internal/pkg/rng"
)

// TotalFairies is the number of fairies in the game.
const TotalFairies = 20

// Placement is a fairy placed in a level. Index is the fairy's number in the
// save file, unique across the game.
type Placement struct {
	Level entities.Level `json:"level"`
	Index int            `json:"index"`
	Fairy FairyData      `json:"fairy"`
}

// Options controls the fairy shuffle.
type Options struct {
	Random bool
	// State decides which spots are reachable. Nil means everything is owned.
	State *logic.State
}

// Shuffle returns TotalFairies placements. Vanilla keeps every fairy where it
// was; random mode keeps each level's count but picks among every reachable
// spot of the level, including the relocated 5-Door Ship spot.
func Shuffle(r rng.Rand, opts Options) ([]Placement, error) {
	st := opts.State
	if st == nil {
		st = logic.FullState(0)
	}
	reachable, st := logic.Reachable(st)

	out := make([]Placement, 0, TotalFairies)
	for _, level := range Levels() {
		vanilla := VanillaFairies(level, opts.Random)
		if !opts.Random {
			for _, f := range vanilla {
				out = append(out, Placement{Level: level, Index: len(out), Fairy: f})
			}
			continue
		}

		pool := FairyLocations(level)
		if level == entities.LevelGloomyGalleon {
			pool = append(pool, Relocated5DSFairy())
		}
		var open []FairyData
		for _, f := range pool {
			if reachable.Has(f.Region) && f.Logic(st) {
				open = append(open, f)
			}
		}
		if len(open) < len(vanilla) {
			return nil, errors.PlacementFailedf("no fairy slots left in %s", level).
				WithMeta("level", string(level)).
				WithMeta("needed", len(vanilla)).
				WithMeta("available", len(open))
		}
		r.Shuffle(len(open), func(i, j int) { open[i], open[j] = open[j], open[i] })
		for _, f := range open[:len(vanilla)] {
			out = append(out, Placement{Level: level, Index: len(out), Fairy: f})
		}
	}
	return out, nil
}
