// Package coins sets how many coins each race minigame asks for.
package coins

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/junglerando/rando-api/internal/errors"
)

// Minigame is a race with a coin requirement.
type Minigame string

// Race minigames, in the order their requirements are written to the ROM.
const (
	AztecBeetle Minigame = "aztec_beetle"
	JapesCart   Minigame = "japes_cart"
	FungiCart   Minigame = "fungi_cart"
	CavesBeetle Minigame = "caves_beetle"
	FactoryCar  Minigame = "factory_car"
	CastleCar   Minigame = "castle_car"
	SealRace    Minigame = "seal_race"
	CastleCart  Minigame = "castle_cart"
)

// AllMinigames lists every race in ROM order.
var AllMinigames = []Minigame{
	AztecBeetle, JapesCart, FungiCart, CavesBeetle, FactoryCar, CastleCar, SealRace, CastleCart,
}

type bounds struct {
	vanilla int
	min     int
	max     int
}

var minigameBounds = map[Minigame]bounds{
	AztecBeetle: {vanilla: 50, min: 20, max: 60},
	JapesCart:   {vanilla: 50, min: 20, max: 60},
	FungiCart:   {vanilla: 50, min: 20, max: 60},
	CavesBeetle: {vanilla: 50, min: 20, max: 60},
	FactoryCar:  {vanilla: 10, min: 5, max: 15},
	CastleCar:   {vanilla: 10, min: 5, max: 15},
	SealRace:    {vanilla: 10, min: 5, max: 15},
	CastleCart:  {vanilla: 25, min: 10, max: 45},
}

// Requirements maps a race to its coin requirement.
type Requirements map[Minigame]int

// Vanilla returns the unmodified requirements.
func Vanilla() Requirements {
	out := make(Requirements, len(AllMinigames))
	for _, m := range AllMinigames {
		out[m] = minigameBounds[m].vanilla
	}
	return out
}

// Randomize draws each requirement uniformly within the race's bounds.
func Randomize(roller dice.Roller) (Requirements, error) {
	out := make(Requirements, len(AllMinigames))
	for _, m := range AllMinigames {
		b := minigameBounds[m]
		roll, err := roller.Roll(b.max - b.min + 1)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll coin requirement for %s", m)
		}
		out[m] = b.min + roll - 1
	}
	return out, nil
}

// Bounds returns the lowest and highest requirement a race can get.
func Bounds(m Minigame) (int, int) {
	b := minigameBounds[m]
	return b.min, b.max
}

// Bytes returns the requirements in ROM order, one byte each.
func (r Requirements) Bytes() []byte {
	out := make([]byte, len(AllMinigames))
	for i, m := range AllMinigames {
		out[i] = byte(r[m])
	}
	return out
}
