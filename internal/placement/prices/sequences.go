package prices

import "github.com/junglerando/rando-api/internal/entities"

// Sequence is a purchase line. Each step lists the locations sold at that
// point; a step with several locations offers one per kong.
type Sequence [][]entities.Location

func step(ls ...entities.Location) []entities.Location { return ls }

// Sequences are the purchase lines of every vendor.
var Sequences = []Sequence{
	{step(entities.LocationSuperSimianSlam), step(entities.LocationSuperDuperSlam)},
	{
		step(entities.LocationCoconutGun, entities.LocationPeanutGun, entities.LocationGrapeGun,
			entities.LocationFeatherGun, entities.LocationPineappleGun),
		step(entities.LocationAmmoBelt1),
		step(entities.LocationHomingAmmo),
		step(entities.LocationAmmoBelt2),
		step(entities.LocationSniperSight),
	},
	{
		step(entities.LocationBongos, entities.LocationGuitar, entities.LocationTrombone,
			entities.LocationSaxophone, entities.LocationTriangle),
		step(entities.LocationMusicUpgrade1),
		step(entities.LocationThirdMelon),
		step(entities.LocationMusicUpgrade2),
	},
	{step(entities.LocationBaboonBlast), step(entities.LocationStrongKong), step(entities.LocationGorillaGrab)},
	{step(entities.LocationChimpyCharge), step(entities.LocationRocketbarrelBoost), step(entities.LocationSimianSpring)},
	{step(entities.LocationOrangstand), step(entities.LocationBaboonBalloon), step(entities.LocationOrangstandSprint)},
	{step(entities.LocationMiniMonkey), step(entities.LocationPonyTailTwirl), step(entities.LocationMonkeyport)},
	{step(entities.LocationHunkyChunky), step(entities.LocationPrimatePunch), step(entities.LocationGorillaGone)},
}

// SequenceOf finds the sequence holding the location and the step it sits at.
func SequenceOf(l entities.Location) (Sequence, int, bool) {
	for _, seq := range Sequences {
		for i, st := range seq {
			for _, candidate := range st {
				if candidate == l {
					return seq, i, true
				}
			}
		}
	}
	return nil, 0, false
}

// LogicalPrice is the coin count a kong must hold before buying at the
// location can never lock it out of another purchase.
//
// Coupled moves are bought in sequence, so the later steps of the line are
// still ahead and their prices come off the kong's maximum. Decoupled moves
// can be bought in any order, so any location may be the last one.
func LogicalPrice(l entities.Location, kong entities.Kong, locationPrices map[entities.Location]int, decoupled bool) int {
	total := GetMaxForKong(locationPrices, kong)
	if decoupled {
		return total
	}
	seq, at, ok := SequenceOf(l)
	if !ok {
		return total
	}
	for _, later := range seq[at+1:] {
		for _, candidate := range later {
			info := candidate.Info()
			if info.Shared() || info.Kong == kong {
				total -= locationPrices[candidate]
			}
		}
	}
	return total
}
