package prices

import (
	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/logic"
)

// Unaffordable walks every purchase line with budget coins per kong and
// returns the locations that could never be bought. Shared purchases are
// charged to every kong. When moves are coupled a step only opens once the
// earlier steps of its line are bought.
func Unaffordable(shop Shop, t Table, budget int, decoupled bool) []entities.Location {
	st := logic.NewState(entities.AllKongs...)
	st.SlamLevel = 1
	for _, k := range entities.AllKongs {
		st.Coins[k] = budget
	}

	bought := make(map[entities.Location]bool, len(entities.AllLocations))
	for progress := true; progress; {
		progress = false
		for _, seq := range Sequences {
			for i, stp := range seq {
				if !decoupled && !stepsBought(seq[:i], bought) {
					break
				}
				for _, l := range stp {
					if bought[l] || !CanBuy(l, st, shop, t) {
						continue
					}
					buy(l, st, shop, t)
					bought[l] = true
					progress = true
				}
			}
		}
	}

	var missing []entities.Location
	for _, l := range entities.AllLocations {
		if !bought[l] {
			missing = append(missing, l)
		}
	}
	return missing
}

func stepsBought(steps [][]entities.Location, bought map[entities.Location]bool) bool {
	for _, st := range steps {
		for _, l := range st {
			if !bought[l] {
				return false
			}
		}
	}
	return true
}

func buy(l entities.Location, st *logic.State, shop Shop, t Table) {
	item := shop.Item(l)
	if item == entities.ItemNoItem {
		return
	}
	price, _ := GetPriceOfMoveItem(item, t, st.SlamLevel, st.AmmoBelts, st.InstUpgrades)
	info := l.Info()
	if info.Shared() {
		for _, k := range entities.AllKongs {
			st.Coins[k] -= price
		}
	} else {
		st.Coins[info.Kong] -= price
	}
	st.AddMove(item)
}
