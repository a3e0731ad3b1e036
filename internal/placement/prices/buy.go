package prices

import (
	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/logic"
)

// GetPriceOfMoveItem returns what the next purchase of item costs given the
// progressive tiers already owned. ok is false once a progressive item is
// maxed out or the item has no price.
func GetPriceOfMoveItem(item entities.Item, t Table, slamLevel, ammoBelts, instUpgrades int) (int, bool) {
	switch item {
	case entities.ItemProgressiveSlam:
		// The first slam comes from training, so slam level starts at 1.
		if slamLevel == 1 || slamLevel == 2 {
			return t.Price(item, slamLevel-1)
		}
		return 0, false
	case entities.ItemProgressiveAmmoBelt:
		if ammoBelts == 0 || ammoBelts == 1 {
			return t.Price(item, ammoBelts)
		}
		return 0, false
	case entities.ItemProgressiveInstrumentUpgrade:
		if instUpgrades >= 0 && instUpgrades <= 2 {
			return t.Price(item, instUpgrades)
		}
		return 0, false
	}
	return t.Price(item, 0)
}

// KongCanBuy checks the kong's coins against the next price of whatever the
// location sells. Empty locations are always buyable.
func KongCanBuy(l entities.Location, st *logic.State, shop Shop, t Table, kong entities.Kong) bool {
	item := shop.Item(l)
	if item == entities.ItemNoItem {
		return true
	}
	price, ok := GetPriceOfMoveItem(item, t, st.SlamLevel, st.AmmoBelts, st.InstUpgrades)
	if !ok {
		return false
	}
	return st.Coins[kong] >= price
}

// AnyKongCanBuy reports whether at least one kong can buy at the location.
func AnyKongCanBuy(l entities.Location, st *logic.State, shop Shop, t Table) bool {
	for _, k := range entities.AllKongs {
		if KongCanBuy(l, st, shop, t, k) {
			return true
		}
	}
	return false
}

// EveryKongCanBuy reports whether every kong can buy at the location.
func EveryKongCanBuy(l entities.Location, st *logic.State, shop Shop, t Table) bool {
	for _, k := range entities.AllKongs {
		if !KongCanBuy(l, st, shop, t, k) {
			return false
		}
	}
	return true
}

// CanBuy checks the kong the location belongs to. Shared locations need
// every kong to afford them since any of them may walk in first.
func CanBuy(l entities.Location, st *logic.State, shop Shop, t Table) bool {
	info := l.Info()
	if info.Shared() {
		return EveryKongCanBuy(l, st, shop, t)
	}
	return KongCanBuy(l, st, shop, t, info.Kong)
}
