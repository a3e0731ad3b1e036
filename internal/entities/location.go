package entities

import "github.com/junglerando/rando-api/internal/errors"

// Location is a shop slot that sells one item.
type Location string

// Shop locations. Shared locations are sold to every kong.
const (
	LocationBaboonBlast       Location = "BaboonBlast"
	LocationStrongKong        Location = "StrongKong"
	LocationGorillaGrab       Location = "GorillaGrab"
	LocationChimpyCharge      Location = "ChimpyCharge"
	LocationRocketbarrelBoost Location = "RocketbarrelBoost"
	LocationSimianSpring      Location = "SimianSpring"
	LocationOrangstand        Location = "Orangstand"
	LocationBaboonBalloon     Location = "BaboonBalloon"
	LocationOrangstandSprint  Location = "OrangstandSprint"
	LocationMiniMonkey        Location = "MiniMonkey"
	LocationPonyTailTwirl     Location = "PonyTailTwirl"
	LocationMonkeyport        Location = "Monkeyport"
	LocationHunkyChunky       Location = "HunkyChunky"
	LocationPrimatePunch      Location = "PrimatePunch"
	LocationGorillaGone       Location = "GorillaGone"
	LocationSuperSimianSlam   Location = "SuperSimianSlam"
	LocationSuperDuperSlam    Location = "SuperDuperSimianSlam"

	LocationCoconutGun   Location = "CoconutGun"
	LocationPeanutGun    Location = "PeanutGun"
	LocationGrapeGun     Location = "GrapeGun"
	LocationFeatherGun   Location = "FeatherGun"
	LocationPineappleGun Location = "PineappleGun"
	LocationAmmoBelt1    Location = "AmmoBelt1"
	LocationHomingAmmo   Location = "HomingAmmo"
	LocationAmmoBelt2    Location = "AmmoBelt2"
	LocationSniperSight  Location = "SniperSight"

	LocationBongos        Location = "Bongos"
	LocationGuitar        Location = "Guitar"
	LocationTrombone      Location = "Trombone"
	LocationSaxophone     Location = "Saxophone"
	LocationTriangle      Location = "Triangle"
	LocationMusicUpgrade1 Location = "MusicUpgrade1"
	LocationThirdMelon    Location = "ThirdMelon"
	LocationMusicUpgrade2 Location = "MusicUpgrade2"
)

// ShopInfo is the fixed description of a shop location.
type ShopInfo struct {
	Vendor Vendor
	// Kong is empty for shared locations.
	Kong        Kong
	VanillaItem Item
}

// Shared reports whether every kong can buy at the location.
func (s ShopInfo) Shared() bool { return s.Kong == "" }

// AllLocations lists every shop location. Within a vendor, entries are in
// purchase order so progressive items take their tier from position.
var AllLocations = []Location{
	LocationBaboonBlast, LocationStrongKong, LocationGorillaGrab,
	LocationChimpyCharge, LocationRocketbarrelBoost, LocationSimianSpring,
	LocationOrangstand, LocationBaboonBalloon, LocationOrangstandSprint,
	LocationMiniMonkey, LocationPonyTailTwirl, LocationMonkeyport,
	LocationHunkyChunky, LocationPrimatePunch, LocationGorillaGone,
	LocationSuperSimianSlam, LocationSuperDuperSlam,
	LocationCoconutGun, LocationPeanutGun, LocationGrapeGun, LocationFeatherGun, LocationPineappleGun,
	LocationAmmoBelt1, LocationHomingAmmo, LocationAmmoBelt2, LocationSniperSight,
	LocationBongos, LocationGuitar, LocationTrombone, LocationSaxophone, LocationTriangle,
	LocationMusicUpgrade1, LocationThirdMelon, LocationMusicUpgrade2,
}

var shopInfo = map[Location]ShopInfo{
	LocationBaboonBlast:       {VendorCranky, KongDonkey, ItemBaboonBlast},
	LocationStrongKong:        {VendorCranky, KongDonkey, ItemStrongKong},
	LocationGorillaGrab:       {VendorCranky, KongDonkey, ItemGorillaGrab},
	LocationChimpyCharge:      {VendorCranky, KongDiddy, ItemChimpyCharge},
	LocationRocketbarrelBoost: {VendorCranky, KongDiddy, ItemRocketbarrel},
	LocationSimianSpring:      {VendorCranky, KongDiddy, ItemSimianSpring},
	LocationOrangstand:        {VendorCranky, KongLanky, ItemOrangstand},
	LocationBaboonBalloon:     {VendorCranky, KongLanky, ItemBaboonBalloon},
	LocationOrangstandSprint:  {VendorCranky, KongLanky, ItemOrangSprint},
	LocationMiniMonkey:        {VendorCranky, KongTiny, ItemMiniMonkey},
	LocationPonyTailTwirl:     {VendorCranky, KongTiny, ItemPonyTailTwirl},
	LocationMonkeyport:        {VendorCranky, KongTiny, ItemMonkeyport},
	LocationHunkyChunky:       {VendorCranky, KongChunky, ItemHunkyChunky},
	LocationPrimatePunch:      {VendorCranky, KongChunky, ItemPrimatePunch},
	LocationGorillaGone:       {VendorCranky, KongChunky, ItemGorillaGone},
	LocationSuperSimianSlam:   {VendorCranky, "", ItemProgressiveSlam},
	LocationSuperDuperSlam:    {VendorCranky, "", ItemProgressiveSlam},

	LocationCoconutGun:   {VendorFunky, KongDonkey, ItemCoconut},
	LocationPeanutGun:    {VendorFunky, KongDiddy, ItemPeanut},
	LocationGrapeGun:     {VendorFunky, KongLanky, ItemGrape},
	LocationFeatherGun:   {VendorFunky, KongTiny, ItemFeather},
	LocationPineappleGun: {VendorFunky, KongChunky, ItemPineapple},
	LocationAmmoBelt1:    {VendorFunky, "", ItemProgressiveAmmoBelt},
	LocationHomingAmmo:   {VendorFunky, "", ItemHomingAmmo},
	LocationAmmoBelt2:    {VendorFunky, "", ItemProgressiveAmmoBelt},
	LocationSniperSight:  {VendorFunky, "", ItemSniperSight},

	LocationBongos:        {VendorCandy, KongDonkey, ItemBongos},
	LocationGuitar:        {VendorCandy, KongDiddy, ItemGuitar},
	LocationTrombone:      {VendorCandy, KongLanky, ItemTrombone},
	LocationSaxophone:     {VendorCandy, KongTiny, ItemSaxophone},
	LocationTriangle:      {VendorCandy, KongChunky, ItemTriangle},
	LocationMusicUpgrade1: {VendorCandy, "", ItemProgressiveInstrumentUpgrade},
	LocationThirdMelon:    {VendorCandy, "", ItemProgressiveInstrumentUpgrade},
	LocationMusicUpgrade2: {VendorCandy, "", ItemProgressiveInstrumentUpgrade},
}

func (l Location) String() string { return string(l) }

// Index returns the location's position in purchase order.
func (l Location) Index() int { return indexOf(AllLocations, l) }

// Info returns the fixed shop data for the location.
func (l Location) Info() ShopInfo { return shopInfo[l] }

// KongLocations returns the locations only the given kong can buy at.
func KongLocations(k Kong) []Location {
	var out []Location
	for _, l := range AllLocations {
		if shopInfo[l].Kong == k {
			out = append(out, l)
		}
	}
	return out
}

// SharedLocations returns the locations every kong can buy at.
func SharedLocations() []Location {
	return KongLocations("")
}

// ParseLocation accepts a location name or ordinal.
func ParseLocation(s string) (Location, error) {
	if v, ok := parseName(AllLocations, s); ok {
		return v, nil
	}
	return "", errors.InvalidArgumentf("unknown shop location %q", s)
}
