package entities

import "github.com/junglerando/rando-api/internal/errors"

// Level is a world the player travels through.
type Level string

// Levels in vanilla progression order, followed by the hub.
const (
	LevelJungleJapes    Level = "Jungle Japes"
	LevelAngryAztec     Level = "Angry Aztec"
	LevelFranticFactory Level = "Frantic Factory"
	LevelGloomyGalleon  Level = "Gloomy Galleon"
	LevelFungiForest    Level = "Fungi Forest"
	LevelCrystalCaves   Level = "Crystal Caves"
	LevelCreepyCastle   Level = "Creepy Castle"
	LevelHideoutHelm    Level = "Hideout Helm"
	LevelDKIsles        Level = "DK Isles"
)

// AllLevels lists every level in vanilla order.
var AllLevels = []Level{
	LevelJungleJapes,
	LevelAngryAztec,
	LevelFranticFactory,
	LevelGloomyGalleon,
	LevelFungiForest,
	LevelCrystalCaves,
	LevelCreepyCastle,
	LevelHideoutHelm,
	LevelDKIsles,
}

// BossLevels are the seven levels that end in a T&S portal and a boss.
var BossLevels = AllLevels[:7]

func (l Level) String() string { return string(l) }

// Index returns the level's ordinal, -1 for an unknown level.
func (l Level) Index() int { return indexOf(AllLevels, l) }

// ParseLevel accepts a level name or ordinal.
func ParseLevel(s string) (Level, error) {
	if l, ok := parseName(AllLevels, s); ok {
		return l, nil
	}
	return "", errors.InvalidArgumentf("unknown level %q", s)
}

// UnmarshalJSON accepts names and ordinals.
func (l *Level) UnmarshalJSON(data []byte) error {
	v, ok := parseJSON(AllLevels, data)
	if !ok {
		return errors.InvalidArgumentf("unknown level %s", string(data))
	}
	*l = v
	return nil
}
