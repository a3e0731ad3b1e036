// Package fairies holds the banana fairy spawn points and shuffles fairies
// between them.
package fairies

import (
	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/logic"
)

// Fence is the box a fairy flies around in.
type Fence struct {
	MinX    int `json:"min_x"`
	MinZ    int `json:"min_z"`
	MaxX    int `json:"max_x"`
	MaxZ    int `json:"max_z"`
	CenterX int `json:"center_x"`
	CenterZ int `json:"center_z"`
}

// NewFence builds a fence; centers are truncated midpoints.
func NewFence(minX, minZ, maxX, maxZ int) *Fence {
	return &Fence{
		MinX:    minX,
		MinZ:    minZ,
		MaxX:    maxX,
		MaxZ:    maxZ,
		CenterX: (minX + maxX) / 2,
		CenterZ: (minZ + maxZ) / 2,
	}
}

// FairyData is one spot a fairy can be photographed at.
type FairyData struct {
	Name   string          `json:"name"`
	Map    entities.Map    `json:"map"`
	Region entities.Region `json:"region"`
	Fence  *Fence          `json:"fence,omitempty"`
	SpawnY int             `json:"spawn_y"`
	Logic  logic.Predicate `json:"-"`

	IsVanilla bool `json:"is_vanilla"`
	// SpawnXYZ is only set for vanilla fairies.
	SpawnXYZ     []int `json:"spawn_xyz,omitempty"`
	NaturalIndex int   `json:"natural_index"`
	Is5DSFairy   bool  `json:"is_5ds_fairy"`
}

// Spawn returns where the fairy appears: the vanilla point when there is
// one, the fence center otherwise.
func (f FairyData) Spawn() [3]int {
	if len(f.SpawnXYZ) == 3 {
		return [3]int{f.SpawnXYZ[0], f.SpawnXYZ[1], f.SpawnXYZ[2]}
	}
	if f.Fence == nil {
		return [3]int{0, f.SpawnY, 0}
	}
	return [3]int{f.Fence.CenterX, f.SpawnY, f.Fence.CenterZ}
}

type option func(*FairyData)

func requires(p logic.Predicate) option { return func(f *FairyData) { f.Logic = p } }

func fence(fc *Fence, spawnY int) option {
	return func(f *FairyData) {
		f.Fence = fc
		f.SpawnY = spawnY
	}
}

func spawnAt(x, y, z int) option { return func(f *FairyData) { f.SpawnXYZ = []int{x, y, z} } }

func index(i int) option { return func(f *FairyData) { f.NaturalIndex = i } }

func fiveDoorShip() option { return func(f *FairyData) { f.Is5DSFairy = true } }

func newFairy(name string, m entities.Map, region entities.Region, opts ...option) FairyData {
	f := FairyData{
		Name:         name,
		Map:          m,
		Region:       region,
		Logic:        logic.Camera,
		NaturalIndex: -1,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// vanillaFairy marks the fairy as vanilla and fills SpawnXYZ from the fence
// when no explicit point was given.
func vanillaFairy(name string, m entities.Map, region entities.Region, opts ...option) FairyData {
	f := newFairy(name, m, region, opts...)
	f.IsVanilla = true
	if f.SpawnXYZ == nil {
		f.SpawnXYZ = []int{0, 0, 0}
		if f.Fence != nil {
			f.SpawnXYZ = []int{f.Fence.CenterX, f.SpawnY, f.Fence.CenterZ}
		}
	} else {
		f.SpawnXYZ = append([]int(nil), f.SpawnXYZ...)
	}
	return f
}

// Relocated5DSFairy is the Tiny 5-Door Ship fairy moved to a spot with a
// fence so it can take part in shuffles.
func Relocated5DSFairy() FairyData {
	return vanillaFairy("Inside Tiny 5-Door Ship", entities.MapGalleon5DShipDKTiny, entities.RegionSaxophoneShip,
		fence(NewFence(916, 1703, 1217, 1854), 62), index(1), fiveDoorShip())
}

// Original5DSFairy is the Tiny 5-Door Ship fairy at its unmodified point.
func Original5DSFairy() FairyData {
	return vanillaFairy("In Tiny's 5-Door Ship", entities.MapGalleon5DShipDKTiny, entities.RegionSaxophoneShip,
		spawnAt(1089, 62, 2022), index(1), fiveDoorShip())
}

// FairyLocations returns fresh copies of the level's fairy spots. The Tiny
// 5-Door Ship fairy is not part of the table; see VanillaFairies.
func FairyLocations(level entities.Level) []FairyData {
	src := fairyLocations[level]
	out := make([]FairyData, len(src))
	for i, f := range src {
		out[i] = f.clone()
	}
	return out
}

// VanillaFairies returns the level's vanilla fairies in natural index order.
// Galleon gets the 5-Door Ship fairy, relocated when asked.
func VanillaFairies(level entities.Level, relocate5DS bool) []FairyData {
	var out []FairyData
	for _, f := range FairyLocations(level) {
		if f.IsVanilla {
			out = append(out, f)
		}
	}
	if level == entities.LevelGloomyGalleon {
		if relocate5DS {
			out = append(out, Relocated5DSFairy())
		} else {
			out = append(out, Original5DSFairy())
		}
	}
	return out
}

// Levels returns the levels with fairies, in level order.
func Levels() []entities.Level {
	var out []entities.Level
	for _, l := range entities.AllLevels {
		if len(fairyLocations[l]) > 0 {
			out = append(out, l)
		}
	}
	return out
}

func (f FairyData) clone() FairyData {
	if f.Fence != nil {
		fc := *f.Fence
		f.Fence = &fc
	}
	if f.SpawnXYZ != nil {
		f.SpawnXYZ = append([]int(nil), f.SpawnXYZ...)
	}
	return f
}
