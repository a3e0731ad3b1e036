// Package doors holds the candidate slots for T&S portals and Wrinkly hint
// doors, and places both kinds per level.
package doors

import (
	"slices"

	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/logic"
)

// DoorData is one slot a door can be placed in.
type DoorData struct {
	Name        string          `json:"name"`
	Map         entities.Map    `json:"map"`
	LogicRegion entities.Region `json:"logic_region"`
	// Location is x, y, z and facing angle.
	Location  [4]float64      `json:"location"`
	RX        float64         `json:"rx"`
	RZ        float64         `json:"rz"`
	Kongs     []entities.Kong `json:"kongs"`
	ToughSpot bool            `json:"tough_spot"`
	Enabled   bool            `json:"enabled"`
	Scale     float64         `json:"scale"`
	Logic     logic.Predicate `json:"-"`

	Placed       bool          `json:"placed"`
	AssignedKong entities.Kong `json:"assigned_kong,omitempty"`
}

// AssignDoor marks the slot as used by the kong.
func (d *DoorData) AssignDoor(kong entities.Kong) {
	d.Placed = true
	d.AssignedKong = kong
}

// AllowsKong reports whether the kong can use a door at this slot.
func (d *DoorData) AllowsKong(kong entities.Kong) bool {
	return slices.Contains(d.Kongs, kong)
}

// AllowsEveryKong reports whether all five kongs can use the slot.
func (d *DoorData) AllowsEveryKong() bool {
	for _, k := range entities.AllKongs {
		if !d.AllowsKong(k) {
			return false
		}
	}
	return true
}

type option func(*DoorData)

func enabled() option { return func(d *DoorData) { d.Enabled = true } }

func tough() option { return func(d *DoorData) { d.ToughSpot = true } }

func kongs(ks ...entities.Kong) option { return func(d *DoorData) { d.Kongs = ks } }

func scale(s float64) option { return func(d *DoorData) { d.Scale = s } }

func tilt(rx, rz float64) option {
	return func(d *DoorData) {
		d.RX = rx
		d.RZ = rz
	}
}

func requires(p logic.Predicate) option { return func(d *DoorData) { d.Logic = p } }

func door(name string, m entities.Map, region entities.Region, location [4]float64, opts ...option) DoorData {
	d := DoorData{
		Name:        name,
		Map:         m,
		LogicRegion: region,
		Location:    location,
		Kongs:       entities.AllKongs,
		Scale:       1,
		Logic:       logic.Always,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// DoorLocations returns fresh copies of the level's slots. Placement state
// set on the copies never reaches the shared table.
func DoorLocations(level entities.Level) []DoorData {
	src := doorLocations[level]
	out := make([]DoorData, len(src))
	for i, d := range src {
		d.Kongs = slices.Clone(d.Kongs)
		out[i] = d
	}
	return out
}

// Levels returns the levels that have door slots, in level order.
func Levels() []entities.Level {
	var out []entities.Level
	for _, l := range entities.AllLevels {
		if len(doorLocations[l]) > 0 {
			out = append(out, l)
		}
	}
	return out
}
