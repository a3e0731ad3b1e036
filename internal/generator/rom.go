package generator

import (
	"encoding/binary"
	"math"

	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/patch"
	"github.com/junglerando/rando-api/internal/placement/doors"
	"github.com/junglerando/rando-api/internal/placement/prices"
	"github.com/junglerando/rando-api/internal/settings"
)

// Offsets of the randomizer data block in the expanded ROM.
const (
	offsetHash    = 0x1FED000
	offsetPrices  = 0x1FED010
	offsetShop    = 0x1FED060
	offsetCoins   = 0x1FED0A0
	offsetOptions = 0x1FED0B0
	offsetDoors   = 0x1FED100
	offsetFairies = 0x1FED400
)

const (
	doorRecordSize  = 12
	fairyRecordSize = 8
	// noValue marks an unset byte field.
	noValue = 0xFF
)

func writePatch(sp *Spoiler) (*patch.Patch, error) {
	p := patch.New()
	writes := []struct {
		name   string
		offset uint32
		data   []byte
	}{
		{"hash", offsetHash, hashBytes(sp)},
		{"prices", offsetPrices, priceBytes(sp.Prices)},
		{"shop", offsetShop, shopBytes(sp.Shop)},
		{"coins", offsetCoins, sp.CoinRequirements.Bytes()},
		{"options", offsetOptions, optionBytes(sp.settings)},
		{"doors", offsetDoors, doorBytes(sp.Doors)},
		{"fairies", offsetFairies, fairyBytes(sp)},
	}
	for _, w := range writes {
		if err := p.Add(w.offset, w.data); err != nil {
			return nil, errors.Wrapf(err, "failed to add %s", w.name)
		}
	}
	return p, nil
}

func hashBytes(sp *Spoiler) []byte {
	out := make([]byte, len(sp.Hash))
	for i, h := range sp.Hash {
		out[i] = byte(h)
	}
	return out
}

func clampByte(v int) byte {
	return byte(min(max(v, 0), math.MaxUint8))
}

// priceBytes writes one byte per tier in draw order.
func priceBytes(t prices.Table) []byte {
	var out []byte
	for _, item := range prices.Items() {
		for _, price := range t[item] {
			out = append(out, clampByte(price))
		}
	}
	return out
}

// shopBytes writes the item ordinal sold at every location in purchase order.
func shopBytes(shop prices.Shop) []byte {
	out := make([]byte, len(entities.AllLocations))
	for i, l := range entities.AllLocations {
		out[i] = byte(shop.Item(l).Index())
	}
	return out
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func helmDoorIndex(item settings.HelmDoorItem) byte {
	for i, candidate := range settings.HelmDoorItems {
		if candidate == item {
			return byte(i)
		}
	}
	return noValue
}

func optionBytes(s *settings.Settings) []byte {
	out := []byte{
		clampByte(s.BlockerText),
		0, 0,
		clampByte(s.MedalRequirement),
		clampByte(s.MedalCBReq),
		clampByte(s.RarewareGBFairies),
		helmDoorIndex(s.CrownDoorItem),
		clampByte(s.CrownDoorItemCount),
		helmDoorIndex(s.CoinDoorItem),
		clampByte(s.CoinDoorItemCount),
		boolByte(s.EnableTagAnywhere),
		boolByte(s.DisableTagBarrels),
		clampByte(s.StartingMovesCount),
		boolByte(s.StartWithSlam),
		clampByte(s.MusicVolume),
		clampByte(s.SfxVolume),
	}
	binary.BigEndian.PutUint16(out[1:3], uint16(s.TroffText))
	return out
}

// doorBytes writes level, type, kong, map, then x y z and facing as int16.
// A portal left at its vanilla position keeps the map byte unset.
func doorBytes(placements []doors.Placement) []byte {
	out := make([]byte, 0, len(placements)*doorRecordSize)
	for _, p := range placements {
		record := make([]byte, doorRecordSize)
		record[0] = byte(p.Level.Index())
		if p.Type == doors.DoorTypeTnS {
			record[1] = 1
		}
		record[2] = noValue
		if p.Kong != "" {
			record[2] = byte(p.Kong.Index())
		}
		record[3] = noValue
		if p.Door != nil {
			record[3] = p.Door.Map.ID()
			for i, v := range p.Door.Location {
				binary.BigEndian.PutUint16(record[4+2*i:], uint16(int16(v)))
			}
		}
		out = append(out, record...)
	}
	return out
}

// fairyBytes writes map, natural index, then the spawn point as int16.
func fairyBytes(sp *Spoiler) []byte {
	out := make([]byte, 0, len(sp.Fairies)*fairyRecordSize)
	for _, p := range sp.Fairies {
		record := make([]byte, fairyRecordSize)
		record[0] = p.Fairy.Map.ID()
		record[1] = noValue
		if p.Fairy.NaturalIndex >= 0 {
			record[1] = byte(p.Fairy.NaturalIndex)
		}
		for i, v := range p.Fairy.Spawn() {
			binary.BigEndian.PutUint16(record[2+2*i:], uint16(int16(v)))
		}
		out = append(out, record...)
	}
	return out
}
