// Package patch encodes the list of ROM writes a seed applies.
//
// Layout, all integers big endian:
//
//	magic   [4]byte "DKRP"
//	version uint16
//	count   uint32
//	count × { offset uint32, length uint16, data [length]byte }
//
// Records are stored in ascending offset order and never overlap.
package patch

import (
	"bytes"
	"encoding/binary"
	"slices"

	"github.com/junglerando/rando-api/internal/errors"
)

// Magic opens every patch.
const Magic = "DKRP"

// Version is the current format version.
const Version uint16 = 1

// MaxWriteLength is the largest single record.
const MaxWriteLength = 0xFFFF

const headerSize = len(Magic) + 2 + 4

// Write is one contiguous run of bytes written at Offset.
type Write struct {
	Offset uint32
	Data   []byte
}

func (w Write) end() uint64 { return uint64(w.Offset) + uint64(len(w.Data)) }

// Patch is an ordered set of non-overlapping writes.
type Patch struct {
	writes []Write
}

// New returns an empty patch
func New() *Patch {
	return &Patch{}
}

// Add records data at offset. Empty, oversized and overlapping writes are
// rejected.
func (p *Patch) Add(offset uint32, data []byte) error {
	if len(data) == 0 {
		return errors.InvalidArgumentf("empty write at 0x%X", offset)
	}
	if len(data) > MaxWriteLength {
		return errors.InvalidArgumentf("write at 0x%X is %d bytes, limit is %d", offset, len(data), MaxWriteLength)
	}

	w := Write{Offset: offset, Data: bytes.Clone(data)}
	i, _ := slices.BinarySearchFunc(p.writes, offset, func(existing Write, target uint32) int {
		switch {
		case existing.Offset < target:
			return -1
		case existing.Offset > target:
			return 1
		}
		return 0
	})
	if i > 0 && p.writes[i-1].end() > uint64(offset) {
		return overlap(p.writes[i-1], w)
	}
	if i < len(p.writes) && w.end() > uint64(p.writes[i].Offset) {
		return overlap(w, p.writes[i])
	}
	p.writes = slices.Insert(p.writes, i, w)
	return nil
}

func overlap(a, b Write) error {
	return errors.InvalidArgumentf("write at 0x%X overlaps write at 0x%X", b.Offset, a.Offset).
		WithMeta("first_offset", a.Offset).
		WithMeta("second_offset", b.Offset)
}

// Writes returns the writes in ascending offset order.
func (p *Patch) Writes() []Write {
	return slices.Clone(p.writes)
}

// Len returns the number of writes
func (p *Patch) Len() int {
	return len(p.writes)
}

// Encode serializes the patch.
func (p *Patch) Encode() []byte {
	size := headerSize
	for _, w := range p.writes {
		size += 6 + len(w.Data)
	}

	out := make([]byte, 0, size)
	out = append(out, Magic...)
	out = binary.BigEndian.AppendUint16(out, Version)
	out = binary.BigEndian.AppendUint32(out, uint32(len(p.writes)))
	for _, w := range p.writes {
		out = binary.BigEndian.AppendUint32(out, w.Offset)
		out = binary.BigEndian.AppendUint16(out, uint16(len(w.Data)))
		out = append(out, w.Data...)
	}
	return out
}

// Decode parses an encoded patch. Records out of order or overlapping are
// rejected the same way Add rejects them.
func Decode(data []byte) (*Patch, error) {
	if len(data) < headerSize {
		return nil, errors.InvalidArgumentf("patch is %d bytes, shorter than its header", len(data))
	}
	if string(data[:len(Magic)]) != Magic {
		return nil, errors.InvalidArgument("patch does not start with DKRP")
	}
	version := binary.BigEndian.Uint16(data[4:6])
	if version != Version {
		return nil, errors.InvalidArgumentf("unsupported patch version %d", version)
	}
	count := binary.BigEndian.Uint32(data[6:10])

	p := New()
	rest := data[headerSize:]
	var last uint32
	for i := uint32(0); i < count; i++ {
		if len(rest) < 6 {
			return nil, errors.InvalidArgumentf("record %d is truncated", i)
		}
		offset := binary.BigEndian.Uint32(rest[:4])
		length := int(binary.BigEndian.Uint16(rest[4:6]))
		rest = rest[6:]
		if len(rest) < length {
			return nil, errors.InvalidArgumentf("record %d wants %d bytes, %d left", i, length, len(rest))
		}
		if i > 0 && offset <= last {
			return nil, errors.InvalidArgumentf("record %d at 0x%X is out of order", i, offset)
		}
		if err := p.Add(offset, rest[:length]); err != nil {
			return nil, err
		}
		last = offset
		rest = rest[length:]
	}
	if len(rest) != 0 {
		return nil, errors.InvalidArgumentf("%d trailing bytes after last record", len(rest))
	}
	return p, nil
}

// Apply returns a copy of rom with every write applied.
func (p *Patch) Apply(rom []byte) ([]byte, error) {
	out := bytes.Clone(rom)
	for _, w := range p.writes {
		if w.end() > uint64(len(out)) {
			return nil, errors.OutOfRangef("write at 0x%X runs past the end of a %d byte rom", w.Offset, len(out))
		}
		copy(out[w.Offset:], w.Data)
	}
	return out, nil
}
