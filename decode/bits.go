package decode

import "fmt"

// ByteOrder is the byte order a layout was produced for. It is a
// property of the originating layout, never auto-detected.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "be"
	}
	return "le"
}

// ParseByteOrder maps the persisted "le"/"be" names to a ByteOrder.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "le", "":
		return LittleEndian, nil
	case "be":
		return BigEndian, nil
	default:
		return LittleEndian, fmt.Errorf("unknown byte order %q", s)
	}
}

// MarshalText encodes the order as its persisted name.
func (o ByteOrder) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes the order from its persisted name.
func (o *ByteOrder) UnmarshalText(text []byte) error {
	v, err := ParseByteOrder(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// extractUint reassembles the bit range [bitpos, bitpos+bitsize) from
// buf into an unsigned integer. The caller has already bounds-checked
// the range and capped bitsize at 64.
//
// In little-endian order bit 0 is the least significant bit of the
// first byte; in big-endian order it is the most significant bit.
// Sub-byte bitfields and byte-aligned fields go through the same path.
func extractUint(buf []byte, bitpos, bitsize int64, order ByteOrder) uint64 {
	first := bitpos / 8
	end := (bitpos + bitsize + 7) / 8

	var acc uint64
	if order == BigEndian {
		for i := first; i < end; i++ {
			v := uint64(buf[i])
			lead := bitpos - 8*i // field starts this many bits below the byte's MSB
			if lead < 0 {
				lead = 0
			}
			trail := 8*(i+1) - (bitpos + bitsize) // bits past the field's end
			if trail < 0 {
				trail = 0
			}
			width := 8 - lead - trail
			v = (v >> uint64(trail)) & (1<<uint64(width) - 1)
			acc = acc<<uint64(width) | v
		}
		return acc
	}

	for i := first; i < end; i++ {
		v := uint64(buf[i])
		bit := 8 * i
		var shift int64
		if bit < bitpos {
			v >>= uint64(bitpos - bit)
		} else {
			shift = bit - bitpos
		}
		remaining := bitpos + bitsize - bit
		if bit < bitpos {
			remaining = bitsize
		}
		if remaining < 8 {
			v &= 1<<uint64(remaining) - 1
		}
		acc |= v << uint64(shift)
	}
	return acc
}

// signExtend widens a bitsize-wide two's-complement value to int64.
func signExtend(v uint64, bitsize int64) int64 {
	if bitsize >= 64 {
		return int64(v)
	}
	if v&(1<<uint64(bitsize-1)) != 0 {
		v |= ^uint64(0) << uint64(bitsize)
	}
	return int64(v)
}
