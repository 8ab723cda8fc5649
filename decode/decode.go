package decode

import (
	"math"

	"github.com/memgron/memgron/errors"
	"github.com/memgron/memgron/layout"
	"github.com/memgron/memgron/typedesc"
)

// Decoder applies flattened layouts to raw byte buffers. It is
// stateless and safe for concurrent use.
type Decoder struct {
	Order ByteOrder
}

// New returns a Decoder for layouts produced with the given byte order.
func New(order ByteOrder) *Decoder {
	return &Decoder{Order: order}
}

// Decode extracts every field of the layout from buf, preserving the
// layout's order. It fails on the first field that cannot be decoded;
// callers that want partial output should iterate with DecodeField and
// decide per field.
func (d *Decoder) Decode(fields []layout.Field, buf []byte) ([]Value, error) {
	out := make([]Value, 0, len(fields))
	for i := range fields {
		v, err := d.DecodeField(&fields[i], buf)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// DecodeField extracts and interprets a single field from buf.
func (d *Decoder) DecodeField(f *layout.Field, buf []byte) (Value, error) {
	path := f.Path.Strings()

	if f.Bitpos < 0 || f.Bitsize <= 0 ||
		(f.Bitpos+f.Bitsize+7)/8 > int64(len(buf)) {
		return Value{}, errors.OutOfBounds(path, f.Bitpos, f.Bitsize, len(buf))
	}

	v := Value{
		Path:   f.Path.String(),
		Kind:   f.Kind,
		Pretty: f.Pretty,
		Signed: f.Signed,
	}

	switch f.Kind {
	case typedesc.KindInteger, typedesc.KindPtr:
		if f.Bitsize > 64 {
			return Value{}, errors.UnsupportedWidth(path, f.Bitsize)
		}
		v.Uint = extractUint(buf, f.Bitpos, f.Bitsize, d.Order)
		if f.Signed && f.Kind == typedesc.KindInteger {
			v.Int = signExtend(v.Uint, f.Bitsize)
		}

	case typedesc.KindEnum:
		if f.Bitsize > 64 {
			return Value{}, errors.UnsupportedWidth(path, f.Bitsize)
		}
		v.Uint = extractUint(buf, f.Bitpos, f.Bitsize, d.Order)
		v.Int = int64(v.Uint)
		if f.Signed {
			v.Int = signExtend(v.Uint, f.Bitsize)
		}
		// Unmatched values are fine: flag combinations and new enum
		// members decode to their numeric form.
		v.Sym = f.Members[v.Int]

	case typedesc.KindBool:
		if f.Bitsize > 64 {
			return Value{}, errors.UnsupportedWidth(path, f.Bitsize)
		}
		v.Bool = extractUint(buf, f.Bitpos, f.Bitsize, d.Order) != 0

	case typedesc.KindFloat:
		switch f.Bitsize {
		case 32:
			v.Float = float64(math.Float32frombits(uint32(extractUint(buf, f.Bitpos, 32, d.Order))))
		case 64:
			v.Float = math.Float64frombits(extractUint(buf, f.Bitpos, 64, d.Order))
		default:
			return Value{}, errors.UnsupportedFloatWidth(path, f.Bitsize)
		}

	case typedesc.KindString:
		if f.Bitpos%8 != 0 || f.Bitsize%8 != 0 {
			return Value{}, errors.InvalidData(errors.PhaseDecode, path,
				"char array not byte-aligned")
		}
		begin := f.Bitpos / 8
		n := f.Bitsize / 8
		v.Bytes = make([]byte, n)
		copy(v.Bytes, buf[begin:begin+n])

	default:
		return Value{}, errors.InvalidData(errors.PhaseDecode, path,
			"field kind "+f.Kind.String()+" is not decodable")
	}

	return v, nil
}
