package layout

import (
	"fmt"

	"github.com/memgron/memgron/errors"
	"github.com/memgron/memgron/typedesc"
)

// Flatten walks a type description depth-first and returns one Field
// per atomic leaf, in declaration order. rootName becomes the first
// path selector and may be empty for anonymous root types.
//
// Union members are all emitted from the same base offset, so the
// result may contain aliasing bit ranges. Zero-length arrays emit
// nothing. Fixed-size character arrays emit a single string leaf
// spanning the whole array instead of one leaf per element.
func Flatten(rootName string, t *typedesc.Type) ([]Field, error) {
	f := &flattener{}
	if err := f.walk(Path{Root(rootName)}, t, 0, 0); err != nil {
		return nil, err
	}
	return f.fields, nil
}

type flattener struct {
	fields []Field
}

// walk descends into t at absolute offset bitpos. bitsize is the
// bitfield width forced by the containing member, or 0 for the type's
// full width.
func (f *flattener) walk(path Path, t *typedesc.Type, bitpos, bitsize int64) error {
	if t == nil {
		return errors.UnsupportedKind(path.Strings(), "nil")
	}

	switch t.Kind {
	case typedesc.KindInteger, typedesc.KindFloat, typedesc.KindBool,
		typedesc.KindEnum, typedesc.KindPtr, typedesc.KindString:
		f.emit(path, t, bitpos, bitsize)
		return nil

	case typedesc.KindStruct, typedesc.KindUnion:
		return f.walkMembers(path, t, bitpos)

	case typedesc.KindArray:
		return f.walkArray(path, t, bitpos)

	default:
		return errors.UnsupportedKind(path.Strings(), t.Kind)
	}
}

func (f *flattener) walkMembers(path Path, t *typedesc.Type, bitpos int64) error {
	// Anonymous siblings are disambiguated with a per-kind ordinal
	// within this parent, so two anonymous unions next to an anonymous
	// struct become union@0, union@1 and struct@0.
	anon := map[typedesc.Kind]int{}

	for rank, m := range t.Members {
		if m.Type == nil {
			return errors.UnsupportedKind(path.Strings(), "nil member")
		}

		name := m.Name
		if name == "" {
			name = fmt.Sprintf("%s@%d", m.Type.Kind, anon[m.Type.Kind])
			anon[m.Type.Kind]++
		}

		var sel Selector
		if t.Kind == typedesc.KindUnion {
			sel = Case(name, rank)
		} else {
			sel = Member(name, rank)
		}
		child := path.child(sel)

		rel := m.ByteOffset*8 + m.BitOffset
		if t.Bits > 0 {
			width := m.BitSize
			if width == 0 {
				width = m.Type.TotalBits()
			}
			if width > 0 && rel+width > t.Bits {
				return errors.MalformedOffset(child.Strings(), rel+width, t.Bits)
			}
		}

		if err := f.walk(child, m.Type, bitpos+rel, m.BitSize); err != nil {
			return err
		}
	}
	return nil
}

func (f *flattener) walkArray(path Path, t *typedesc.Type, bitpos int64) error {
	if t.Elem == nil {
		return errors.UnsupportedKind(path.Strings(), "array without element type")
	}
	if t.Count == 0 {
		return nil
	}

	elemBits := t.Elem.TotalBits()
	if elemBits <= 0 {
		return errors.InvalidData(errors.PhaseFlatten, path.Strings(),
			"array element has unknown width")
	}

	for i := int64(0); i < t.Count; i++ {
		child := path.child(Index(i, elemBits, int(i)))
		if err := f.walk(child, t.Elem, bitpos+i*elemBits, 0); err != nil {
			return err
		}
	}
	return nil
}

func (f *flattener) emit(path Path, t *typedesc.Type, bitpos, bitsize int64) {
	if bitsize <= 0 {
		bitsize = t.TotalBits()
	}

	fd := Field{
		Path:    path,
		Kind:    t.Kind,
		Pretty:  t.DisplayName(),
		Type:    t.Name,
		Bitpos:  bitpos,
		Bitsize: bitsize,
		Signed:  t.Signed,
	}

	switch t.Kind {
	case typedesc.KindEnum:
		if len(t.Values) > 0 {
			fd.Members = make(EnumValues, len(t.Values))
			for v, name := range t.Values {
				fd.Members[v] = name
			}
		}
	case typedesc.KindPtr, typedesc.KindString:
		if t.Elem != nil {
			fd.Pointee = t.Elem.Name
			fd.PointeePretty = t.Elem.DisplayName()
			fd.PointeeSizeof = t.Elem.TotalBits() / 8
		}
	}

	f.fields = append(f.fields, fd)
}
