package typedesc

// Type is one node of a type description tree, as supplied by an
// external debug-information resolver. Trees are treated as immutable
// for the duration of a flattening pass and are owned by the caller.
type Type struct {
	Kind   Kind
	Name   string // canonical name, including C tag ("struct test"); may be empty
	Pretty string // pretty-printed type string; may be empty
	Bits   int64  // total storage width in bits; 0 if unknown
	Signed bool   // integer and enum kinds

	Members []Member         // struct and union, in declaration order
	Elem    *Type            // array element, char-array element, or pointee
	Count   int64            // array and char-array element count
	Values  map[int64]string // enum value to symbolic name; not necessarily exhaustive or injective
}

// Member is one named or anonymous member of a struct or union.
type Member struct {
	Name       string // empty for anonymous members
	ByteOffset int64  // byte offset within the parent
	BitOffset  int64  // bit offset within the storage unit, for bitfields
	BitSize    int64  // bitfield width; 0 means the member type's full width
	Type       *Type
}

// TotalBits returns the total storage width of the type. For arrays
// with no declared width it is derived from the element width.
func (t *Type) TotalBits() int64 {
	if t.Bits > 0 {
		return t.Bits
	}
	switch t.Kind {
	case KindArray:
		if t.Elem == nil {
			return 0
		}
		return t.Count * t.Elem.TotalBits()
	case KindString:
		return t.Count * 8
	default:
		return 0
	}
}

// DisplayName returns the pretty form when present, falling back to the
// canonical name.
func (t *Type) DisplayName() string {
	if t.Pretty != "" {
		return t.Pretty
	}
	return t.Name
}
