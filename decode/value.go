package decode

import "github.com/memgron/memgron/typedesc"

// Value is one decoded leaf: the rendered display path plus the
// field's interpretation of the extracted bits. Values are produced
// fresh per decode call and own their contents; Bytes never aliases
// the input buffer.
type Value struct {
	Path   string
	Kind   typedesc.Kind
	Pretty string // the field's pretty type, for enum and pointer rendering
	Signed bool

	Uint  uint64 // raw reassembled bits; the address, for pointers
	Int   int64  // sign-extended value, signed integer and enum kinds
	Float float64
	Bool  bool
	Bytes []byte // char-array contents, verbatim
	Sym   string // matched enum symbol, empty when no table entry matches
}
