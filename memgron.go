package memgron

import (
	"github.com/memgron/memgron/decode"
	"github.com/memgron/memgron/layout"
	"github.com/memgron/memgron/typedesc"
)

// Flatten walks a type description and returns one field descriptor
// per atomic leaf. See the layout package for the full contract.
func Flatten(rootName string, t *typedesc.Type) ([]layout.Field, error) {
	return layout.Flatten(rootName, t)
}

// Decode extracts every field of a flattened layout from buf in the
// given byte order. See the decode package for the full contract.
func Decode(fields []layout.Field, buf []byte, order decode.ByteOrder) ([]decode.Value, error) {
	return decode.New(order).Decode(fields, buf)
}
