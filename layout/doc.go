// Package layout flattens type description trees into ordered lists of
// leaf field descriptors.
//
// A flattened layout carries one Field per atomic field (integer,
// float, boolean, enum, pointer, or fixed-size character array), each
// with an absolute bit range and a Path of selectors encoding the
// compound structure it came from. Layouts serialize as plain JSON and
// are the interchange format between the resolver side that produces
// them and the decode side that applies them to raw buffers.
//
// Flattening is a pure function of its inputs: the same tree always
// yields a byte-identical layout, and nothing is retained across
// calls.
package layout
