// Package decode extracts field values from raw byte buffers according
// to a flattened layout.
//
// Each field's bit range is reassembled into an unsigned integer
// honoring the layout's declared byte order, then interpreted per the
// field's kind: sign extension for signed integers, IEEE-754
// reinterpretation for floats, a nonzero test for booleans, symbol
// table lookup for enums, and a verbatim byte copy for fixed-size
// character arrays. Decoding is a pure function of (layout, buffer);
// independent (layout, buffer) pairs may be decoded concurrently
// without coordination.
package decode
