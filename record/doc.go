// Package record reads and writes persisted layout records.
//
// A layout file is JSONL: one {scope, name, layout} object per line,
// where scope is null, an object file name, or an address, and layout
// is the flattened field list for the named entity. The package also
// parses resolver input lines ([scope, name] pairs) and provides a
// batch Runner that decodes many records, isolating failures per
// entity and per field.
package record
