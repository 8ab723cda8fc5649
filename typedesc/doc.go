// Package typedesc defines the type description tree consumed by the
// layout flattener.
//
// A tree is pure data: primitive leaves (integers, floats, booleans,
// enums, pointers, fixed-size character arrays) and compound nodes
// (structs, unions, arrays). It is produced outside this module by an
// adapter over whatever introspection facility is available, for
// example a debugger's type query API or the schema package's YAML
// loader. Offsets are always relative to the start of the top-level
// described entity.
package typedesc
