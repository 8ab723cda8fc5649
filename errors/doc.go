// Package errors provides structured error types for the memgron library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: the offending field path, the layout
// entity it belongs to, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
//		Entity("test_record").
//		Path("test", "z[1]", "y").
//		Detail("bit range beyond buffer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedKind(path, kind)
//	err := errors.OutOfBounds(path, bitpos, bitsize, len(buf))
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
