package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseFlatten Phase = "flatten" // type description to field descriptors
	PhaseDecode  Phase = "decode"  // raw bytes to values
	PhaseRender  Phase = "render"  // values to text
	PhaseLoad    Phase = "load"    // layout record I/O
	PhaseParse   Phase = "parse"   // schema parsing
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedKind       Kind = "unsupported_kind"
	KindMalformedOffset       Kind = "malformed_offset"
	KindOutOfBounds           Kind = "out_of_bounds"
	KindUnsupportedFloatWidth Kind = "unsupported_float_width"
	KindUnsupportedWidth      Kind = "unsupported_width"
	KindInvalidData           Kind = "invalid_data"
	KindNotFound              Kind = "not_found"
)

// Error is the structured error type used throughout the module.
// Path identifies the offending field, Entity the layout record it
// belongs to; both may be empty when not applicable.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Entity string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Entity != "" {
		b.WriteString(" in ")
		b.WriteString(e.Entity)
	}

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Entity sets the layout record the error belongs to
func (b *Builder) Entity(name string) *Builder {
	b.err.Entity = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedKind creates an error for a type kind the flattener does
// not recognize.
func UnsupportedKind(path []string, kind any) *Error {
	return &Error{
		Phase:  PhaseFlatten,
		Kind:   KindUnsupportedKind,
		Path:   path,
		Detail: fmt.Sprintf("unrecognized type kind %v", kind),
		Value:  kind,
	}
}

// MalformedOffset creates an error for a member placed outside its
// parent's declared bit extent.
func MalformedOffset(path []string, memberEnd, parentBits int64) *Error {
	return &Error{
		Phase:  PhaseFlatten,
		Kind:   KindMalformedOffset,
		Path:   path,
		Detail: fmt.Sprintf("member ends at bit %d, beyond parent extent of %d bits", memberEnd, parentBits),
		Value:  memberEnd,
	}
}

// OutOfBounds creates an error for a bit range beyond the supplied buffer.
func OutOfBounds(path []string, bitpos, bitsize int64, bufLen int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("bit range [%d,%d) exceeds buffer of %d bytes", bitpos, bitpos+bitsize, bufLen),
	}
}

// UnsupportedFloatWidth creates an error for a float field whose width is
// not an IEEE-754 binary32 or binary64.
func UnsupportedFloatWidth(path []string, bitsize int64) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnsupportedFloatWidth,
		Path:   path,
		Detail: fmt.Sprintf("float width %d bits, want 32 or 64", bitsize),
		Value:  bitsize,
	}
}

// UnsupportedWidth creates an error for a numeric field wider than 64 bits.
func UnsupportedWidth(path []string, bitsize int64) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnsupportedWidth,
		Path:   path,
		Detail: fmt.Sprintf("numeric field of %d bits, max 64", bitsize),
		Value:  bitsize,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
