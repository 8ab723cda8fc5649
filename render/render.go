// Package render writes decoded values as text.
//
// Two styles are provided: assignment style, one "path = value" pair
// per line, and logfmt style, "path=value" pairs space-joined on one
// line. Both share the same canonical literal per kind, so outputs
// stay stable and diffable across styles.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/memgron/memgron/decode"
	"github.com/memgron/memgron/typedesc"
)

// nbsp replaces spaces inside logfmt values so pairs stay splittable
// on plain spaces.
const nbsp = " "

// Literal returns the canonical textual rendering of a decoded value:
// booleans as true/false, floats with round-trip precision, char
// arrays as quoted strings, enums as the bare symbol or "(type)value",
// pointers as "(type)0xaddr".
func Literal(v decode.Value) string {
	switch v.Kind {
	case typedesc.KindBool:
		return strconv.FormatBool(v.Bool)
	case typedesc.KindInteger:
		if v.Signed {
			return strconv.FormatInt(v.Int, 10)
		}
		return strconv.FormatUint(v.Uint, 10)
	case typedesc.KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case typedesc.KindEnum:
		if v.Sym != "" {
			return v.Sym
		}
		if v.Signed {
			return fmt.Sprintf("(%s)%d", v.Pretty, v.Int)
		}
		return fmt.Sprintf("(%s)%d", v.Pretty, v.Uint)
	case typedesc.KindPtr:
		return fmt.Sprintf("(%s)%#x", v.Pretty, v.Uint)
	case typedesc.KindString:
		return strconv.Quote(string(v.Bytes))
	default:
		return fmt.Sprintf("?%s", v.Kind)
	}
}

// Assign writes one "path = value" pair per line.
func Assign(w io.Writer, values []decode.Value) error {
	for _, v := range values {
		if _, err := fmt.Fprintf(w, "%s = %s\n", v.Path, Literal(v)); err != nil {
			return err
		}
	}
	return nil
}

// Logfmt writes all pairs space-joined on a single line. Spaces inside
// a value are replaced with a no-break space.
func Logfmt(w io.Writer, values []decode.Value) error {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		lit := strings.ReplaceAll(Literal(v), " ", nbsp)
		parts = append(parts, v.Path+"="+lit)
	}
	_, err := io.WriteString(w, strings.Join(parts, " ")+"\n")
	return err
}
