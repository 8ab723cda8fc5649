package layout

import (
	"strconv"
	"strings"
)

// Path identifies a leaf field's location within its containing entity.
// The first selector is the root name; the rest descend one member or
// array element at a time.
type Path []Selector

// String renders the path for display. Member names are joined with
// ".", array indices render as "[i]" with no separator before the
// bracket, and the root name leads with no separator. Zero-sized and
// flexible array elements render as "[]". Synthesized anonymous
// selectors render their literal form ("union@0"), keeping the
// displayed path diffable against the persisted layout.
func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		switch s.Kind {
		case SelRoot, SelMember, SelCase:
			if s.Name == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s.Name)
		case SelIndex:
			b.WriteByte('[')
			b.WriteString(strconv.FormatInt(s.Index, 10))
			b.WriteByte(']')
		case SelZero, SelFlex:
			b.WriteString("[]")
		}
	}
	return b.String()
}

// Strings returns the path as error-context segments: the rendered
// form as a single element. Errors carry this rather than the raw
// selector list so messages read like the display output.
func (p Path) Strings() []string {
	return []string{p.String()}
}

// clone returns an independent copy with room for one more selector.
func (p Path) clone() Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return out
}

// child returns a copy of the path extended with sel.
func (p Path) child(sel Selector) Path {
	return append(p.clone(), sel)
}
