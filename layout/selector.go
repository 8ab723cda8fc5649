package layout

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SelKind discriminates the selector forms a path is built from.
type SelKind uint8

const (
	SelRoot  SelKind = iota // root type name, always the first path element
	SelMember                // struct member
	SelCase                 // union member
	SelIndex                // regular array element
	SelZero                 // element of a zero-sized array
	SelFlex                 // flexible array member
)

var selTags = [...]byte{
	SelMember: '.',
	SelCase:  '?',
	SelIndex: '[',
	SelZero:  '!',
	SelFlex:  '*',
}

// Selector is one path segment: a member name, an array index, or the
// root name. Member selectors carry the member's rank among its
// parent's members; index selectors additionally carry the element
// width so the layout is self-describing.
type Selector struct {
	Kind     SelKind
	Name     string // member name, or synthesized name for anonymous members
	Index    int64  // array index
	ElemBits int64  // element width in bits, index selectors only
	Rank     int    // ordinal of the field in its parent
}

// Root returns the leading selector holding the root type's name.
func Root(name string) Selector {
	return Selector{Kind: SelRoot, Name: name}
}

// Member returns a struct member selector.
func Member(name string, rank int) Selector {
	return Selector{Kind: SelMember, Name: name, Rank: rank}
}

// Case returns a union member selector.
func Case(name string, rank int) Selector {
	return Selector{Kind: SelCase, Name: name, Rank: rank}
}

// Index returns an array element selector.
func Index(idx, elemBits int64, rank int) Selector {
	return Selector{Kind: SelIndex, Index: idx, ElemBits: elemBits, Rank: rank}
}

// wire returns the persisted string form: ".name@rank", "?name@rank",
// "[idx*bits@rank" and the "!" / "*" variants for zero-sized and
// flexible arrays. The root selector's wire form is the bare name.
func (s Selector) wire() string {
	switch s.Kind {
	case SelRoot:
		return s.Name
	case SelMember, SelCase:
		return fmt.Sprintf("%c%s@%d", selTags[s.Kind], s.Name, s.Rank)
	case SelIndex, SelZero, SelFlex:
		return fmt.Sprintf("%c%d*%d@%d", selTags[s.Kind], s.Index, s.ElemBits, s.Rank)
	default:
		return ""
	}
}

// parseSelector decodes a persisted selector string. Strings that do
// not carry a recognized tag byte and "@rank" suffix are taken as root
// names.
func parseSelector(s string) (Selector, error) {
	if s == "" {
		return Root(""), nil
	}

	var kind SelKind
	switch s[0] {
	case '.':
		kind = SelMember
	case '?':
		kind = SelCase
	case '[':
		kind = SelIndex
	case '!':
		kind = SelZero
	case '*':
		kind = SelFlex
	default:
		return Root(s), nil
	}

	at := strings.LastIndexByte(s, '@')
	if at < 0 {
		return Root(s), nil
	}
	rank, err := strconv.Atoi(s[at+1:])
	if err != nil {
		return Root(s), nil
	}
	body := s[1:at]

	switch kind {
	case SelMember, SelCase:
		return Selector{Kind: kind, Name: body, Rank: rank}, nil
	default:
		idxStr, bitsStr, ok := strings.Cut(body, "*")
		if !ok {
			return Selector{}, fmt.Errorf("malformed array selector %q", s)
		}
		idx, err := strconv.ParseInt(idxStr, 10, 64)
		if err != nil {
			return Selector{}, fmt.Errorf("malformed array selector %q: %w", s, err)
		}
		bits, err := strconv.ParseInt(bitsStr, 10, 64)
		if err != nil {
			return Selector{}, fmt.Errorf("malformed array selector %q: %w", s, err)
		}
		return Selector{Kind: kind, Index: idx, ElemBits: bits, Rank: rank}, nil
	}
}

// MarshalJSON encodes the selector as its wire string. Root selectors
// with no name encode as null, matching layouts dumped for anonymous
// root types.
func (s Selector) MarshalJSON() ([]byte, error) {
	if s.Kind == SelRoot && s.Name == "" {
		return []byte("null"), nil
	}
	return json.Marshal(s.wire())
}

// UnmarshalJSON decodes a selector from its wire string or null.
func (s *Selector) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Root("")
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	sel, err := parseSelector(str)
	if err != nil {
		return err
	}
	*s = sel
	return nil
}
