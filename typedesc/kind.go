package typedesc

import "fmt"

type Kind uint8

const (
	KindInvalid Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindEnum
	KindPtr
	KindStruct
	KindUnion
	KindArray
	KindString // fixed-size character array
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInteger: "integer",
	KindFloat:   "float",
	KindBool:    "boolean",
	KindEnum:    "enum",
	KindPtr:     "ptr",
	KindStruct:  "struct",
	KindUnion:   "union",
	KindArray:   "array",
	KindString:  "string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsLeaf reports whether the kind is atomic: it carries a value of its
// own rather than further structure.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindInteger, KindFloat, KindBool, KindEnum, KindPtr, KindString:
		return true
	default:
		return false
	}
}

// KindFromString maps a kind's wire name back to its Kind value.
func KindFromString(s string) (Kind, error) {
	for k, name := range kindNames {
		if Kind(k) != KindInvalid && name == s {
			return Kind(k), nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown kind %q", s)
}

// MarshalText encodes the kind as its wire name.
func (k Kind) MarshalText() ([]byte, error) {
	if k == KindInvalid || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("cannot marshal kind %d", k)
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind from its wire name.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := KindFromString(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
