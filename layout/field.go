package layout

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/memgron/memgron/typedesc"
)

// EnumValues is an enum's value-to-name table. It serializes with the
// decoded integer value as a string key, so layouts stay plain JSON:
//
//	{"0": "E", "1": "F"}
//
// The table need not be exhaustive and multiple values may map to the
// same name.
type EnumValues map[int64]string

// MarshalJSON encodes the table with sorted keys so layouts are
// byte-stable across runs.
func (ev EnumValues) MarshalJSON() ([]byte, error) {
	keys := make([]int64, 0, len(ev))
	for k := range ev {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	buf := []byte{'{'}
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendQuote(buf, strconv.FormatInt(k, 10))
		buf = append(buf, ':')
		name, err := json.Marshal(ev[k])
		if err != nil {
			return nil, err
		}
		buf = append(buf, name...)
	}
	return append(buf, '}'), nil
}

// UnmarshalJSON decodes the string-keyed table.
func (ev *EnumValues) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(EnumValues, len(raw))
	for k, name := range raw {
		v, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return fmt.Errorf("enum member key %q: %w", k, err)
		}
		out[v] = name
	}
	*ev = out
	return nil
}

// Field is one flattened leaf descriptor. Bitpos is absolute from the
// start of the containing entity; union members may alias, so bit
// ranges of distinct fields can overlap.
type Field struct {
	Path    Path          `json:"path"`
	Kind    typedesc.Kind `json:"kind"`
	Pretty  string        `json:"pretty"`
	Type    string        `json:"type"`
	Bitpos  int64         `json:"bitpos"`
	Bitsize int64         `json:"bitsize"`
	Signed  bool          `json:"signed"`

	// Enum kind only.
	Members EnumValues `json:"members,omitempty"`

	// Ptr and string kinds only: the pointee (the underlying character
	// type, for strings).
	Pointee       string `json:"pointee,omitempty"`
	PointeePretty string `json:"pointee_pretty,omitempty"`
	PointeeSizeof int64  `json:"pointee_sizeof,omitempty"`
}

// Name returns the rendered display path.
func (f *Field) Name() string {
	return f.Path.String()
}
