package record

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/memgron/memgron/decode"
	"github.com/memgron/memgron/layout"
)

// Scope identifies where an entity's name was resolved: nothing (a
// global type lookup), an object file name, or an address mapped to an
// object file. It round-trips through JSON as null, a string, or a
// number.
type Scope struct {
	Str    string
	Addr   int64
	IsAddr bool
	Valid  bool // false means null
}

// GlobalScope is the null scope used for global type lookups.
var GlobalScope = Scope{}

// FileScope returns a scope naming an object file.
func FileScope(name string) Scope {
	return Scope{Str: name, Valid: true}
}

// AddrScope returns a scope for an address to be mapped to an object file.
func AddrScope(addr int64) Scope {
	return Scope{Addr: addr, IsAddr: true, Valid: true}
}

func (s Scope) String() string {
	switch {
	case !s.Valid:
		return "<global>"
	case s.IsAddr:
		return fmt.Sprintf("%#x", s.Addr)
	default:
		return s.Str
	}
}

func (s Scope) MarshalJSON() ([]byte, error) {
	switch {
	case !s.Valid:
		return []byte("null"), nil
	case s.IsAddr:
		return []byte(strconv.FormatInt(s.Addr, 10)), nil
	default:
		return json.Marshal(s.Str)
	}
}

func (s *Scope) UnmarshalJSON(data []byte) error {
	d := strings.TrimSpace(string(data))
	if d == "null" {
		*s = GlobalScope
		return nil
	}
	if len(d) > 0 && d[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		// Hex strings address into an object file.
		if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
			if addr, err := strconv.ParseInt(str[2:], 16, 64); err == nil {
				*s = AddrScope(addr)
				return nil
			}
		}
		*s = FileScope(str)
		return nil
	}
	addr, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return fmt.Errorf("scope must be null, a string, or an integer: %w", err)
	}
	*s = AddrScope(addr)
	return nil
}

// Record is one persisted layout: the flattened fields for one named
// entity in a scope, one JSON object per line in a layout file.
type Record struct {
	Scope     Scope            `json:"scope"`
	Name      string           `json:"name"`
	ByteOrder decode.ByteOrder `json:"byte_order,omitempty"`
	Layout    []layout.Field   `json:"layout"`
}

// Request is one resolver input line: a [scope, name] pair.
type Request struct {
	Scope Scope
	Name  string
}

func (r Request) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{r.Scope, r.Name})
}

func (r *Request) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("request must be a [scope, name] pair, got %d elements", len(parts))
	}
	if err := json.Unmarshal(parts[0], &r.Scope); err != nil {
		return err
	}
	return json.Unmarshal(parts[1], &r.Name)
}
