package schema

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/memgron/memgron/typedesc"
)

// ValueError reports a schema problem with the YAML line it came from.
type ValueError struct {
	Node *yaml.Node
	Err  error
}

func (v ValueError) Unwrap() error { return v.Err }

func (v ValueError) Error() string {
	return fmt.Sprintf("%d: %s", v.Node.Line, v.Err)
}

func valueErrorf(n *yaml.Node, format string, a ...any) ValueError {
	return ValueError{
		Node: n,
		Err:  fmt.Errorf(format, a...),
	}
}

// A schema document describes one entity's type:
//
//	name: test
//	type:
//	  kind: struct
//	  bits: 256
//	  members:
//	    - name: e
//	      type: {kind: enum, bits: 32, name: enum e1, values: {0: E}}
//	    - byte_offset: 4
//	      type:
//	        kind: struct
//	        bits: 64
//	        members:
//	          - name: f0
//	            bit_size: 1
//	            type: {kind: boolean, bits: 8}
//
// kinds: integer, float, boolean, enum, ptr, struct, union, array,
// string (fixed-size char array). Arrays take elem and count; char
// arrays take count only.

type kindNode struct {
	typedesc.Kind
}

func (k *kindNode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := typedesc.KindFromString(s)
	if err != nil {
		return valueErrorf(value, "%s", err)
	}
	k.Kind = v
	return nil
}

type typeNode struct {
	Kind   *kindNode        `yaml:"kind"`
	Name   string           `yaml:"name"`
	Pretty string           `yaml:"pretty"`
	Bits   int64            `yaml:"bits"`
	Signed bool             `yaml:"signed"`
	Count  int64            `yaml:"count"`
	Elem   *typeNode        `yaml:"elem"`
	Values map[int64]string `yaml:"values"`

	Members []memberNode `yaml:"members"`

	node *yaml.Node
}

func (t *typeNode) UnmarshalYAML(value *yaml.Node) error {
	type tt typeNode
	var tv tt
	if err := value.Decode(&tv); err != nil {
		return err
	}
	*t = typeNode(tv)
	t.node = value
	if t.Kind == nil {
		return valueErrorf(value, "type without kind")
	}
	return nil
}

type memberNode struct {
	Name       string    `yaml:"name"`
	ByteOffset int64     `yaml:"byte_offset"`
	BitOffset  int64     `yaml:"bit_offset"`
	BitSize    int64     `yaml:"bit_size"`
	Type       *typeNode `yaml:"type"`
}

// Entity is a parsed schema document: a root name and its type tree.
type Entity struct {
	Name string
	Type *typedesc.Type
}

type document struct {
	Name string    `yaml:"name"`
	Type *typeNode `yaml:"type"`
}

// Parse reads one schema document and converts it to a type
// description tree.
func Parse(r io.Reader) (*Entity, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	if doc.Type == nil {
		return nil, fmt.Errorf("document without type")
	}
	t, err := convert(doc.Type)
	if err != nil {
		return nil, err
	}
	return &Entity{Name: doc.Name, Type: t}, nil
}

func convert(n *typeNode) (*typedesc.Type, error) {
	t := &typedesc.Type{
		Kind:   n.Kind.Kind,
		Name:   n.Name,
		Pretty: n.Pretty,
		Bits:   n.Bits,
		Signed: n.Signed,
		Count:  n.Count,
	}

	switch t.Kind {
	case typedesc.KindStruct, typedesc.KindUnion:
		for _, m := range n.Members {
			if m.Type == nil {
				return nil, valueErrorf(n.node, "member %q without type", m.Name)
			}
			mt, err := convert(m.Type)
			if err != nil {
				return nil, err
			}
			t.Members = append(t.Members, typedesc.Member{
				Name:       m.Name,
				ByteOffset: m.ByteOffset,
				BitOffset:  m.BitOffset,
				BitSize:    m.BitSize,
				Type:       mt,
			})
		}

	case typedesc.KindArray:
		if n.Elem == nil {
			return nil, valueErrorf(n.node, "array without elem")
		}
		elem, err := convert(n.Elem)
		if err != nil {
			return nil, err
		}
		t.Elem = elem

	case typedesc.KindEnum:
		if len(n.Values) > 0 {
			t.Values = make(map[int64]string, len(n.Values))
			for v, name := range n.Values {
				t.Values[v] = name
			}
		}

	case typedesc.KindPtr, typedesc.KindString:
		if n.Elem != nil {
			elem, err := convert(n.Elem)
			if err != nil {
				return nil, err
			}
			t.Elem = elem
		}
	}

	return t, nil
}
