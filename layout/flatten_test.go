package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	merrors "github.com/memgron/memgron/errors"
	"github.com/memgron/memgron/typedesc"
)

func u32() *typedesc.Type {
	return &typedesc.Type{Kind: typedesc.KindInteger, Name: "unsigned int", Pretty: "unsigned int", Bits: 32}
}

func s32() *typedesc.Type {
	return &typedesc.Type{Kind: typedesc.KindInteger, Name: "int", Pretty: "int", Bits: 32, Signed: true}
}

// pairStruct is a two-field struct {int x; unsigned y;}, 8 bytes.
func pairStruct() *typedesc.Type {
	return &typedesc.Type{
		Kind: typedesc.KindStruct,
		Name: "struct pair",
		Bits: 64,
		Members: []typedesc.Member{
			{Name: "x", ByteOffset: 0, Type: s32()},
			{Name: "y", ByteOffset: 4, Type: u32()},
		},
	}
}

func paths(fields []Field) []string {
	out := make([]string, len(fields))
	for i := range fields {
		out[i] = fields[i].Path.String()
	}
	return out
}

func TestFlattenArrayOfStruct(t *testing.T) {
	arr := &typedesc.Type{Kind: typedesc.KindArray, Elem: pairStruct(), Count: 2}

	fields, err := Flatten("name", arr)
	if err != nil {
		t.Fatal(err)
	}

	wantPaths := []string{"name[0].x", "name[0].y", "name[1].x", "name[1].y"}
	if diff := cmp.Diff(wantPaths, paths(fields)); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}

	wantPos := []int64{0, 32, 64, 96}
	for i, f := range fields {
		if f.Bitpos != wantPos[i] {
			t.Errorf("field %d bitpos: got %d, want %d", i, f.Bitpos, wantPos[i])
		}
		if f.Bitsize != 32 {
			t.Errorf("field %d bitsize: got %d, want 32", i, f.Bitsize)
		}
	}
}

func TestFlattenIdempotent(t *testing.T) {
	root := &typedesc.Type{
		Kind: typedesc.KindStruct,
		Bits: 128,
		Members: []typedesc.Member{
			{Name: "a", ByteOffset: 0, Type: u32()},
			{Name: "b", ByteOffset: 8, Type: pairStruct()},
		},
	}

	first, err := Flatten("t", root)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Flatten("t", root)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated flattening differs (-first +second):\n%s", diff)
	}
}

func TestFlattenPathUniqueness(t *testing.T) {
	root := &typedesc.Type{
		Kind: typedesc.KindStruct,
		Bits: 192,
		Members: []typedesc.Member{
			{Name: "a", ByteOffset: 0, Type: pairStruct()},
			{Name: "b", ByteOffset: 8, Type: pairStruct()},
			{Name: "c", ByteOffset: 16, Type: &typedesc.Type{Kind: typedesc.KindArray, Elem: u32(), Count: 2}},
		},
	}

	fields, err := Flatten("t", root)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, p := range paths(fields) {
		if seen[p] {
			t.Errorf("duplicate path %q", p)
		}
		seen[p] = true
	}
}

func TestFlattenUnionAliases(t *testing.T) {
	union := &typedesc.Type{
		Kind: typedesc.KindUnion,
		Name: "union u",
		Bits: 64,
		Members: []typedesc.Member{
			{Name: "i", Type: s32()},
			{Name: "f", Type: &typedesc.Type{Kind: typedesc.KindFloat, Name: "float", Pretty: "float", Bits: 32}},
			{Name: "p", Type: pairStruct()},
		},
	}

	fields, err := Flatten("u", union)
	if err != nil {
		t.Fatal(err)
	}

	wantPaths := []string{"u.i", "u.f", "u.p.x", "u.p.y"}
	if diff := cmp.Diff(wantPaths, paths(fields)); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}

	// Every member starts from the union's base offset: the first
	// three leaves alias bit 0.
	for i, want := range []int64{0, 0, 0, 32} {
		if fields[i].Bitpos != want {
			t.Errorf("field %s bitpos: got %d, want %d", fields[i].Name(), fields[i].Bitpos, want)
		}
	}
}

func TestFlattenCharArray(t *testing.T) {
	root := &typedesc.Type{
		Kind: typedesc.KindStruct,
		Bits: 32,
		Members: []typedesc.Member{
			{Name: "name", Type: &typedesc.Type{
				Kind:   typedesc.KindString,
				Pretty: "char [3]",
				Count:  3,
				Elem:   &typedesc.Type{Kind: typedesc.KindInteger, Name: "char", Pretty: "char", Bits: 8},
			}},
		},
	}

	fields, err := Flatten("t", root)
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 1 {
		t.Fatalf("char array must flatten to a single leaf, got %d", len(fields))
	}
	f := fields[0]
	if f.Kind != typedesc.KindString {
		t.Errorf("kind: got %s, want string", f.Kind)
	}
	if f.Bitsize != 24 {
		t.Errorf("bitsize: got %d, want 24", f.Bitsize)
	}
	if f.Pointee != "char" || f.PointeeSizeof != 1 {
		t.Errorf("pointee: got %q/%d, want char/1", f.Pointee, f.PointeeSizeof)
	}
}

func TestFlattenZeroLengthArray(t *testing.T) {
	arr := &typedesc.Type{Kind: typedesc.KindArray, Elem: u32(), Count: 0}
	fields, err := Flatten("t", arr)
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 0 {
		t.Errorf("zero-length array: got %d fields, want 0", len(fields))
	}
}

func TestFlattenAnonymousDisambiguation(t *testing.T) {
	anonUnion := func() *typedesc.Type {
		return &typedesc.Type{
			Kind: typedesc.KindUnion,
			Bits: 32,
			Members: []typedesc.Member{
				{Name: "v", Type: u32()},
			},
		}
	}
	anonStruct := &typedesc.Type{
		Kind: typedesc.KindStruct,
		Bits: 32,
		Members: []typedesc.Member{
			{Name: "w", Type: u32()},
		},
	}

	root := &typedesc.Type{
		Kind: typedesc.KindStruct,
		Bits: 96,
		Members: []typedesc.Member{
			{ByteOffset: 0, Type: anonUnion()},
			{ByteOffset: 4, Type: anonStruct},
			{ByteOffset: 8, Type: anonUnion()},
		},
	}

	fields, err := Flatten("t", root)
	if err != nil {
		t.Fatal(err)
	}

	// Ordinals count anonymous siblings per kind within the parent.
	wantPaths := []string{"t.union@0.v", "t.struct@0.w", "t.union@1.v"}
	if diff := cmp.Diff(wantPaths, paths(fields)); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenBitfields(t *testing.T) {
	boolType := &typedesc.Type{Kind: typedesc.KindBool, Name: "_Bool", Pretty: "_Bool", Bits: 8}
	root := &typedesc.Type{
		Kind: typedesc.KindStruct,
		Bits: 16,
		Members: []typedesc.Member{
			{Name: "f0", ByteOffset: 0, BitOffset: 0, BitSize: 1, Type: boolType},
			{Name: "f1", ByteOffset: 0, BitOffset: 1, BitSize: 1, Type: boolType},
			{Name: "n", ByteOffset: 0, BitOffset: 2, BitSize: 3, Type: u32()},
			{Name: "c", ByteOffset: 1, Type: &typedesc.Type{Kind: typedesc.KindInteger, Name: "char", Bits: 8}},
		},
	}

	fields, err := Flatten("t", root)
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		bitpos, bitsize int64
	}{{0, 1}, {1, 1}, {2, 3}, {8, 8}}
	for i, w := range want {
		if fields[i].Bitpos != w.bitpos || fields[i].Bitsize != w.bitsize {
			t.Errorf("field %s: got (%d,%d), want (%d,%d)",
				fields[i].Name(), fields[i].Bitpos, fields[i].Bitsize, w.bitpos, w.bitsize)
		}
	}
}

func TestFlattenEnumMembersCopied(t *testing.T) {
	values := map[int64]string{0: "E"}
	enum := &typedesc.Type{
		Kind:   typedesc.KindEnum,
		Name:   "enum e1",
		Pretty: "enum e1",
		Bits:   32,
		Values: values,
	}

	fields, err := Flatten("e", enum)
	if err != nil {
		t.Fatal(err)
	}
	values[1] = "LATE" // must not leak into the flattened layout
	if _, ok := fields[0].Members[1]; ok {
		t.Error("flattened layout aliases the caller's enum table")
	}
	if fields[0].Members[0] != "E" {
		t.Errorf("members[0]: got %q, want E", fields[0].Members[0])
	}
}

func TestFlattenUnsupportedKind(t *testing.T) {
	bad := &typedesc.Type{Kind: typedesc.KindInvalid}
	_, err := Flatten("t", bad)
	if err == nil {
		t.Fatal("expected error")
	}
	var me *merrors.Error
	if !errors.As(err, &me) || me.Kind != merrors.KindUnsupportedKind {
		t.Errorf("got %v, want unsupported_kind", err)
	}
}

func TestFlattenMalformedOffset(t *testing.T) {
	root := &typedesc.Type{
		Kind: typedesc.KindStruct,
		Bits: 32,
		Members: []typedesc.Member{
			{Name: "a", ByteOffset: 0, Type: u32()},
			{Name: "b", ByteOffset: 4, Type: u32()}, // ends at bit 64 in a 32-bit struct
		},
	}
	_, err := Flatten("t", root)
	if err == nil {
		t.Fatal("expected error")
	}
	var me *merrors.Error
	if !errors.As(err, &me) || me.Kind != merrors.KindMalformedOffset {
		t.Errorf("got %v, want malformed_offset", err)
	}
}

func TestFlattenBitRangeContainment(t *testing.T) {
	root := &typedesc.Type{
		Kind: typedesc.KindStruct,
		Name: "struct test",
		Bits: 256,
		Members: []typedesc.Member{
			{Name: "a", ByteOffset: 0, Type: pairStruct()},
			{Name: "z", ByteOffset: 8, Type: &typedesc.Type{Kind: typedesc.KindArray, Elem: pairStruct(), Count: 2}},
		},
	}

	fields, err := Flatten("test", root)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range fields {
		if f.Bitpos+f.Bitsize > root.Bits {
			t.Errorf("%s: bit range [%d,%d) exceeds declared %d bits",
				f.Name(), f.Bitpos, f.Bitpos+f.Bitsize, root.Bits)
		}
	}
}
