package typedesc

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindInteger, "integer"},
		{KindFloat, "float"},
		{KindBool, "boolean"},
		{KindEnum, "enum"},
		{KindPtr, "ptr"},
		{KindStruct, "struct"},
		{KindUnion, "union"},
		{KindArray, "array"},
		{KindString, "string"},
		{Kind(200), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String(): got %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindIsLeaf(t *testing.T) {
	leaves := []Kind{KindInteger, KindFloat, KindBool, KindEnum, KindPtr, KindString}
	for _, k := range leaves {
		if !k.IsLeaf() {
			t.Errorf("%s should be a leaf", k)
		}
	}
	compounds := []Kind{KindStruct, KindUnion, KindArray, KindInvalid}
	for _, k := range compounds {
		if k.IsLeaf() {
			t.Errorf("%s should not be a leaf", k)
		}
	}
}

func TestKindTextRoundTrip(t *testing.T) {
	for k := KindInteger; k <= KindString; k++ {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("%s: marshal: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("%s: unmarshal: %v", k, err)
		}
		if back != k {
			t.Errorf("round trip: got %s, want %s", back, k)
		}
	}

	var k Kind
	if err := k.UnmarshalText([]byte("quaternion")); err == nil {
		t.Error("expected error for unknown kind name")
	}
}

func TestTotalBits(t *testing.T) {
	u32 := &Type{Kind: KindInteger, Bits: 32}

	tests := []struct {
		name string
		typ  *Type
		want int64
	}{
		{"declared", &Type{Kind: KindStruct, Bits: 128}, 128},
		{"array derived", &Type{Kind: KindArray, Elem: u32, Count: 3}, 96},
		{"char array derived", &Type{Kind: KindString, Count: 7}, 56},
		{"unknown", &Type{Kind: KindStruct}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.TotalBits(); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
