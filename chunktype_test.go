package pngmsg

import (
	"errors"
	"testing"
)

func TestChunkTypeFromBytes(t *testing.T) {
	ct, err := ChunkTypeFromBytes([4]byte{82, 117, 83, 116})
	if err != nil {
		t.Fatal(err)
	}
	if ct.Bytes() != [4]byte{82, 117, 83, 116} {
		t.Fatalf("bytes mismatch: %v", ct.Bytes())
	}
	if ct.String() != "RuSt" {
		t.Fatalf("string mismatch: %q", ct.String())
	}
}

func TestChunkTypeFromString(t *testing.T) {
	fromStr, err := ChunkTypeFromString("RuSt")
	if err != nil {
		t.Fatal(err)
	}
	fromBytes, err := ChunkTypeFromBytes([4]byte{82, 117, 83, 116})
	if err != nil {
		t.Fatal(err)
	}
	if fromStr != fromBytes {
		t.Fatalf("equality mismatch: %v vs %v", fromStr, fromBytes)
	}
}

func TestChunkTypeProperties(t *testing.T) {
	cases := []struct {
		typ      string
		critical bool
		public   bool
		reserved bool
		safe     bool
	}{
		{"RuSt", true, false, true, true},
		{"ruSt", false, false, true, true},
		{"RUSt", true, true, true, true},
		{"Rust", true, false, false, true},
		{"RuST", true, false, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.typ, func(t *testing.T) {
			ct, err := ChunkTypeFromString(tc.typ)
			if err != nil {
				t.Fatal(err)
			}
			if got := ct.IsCritical(); got != tc.critical {
				t.Errorf("IsCritical = %v, want %v", got, tc.critical)
			}
			if got := ct.IsPublic(); got != tc.public {
				t.Errorf("IsPublic = %v, want %v", got, tc.public)
			}
			if got := ct.IsReservedBitValid(); got != tc.reserved {
				t.Errorf("IsReservedBitValid = %v, want %v", got, tc.reserved)
			}
			if got := ct.IsSafeToCopy(); got != tc.safe {
				t.Errorf("IsSafeToCopy = %v, want %v", got, tc.safe)
			}
			if ct.IsValid() != ct.IsReservedBitValid() {
				t.Error("IsValid must equal IsReservedBitValid")
			}
		})
	}
}

func TestChunkTypeInvalidByte(t *testing.T) {
	if _, err := ChunkTypeFromString("Ru1t"); !errors.Is(err, ErrInvalidTypeByte) {
		t.Fatalf("expected ErrInvalidTypeByte, got %v", err)
	}
	if _, err := ChunkTypeFromBytes([4]byte{'R', 'u', ' ', 't'}); !errors.Is(err, ErrInvalidTypeByte) {
		t.Fatalf("expected ErrInvalidTypeByte, got %v", err)
	}
}

func TestChunkTypeWrongLength(t *testing.T) {
	for _, s := range []string{"", "Rus", "Rusty"} {
		if _, err := ChunkTypeFromString(s); !errors.Is(err, ErrInvalidTypeLength) {
			t.Fatalf("%q: expected ErrInvalidTypeLength, got %v", s, err)
		}
	}
}
