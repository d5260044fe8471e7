package pngmsg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"testing"
)

const (
	fixtureType    = "RuSt"
	fixtureMessage = "This is where your secret message will be!"
	fixtureCRC     = uint32(2882656334)
)

// chunkRecord assembles a raw record with an arbitrary declared length and
// stored CRC, so tests can lie about either.
func chunkRecord(length uint32, typ string, data []byte, crc uint32) []byte {
	out := binary.BigEndian.AppendUint32(nil, length)
	out = append(out, typ...)
	out = append(out, data...)
	return binary.BigEndian.AppendUint32(out, crc)
}

func fixtureRecord() []byte {
	return chunkRecord(uint32(len(fixtureMessage)), fixtureType, []byte(fixtureMessage), fixtureCRC)
}

func TestNewChunk(t *testing.T) {
	ct, err := ChunkTypeFromString(fixtureType)
	if err != nil {
		t.Fatal(err)
	}
	c := NewChunk(ct, []byte(fixtureMessage))
	if c.Length() != 42 {
		t.Fatalf("length = %d, want 42", c.Length())
	}
	if c.CRC() != fixtureCRC {
		t.Fatalf("crc = %d, want %d", c.CRC(), fixtureCRC)
	}
}

func TestChunkRoundTrip(t *testing.T) {
	c, err := ChunkFromBytes(fixtureRecord())
	if err != nil {
		t.Fatal(err)
	}
	if c.Length() != 42 {
		t.Fatalf("length = %d, want 42", c.Length())
	}
	if c.Type().String() != fixtureType {
		t.Fatalf("type = %q", c.Type())
	}
	if c.CRC() != fixtureCRC {
		t.Fatalf("crc = %d, want %d", c.CRC(), fixtureCRC)
	}
	text, err := c.DataAsText()
	if err != nil {
		t.Fatal(err)
	}
	if text != fixtureMessage {
		t.Fatalf("text = %q", text)
	}
	if !bytes.Equal(c.Bytes(), fixtureRecord()) {
		t.Fatal("serialized record differs from input")
	}
}

func TestChunkCRCSensitivity(t *testing.T) {
	// Flipping any single bit of the trailing CRC must fail with
	// ErrCRCMismatch, and the reported computed value must still be the CRC
	// of the untouched type+data.
	for bit := 0; bit < 32; bit++ {
		record := fixtureRecord()
		record[len(record)-4+bit/8] ^= 1 << (bit % 8)
		_, err := ChunkFromBytes(record)
		if !errors.Is(err, ErrCRCMismatch) {
			t.Fatalf("bit %d: expected ErrCRCMismatch, got %v", bit, err)
		}
		if !strings.Contains(err.Error(), fmt.Sprintf("computed %d", fixtureCRC)) {
			t.Fatalf("bit %d: computed value not reported: %v", bit, err)
		}
	}
}

func TestChunkTruncation(t *testing.T) {
	record := fixtureRecord()
	cases := []struct {
		name string
		buf  []byte
		want error
	}{
		{"empty", nil, ErrTruncatedLength},
		{"short length", record[:3], ErrTruncatedLength},
		{"short type", record[:6], ErrTruncatedType},
		{"short data", record[:20], ErrTruncatedData},
		{"short crc", record[:len(record)-1], ErrInvalidCRCLength},
		{"trailing garbage", append(fixtureRecord(), 0xFF), ErrInvalidCRCLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ChunkFromBytes(tc.buf); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestChunkLengthBound(t *testing.T) {
	// 2^31 + 1 is rejected outright, regardless of how much data follows.
	over := chunkRecord(1<<31+1, fixtureType, []byte(fixtureMessage), fixtureCRC)
	if _, err := ChunkFromBytes(over); !errors.Is(err, ErrLengthOverflow) {
		t.Fatalf("expected ErrLengthOverflow, got %v", err)
	}

	// Exactly 2^31 is structurally accepted: with too little data present
	// the failure is the data-length mismatch, never the overflow error.
	boundary := chunkRecord(1<<31, fixtureType, []byte(fixtureMessage), fixtureCRC)
	if _, err := ChunkFromBytes(boundary); !errors.Is(err, ErrTruncatedData) {
		t.Fatalf("expected ErrTruncatedData, got %v", err)
	}
}

func TestChunkTypeValidityOnDecode(t *testing.T) {
	ct, err := ChunkTypeFromString("Rust")
	if err != nil {
		t.Fatal(err)
	}
	// Reserved bit set: construction works, decoding the record must not.
	c := NewChunk(ct, []byte(fixtureMessage))
	if _, err := ChunkFromBytes(c.Bytes()); !errors.Is(err, ErrInvalidReservedBit) {
		t.Fatalf("expected ErrInvalidReservedBit, got %v", err)
	}

	bad := chunkRecord(uint32(len(fixtureMessage)), "Ru1t", []byte(fixtureMessage), fixtureCRC)
	if _, err := ChunkFromBytes(bad); !errors.Is(err, ErrInvalidTypeByte) {
		t.Fatalf("expected ErrInvalidTypeByte, got %v", err)
	}
}

func TestChunkEmptyData(t *testing.T) {
	ct, err := ChunkTypeFromString("TeSt")
	if err != nil {
		t.Fatal(err)
	}
	c := NewChunk(ct, nil)
	got, err := ChunkFromBytes(c.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if got.Length() != 0 || got.CRC() != c.CRC() {
		t.Fatalf("round trip mismatch: %v", got)
	}
}

func TestChunkDataAsTextInvalid(t *testing.T) {
	ct, err := ChunkTypeFromString("TeSt")
	if err != nil {
		t.Fatal(err)
	}
	c := NewChunk(ct, []byte{0xFF, 0xFE, 0xFD})
	if _, err := c.DataAsText(); !errors.Is(err, ErrInvalidText) {
		t.Fatalf("expected ErrInvalidText, got %v", err)
	}
	if !strings.Contains(c.String(), "(binary)") {
		t.Fatalf("String should mark binary data: %q", c.String())
	}
}
