package pngmsg

import (
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

// Signature is the fixed 8-byte PNG file signature.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// maxChunkLength is the largest declared data length a chunk record may
// carry. The boundary is inclusive: exactly 2^31 is accepted.
const maxChunkLength uint32 = 1 << 31

// typeFlagBit is bit 5 of each type byte, the ASCII case bit. The PNG spec
// assigns a property to the case of each of the four type characters.
const typeFlagBit byte = 1 << 5

// ChunkType is the 4-byte ASCII tag classifying a chunk. Each byte must be
// an ASCII letter. ChunkType is a comparable value type; two types are the
// same chunk type iff they compare equal.
type ChunkType [4]byte

// ChunkTypeFromBytes constructs a ChunkType from 4 raw bytes. It returns
// ErrInvalidTypeByte if any byte is not in A-Z or a-z. The reserved-bit rule
// is a property query (IsValid), not a construction-time rejection.
func ChunkTypeFromBytes(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if err := validateTypeByte(c); err != nil {
			return ChunkType{}, err
		}
	}
	return ChunkType(b), nil
}

// ChunkTypeFromString constructs a ChunkType from a 4-character string.
// Strings of any other length fail with ErrInvalidTypeLength; they are never
// truncated or padded.
func ChunkTypeFromString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: got %d", ErrInvalidTypeLength, len(s))
	}
	return ChunkTypeFromBytes([4]byte([]byte(s)))
}

// Bytes returns the 4 raw type bytes.
func (t ChunkType) Bytes() [4]byte { return [4]byte(t) }

func (t ChunkType) String() string { return string(t[:]) }

// IsCritical reports whether the chunk is critical to displaying the image
// (first byte uppercase).
func (t ChunkType) IsCritical() bool { return t[0]&typeFlagBit == 0 }

// IsPublic reports whether the type is publicly registered (second byte
// uppercase).
func (t ChunkType) IsPublic() bool { return t[1]&typeFlagBit == 0 }

// IsReservedBitValid reports whether the reserved third byte is uppercase,
// as the PNG spec requires of all conforming types.
func (t ChunkType) IsReservedBitValid() bool { return t[2]&typeFlagBit == 0 }

// IsSafeToCopy reports whether editors may copy the chunk without
// understanding it (fourth byte lowercase).
func (t ChunkType) IsSafeToCopy() bool { return t[3]&typeFlagBit != 0 }

// IsValid reports whether the type is well-formed enough to use. Only the
// reserved bit counts; the other three properties are informational.
func (t ChunkType) IsValid() bool { return t.IsReservedBitValid() }

// Chunk is one length/type/data/crc record. The length and CRC are derived
// from the type and data, never stored, so a Chunk cannot hold an
// inconsistent record.
type Chunk struct {
	chunkType ChunkType
	data      []byte
}

// NewChunk builds a chunk from a type and data. It always succeeds; length
// and CRC are derived.
func NewChunk(t ChunkType, data []byte) Chunk {
	return Chunk{chunkType: t, data: data}
}

// Length returns the byte count of the chunk data.
func (c Chunk) Length() uint32 { return uint32(len(c.data)) }

// Type returns the chunk's type tag.
func (c Chunk) Type() ChunkType { return c.chunkType }

// Data returns the chunk's payload. The slice is shared, not copied.
func (c Chunk) Data() []byte { return c.data }

// CRC returns the CRC-32 (ISO-HDLC) checksum over the type bytes followed by
// the data bytes. It is recomputed on every call so it always reflects the
// current data. crc32.IEEETable is the process-wide precomputed table.
func (c Chunk) CRC() uint32 {
	crc := crc32.Update(0, crc32.IEEETable, c.chunkType[:])
	return crc32.Update(crc, crc32.IEEETable, c.data)
}

// DataAsText interprets the chunk data as UTF-8 text. It returns
// ErrInvalidText if the data is not valid UTF-8.
func (c Chunk) DataAsText() (string, error) {
	if !utf8.Valid(c.data) {
		return "", ErrInvalidText
	}
	return string(c.data), nil
}

func (c Chunk) String() string {
	if s, err := c.DataAsText(); err == nil {
		return fmt.Sprintf("%s length=%d crc=%d %q", c.chunkType, c.Length(), c.CRC(), s)
	}
	return fmt.Sprintf("%s length=%d crc=%d (binary)", c.chunkType, c.Length(), c.CRC())
}

// Png is an ordered sequence of chunks bounded by the fixed signature.
// Order is significant: lookup and removal use first-match semantics and
// AppendChunk adds at the end.
type Png struct {
	chunks []Chunk
}

// NewPng returns an empty container with no chunks.
func NewPng() *Png { return &Png{} }
