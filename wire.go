package pngmsg

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Wire layout, big-endian throughout:
//
//	chunk := length:u32 | type:byte[4] | data:byte[length] | crc:u32
//	png   := signature:byte[8] | chunk*
//
// The CRC covers the type bytes followed by the data bytes.

// Bytes serializes the chunk to its canonical record layout.
func (c Chunk) Bytes() []byte {
	out := make([]byte, 0, 12+len(c.data))
	out = binary.BigEndian.AppendUint32(out, c.Length())
	out = append(out, c.chunkType[:]...)
	out = append(out, c.data...)
	out = binary.BigEndian.AppendUint32(out, c.CRC())
	return out
}

// ChunkFromBytes parses one chunk record from buf. The buffer must contain
// exactly one record: trailing bytes beyond the CRC are an error. Decoding
// is all-or-nothing; on any failure no chunk is returned.
func ChunkFromBytes(buf []byte) (Chunk, error) {
	if len(buf) < 4 {
		return Chunk{}, ErrTruncatedLength
	}
	if len(buf) < 8 {
		return Chunk{}, ErrTruncatedType
	}
	length := binary.BigEndian.Uint32(buf[0:4])
	if length > maxChunkLength {
		return Chunk{}, fmt.Errorf("%w: got %d", ErrLengthOverflow, length)
	}
	if uint64(len(buf)) < 8+uint64(length) {
		return Chunk{}, ErrTruncatedData
	}
	data := buf[8 : 8+length]
	crcBytes := buf[8+length:]
	if len(crcBytes) != 4 {
		return Chunk{}, fmt.Errorf("%w: got %d bytes", ErrInvalidCRCLength, len(crcBytes))
	}
	expected := binary.BigEndian.Uint32(crcBytes)

	t, err := validateChunkType([4]byte(buf[4:8]))
	if err != nil {
		return Chunk{}, err
	}

	c := NewChunk(t, bytes.Clone(data))
	if computed := c.CRC(); computed != expected {
		return Chunk{}, fmt.Errorf("%w: computed %d, stored %d", ErrCRCMismatch, computed, expected)
	}
	return c, nil
}

// Bytes serializes the container: signature followed by each chunk's record
// in stored order. It is the exact inverse of ParsePng for unmodified
// containers.
func (p *Png) Bytes() []byte {
	out := make([]byte, 0, len(Signature))
	out = append(out, Signature[:]...)
	for _, c := range p.chunks {
		out = append(out, c.Bytes()...)
	}
	return out
}

// ParsePng parses a full PNG buffer: the 8-byte signature followed by chunk
// records until the buffer is exhausted. Any per-chunk failure aborts the
// whole parse; a partially recovered container is never returned.
func ParsePng(buf []byte) (*Png, error) {
	if len(buf) < len(Signature) || !bytes.Equal(buf[:len(Signature)], Signature[:]) {
		return nil, ErrInvalidSignature
	}
	p := NewPng()
	rest := buf[len(Signature):]
	for len(rest) > 0 {
		record := rest
		if len(rest) >= 8 {
			length := binary.BigEndian.Uint32(rest[0:4])
			if length > maxChunkLength {
				return nil, fmt.Errorf("%w: got %d", ErrLengthOverflow, length)
			}
			if total := 12 + uint64(length); uint64(len(rest)) > total {
				record = rest[:total]
			}
		}
		c, err := ChunkFromBytes(record)
		if err != nil {
			return nil, err
		}
		p.chunks = append(p.chunks, c)
		rest = rest[len(record):]
	}
	return p, nil
}
