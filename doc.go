// Package pngmsg reads and writes PNG files at the chunk level and hides
// arbitrary text messages in custom chunks.
//
// The package is not a PNG image decoder. Pixel data, compression, and the
// standard chunk types (IHDR, IDAT, ...) are carried opaquely as an ordered
// list of chunk records; only the record framing itself is interpreted.
//
// # File Format Overview
//
// A PNG file consists of an 8-byte signature followed by chunk records,
// big-endian throughout:
//
//	chunk := length:u32 | type:byte[4] | data:byte[length] | crc:u32
//
// The 4 type bytes are ASCII letters whose case encodes the PNG property
// bits (critical, public, reserved, safe-to-copy). The CRC is the standard
// CRC-32 (ISO-HDLC) over the type and data bytes and is verified on every
// decode.
//
// # Basic Usage
//
// To hide a message in an existing file:
//
//	raw, _ := os.ReadFile("in.png")
//	p, err := pngmsg.ParsePng(raw)
//	if err != nil {
//		// ...
//	}
//	err = pngmsg.EncodeMessage(p, "ruSt", "my secret")
//	_ = os.WriteFile("out.png", p.Bytes(), 0o644)
//
// To read it back:
//
//	msg, err := pngmsg.DecodeMessage(p, "ruSt")
//
// The chunk and container layers are also usable directly: NewChunk,
// ChunkFromBytes, Png.AppendChunk, Png.ChunkByType, Png.RemoveChunk.
//
// # Security Considerations
//
// Message payloads may be compressed (Zstandard, LZ4, or Brotli). Decoding
// framed payloads is bounded by configurable [Limits] to prevent oversized
// allocations and decompression bombs. The chunk codec itself rejects
// declared lengths above 2^31 as the wire format requires.
package pngmsg
