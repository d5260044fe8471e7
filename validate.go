package pngmsg

import "fmt"

// validateTypeByte enforces the ASCII-letter constraint on a single chunk
// type byte.
func validateTypeByte(c byte) error {
	if ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') {
		return nil
	}
	return fmt.Errorf("%w: got %d", ErrInvalidTypeByte, c)
}

// validateChunkType is the decode-time check: the type must parse and its
// reserved bit must be clear. Construction via ChunkTypeFromBytes alone does
// not reject reserved-bit violations; decoding a record does.
func validateChunkType(b [4]byte) (ChunkType, error) {
	t, err := ChunkTypeFromBytes(b)
	if err != nil {
		return ChunkType{}, err
	}
	if !t.IsValid() {
		return ChunkType{}, fmt.Errorf("%w: %q", ErrInvalidReservedBit, t.String())
	}
	return t, nil
}
