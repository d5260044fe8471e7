package pngmsg

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// DecodeMessage extracts the message hidden in the first chunk of the given
// type. Framed payloads (see EncodeMessage) are decompressed under the
// decode limits; anything else is returned as-is via DataAsText.
//
// DecodeMessage returns ErrChunkNotFound if no chunk of the type exists.
func DecodeMessage(p *Png, typeStr string, opts ...DecodeOption) (string, error) {
	cfg := decodeConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	c, ok := p.ChunkByType(typeStr)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrChunkNotFound, typeStr)
	}

	data := c.Data()
	if len(data) < msgFrameHeaderLen || !bytes.Equal(data[:4], msgMagic[:]) {
		return c.DataAsText()
	}

	comp := Compression(data[4])
	uncompressedLen := uint64(binary.BigEndian.Uint32(data[5:9]))
	if uncompressedLen > cfg.limits.MaxDecompressedMessage {
		return "", fmt.Errorf("%w: frame declares %d bytes", ErrLimitExceeded, uncompressedLen)
	}
	out, err := decompressData(comp, data[msgFrameHeaderLen:], uncompressedLen)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", ErrInvalidText
	}
	return string(out), nil
}
