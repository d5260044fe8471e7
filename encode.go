package pngmsg

import (
	"encoding/binary"
	"fmt"
)

// Compressed messages are framed inside the chunk data so DecodeMessage can
// recognize them without out-of-band state:
//
//	frame := magic:byte[4] | comp:u8 | uncompressedLen:u32 | body
//
// Uncompressed messages are stored as the raw message bytes, which keeps
// chunks written without compression readable by any chunk-level tool.
var msgMagic = [4]byte{0xB6, 'm', 's', 'g'}

const msgFrameHeaderLen = 9

// EncodeMessage hides message in p by appending a chunk of the given type
// holding the message bytes. typeStr must be a 4-character chunk type whose
// reserved bit is clear; a critical or non-safe-to-copy type is allowed but
// ill-advised, and the caller gets no warning.
//
// By default the message is stored raw. Use WithCompression to compress the
// payload; the frame records the codec so decoding is self-describing.
func EncodeMessage(p *Png, typeStr, message string, opts ...EncodeOption) error {
	cfg := encodeConfig{limits: defaultLimits(), compression: CompNone}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	t, err := ChunkTypeFromString(typeStr)
	if err != nil {
		return err
	}
	if !t.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidReservedBit, t.String())
	}
	if uint64(len(message)) > cfg.limits.MaxMessageLen {
		return fmt.Errorf("%w: message is %d bytes", ErrLimitExceeded, len(message))
	}

	data := []byte(message)
	if cfg.compression != CompNone {
		body, err := compressData(cfg.compression, data)
		if err != nil {
			return err
		}
		framed := make([]byte, 0, msgFrameHeaderLen+len(body))
		framed = append(framed, msgMagic[:]...)
		framed = append(framed, byte(cfg.compression))
		framed = binary.BigEndian.AppendUint32(framed, uint32(len(data)))
		data = append(framed, body...)
	}

	p.AppendChunk(NewChunk(t, data))
	return nil
}
