package pngmsg

// Limits bounds the message layer against oversized inputs and
// decompression bombs. The chunk codec itself enforces only the wire
// format's own 2^31 length bound; these limits apply to messages.
type Limits struct {
	MaxMessageLen          uint64 // raw message bytes accepted by EncodeMessage
	MaxDecompressedMessage uint64 // bytes a framed payload may expand to
}

func defaultLimits() Limits {
	return Limits{
		MaxMessageLen:          16 << 20, // 16 MiB
		MaxDecompressedMessage: 64 << 20, // 64 MiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxMessageLen == 0 {
		l.MaxMessageLen = d.MaxMessageLen
	}
	if l.MaxDecompressedMessage == 0 {
		l.MaxDecompressedMessage = d.MaxDecompressedMessage
	}
	return l
}
