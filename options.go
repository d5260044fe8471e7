package pngmsg

type encodeConfig struct {
	limits      Limits
	compression Compression
}

type EncodeOption func(*encodeConfig)

// WithCompression selects the codec used for the embedded message payload.
// The default is CompNone, which stores the raw message bytes.
func WithCompression(comp Compression) EncodeOption {
	return func(c *encodeConfig) { c.compression = comp }
}

func WithEncodeLimits(l Limits) EncodeOption {
	return func(c *encodeConfig) { c.limits = l }
}

type decodeConfig struct {
	limits Limits
}

type DecodeOption func(*decodeConfig)

func WithDecodeLimits(l Limits) DecodeOption {
	return func(c *decodeConfig) { c.limits = l }
}
