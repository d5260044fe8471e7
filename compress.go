package pngmsg

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the codec applied to an embedded message payload.
// The value doubles as the frame tag byte on the wire.
type Compression uint8

const (
	CompNone   Compression = 0x0
	CompZstd   Compression = 0x1
	CompLZ4    Compression = 0x2
	CompBrotli Compression = 0x3
)

func (c Compression) String() string {
	switch c {
	case CompNone:
		return "none"
	case CompZstd:
		return "zstd"
	case CompLZ4:
		return "lz4"
	case CompBrotli:
		return "brotli"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseCompression maps a codec name to its Compression value.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none", "":
		return CompNone, nil
	case "zstd":
		return CompZstd, nil
	case "lz4":
		return CompLZ4, nil
	case "brotli":
		return CompBrotli, nil
	default:
		return 0, fmt.Errorf("%w: unknown compression %q", ErrInvalidPayload, name)
	}
}

// compressData compresses in with the given codec. CompNone passes the
// input through unchanged.
func compressData(comp Compression, in []byte) ([]byte, error) {
	switch comp {
	case CompNone:
		return in, nil
	case CompZstd:
		return zstdCompress(in)
	case CompLZ4:
		return lz4Compress(in)
	case CompBrotli:
		return brotliCompress(in)
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidPayload, comp)
	}
}

// decompressData decompresses in, which must expand to exactly expected
// bytes. expected has already been checked against the caller's limit, so a
// codec producing more than expected bytes means a corrupt or lying frame.
func decompressData(comp Compression, in []byte, expected uint64) ([]byte, error) {
	var out []byte
	var err error
	switch comp {
	case CompZstd:
		out, err = zstdDecompress(in, expected)
	case CompLZ4:
		out, err = lz4Decompress(in, expected)
	case CompBrotli:
		out, err = brotliDecompress(in, expected)
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidPayload, comp)
	}
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) != expected {
		return nil, fmt.Errorf("%w: decompressed length %d != expected %d", ErrInvalidPayload, len(out), expected)
	}
	return out, nil
}

// zstdCompress compresses in using the Zstandard algorithm.
func zstdCompress(in []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(in, nil), nil
}

// zstdDecompress decompresses Zstandard-compressed data, rejecting output
// beyond expected bytes.
func zstdDecompress(in []byte, expected uint64) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	out, err := dec.DecodeAll(in, nil)
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) > expected {
		return nil, fmt.Errorf("%w: zstd expanded beyond expected size", ErrInvalidPayload)
	}
	return out, nil
}

// lz4Compress compresses in using the LZ4 algorithm.
func lz4Compress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(in); err != nil {
		_ = zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lz4Decompress decompresses LZ4-compressed data. A LimitReader caps the
// expansion at expected+1 so bombs fail instead of allocating.
func lz4Decompress(in []byte, expected uint64) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(in))
	b, err := io.ReadAll(io.LimitReader(r, int64(expected)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(b)) > expected {
		return nil, fmt.Errorf("%w: lz4 expanded beyond expected size", ErrInvalidPayload)
	}
	return b, nil
}

// brotliCompress compresses in using the Brotli algorithm.
func brotliCompress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	bw := brotli.NewWriter(&buf)
	if _, err := bw.Write(in); err != nil {
		_ = bw.Close()
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// brotliDecompress decompresses Brotli-compressed data under the same
// expansion cap as lz4Decompress.
func brotliDecompress(in []byte, expected uint64) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(in))
	b, err := io.ReadAll(io.LimitReader(r, int64(expected)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(b)) > expected {
		return nil, fmt.Errorf("%w: brotli expanded beyond expected size", ErrInvalidPayload)
	}
	return b, nil
}
