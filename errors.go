package pngmsg

import "errors"

// Signature / container errors.
var (
	ErrInvalidSignature = errors.New("pngmsg: invalid png signature")
	ErrChunkNotFound    = errors.New("pngmsg: chunk not found")
)

// Chunk type errors.
var (
	ErrInvalidTypeByte    = errors.New("pngmsg: chunk type byte outside A-Z/a-z")
	ErrInvalidTypeLength  = errors.New("pngmsg: chunk type must be 4 characters")
	ErrInvalidReservedBit = errors.New("pngmsg: chunk type reserved bit set")
)

// Chunk record errors.
var (
	ErrTruncatedLength  = errors.New("pngmsg: truncated length field")
	ErrTruncatedType    = errors.New("pngmsg: truncated type field")
	ErrLengthOverflow   = errors.New("pngmsg: declared length exceeds 2^31")
	ErrTruncatedData    = errors.New("pngmsg: data shorter than declared length")
	ErrInvalidCRCLength = errors.New("pngmsg: trailing crc field must be 4 bytes")
	ErrCRCMismatch      = errors.New("pngmsg: crc mismatch")
)

// Message layer errors.
var (
	ErrInvalidText    = errors.New("pngmsg: chunk data is not valid UTF-8")
	ErrInvalidPayload = errors.New("pngmsg: invalid message payload")
	ErrLimitExceeded  = errors.New("pngmsg: limit exceeded")
)
