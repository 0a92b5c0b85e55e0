// Package errs defines the sentinel errors returned by the bitplane packages.
//
// Errors are wrapped with context (plane index, block index) using fmt.Errorf
// and %w, so callers should match them with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when plane lengths disagree, or when a decompressed
	// size disagrees with the size declared in a header.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrCorruptBlock is returned when a block fails to decompress.
	ErrCorruptBlock = errors.New("corrupt block")

	// ErrFrameCorrupt is returned for structural inconsistencies in a frame,
	// e.g. wrong plane count or a bit count that differs from the sample count.
	ErrFrameCorrupt = errors.New("frame corrupt")
)

// Header and configuration errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid header size")
	ErrInvalidHeaderFlags  = errors.New("invalid header flags")
	ErrInvalidMagicNumber  = errors.New("invalid magic number")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrInvalidBlockSize    = errors.New("invalid block size")
	ErrInvalidChannelCount = errors.New("invalid channel count")
	ErrEmptyBatch          = errors.New("batch must contain at least one sample")
	ErrTooManySamples      = errors.New("too many samples in batch")
	ErrInvalidPlaneIndex   = errors.New("invalid plane index")
)

// Channel registration errors.
var (
	ErrInvalidChannelName = errors.New("invalid channel name")
	ErrDuplicateChannel   = errors.New("duplicate channel name")
	ErrChannelIDCollision = errors.New("channel ID collision")
)

// Payload framing errors. Both match ErrLengthMismatch: they mean the block sizes
// declared in the plane headers disagree with the payload that follows them.
var (
	ErrPayloadTruncated     = fmt.Errorf("payload truncated: %w", ErrLengthMismatch)
	ErrTrailingPayloadBytes = fmt.Errorf("trailing bytes after payload: %w", ErrLengthMismatch)
)
