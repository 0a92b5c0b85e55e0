package section

import (
	"fmt"

	"github.com/arloliu/bitplane/errs"
)

// FrameHeader is the fixed-size header at the start of every frame.
type FrameHeader struct {
	// SampleCount is the number of samples N in the batch, byte offset 4-7.
	SampleCount uint32
	// BlockSize is the maximum uncompressed block size, byte offset 12-15.
	BlockSize uint32
	// ChannelCount is the number of interleaved channels, byte offset 8-9.
	// Zero means a single unnamed stream.
	ChannelCount uint16
	// PlaneCount is always PlaneCount, byte offset 3.
	PlaneCount uint8

	// Flag holds the options and codec fields, byte offset 0-2.
	Flag FrameFlag
}

// NewFrameHeader creates a header for a batch of sampleCount samples with default flags.
func NewFrameHeader(sampleCount int) *FrameHeader {
	return &FrameHeader{
		SampleCount: uint32(sampleCount), //nolint: gosec
		BlockSize:   DefaultBlockSize,
		PlaneCount:  PlaneCount,
		Flag:        NewFrameFlag(),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 16 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 16 bytes, or validation errors
func (h *FrameHeader) Parse(data []byte) error {
	if len(data) != FrameHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options decide the byte order, so they are always little-endian.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Codec = data[2]
	h.PlaneCount = data[3]

	engine := h.Flag.GetEndianEngine()
	h.SampleCount = engine.Uint32(data[4:8])
	h.ChannelCount = engine.Uint16(data[8:10])
	reserved := engine.Uint16(data[10:12])
	h.BlockSize = engine.Uint32(data[12:16])

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	return h.Validate()
}

// Validate checks the header fields that do not depend on the rest of the frame.
func (h *FrameHeader) Validate() error {
	if h.PlaneCount != PlaneCount {
		return fmt.Errorf("%w: plane count %d, want %d", errs.ErrFrameCorrupt, h.PlaneCount, PlaneCount)
	}

	if h.BlockSize < MinBlockSize || h.BlockSize > MaxBlockSize {
		return fmt.Errorf("%w: %d", errs.ErrInvalidBlockSize, h.BlockSize)
	}

	if !FitsBlocks(int(h.SampleCount), int(h.BlockSize)) {
		return fmt.Errorf("%w: %d samples with %d-byte blocks", errs.ErrTooManySamples, h.SampleCount, h.BlockSize)
	}

	if h.Flag.HasChannels() != (h.ChannelCount > 0) {
		return fmt.Errorf("%w: channels flag and channel count %d disagree", errs.ErrInvalidChannelCount, h.ChannelCount)
	}

	if h.ChannelCount > 0 && h.SampleCount%uint32(h.ChannelCount) != 0 {
		return fmt.Errorf("%w: %d samples are not a multiple of %d channels",
			errs.ErrInvalidChannelCount, h.SampleCount, h.ChannelCount)
	}

	return nil
}

// Bytes serializes the FrameHeader into a byte slice.
func (h *FrameHeader) Bytes() []byte {
	return h.Append(make([]byte, 0, FrameHeaderSize))
}

// Append appends the serialized header to buf.
func (h *FrameHeader) Append(buf []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	buf = append(buf, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.Codec, h.PlaneCount)
	buf = engine.AppendUint32(buf, h.SampleCount)
	buf = engine.AppendUint16(buf, h.ChannelCount)
	buf = engine.AppendUint16(buf, 0)
	buf = engine.AppendUint32(buf, h.BlockSize)

	return buf
}

// ChannelSectionSize returns the size of the channel IDs section that follows the header.
func (h *FrameHeader) ChannelSectionSize() int {
	if !h.Flag.HasChannels() {
		return 0
	}

	return int(h.ChannelCount) * ChannelIDSize
}

// ParseFrameHeader parses a FrameHeader from the start of data.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 16 bytes)
//
// Returns:
//   - FrameHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or validation errors
func ParseFrameHeader(data []byte) (FrameHeader, error) {
	if len(data) < FrameHeaderSize {
		return FrameHeader{}, errs.ErrInvalidHeaderSize
	}

	h := FrameHeader{}
	if err := h.Parse(data[:FrameHeaderSize]); err != nil {
		return FrameHeader{}, err
	}

	return h, nil
}

// FitsBlocks reports whether a plane of sampleCount bits splits into at most
// MaxBlockCount blocks of blockSize bytes.
func FitsBlocks(sampleCount int, blockSize int) bool {
	if sampleCount < 0 || blockSize <= 0 {
		return false
	}
	packed := (uint64(sampleCount) + 7) / 8
	blocks := (packed + uint64(blockSize) - 1) / uint64(blockSize)

	return blocks <= MaxBlockCount
}
