package section

import (
	"fmt"

	"github.com/arloliu/bitplane/endian"
	"github.com/arloliu/bitplane/errs"
	"github.com/arloliu/bitplane/format"
)

// PlaneHeader describes one compressed bit-plane: which bit it carries, how many
// bits it holds, and how its packed bytes were split into blocks.
type PlaneHeader struct {
	// Blocks lists the blocks in payload order.
	Blocks []BlockEntry
	// BitCount is the number of bits in the plane (the frame's sample count).
	BitCount uint32
	// Index is the bit position of the plane, 0 = least significant.
	Index uint8
	// Codec is the compression applied to the non-stored blocks.
	Codec format.CompressionType
}

// PackedSize returns the declared size of the packed plane: the sum of the blocks'
// uncompressed sizes.
func (h *PlaneHeader) PackedSize() int {
	n := 0
	for _, b := range h.Blocks {
		n += int(b.UncompressedSize)
	}

	return n
}

// CompressedSize returns the total payload size of the plane.
func (h *PlaneHeader) CompressedSize() int {
	n := 0
	for _, b := range h.Blocks {
		n += int(b.CompressedSize)
	}

	return n
}

// StoredBlocks returns the number of blocks kept uncompressed.
func (h *PlaneHeader) StoredBlocks() int {
	n := 0
	for _, b := range h.Blocks {
		if b.IsStored() {
			n++
		}
	}

	return n
}

// EncodedSize returns the serialized size of the header including block entries.
func (h *PlaneHeader) EncodedSize() int {
	return PlaneHeaderSize + len(h.Blocks)*BlockEntrySize
}

// Append appends the serialized header and its block entries to buf.
func (h *PlaneHeader) Append(buf []byte, engine endian.EndianEngine) []byte {
	buf = append(buf, h.Index, uint8(h.Codec))
	buf = engine.AppendUint16(buf, uint16(len(h.Blocks))) //nolint: gosec
	buf = engine.AppendUint32(buf, h.BitCount)
	for _, b := range h.Blocks {
		buf = b.Append(buf, engine)
	}

	return buf
}

// Validate checks the block layout against the frame's block size:
// every block holds between 1 and blockSize bytes, only the last block may be
// shorter than blockSize, and stored blocks have equal compressed and
// uncompressed sizes.
//
// It does not compare PackedSize with BitCount; the block decompressor reports
// that as errs.ErrLengthMismatch.
func (h *PlaneHeader) Validate(blockSize int) error {
	if int(h.Index) >= PlaneCount {
		return fmt.Errorf("%w: %d", errs.ErrInvalidPlaneIndex, h.Index)
	}
	if len(h.Blocks) > MaxBlockCount {
		return fmt.Errorf("%w: plane %d has %d blocks", errs.ErrFrameCorrupt, h.Index, len(h.Blocks))
	}

	last := len(h.Blocks) - 1
	for i, b := range h.Blocks {
		size := int(b.UncompressedSize)
		switch {
		case size == 0 || size > blockSize:
			return fmt.Errorf("%w: plane %d block %d declares %d bytes, block size %d",
				errs.ErrFrameCorrupt, h.Index, i, size, blockSize)
		case i < last && size != blockSize:
			return fmt.Errorf("%w: plane %d block %d is short (%d bytes) but not last",
				errs.ErrFrameCorrupt, h.Index, i, size)
		case b.IsStored() && b.CompressedSize != b.UncompressedSize:
			return fmt.Errorf("%w: plane %d stored block %d has %d payload bytes for %d raw bytes",
				errs.ErrLengthMismatch, h.Index, i, b.CompressedSize, b.UncompressedSize)
		case b.CompressedSize == 0:
			return fmt.Errorf("%w: plane %d block %d has an empty payload", errs.ErrFrameCorrupt, h.Index, i)
		}
	}

	return nil
}

// ParsePlaneHeader parses a plane header and its block entries from the start of data.
//
// Returns:
//   - PlaneHeader: Parsed header
//   - int: Number of bytes consumed
//   - error: ErrInvalidHeaderSize if data is too short, or flag errors
func ParsePlaneHeader(data []byte, engine endian.EndianEngine) (PlaneHeader, int, error) {
	if len(data) < PlaneHeaderSize {
		return PlaneHeader{}, 0, errs.ErrInvalidHeaderSize
	}

	h := PlaneHeader{
		Index:    data[0],
		Codec:    format.CompressionType(data[1]),
		BitCount: engine.Uint32(data[4:8]),
	}
	blockCount := int(engine.Uint16(data[2:4]))

	end := PlaneHeaderSize + blockCount*BlockEntrySize
	if len(data) < end {
		return PlaneHeader{}, 0, fmt.Errorf("%w: plane %d declares %d blocks", errs.ErrInvalidHeaderSize, h.Index, blockCount)
	}

	h.Blocks = make([]BlockEntry, blockCount)
	for i := range h.Blocks {
		off := PlaneHeaderSize + i*BlockEntrySize
		if err := h.Blocks[i].Parse(data[off:off+BlockEntrySize], engine); err != nil {
			return PlaneHeader{}, 0, fmt.Errorf("plane %d block %d: %w", h.Index, i, err)
		}
	}

	return h, end, nil
}
