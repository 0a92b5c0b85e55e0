package section

import (
	"fmt"

	"github.com/arloliu/bitplane/endian"
	"github.com/arloliu/bitplane/errs"
	"github.com/arloliu/bitplane/format"
)

// BlockEntry describes one block of a plane. It is a fixed size of 6 bytes.
type BlockEntry struct {
	// CompressedSize is the number of payload bytes of the block.
	//
	// Offset: 0, Size: 2 bytes
	CompressedSize uint16

	// UncompressedSize is the number of packed plane bytes the block decodes to.
	//
	// Offset: 2, Size: 2 bytes
	UncompressedSize uint16

	// Flags holds format.BlockStored when the payload is the raw bytes.
	//
	// Offset: 4, Size: 1 byte (byte 5 is reserved)
	Flags format.BlockFlag
}

// NewBlockEntry creates a block entry.
func NewBlockEntry(compressedSize, uncompressedSize int, stored bool) BlockEntry {
	entry := BlockEntry{
		CompressedSize:   uint16(compressedSize),   //nolint: gosec
		UncompressedSize: uint16(uncompressedSize), //nolint: gosec
	}
	if stored {
		entry.Flags = format.BlockStored
	}

	return entry
}

// IsStored returns whether the block payload is uncompressed.
func (e BlockEntry) IsStored() bool {
	return e.Flags.IsStored()
}

// Append appends the serialized entry to buf.
func (e BlockEntry) Append(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint16(buf, e.CompressedSize)
	buf = engine.AppendUint16(buf, e.UncompressedSize)

	return append(buf, byte(e.Flags), 0)
}

// Parse parses the entry from a byte slice of exactly BlockEntrySize bytes.
func (e *BlockEntry) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) != BlockEntrySize {
		return errs.ErrInvalidHeaderSize
	}

	e.CompressedSize = engine.Uint16(data[0:2])
	e.UncompressedSize = engine.Uint16(data[2:4])
	e.Flags = format.BlockFlag(data[4])

	if !e.Flags.IsValid() || data[5] != 0 {
		return fmt.Errorf("%w: block flags 0x%02X 0x%02X", errs.ErrInvalidHeaderFlags, data[4], data[5])
	}

	return nil
}
