// Package block splits packed bit-planes into fixed-size blocks and compresses
// each block independently.
//
// A block whose compression fails, or does not shrink it, is kept as raw bytes
// and flagged format.BlockStored, so the compressed plane is never lossy and
// never larger than the packed plane plus its block entries.
package block

import (
	"fmt"

	"github.com/arloliu/bitplane/compress"
	"github.com/arloliu/bitplane/errs"
	"github.com/arloliu/bitplane/format"
	"github.com/arloliu/bitplane/internal/bitpack"
	"github.com/arloliu/bitplane/section"
)

// Plane is one compressed bit-plane: its header and its block payloads in order.
type Plane struct {
	Header section.PlaneHeader
	Blocks [][]byte
}

// Stats returns the compression statistics of the plane.
func (p *Plane) Stats() compress.CompressionStats {
	return compress.CompressionStats{
		Algorithm:      p.Header.Codec,
		OriginalSize:   int64(p.Header.PackedSize()),
		CompressedSize: int64(p.Header.CompressedSize()),
	}
}

// Split cuts packed into consecutive chunks of blockSize bytes; the last chunk
// may be shorter. Chunks share memory with packed. Empty input yields no chunks.
func Split(packed []byte, blockSize int) [][]byte {
	if len(packed) == 0 {
		return nil
	}

	chunks := make([][]byte, 0, (len(packed)+blockSize-1)/blockSize)
	for off := 0; off < len(packed); off += blockSize {
		end := min(off+blockSize, len(packed))
		chunks = append(chunks, packed[off:end:end])
	}

	return chunks
}

// Compressor compresses packed planes with one codec and block size.
// It holds no mutable state and is safe for concurrent use by plane workers.
type Compressor struct {
	codec     compress.Codec
	codecType format.CompressionType
	blockSize int
}

// NewCompressor creates a Compressor.
//
// Returns:
//   - *Compressor: compressor for the given codec and block size
//   - error: errs.ErrInvalidCompression or errs.ErrInvalidBlockSize
func NewCompressor(codecType format.CompressionType, blockSize int) (*Compressor, error) {
	codec, err := compress.GetCodec(codecType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCompression, err)
	}
	if blockSize < section.MinBlockSize || blockSize > section.MaxBlockSize {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidBlockSize, blockSize)
	}

	return &Compressor{codec: codec, codecType: codecType, blockSize: blockSize}, nil
}

// Codec returns the compression type of the compressor.
func (c *Compressor) Codec() format.CompressionType {
	return c.codecType
}

// BlockSize returns the maximum uncompressed block size.
func (c *Compressor) BlockSize() int {
	return c.blockSize
}

// CompressPlane compresses the packed bytes of plane index, which hold bitCount bits.
//
// Returns errs.ErrLengthMismatch if len(packed) != ceil(bitCount/8).
func (c *Compressor) CompressPlane(index int, packed []byte, bitCount int) (Plane, error) {
	if index < 0 || index >= section.PlaneCount {
		return Plane{}, fmt.Errorf("%w: %d", errs.ErrInvalidPlaneIndex, index)
	}
	if want := bitpack.PackedLen(bitCount); len(packed) != want {
		return Plane{}, fmt.Errorf("%w: plane %d has %d packed bytes for %d bits, want %d",
			errs.ErrLengthMismatch, index, len(packed), bitCount, want)
	}
	if !section.FitsBlocks(bitCount, c.blockSize) {
		return Plane{}, fmt.Errorf("%w: %d bits with %d-byte blocks", errs.ErrTooManySamples, bitCount, c.blockSize)
	}

	chunks := Split(packed, c.blockSize)
	plane := Plane{
		Header: section.PlaneHeader{
			Index:    uint8(index), //nolint: gosec
			Codec:    c.codecType,
			BitCount: uint32(bitCount), //nolint: gosec
			Blocks:   make([]section.BlockEntry, len(chunks)),
		},
		Blocks: make([][]byte, len(chunks)),
	}

	for i, chunk := range chunks {
		data, stored := c.compressBlock(chunk)
		plane.Blocks[i] = data
		plane.Header.Blocks[i] = section.NewBlockEntry(len(data), len(chunk), stored)
	}

	return plane, nil
}

// compressBlock returns the payload of one block and whether it is stored raw.
func (c *Compressor) compressBlock(chunk []byte) ([]byte, bool) {
	compressed, err := c.codec.Compress(chunk)
	if err != nil || len(compressed) == 0 || len(compressed) >= len(chunk) {
		return chunk, true
	}

	return compressed, false
}

// DecompressPlane rebuilds the packed bytes of a plane from its header and block payloads.
//
// Blocks are decompressed and concatenated in order. The result is exactly
// ceil(BitCount/8) bytes long.
//
// Returns:
//   - errs.ErrFrameCorrupt if the block count or codec is inconsistent with the header
//   - errs.ErrLengthMismatch if a payload size or decoded size disagrees with the header
//   - errs.ErrCorruptBlock if a block fails to decompress
func DecompressPlane(header section.PlaneHeader, blocks [][]byte) ([]byte, error) {
	if len(blocks) != len(header.Blocks) {
		return nil, fmt.Errorf("%w: plane %d has %d payloads for %d blocks",
			errs.ErrFrameCorrupt, header.Index, len(blocks), len(header.Blocks))
	}

	want := bitpack.PackedLen(int(header.BitCount))
	if got := header.PackedSize(); got != want {
		return nil, fmt.Errorf("%w: plane %d blocks declare %d bytes, %d bits need %d",
			errs.ErrLengthMismatch, header.Index, got, header.BitCount, want)
	}

	var codec compress.Codec
	out := make([]byte, 0, want)
	for i, entry := range header.Blocks {
		data := blocks[i]
		if len(data) != int(entry.CompressedSize) {
			return nil, fmt.Errorf("%w: plane %d block %d has %d bytes, header declares %d",
				errs.ErrLengthMismatch, header.Index, i, len(data), entry.CompressedSize)
		}

		if entry.IsStored() {
			if len(data) != int(entry.UncompressedSize) {
				return nil, fmt.Errorf("%w: plane %d stored block %d has %d bytes, header declares %d",
					errs.ErrLengthMismatch, header.Index, i, len(data), entry.UncompressedSize)
			}
			out = append(out, data...)

			continue
		}

		if codec == nil {
			var err error
			if codec, err = compress.GetCodec(header.Codec); err != nil {
				return nil, fmt.Errorf("%w: plane %d: %w", errs.ErrFrameCorrupt, header.Index, err)
			}
		}

		raw, err := codec.Decompress(data, int(entry.UncompressedSize))
		if err != nil {
			return nil, fmt.Errorf("%w: plane %d block %d: %w", errs.ErrCorruptBlock, header.Index, i, err)
		}
		if len(raw) != int(entry.UncompressedSize) {
			return nil, fmt.Errorf("%w: plane %d block %d decoded to %d bytes, header declares %d",
				errs.ErrLengthMismatch, header.Index, i, len(raw), entry.UncompressedSize)
		}
		out = append(out, raw...)
	}

	return out, nil
}
