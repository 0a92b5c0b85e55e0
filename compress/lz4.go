package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// errLZ4Incompressible is returned when the lz4 block compressor reports no output.
var errLZ4Incompressible = errors.New("lz4: block is incompressible")

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor keeps a hash table that is costly to allocate per block.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor is the fast codec. It emits raw LZ4 blocks with no frame header:
// the uncompressed size lives in the block entry instead.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data as a single LZ4 block.
//
// Uses a pooled lz4.Compressor for better performance.
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error, including incompressible input
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, errLZ4Incompressible
	}

	return dst[:n], nil
}

// Decompress decompresses a single LZ4 block into a buffer of rawSize bytes.
//
// An LZ4 block does not record its own decoded length, so rawSize must be at
// least the real decoded length; a block that decodes to more than rawSize
// bytes fails with lz4.ErrInvalidSourceShortBuffer.
func (c LZ4Compressor) Decompress(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if rawSize <= 0 {
		return nil, lz4.ErrInvalidSourceShortBuffer
	}

	buf := make([]byte, rawSize)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}
