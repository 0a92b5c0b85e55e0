package compress

import (
	"fmt"

	"github.com/arloliu/bitplane/format"
)

// Compressor compresses one block of a packed bit-plane.
//
// Blocks are at most a few KiB and are compressed independently, so an
// implementation must not carry dictionary or window state from one call
// to the next.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller (except NoOp)
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// The frame header always records the uncompressed size of every block, so
// decompressors receive it and may size their output buffer exactly. The size
// is a hint for allocation: implementations return what the data actually
// decodes to, and the caller compares it against the declared size.
//
// Thread Safety: Decompressor implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data whose declared uncompressed size is rawSize.
	//
	// Error conditions:
	//   - Returns error if data is corrupted or truncated
	//   - Returns error if data was produced by a different algorithm
	Decompress(data []byte, rawSize int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats summarizes the compression of one payload (a plane or a whole frame).
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression, stored blocks included
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size.
//
// Values less than 1.0 indicate successful compression.
// Returns 0.0 if the original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// Ratio returns original size / compressed size, the "N×" figure shown to operators.
//
// Returns 0.0 if nothing was compressed.
func (s CompressionStats) Ratio() float64 {
	if s.CompressedSize == 0 {
		return 0.0
	}

	return float64(s.OriginalSize) / float64(s.CompressedSize)
}

// SpaceSavings returns the space savings as a percentage.
//
// Negative values mean the output is larger than the input.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// Add accumulates other into s. The algorithm of s is kept.
func (s *CompressionStats) Add(other CompressionStats) {
	s.OriginalSize += other.OriginalSize
	s.CompressedSize += other.CompressedSize
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
// Built-in codecs are stateless values and safe to share across goroutines.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
