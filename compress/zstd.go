package compress

// ZstdCompressor is the high-ratio codec.
//
// It is the better choice when the link is slow and the sender has CPU to spare:
//   - Compression: several times slower than LZ4
//   - Ratio: noticeably better on mantissa planes, which are close to random
//     in the low bits but strongly biased in the high bits
//   - Memory usage: encoders and decoders are pooled and reused
//
// The pure Go implementation (klauspost/compress) is used by default. Building
// with cgo and the gozstd tag switches to the libzstd binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(block)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
