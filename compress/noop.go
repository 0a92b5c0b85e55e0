package compress

// NoOpCompressor passes blocks through unchanged.
//
// Useful for:
//   - Measuring frame overhead without compression
//   - Links where CPU on the sender is the bottleneck
//
// Blocks written with this codec are flagged as stored by the block compressor,
// since the output is never smaller than the input.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without copying.
func (c NoOpCompressor) Decompress(data []byte, _ int) ([]byte, error) {
	return data, nil
}
