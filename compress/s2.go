package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor is a Snappy-compatible codec. It uses the "better" encoder,
// which pays off on sparse high planes at little cost on noisy low ones.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decodes an S2 block. The length embedded in the block must
// equal rawSize when rawSize is positive.
func (c S2Compressor) Decompress(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if rawSize > 0 && n != rawSize {
		return nil, fmt.Errorf("s2: decoded length %d, want %d", n, rawSize)
	}

	return s2.Decode(make([]byte, n), data)
}
