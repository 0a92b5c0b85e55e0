// Package bitplane is a lossless codec for batches of numeric sensor samples.
//
// A batch of N samples is narrowed to IEEE 754 half precision, split into its
// 16 bit-planes, densely packed and compressed in independent fixed-size
// blocks. The result is a self-describing frame that a receiver turns back
// into exactly the same half-precision values.
//
// # Core Features
//
//   - Bit-exact round trip for every value representable in half precision
//   - Per-plane compression with a stored fallback, so incompressible planes never grow
//   - Selectable block codec: LZ4 (fast, default), Zstd (high ratio), S2, or none
//   - Up to 16-way parallel plane processing with no shared mutable state
//   - Optional multi-sensor channels identified by 64-bit xxHash64 IDs
//   - Per-plane compression statistics on both sides of the link
//
// # Basic Usage
//
// Encoding a batch:
//
//	import "github.com/arloliu/bitplane"
//
//	data, err := bitplane.Encode([]float64{23.5, 45.0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decoding a frame:
//
//	samples, stats, err := bitplane.Decode(data)
//	fmt.Println(samples, stats.Ratio())
//
// # Package Structure
//
// This package provides top-level wrappers around the frame package for the
// most common use cases. For encoder options, channels and statistics use the
// frame package directly.
package bitplane

import (
	"github.com/arloliu/bitplane/format"
	"github.com/arloliu/bitplane/frame"
	"github.com/arloliu/bitplane/internal/hash"
)

// NewEncoder creates a frame encoder with custom options.
//
// Available options:
//   - frame.WithCodec(format.CodecFast|CodecHighRatio|CompressionS2|CompressionNone)
//   - frame.WithBlockSize(64..32768)
//   - frame.WithConcurrency(n)
//   - frame.WithChannels(names...)
//   - frame.WithLittleEndian() / frame.WithBigEndian()
//   - frame.WithLogger(logger)
//
// Example:
//
//	encoder, err := bitplane.NewEncoder(
//	    frame.WithCodec(format.CodecHighRatio),
//	    frame.WithChannels("temperature", "humidity"),
//	)
func NewEncoder(opts ...frame.EncoderOption) (*frame.Encoder, error) {
	return frame.NewEncoder(opts...)
}

// NewDecoder creates a frame decoder with custom options.
func NewDecoder(opts ...frame.DecoderOption) (*frame.Decoder, error) {
	return frame.NewDecoder(opts...)
}

// Encode encodes samples into a serialized frame with the given codec options.
// With no options the fast codec and 4096-byte blocks are used.
func Encode(samples []float64, opts ...frame.EncoderOption) ([]byte, error) {
	encoder, err := frame.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	f, err := encoder.Encode(samples)
	if err != nil {
		return nil, err
	}

	return f.Bytes(), nil
}

// EncodeHighRatio encodes samples with the high-ratio codec.
func EncodeHighRatio(samples []float64) ([]byte, error) {
	return Encode(samples, frame.WithCodec(format.CodecHighRatio))
}

// Decode reconstructs the samples of a serialized frame and reports its
// per-plane compression statistics.
func Decode(data []byte) ([]float64, frame.Stats, error) {
	batch, stats, err := frame.Decode(data)
	if err != nil {
		return nil, frame.Stats{}, err
	}

	return batch.Samples, stats, nil
}

// ChannelID computes the 64-bit channel identifier of a sensor name, as stored
// in frames encoded with frame.WithChannels.
func ChannelID(name string) uint64 {
	return hash.ChannelID(name)
}
