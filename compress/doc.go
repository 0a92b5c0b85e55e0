// Package compress provides the block codecs used to shrink packed bit-planes.
//
// Each bit-plane of a frame is cut into blocks of at most BlockSize bytes and every
// block goes through one Codec independently, so any block can be decompressed
// without its neighbors.
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte, rawSize int) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **LZ4** (format.CompressionLZ4, format.CodecFast)
//
// Raw LZ4 blocks without the LZ4 frame wrapper. The fastest option and the default.
// Sign and exponent planes of slowly varying sensor data are long runs of equal
// bytes and compress extremely well even with LZ4.
//
// **Zstandard** (format.CompressionZstd, format.CodecHighRatio)
//
// Best ratio, moderate speed. Pure Go by default; build with cgo and the gozstd
// tag to use libzstd instead.
//
// **S2** (format.CompressionS2)
//
// Snappy-compatible, between LZ4 and Zstd.
//
// **NoOp** (format.CompressionNone)
//
// Passes data through. Every block ends up stored.
//
// # Incompressible blocks
//
// Low mantissa planes are close to random and often grow under compression.
// Codecs do not handle this themselves: the block compressor keeps the raw
// bytes and sets format.BlockStored whenever the codec fails or its output is
// not smaller than the input.
//
// # Thread Safety
//
// All built-in codecs are stateless values backed by sync.Pool'd encoders and
// are safe for concurrent use by many plane workers.
package compress
