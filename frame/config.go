package frame

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/arloliu/bitplane/errs"
	"github.com/arloliu/bitplane/format"
	"github.com/arloliu/bitplane/internal/collision"
	"github.com/arloliu/bitplane/internal/options"
	"github.com/arloliu/bitplane/section"
)

// EncoderConfig holds the settings of an Encoder. It is built once by
// NewEncoder and never mutated afterwards.
type EncoderConfig struct {
	codec        format.CompressionType
	blockSize    int
	concurrency  int
	bigEndian    bool
	channelNames []string
	channelIDs   []uint64
	logger       *slog.Logger
}

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		codec:       format.CodecFast,
		blockSize:   section.DefaultBlockSize,
		concurrency: defaultConcurrency(),
	}
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithCodec selects the block codec. format.CodecFast (LZ4) is the default.
func WithCodec(codec format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if !codec.IsValid() {
			return fmt.Errorf("%w: %v", errs.ErrInvalidCompression, codec)
		}
		c.codec = codec

		return nil
	})
}

// WithBlockSize sets the maximum uncompressed block size in bytes.
// It must be within [section.MinBlockSize, section.MaxBlockSize].
func WithBlockSize(size int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if size < section.MinBlockSize || size > section.MaxBlockSize {
			return fmt.Errorf("%w: %d not in [%d, %d]",
				errs.ErrInvalidBlockSize, size, section.MinBlockSize, section.MaxBlockSize)
		}
		c.blockSize = size

		return nil
	})
}

// WithConcurrency limits the number of planes compressed in parallel.
// Values below 1 mean one worker; values above 16 have no further effect.
func WithConcurrency(n int) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.concurrency = clampConcurrency(n)
	})
}

// WithLittleEndian writes frames in little-endian byte order. It is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.bigEndian = false
	})
}

// WithBigEndian writes frames in big-endian byte order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.bigEndian = true
	})
}

// WithChannels declares the sensor channels interleaved in every batch.
// Each name is stored in the frame as its xxHash64 ID. Names must be unique
// and non-empty.
func WithChannels(names ...string) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		tracker := collision.NewTracker(len(names))
		for _, name := range names {
			if _, err := tracker.Track(name); err != nil {
				return err
			}
		}

		c.channelNames = tracker.Names()
		c.channelIDs = tracker.IDs()

		return nil
	})
}

// WithLogger sets the logger receiving debug records about encoded frames.
// Encoders are silent without one.
func WithLogger(logger *slog.Logger) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.logger = logger
	})
}

// DecoderConfig holds the settings of a Decoder.
type DecoderConfig struct {
	concurrency int
	logger      *slog.Logger
}

func newDecoderConfig() *DecoderConfig {
	return &DecoderConfig{concurrency: defaultConcurrency()}
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithDecoderConcurrency limits the number of planes decompressed in parallel.
func WithDecoderConcurrency(n int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.concurrency = clampConcurrency(n)
	})
}

// WithDecoderLogger sets the logger receiving debug records about decoded frames.
func WithDecoderLogger(logger *slog.Logger) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.logger = logger
	})
}

func defaultConcurrency() int {
	return clampConcurrency(runtime.GOMAXPROCS(0))
}

func clampConcurrency(n int) int {
	return max(1, min(n, section.PlaneCount))
}
