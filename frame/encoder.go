package frame

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/bitplane/errs"
	"github.com/arloliu/bitplane/internal/bitpack"
	"github.com/arloliu/bitplane/internal/block"
	"github.com/arloliu/bitplane/internal/half"
	"github.com/arloliu/bitplane/internal/options"
	"github.com/arloliu/bitplane/internal/pool"
	"github.com/arloliu/bitplane/section"
)

// Encoder turns batches of samples into frames.
//
// An Encoder is immutable after creation and safe for concurrent use. Each call
// fans the 16 bit-planes out to at most the configured number of workers; the
// workers share the half-precision batch read-only.
type Encoder struct {
	cfg        *EncoderConfig
	compressor *block.Compressor
	logger     *slog.Logger
}

// NewEncoder creates an Encoder.
//
// Parameters:
//   - opts: Optional configuration (codec, block size, byte order, channels, etc.)
//
// Returns:
//   - *Encoder: New encoder instance
//   - error: Option validation error
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	compressor, err := block.NewCompressor(cfg.codec, cfg.blockSize)
	if err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Encoder{cfg: cfg, compressor: compressor, logger: logger}, nil
}

// ChannelNames returns the configured channel names in frame order.
func (e *Encoder) ChannelNames() []string {
	return append([]string(nil), e.cfg.channelNames...)
}

// Encode narrows samples to half precision and encodes them into a frame.
// Values that are not representable in half precision are rounded to nearest even.
//
// With channels configured, samples must already be interleaved row-major and
// their count must be a multiple of the channel count.
func (e *Encoder) Encode(samples []float64) (*Frame, error) {
	if len(samples) == 0 {
		return nil, errs.ErrEmptyBatch
	}

	patterns, cleanup := pool.GetUint16Slice(len(samples))
	defer cleanup()

	for i, s := range samples {
		patterns[i] = uint16(half.FromFloat64(s))
	}

	return e.EncodePatterns(patterns)
}

// EncodeChannels interleaves one sample slice per configured channel and encodes
// the result. All channels must hold the same number of samples.
func (e *Encoder) EncodeChannels(channels [][]float64) (*Frame, error) {
	count := len(e.cfg.channelIDs)
	if count == 0 || len(channels) != count {
		return nil, fmt.Errorf("%w: got %d channels, encoder has %d", errs.ErrInvalidChannelCount, len(channels), count)
	}

	rows := len(channels[0])
	for c, ch := range channels {
		if len(ch) != rows {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				errs.ErrLengthMismatch, c, len(ch), rows)
		}
	}
	if rows == 0 {
		return nil, errs.ErrEmptyBatch
	}

	patterns, cleanup := pool.GetUint16Slice(rows * count)
	defer cleanup()

	for c, ch := range channels {
		for i, s := range ch {
			patterns[i*count+c] = uint16(half.FromFloat64(s))
		}
	}

	return e.EncodePatterns(patterns)
}

// EncodePatterns encodes a batch of half-precision bit patterns. The frame does
// not retain patterns.
func (e *Encoder) EncodePatterns(patterns []uint16) (*Frame, error) {
	n := len(patterns)
	if n == 0 {
		return nil, errs.ErrEmptyBatch
	}
	if uint64(n) > math.MaxUint32 || !section.FitsBlocks(n, e.cfg.blockSize) {
		return nil, fmt.Errorf("%w: %d samples with %d-byte blocks", errs.ErrTooManySamples, n, e.cfg.blockSize)
	}
	if c := len(e.cfg.channelIDs); c > 0 && n%c != 0 {
		return nil, fmt.Errorf("%w: %d samples are not a multiple of %d channels", errs.ErrInvalidChannelCount, n, c)
	}

	f := &Frame{Header: e.newHeader(n)}
	if len(e.cfg.channelIDs) > 0 {
		f.ChannelIDs = append([]uint64(nil), e.cfg.channelIDs...)
	}

	var planeErrs [section.PlaneCount]error
	var g errgroup.Group
	g.SetLimit(e.cfg.concurrency)
	for p := range section.PlaneCount {
		g.Go(func() error {
			packed := bitpack.PackPlane(patterns, p)
			f.Planes[p], planeErrs[p] = e.compressor.CompressPlane(p, packed, n)

			return nil
		})
	}
	_ = g.Wait()

	// report the lowest failing plane so errors do not depend on scheduling
	for p, err := range planeErrs {
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", p, err)
		}
	}

	e.logFrame(f)

	return f, nil
}

func (e *Encoder) newHeader(n int) section.FrameHeader {
	header := section.NewFrameHeader(n)
	header.BlockSize = uint32(e.cfg.blockSize) //nolint: gosec
	header.Flag.SetCompression(e.cfg.codec)
	if e.cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	if c := len(e.cfg.channelIDs); c > 0 {
		header.Flag.SetHasChannels(true)
		header.ChannelCount = uint16(c) //nolint: gosec
	}

	return *header
}

func (e *Encoder) logFrame(f *Frame) {
	if !e.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	stats := f.Stats()
	for _, ps := range stats.Planes {
		if ps.StoredBlocks > 0 {
			e.logger.Debug("stored block fallback",
				slog.Int("plane", ps.Index),
				slog.Int("stored", ps.StoredBlocks),
				slog.Int("blocks", ps.Blocks))
		}
	}
	e.logger.Debug("frame encoded",
		slog.Int("samples", stats.SampleCount),
		slog.String("codec", stats.Codec.String()),
		slog.Int("payload_bytes", stats.CompressedSize()),
		slog.Float64("ratio", stats.Ratio()))
}
