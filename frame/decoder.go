package frame

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/bitplane/errs"
	"github.com/arloliu/bitplane/internal/bitpack"
	"github.com/arloliu/bitplane/internal/block"
	"github.com/arloliu/bitplane/internal/half"
	"github.com/arloliu/bitplane/internal/options"
	"github.com/arloliu/bitplane/internal/planes"
	"github.com/arloliu/bitplane/section"
)

// Decoder reconstructs batches from frames. It is safe for concurrent use.
type Decoder struct {
	cfg    *DecoderConfig
	logger *slog.Logger
}

// NewDecoder creates a Decoder.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	cfg := newDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Decoder{cfg: cfg, logger: logger}, nil
}

var defaultDecoder = &Decoder{cfg: newDecoderConfig(), logger: slog.New(slog.DiscardHandler)}

// Decode parses and reassembles one serialized frame.
//
// Returns:
//   - Batch: Reconstructed samples in original order
//   - Stats: Per-plane compression statistics of the frame
//   - error: errs.ErrFrameCorrupt, errs.ErrLengthMismatch or errs.ErrCorruptBlock
func (d *Decoder) Decode(data []byte) (Batch, Stats, error) {
	f, err := Parse(data)
	if err != nil {
		return Batch{}, Stats{}, err
	}

	batch, err := d.Reassemble(f)
	if err != nil {
		return Batch{}, Stats{}, err
	}

	stats := f.Stats()
	if d.logger.Enabled(context.Background(), slog.LevelDebug) {
		d.logger.Debug("frame decoded",
			slog.Int("samples", stats.SampleCount),
			slog.String("codec", stats.Codec.String()),
			slog.Int("frame_bytes", len(data)),
			slog.Float64("ratio", stats.Ratio()))
	}

	return batch, stats, nil
}

// Decode parses and reassembles data with the default decoder settings.
func Decode(data []byte) (Batch, Stats, error) {
	return defaultDecoder.Decode(data)
}

// Reassemble rebuilds the batch of f with the default decoder settings.
func Reassemble(f *Frame) (Batch, error) {
	return defaultDecoder.Reassemble(f)
}

// Reassemble decompresses and unpacks every plane of f, recombines the 16
// planes into half-precision patterns and widens them to float64.
//
// No partial batch is returned on error.
func (d *Decoder) Reassemble(f *Frame) (Batch, error) {
	if err := d.checkFrame(f); err != nil {
		return Batch{}, err
	}

	n := f.SampleCount()
	var bits [section.PlaneCount]planes.BitSequence
	var planeErrs [section.PlaneCount]error

	var g errgroup.Group
	g.SetLimit(d.cfg.concurrency)
	for p := range section.PlaneCount {
		g.Go(func() error {
			packed, err := block.DecompressPlane(f.Planes[p].Header, f.Planes[p].Blocks)
			if err != nil {
				planeErrs[p] = err
				return nil
			}
			bits[p], planeErrs[p] = bitpack.Unpack(packed, n)

			return nil
		})
	}
	_ = g.Wait()

	for p, err := range planeErrs {
		if err != nil {
			return Batch{}, fmt.Errorf("plane %d: %w", p, err)
		}
	}

	patterns, err := planes.Reaggregate(bits[:])
	if err != nil {
		return Batch{}, err
	}

	batch := Batch{Samples: half.DecodeSlice(patterns)}
	if len(f.ChannelIDs) > 0 {
		batch.ChannelIDs = append([]uint64(nil), f.ChannelIDs...)
	}

	return batch, nil
}

// checkFrame validates a frame that may have been built without Parse.
func (d *Decoder) checkFrame(f *Frame) error {
	if f == nil {
		return fmt.Errorf("%w: nil frame", errs.ErrFrameCorrupt)
	}
	if err := f.Header.Validate(); err != nil {
		return corrupt(err)
	}
	if f.Header.SampleCount == 0 {
		return corrupt(errs.ErrEmptyBatch)
	}
	if len(f.ChannelIDs) != int(f.Header.ChannelCount) {
		return fmt.Errorf("%w: %d channel IDs, header declares %d",
			errs.ErrFrameCorrupt, len(f.ChannelIDs), f.Header.ChannelCount)
	}

	for p := range f.Planes {
		ph := &f.Planes[p].Header
		if int(ph.Index) != p {
			return fmt.Errorf("%w: plane %d declares index %d", errs.ErrFrameCorrupt, p, ph.Index)
		}
		if ph.BitCount != f.Header.SampleCount {
			return fmt.Errorf("%w: plane %d holds %d bits, frame declares %d samples",
				errs.ErrFrameCorrupt, p, ph.BitCount, f.Header.SampleCount)
		}
	}

	return nil
}
