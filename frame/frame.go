package frame

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/bitplane/errs"
	"github.com/arloliu/bitplane/format"
	"github.com/arloliu/bitplane/internal/block"
	"github.com/arloliu/bitplane/internal/pool"
	"github.com/arloliu/bitplane/section"
)

// Frame is the transmissible unit of one batch: a frame header, optional
// channel IDs, and 16 compressed bit-planes in plane-index order.
//
// A Frame produced by Parse shares block payload memory with the parsed bytes.
type Frame struct {
	Header     section.FrameHeader
	ChannelIDs []uint64
	Planes     [section.PlaneCount]block.Plane
}

// SampleCount returns N, the number of samples in the batch.
func (f *Frame) SampleCount() int {
	return int(f.Header.SampleCount)
}

// Codec returns the block codec of the frame.
func (f *Frame) Codec() format.CompressionType {
	return f.Header.Flag.Compression()
}

// Size returns the serialized size of the frame in bytes.
func (f *Frame) Size() int {
	size := section.FrameHeaderSize + len(f.ChannelIDs)*section.ChannelIDSize
	for i := range f.Planes {
		size += f.Planes[i].Header.EncodedSize() + f.Planes[i].Header.CompressedSize()
	}

	return size
}

// AppendTo appends the serialized frame to buf.
func (f *Frame) AppendTo(buf []byte) []byte {
	engine := f.Header.Flag.GetEndianEngine()

	buf = f.Header.Append(buf)
	for _, id := range f.ChannelIDs {
		buf = engine.AppendUint64(buf, id)
	}
	for i := range f.Planes {
		buf = f.Planes[i].Header.Append(buf, engine)
	}
	for i := range f.Planes {
		for _, b := range f.Planes[i].Blocks {
			buf = append(buf, b...)
		}
	}

	return buf
}

// Bytes returns the serialized frame in a newly allocated slice.
func (f *Frame) Bytes() []byte {
	return f.AppendTo(make([]byte, 0, f.Size()))
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (f *Frame) MarshalBinary() ([]byte, error) {
	return f.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The frame keeps
// references into data.
func (f *Frame) UnmarshalBinary(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*f = *parsed

	return nil
}

// WriteTo writes the serialized frame to w through a pooled buffer.
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	bb := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(bb)

	bb.Grow(f.Size())
	bb.B = f.AppendTo(bb.B)

	return bb.WriteTo(w)
}

// Stats returns the per-plane compression statistics of the frame.
func (f *Frame) Stats() Stats {
	stats := Stats{
		Codec:       f.Codec(),
		SampleCount: f.SampleCount(),
	}
	for i := range f.Planes {
		stats.Planes[i] = planeStats(&f.Planes[i])
	}

	return stats
}

// Parse parses a complete serialized frame. The length of data must be exactly
// the frame length; the transport is responsible for delimiting frames.
//
// Structural problems in the headers are reported as errs.ErrFrameCorrupt.
// A payload that is shorter or longer than the block entries declare is
// reported as errs.ErrLengthMismatch. Parse does not decompress any block.
func Parse(data []byte) (*Frame, error) {
	header, err := section.ParseFrameHeader(data)
	if err != nil {
		return nil, corrupt(fmt.Errorf("frame header: %w", err))
	}
	if header.SampleCount == 0 {
		return nil, corrupt(errs.ErrEmptyBatch)
	}

	f := &Frame{Header: header}
	engine := header.Flag.GetEndianEngine()
	offset := section.FrameHeaderSize

	if size := header.ChannelSectionSize(); size > 0 {
		if len(data) < offset+size {
			return nil, corrupt(fmt.Errorf("%w: channel section needs %d bytes", errs.ErrInvalidHeaderSize, size))
		}
		f.ChannelIDs = make([]uint64, header.ChannelCount)
		for i := range f.ChannelIDs {
			f.ChannelIDs[i] = engine.Uint64(data[offset : offset+section.ChannelIDSize])
			offset += section.ChannelIDSize
		}
	}

	codec := header.Flag.Compression()
	payloadSize := 0
	for p := range f.Planes {
		ph, consumed, err := section.ParsePlaneHeader(data[offset:], engine)
		if err != nil {
			return nil, corrupt(fmt.Errorf("plane header %d: %w", p, err))
		}
		offset += consumed

		switch {
		case int(ph.Index) != p:
			return nil, fmt.Errorf("%w: plane header %d declares index %d", errs.ErrFrameCorrupt, p, ph.Index)
		case ph.BitCount != header.SampleCount:
			return nil, fmt.Errorf("%w: plane %d holds %d bits, frame declares %d samples",
				errs.ErrFrameCorrupt, p, ph.BitCount, header.SampleCount)
		case ph.Codec != codec:
			return nil, fmt.Errorf("%w: plane %d codec %s, frame codec %s", errs.ErrFrameCorrupt, p, ph.Codec, codec)
		}

		if err := ph.Validate(int(header.BlockSize)); err != nil {
			if errors.Is(err, errs.ErrLengthMismatch) {
				return nil, err
			}

			return nil, corrupt(err)
		}

		f.Planes[p].Header = ph
		payloadSize += ph.CompressedSize()
	}

	payload := data[offset:]
	switch {
	case len(payload) < payloadSize:
		return nil, fmt.Errorf("%w: %d bytes, block entries declare %d", errs.ErrPayloadTruncated, len(payload), payloadSize)
	case len(payload) > payloadSize:
		return nil, fmt.Errorf("%w: %d bytes, block entries declare %d", errs.ErrTrailingPayloadBytes, len(payload), payloadSize)
	}

	offset = 0
	for p := range f.Planes {
		entries := f.Planes[p].Header.Blocks
		blocks := make([][]byte, len(entries))
		for i, entry := range entries {
			end := offset + int(entry.CompressedSize)
			blocks[i] = payload[offset:end:end]
			offset = end
		}
		f.Planes[p].Blocks = blocks
	}

	return f, nil
}

// corrupt marks err as a structural frame error, keeping its original cause.
func corrupt(err error) error {
	if errors.Is(err, errs.ErrFrameCorrupt) {
		return err
	}

	return fmt.Errorf("%w: %w", errs.ErrFrameCorrupt, err)
}
