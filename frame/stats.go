package frame

import (
	"github.com/arloliu/bitplane/compress"
	"github.com/arloliu/bitplane/format"
	"github.com/arloliu/bitplane/internal/block"
	"github.com/arloliu/bitplane/section"
)

// PlaneStats summarizes the compression of one bit-plane.
type PlaneStats struct {
	Index          int
	OriginalSize   int // packed bytes, ceil(N/8)
	CompressedSize int // payload bytes, stored blocks included
	Blocks         int
	StoredBlocks   int
}

// Ratio returns original size / compressed size, 0 for an empty plane.
func (s PlaneStats) Ratio() float64 {
	return s.compression().Ratio()
}

func (s PlaneStats) compression() compress.CompressionStats {
	return compress.CompressionStats{
		OriginalSize:   int64(s.OriginalSize),
		CompressedSize: int64(s.CompressedSize),
	}
}

// Stats summarizes the compression of a whole frame.
type Stats struct {
	Codec       format.CompressionType
	SampleCount int
	Planes      [section.PlaneCount]PlaneStats
}

// CompressedSize returns the total payload size of all planes.
func (s Stats) CompressedSize() int {
	n := 0
	for _, p := range s.Planes {
		n += p.CompressedSize
	}

	return n
}

// StoredBlocks returns the number of blocks kept uncompressed across all planes.
func (s Stats) StoredBlocks() int {
	n := 0
	for _, p := range s.Planes {
		n += p.StoredBlocks
	}

	return n
}

// Ratio returns the size of the half-precision batch (2 bytes per sample)
// divided by the total payload size.
func (s Stats) Ratio() float64 {
	return compress.CompressionStats{
		Algorithm:      s.Codec,
		OriginalSize:   int64(s.SampleCount) * 2,
		CompressedSize: int64(s.CompressedSize()),
	}.Ratio()
}

func planeStats(p *block.Plane) PlaneStats {
	cs := p.Stats()

	return PlaneStats{
		Index:          int(p.Header.Index),
		OriginalSize:   int(cs.OriginalSize),
		CompressedSize: int(cs.CompressedSize),
		Blocks:         len(p.Header.Blocks),
		StoredBlocks:   p.Header.StoredBlocks(),
	}
}
