package frame

import "fmt"

// Batch is the reconstructed content of one frame: N samples in original
// order. When the frame carries channels, samples are interleaved row-major,
// so sample i of channel c is Samples[i*ChannelCount()+c].
type Batch struct {
	Samples    []float64
	ChannelIDs []uint64
}

// Len returns the number of samples.
func (b Batch) Len() int {
	return len(b.Samples)
}

// ChannelCount returns the number of interleaved channels, 1 for a plain batch.
func (b Batch) ChannelCount() int {
	return max(1, len(b.ChannelIDs))
}

// Rows returns the number of samples per channel.
func (b Batch) Rows() int {
	return len(b.Samples) / b.ChannelCount()
}

// Channel returns a copy of the samples of channel c.
func (b Batch) Channel(c int) ([]float64, error) {
	channels := b.ChannelCount()
	if c < 0 || c >= channels {
		return nil, fmt.Errorf("channel %d out of range [0, %d)", c, channels)
	}

	out := make([]float64, 0, b.Rows())
	for i := c; i < len(b.Samples); i += channels {
		out = append(out, b.Samples[i])
	}

	return out, nil
}

// ChannelByID returns a copy of the samples of the channel with the given ID.
func (b Batch) ChannelByID(id uint64) ([]float64, bool) {
	for c, cid := range b.ChannelIDs {
		if cid == id {
			samples, _ := b.Channel(c)
			return samples, true
		}
	}

	return nil, false
}
