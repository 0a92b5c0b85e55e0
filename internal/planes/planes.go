// Package planes splits a batch of binary16 patterns into its 16 bit-planes and
// merges them back.
//
// Plane p holds bit p of every sample, in sample order; plane 0 is the least
// significant (lowest mantissa) bit and plane 15 the sign bit.
package planes

import (
	"fmt"

	"github.com/arloliu/bitplane/errs"
)

// NumPlanes is the number of bit-planes of a binary16 batch.
const NumPlanes = 16

// Well-known plane groups of the binary16 layout.
const (
	SignPlane         = 15
	ExponentPlaneLow  = 10
	ExponentPlaneHigh = 14
)

// BitSequence is a sequence of single bits, one per byte, each 0 or 1.
type BitSequence []byte

// Len returns the number of bits.
func (s BitSequence) Len() int {
	return len(s)
}

// Ones returns the number of set bits.
func (s BitSequence) Ones() int {
	n := 0
	for _, b := range s {
		n += int(b & 1)
	}

	return n
}

// Extract returns plane p of batch. It only reads batch, so any number of
// plane workers may call it concurrently on the same batch.
func Extract(batch []uint16, p int) BitSequence {
	bits := make(BitSequence, len(batch))
	shift := uint(p)
	for i, v := range batch {
		bits[i] = byte(v>>shift) & 1
	}

	return bits
}

// Disaggregate returns the 16 bit-planes of batch, each of length len(batch).
func Disaggregate(batch []uint16) [NumPlanes]BitSequence {
	var out [NumPlanes]BitSequence
	for p := range NumPlanes {
		out[p] = Extract(batch, p)
	}

	return out
}

// Reaggregate is the inverse of Disaggregate: sample i is the OR over p of
// planes[p][i] << p. Only the lowest bit of each element is used.
//
// Returns errs.ErrLengthMismatch if planes does not hold exactly 16 sequences
// or if the sequences differ in length.
func Reaggregate(planes []BitSequence) ([]uint16, error) {
	if len(planes) != NumPlanes {
		return nil, fmt.Errorf("%w: got %d planes, want %d", errs.ErrLengthMismatch, len(planes), NumPlanes)
	}

	n := len(planes[0])
	for p, plane := range planes {
		if len(plane) != n {
			return nil, fmt.Errorf("%w: plane %d has %d bits, plane 0 has %d",
				errs.ErrLengthMismatch, p, len(plane), n)
		}
	}

	out := make([]uint16, n)
	for p, plane := range planes {
		merge(out, plane, p)
	}

	return out, nil
}

// merge ORs plane into dst at bit position p. Only the common prefix of dst
// and plane is touched.
func merge(dst []uint16, plane BitSequence, p int) {
	shift := uint(p)
	n := min(len(dst), len(plane))
	for i, b := range plane[:n] {
		dst[i] |= uint16(b&1) << shift
	}
}
