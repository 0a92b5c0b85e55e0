// Package bitpack packs bit sequences densely, eight bits per byte.
//
// Bit order is MSB-first: bit i of the sequence is stored in byte i/8 at bit
// position 7-(i%8). This is the order numpy's packbits uses. Pad bits of the last
// byte are written as zero by Pack and ignored by Unpack.
package bitpack

import (
	"fmt"

	"github.com/arloliu/bitplane/errs"
	"github.com/arloliu/bitplane/internal/planes"
)

// PackedLen returns the number of bytes needed for bitCount bits: ceil(bitCount/8).
func PackedLen(bitCount int) int {
	return (bitCount + 7) / 8
}

// Pack packs bits into PackedLen(len(bits)) bytes. Only the lowest bit of each
// element is used. An empty sequence packs to an empty, non-nil buffer.
func Pack(bits planes.BitSequence) []byte {
	out := make([]byte, PackedLen(len(bits)))

	full := len(bits) &^ 7
	for i := 0; i < full; i += 8 {
		b := bits[i : i+8 : i+8]
		out[i>>3] = (b[0]&1)<<7 | (b[1]&1)<<6 | (b[2]&1)<<5 | (b[3]&1)<<4 |
			(b[4]&1)<<3 | (b[5]&1)<<2 | (b[6]&1)<<1 | b[7]&1
	}

	for i := full; i < len(bits); i++ {
		out[i>>3] |= (bits[i] & 1) << (7 - uint(i&7))
	}

	return out
}

// PackPlane extracts plane p of batch and packs it in one pass, without building
// the intermediate BitSequence. The result equals Pack(planes.Extract(batch, p)).
func PackPlane(batch []uint16, p int) []byte {
	out := make([]byte, PackedLen(len(batch)))
	shift := uint(p)
	for i, v := range batch {
		out[i>>3] |= byte(v>>shift&1) << (7 - uint(i&7))
	}

	return out
}

// Unpack expands the first bitCount bits of data into a BitSequence.
// Any pad bits beyond bitCount are discarded whatever their value.
//
// Returns errs.ErrLengthMismatch if data is not exactly PackedLen(bitCount) bytes
// long, or if bitCount is negative.
func Unpack(data []byte, bitCount int) (planes.BitSequence, error) {
	if bitCount < 0 {
		return nil, fmt.Errorf("%w: negative bit count %d", errs.ErrLengthMismatch, bitCount)
	}
	if want := PackedLen(bitCount); len(data) != want {
		return nil, fmt.Errorf("%w: %d packed bytes for %d bits, want %d",
			errs.ErrLengthMismatch, len(data), bitCount, want)
	}

	bits := make(planes.BitSequence, bitCount)
	full := bitCount &^ 7
	for i := 0; i < full; i += 8 {
		v := data[i>>3]
		b := bits[i : i+8 : i+8]
		b[0] = v >> 7
		b[1] = v >> 6 & 1
		b[2] = v >> 5 & 1
		b[3] = v >> 4 & 1
		b[4] = v >> 3 & 1
		b[5] = v >> 2 & 1
		b[6] = v >> 1 & 1
		b[7] = v & 1
	}

	for i := full; i < bitCount; i++ {
		bits[i] = data[i>>3] >> (7 - uint(i&7)) & 1
	}

	return bits, nil
}
