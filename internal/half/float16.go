// Package half converts samples to and from IEEE 754 binary16 bit patterns.
//
// Layout:
//
//	S | EEEEE | MMMMMMMMMM
//	sign: 1 bit, exponent: 5 bits (bias 15), mantissa: 10 bits
//
// Conversion from float64 rounds once, directly from the float64 bits, so a
// value is never double-rounded through float32.
package half

import "math"

// Bits is the raw binary16 bit pattern of one sample.
type Bits uint16

const (
	signMask    Bits = 0x8000
	expMask     Bits = 0x7C00
	mantMask    Bits = 0x03FF
	quietNaNBit Bits = 0x0200
)

const (
	expBias      = 15
	mantBits     = 10
	f64MantBits  = 52
	f64ExpBias   = 1023
	f64ExpAllSet = 0x7FF
	mantShift    = f64MantBits - mantBits // 42
	minNormalExp = 1 - expBias            // -14
	maxFiniteExp = expBias                // 15
)

// Special values.
const (
	PositiveZero Bits = 0x0000
	NegativeZero Bits = 0x8000
	One          Bits = 0x3C00
	MaxValue     Bits = 0x7BFF // 65504
	MinNormal    Bits = 0x0400 // 2^-14
	MinSubnormal Bits = 0x0001 // 2^-24
	PositiveInf  Bits = 0x7C00
	NegativeInf  Bits = 0xFC00
	NaN          Bits = 0x7E00
)

// FromFloat64 returns the binary16 pattern nearest to x.
//
// Rounding is round-to-nearest, ties-to-even. Values beyond the finite range
// become signed infinity, values below half the smallest subnormal become
// signed zero. NaN keeps its sign and the top ten payload bits; a payload that
// would vanish is replaced by the quiet bit so the result stays a NaN.
func FromFloat64(x float64) Bits {
	bits := math.Float64bits(x)
	sign := Bits(bits>>48) & signMask
	exp := int((bits >> f64MantBits) & f64ExpAllSet)
	mant := bits & (1<<f64MantBits - 1)

	if exp == f64ExpAllSet {
		if mant == 0 {
			return sign | expMask
		}
		payload := Bits(mant>>mantShift) & mantMask
		if payload == 0 {
			payload = quietNaNBit
		}

		return sign | expMask | payload
	}

	if exp == 0 {
		// float64 zero or subnormal: far below the binary16 range.
		return sign
	}

	e := exp - f64ExpBias
	if e > maxFiniteExp {
		return sign | expMask
	}

	if e >= minNormalExp {
		m := roundShift(mant, mantShift)
		he := uint64(e + expBias)
		if m == 1<<mantBits {
			m = 0
			he++
		}
		if he >= 0x1F {
			return sign | expMask
		}

		return sign | Bits(he<<mantBits) | Bits(m)
	}

	// Subnormal result: the value is full * 2^(e-52) and one subnormal unit is 2^-24.
	shift := uint(28 - e)
	if shift > f64MantBits+1 {
		return sign
	}
	full := mant | 1<<f64MantBits

	// A carry into bit 10 yields 0x0400, which is exactly MinNormal.
	return sign | Bits(roundShift(full, shift))
}

// roundShift returns v >> shift rounded to nearest, ties to even.
func roundShift(v uint64, shift uint) uint64 {
	m := v >> shift
	rest := v & (1<<shift - 1)
	halfway := uint64(1) << (shift - 1)
	if rest > halfway || (rest == halfway && m&1 == 1) {
		m++
	}

	return m
}

// ToFloat64 returns the exact value of h. Every pattern, including NaN and
// infinity encodings, maps to a float64, and FromFloat64(ToFloat64(h)) == h.
func ToFloat64(h Bits) float64 {
	sign := uint64(h&signMask) << 48
	exp := uint64(h&expMask) >> mantBits
	mant := uint64(h & mantMask)

	switch exp {
	case 0:
		v := math.Ldexp(float64(mant), minNormalExp-mantBits)
		if sign != 0 {
			return -v
		}

		return v
	case 0x1F:
		return math.Float64frombits(sign | f64ExpAllSet<<f64MantBits | mant<<mantShift)
	default:
		return math.Float64frombits(sign | (exp+f64ExpBias-expBias)<<f64MantBits | mant<<mantShift)
	}
}

// FromFloat32 returns the binary16 pattern nearest to f.
// float32 widens to float64 exactly, so this rounds only once.
func FromFloat32(f float32) Bits {
	return FromFloat64(float64(f))
}

// ToFloat32 returns the exact value of h as a float32.
func ToFloat32(h Bits) float32 {
	return float32(ToFloat64(h))
}

// Float64 returns the exact value of h.
func (h Bits) Float64() float64 {
	return ToFloat64(h)
}

// IsNaN reports whether h is a NaN pattern.
func (h Bits) IsNaN() bool {
	return h&expMask == expMask && h&mantMask != 0
}

// IsInf reports whether h is positive or negative infinity.
func (h Bits) IsInf() bool {
	return h&^signMask == expMask
}

// IsSubnormal reports whether h is a nonzero subnormal.
func (h Bits) IsSubnormal() bool {
	return h&expMask == 0 && h&mantMask != 0
}

// EncodeSlice narrows samples to their binary16 patterns, preserving order.
func EncodeSlice(samples []float64) []uint16 {
	out := make([]uint16, len(samples))
	for i, s := range samples {
		out[i] = uint16(FromFloat64(s))
	}

	return out
}

// DecodeSlice widens binary16 patterns to float64 values.
func DecodeSlice(patterns []uint16) []float64 {
	out := make([]float64, len(patterns))
	for i, p := range patterns {
		out[i] = ToFloat64(Bits(p))
	}

	return out
}
