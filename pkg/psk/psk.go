// Package psk implements the Gray-coded phase-shift-keying
// constellations the coding chain maps interleaved bits onto: QPSK
// for modes 4/5, 8-PSK for modes 2/3. Both are normalized to unit
// mean power.
package psk

import "math"

// QPSK is the 2-bit-per-symbol Gray-coded constellation, matching
// other_examples/SarahRoseLives-HackDVBS's Gray-coded QPSK map,
// restated as an array lookup since the mapper is called once per
// constellation point across a whole frame's coded bits.
var QPSK = [4]complex128{
	complex(1/math.Sqrt2, 1/math.Sqrt2),
	complex(1/math.Sqrt2, -1/math.Sqrt2),
	complex(-1/math.Sqrt2, 1/math.Sqrt2),
	complex(-1/math.Sqrt2, -1/math.Sqrt2),
}

// EightPSK is the 3-bit-per-symbol Gray-coded constellation.
var EightPSK = func() [8]complex128 {
	var c [8]complex128
	// The point at angle position i carries the Gray-coded label
	// i^(i>>1), so that adjacent constellation points differ by one bit.
	for i := 0; i < 8; i++ {
		gray := i ^ (i >> 1)
		angle := 2 * math.Pi * float64(i) / 8
		c[gray] = complex(math.Cos(angle), math.Sin(angle))
	}
	return c
}()

// MapQPSK maps 2 bits (b0 = MSB) to a QPSK point.
func MapQPSK(b0, b1 bool) complex128 {
	return QPSK[idx2(b0, b1)]
}

// Map8PSK maps 3 bits (b0 = MSB) to an 8-PSK point.
func Map8PSK(b0, b1, b2 bool) complex128 {
	return EightPSK[idx3(b0, b1, b2)]
}

// MapBits maps modBits consecutive bits (from bits[off:off+modBits])
// to a constellation point for the given mode-dependent bit width,
// matching the reference encoder's mod_map dispatch on oper_mode.
func MapBits(bits []bool, off, modBits int) complex128 {
	switch modBits {
	case 2:
		return MapQPSK(bits[off], bits[off+1])
	case 3:
		return Map8PSK(bits[off], bits[off+1], bits[off+2])
	default:
		panic("psk: unsupported bits-per-symbol (programmer error: mode table)")
	}
}

func idx2(b0, b1 bool) int {
	return b2i(b0)<<1 | b2i(b1)
}

func idx3(b0, b1, b2 bool) int {
	return b2i(b0)<<2 | b2i(b1)<<1 | b2i(b2)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
