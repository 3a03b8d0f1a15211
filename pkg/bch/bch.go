// Package bch implements systematic binary BCH encoding as an LFSR
// shift-register division, the same technique the header coder's
// CRC-16 already uses (pkg/crc16), generalized to an arbitrary
// generator polynomial. The generator is built once, at construction
// time, as the GF(2)[x] product of the code's minimal-polynomial
// factors (pkg/gf2bin); everything after that is a bit-at-a-time
// shift register exactly like a wide CRC.
package bch

import (
	"ofdmwave/pkg/bitops"
	"ofdmwave/pkg/gf2bin"
)

// Params describes one BCH code: an (n, k) systematic code able to
// correct t errors, built from the given minimal-polynomial factors.
// N/K/T document the code; the encoder derives the actual parity
// width from the generator's degree.
type Params struct {
	N, K, T int
	Factors []uint64
}

// DVBT2Header is the header coder's BCH(255,71) code, factors copied
// from the reference encoder's bchenc0 construction.
var DVBT2Header = Params{
	N: 255, K: 71, T: 29,
	Factors: []uint64{
		0b100011101, 0b101110111, 0b111110011, 0b101101001,
		0b110111101, 0b111100111, 0b100101011, 0b111010111,
		0b000010011, 0b101100101, 0b110001011, 0b101100011,
		0b100011011, 0b100111111, 0b110001101, 0b100101101,
		0b101011111, 0b111111001, 0b111000011, 0b100111001,
		0b110101001, 0b000011111, 0b110000111, 0b110110001,
	},
}

// DVBT2Outer is the outer BCH(65535,65375) code used, in shortened
// form, over the LDPC information block. Factors copied from the
// reference encoder's bchenc1 construction.
var DVBT2Outer = Params{
	N: 65535, K: 65375, T: 10,
	Factors: []uint64{
		0b10000000000101101, 0b10000000101110011, 0b10000111110111101,
		0b10101101001010101, 0b10001111100101111, 0b11111011110110101,
		0b11010111101100101, 0b10111001101100111, 0b10000111010100001,
		0b10111010110100111,
	},
}

// Encoder is a constructed systematic encoder for one Params.
type Encoder struct {
	params    Params
	generator gf2bin.Poly
	parityLen int
}

// New builds the systematic encoder for p, multiplying its factors
// into a single generator polynomial. A degenerate (empty or
// zero-degree) generator is a malformed constant table, a programmer
// error per spec.
func New(p Params) *Encoder {
	g := gf2bin.Generator(p.Factors...)
	deg := g.Degree()
	if deg <= 0 {
		panic("bch: malformed generator polynomial (programmer error: check Factors)")
	}
	return &Encoder{params: p, generator: g, parityLen: deg}
}

// ParityBits returns the number of parity bits this code appends.
func (e *Encoder) ParityBits() int {
	return e.parityLen
}

// Encode computes the systematic parity for a message of msgBits
// bits, read one at a time from msgBit, and writes the resulting
// parity bits one at a time through setParityBit. The shift-register
// division itself has no notion of byte/bit order; callers pick
// little-endian or big-endian addressing (bitops.GetLEBit/SetBEBit
// etc.) to match how they laid out their buffers -- the reference
// encoder uses little-endian addressing for the outer code over the
// LDPC information block and big-endian addressing for the header
// code, both against the same templated encoder. msgBits may be less
// than params.K: the code is used in shortened form, where the
// omitted high-order message bits are implicitly zero and, being
// zero, never perturb the shift register, so they are simply never
// fed into it.
func (e *Encoder) Encode(msgBits int, msgBit func(i int) bool, setParityBit func(i int, bit bool)) {
	reg := make([]bool, e.parityLen)
	for i := 0; i < msgBits; i++ {
		feed(reg, e.generator, msgBit(i))
	}
	for i := 0; i < e.parityLen; i++ {
		setParityBit(i, reg[i])
	}
}

// EncodeLE is a convenience wrapper over Encode for the common case of
// little-endian-addressed byte buffers on both sides.
func (e *Encoder) EncodeLE(msg []byte, msgBits int, parity []byte) {
	e.Encode(msgBits,
		func(i int) bool { return bitops.GetLEBit(msg, i) },
		func(i int, bit bool) { bitops.SetLEBit(parity, i, bit) })
}

// EncodeBE is a convenience wrapper over Encode for the common case of
// big-endian-addressed byte buffers on both sides, matching the
// reference encoder's set_be_bit/get_be_bit header fields.
func (e *Encoder) EncodeBE(msg []byte, msgBits int, parity []byte) {
	e.Encode(msgBits,
		func(i int) bool { return bitops.GetBEBit(msg, i) },
		func(i int, bit bool) { bitops.SetBEBit(parity, i, bit) })
}

// feed shifts one message bit through the parityLen-wide division
// register for generator g: the bit leaving the top of the register,
// XORed with the incoming message bit, decides whether the
// generator's lower-order taps are folded back in.
func feed(reg []bool, g gf2bin.Poly, in bool) {
	n := len(reg)
	top := reg[n-1]
	fb := top != in
	for i := n - 1; i > 0; i-- {
		reg[i] = reg[i-1]
		if fb && g.Bit(i) {
			reg[i] = !reg[i]
		}
	}
	reg[0] = fb && g.Bit(0)
}
