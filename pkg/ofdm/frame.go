// Package ofdm assembles a full OFDM baseband frame: pilot blocks,
// Schmidl-Cox synchronization symbols, a BCH-protected metadata
// header, the BCH+LDPC-coded, interleaved, PSK-mapped payload, and
// the trailing sync/header/pilot/flush that closes the frame. This is
// the part original_source/encode.cc calls the encoder's core
// (spec.md's own "the hard part").
package ofdm

import (
	"fmt"

	"ofdmwave/pkg/bch"
	"ofdmwave/pkg/bitops"
	"ofdmwave/pkg/crc16"
	"ofdmwave/pkg/fft"
	"ofdmwave/pkg/ldpc"
	"ofdmwave/pkg/pcm"
	"ofdmwave/pkg/psk"
)

const (
	mls0Len  = 127
	mls0Poly = 0b10001001
	mls1Len  = 255
	mls1Poly = 0b100101011
	mls2Poly = 0b100101010001

	crcPoly = 0xA8F4

	// headerInfoBits is the number of information bits (call sign +
	// mode + CRC-16) the header code protects: 55 declared data bits
	// plus a 16-bit check code, matching mls1Len's 255 subcarriers
	// once the BCH(255,71) parity is appended.
	headerInfoBits     = 71
	headerDeclaredBits = 55
)

// DataBits is the number of payload bits one frame carries: the LDPC
// information block (43200 bits) minus the 160 bits the outer BCH
// code appends as parity, matching
// original_source/encode.cc's data_bits = bch_bits - 10*16.
const DataBits = ldpc.InfoBits - 160

// DataBytes is DataBits rounded up to whole bytes -- the payload slice
// callers must supply to Encode.
const DataBytes = (DataBits + 7) / 8

// Report summarizes the peak-to-average power ratio measured while
// emitting a frame, in decibels, matching the reference encoder's
// stderr PAPR report.
type Report struct {
	RealMinDB, RealMaxDB float64
	ImagMinDB, ImagMaxDB float64
	Stereo               bool
}

// Encoder assembles and emits one OFDM frame at a time to a pcm.Sink.
// It is safe to call Encode repeatedly on the same Encoder: all
// per-frame state (the frequency-domain working buffer, PAPR
// trackers, guard-symbol cache) is reset at the start of each call.
type Encoder struct {
	rate int
	geom Geometry
	mode ModeParams
	plan FrequencyPlan
	sink pcm.Sink

	bwd  fft.Transformer // size geom.SymbolLen, inverse only
	fwd4 fft.Transformer // size 4*geom.SymbolLen, forward only
	bwd4 fft.Transformer // size 4*geom.SymbolLen, inverse only

	crc       *crc16.Checker
	bchHeader *bch.Encoder
	bchOuter  *bch.Encoder
	ldpcEnc   *ldpc.Encoder

	consCnt  int
	codeRows int

	fdom, tdom, temp []complex128
	fdom4, tdom4     []complex128
	guard            []complex128

	code, bint []bool

	paprMinRe, paprMaxRe float64
	paprMinIm, paprMaxIm float64
}

// New builds an Encoder for the given sample rate and operating mode,
// writing frames to sink. freqOffHz is the carrier offset in Hz,
// already validated by the caller (cmd/encode owns the full
// rate/mode/offset validation rules from spec.md §6).
func New(rate int, mode ModeParams, freqOffHz int, sink pcm.Sink) *Encoder {
	geom := NewGeometry(rate)
	plan := NewFrequencyPlan(freqOffHz, rate, geom, mode)

	e := &Encoder{
		rate: rate,
		geom: geom,
		mode: mode,
		plan: plan,
		sink: sink,

		bwd:  fft.NewGonumTransformer(geom.SymbolLen),
		fwd4: fft.NewGonumTransformer(4 * geom.SymbolLen),
		bwd4: fft.NewGonumTransformer(4 * geom.SymbolLen),

		crc:       crc16.New(crcPoly),
		bchHeader: bch.New(bch.DVBT2Header),
		bchOuter:  bch.New(bch.DVBT2Outer),
		ldpcEnc:   ldpc.New(ldpc.DVBT2TableA3),

		consCnt: ldpc.CodedBits / mode.ModBits,

		fdom:  make([]complex128, geom.SymbolLen),
		tdom:  make([]complex128, geom.SymbolLen),
		temp:  make([]complex128, geom.SymbolLen),
		fdom4: make([]complex128, 4*geom.SymbolLen),
		tdom4: make([]complex128, 4*geom.SymbolLen),
		guard: make([]complex128, geom.GuardLen),

		code: make([]bool, ldpc.CodedBits),
		bint: make([]bool, ldpc.CodedBits),
	}
	e.codeRows = e.consCnt / mode.CodeCols
	return e
}

func (e *Encoder) bin(carrier int) int {
	n := e.geom.SymbolLen
	return ((carrier % n) + n) % n
}

func (e *Encoder) bin4(carrier int) int {
	n := 4 * e.geom.SymbolLen
	return ((carrier % n) + n) % n
}

func nrz(bit bool) float64 {
	if bit {
		return -1
	}
	return 1
}

func lerp(a, b complex128, x float64) complex128 {
	return a + (b-a)*complex(x, 0)
}

// Encode assembles and emits one complete frame carrying payload
// (exactly DataBytes long, already scrambled by the caller) under
// callSign, returning the measured PAPR.
func (e *Encoder) Encode(payload []byte, callSign int64) (Report, error) {
	if len(payload) != DataBytes {
		return Report{}, fmt.Errorf("ofdm: payload must be %d bytes, got %d", DataBytes, len(payload))
	}

	e.paprMinRe, e.paprMinIm = 1000, 1000
	e.paprMaxRe, e.paprMaxIm = -1000, -1000
	for i := range e.guard {
		e.guard[i] = 0
	}

	md := (uint64(callSign) << 8) | uint64(e.mode.Number)

	steps := []func() error{
		e.pilotBlock,
		e.schmidlCox,
		func() error { return e.metaData(md) },
		e.pilotBlock,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return Report{}, err
		}
	}

	if err := e.encodePayload(payload); err != nil {
		return Report{}, err
	}
	e.interleave()

	for j := 0; j < e.codeRows; j++ {
		for i := 0; i < e.mode.CodeCols; i++ {
			b := psk.MapBits(e.bint, e.mode.ModBits*(e.mode.CodeCols*j+i), e.mode.ModBits)
			e.fdom[e.bin(i+e.plan.CodeOff)] *= b
		}
		if err := e.symbol(true); err != nil {
			return Report{}, err
		}
	}

	closing := []func() error{
		e.schmidlCox,
		func() error { return e.metaData(md) },
		e.pilotBlock,
	}
	for _, step := range closing {
		if err := step(); err != nil {
			return Report{}, err
		}
	}

	for i := range e.fdom {
		e.fdom[i] = 0
	}
	if err := e.symbol(true); err != nil {
		return Report{}, err
	}

	return Report{
		RealMinDB: decibel(e.paprMinRe), RealMaxDB: decibel(e.paprMaxRe),
		ImagMinDB: decibel(e.paprMinIm), ImagMaxDB: decibel(e.paprMaxIm),
		Stereo: e.sink.Channels() == 2,
	}, nil
}

// encodePayload runs the outer BCH and inner LDPC coding chain,
// leaving e.code holding the full 64800-bit codeword as coded bits
// (true = 1), matching original_source/encode.cc's
// bchenc1 + get_le_bit + ldpcenc sequence.
func (e *Encoder) encodePayload(payload []byte) error {
	outerParityBits := e.bchOuter.ParityBits()
	if DataBits+outerParityBits != ldpc.InfoBits {
		return fmt.Errorf("ofdm: outer BCH parity width %d does not fit the LDPC information block (programmer error: check bch.DVBT2Outer factors)", outerParityBits)
	}
	outerParity := make([]byte, (outerParityBits+7)/8)
	e.bchOuter.EncodeLE(payload, DataBits, outerParity)

	for i := 0; i < DataBits; i++ {
		e.code[i] = bitops.GetLEBit(payload, i)
	}
	for i := 0; i < outerParityBits; i++ {
		e.code[DataBits+i] = bitops.GetLEBit(outerParity, i)
	}

	e.ldpcEnc.Encode(e.code[:ldpc.InfoBits], e.code[ldpc.InfoBits:ldpc.CodedBits])
	return nil
}

// interleave repacks the coded bits from column-major to row-major
// order, matching original_source/encode.cc's
// bint[mod_bits*i+k] = code[cons_cnt*k+i].
func (e *Encoder) interleave() {
	for i := 0; i < e.consCnt; i++ {
		for k := 0; k < e.mode.ModBits; k++ {
			e.bint[e.mode.ModBits*i+k] = e.code[e.consCnt*k+i]
		}
	}
}
