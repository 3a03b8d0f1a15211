package ofdm

import (
	"encoding/binary"
	"math"

	"ofdmwave/pkg/bitops"
	"ofdmwave/pkg/mls"
)

// pilotBlock emits a known reference symbol: an MLS-derived BPSK
// pattern across the mode's code_cols subcarriers, used by a receiver
// for channel estimation, matching
// original_source/encode.cc's pilot_block().
func (e *Encoder) pilotBlock() error {
	seq := mls.New(mls2Poly)
	codeFac := math.Sqrt(float64(e.geom.SymbolLen) / float64(e.mode.CodeCols))

	for i := range e.fdom {
		e.fdom[i] = 0
	}
	for i := e.plan.CodeOff; i < e.plan.CodeOff+e.mode.CodeCols; i++ {
		e.fdom[e.bin(i)] = complex(codeFac*nrz(seq.Bit()), 0)
	}
	return e.symbol(true)
}

// schmidlCox emits a synchronization symbol carrying a differentially
// encoded MLS sequence on even subcarriers, giving a receiver an
// autocorrelation peak to detect frame start, matching
// original_source/encode.cc's schmidl_cox().
func (e *Encoder) schmidlCox() error {
	seq := mls.New(mls0Poly)
	fac := math.Sqrt(float64(2*e.geom.SymbolLen) / float64(mls0Len))

	for i := range e.fdom {
		e.fdom[i] = 0
	}
	e.fdom[e.bin(e.plan.MLS0Off-2)] = complex(fac, 0)
	for i := 0; i < mls0Len; i++ {
		e.fdom[e.bin(2*i+e.plan.MLS0Off)] = complex(nrz(seq.Bit()), 0)
	}
	for i := 0; i < mls0Len; i++ {
		e.fdom[e.bin(2*i+e.plan.MLS0Off)] *= e.fdom[e.bin(2*(i-1)+e.plan.MLS0Off)]
	}
	return e.symbol(false)
}

// metaData emits the header symbol: 55 declared bits of md plus a
// CRC-16 check code, BCH(255,71)-protected, differentially encoded
// across its 255 subcarriers and whitened by an MLS sequence,
// matching original_source/encode.cc's meta_data().
func (e *Encoder) metaData(md uint64) error {
	data := make([]byte, (headerDeclaredBits+7)/8+2) // room for 55 declared bits + 16 CRC bits
	for i := 0; i < headerDeclaredBits; i++ {
		bitops.SetBEBit(data, i, (md>>uint(i))&1 != 0)
	}

	e.crc.Reset()
	var crcInput [8]byte
	binary.BigEndian.PutUint64(crcInput[:], md<<9)
	e.crc.Update(crcInput[:])
	cs := e.crc.Sum()
	for i := 0; i < 16; i++ {
		bitops.SetBEBit(data, headerDeclaredBits+i, (cs>>uint(i))&1 != 0)
	}

	parityBits := e.bchHeader.ParityBits()
	parity := make([]byte, (parityBits+7)/8)
	e.bchHeader.EncodeBE(data, headerInfoBits, parity)

	whitening := mls.New(mls1Poly)
	fac := math.Sqrt(float64(e.geom.SymbolLen) / float64(mls1Len))

	for i := range e.fdom {
		e.fdom[i] = 0
	}
	e.fdom[e.bin(e.plan.MLS1Off-1)] = complex(fac, 0)
	for i := 0; i < headerInfoBits; i++ {
		e.fdom[e.bin(i+e.plan.MLS1Off)] = complex(nrz(bitops.GetBEBit(data, i)), 0)
	}
	for i := headerInfoBits; i < mls1Len; i++ {
		e.fdom[e.bin(i+e.plan.MLS1Off)] = complex(nrz(bitops.GetBEBit(parity, i-headerInfoBits)), 0)
	}
	for i := 0; i < mls1Len; i++ {
		e.fdom[e.bin(i+e.plan.MLS1Off)] *= e.fdom[e.bin(i-1+e.plan.MLS1Off)]
	}
	for i := 0; i < mls1Len; i++ {
		e.fdom[e.bin(i+e.plan.MLS1Off)] *= complex(nrz(whitening.Bit()), 0)
	}
	return e.symbol(true)
}
