package ofdm

import "math"

// improvePAPR reduces peak-to-average power by round-tripping the
// symbol through a 4x-oversampled IFFT, clipping each sample to the
// unit square, and transforming back -- writing the result only into
// e.temp's originally-occupied bins, matching
// original_source/encode.cc's improve_papr().
func (e *Encoder) improvePAPR() {
	symbolLen := e.geom.SymbolLen

	for i := range e.fdom4 {
		e.fdom4[i] = 0
	}
	for i := -symbolLen / 2; i < symbolLen/2; i++ {
		e.fdom4[e.bin4(i)] = e.fdom[e.bin(i)]
	}

	e.bwd4.Inverse(e.tdom4, e.fdom4)
	scale := 1 / math.Sqrt(float64(4*symbolLen))
	for i := range e.tdom4 {
		e.tdom4[i] *= complex(scale, 0)
	}

	for i, s := range e.tdom4 {
		amp := math.Max(math.Abs(real(s)), math.Abs(imag(s)))
		if amp > 1 {
			e.tdom4[i] = s / complex(amp, 0)
		}
	}

	e.fwd4.Forward(e.fdom4, e.tdom4)
	for i := -symbolLen / 2; i < symbolLen/2; i++ {
		bi := e.bin(i)
		if e.temp[bi] != 0 {
			e.temp[bi] = e.fdom4[e.bin4(i)] * complex(scale, 0)
		} else {
			e.temp[bi] = 0
		}
	}
}
