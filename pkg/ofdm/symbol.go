package ofdm

import "math"

// symbol synthesizes and emits one OFDM symbol from e.fdom: an
// inverse FFT to the time domain, a raised-cosine guard that
// crossfades from the previous symbol's first guard_len samples into
// this symbol's tail, and a running PAPR
// measurement, matching original_source/encode.cc's symbol().
func (e *Encoder) symbol(paprReduction bool) error {
	copy(e.temp, e.fdom)
	if paprReduction {
		e.improvePAPR()
	}

	e.bwd.Inverse(e.tdom, e.temp)
	scale := 1 / math.Sqrt(float64(8*e.geom.SymbolLen))
	for i := range e.tdom {
		e.tdom[i] *= complex(scale, 0)
	}

	guardLen := e.geom.GuardLen
	symbolLen := e.geom.SymbolLen
	for i := 0; i < guardLen; i++ {
		x := float64(i) / float64(guardLen-1)
		x = 0.5 * (1 - math.Cos(math.Pi*x))
		e.guard[i] = lerp(e.guard[i], e.tdom[i+symbolLen-guardLen], x)
	}

	e.trackPAPR()

	if err := e.emit(e.guard); err != nil {
		return err
	}
	if err := e.emit(e.tdom); err != nil {
		return err
	}
	copy(e.guard, e.tdom[:guardLen])
	return nil
}

func (e *Encoder) trackPAPR() {
	var peakRe, peakIm, meanRe, meanIm float64
	for _, s := range e.tdom {
		re, im := real(s), imag(s)
		pr, pi := re*re, im*im
		if pr > peakRe {
			peakRe = pr
		}
		if pi > peakIm {
			peakIm = pi
		}
		meanRe += pr
		meanIm += pi
	}
	if meanRe <= 0 || meanIm <= 0 {
		return
	}
	n := float64(e.geom.SymbolLen)
	paprRe := peakRe / meanRe * n
	paprIm := peakIm / meanIm * n
	if paprRe < e.paprMinRe {
		e.paprMinRe = paprRe
	}
	if paprRe > e.paprMaxRe {
		e.paprMaxRe = paprRe
	}
	if paprIm < e.paprMinIm {
		e.paprMinIm = paprIm
	}
	if paprIm > e.paprMaxIm {
		e.paprMaxIm = paprIm
	}
}

// emit converts a complex baseband block to the sink's channel count:
// mono output keeps only the real (already frequency-shifted)
// component, stereo output carries the in-phase/quadrature pair as
// left/right, matching the reference encoder's generic
// pcm->write(data, count, 2) call being downmixed by the WAV writer
// to whatever the requested output channel count is.
func (e *Encoder) emit(block []complex128) error {
	ch := e.sink.Channels()
	out := make([]float64, len(block)*ch)
	if ch == 1 {
		for i, s := range block {
			out[i] = real(s)
		}
	} else {
		for i, s := range block {
			out[2*i] = real(s)
			out[2*i+1] = imag(s)
		}
	}
	return e.sink.Write(out)
}

// decibel converts a linear power ratio to decibels, matching
// original_source/encode.cc's DSP::decibel helper.
func decibel(ratio float64) float64 {
	return 10 * math.Log10(ratio)
}
