// Package fft defines the complex FFT contract the OFDM core needs
// and wraps gonum's complex FFT to satisfy it. Per design note 9, the
// contract is: forward uses a -i exponent, inverse uses a +i
// exponent, and neither direction applies any implicit normalization
// -- callers apply their own scale factors (spec.md §4.6, §4.7).
package fft

import "gonum.org/v1/gonum/dsp/fourier"

// Transformer performs unnormalized forward/inverse complex FFTs of a
// fixed size, specified only by contract in spec.md §1 (the base-FFT
// routine is an external collaborator); this package supplies one
// concrete implementation.
type Transformer interface {
	Size() int
	// Forward computes dst = DFT(src), -i exponent convention.
	Forward(dst, src []complex128)
	// Inverse computes dst = IDFT(src), +i exponent convention, with
	// no 1/N scaling applied.
	Inverse(dst, src []complex128)
}

// GonumTransformer wraps gonum.org/v1/gonum/dsp/fourier.CmplxFFT,
// grounded on madpsy-ka9q_ubersdr's use of the same gonum package to
// back its own FFT helper (audio_extensions/sstv/fft.go), generalized
// there from real-input to the complex-input transform this encoder
// needs for both the symbol-length and 4×-oversampled transforms.
type GonumTransformer struct {
	n   int
	fft *fourier.CmplxFFT
}

// NewGonumTransformer builds a transformer for size n.
func NewGonumTransformer(n int) *GonumTransformer {
	return &GonumTransformer{n: n, fft: fourier.NewCmplxFFT(n)}
}

func (g *GonumTransformer) Size() int { return g.n }

func (g *GonumTransformer) Forward(dst, src []complex128) {
	copy(dst, g.fft.Coefficients(dst, src))
}

func (g *GonumTransformer) Inverse(dst, src []complex128) {
	copy(dst, g.fft.Sequence(dst, src))
}
