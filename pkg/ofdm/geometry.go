package ofdm

// Geometry holds the sample-rate-derived symbol and guard lengths.
// Every rate this encoder supports gives an integer symbol_len, since
// 1280 divides evenly into the ratio for 8000/16000/44100/48000 Hz
// per the reference encoder's supported-rate switch.
type Geometry struct {
	SymbolLen int
	GuardLen  int
}

// NewGeometry derives the OFDM symbol and cyclic-guard lengths for a
// sample rate, matching original_source/encode.cc's
// symbol_len = (1280*rate)/8000, guard_len = symbol_len/8.
func NewGeometry(rate int) Geometry {
	symbolLen := (1280 * rate) / 8000
	return Geometry{SymbolLen: symbolLen, GuardLen: symbolLen / 8}
}
