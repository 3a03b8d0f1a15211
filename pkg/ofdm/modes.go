package ofdm

import "fmt"

// ModeParams describes one operating mode's constellation width, the
// number of occupied subcarrier columns per coded symbol, and the
// occupied bandwidth its frequency-offset validation is measured
// against.
type ModeParams struct {
	Number      int
	CodeCols    int
	ModBits     int
	BandwidthHz int
}

// Modes holds the four supported operating modes, copied from
// original_source/encode.cc's constructor switch and main()'s
// band_width switch.
var Modes = map[int]ModeParams{
	2: {Number: 2, CodeCols: 432, ModBits: 3, BandwidthHz: 2700},
	3: {Number: 3, CodeCols: 400, ModBits: 3, BandwidthHz: 2500},
	4: {Number: 4, CodeCols: 400, ModBits: 2, BandwidthHz: 2500},
	5: {Number: 5, CodeCols: 360, ModBits: 2, BandwidthHz: 2250},
}

// ModeByNumber looks up a mode, erroring on anything outside [2,5].
func ModeByNumber(n int) (ModeParams, error) {
	m, ok := Modes[n]
	if !ok {
		return ModeParams{}, fmt.Errorf("ofdm: unsupported operation mode %d (want 2-5)", n)
	}
	return m, nil
}
