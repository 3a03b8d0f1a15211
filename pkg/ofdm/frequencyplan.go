package ofdm

// FrequencyPlan carries the bin offsets every frame-building step
// anchors its subcarriers around, all derived once from the requested
// frequency offset in Hz and the mode's code width.
type FrequencyPlan struct {
	Offset  int
	CodeOff int
	MLS0Off int
	MLS1Off int
}

// NewFrequencyPlan mirrors original_source/encode.cc's constructor:
// offset = (freq_off*symbol_len)/rate, then code_off/mls0_off/mls1_off
// centered on it.
func NewFrequencyPlan(freqOffHz, rate int, geom Geometry, mode ModeParams) FrequencyPlan {
	offset := (freqOffHz * geom.SymbolLen) / rate
	return FrequencyPlan{
		Offset:  offset,
		CodeOff: offset - mode.CodeCols/2,
		MLS0Off: offset - mls0Len + 1,
		MLS1Off: offset - mls1Len/2,
	}
}
