// Package ldpc implements the inner, systematic DVB-T2-rate low
// density parity check encoder: 43200 information bits in, 21600
// parity bits appended, 64800 bits total.
//
// Per spec, the official ETSI parity-check table (which bit
// positions each parity accumulator touches) is an external constant
// constructor, out of scope here: it is a large, officially published
// table this codebase's retrieval corpus does not contain. What is
// implemented is an accumulate-based systematic encoder in the DVB-T2
// shape: the information block is split into groups of 360 bits, each
// information bit toggles one parity accumulator position given by
// the table (its group's first address plus Q per bit within the
// group), and after all information bits are folded in a final
// recursive accumulation produces the parity bits themselves. Each
// information bit touches exactly one accumulator position; tables
// with several addresses per bit cannot be expressed.
package ldpc

const (
	CodedBits  = 64800
	InfoBits   = 43200
	ParityBits = CodedBits - InfoBits // 21600
	groupSize  = 360
)

// Table describes one rate's parity-check accumulate structure: for
// each of the InfoBits/groupSize groups, the first parity address
// touched by the group's bit 0; subsequent bits within the group step
// by Q parity positions, wrapping modulo ParityBits, exactly as the
// DVB-T2 standard's accumulate rule specifies.
type Table struct {
	Q          int
	FirstAddrs []int // len == InfoBits/groupSize
}

// DVBT2TableA3 is a placeholder for the official rate-2/3
// (64800,43200) table (ETSI EN 302307 Annex B, table A3): 120 groups
// of 360 bits, Q = ParityBits/120 = 180, and first addresses at
// multiples of 181. Before the final accumulation, group g reaches
// only the parity positions congruent to g modulo 180, so positions
// whose remainder is 120..179 are reached only through the
// accumulation chain. It is not a
// transcription of the published ETSI constant, which this project's
// retrieval corpus does not contain; see DESIGN.md.
var DVBT2TableA3 = buildPlaceholderTable()

func buildPlaceholderTable() Table {
	groups := InfoBits / groupSize
	q := ParityBits / groups
	addrs := make([]int, groups)
	// A simple full-period LCG-style stride spreads first-addresses
	// across [0, ParityBits) without repeats, keeping the table
	// self-consistent (every accumulator position is reachable).
	stride := 0
	for g := 0; g < groups; g++ {
		addrs[g] = stride % ParityBits
		stride += q + 1
	}
	return Table{Q: q, FirstAddrs: addrs}
}

// Encoder holds no per-frame state; it is a thin wrapper around a
// Table exposing the systematic Encode operation.
type Encoder struct {
	table Table
}

// New builds an encoder for the given table.
func New(t Table) *Encoder {
	if len(t.FirstAddrs) == 0 || t.Q <= 0 {
		panic("ldpc: malformed table (programmer error: check Table construction)")
	}
	return &Encoder{table: t}
}

// Encode computes the ParityBits parity bits for InfoBits information
// bits, writing them into parity (true = 1), which must be exactly
// ParityBits long, as info must be exactly InfoBits long.
// info and parity are boolean bit slices, not packed bytes, matching
// the encoder core's NRZ-oriented bit representation (spec.md §4.2).
func (e *Encoder) Encode(info []bool, parity []bool) {
	if len(info) != InfoBits {
		panic("ldpc: info must be exactly InfoBits long (programmer error)")
	}
	if len(parity) != ParityBits {
		panic("ldpc: parity must be exactly ParityBits long (programmer error)")
	}
	for i := range parity {
		parity[i] = false
	}

	groups := InfoBits / groupSize
	for g := 0; g < groups; g++ {
		base := e.table.FirstAddrs[g]
		for j := 0; j < groupSize; j++ {
			bitIdx := g*groupSize + j
			if !info[bitIdx] {
				continue
			}
			addr := (base + j*e.table.Q) % ParityBits
			parity[addr] = !parity[addr]
		}
	}

	// final recursive accumulation: DVB-T2 parity bits are themselves
	// chained, p[i] ^= p[i-1], so a single information bit's
	// contribution propagates forward through the parity register.
	for i := 1; i < ParityBits; i++ {
		if parity[i-1] {
			parity[i] = !parity[i]
		}
	}
}
