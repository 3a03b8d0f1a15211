package ldpc

import "testing"

func TestEncodeIsDeterministic(t *testing.T) {
	e := New(DVBT2TableA3)
	info := make([]bool, InfoBits)
	for i := range info {
		info[i] = i%7 == 0
	}
	p1 := make([]bool, ParityBits)
	p2 := make([]bool, ParityBits)
	e.Encode(info, p1)
	e.Encode(info, p2)
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("parity bit %d differs between two encodes of the same info", i)
		}
	}
}

func TestAllZeroInfoGivesAllZeroParity(t *testing.T) {
	e := New(DVBT2TableA3)
	info := make([]bool, InfoBits)
	parity := make([]bool, ParityBits)
	e.Encode(info, parity)
	for i, b := range parity {
		if b {
			t.Fatalf("parity bit %d set for an all-zero info block", i)
		}
	}
}

func TestSensitiveToInfoBits(t *testing.T) {
	e := New(DVBT2TableA3)
	infoA := make([]bool, InfoBits)
	infoB := make([]bool, InfoBits)
	infoB[0] = true

	pA := make([]bool, ParityBits)
	pB := make([]bool, ParityBits)
	e.Encode(infoA, pA)
	e.Encode(infoB, pB)

	same := true
	for i := range pA {
		if pA[i] != pB[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("flipping an information bit should change the parity")
	}
}

func TestTableShape(t *testing.T) {
	if len(DVBT2TableA3.FirstAddrs) != InfoBits/groupSize {
		t.Fatalf("expected %d groups, got %d", InfoBits/groupSize, len(DVBT2TableA3.FirstAddrs))
	}
	if DVBT2TableA3.Q <= 0 {
		t.Fatal("Q must be positive")
	}
}

func TestCodedBitsAccounting(t *testing.T) {
	if InfoBits+ParityBits != CodedBits {
		t.Fatalf("InfoBits+ParityBits = %d, want CodedBits = %d", InfoBits+ParityBits, CodedBits)
	}
}
