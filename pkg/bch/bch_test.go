package bch

import (
	"testing"

	"ofdmwave/pkg/bitops"
)

func TestParityBitsPositive(t *testing.T) {
	e := New(DVBT2Header)
	if e.ParityBits() <= 0 {
		t.Fatal("expected a positive parity width")
	}
	e2 := New(DVBT2Outer)
	if e2.ParityBits() <= 0 {
		t.Fatal("expected a positive parity width")
	}
}

func TestAllZeroMessageGivesAllZeroParity(t *testing.T) {
	e := New(DVBT2Header)
	msg := make([]byte, 9) // 71 bits fits in 9 bytes
	parity := make([]byte, (e.ParityBits()+7)/8)
	e.EncodeLE(msg, 71, parity)
	for i, b := range parity {
		if b != 0 {
			t.Fatalf("byte %d of parity for an all-zero message is %#x, want 0", i, b)
		}
	}
}

func TestDeterministic(t *testing.T) {
	e := New(DVBT2Header)
	msg := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04, 0x05}
	p1 := make([]byte, (e.ParityBits()+7)/8)
	p2 := make([]byte, (e.ParityBits()+7)/8)
	e.EncodeLE(msg, 71, p1)
	e.EncodeLE(msg, 71, p2)
	if string(p1) != string(p2) {
		t.Fatal("encoding the same message twice produced different parity")
	}
}

func TestSensitiveToMessageBits(t *testing.T) {
	e := New(DVBT2Header)
	msgA := make([]byte, 9)
	msgB := make([]byte, 9)
	msgB[0] = 1

	pA := make([]byte, (e.ParityBits()+7)/8)
	pB := make([]byte, (e.ParityBits()+7)/8)
	e.EncodeLE(msgA, 71, pA)
	e.EncodeLE(msgB, 71, pB)
	if string(pA) == string(pB) {
		t.Fatal("flipping a message bit should change the parity")
	}
}

func TestShortenedEncodeMatchesExplicitZeroPadding(t *testing.T) {
	e := New(DVBT2Outer)
	dataBits := 43040
	msg := make([]byte, dataBits/8)
	for i := range msg {
		msg[i] = byte(i * 31)
	}

	// Shortening drops the high-order message positions, which the
	// encoder would feed first, so the explicit zeros go in front.
	padded := make([]byte, e.params.K/8+1)
	pad := e.params.K - dataBits
	for i := 0; i < dataBits; i++ {
		bitops.SetLEBit(padded, pad+i, bitops.GetLEBit(msg, i))
	}

	pShort := make([]byte, (e.ParityBits()+7)/8)
	pPadded := make([]byte, (e.ParityBits()+7)/8)
	e.EncodeLE(msg, dataBits, pShort)
	e.EncodeLE(padded, e.params.K, pPadded)

	if string(pShort) != string(pPadded) {
		t.Fatal("shortened encoding should equal encoding with explicit zero padding")
	}
}
