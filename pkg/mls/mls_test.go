package mls

import "testing"

func TestPeriod(t *testing.T) {
	// mls0_poly from the reference encoder, degree 7, period 127.
	s := New(0b10001001)
	first := make([]bool, 127)
	for i := range first {
		first[i] = s.Next()
	}
	// after exactly one period the sequence must repeat.
	for i := 0; i < 127; i++ {
		if got := s.Next(); got != first[i] {
			t.Fatalf("bit %d did not repeat after one period", i)
		}
	}
}

func TestResetMatchesFreshSequence(t *testing.T) {
	s := New(0b100101011)
	for i := 0; i < 50; i++ {
		s.Next()
	}
	s.Reset()
	fresh := New(0b100101011)
	for i := 0; i < 255; i++ {
		if s.Next() != fresh.Next() {
			t.Fatalf("bit %d diverged after Reset", i)
		}
	}
}

func TestNRZMapping(t *testing.T) {
	s := New(0b10001001)
	fresh := New(0b10001001)
	for i := 0; i < 10; i++ {
		bit := fresh.Next()
		nrz := s.NRZ()
		if bit && nrz != -1 {
			t.Errorf("bit %d: expected NRZ -1 for true, got %v", i, nrz)
		}
		if !bit && nrz != 1 {
			t.Errorf("bit %d: expected NRZ +1 for false, got %v", i, nrz)
		}
	}
}

func TestNeverStalls(t *testing.T) {
	s := New(0b100101010001)
	seenNonZero := false
	for i := 0; i < 4095; i++ {
		if s.Next() {
			seenNonZero = true
		}
	}
	if !seenNonZero {
		t.Fatal("sequence appears to have collapsed to all-zero state")
	}
}
