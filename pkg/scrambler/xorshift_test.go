package scrambler

import "testing"

func TestApplyIsInvolution(t *testing.T) {
	payload := make([]byte, 5380)
	for i := range payload {
		payload[i] = byte(i * 7)
	}
	orig := append([]byte(nil), payload...)

	New().Apply(payload)
	if string(payload) == string(orig) {
		t.Fatal("scrambling should change the payload")
	}
	New().Apply(payload)
	if string(payload) != string(orig) {
		t.Fatal("applying the scrambler twice should recover the original payload")
	}
}

func TestDeterministic(t *testing.T) {
	a := make([]byte, 64)
	b := make([]byte, 64)
	New().Apply(a)
	New().Apply(b)
	if string(a) != string(b) {
		t.Fatal("two fresh scramblers should produce identical streams")
	}
}

func TestResetMatchesFreshGenerator(t *testing.T) {
	x := New()
	for i := 0; i < 100; i++ {
		x.Next()
	}
	x.Reset()
	fresh := New()
	for i := 0; i < 10; i++ {
		if x.Next() != fresh.Next() {
			t.Fatal("Reset should restore the documented initial state")
		}
	}
}
