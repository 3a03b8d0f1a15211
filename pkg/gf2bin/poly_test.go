package gf2bin

import "testing"

func TestDegree(t *testing.T) {
	if d := FromBits(0b1).Degree(); d != 0 {
		t.Fatalf("degree of 1 = %d, want 0", d)
	}
	if d := FromBits(0b101).Degree(); d != 2 {
		t.Fatalf("degree of 0b101 = %d, want 2", d)
	}
	if d := (Poly{}).Degree(); d != -1 {
		t.Fatalf("degree of empty poly = %d, want -1", d)
	}
}

func TestMulDegreeAdds(t *testing.T) {
	a := FromBits(0b1011) // degree 3
	b := FromBits(0b110)  // degree 2
	got := Mul(a, b)
	if got.Degree() != 5 {
		t.Fatalf("Mul degree = %d, want 5", got.Degree())
	}
}

func TestMulIsCommutative(t *testing.T) {
	a := FromBits(0b10011)
	b := FromBits(0b1101)
	ab := Mul(a, b)
	ba := Mul(b, a)
	if ab.Degree() != ba.Degree() {
		t.Fatal("Mul should be commutative")
	}
	for i := 0; i <= ab.Degree(); i++ {
		if ab.Bit(i) != ba.Bit(i) {
			t.Fatalf("bit %d differs between a*b and b*a", i)
		}
	}
}

func TestModRemainderDegreeLessThanDivisor(t *testing.T) {
	p := FromBits(0b110101011)
	g := FromBits(0b1011)
	r := Mod(p, g)
	if r.Degree() >= g.Degree() {
		t.Fatalf("remainder degree %d should be < divisor degree %d", r.Degree(), g.Degree())
	}
}

func TestModOfMultipleIsZero(t *testing.T) {
	g := FromBits(0b1011)
	p := Mul(g, FromBits(0b101))
	r := Mod(p, g)
	if r.Degree() != -1 {
		t.Fatalf("remainder of an exact multiple should be zero, got degree %d", r.Degree())
	}
}

func TestGeneratorMultipliesAllFactors(t *testing.T) {
	g := Generator(0b11, 0b111, 0b101)
	want := Mul(Mul(FromBits(0b11), FromBits(0b111)), FromBits(0b101))
	if g.Degree() != want.Degree() {
		t.Fatalf("Generator degree = %d, want %d", g.Degree(), want.Degree())
	}
	for i := 0; i <= want.Degree(); i++ {
		if g.Bit(i) != want.Bit(i) {
			t.Fatalf("bit %d differs from expected generator", i)
		}
	}
}

func TestBCHHeaderAndOuterFactorsMultiplyToExpectedDegree(t *testing.T) {
	header := []uint64{
		0b100011101, 0b101110111, 0b111110011, 0b101101001,
		0b110111101, 0b111100111, 0b100101011, 0b111010111,
		0b000010011, 0b101100101, 0b110001011, 0b101100011,
		0b100011011, 0b100111111, 0b110001101, 0b100101101,
		0b101011111, 0b111111001, 0b111000011, 0b100111001,
		0b110101001, 0b000011111, 0b110000111, 0b110110001,
	}
	if d := Generator(header...).Degree(); d != 184 {
		t.Fatalf("header generator degree = %d, want 184 (255-71)", d)
	}

	outer := []uint64{
		0b10000000000101101, 0b10000000101110011, 0b10000111110111101,
		0b10101101001010101, 0b10001111100101111, 0b11111011110110101,
		0b11010111101100101, 0b10111001101100111, 0b10000111010100001,
		0b10111010110100111,
	}
	if d := Generator(outer...).Degree(); d != 160 {
		t.Fatalf("outer generator degree = %d, want 160 (65535-65375)", d)
	}
}
