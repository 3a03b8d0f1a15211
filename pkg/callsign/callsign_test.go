package callsign

import "testing"

func TestEncodeKnownValues(t *testing.T) {
	zero, err := Encode("")
	if err != nil || zero != 0 {
		t.Fatalf("Encode(\"\") = %d, %v; want 0, nil", zero, err)
	}

	a, err := Encode("A")
	if err != nil || a != 11 {
		t.Fatalf(`Encode("A") = %d, %v; want 11, nil`, a, err)
	}

	digit, err := Encode("0")
	if err != nil || digit != 1 {
		t.Fatalf(`Encode("0") = %d, %v; want 1, nil`, digit, err)
	}
}

func TestEncodeAllSpacesIsZero(t *testing.T) {
	v, err := Encode("     ")
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Fatalf("Encode of all spaces = %d, want 0", v)
	}
	if Valid(v) {
		t.Fatal("value 0 must not be Valid")
	}
}

func TestEncodeRejectsInvalidCharacter(t *testing.T) {
	if _, err := Encode("AB!C"); err == nil {
		t.Fatal("expected an error for '!'")
	}
}

func TestEncodeIsCaseInsensitive(t *testing.T) {
	lower, err := Encode("anonymous")
	if err != nil {
		t.Fatal(err)
	}
	upper, err := Encode("ANONYMOUS")
	if err != nil {
		t.Fatal(err)
	}
	if lower != upper {
		t.Fatalf("Encode case mismatch: %d != %d", lower, upper)
	}
}

func TestValidRange(t *testing.T) {
	if Valid(0) {
		t.Fatal("0 must not be valid")
	}
	if !Valid(1) {
		t.Fatal("1 must be valid")
	}
	if Valid(Limit) {
		t.Fatal("Limit itself must not be valid")
	}
	if !Valid(Limit - 1) {
		t.Fatal("Limit-1 must be valid")
	}
}

func TestLimitIs37Pow9(t *testing.T) {
	want := int64(1)
	for i := 0; i < 9; i++ {
		want *= 37
	}
	if Limit != want {
		t.Fatalf("Limit = %d, want %d", Limit, want)
	}
}
