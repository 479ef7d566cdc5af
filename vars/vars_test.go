package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero("", "zero", "max"); v != "zero" {
		t.Fatalf("got %s", v)
	}
	if v := FirstNonZero(0, 0); v != 0 {
		t.Fatalf("got %d", v)
	}
	if v := FirstNonZero[int](); v != 0 {
		t.Fatalf("got %d", v)
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true": true,
		"Y":    true,
		" on ": true,
		"1":    true,
		"no":   false,
		"0":    false,
		"foo":  false,
	} {
		if StrToBool(str) != expected {
			t.Fatalf("%q: got %v", str, !expected)
		}
	}
}
