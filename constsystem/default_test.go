package constsystem

import "testing"

func TestLookupBinaryArithmetic(t *testing.T) {
	d := Default{}

	tests := []struct {
		op       string
		a, b     any
		expected any
	}{
		{"+", int64(1), int64(2), int64(3)},
		{"-", int64(5), int64(2), int64(3)},
		{"*", int64(3), int64(4), int64(12)},
		{"%", int64(7), int64(3), int64(1)},
		{"/", int64(7), int64(2), float64(3.5)},
		{"+", 1.5, 2.5, 4.0},
		{"+", "ab", "cd", "abcd"},
		{"==", int64(2), int64(2), true},
		{"==", int64(2), 2.0, true},
		{"!=", int64(2), int64(3), true},
		{"<", int64(1), int64(2), true},
		{">=", 3.0, 3.0, true},
		{"&&", true, false, false},
		{"||", true, false, true},
	}

	for _, test := range tests {
		res, ok := d.LookupBinary(test.op, test.a, test.b)
		if !ok {
			t.Errorf("LookupBinary(%q, %v, %v) = not ok, expected %v", test.op, test.a, test.b, test.expected)
			continue
		}
		if res != test.expected {
			t.Errorf("LookupBinary(%q, %v, %v) = %v, expected %v", test.op, test.a, test.b, res, test.expected)
		}
	}
}

func TestLookupBinaryDivisionByZeroIsUnfoldable(t *testing.T) {
	d := Default{}

	if _, ok := d.LookupBinary("/", int64(1), int64(0)); ok {
		t.Error("LookupBinary(\"/\", 1, 0) folded, expected unfoldable")
	}
}

func TestLookupUnary(t *testing.T) {
	d := Default{}

	if res, ok := d.LookupUnary("-", int64(4)); !ok || res != int64(-4) {
		t.Errorf("LookupUnary(\"-\", 4) = %v, %v, expected -4, true", res, ok)
	}
	if res, ok := d.LookupUnary("!", true); !ok || res != false {
		t.Errorf("LookupUnary(\"!\", true) = %v, %v, expected false, true", res, ok)
	}
	if _, ok := d.LookupUnary("-", "x"); ok {
		t.Error("LookupUnary(\"-\", \"x\") folded, expected unfoldable")
	}
}

func TestIsSubtype(t *testing.T) {
	d := Default{Subtypes: map[string][]string{
		"int":    {"num", "Object"},
		"double": {"num", "Object"},
	}}

	if !d.IsSubtype("int", "num") {
		t.Error("expected int <: num")
	}
	if !d.IsSubtype("int", "int") {
		t.Error("expected int <: int (reflexive)")
	}
	if d.IsSubtype("string", "num") {
		t.Error("expected string not<: num")
	}
}
