package lattice

import "testing"

func intJoin(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func TestJoinNothingIsIdentity(t *testing.T) {
	c := Constant[int](3, 1)

	if res := Join(Nothing[int](), c, intJoin); !res.Equal(c) {
		t.Errorf("Nothing ⊔ %s = %s, expected %s", c, res, c)
	}
	if res := Join(c, Nothing[int](), intJoin); !res.Equal(c) {
		t.Errorf("%s ⊔ Nothing = %s, expected %s", c, res, c)
	}
}

func TestJoinEqualConstantsStayConstant(t *testing.T) {
	a := Constant[int]("x", 1)
	b := Constant[int]("x", 1)

	res := Join(a, b, intJoin)
	if !res.IsConstant() {
		t.Errorf("%s ⊔ %s = %s, expected a Constant", a, b, res)
	}
}

func TestJoinDifferentConstantsCollapseToNonConst(t *testing.T) {
	a := Constant[int](1, 1)
	b := Constant[int](2, 2)

	res := Join(a, b, intJoin)
	if !res.IsNonConst() {
		t.Errorf("%s ⊔ %s = %s, expected NonConst", a, b, res)
	}
	if res.Type() != 2 {
		t.Errorf("join type = %d, expected %d", res.Type(), 2)
	}
}

func TestJoinWithNonConstIsAbsorbing(t *testing.T) {
	nc := NonConstant[int](1)
	c := Constant[int](5, 1)

	res := Join(nc, c, intJoin)
	if !res.IsNonConst() {
		t.Errorf("%s ⊔ %s = %s, expected NonConst", nc, c, res)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b     Value[int]
		expected bool
	}{
		{Nothing[int](), Nothing[int](), true},
		{Nothing[int](), NonConstant[int](1), false},
		{Constant[int](1, 1), Constant[int](1, 1), true},
		{Constant[int](1, 1), Constant[int](2, 1), false},
		{Constant[int](1, 1), Constant[int](1, 2), false},
		{NonConstant[int](1), NonConstant[int](1), true},
		{NonConstant[int](1), NonConstant[int](2), false},
		{Constant[int](1, 1), NonConstant[int](1), false},
	}

	for _, test := range tests {
		if res := test.a.Equal(test.b); res != test.expected {
			t.Errorf("%s.Equal(%s) = %v, expected %v", test.a, test.b, res, test.expected)
		}
	}
}
