package constsystem

// Default folds the primitive operator set a CPS-IR consumer needs
// end-to-end: unary `-`/`!`, and binary `+ - * / % == != < <= > >= && ||`
// over int64, float64, bool and (for `+` and the equality operators only)
// string.
type Default struct {
	// Subtypes maps a type name to the set of type names it is a subtype
	// of (reflexively; callers need not list t as its own subtype). A nil
	// Subtypes makes IsSubtype report true only for identical names.
	Subtypes map[string][]string
}

func (d Default) LookupUnary(op string, v any) (any, bool) {
	switch op {
	case "-":
		switch x := v.(type) {
		case int64:
			return -x, true
		case float64:
			return -x, true
		}
	case "!":
		if x, ok := v.(bool); ok {
			return !x, true
		}
	}
	return nil, false
}

func (d Default) LookupBinary(op string, a, b any) (any, bool) {
	switch op {
	case "==":
		return primitiveEqual(a, b), true
	case "!=":
		return !primitiveEqual(a, b), true
	case "&&":
		ab, aok := a.(bool)
		bb, bok := b.(bool)
		if aok && bok {
			return ab && bb, true
		}
		return nil, false
	case "||":
		ab, aok := a.(bool)
		bb, bok := b.(bool)
		if aok && bok {
			return ab || bb, true
		}
		return nil, false
	case "+":
		if as, aok := a.(string); aok {
			if bs, bok := b.(string); bok {
				return as + bs, true
			}
			return nil, false
		}
	}
	return foldNumeric(op, a, b)
}

func primitiveEqual(a, b any) bool {
	an, aNum := toFloat(a)
	bn, bNum := toFloat(b)
	if aNum && bNum {
		return an == bn
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// foldNumeric handles the remaining arithmetic and ordering operators over
// int64/float64 pairs, preserving int64 when both operands are int64 (and
// the operator isn't division, which always yields a double per the
// lattice's own numeric tower).
func foldNumeric(op string, a, b any) (any, bool) {
	ai, aIsInt := a.(int64)
	bi, bIsInt := b.(int64)
	if aIsInt && bIsInt {
		switch op {
		case "+":
			return ai + bi, true
		case "-":
			return ai - bi, true
		case "*":
			return ai * bi, true
		case "%":
			if bi == 0 {
				return nil, false
			}
			return ai % bi, true
		case "/":
			if bi == 0 {
				return nil, false
			}
			return float64(ai) / float64(bi), true
		case "<":
			return ai < bi, true
		case "<=":
			return ai <= bi, true
		case ">":
			return ai > bi, true
		case ">=":
			return ai >= bi, true
		}
		return nil, false
	}

	af, aOk := toFloat(a)
	bf, bOk := toFloat(b)
	if !aOk || !bOk {
		return nil, false
	}
	switch op {
	case "+":
		return af + bf, true
	case "-":
		return af - bf, true
	case "*":
		return af * bf, true
	case "/":
		if bf == 0 {
			return nil, false
		}
		return af / bf, true
	case "%":
		return nil, false
	case "<":
		return af < bf, true
	case "<=":
		return af <= bf, true
	case ">":
		return af > bf, true
	case ">=":
		return af >= bf, true
	}
	return nil, false
}

func (d Default) IsSubtype(sub, sup string) bool {
	if sub == sup {
		return true
	}
	for _, s := range d.Subtypes[sub] {
		if s == sup {
			return true
		}
	}
	return false
}
