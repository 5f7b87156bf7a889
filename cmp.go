package num

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
// Operands of different sign are ordered by sign alone; otherwise the
// magnitudes are compared and the result inverted for negative operands.
func (i Int) Cmp(n Int) int {
	if i.neg != n.neg {
		if i.neg {
			return -1
		}
		return 1
	}
	c := i.mag().cmp(n.mag())
	if i.neg {
		return -c
	}
	return c
}

// Equal reports whether i and n have the same sign, the same number of limbs
// and pairwise equal limbs.
func (i Int) Equal(n Int) bool {
	if i.neg != n.neg {
		return false
	}
	x, y := i.mag(), n.mag()
	if len(x) != len(y) {
		return false
	}
	for k := len(x) - 1; k >= 0; k-- {
		if x[k] != y[k] {
			return false
		}
	}
	return true
}

func (i Int) NotEqual(n Int) bool         { return !i.Equal(n) }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }
