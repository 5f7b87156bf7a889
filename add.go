package num

// addSigned returns the sum of two signed magnitudes. Every combination of
// signs resolves to exactly one magnitude addition or subtraction:
//
//	(+x) + (+y) =  (x + y)        (-x) + (-y) = -(x + y)
//	(+x) + (-y) =  (x - y) if x >= y, else -(y - x)
//	(-x) + (+y) = -(x - y) if x >= y, else  (y - x)
//
// Subtraction is addition with the sign of the second operand flipped.
func addSigned(xneg bool, x limbs, yneg bool, y limbs) Int {
	if xneg == yneg {
		return newInt(xneg, addLimbs(x, y))
	}
	switch x.cmp(y) {
	case 0:
		return Int{}
	case 1:
		return newInt(xneg, subLimbs(x, y))
	default:
		return newInt(yneg, subLimbs(y, x))
	}
}

func (i Int) Add(n Int) Int {
	return addSigned(i.neg, i.mag(), n.neg, n.mag())
}

func (i Int) Sub(n Int) Int {
	return addSigned(i.neg, i.mag(), !n.neg, n.mag())
}

func (i Int) Inc() Int { return i.Add(one) }
func (i Int) Dec() Int { return i.Sub(one) }

var one = IntFromU64(1)

// AddAssign sets i to i + n and returns i, so calls can be chained:
//
//	x.AddAssign(y).SubAssign(z)
//
func (i *Int) AddAssign(n Int) *Int {
	*i = i.Add(n)
	return i
}

// SubAssign sets i to i - n and returns i.
func (i *Int) SubAssign(n Int) *Int {
	*i = i.Sub(n)
	return i
}
