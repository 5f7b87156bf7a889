package num

// Mul returns the product of two Ints. The result is negative only if exactly
// one operand is negative and neither is zero.
func (i Int) Mul(n Int) Int {
	return newInt(i.neg != n.neg, mulLimbs(i.mag(), n.mag()))
}

// MulAssign sets i to i * n and returns i.
func (i *Int) MulAssign(n Int) *Int {
	*i = i.Mul(n)
	return i
}

// mulLimbs multiplies x by y one decimal digit of y at a time: for the digit
// d at place p, x*d is shifted left by p decimal places and added to the
// running total.
func mulLimbs(x, y limbs) limbs {
	if x.isZero() || y.isZero() {
		return zeroLimbs
	}

	// x*d is needed at most once per digit value; keep them.
	var byDigit [10]limbs

	acc := zeroLimbs
	for p, d := range y.decimalDigits() {
		if d == 0 {
			continue
		}
		if byDigit[d] == nil {
			byDigit[d] = mulSmall(x, uint64(d))
		}
		acc = addLimbs(acc, shl10(byDigit[d], uint(p)))
	}
	return acc
}
