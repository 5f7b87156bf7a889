package num

// addLimbs returns the normalized sum of the magnitudes x and y.
func addLimbs(x, y limbs) limbs {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(limbs, len(x)+1)

	var carry uint64
	for i, yi := range y {
		s := x[i] + yi + carry // at most 2*maxLimb + 1
		if s > maxLimb {
			s, carry = s-limbBase, 1
		} else {
			carry = 0
		}
		z[i] = s
	}
	for i := len(y); i < len(x); i++ {
		s := x[i] + carry
		if s > maxLimb {
			s, carry = s-limbBase, 1
		} else {
			carry = 0
		}
		z[i] = s
	}
	z[len(x)] = carry

	return z.norm()
}

// subLimbs returns the normalized difference x - y of the magnitudes x and y.
// x must be >= y.
func subLimbs(x, y limbs) limbs {
	z := make(limbs, len(x))

	var borrow uint64
	for i, xi := range x {
		var yi uint64
		if i < len(y) {
			yi = y[i]
		}
		if xi < yi+borrow {
			z[i], borrow = limbBase-(yi+borrow-xi), 1
		} else {
			z[i], borrow = xi-yi-borrow, 0
		}
	}
	if borrow != 0 || len(y) > len(x) {
		panic("num: magnitude underflow in subtraction")
	}

	return z.norm()
}

// mulSmall returns x*m for 0 <= m <= 10. Each step computes at most
// 10*maxLimb + 9, which fits in a uint64.
func mulSmall(x limbs, m uint64) limbs {
	if m > 10 {
		panic("num: multiplier out of range")
	}
	z := make(limbs, len(x)+1)

	var carry uint64
	for i, xi := range x {
		p := xi*m + carry
		z[i], carry = p%limbBase, p/limbBase
	}
	z[len(x)] = carry

	return z.norm()
}

// shl10 returns x*10^p: whole limbs are moved for every limbDigits places,
// the remainder is done by repeated multiplication by ten with carry.
func shl10(x limbs, p uint) limbs {
	if x.isZero() {
		return zeroLimbs
	}

	nw, s := p/limbDigits, p%limbDigits
	z := x
	if nw > 0 {
		z = make(limbs, uint(len(x))+nw)
		copy(z[nw:], x)
	}
	for ; s > 0; s-- {
		z = mulSmall(z, 10)
	}
	return z
}
