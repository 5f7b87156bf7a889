package num

// limbs is the magnitude of an Int, stored as a little-endian sequence of
// base-10^18 digits:
//
//	x = x[n-1]*limbBase^(n-1) + x[n-2]*limbBase^(n-2) + ... + x[1]*limbBase + x[0]
//
// with 0 <= x[i] < limbBase.
//
// A limbs value is normalized if it has no most-significant zero limbs. The
// normalized representation of 0 is exactly one zero limb. Intermediate
// results may be denormalized but are always normalized before they are
// stored in an Int.
//
// Limb storage reachable from an Int is never written to; every operation
// allocates its result.
type limbs []uint64

var zeroLimbs = limbs{0}

// norm truncates most-significant zero limbs, keeping at least one.
func (z limbs) norm() limbs {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return zeroLimbs
	}
	return z[:i]
}

func (x limbs) isZero() bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

func (x limbs) clone() limbs {
	z := make(limbs, len(x))
	copy(z, x)
	return z
}

// cmp compares the normalized magnitudes x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x limbs) cmp(y limbs) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}

	// Walk down from the top; i never leaves [0, m).
	for i := m - 1; i >= 0; i-- {
		if xi, yi := x[i], y[i]; xi != yi {
			if xi < yi {
				return -1
			}
			return 1
		}
	}
	return 0
}

// digits returns the number of decimal digits in the normalized magnitude x.
// Zero has one digit.
func (x limbs) digits() int {
	n := len(x)
	if n == 0 {
		return 1
	}
	return (n-1)*limbDigits + digits64(x[n-1])
}

// decimalDigits expands x into its decimal digits, least significant first.
// Every limb except the most significant contributes exactly limbDigits
// digits, so a digit's index is its place value.
func (x limbs) decimalDigits() []byte {
	out := make([]byte, 0, x.digits())
	top := len(x) - 1
	for i, w := range x {
		n := limbDigits
		if i == top {
			n = digits64(w)
		}
		for k := 0; k < n; k++ {
			out = append(out, byte(w%10))
			w /= 10
		}
	}
	return out
}

// digits64 returns the number of decimal digits needed to print x; 1 for 0.
func digits64(x uint64) (n int) {
	n = 1
	for x >= 10 {
		x /= 10
		n++
	}
	return n
}
