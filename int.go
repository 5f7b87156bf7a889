package num

import (
	"math/big"
)

// Int is an arbitrary-precision signed decimal integer.
//
// The zero value is 0. Int is a value type; operations return new values and
// never modify their operands, so copies of an Int are independent. The
// compound forms AddAssign, SubAssign and MulAssign replace their receiver.
//
// Zero is always non-negative: no constructor or operation produces -0.
type Int struct {
	neg   bool
	limbs limbs
}

// newInt wraps a normalized magnitude, clearing the sign of zero.
func newInt(neg bool, mag limbs) Int {
	if mag.isZero() {
		return Int{}
	}
	return Int{neg: neg, limbs: mag}
}

// mag returns the normalized magnitude of i.
func (i Int) mag() limbs {
	if len(i.limbs) == 0 {
		return zeroLimbs
	}
	return i.limbs
}

// IntFromRaw is the complement to Int.Raw(); it creates an Int from a sign and
// a little-endian sequence of base-10^18 limbs. The limbs are copied and
// normalized. If any limb is >= 10^18, the result is 0 and inRange is false.
func IntFromRaw(neg bool, raw []uint64) (out Int, inRange bool) {
	for _, w := range raw {
		if w > maxLimb {
			return out, false
		}
	}
	return newInt(neg, limbs(raw).clone().norm()), true
}

// IntFrom64 creates an Int from an int64. The true magnitude is stored, so
// math.MinInt64 is represented exactly.
func IntFrom64(v int64) Int {
	if v >= 0 {
		return IntFromU64(uint64(v))
	}
	// -v overflows for minInt64; the uint64 negation does not.
	return newInt(true, limbsFromU64(-uint64(v)))
}

func IntFrom32(v int32) Int { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int  { return IntFrom64(int64(v)) }

func IntFromU64(v uint64) Int { return newInt(false, limbsFromU64(v)) }

func limbsFromU64(v uint64) limbs {
	if v <= maxLimb {
		return limbs{v}
	}
	return limbs{v % limbBase, v / limbBase}
}

// IntFromBigInt creates an Int from a big.Int. The conversion is always exact.
func IntFromBigInt(v *big.Int) Int {
	if v.Sign() == 0 {
		return Int{}
	}

	var q, r big.Int
	q.Abs(v)

	z := make(limbs, 0, (q.BitLen()+59)/59)
	for q.Sign() > 0 {
		q.QuoRem(&q, bigLimbBase, &r)
		z = append(z, r.Uint64())
	}
	return newInt(v.Sign() < 0, z.norm())
}

// RandInt generates a non-negative random Int of at most digits decimal
// digits from an external source.
func RandInt(source RandSource, digits int) Int {
	if digits <= 0 {
		return Int{}
	}
	n := (digits + limbDigits - 1) / limbDigits
	z := make(limbs, n)
	for i := range z {
		z[i] = source.Uint64() % limbBase
	}
	if top := digits - (n-1)*limbDigits; top < limbDigits {
		z[n-1] %= pow10(top)
	}
	return newInt(false, z.norm())
}

func pow10(n int) uint64 {
	p := uint64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}

// Raw returns the sign and a copy of the little-endian base-10^18 limbs of
// i. See IntFromRaw() for the counterpart.
func (i Int) Raw() (neg bool, raw []uint64) {
	return i.neg, i.mag().clone()
}

// Limbs returns a copy of the magnitude's limbs, least significant first.
func (i Int) Limbs() []uint64 { return i.mag().clone() }

// Clone returns a copy of i that shares no storage with it.
func (i Int) Clone() Int {
	return Int{neg: i.neg, limbs: i.mag().clone()}
}

func (i Int) IsZero() bool { return i.mag().isZero() }

func (i Int) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

// Digits returns the number of decimal digits in the magnitude of i. Zero has
// one digit.
func (i Int) Digits() int { return i.mag().digits() }

// Neg returns -i. Neg(0) is 0.
func (i Int) Neg() Int {
	return newInt(!i.neg, i.mag())
}

func (i Int) Abs() Int {
	return Int{limbs: i.limbs}
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	m := i.mag()
	if len(m) > 2 || (len(m) == 2 && m[1] > 9) {
		return false
	}
	v := i.magUint64()
	if i.neg {
		return v <= -minInt64
	}
	return v <= maxInt64
}

// AsInt64 truncates the Int to fit in an int64. Values outside the range
// wrap modulo 2^64, as a Go conversion would. See IsInt64() if you want to
// check before you convert.
func (i Int) AsInt64() int64 {
	v := i.magUint64()
	if i.neg {
		return -int64(v)
	}
	return int64(v)
}

// magUint64 returns the magnitude of i modulo 2^64.
func (i Int) magUint64() (v uint64) {
	m := i.mag()
	for k := len(m) - 1; k >= 0; k-- {
		v = v*limbBase + m[k]
	}
	return v
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	var w big.Int
	m := i.mag()
	b.SetUint64(m[len(m)-1])
	for k := len(m) - 2; k >= 0; k-- {
		b.Mul(b, bigLimbBase)
		b.Add(b, w.SetUint64(m[k]))
	}
	if i.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}
