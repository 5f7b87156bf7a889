/*
Package num provides Int, an arbitrary-precision signed decimal integer
supporting addition, subtraction, multiplication, comparison, and exact
conversion to and from decimal text.

Int is a value type; all operations return new values.

Simple example:

	a, _ := IntFromString("123456789012345678901234567890")
	fmt.Println(a.Mul(IntFrom64(2)))
	// Output: 246913578024691357802469135780

The magnitude is stored as a little-endian slice of uint64 limbs, each holding
18 decimal digits (base 10^18). The base is the widest power of ten for which
a limb sum plus carry, and a limb times a decimal digit plus carry, both fit in
a uint64, so carries and borrows are propagated with plain 64-bit arithmetic.

Int can be created from a variety of sources:

	IntFromString(s string) (out Int, err error)
	IntFrom64(v int64) Int
	IntFrom32(v int32) Int
	IntFromInt(v int) Int
	IntFromU64(v uint64) Int
	IntFromRaw(neg bool, limbs []uint64) (out Int, inRange bool)
	IntFromBigInt(v *big.Int) Int

Operators map to methods. The pure forms never modify their operands; the
compound forms modify the receiver and return it for chaining:

	a + b   a.Add(b)            a += b   a.AddAssign(b)
	a - b   a.Sub(b)            a -= b   a.SubAssign(b)
	a * b   a.Mul(b)            a *= b   a.MulAssign(b)
	-a      a.Neg()
	a < b   a.LessThan(b)       a <= b   a.LessOrEqualTo(b)
	a > b   a.GreaterThan(b)    a >= b   a.GreaterOrEqualTo(b)
	a == b  a.Equal(b)          a != b   a.NotEqual(b)

Zero never carries a sign: "-0" parses to 0 and no operation yields -0.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter (decimal verbs only)
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
