package num

type RandSource interface {
	Uint64() uint64
}

// DifferenceInt returns the magnitude of a - b, i.e. the smaller of a and b
// subtracted from the larger.
func DifferenceInt(a, b Int) Int {
	if a.GreaterThan(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerInt(a, b Int) Int {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerInt(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}
