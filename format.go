package num

import (
	"fmt"
	"strconv"
)

func (i Int) String() string {
	return string(i.Append(make([]byte, 0, i.Digits()+1)))
}

// Append appends the decimal representation of i to buf and returns the
// extended buffer. Zero is always "0", without a sign.
func (i Int) Append(buf []byte) []byte {
	m := i.mag()
	if i.neg && !m.isZero() {
		buf = append(buf, '-')
	}
	return m.appendDecimal(buf)
}

// appendDecimal appends the most significant limb unpadded, followed by every
// other limb left-padded with zeros to exactly limbDigits digits.
func (x limbs) appendDecimal(buf []byte) []byte {
	top := len(x) - 1
	buf = strconv.AppendUint(buf, x[top], 10)

	var scratch [limbDigits]byte
	for k := top - 1; k >= 0; k-- {
		d := strconv.AppendUint(scratch[:0], x[k], 10)
		buf = append(buf, zeroPad[:limbDigits-len(d)]...)
		buf = append(buf, d...)
	}
	return buf
}

// Format implements fmt.Formatter. Only the decimal verbs 'd', 's' and 'v'
// are supported, with the '+', ' ', '-' and '0' flags, width, and precision
// (minimum number of digits, as for big.Int). Other verbs print an error
// string in the style of package fmt.
func (i Int) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(num.Int=%s)", c, i.String())
		return
	}

	var sign string
	switch {
	case i.Sign() < 0:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	digits := i.mag().appendDecimal(nil)

	// precision pads the digits themselves; %.0d of zero prints nothing, as
	// for the builtin integers.
	var zeros int
	if prec, ok := s.Precision(); ok {
		if len(digits) < prec {
			zeros = prec - len(digits)
		} else if prec == 0 && len(digits) == 1 && digits[0] == '0' {
			digits = digits[:0]
		}
	}

	length := len(sign) + zeros + len(digits)
	var padding int
	if width, ok := s.Width(); ok && length < width {
		padding = width - length
	}

	switch {
	case s.Flag('-'):
		writeMany(s, sign, 0, "0")
		writeMany(s, "", zeros, "0")
		s.Write(digits)
		writeMany(s, "", padding, " ")
	case s.Flag('0') && !hasPrecision(s):
		writeMany(s, sign, padding+zeros, "0")
		s.Write(digits)
	default:
		writeMany(s, "", padding, " ")
		writeMany(s, sign, zeros, "0")
		s.Write(digits)
	}
}

func hasPrecision(s fmt.State) bool {
	_, ok := s.Precision()
	return ok
}

// writeMany writes prefix followed by n copies of pad.
func writeMany(s fmt.State, prefix string, n int, pad string) {
	if prefix != "" {
		s.Write([]byte(prefix))
	}
	for ; n > 0; n-- {
		s.Write([]byte(pad))
	}
}

func (i Int) MarshalText() ([]byte, error) {
	return i.Append(nil), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	buf := append(make([]byte, 0, i.Digits()+3), '"')
	buf = i.Append(buf)
	return append(buf, '"'), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: int invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
