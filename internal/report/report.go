// Package report prints the comparison and arithmetic walkthrough that the
// bigcalc report command produces for a list of integers.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	num "github.com/shabbyrobe/go-bignum"
)

const (
	rule      = "-------------------------------------------\n"
	groupRule = "---------------Next Group-----------------\n"
)

// Summary describes a completed report.
type Summary struct {
	Values    int
	Groups    int
	MaxDigits int
}

func (s Summary) String() string {
	return fmt.Sprintf("%s values, %s groups, largest operand %s digits",
		humanize.Comma(int64(s.Values)),
		humanize.Comma(int64(s.Groups)),
		humanize.Comma(int64(s.MaxDigits)))
}

// Write prints one group for every value that has a neighbour on both sides,
// followed by a summary line. Fewer than three values produce no groups.
// values is not modified. The first write error stops output and is returned.
func Write(w io.Writer, values []num.Int) (Summary, error) {
	ew := &errWriter{w: w}
	sum := Summary{Values: len(values)}

	for _, v := range values {
		if d := v.Digits(); d > sum.MaxDigits {
			sum.MaxDigits = d
		}
	}

	for i := 1; i+1 < len(values) && ew.err == nil; i++ {
		writeGroup(ew, values[i-1], values[i], values[i+1])
		sum.Groups++
	}

	ew.printf("%s\n", sum)
	return sum, ew.err
}

func writeGroup(ew *errWriter, prev, cur, next num.Int) {
	ew.question(cur, ">", next, cur.GreaterThan(next))
	ew.question(cur, ">=", next, cur.GreaterOrEqualTo(next))
	ew.question(cur, "<", prev, cur.LessThan(prev))
	ew.question(cur, "<=", prev, cur.LessOrEqualTo(prev))

	work := cur
	ew.printf("%d\n+=\n%d\nThe answer:\n", work, next)
	work.AddAssign(next)
	ew.printf("%d\n%s", work, rule)

	ew.printf("%d\n-=\n%d\nThe answer:\n", work, next)
	work.SubAssign(next)
	ew.printf("%d\n%s", work, rule)

	ew.binary(cur, "+", prev, cur.Add(prev), rule)
	ew.binary(cur, "-", prev, cur.Sub(prev), rule)
	ew.binary(cur, "*", prev, cur.Mul(prev), groupRule)
}

// errWriter remembers the first write error and drops everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) question(x num.Int, op string, y num.Int, answer bool) {
	ew.printf("If\n%d\n%s %d?\nThe answer: %t\n%s", x, op, y, answer, rule)
}

func (ew *errWriter) binary(x num.Int, op string, y, result num.Int, end string) {
	ew.printf("%d\n%s\n%d\n=\n%d\n%s", x, op, y, result, end)
}
