// Package gen writes input files for the bigcalc report command: a fixed set
// of limb-boundary values followed by random decimal strings.
package gen

import (
	"bufio"
	"io"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// DefaultMaxDigits is the longest random line written when Options.MaxDigits
// is zero.
const DefaultMaxDigits = 1000

// Options configure Write.
type Options struct {
	// Count is the number of random lines written after the boundary values.
	Count int

	// MaxDigits is the largest number of digits in a random line. Lengths are
	// uniformly distributed in [1, MaxDigits].
	MaxDigits int

	// Seed seeds the generator; the same seed always produces the same file.
	Seed int64
}

// Boundary returns the fixed values written at the start of every file. They
// sit on either side of the 18-digit limb boundary.
func Boundary() []string {
	nines17 := strings.Repeat("9", 17)
	nines18 := strings.Repeat("9", 18)
	pow18 := "1" + strings.Repeat("0", 18)
	return []string{
		"0", "1", "-1", "001",
		nines17, "-" + nines17,
		nines18, "-" + nines18,
		pow18, "-" + pow18,
	}
}

// Write writes the boundary values and opts.Count random lines to w. It
// returns the number of lines written.
func Write(w io.Writer, opts Options) (lines int, err error) {
	if opts.Count < 0 {
		return 0, errors.Errorf("gen: negative count %d", opts.Count)
	}
	maxDigits := opts.MaxDigits
	if maxDigits == 0 {
		maxDigits = DefaultMaxDigits
	} else if maxDigits < 0 {
		return 0, errors.Errorf("gen: negative max digits %d", maxDigits)
	}

	bw := bufio.NewWriter(w)
	for _, s := range Boundary() {
		bw.WriteString(s)
		bw.WriteByte('\n')
		lines++
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	var line []byte
	for i := 0; i < opts.Count; i++ {
		line = appendRandom(line[:0], rng, maxDigits)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return lines, errors.Wrap(err, "gen: write failed")
		}
		lines++
	}

	if err := bw.Flush(); err != nil {
		return lines, errors.Wrap(err, "gen: flush failed")
	}
	return lines, nil
}

// appendRandom appends a random sign and between 1 and maxDigits random
// digits. Leading zeros are allowed.
func appendRandom(buf []byte, rng *rand.Rand, maxDigits int) []byte {
	if rng.Intn(2) == 1 {
		buf = append(buf, '-')
	}
	n := 1 + rng.Intn(maxDigits)
	for j := 0; j < n; j++ {
		buf = append(buf, byte('0'+rng.Intn(10)))
	}
	return buf
}
