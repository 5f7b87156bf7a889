package report

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	num "github.com/shabbyrobe/go-bignum"
	"github.com/shabbyrobe/go-bignum/internal/logging"
)

// MaxLineBytes is the longest input line Load accepts.
const MaxLineBytes = 1 << 20

// Load reads one decimal integer per line from r. Lines that are not valid
// integers are logged as warnings and skipped; skipped is the number of such
// lines. A trailing carriage return on a line is ignored. I/O errors, and
// lines longer than MaxLineBytes, abort the load.
func Load(r io.Reader, log *logging.Logger) (values []num.Int, skipped int, err error) {
	scn := bufio.NewScanner(r)
	scn.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	var line int
	for scn.Scan() {
		line++
		text := strings.TrimSuffix(scn.Text(), "\r")

		v, err := num.IntFromString(text)
		if err != nil {
			if !errors.Is(err, num.ErrInvalidFormat) {
				return values, skipped, err
			}
			log.Warn(errors.Wrapf(err, "line %d skipped", line))
			skipped++
			continue
		}
		log.Tracef("line %d: %d digits", line, v.Digits())
		values = append(values, v)
	}
	if err := scn.Err(); err != nil {
		return values, skipped, errors.Wrapf(err, "report: read failed after line %d", line)
	}

	log.Debugf("loaded %d values, skipped %d lines", len(values), skipped)
	return values, skipped, nil
}
