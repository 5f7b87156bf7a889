package num

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

type fuzzOp string

// This is the equivalent of passing -num.fuzziter=2000 to 'go test':
const fuzzDefaultIterations = 2000

// This is the equivalent of passing -num.fuzzdigits=120 to 'go test'. Long
// operands make Mul slow; raise it when hunting for carry bugs.
const fuzzDefaultDigits = 120

// These ops are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-num.fuzzop=add -num.fuzzop=sub', or you can
// use the short form '-num.fuzzop=add,sub,mul'.
//
// If you add a new op, search for the string 'NEWOP' in this file for all the
// places you need to update.
const (
	fuzzAbs              fuzzOp = "abs"
	fuzzAdd              fuzzOp = "add"
	fuzzAsInt64          fuzzOp = "asint64"
	fuzzCmp              fuzzOp = "cmp"
	fuzzDec              fuzzOp = "dec"
	fuzzEqual            fuzzOp = "equal"
	fuzzFromString       fuzzOp = "fromstring"
	fuzzGreaterOrEqualTo fuzzOp = "gte"
	fuzzGreaterThan      fuzzOp = "gt"
	fuzzInc              fuzzOp = "inc"
	fuzzLessOrEqualTo    fuzzOp = "lte"
	fuzzLessThan         fuzzOp = "lt"
	fuzzMul              fuzzOp = "mul"
	fuzzNeg              fuzzOp = "neg"
	fuzzString           fuzzOp = "string"
	fuzzSub              fuzzOp = "sub"
)

// allFuzzOps are active by default.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var allFuzzOps = []fuzzOp{
	fuzzAbs,
	fuzzAdd,
	fuzzAsInt64,
	fuzzCmp,
	fuzzDec,
	fuzzEqual,
	fuzzFromString,
	fuzzGreaterOrEqualTo,
	fuzzGreaterThan,
	fuzzInc,
	fuzzLessOrEqualTo,
	fuzzLessThan,
	fuzzMul,
	fuzzNeg,
	fuzzString,
	fuzzSub,
}

// classic rando!
type rando struct {
	operands  []*big.Int
	rng       *rand.Rand
	maxDigits int
}

func (r *rando) Operands() []*big.Int { return r.operands }

func (r *rando) Clear() {
	for i := range r.operands {
		r.operands[i] = nil
	}
	r.operands = r.operands[:0]
}

// samesies reports whether the second operand of a pair should repeat the
// first. Two random operands are almost never equal otherwise, which would
// leave the equal-magnitude paths of Cmp and Sub untested.
func (r *rando) samesies() bool {
	const samesiesChance = 0.05
	return r.rng.Float64() < samesiesChance
}

func (r *rando) BigInt() *big.Int {
	v := randomBigInt(r.rng, r.maxDigits)
	r.operands = append(r.operands, v)
	return v
}

func (r *rando) BigIntx2() (b1, b2 *big.Int) {
	b1 = r.BigInt()
	if r.samesies() {
		b2 = new(big.Int).Set(b1)
		if r.rng.Intn(2) == 1 {
			b2.Neg(b2) // same magnitude, opposite sign
		}
		r.operands = append(r.operands, b2)
	} else {
		b2 = r.BigInt()
	}
	return b1, b2
}

func checkEqualInt(u int, b int) error {
	if u != b {
		return fmt.Errorf("int(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualBool(u bool, b bool) error {
	if u != b {
		return fmt.Errorf("int(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualNum(i Int, b *big.Int) error {
	if i.String() != b.String() {
		return fmt.Errorf("int(%s) != big(%s)\n%s", i.String(), b.String(), spew.Sdump(i.Limbs()))
	}
	if _, raw := i.Raw(); len(raw) > 1 && raw[len(raw)-1] == 0 {
		return fmt.Errorf("int(%s) not normalized\n%s", i.String(), spew.Sdump(raw))
	}
	if i.IsZero() && i.neg {
		return fmt.Errorf("int(%s) is negative zero", i.String())
	}
	return nil
}

func accIntFromBigInt(b *big.Int) Int {
	i := IntFromBigInt(b)
	if i.String() != b.String() {
		panic(fmt.Errorf("num: inaccurate conversion to Int in fuzz tester for %s", b))
	}
	return i
}

func TestFuzz(t *testing.T) {
	// fuzzOpsActive comes from the -num.fuzzop flag, in TestMain:
	var runFuzzOps = fuzzOpsActive

	var source = &rando{rng: globalRNG, maxDigits: fuzzDigits} // Classic rando!
	var fuzzImpl = &fuzzInt{source: source}
	var totalFailures int

	var failures = make([]int, len(runFuzzOps))

	for opIdx, op := range runFuzzOps {
		for i := 0; i < fuzzIterations; i++ {
			source.Clear()

			var err error

			// NEWOP: add a new branch here in alphabetical order if a new
			// op is added.
			switch op {
			case fuzzAbs:
				err = fuzzImpl.Abs()
			case fuzzAdd:
				err = fuzzImpl.Add()
			case fuzzAsInt64:
				err = fuzzImpl.AsInt64()
			case fuzzCmp:
				err = fuzzImpl.Cmp()
			case fuzzDec:
				err = fuzzImpl.Dec()
			case fuzzEqual:
				err = fuzzImpl.Equal()
			case fuzzFromString:
				err = fuzzImpl.FromString()
			case fuzzGreaterOrEqualTo:
				err = fuzzImpl.GreaterOrEqualTo()
			case fuzzGreaterThan:
				err = fuzzImpl.GreaterThan()
			case fuzzInc:
				err = fuzzImpl.Inc()
			case fuzzLessOrEqualTo:
				err = fuzzImpl.LessOrEqualTo()
			case fuzzLessThan:
				err = fuzzImpl.LessThan()
			case fuzzMul:
				err = fuzzImpl.Mul()
			case fuzzNeg:
				err = fuzzImpl.Neg()
			case fuzzString:
				err = fuzzImpl.String()
			case fuzzSub:
				err = fuzzImpl.Sub()
			default:
				panic(fmt.Errorf("unsupported op %q", op))
			}

			if err != nil {
				failures[opIdx]++
				t.Logf("%s: %s\n", op.Print(source.Operands()...), err)
			}
		}
	}

	for opIdx, cnt := range failures {
		if cnt > 0 {
			totalFailures += cnt
			t.Logf("op %s: %d/%d failed", string(runFuzzOps[opIdx]), cnt, fuzzIterations)
		}
	}

	if totalFailures > 0 {
		t.Fail()
	}
}

func (op fuzzOp) Print(operands ...*big.Int) string {
	// NEWOP: please add a human-readale format for your op here; this is used
	// for reporting errors and should show the operation, i.e. "2 + 2".
	switch op {
	case fuzzAsInt64,
		fuzzFromString,
		fuzzString:
		s := strings.TrimRight(op.String(), "()")
		return fmt.Sprintf("%s(%d)", s, operands[0])

	case fuzzInc, fuzzDec:
		return fmt.Sprintf("%d%s", operands[0], op.String())

	case fuzzNeg:
		return fmt.Sprintf("%s%d", op.String(), operands[0])

	case fuzzAbs:
		return fmt.Sprintf("|%d|", operands[0])

	case fuzzAdd,
		fuzzCmp,
		fuzzEqual,
		fuzzGreaterOrEqualTo,
		fuzzGreaterThan,
		fuzzLessOrEqualTo,
		fuzzLessThan,
		fuzzMul,
		fuzzSub:

		// simple binary case:
		return fmt.Sprintf("%d %s %d", operands[0], op.String(), operands[1])

	default:
		return string(op)
	}
}

func (op fuzzOp) String() string {
	// NEWOP: please add a short string representation of this op, as if
	// the operands were in a sum (if that's possible)
	switch op {
	case fuzzAbs:
		return "|x|"
	case fuzzAdd:
		return "+"
	case fuzzAsInt64:
		return "int64()"
	case fuzzCmp:
		return "<=>"
	case fuzzDec:
		return "--"
	case fuzzEqual:
		return "=="
	case fuzzFromString:
		return "fromstring()"
	case fuzzGreaterThan:
		return ">"
	case fuzzGreaterOrEqualTo:
		return ">="
	case fuzzInc:
		return "++"
	case fuzzLessThan:
		return "<"
	case fuzzLessOrEqualTo:
		return "<="
	case fuzzMul:
		return "*"
	case fuzzNeg:
		return "-"
	case fuzzString:
		return "string()"
	case fuzzSub:
		return "-"
	default:
		return string(op)
	}
}

type fuzzInt struct {
	source *rando
}

func (f fuzzInt) Abs() error {
	b1 := f.source.BigInt()
	i1 := accIntFromBigInt(b1)
	return checkEqualNum(i1.Abs(), new(big.Int).Abs(b1))
}

func (f fuzzInt) Add() error {
	b1, b2 := f.source.BigIntx2()
	i1, i2 := accIntFromBigInt(b1), accIntFromBigInt(b2)
	return checkEqualNum(i1.Add(i2), new(big.Int).Add(b1, b2))
}

func (f fuzzInt) AsInt64() error {
	b1 := f.source.BigInt()
	i1 := accIntFromBigInt(b1)
	if err := checkEqualBool(i1.IsInt64(), b1.IsInt64()); err != nil {
		return err
	}
	// big.Int.Int64 is "undefined" out of range; wrap explicitly.
	wrapped := new(big.Int).And(b1, maxBigUint64)
	want := int64(wrapped.Uint64())
	if got := i1.AsInt64(); got != want {
		return fmt.Errorf("int(%d) != big(%d)", got, want)
	}
	return nil
}

func (f fuzzInt) Cmp() error {
	b1, b2 := f.source.BigIntx2()
	i1, i2 := accIntFromBigInt(b1), accIntFromBigInt(b2)
	return checkEqualInt(i1.Cmp(i2), b1.Cmp(b2))
}

func (f fuzzInt) Dec() error {
	b1 := f.source.BigInt()
	i1 := accIntFromBigInt(b1)
	return checkEqualNum(i1.Dec(), new(big.Int).Sub(b1, big1))
}

func (f fuzzInt) Equal() error {
	b1, b2 := f.source.BigIntx2()
	i1, i2 := accIntFromBigInt(b1), accIntFromBigInt(b2)
	return checkEqualBool(i1.Equal(i2), b1.Cmp(b2) == 0)
}

func (f fuzzInt) FromString() error {
	b1 := f.source.BigInt()
	s := b1.String()
	if f.source.rng.Intn(4) == 0 {
		// Redundant zeros and an explicit plus sign must not change the value.
		s = strings.Replace(s, "-", "-000", 1)
		if b1.Sign() >= 0 {
			s = "+00" + s
		}
	}
	i1, err := IntFromString(s)
	if err != nil {
		return err
	}
	return checkEqualNum(i1, b1)
}

func (f fuzzInt) GreaterThan() error {
	b1, b2 := f.source.BigIntx2()
	i1, i2 := accIntFromBigInt(b1), accIntFromBigInt(b2)
	return checkEqualBool(i1.GreaterThan(i2), b1.Cmp(b2) > 0)
}

func (f fuzzInt) GreaterOrEqualTo() error {
	b1, b2 := f.source.BigIntx2()
	i1, i2 := accIntFromBigInt(b1), accIntFromBigInt(b2)
	return checkEqualBool(i1.GreaterOrEqualTo(i2), b1.Cmp(b2) >= 0)
}

func (f fuzzInt) Inc() error {
	b1 := f.source.BigInt()
	i1 := accIntFromBigInt(b1)
	return checkEqualNum(i1.Inc(), new(big.Int).Add(b1, big1))
}

func (f fuzzInt) LessThan() error {
	b1, b2 := f.source.BigIntx2()
	i1, i2 := accIntFromBigInt(b1), accIntFromBigInt(b2)
	return checkEqualBool(i1.LessThan(i2), b1.Cmp(b2) < 0)
}

func (f fuzzInt) LessOrEqualTo() error {
	b1, b2 := f.source.BigIntx2()
	i1, i2 := accIntFromBigInt(b1), accIntFromBigInt(b2)
	return checkEqualBool(i1.LessOrEqualTo(i2), b1.Cmp(b2) <= 0)
}

func (f fuzzInt) Mul() error {
	b1, b2 := f.source.BigIntx2()
	i1, i2 := accIntFromBigInt(b1), accIntFromBigInt(b2)
	return checkEqualNum(i1.Mul(i2), new(big.Int).Mul(b1, b2))
}

func (f fuzzInt) Neg() error {
	b1 := f.source.BigInt()
	i1 := accIntFromBigInt(b1)
	return checkEqualNum(i1.Neg(), new(big.Int).Neg(b1))
}

func (f fuzzInt) String() error {
	b1 := f.source.BigInt()
	i1 := accIntFromBigInt(b1)
	if i1.String() != b1.String() {
		return fmt.Errorf("int(%s) != big(%s)", i1, b1)
	}
	if fmt.Sprint(i1) != b1.String() {
		return fmt.Errorf("fmt int(%v) != big(%s)", i1, b1)
	}
	return nil
}

func (f fuzzInt) Sub() error {
	b1, b2 := f.source.BigIntx2()
	i1, i2 := accIntFromBigInt(b1), accIntFromBigInt(b2)
	return checkEqualNum(i1.Sub(i2), new(big.Int).Sub(b1, b2))
}

// NEWOP: func (f fuzzInt) ...() error {}
