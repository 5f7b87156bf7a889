package num

import (
	"math/big"
)

const (
	// limbDigits is the number of decimal digits held by one limb. A limb
	// must survive two operations without leaving uint64:
	//
	//	2*maxLimb + 1  (add with carry)
	//	10*maxLimb + 9 (multiply by a digit or by ten, plus carry)
	//
	// 10^19 would fail the second, so 18 is the widest safe choice.
	limbDigits = 18

	limbBase = 1000000000000000000 // 10^limbDigits
	maxLimb  = limbBase - 1

	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	intSize = 32 << (^uint(0) >> 63)
)

// zeroPad is used to left-pad non-leading limbs when formatting.
const zeroPad = "000000000000000000"

var (
	bigLimbBase = new(big.Int).SetUint64(limbBase)
)
