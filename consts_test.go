package num

import (
	"math/big"
)

var (
	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64 = new(big.Int).SetUint64(maxUint64)
	maxBigInt64  = new(big.Int).SetInt64(maxInt64)
	minBigInt64  = new(big.Int).SetInt64(minInt64)

	// wrapBigU64 is 1 << 64:
	wrapBigU64, _ = new(big.Int).SetString("18446744073709551616", 10)
)
