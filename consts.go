package swfloat

import "math/big"

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	maxUint64Float  = float64(maxUint64)     // (1<<64) - 1
	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	maxU128Float = float64(340282366920938463463374607431768211455)  // (1<<128) - 1
	maxI128Float = float64(170141183460469231731687303715884105727)  // (1<<127) - 1
	minI128Float = float64(-170141183460469231731687303715884105728) // -(1<<127)

	signBit64 = 0x8000000000000000
)

var (
	MaxUint128 = Uint128{hi: maxUint64, lo: maxUint64}
	MaxInt128  = Int128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinInt128  = Int128{hi: 0x8000000000000000, lo: 0}

	zeroUint128 Uint128
	zeroInt128  Int128
	zeroUint256 Uint256

	big1 = new(big.Int).SetInt64(1)

	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)

	// wrapBigU128 is 1 << 128. Nothing in the package references it; the
	// Uint128 fuzz tests mask with maxBigU128 instead.
	wrapBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211456", 10)
)
