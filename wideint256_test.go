package swfloat

import (
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestUint256AsBigInt(t *testing.T) {
	tt := assert.WrapTB(t)
	u := Uint256FromRaw(Uint128From64(1), zeroUint128)
	want := new(big.Int).Lsh(big1, 128)
	tt.MustEqual(want.String(), u.AsBigInt().String())
}

func TestUint256AddSub(t *testing.T) {
	tt := assert.WrapTB(t)
	a := Uint256FromUint128(MaxUint128)
	b := Uint256FromUint128(Uint128From64(1))
	sum := a.Add(b)
	hi, lo := sum.Raw()
	tt.MustAssert(hi.Equal(Uint128From64(1)), "hi=%s", hi)
	tt.MustAssert(lo.IsZero(), "lo=%s", lo)
	tt.MustAssert(sum.Sub(b).Cmp(a) == 0)
}

func TestUint256ShiftRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 200; i++ {
		hi := RandUint128(globalRNG)
		lo := RandUint128(globalRNG)
		u := Uint256FromRaw(hi, lo)
		shift := uint(globalRNG.Intn(256))

		b := u.AsBigInt()

		left := u.Lsh(shift)
		wantLeft := new(big.Int).Lsh(b, shift)
		wantLeft.And(wantLeft, new(big.Int).Sub(new(big.Int).Lsh(big1, 256), big1))
		tt.MustEqual(wantLeft.String(), left.AsBigInt().String(), "lsh %d of %s", shift, u)

		right := u.Rsh(shift)
		wantRight := new(big.Int).Rsh(b, shift)
		tt.MustEqual(wantRight.String(), right.AsBigInt().String(), "rsh %d of %s", shift, u)
	}
}

func TestUint256ReverseBitScan(t *testing.T) {
	tt := assert.WrapTB(t)
	idx, ok := Uint256FromUint128(Uint128From64(1)).ReverseBitScan()
	tt.MustAssert(ok)
	tt.MustEqual(uint(0), idx)

	_, ok = Uint256{}.ReverseBitScan()
	tt.MustAssert(!ok, "zero value should have no highest bit")
}
