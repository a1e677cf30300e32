package swfloat

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func i128s(s string) Int128 {
	out, acc, err := Int128FromString(s)
	if err != nil {
		panic(err)
	}
	if !acc {
		panic(fmt.Errorf("swfloat: inaccurate int128 %s", s))
	}
	return out
}

func TestInt128Neg(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(Int128From64(-5).Equal(Int128From64(5).Neg()))
	tt.MustAssert(MinInt128.Equal(MinInt128.Neg()), "MinInt128 negation is a two's complement overflow")
}

func TestInt128QuoRemTruncates(t *testing.T) {
	tt := assert.WrapTB(t)
	q, r := Int128From64(-7).QuoRem(Int128From64(2))
	tt.MustAssert(Int128From64(-3).Equal(q), "q=%s", q)
	tt.MustAssert(Int128From64(-1).Equal(r), "r=%s", r)
}

func TestInt128DivideByZeroPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		tt.MustAssert(recover() != nil, "expected panic")
	}()
	Int128From64(1).Quo(zeroInt128)
}

// randSignedInt128 draws a value from [-MaxInt128, MaxInt128] using
// globalRNG: a non-negative RandInt128, negated half the time. It never
// returns MinInt128.
func randSignedInt128() Int128 {
	v := RandInt128(globalRNG)
	if globalRNG.Uint64()&1 == 1 {
		v = v.Neg()
	}
	return v
}

func TestInt128FuzzArith(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < fuzzIterations; i++ {
		a, b := randSignedInt128(), randSignedInt128()
		if a.Equal(MinInt128) || b.Equal(MinInt128) {
			continue // Neg() of MinInt128 is the one deliberate non-bijective case
		}
		ab, bb := a.AsBigInt(), b.AsBigInt()

		sum := simulateInt128Wrap(new(big.Int).Add(ab, bb))
		tt.MustEqual(sum.String(), a.Add(b).AsBigInt().String(), "add %s+%s", a, b)

		diff := simulateInt128Wrap(new(big.Int).Sub(ab, bb))
		tt.MustEqual(diff.String(), a.Sub(b).AsBigInt().String(), "sub %s-%s", a, b)

		if !b.IsZero() {
			q, r := a.QuoRem(b)
			tt.MustEqual(new(big.Int).Quo(ab, bb).String(), q.AsBigInt().String(), "quo %s/%s", a, b)
			tt.MustEqual(new(big.Int).Rem(ab, bb).String(), r.AsBigInt().String(), "rem %s%%%s", a, b)
		}

		tt.MustEqual(ab.Cmp(bb), a.Cmp(b), "cmp %s,%s", a, b)
	}
}

var (
	bigWrapI128Over  = bigs("170141183460469231731687303715884105728")  // 2^127
	bigWrapI128Under = bigs("-170141183460469231731687303715884105728") // -2^127
	bigWrapI128Mod   = bigs("340282366920938463463374607431768211456")  // 2^128
)

func simulateInt128Wrap(v *big.Int) *big.Int {
	if v.Cmp(bigWrapI128Over) >= 0 {
		return new(big.Int).Sub(v, bigWrapI128Mod)
	}
	if v.Cmp(bigWrapI128Under) < 0 {
		return new(big.Int).Add(v, bigWrapI128Mod)
	}
	return v
}

func TestInt128MarshalRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 200; i++ {
		v := randSignedInt128()
		bts, err := v.MarshalText()
		tt.MustOK(err)
		var out Int128
		tt.MustOK(out.UnmarshalText(bts))
		tt.MustAssert(v.Equal(out), "%s != %s", v, out)
	}
}
