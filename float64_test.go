package swfloat

import (
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func f64(raw uint64) Float64 { return Float64FromBits(raw) }

func isnan64(f float64) bool { return f != f }

func TestFloat64HardwareParity(t *testing.T) {
	for i := 0; i < fuzzIterations; i++ {
		a := math.Float64frombits(RandBitPattern(globalRNG, 64))
		b := math.Float64frombits(RandBitPattern(globalRNG, 64))
		if isnan64(a) || isnan64(b) {
			continue
		}
		fa, fb := Float64FromFloat64(a), Float64FromFloat64(b)

		checkParity64(t, "add", a, b, a+b, fa.Add(fb))
		checkParity64(t, "sub", a, b, a-b, fa.Sub(fb))
		checkParity64(t, "mul", a, b, a*b, fa.Mul(fb))
		if b != 0 {
			checkParity64(t, "quo", a, b, a/b, fa.Quo(fb))
		}
	}
}

func checkParity64(t *testing.T, op string, a, b, want float64, got Float64) {
	tt := assert.WrapTB(t)
	wantRaw := math.Float64bits(want)
	if isnan64(want) {
		tt.MustAssert(got.IsNaN(), "%s(%v,%v): want NaN, got %s", op, a, b, got)
		return
	}
	tt.MustEqual(wantRaw, got.Bits(), "%s(%v,%v): want 0x%016X got %s", op, a, b, wantRaw, got)
}

func TestFloat64HostRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < fuzzIterations; i++ {
		raw := RandBitPattern(globalRNG, 64)
		native := math.Float64frombits(raw)
		if isnan64(native) {
			continue
		}
		got := Float64FromFloat64(native).AsFloat64()
		tt.MustEqual(native, got)
	}
}

func TestFloat64WidenNarrowViaFloat32(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < fuzzIterations; i++ {
		raw := uint32(RandBitPattern(globalRNG, 32))
		f32v := f32(raw)
		if f32v.IsNaN() {
			continue
		}
		back := f32v.AsFloat64().AsFloat32()
		tt.MustEqual(f32v.Bits(), back.Bits(), "widen/narrow round trip for 0x%08X", raw)
	}
}

func TestFloat64IntegerRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, n := range []int64{0, 1, -1, 1 << 40, -(1 << 40), 1<<53 - 1, -(1 << 53)} {
		tt.MustEqual(n, Float64FromInt64(n).ToInt64(OverflowPortable), "n=%d", n)
	}
}

func TestFloat64SignLaws(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < fuzzIterations; i++ {
		x := f64(RandBitPattern(globalRNG, 64))
		if x.IsNaN() {
			continue
		}
		tt.MustEqual(x.Bits(), x.Neg().Neg().Bits())

		y := f64(RandBitPattern(globalRNG, 64))
		if y.IsNaN() || x.IsZero() || y.IsZero() {
			continue
		}
		prod := x.Mul(y)
		wantNeg := (x.Sign() < 0) != (y.Sign() < 0)
		tt.MustEqual(wantNeg, prod.Sign() < 0, "sign(x*y) == sign(x) XOR sign(y)")
	}
}

func TestFloat64CommutativityOfAddAndMul(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < fuzzIterations; i++ {
		a := f64(RandBitPattern(globalRNG, 64))
		b := f64(RandBitPattern(globalRNG, 64))
		if a.IsNaN() || b.IsNaN() {
			continue
		}
		tt.MustEqual(a.Add(b).Bits(), b.Add(a).Bits())
		tt.MustEqual(a.Mul(b).Bits(), b.Mul(a).Bits())
	}
}

func TestFloat64FromStringErrors(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := Float64FromString("3.5")
	tt.MustOK(err)
	tt.MustEqual(3.5, v.AsFloat64())

	_, err = Float64FromString("not-a-number")
	tt.MustAssert(err != nil, "expected parse error")
}

func TestFloat64MarshalJSONRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 200; i++ {
		x := Float64FromFloat64(math.Float64frombits(RandBitPattern(globalRNG, 64)))
		if x.IsNaN() {
			continue
		}
		bts, err := x.MarshalJSON()
		tt.MustOK(err)
		var out Float64
		tt.MustOK(out.UnmarshalJSON(bts))
		tt.MustEqual(x.Bits(), out.Bits(), "round trip of %s via %s", x, string(bts))
	}
}
