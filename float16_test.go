package swfloat

import (
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func f16(raw uint16) Float16 { return Float16FromBits(raw) }

func TestFloat16SeedScenarios(t *testing.T) {
	tt := assert.WrapTB(t)

	one := Float16FromFloat32(Float32FromFloat32(1.0))
	three := Float16FromFloat32(Float32FromFloat32(3.0))
	tt.MustEqual(uint16(0x3555), one.Quo(three).Bits())

	tt.MustAssert(Float16FromInt64(1 << 40).IsInfinity())
}

func TestFloat16HardwareParity(t *testing.T) {
	for i := 0; i < fuzzIterations; i++ {
		raw16a := uint16(RandBitPattern(globalRNG, 16))
		raw16b := uint16(RandBitPattern(globalRNG, 16))
		a, b := f16(raw16a), f16(raw16b)
		if a.IsNaN() || b.IsNaN() {
			continue
		}

		wantAdd := Float32FromFloat32(a.AsFloat32().AsFloat32() + b.AsFloat32().AsFloat32())
		checkParity16(t, "add", raw16a, raw16b, Float16FromFloat32(wantAdd), a.Add(b))

		wantSub := Float32FromFloat32(a.AsFloat32().AsFloat32() - b.AsFloat32().AsFloat32())
		checkParity16(t, "sub", raw16a, raw16b, Float16FromFloat32(wantSub), a.Sub(b))

		wantMul := Float32FromFloat32(a.AsFloat32().AsFloat32() * b.AsFloat32().AsFloat32())
		checkParity16(t, "mul", raw16a, raw16b, Float16FromFloat32(wantMul), a.Mul(b))

		if !b.IsZero() {
			wantQuo := Float32FromFloat32(a.AsFloat32().AsFloat32() / b.AsFloat32().AsFloat32())
			checkParity16(t, "quo", raw16a, raw16b, Float16FromFloat32(wantQuo), a.Quo(b))
		}
	}
}

func checkParity16(t *testing.T, op string, a, b uint16, want, got Float16) {
	tt := assert.WrapTB(t)
	if want.IsNaN() {
		tt.MustAssert(got.IsNaN(), "%s(0x%04X,0x%04X): want NaN, got %s", op, a, b, got)
		return
	}
	tt.MustEqual(want.Bits(), got.Bits(), "%s(0x%04X,0x%04X): want %s got %s", op, a, b, want, got)
}

func TestFloat16WidenNarrowRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for raw := 0; raw < 1<<16; raw++ {
		f := f16(uint16(raw))
		if f.IsNaN() {
			continue
		}
		roundTripped := f.AsFloat32().AsFloat32()
		back := Float16FromFloat32(Float32FromFloat32(roundTripped))
		tt.MustEqual(f.Bits(), back.Bits(), "round trip of 0x%04X", raw)
	}
}

func TestFloat16IntegerRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, n := range []int64{0, 1, -1, 100, -100, 1<<11 - 1, -(1 << 11)} {
		tt.MustEqual(n, Float16FromInt64(n).ToInt64(OverflowPortable), "n=%d", n)
	}
}

func TestFloat16ComparisonConsistency(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < fuzzIterations; i++ {
		a := f16(uint16(RandBitPattern(globalRNG, 16)))
		b := f16(uint16(RandBitPattern(globalRNG, 16)))

		if a.IsNaN() || b.IsNaN() {
			tt.MustAssert(!a.LessThan(b) && !a.GreaterThan(b) && !a.Equal(b))
			continue
		}
		tt.MustEqual(a.LessThan(b) || a.Equal(b), a.LessOrEqualTo(b))
	}
}

func TestFloat16NaNPropagation(t *testing.T) {
	tt := assert.WrapTB(t)
	nan := Float16FromBits(0x7E00)
	sum := nan.Add(Float16FromInt64(3))
	tt.MustEqual(nan.Bits(), sum.Bits())
}

func TestFloat16IndeterminateNaNEncoding(t *testing.T) {
	tt := assert.WrapTB(t)
	nan := Float16IndeterminateNaN()
	tt.MustEqual(uint16(0xFE00), nan.Bits())

	inf := Float16Infinity(false)
	tt.MustAssert(inf.Sub(inf).IsNaN(), "Inf - Inf must be the indeterminate NaN")
	tt.MustEqual(nan.Bits(), inf.Sub(inf).Bits())
}
