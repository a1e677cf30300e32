package swfloat

import (
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestFloat128DecomposeRecomposeRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 500; i++ {
		v := Float128{Hi: globalRNG.Uint64(), Lo: globalRNG.Uint64()}
		p := v.Decompose()
		back := Float128Recompose(p)
		tt.MustEqual(v, back, "round trip of {%#x,%#x}", v.Hi, v.Lo)
	}
}

func TestFloat128ZeroInfinityNaNClasses(t *testing.T) {
	tt := assert.WrapTB(t)

	zero := Float128Recompose(format128Parts{class: fpZero})
	tt.MustAssert(zero.Decompose().class == fpZero)

	inf := Float128Recompose(format128Parts{class: fpInfinity, sign: 1})
	p := inf.Decompose()
	tt.MustAssert(p.class == fpInfinity)
	tt.MustEqual(uint64(1), p.sign)

	nan := Float128Recompose(format128Parts{class: fpNaN})
	tt.MustAssert(nan.Decompose().isNaN())
}
