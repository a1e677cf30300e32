package swfloat

// Float128 is a structural placeholder for IEEE-754 binary128: 1 sign
// bit, 15 exponent bits, 112 trailing significand bits. It supports
// decomposition (which classifies the value) and repacking only: it has no
// arithmetic, no hex/triplet diagnostics and no formatting or marshalling
// methods -- a 112-bit significand needs a genuine 128x128 -> 256 bit
// product, which is why Uint256 exists in this module even though nothing
// else in binary16/32/64 arithmetic needs it. The Hi/Lo fields and the
// Decompose/Float128Recompose round trip exist to exercise that structural
// piece.
type Float128 struct {
	Hi uint64
	Lo uint64
}

func float128Raw(v Float128) Uint128 { return Uint128FromRaw(v.Hi, v.Lo) }

func (f format128Parts) isNaN() bool { return f.class == fpNaN }

// format128Parts mirrors fpParts but carries a full 128-bit trailing
// significand instead of the uint64 that suffices for binary16/32/64.
type format128Parts struct {
	class fpClass
	sign  uint64
	exp   int64
	sig   Uint128
}

const (
	float128W    = 128
	float128E    = 15
	float128S    = 112
	float128Bias = 16383
)

func float128ExpAllOnes() uint64 { return 1<<float128E - 1 }

func float128SigMask() Uint128 {
	// 112 one-bits at the bottom of a 128-bit word.
	return Uint128FromRaw(1<<(float128S-64)-1, maxUint64)
}

func float128ImplicitBit() Uint128 {
	return Uint128FromRaw(1<<(float128S-64), 0)
}

// Decompose splits a Float128 into its IEEE-754 fields, the 128-bit
// analogue of fpFormat.decompose.
func (v Float128) Decompose() format128Parts {
	raw := float128Raw(v)
	sign := raw.Rsh(float128W - 1).AsUint64() & 1
	biased := raw.Rsh(float128S).AsUint64() & float128ExpAllOnes()
	trailing := raw.And(float128SigMask())

	switch {
	case biased == 0 && trailing.IsZero():
		return format128Parts{class: fpZero, sign: sign}
	case biased == 0:
		return format128Parts{class: fpSubnormal, sign: sign, exp: 1 - float128Bias, sig: trailing}
	case biased == float128ExpAllOnes() && trailing.IsZero():
		return format128Parts{class: fpInfinity, sign: sign}
	case biased == float128ExpAllOnes():
		return format128Parts{class: fpNaN, sign: sign, sig: trailing}
	default:
		sig := trailing.Or(float128ImplicitBit())
		return format128Parts{class: fpNormal, sign: sign, exp: int64(biased) - float128Bias, sig: sig}
	}
}

// Recompose is the inverse of Decompose: given the same field triplet it
// produces, it reconstructs the original packed value exactly.
func Float128Recompose(p format128Parts) Float128 {
	var raw Uint128
	switch p.class {
	case fpZero:
		raw = zeroUint128
	case fpInfinity:
		raw = Uint128FromRaw(float128ExpAllOnes()<<(float128S-64), 0)
	case fpNaN:
		sig := p.sig
		if sig.IsZero() {
			sig = Uint128FromRaw(1<<(float128S-64-1), 0)
		}
		raw = Uint128FromRaw(float128ExpAllOnes()<<(float128S-64), 0).Or(sig)
	case fpSubnormal:
		raw = p.sig.And(float128SigMask())
	default:
		biased := uint64(p.exp + float128Bias)
		raw = Uint128FromRaw(biased<<(float128S-64), 0).Or(p.sig.And(float128SigMask()))
	}
	if p.sign == 1 {
		raw = raw.Or(Uint128FromRaw(1<<(float128W-1-64), 0))
	}
	hi, lo := raw.Raw()
	return Float128{Hi: hi, Lo: lo}
}
