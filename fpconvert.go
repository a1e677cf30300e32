package swfloat

// This file implements spec §4.2.7 (width conversion) and §4.2.8
// (integer<->float conversion), format-generic exactly like fparith.go.

// widen converts a raw bit pattern from a narrower format to a wider one
// (S_from < S_to). Every case is exact: no precision is lost widening, so
// no rounding is ever needed.
func widen(from, to fpFormat, raw uint64) uint64 {
	p := from.decompose(raw)
	shift := to.S - from.S

	switch p.class {
	case fpZero:
		return to.packZero(p.sign)
	case fpInfinity:
		return to.packInfinity(p.sign)
	case fpNaN:
		return to.packNaN(p.sign, p.sig<<shift)
	case fpSubnormal:
		exp, sig := normalizeSubnormalSig(from, p.exp, p.sig)
		sig <<= shift
		if exp < to.emin() {
			return to.packSubnormal(p.sign, sig>>uint(to.emin()-exp))
		}
		return to.packNormal(p.sign, exp, sig)
	default: // fpNormal
		return to.packNormal(p.sign, p.exp, p.sig<<shift)
	}
}

// narrow converts a raw bit pattern from a wider format to a narrower one
// (S_from > S_to), per spec §4.2.7: shift the trailing bits right to form
// the round-off word, then apply the usual overflow/underflow/round rules.
func narrow(from, to fpFormat, raw uint64) uint64 {
	p := from.decompose(raw)
	shift := from.S - to.S

	switch p.class {
	case fpZero:
		return to.packZero(p.sign)
	case fpInfinity:
		return to.packInfinity(p.sign)
	case fpNaN:
		return to.packNaN(p.sign, p.sig>>shift)
	}

	exp, sig := normalizeSubnormalSig(from, p.exp, p.sig)
	sig, round := alignRight(sig, shift, to.W)

	if exp > to.emax() {
		return to.packInfinity(p.sign)
	}
	if exp < to.emin() {
		drift := uint(to.emin() - exp)
		sig2, round2 := alignRight(sig, drift, to.W)
		if round != 0 {
			round2 |= 1
		}
		sig, round = sig2, round2
		exp = to.emin()
		if sig == 0 && round == 0 {
			return to.packZero(p.sign)
		}
		return to.finishRound(p.sign, exp, sig, round, true)
	}
	return to.finishRound(p.sign, exp, sig, round, false)
}

// integerToFloat implements spec §4.2.8's Integer->Float direction: the
// shared path behind every FloatNNFromIntNN/FromUintNN constructor.
func integerToFloat(f fpFormat, neg bool, mag uint64) uint64 {
	var sign uint64
	if neg {
		sign = 1
	}
	if mag == 0 {
		return f.packZero(sign)
	}
	index, _ := reverseBitScan64(mag)
	if int64(index) > f.emax() {
		return f.packInfinity(sign)
	}

	var sig, round uint64
	if index > f.S {
		sig, round = alignRight(mag, index-f.S, f.W)
	} else {
		sig = mag << (f.S - index)
	}

	exp := int64(index)
	subnormal := exp == f.emin() && sig&f.implicitBit() == 0
	return f.finishRound(sign, exp, sig, round, subnormal)
}

// OverflowMode selects the sentinel behaviour of Float->Integer conversion
// on NaN, Infinity, or a magnitude that does not fit the target type, per
// spec §4.2.8 and §9's design note. OverflowIntel matches the x86
// CVTTSS2SI/CVTTSD2SI family (the spec's EMULATE_INTEL build flag,
// expressed here as an ordinary typed parameter rather than a build tag --
// see DESIGN.md). OverflowPortable instead clamps towards the nearest
// representable bound.
type OverflowMode int

const (
	OverflowIntel OverflowMode = iota
	OverflowPortable
)

// convertToInt implements spec §4.2.8's Float->Integer direction as a
// single generic routine parameterized by target width and signedness;
// every FloatNN.ToIntNN/ToUintNN method is a thin wrapper around this that
// truncates the returned bit pattern to its own width.
func (f fpFormat) convertToInt(raw uint64, width uint, signed bool, mode OverflowMode) uint64 {
	maxU := uint64(1)<<width - 1
	// minS/maxS are computed regardless of signed: OverflowIntel's unsigned
	// 64-bit sentinel reuses the same INT64_MIN bit pattern as signed 64-bit.
	maxS := int64(1)<<(width-1) - 1
	minS := -maxS - 1

	// dir: -1 too negative (or -Infinity), +1 too positive (or +Infinity), 0 NaN.
	sentinel := func(dir int) uint64 {
		if mode == OverflowPortable {
			if !signed {
				if dir <= 0 {
					return 0
				}
				return maxU
			}
			switch dir {
			case -1:
				return uint64(minS) & maxU
			case 1:
				return uint64(maxS)
			default:
				return 0
			}
		}
		// OverflowIntel: 0 for sub-32-bit widths, 0 for unsigned 32-bit
		// (matching C's unsigned int), INT_MIN/INT64_MIN bit pattern
		// otherwise -- including unsigned 64-bit, which shares the signed
		// sentinel since there is no wider unsigned-32 special case for it.
		if width < 32 || (!signed && width == 32) {
			return 0
		}
		return uint64(minS) & maxU
	}

	p := f.decompose(raw)
	switch p.class {
	case fpNaN:
		return sentinel(0)
	case fpInfinity:
		if p.sign == 1 {
			return sentinel(-1)
		}
		return sentinel(1)
	case fpZero, fpSubnormal:
		return 0
	}

	if p.exp < 0 {
		return 0
	}

	var mag uint64
	overflowed := false
	if uint64(p.exp) < uint64(f.S) {
		mag = p.sig >> (f.S - uint(p.exp))
	} else {
		shift := uint(p.exp) - f.S
		if shift >= 64 {
			overflowed = true
		} else {
			mag = p.sig << shift
			if mag>>shift != p.sig {
				overflowed = true
			}
		}
	}
	if overflowed {
		if p.sign == 1 {
			return sentinel(-1)
		}
		return sentinel(1)
	}

	if !signed {
		if p.sign == 1 {
			return sentinel(-1)
		}
		if mag > maxU {
			return sentinel(1)
		}
		return mag
	}

	if p.sign == 1 {
		if mag > uint64(maxS)+1 {
			return sentinel(-1)
		}
		return (^mag + 1) & maxU
	}
	if mag > uint64(maxS) {
		return sentinel(1)
	}
	return mag
}
