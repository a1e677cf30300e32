package swfloat

// This file implements spec §4.2.9. Ordering exploits the standard
// IEEE-754 property that, excluding NaN, comparing the non-sign bits of
// two same-format packed values as plain unsigned integers reproduces
// magnitude order exactly -- biased exponent dominates, ties broken by
// the trailing significand, infinity sorting above every finite value and
// zero sorting at the bottom -- so no decomposition is needed beyond a
// NaN check.

func (f fpFormat) isNaNRaw(raw uint64) bool {
	biased := (raw >> f.S) & f.expAllOnes()
	trailing := raw & f.sigMask()
	return biased == f.expAllOnes() && trailing != 0
}

func (f fpFormat) eq(araw, braw uint64) bool {
	if f.isNaNRaw(araw) || f.isNaNRaw(braw) {
		return false
	}
	if araw == braw {
		return true
	}
	return araw&^f.signBit() == 0 && braw&^f.signBit() == 0
}

func (f fpFormat) lt(araw, braw uint64) bool {
	if f.isNaNRaw(araw) || f.isNaNRaw(braw) {
		return false
	}
	signA := araw >> (f.W - 1) & 1
	signB := braw >> (f.W - 1) & 1
	magA := araw &^ f.signBit()
	magB := braw &^ f.signBit()

	if magA == 0 && magB == 0 {
		return false
	}
	if signA != signB {
		return signA == 1
	}
	if signA == 1 {
		return magA > magB
	}
	return magA < magB
}

func (f fpFormat) le(araw, braw uint64) bool { return f.lt(araw, braw) || f.eq(araw, braw) }
func (f fpFormat) gt(araw, braw uint64) bool { return f.lt(braw, araw) }
func (f fpFormat) ge(araw, braw uint64) bool { return f.le(braw, araw) }
