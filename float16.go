package swfloat

import (
	"fmt"
	"strconv"
)

// Float16 is a packed IEEE-754 binary16 value: 1 sign bit, 5 exponent
// bits, 10 trailing significand bits. Go has no native float16 type, so
// unlike Float32/Float64 there is no host-float round trip -- every
// conversion goes through Float32 or Float64.
type Float16 uint16

func Float16Zero(negative bool) Float16 {
	var sign uint64
	if negative {
		sign = 1
	}
	return Float16(format16.packZero(sign))
}

func Float16Infinity(negative bool) Float16 {
	var sign uint64
	if negative {
		sign = 1
	}
	return Float16(format16.packInfinity(sign))
}

// Float16IndeterminateNaN returns the one NaN this engine manufactures
// itself: sign=1, exponent all-ones, quiet bit set.
func Float16IndeterminateNaN() Float16 {
	return Float16(format16.packIndeterminateNaN())
}

func Float16Subnormal(negative bool, sig uint16) Float16 {
	var sign uint64
	if negative {
		sign = 1
	}
	return Float16(format16.packSubnormal(sign, uint64(sig)))
}

// Float16Normal builds a Normal value directly from its unbiased exponent
// and a significand that already has the implicit leading 1 set at bit 10.
// Calling this with exp outside [-14, 15] or a significand missing/doubling
// that bit is a programming error, per spec §4.2.2.
func Float16Normal(negative bool, exp int, sig uint16) Float16 {
	var sign uint64
	if negative {
		sign = 1
	}
	return Float16(format16.packNormal(sign, int64(exp), uint64(sig)))
}

// Float16FromTriplet is the general inverse of decompose: it builds a
// Normal value from the same (sign, unbiased-exponent, significand) triplet
// ToTripletString prints. It is a thin alias over Float16Normal -- the
// spec lists normal(...) and from_triplet(...) as separate factories, but
// nothing distinguishes their behaviour once the significand already
// carries the implicit bit.
func Float16FromTriplet(negative bool, exp int, sig uint16) Float16 {
	return Float16Normal(negative, exp, sig)
}

func Float16FromBits(raw uint16) Float16 { return Float16(raw) }

func (f Float16) Bits() uint16 { return uint16(f) }

func (f Float16) IsNaN() bool      { return format16.decompose(uint64(f)).isNaN() }
func (f Float16) IsInfinity() bool { return format16.decompose(uint64(f)).isInfinity() }
func (f Float16) IsZero() bool     { return format16.decompose(uint64(f)).isZero() }
func (f Float16) Sign() int {
	if uint16(f)&0x8000 != 0 {
		return -1
	}
	return 1
}

func (f Float16) Neg() Float16 { return Float16(floatNegateRaw(format16, uint64(f))) }

func (f Float16) Add(n Float16) Float16 { return Float16(format16.add(uint64(f), uint64(n))) }
func (f Float16) Sub(n Float16) Float16 { return Float16(format16.sub(uint64(f), uint64(n))) }
func (f Float16) Mul(n Float16) Float16 { return Float16(format16.mul(uint64(f), uint64(n))) }
func (f Float16) Quo(n Float16) Float16 { return Float16(format16.quo(uint64(f), uint64(n))) }

func (f Float16) Equal(n Float16) bool            { return format16.eq(uint64(f), uint64(n)) }
func (f Float16) LessThan(n Float16) bool         { return format16.lt(uint64(f), uint64(n)) }
func (f Float16) LessOrEqualTo(n Float16) bool    { return format16.le(uint64(f), uint64(n)) }
func (f Float16) GreaterThan(n Float16) bool      { return format16.gt(uint64(f), uint64(n)) }
func (f Float16) GreaterOrEqualTo(n Float16) bool { return format16.ge(uint64(f), uint64(n)) }

func (f Float16) AsFloat32() Float32 { return Float32(widen(format16, format32, uint64(f))) }
func (f Float16) AsFloat64() Float64 { return Float64(widen(format16, format64, uint64(f))) }

func Float16FromFloat32(v Float32) Float16 { return Float16(narrow(format32, format16, uint64(v))) }
func Float16FromFloat64(v Float64) Float16 { return Float16(narrow(format64, format16, uint64(v))) }

// Float16FromString parses a decimal string via the host float32 parser and
// narrows the result, mirroring the teacher's U128FromString/I128FromString
// error-returning parse constructors.
func Float16FromString(s string) (Float16, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("swfloat: float16 %q invalid: %w", s, err)
	}
	return Float16FromFloat32(Float32FromFloat32(float32(v))), nil
}

func Float16FromInt64(v int64) Float16 {
	neg, mag := absUint64(v)
	return Float16(integerToFloat(format16, neg, mag))
}
func Float16FromInt32(v int32) Float16 { return Float16FromInt64(int64(v)) }
func Float16FromInt16(v int16) Float16 { return Float16FromInt64(int64(v)) }
func Float16FromInt8(v int8) Float16   { return Float16FromInt64(int64(v)) }

func Float16FromUint64(v uint64) Float16 { return Float16(integerToFloat(format16, false, v)) }
func Float16FromUint32(v uint32) Float16 { return Float16FromUint64(uint64(v)) }
func Float16FromUint16(v uint16) Float16 { return Float16FromUint64(uint64(v)) }
func Float16FromUint8(v uint8) Float16   { return Float16FromUint64(uint64(v)) }

func (f Float16) ToInt64(mode OverflowMode) int64 {
	return int64(format16.convertToInt(uint64(f), 64, true, mode))
}
func (f Float16) ToInt32(mode OverflowMode) int32 {
	return int32(format16.convertToInt(uint64(f), 32, true, mode))
}
func (f Float16) ToInt16(mode OverflowMode) int16 {
	return int16(format16.convertToInt(uint64(f), 16, true, mode))
}
func (f Float16) ToInt8(mode OverflowMode) int8 {
	return int8(format16.convertToInt(uint64(f), 8, true, mode))
}

func (f Float16) ToUint64(mode OverflowMode) uint64 {
	return format16.convertToInt(uint64(f), 64, false, mode)
}
func (f Float16) ToUint32(mode OverflowMode) uint32 {
	return uint32(format16.convertToInt(uint64(f), 32, false, mode))
}
func (f Float16) ToUint16(mode OverflowMode) uint16 {
	return uint16(format16.convertToInt(uint64(f), 16, false, mode))
}
func (f Float16) ToUint8(mode OverflowMode) uint8 {
	return uint8(format16.convertToInt(uint64(f), 8, false, mode))
}

func (f Float16) ToHexString() string     { return format16.hexString(uint64(f)) }
func (f Float16) ToTripletString() string { return format16.tripletString(uint64(f)) }
func (f Float16) String() string          { return f.ToHexString() }

func (f Float16) Format(s fmt.State, c rune) {
	formatFloat(s, c, f.ToHexString(), f.AsFloat64().AsFloat64())
}

// MarshalText/MarshalJSON write the shortest decimal form of the value at
// float32 precision rather than the hex bit pattern: a binary16 value
// always has an exact float32 equivalent, so the round trip through
// strconv.ParseFloat(s, 32) and back to Float16 is lossless.
func (f Float16) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatFloat(f.AsFloat64().AsFloat64(), 'g', -1, 32)), nil
}

func (f *Float16) UnmarshalText(bts []byte) error {
	v, err := strconv.ParseFloat(string(bts), 32)
	if err != nil {
		return fmt.Errorf("swfloat: float16 %q invalid: %w", string(bts), err)
	}
	*f = Float16FromFloat32(Float32FromFloat32(float32(v)))
	return nil
}

func (f Float16) MarshalJSON() ([]byte, error) { return f.MarshalText() }

func (f *Float16) UnmarshalJSON(bts []byte) error {
	if len(bts) >= 2 && bts[0] == '"' {
		bts = bts[1 : len(bts)-1]
	}
	return f.UnmarshalText(bts)
}
