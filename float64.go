package swfloat

import (
	"fmt"
	"math"
	"strconv"
)

// Float64 is a packed IEEE-754 binary64 value: 1 sign bit, 11 exponent
// bits, 52 trailing significand bits -- the same layout as Go's native
// float64, so AsFloat64/Float64FromFloat64 are bit-identical reinterprets.
type Float64 uint64

func Float64Zero(negative bool) Float64 {
	var sign uint64
	if negative {
		sign = 1
	}
	return Float64(format64.packZero(sign))
}

func Float64Infinity(negative bool) Float64 {
	var sign uint64
	if negative {
		sign = 1
	}
	return Float64(format64.packInfinity(sign))
}

func Float64IndeterminateNaN() Float64 {
	return Float64(format64.packIndeterminateNaN())
}

func Float64Subnormal(negative bool, sig uint64) Float64 {
	var sign uint64
	if negative {
		sign = 1
	}
	return Float64(format64.packSubnormal(sign, sig))
}

func Float64Normal(negative bool, exp int, sig uint64) Float64 {
	var sign uint64
	if negative {
		sign = 1
	}
	return Float64(format64.packNormal(sign, int64(exp), sig))
}

func Float64FromTriplet(negative bool, exp int, sig uint64) Float64 {
	return Float64Normal(negative, exp, sig)
}

func Float64FromBits(raw uint64) Float64 { return Float64(raw) }

func (f Float64) Bits() uint64 { return uint64(f) }

func (f Float64) IsNaN() bool      { return format64.decompose(uint64(f)).isNaN() }
func (f Float64) IsInfinity() bool { return format64.decompose(uint64(f)).isInfinity() }
func (f Float64) IsZero() bool     { return format64.decompose(uint64(f)).isZero() }
func (f Float64) Sign() int {
	if uint64(f)&0x8000000000000000 != 0 {
		return -1
	}
	return 1
}

func (f Float64) Neg() Float64 { return Float64(floatNegateRaw(format64, uint64(f))) }

func (f Float64) Add(n Float64) Float64 { return Float64(format64.add(uint64(f), uint64(n))) }
func (f Float64) Sub(n Float64) Float64 { return Float64(format64.sub(uint64(f), uint64(n))) }
func (f Float64) Mul(n Float64) Float64 { return Float64(format64.mul(uint64(f), uint64(n))) }
func (f Float64) Quo(n Float64) Float64 { return Float64(format64.quo(uint64(f), uint64(n))) }

func (f Float64) Equal(n Float64) bool            { return format64.eq(uint64(f), uint64(n)) }
func (f Float64) LessThan(n Float64) bool         { return format64.lt(uint64(f), uint64(n)) }
func (f Float64) LessOrEqualTo(n Float64) bool    { return format64.le(uint64(f), uint64(n)) }
func (f Float64) GreaterThan(n Float64) bool      { return format64.gt(uint64(f), uint64(n)) }
func (f Float64) GreaterOrEqualTo(n Float64) bool { return format64.ge(uint64(f), uint64(n)) }

// Float64FromFloat64 reinterprets a native Go float64's bits directly: the
// layouts are identical, so this is exact and allocation-free.
func Float64FromFloat64(v float64) Float64 { return Float64(math.Float64bits(v)) }

// AsFloat64 is the inverse of Float64FromFloat64.
func (f Float64) AsFloat64() float64 { return math.Float64frombits(uint64(f)) }

func (f Float64) AsFloat16() Float16 { return Float16FromFloat64(f) }
func (f Float64) AsFloat32() Float32 { return Float32FromFloat64(f) }

func Float64FromFloat16(v Float16) Float64 { return v.AsFloat64() }
func Float64FromFloat32(v Float32) Float64 { return v.AsFloat64() }

// Float64FromString parses a decimal string, mirroring the teacher's
// U128FromString/I128FromString error-returning parse constructors.
func Float64FromString(s string) (Float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("swfloat: float64 %q invalid: %w", s, err)
	}
	return Float64FromFloat64(v), nil
}

func Float64FromInt64(v int64) Float64 {
	neg, mag := absUint64(v)
	return Float64(integerToFloat(format64, neg, mag))
}
func Float64FromInt32(v int32) Float64 { return Float64FromInt64(int64(v)) }
func Float64FromInt16(v int16) Float64 { return Float64FromInt64(int64(v)) }
func Float64FromInt8(v int8) Float64   { return Float64FromInt64(int64(v)) }

func Float64FromUint64(v uint64) Float64 { return Float64(integerToFloat(format64, false, v)) }
func Float64FromUint32(v uint32) Float64 { return Float64FromUint64(uint64(v)) }
func Float64FromUint16(v uint16) Float64 { return Float64FromUint64(uint64(v)) }
func Float64FromUint8(v uint8) Float64   { return Float64FromUint64(uint64(v)) }

func (f Float64) ToInt64(mode OverflowMode) int64 {
	return int64(format64.convertToInt(uint64(f), 64, true, mode))
}
func (f Float64) ToInt32(mode OverflowMode) int32 {
	return int32(format64.convertToInt(uint64(f), 32, true, mode))
}
func (f Float64) ToInt16(mode OverflowMode) int16 {
	return int16(format64.convertToInt(uint64(f), 16, true, mode))
}
func (f Float64) ToInt8(mode OverflowMode) int8 {
	return int8(format64.convertToInt(uint64(f), 8, true, mode))
}

func (f Float64) ToUint64(mode OverflowMode) uint64 {
	return format64.convertToInt(uint64(f), 64, false, mode)
}
func (f Float64) ToUint32(mode OverflowMode) uint32 {
	return uint32(format64.convertToInt(uint64(f), 32, false, mode))
}
func (f Float64) ToUint16(mode OverflowMode) uint16 {
	return uint16(format64.convertToInt(uint64(f), 16, false, mode))
}
func (f Float64) ToUint8(mode OverflowMode) uint8 {
	return uint8(format64.convertToInt(uint64(f), 8, false, mode))
}

func (f Float64) ToHexString() string     { return format64.hexString(uint64(f)) }
func (f Float64) ToTripletString() string { return format64.tripletString(uint64(f)) }
func (f Float64) String() string          { return strconv.FormatFloat(f.AsFloat64(), 'g', -1, 64) }

func (f Float64) Format(s fmt.State, c rune) {
	formatFloat(s, c, f.ToHexString(), f.AsFloat64())
}

func (f Float64) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Float64) UnmarshalText(bts []byte) error {
	v, err := strconv.ParseFloat(string(bts), 64)
	if err != nil {
		return fmt.Errorf("swfloat: float64 %q invalid: %w", string(bts), err)
	}
	*f = Float64FromFloat64(v)
	return nil
}

func (f Float64) MarshalJSON() ([]byte, error) { return f.MarshalText() }

func (f *Float64) UnmarshalJSON(bts []byte) error {
	if len(bts) >= 2 && bts[0] == '"' {
		bts = bts[1 : len(bts)-1]
	}
	return f.UnmarshalText(bts)
}
