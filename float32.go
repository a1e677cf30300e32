package swfloat

import (
	"fmt"
	"math"
	"strconv"
)

// Float32 is a packed IEEE-754 binary32 value: 1 sign bit, 8 exponent
// bits, 23 trailing significand bits -- the same layout as Go's native
// float32, so AsFloat32/Float32FromFloat32 are bit-identical reinterprets.
type Float32 uint32

func Float32Zero(negative bool) Float32 {
	var sign uint64
	if negative {
		sign = 1
	}
	return Float32(format32.packZero(sign))
}

func Float32Infinity(negative bool) Float32 {
	var sign uint64
	if negative {
		sign = 1
	}
	return Float32(format32.packInfinity(sign))
}

func Float32IndeterminateNaN() Float32 {
	return Float32(format32.packIndeterminateNaN())
}

func Float32Subnormal(negative bool, sig uint32) Float32 {
	var sign uint64
	if negative {
		sign = 1
	}
	return Float32(format32.packSubnormal(sign, uint64(sig)))
}

func Float32Normal(negative bool, exp int, sig uint32) Float32 {
	var sign uint64
	if negative {
		sign = 1
	}
	return Float32(format32.packNormal(sign, int64(exp), uint64(sig)))
}

func Float32FromTriplet(negative bool, exp int, sig uint32) Float32 {
	return Float32Normal(negative, exp, sig)
}

func Float32FromBits(raw uint32) Float32 { return Float32(raw) }

func (f Float32) Bits() uint32 { return uint32(f) }

func (f Float32) IsNaN() bool      { return format32.decompose(uint64(f)).isNaN() }
func (f Float32) IsInfinity() bool { return format32.decompose(uint64(f)).isInfinity() }
func (f Float32) IsZero() bool     { return format32.decompose(uint64(f)).isZero() }
func (f Float32) Sign() int {
	if uint32(f)&0x80000000 != 0 {
		return -1
	}
	return 1
}

func (f Float32) Neg() Float32 { return Float32(floatNegateRaw(format32, uint64(f))) }

func (f Float32) Add(n Float32) Float32 { return Float32(format32.add(uint64(f), uint64(n))) }
func (f Float32) Sub(n Float32) Float32 { return Float32(format32.sub(uint64(f), uint64(n))) }
func (f Float32) Mul(n Float32) Float32 { return Float32(format32.mul(uint64(f), uint64(n))) }
func (f Float32) Quo(n Float32) Float32 { return Float32(format32.quo(uint64(f), uint64(n))) }

func (f Float32) Equal(n Float32) bool            { return format32.eq(uint64(f), uint64(n)) }
func (f Float32) LessThan(n Float32) bool         { return format32.lt(uint64(f), uint64(n)) }
func (f Float32) LessOrEqualTo(n Float32) bool    { return format32.le(uint64(f), uint64(n)) }
func (f Float32) GreaterThan(n Float32) bool      { return format32.gt(uint64(f), uint64(n)) }
func (f Float32) GreaterOrEqualTo(n Float32) bool { return format32.ge(uint64(f), uint64(n)) }

// Float32FromFloat32 reinterprets a native Go float32's bits directly: the
// layouts are identical, so this is exact and allocation-free.
func Float32FromFloat32(v float32) Float32 { return Float32(math.Float32bits(v)) }

// AsFloat32 is the inverse of Float32FromFloat32.
func (f Float32) AsFloat32() float32 { return math.Float32frombits(uint32(f)) }

func (f Float32) AsFloat16() Float16 { return Float16FromFloat32(f) }
func (f Float32) AsFloat64() Float64 { return Float64(widen(format32, format64, uint64(f))) }

func Float32FromFloat16(v Float16) Float32 { return v.AsFloat32() }
func Float32FromFloat64(v Float64) Float32 { return Float32(narrow(format64, format32, uint64(v))) }

// Float32FromString parses a decimal string, mirroring the teacher's
// U128FromString/I128FromString error-returning parse constructors.
func Float32FromString(s string) (Float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("swfloat: float32 %q invalid: %w", s, err)
	}
	return Float32FromFloat32(float32(v)), nil
}

func Float32FromInt64(v int64) Float32 {
	neg, mag := absUint64(v)
	return Float32(integerToFloat(format32, neg, mag))
}
func Float32FromInt32(v int32) Float32 { return Float32FromInt64(int64(v)) }
func Float32FromInt16(v int16) Float32 { return Float32FromInt64(int64(v)) }
func Float32FromInt8(v int8) Float32   { return Float32FromInt64(int64(v)) }

func Float32FromUint64(v uint64) Float32 { return Float32(integerToFloat(format32, false, v)) }
func Float32FromUint32(v uint32) Float32 { return Float32FromUint64(uint64(v)) }
func Float32FromUint16(v uint16) Float32 { return Float32FromUint64(uint64(v)) }
func Float32FromUint8(v uint8) Float32   { return Float32FromUint64(uint64(v)) }

func (f Float32) ToInt64(mode OverflowMode) int64 {
	return int64(format32.convertToInt(uint64(f), 64, true, mode))
}
func (f Float32) ToInt32(mode OverflowMode) int32 {
	return int32(format32.convertToInt(uint64(f), 32, true, mode))
}
func (f Float32) ToInt16(mode OverflowMode) int16 {
	return int16(format32.convertToInt(uint64(f), 16, true, mode))
}
func (f Float32) ToInt8(mode OverflowMode) int8 {
	return int8(format32.convertToInt(uint64(f), 8, true, mode))
}

func (f Float32) ToUint64(mode OverflowMode) uint64 {
	return format32.convertToInt(uint64(f), 64, false, mode)
}
func (f Float32) ToUint32(mode OverflowMode) uint32 {
	return uint32(format32.convertToInt(uint64(f), 32, false, mode))
}
func (f Float32) ToUint16(mode OverflowMode) uint16 {
	return uint16(format32.convertToInt(uint64(f), 16, false, mode))
}
func (f Float32) ToUint8(mode OverflowMode) uint8 {
	return uint8(format32.convertToInt(uint64(f), 8, false, mode))
}

func (f Float32) ToHexString() string     { return format32.hexString(uint64(f)) }
func (f Float32) ToTripletString() string { return format32.tripletString(uint64(f)) }
func (f Float32) String() string          { return strconv.FormatFloat(float64(f.AsFloat32()), 'g', -1, 32) }

func (f Float32) Format(s fmt.State, c rune) {
	formatFloat(s, c, f.ToHexString(), float64(f.AsFloat32()))
}

func (f Float32) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Float32) UnmarshalText(bts []byte) error {
	v, err := strconv.ParseFloat(string(bts), 32)
	if err != nil {
		return fmt.Errorf("swfloat: float32 %q invalid: %w", string(bts), err)
	}
	*f = Float32FromFloat32(float32(v))
	return nil
}

func (f Float32) MarshalJSON() ([]byte, error) { return f.MarshalText() }

func (f *Float32) UnmarshalJSON(bts []byte) error {
	if len(bts) >= 2 && bts[0] == '"' {
		bts = bts[1 : len(bts)-1]
	}
	return f.UnmarshalText(bts)
}
