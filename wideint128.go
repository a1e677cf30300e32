package swfloat

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// Uint128 is an unsigned 128-bit integer, the base case of the WideInt
// engine: its limb type (uint64) is native to the host, so its extended
// primitives (AddCarry, SubBorrow, MulExtended) delegate directly to the
// math/bits intrinsics the compiler lowers to hardware carry/borrow/
// widening-multiply instructions on every platform Go supports.
type Uint128 struct {
	hi, lo uint64
}

func Uint128FromRaw(hi, lo uint64) Uint128 { return Uint128{hi: hi, lo: lo} }
func Uint128From64(v uint64) Uint128       { return Uint128{lo: v} }
func Uint128From32(v uint32) Uint128       { return Uint128{lo: uint64(v)} }
func Uint128From16(v uint16) Uint128       { return Uint128{lo: uint64(v)} }
func Uint128From8(v uint8) Uint128         { return Uint128{lo: uint64(v)} }

// Uint128FromString creates a Uint128 from a decimal string. Overflow
// truncates to MaxUint128 and sets accurate to false.
func Uint128FromString(s string) (out Uint128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("swfloat: uint128 string %q invalid", s)
	}
	out, accurate = Uint128FromBigInt(b)
	return out, accurate, nil
}

// Uint128FromBigInt creates a Uint128 from a big.Int. Overflow truncates to
// MaxUint128 and sets accurate to false.
func Uint128FromBigInt(v *big.Int) (out Uint128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.Cmp(maxBigU128) > 0 {
		return MaxUint128, false
	}
	var lo big.Int
	lo.And(v, new(big.Int).SetUint64(maxUint64))
	hi := new(big.Int).Rsh(v, 64)
	return Uint128{hi: hi.Uint64(), lo: lo.Uint64()}, true
}

// Uint128FromFloat64 creates a Uint128 from a float64, truncating any
// fractional part towards zero. Values outside the representable range are
// clamped and inRange is set to false; NaN is treated as 0.
func Uint128FromFloat64(f float64) (out Uint128, inRange bool) {
	switch {
	case f != f: // NaN
		return Uint128{}, false
	case f == 0:
		return Uint128{}, true
	case f < 0:
		return Uint128{}, false
	case f <= maxUint64Float:
		return Uint128{lo: uint64(f)}, true
	case f <= maxU128Float:
		hi := f / wrapUint64Float
		lo := f - floorFloat64(hi)*wrapUint64Float
		return Uint128{hi: uint64(hi), lo: uint64(lo)}, true
	default:
		return MaxUint128, false
	}
}

func Uint128FromFloat32(f float32) (out Uint128, inRange bool) {
	return Uint128FromFloat64(float64(f))
}

func floorFloat64(f float64) float64 {
	i := float64(int64(f))
	if i > f {
		i--
	}
	return i
}

// RandUint128 generates an unsigned 128-bit random integer from an external
// source.
func RandUint128(source RandSource) (out Uint128) {
	return Uint128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u Uint128) IsZero() bool { return u == zeroUint128 }

// Raw returns access to the Uint128 as a pair of uint64s. See
// Uint128FromRaw for the counterpart.
func (u Uint128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u Uint128) String() string {
	if u == zeroUint128 {
		return "0"
	}
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

func (u Uint128) Format(s fmt.State, c rune) { u.AsBigInt().Format(s, c) }

func (u Uint128) AsBigInt() *big.Int {
	b := new(big.Int).SetUint64(u.hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(u.lo))
	return b
}

func (u Uint128) AsBigFloat() *big.Float { return new(big.Float).SetInt(u.AsBigInt()) }

func (u Uint128) AsFloat64() float64 {
	if u.hi == 0 {
		return float64(u.lo)
	}
	return float64(u.hi)*wrapUint64Float + float64(u.lo)
}

// AsInt128 performs a direct cast of a Uint128 to an Int128, interpreting
// it as a two's complement value.
func (u Uint128) AsInt128() Int128 { return Int128{hi: u.hi, lo: u.lo} }

// IsInt128 reports whether u can be represented in an Int128.
func (u Uint128) IsInt128() bool { return u.hi&signBit64 == 0 }

// AsUint64 truncates the Uint128 to fit in a uint64. See IsUint64 to check
// first.
func (u Uint128) AsUint64() uint64 { return u.lo }

func (u Uint128) IsUint64() bool { return u.hi == 0 }

func (u Uint128) Inc() Uint128 {
	lo, carry := bits.Add64(u.lo, 1, 0)
	return Uint128{hi: u.hi + carry, lo: lo}
}

func (u Uint128) Dec() Uint128 {
	lo, borrow := bits.Sub64(u.lo, 1, 0)
	return Uint128{hi: u.hi - borrow, lo: lo}
}

func (u Uint128) Add(n Uint128) Uint128 {
	v, _ := u.AddCarry(n, 0)
	return v
}

// AddCarry returns u+n+carryIn (carryIn must be 0 or 1) along with the
// carry out of the top bit, delegating to the hardware add-with-carry
// instruction via math/bits on every limb.
func (u Uint128) AddCarry(n Uint128, carryIn uint64) (sum Uint128, carryOut uint64) {
	lo, c := bits.Add64(u.lo, n.lo, carryIn)
	hi, c := bits.Add64(u.hi, n.hi, c)
	return Uint128{hi: hi, lo: lo}, c
}

func (u Uint128) Sub(n Uint128) Uint128 {
	v, _ := u.SubBorrow(n, 0)
	return v
}

// SubBorrow returns u-n-borrowIn (borrowIn must be 0 or 1) along with the
// borrow out of the top bit.
func (u Uint128) SubBorrow(n Uint128, borrowIn uint64) (diff Uint128, borrowOut uint64) {
	lo, b := bits.Sub64(u.lo, n.lo, borrowIn)
	hi, b := bits.Sub64(u.hi, n.hi, b)
	return Uint128{hi: hi, lo: lo}, b
}

func (u Uint128) Cmp(n Uint128) int {
	if u.hi != n.hi {
		if u.hi > n.hi {
			return 1
		}
		return -1
	}
	if u.lo != n.lo {
		if u.lo > n.lo {
			return 1
		}
		return -1
	}
	return 0
}

func (u Uint128) Equal(n Uint128) bool            { return u == n }
func (u Uint128) GreaterThan(n Uint128) bool      { return u.Cmp(n) > 0 }
func (u Uint128) GreaterOrEqualTo(n Uint128) bool { return u.Cmp(n) >= 0 }
func (u Uint128) LessThan(n Uint128) bool         { return u.Cmp(n) < 0 }
func (u Uint128) LessOrEqualTo(n Uint128) bool     { return u.Cmp(n) <= 0 }

func (u Uint128) And(n Uint128) Uint128 { return Uint128{hi: u.hi & n.hi, lo: u.lo & n.lo} }
func (u Uint128) Or(n Uint128) Uint128  { return Uint128{hi: u.hi | n.hi, lo: u.lo | n.lo} }
func (u Uint128) Xor(n Uint128) Uint128 { return Uint128{hi: u.hi ^ n.hi, lo: u.lo ^ n.lo} }
func (u Uint128) Not() Uint128          { return Uint128{hi: ^u.hi, lo: ^u.lo} }

func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n < 64:
		return Uint128{hi: (u.hi << n) | (u.lo >> (64 - n)), lo: u.lo << n}
	case n == 64:
		return Uint128{hi: u.lo, lo: 0}
	default:
		return Uint128{hi: u.lo << (n - 64), lo: 0}
	}
}

func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n < 64:
		return Uint128{hi: u.hi >> n, lo: (u.lo >> n) | (u.hi << (64 - n))}
	case n == 64:
		return Uint128{hi: 0, lo: u.hi}
	default:
		return Uint128{hi: 0, lo: u.hi >> (n - 64)}
	}
}

// Mul returns the low 128 bits of u*n, wrapping modulo 2^128.
func (u Uint128) Mul(n Uint128) Uint128 {
	hi, lo := bits.Mul64(u.lo, n.lo)
	hi += u.hi*n.lo + u.lo*n.hi
	return Uint128{hi: hi, lo: lo}
}

// MulExtended returns the full 256-bit product of u*n as (hi, lo Uint128),
// delegating to the hardware widening-multiply instruction (math/bits.Mul64)
// on each of the four cross limb products.
func (u Uint128) MulExtended(n Uint128) (hi, lo Uint128) {
	lm, loLo := bits.Mul64(u.lo, n.lo)
	hiHi, hiLo := bits.Mul64(u.hi, n.hi)
	tHi, tLo := bits.Mul64(u.hi, n.lo)

	lm2, carry := bits.Add64(lm, tLo, 0)
	hiLo, carry2 := bits.Add64(hiLo, tHi, carry)
	hiHi += carry2

	tHi, tLo = bits.Mul64(u.lo, n.hi)
	lm3, carry := bits.Add64(lm2, tLo, 0)
	hiLo, carry2 = bits.Add64(hiLo, tHi, carry)
	hiHi += carry2

	return Uint128{hi: hiHi, lo: hiLo}, Uint128{hi: lm3, lo: loLo}
}

// Quo returns the quotient u/by for by != 0, truncated like Go integer
// division. If by == 0, Quo panics.
func (u Uint128) Quo(by Uint128) Uint128 {
	q, _ := u.QuoRem(by)
	return q
}

// QuoRem returns the quotient and remainder of u/by for by != 0, using
// T-division semantics (q = u/by truncated towards zero, r = u - by*q). If
// by == 0, QuoRem panics: this is WideInt's one unrecoverable failure mode.
func (u Uint128) QuoRem(by Uint128) (q, r Uint128) {
	if by == zeroUint128 {
		panic("swfloat: uint128 division by zero")
	}
	if u.hi == 0 && by.hi == 0 {
		// Both operands fit in the low limb: the hardware division
		// instruction is faster than the general bit-by-bit path.
		q.lo = u.lo / by.lo
		r.lo = u.lo % by.lo
		return q, r
	}
	if cmp := u.Cmp(by); cmp < 0 {
		return q, u
	} else if cmp == 0 {
		return Uint128{lo: 1}, q
	}
	return quoRem128Restoring(u, by)
}

func (u Uint128) Rem(by Uint128) Uint128 {
	_, r := u.QuoRem(by)
	return r
}

// quoRem128Restoring performs MSB-first bit-by-bit restoring long division,
// shifting the divisor down into alignment and subtracting it from the
// dividend one bit at a time. This is the general path described for
// WideInt division: no fast multiply-by-reciprocal tricks, just the
// straightforward shift-subtract loop across every bit of the width.
func quoRem128Restoring(u, by Uint128) (q, r Uint128) {
	shift := by.LeadingZeros() - u.LeadingZeros()
	by = by.Lsh(shift)

	for {
		q = q.Lsh(1)
		if u.GreaterOrEqualTo(by) {
			u = u.Sub(by)
			q.lo |= 1
		}
		by = by.Rsh(1)
		if shift == 0 {
			break
		}
		shift--
	}
	return q, u
}

func (u Uint128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u Uint128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// ReverseBitScan finds the highest set bit (MSB-first), returning its
// 0-based index from the LSB. ok is false iff u is zero.
func (u Uint128) ReverseBitScan() (index uint, ok bool) {
	if u == zeroUint128 {
		return 0, false
	}
	return 127 - u.LeadingZeros(), true
}

func (u Uint128) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *Uint128) UnmarshalText(bts []byte) error {
	v, _, err := Uint128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint128) MarshalJSON() ([]byte, error) { return []byte(`"` + u.String() + `"`), nil }

func (u *Uint128) UnmarshalJSON(bts []byte) error {
	if len(bts) >= 2 && bts[0] == '"' {
		bts = bts[1 : len(bts)-1]
	}
	v, _, err := Uint128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
