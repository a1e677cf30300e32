package swfloat

import (
	"fmt"
	"math/big"
)

// Uint256 is the recursive case of WideInt above Uint128: its limb type is
// Uint128 itself rather than a host primitive, so its extended primitives
// recurse into Uint128's hardware-backed operations instead of delegating
// to a single intrinsic. It exists so a 128x128 significand product (for a
// hypothetical binary128 implementation) is representable without a
// further type; no required binary16/32/64 arithmetic path produces a
// Uint256 value today.
type Uint256 struct {
	hi, lo Uint128
}

func Uint256FromUint128(lo Uint128) Uint256 { return Uint256{lo: lo} }

func Uint256FromRaw(hi, lo Uint128) Uint256 { return Uint256{hi: hi, lo: lo} }

func (u Uint256) IsZero() bool { return u == zeroUint256 }

func (u Uint256) Raw() (hi, lo Uint128) { return u.hi, u.lo }

func (u Uint256) String() string { return u.AsBigInt().String() }

func (u Uint256) Format(s fmt.State, c rune) { u.AsBigInt().Format(s, c) }

func (u Uint256) AsBigInt() *big.Int {
	b := u.hi.AsBigInt()
	b.Lsh(b, 128)
	b.Or(b, u.lo.AsBigInt())
	return b
}

func (u Uint256) Add(n Uint256) Uint256 {
	lo, carry := u.lo.AddCarry(n.lo, 0)
	hi, _ := u.hi.AddCarry(n.hi, carry)
	return Uint256{hi: hi, lo: lo}
}

func (u Uint256) Sub(n Uint256) Uint256 {
	lo, borrow := u.lo.SubBorrow(n.lo, 0)
	hi, _ := u.hi.SubBorrow(n.hi, borrow)
	return Uint256{hi: hi, lo: lo}
}

func (u Uint256) Cmp(n Uint256) int {
	if c := u.hi.Cmp(n.hi); c != 0 {
		return c
	}
	return u.lo.Cmp(n.lo)
}

func (u Uint256) Lsh(n uint) Uint256 {
	switch {
	case n == 0:
		return u
	case n < 128:
		return Uint256{hi: u.hi.Lsh(n).Or(u.lo.Rsh(128 - n)), lo: u.lo.Lsh(n)}
	case n == 128:
		return Uint256{hi: u.lo, lo: zeroUint128}
	default:
		return Uint256{hi: u.lo.Lsh(n - 128), lo: zeroUint128}
	}
}

func (u Uint256) Rsh(n uint) Uint256 {
	switch {
	case n == 0:
		return u
	case n < 128:
		return Uint256{hi: u.hi.Rsh(n), lo: u.lo.Rsh(n).Or(u.hi.Lsh(128 - n))}
	case n == 128:
		return Uint256{hi: zeroUint128, lo: u.hi}
	default:
		return Uint256{hi: zeroUint128, lo: u.hi.Rsh(n - 128)}
	}
}

// ReverseBitScan finds the highest set bit (MSB-first) across the full 256
// bits, returning its 0-based index from the LSB. ok is false iff u is zero.
func (u Uint256) ReverseBitScan() (index uint, ok bool) {
	if idx, ok := u.hi.ReverseBitScan(); ok {
		return idx + 128, true
	}
	if idx, ok := u.lo.ReverseBitScan(); ok {
		return idx, true
	}
	return 0, false
}
