package alu

import "math/bits"

// u128 is an unsigned 128-bit integer used by the few opcodes whose
// result or intermediate product genuinely needs more than 64 bits
// (size-16 Mul/UMul/Div/UDiv/Rem/URem, and the high halves of MulH/UMulH).
// Neither the teacher nor the wider guest ISA needs a general i128/u128
// type — wasm has no 128-bit integer arithmetic — so this is original
// code, built on the same math/bits primitives (Mul64, Sub64) the teacher
// and the rest of the retrieval pack reach for instead of hand-rolled
// carry arithmetic.
type u128 struct {
	hi, lo uint64
}

func u128FromU64(v uint64) u128 { return u128{0, v} }

func u128FromI64(v int64) u128 {
	if v >= 0 {
		return u128FromU64(uint64(v))
	}
	return u128{^uint64(0), uint64(v)}
}

func (a u128) cmp(b u128) int {
	switch {
	case a.hi != b.hi:
		if a.hi < b.hi {
			return -1
		}
		return 1
	case a.lo != b.lo:
		if a.lo < b.lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (a u128) sub(b u128) u128 {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	hi, _ := bits.Sub64(a.hi, b.hi, borrow)
	return u128{hi, lo}
}

func (a u128) add(b u128) u128 {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(a.hi, b.hi, carry)
	return u128{hi, lo}
}

func (a u128) neg() u128 {
	return u128{}.sub(a)
}

func (a u128) shl1() u128 {
	return u128{hi: a.hi<<1 | a.lo>>63, lo: a.lo << 1}
}

func (a u128) bit(i uint) bool {
	if i >= 64 {
		return (a.hi>>(i-64))&1 != 0
	}
	return (a.lo>>i)&1 != 0
}

func (a u128) setBit0() u128 {
	return u128{hi: a.hi, lo: a.lo | 1}
}

func (a u128) isNeg() bool { return a.hi>>63 != 0 }

// shr performs a logical right shift by n bits, 0 <= n <= 127.
func (a u128) shr(n uint) u128 {
	switch {
	case n == 0:
		return a
	case n >= 128:
		return u128{}
	case n >= 64:
		return u128{lo: a.hi >> (n - 64)}
	default:
		return u128{hi: a.hi >> n, lo: a.lo>>n | a.hi<<(64-n)}
	}
}

// divmod performs restoring binary long division of two 128-bit unsigned
// values. The divisor must be non-zero; this core raises no
// divide-by-zero trap of its own (§4.B), so that precondition is the
// caller's — i.e. the enclosing execution loop's, per the source.
func (a u128) divmod(divisor u128) (quo, rem u128) {
	for i := 127; i >= 0; i-- {
		rem = rem.shl1()
		if a.bit(uint(i)) {
			rem = rem.setBit0()
		}
		quo = quo.shl1()
		if rem.cmp(divisor) >= 0 {
			rem = rem.sub(divisor)
			quo = quo.setBit0()
		}
	}
	return quo, rem
}

// signedDivmod performs 128-bit two's-complement signed division,
// truncating toward zero as every other Div/Rem kernel in this package
// does.
func (a u128) signedDivmod(b u128) (quo, rem u128) {
	negA, negB := a.isNeg(), b.isNeg()
	ua, ub := a, b
	if negA {
		ua = a.neg()
	}
	if negB {
		ub = b.neg()
	}
	uq, ur := ua.divmod(ub)
	if negA != negB {
		uq = uq.neg()
	}
	if negA {
		ur = ur.neg()
	}
	return uq, ur
}

// mul128 returns the full 128-bit unsigned product of two 64-bit values.
func mul128(a, b uint64) u128 {
	hi, lo := bits.Mul64(a, b)
	return u128{hi: hi, lo: lo}
}

// smul128 returns the full 128-bit signed product of two 64-bit values,
// via the standard unsigned-product-plus-sign-correction identity.
func smul128(a, b int64) u128 {
	p := mul128(uint64(a), uint64(b))
	if a < 0 {
		p.hi -= uint64(b)
	}
	if b < 0 {
		p.hi -= uint64(a)
	}
	return p
}
