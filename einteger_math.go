// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements greatest common divisors, powers and square roots.

package bignum

import "math/bits"

// gcd64 returns the greatest common divisor of u and v using Stein's
// algorithm.
func gcd64(u, v uint64) uint64 {
	if u == 0 {
		return v
	}
	if v == 0 {
		return u
	}
	shift := bits.TrailingZeros64(u | v)
	u >>= uint(bits.TrailingZeros64(u))
	for {
		v >>= uint(bits.TrailingZeros64(v))
		if u > v {
			u, v = v, u
		}
		v -= u
		if v == 0 {
			return u << uint(shift)
		}
	}
}

// gcd returns the greatest common divisor of a and b.
func (z nat) gcd(a, b nat) nat {
	switch {
	case len(a) == 0:
		return z.set(b)
	case len(b) == 0:
		return z.set(a)
	case len(a) <= 64/_W && len(b) <= 64/_W:
		return z.setUint64(gcd64(a.uint64(), b.uint64()))
	}

	// common factors of two, in batches
	var shift uint
	for (a[0]|b[0])&0xf == 0 {
		a, b = nat(nil).shr(a, 4), nat(nil).shr(b, 4)
		shift += 4
	}
	for (a[0]|b[0])&0x3 == 0 {
		a, b = nat(nil).shr(a, 2), nat(nil).shr(b, 2)
		shift += 2
	}
	if (a[0]|b[0])&0x1 == 0 {
		a, b = nat(nil).shr(a, 1), nat(nil).shr(b, 1)
		shift++
	}

	// a is odd from here on
	a = nat(nil).shr(a, a.trailingZeroBits())
	var g nat
	for {
		if len(a) <= 64/_W && len(b) <= 64/_W {
			g = nat(nil).setUint64(gcd64(a.uint64(), b.uint64()))
			break
		}
		b = nat(nil).shr(b, b.trailingZeroBits())
		if a.cmp(b) > 0 {
			a, b = b, a
		}
		if len(b) > len(a)+1 {
			// too unbalanced for subtraction
			_, b = nat(nil).divRem(b, a)
		} else {
			b = nat(nil).sub(b, a)
		}
		if len(b) == 0 {
			g = a
			break
		}
	}
	return z.shl(g, shift)
}

// Gcd returns the greatest common divisor of |x| and |y|. Gcd(x, 0) is |x|
// and Gcd(0, 0) is 0.
func (x *EInteger) Gcd(y *EInteger) *EInteger {
	mustNotNil("Gcd", x, y)
	return newEInteger(nat(nil).gcd(x.mag, y.mag), false)
}

// expNN returns x**y.
func (z nat) expNN(x, y nat) nat {
	if len(y) == 0 {
		return z.set(natOne)
	}
	r := nat(nil).set(x)
	for i := y.bitLen() - 2; i >= 0; i-- {
		r = nat(nil).sqr(r)
		if y.bit(uint(i)) != 0 {
			r = nat(nil).mul(r, x)
		}
	}
	return z.set(r)
}

// Pow returns x**n. It panics with an InvalidArgument *Error if n < 0.
func (x *EInteger) Pow(n int) *EInteger {
	mustNotNil("Pow", x)
	if n < 0 {
		panic(&Error{Kind: InvalidArgument, Op: "Pow", Msg: "negative exponent"})
	}
	return x.pow(nat(nil).setUint64(uint64(n)))
}

// PowBig returns x**n. It panics with an InvalidArgument *Error if n < 0.
func (x *EInteger) PowBig(n *EInteger) *EInteger {
	mustNotNil("PowBig", x, n)
	if n.neg {
		panic(&Error{Kind: InvalidArgument, Op: "PowBig", Msg: "negative exponent"})
	}
	return x.pow(n.mag)
}

func (x *EInteger) pow(n nat) *EInteger {
	switch {
	case len(n) == 0:
		return One
	case len(x.mag) == 0:
		return Zero
	case x.isUnit():
		if x.neg && n[0]&1 != 0 {
			return MinusOne
		}
		return One
	}
	return newEInteger(nat(nil).expNN(x.mag, n), x.neg && n[0]&1 != 0)
}

// ModPow returns x**e mod m, in the range [0, m). It panics with an
// InvalidArgument *Error if e < 0 or m <= 0.
func (x *EInteger) ModPow(e, m *EInteger) *EInteger {
	mustNotNil("ModPow", x, e, m)
	if e.neg {
		panic(&Error{Kind: InvalidArgument, Op: "ModPow", Msg: "negative exponent"})
	}
	if m.Sign() <= 0 {
		panic(&Error{Kind: InvalidArgument, Op: "ModPow", Msg: "modulus must be positive"})
	}
	if m.isUnit() {
		return Zero
	}
	if len(e.mag) == 0 {
		return One
	}

	base := x.Mod(m).mag
	r := nat(nil).set(base)
	for i := e.mag.bitLen() - 2; i >= 0; i-- {
		_, r = nat(nil).divRem(nat(nil).sqr(r), m.mag)
		if e.mag.bit(uint(i)) != 0 {
			_, r = nat(nil).divRem(nat(nil).mul(r, base), m.mag)
		}
	}
	return newEInteger(r, false)
}

// TryModPow is like ModPow but returns an error instead of panicking.
func (x *EInteger) TryModPow(e, m *EInteger) (r *EInteger, err error) {
	defer catch(&err)
	return x.ModPow(e, m), nil
}

// isqrt64 returns floor(sqrt(v)) by Newton's method.
func isqrt64(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	x := uint64(1) << uint((bits.Len64(v)+1)/2)
	for {
		y := (x + v/x) >> 1
		if y >= x {
			return x
		}
		x = y
	}
}

// sqrtRem returns s = floor(sqrt(a)) and r = a - s*s.
func (a nat) sqrtRem() (s, r nat) {
	if len(a) < 64/_W {
		v := a.uint64()
		q := isqrt64(v)
		return nat(nil).setUint64(q), nat(nil).setUint64(v - q*q)
	}
	return a.sqrtRemRec()
}

// sqrtRemRec implements Zimmermann's Karatsuba square root ("Karatsuba
// Square Root", INRIA RR-3805). a is normalized so that it has 4k words
// with one of its top two bits set, then split in quarters of k words.
func (a nat) sqrtRemRec() (s, r nat) {
	k := (len(a) + 3) / 4
	kb := uint(k * _W)
	t := (4*kb - uint(a.bitLen())) / 2
	an := nat(nil).shl(a, 2*t)

	hi := nat(nil).shr(an, 2*kb)
	a1 := nat(nil).lowBits(nat(nil).shr(an, kb), kb)
	a0 := an.lowWords(k)

	s1, r1 := hi.sqrtRem()
	num := nat(nil).shl(r1, kb)
	num = nat(nil).add(num, a1)
	q, u := nat(nil).divRem(num, nat(nil).shl(s1, 1))

	s = nat(nil).shl(s1, kb)
	s = nat(nil).add(s, q)
	pos := nat(nil).shl(u, kb)
	pos = nat(nil).add(pos, a0)
	qq := nat(nil).sqr(q)
	if pos.cmp(qq) >= 0 {
		r = nat(nil).sub(pos, qq)
	} else {
		// r + 2s - 1, then s - 1
		pos = nat(nil).add(pos, nat(nil).shl(s, 1))
		r = nat(nil).sub(pos, qq)
		r = nat(nil).sub(r, natOne)
		s = nat(nil).sub(s, natOne)
	}

	if t > 0 {
		s = nat(nil).shr(s, t)
		r = nat(nil).sub(a, nat(nil).sqr(s))
	}
	return s, r
}

// Sqrt returns floor(sqrt(x)). It panics with an ArithmeticError *Error if
// x < 0.
func (x *EInteger) Sqrt() *EInteger {
	s, _ := x.SqrtRem()
	return s
}

// SqrtRem returns s = floor(sqrt(x)) and r = x - s*s. It panics with an
// ArithmeticError *Error if x < 0.
func (x *EInteger) SqrtRem() (s, r *EInteger) {
	mustNotNil("SqrtRem", x)
	if x.neg {
		panic(&Error{Kind: ArithmeticError, Op: "Sqrt", Msg: "square root of negative operand"})
	}
	sm, rm := x.mag.sqrtRem()
	return newEInteger(sm, false), newEInteger(rm, false)
}
