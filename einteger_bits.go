// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements bitwise operations and shifts on EIntegers. Negative
// values behave as if they were stored in two's complement with an infinite
// sign extension.

package bignum

import "math"

// twos returns the n-word two's complement of x in a new buffer.
// n must be greater than len(x.mag).
func (x *EInteger) twos(n int) nat {
	z := make(nat, n)
	copy(z, x.mag)
	if x.neg {
		// -x == ^(x-1)
		subVW(z, z, 1)
		for i := range z {
			z[i] = ^z[i]
		}
	}
	return z
}

// fromTwos freezes the two's complement buffer z into an EInteger.
// z is overwritten.
func fromTwos(z nat) *EInteger {
	if len(z) == 0 || z[len(z)-1]&(1<<(_W-1)) == 0 {
		return newEInteger(z.norm(), false)
	}
	for i := range z {
		z[i] = ^z[i]
	}
	addVW(z, z, 1)
	return newEInteger(z.norm(), true)
}

func bitwiseLen(x, y *EInteger) int {
	if len(x.mag) > len(y.mag) {
		return len(x.mag) + 1
	}
	return len(y.mag) + 1
}

// And returns x & y.
func (x *EInteger) And(y *EInteger) *EInteger {
	mustNotNil("And", x, y)
	if !x.neg && !y.neg {
		return newEInteger(nat(nil).and(x.mag, y.mag), false)
	}
	n := bitwiseLen(x, y)
	a, b := x.twos(n), y.twos(n)
	for i := range a {
		a[i] &= b[i]
	}
	return fromTwos(a)
}

// Or returns x | y.
func (x *EInteger) Or(y *EInteger) *EInteger {
	mustNotNil("Or", x, y)
	if !x.neg && !y.neg {
		return newEInteger(nat(nil).or(x.mag, y.mag), false)
	}
	n := bitwiseLen(x, y)
	a, b := x.twos(n), y.twos(n)
	for i := range a {
		a[i] |= b[i]
	}
	return fromTwos(a)
}

// Xor returns x ^ y.
func (x *EInteger) Xor(y *EInteger) *EInteger {
	mustNotNil("Xor", x, y)
	if !x.neg && !y.neg {
		return newEInteger(nat(nil).xor(x.mag, y.mag), false)
	}
	n := bitwiseLen(x, y)
	a, b := x.twos(n), y.twos(n)
	for i := range a {
		a[i] ^= b[i]
	}
	return fromTwos(a)
}

// AndNot returns x &^ y.
func (x *EInteger) AndNot(y *EInteger) *EInteger {
	mustNotNil("AndNot", x, y)
	if !x.neg && !y.neg {
		return newEInteger(nat(nil).andNot(x.mag, y.mag), false)
	}
	n := bitwiseLen(x, y)
	a, b := x.twos(n), y.twos(n)
	for i := range a {
		a[i] &^= b[i]
	}
	return fromTwos(a)
}

// Not returns ^x, that is -x-1.
func (x *EInteger) Not() *EInteger {
	mustNotNil("Not", x)
	return x.Increment().Negate()
}

// ShiftLeft returns x << n. A negative n shifts right by -n.
func (x *EInteger) ShiftLeft(n int) *EInteger {
	mustNotNil("ShiftLeft", x)
	switch {
	case n == math.MinInt:
		// -n overflows; every bit is shifted out
		if x.neg {
			return MinusOne
		}
		return Zero
	case n < 0:
		return x.ShiftRight(-n)
	case n == 0 || len(x.mag) == 0:
		return x
	}
	return newEInteger(nat(nil).shl(x.mag, uint(n)), x.neg)
}

// ShiftRight returns x >> n. A negative n shifts left by -n. The shift of a
// negative x is arithmetic: the result is rounded toward negative infinity.
// ShiftRight panics with an InvalidArgument *Error if n is math.MinInt and x
// is not zero.
func (x *EInteger) ShiftRight(n int) *EInteger {
	mustNotNil("ShiftRight", x)
	switch {
	case n == math.MinInt:
		if len(x.mag) == 0 {
			return x
		}
		panic(newError(InvalidArgument, "ShiftRight", "shift count %d out of range", n))
	case n < 0:
		return x.ShiftLeft(-n)
	case n == 0 || len(x.mag) == 0:
		return x
	case !x.neg:
		return newEInteger(nat(nil).shr(x.mag, uint(n)), false)
	}
	// (-x) >> s == ^(x-1) >> s == ^((x-1) >> s) == -(((x-1) >> s) + 1)
	t := nat(nil).sub(x.mag, natOne)
	t = nat(nil).shr(t, uint(n))
	return newEInteger(nat(nil).add(t, natOne), true)
}

// TestBit returns the value of bit i of x in two's complement. It panics
// with an InvalidArgument *Error if i < 0.
func (x *EInteger) TestBit(i int) bool {
	mustNotNil("TestBit", x)
	if i < 0 {
		panic(&Error{Kind: InvalidArgument, Op: "TestBit", Msg: "negative bit index"})
	}
	if !x.neg {
		return x.mag.bit(uint(i)) != 0
	}
	t := nat(nil).sub(x.mag, natOne)
	return t.bit(uint(i)) == 0
}

// LowBit returns the index of the lowest set bit of x, or -1 if x == 0.
// The index is the same for x and -x.
func (x *EInteger) LowBit() int64 {
	if len(x.mag) == 0 {
		return -1
	}
	return int64(x.mag.trailingZeroBits())
}

// UnsignedBitLength returns the length of |x| in bits. The bit length of 0
// is 0.
func (x *EInteger) UnsignedBitLength() int64 {
	return int64(x.mag.bitLen())
}

// SignedBitLength returns the number of bits of the two's complement
// representation of x, excluding the sign bit.
func (x *EInteger) SignedBitLength() int64 {
	if !x.neg {
		return int64(x.mag.bitLen())
	}
	return int64(nat(nil).sub(x.mag, natOne).bitLen())
}

// PopCount returns the number of one bits in |x|.
func (x *EInteger) PopCount() int {
	return x.mag.popCount()
}
