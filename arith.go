// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the elementary operations on 16-bit words and word
// vectors that the rest of the package is built on. Double-word results are
// computed in uint32, so no floating-point or 128-bit arithmetic is needed.

package bignum

import "math/bits"

const (
	_W = 16      // word size in bits
	_B = 1 << _W // digit base
	_M = _B - 1  // digit mask
)

var pow10tab = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

// pow2digitsTab[n] is the number of decimal digits of 2**n - 1.
var pow2digitsTab = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// decDigits64 returns n such that 10**(n-1) <= x < 10**n.
// Returns 0 for x == 0.
func decDigits64(x uint64) (n uint) {
	n = pow2digitsTab[bits.Len64(x)]
	if x < pow10tab[n-1] {
		n--
	}
	return n
}

// magic holds the constants for division by d of any uint32 n as
// n / d = (n * m) >> post.
// See https://gmplib.org/~tege/divcnst-pldi94.pdf
type magic struct {
	d    uint32 // divisor
	m    uint64 // multiplier
	post byte   // shift
}

var (
	div10    = magic{10, 0xcccccccd, 35}
	div10000 = magic{10000, 0xd1b71759, 45}
)

func (m magic) div(n uint32) (q, r uint32) {
	q = uint32((uint64(n) * m.m) >> m.post)
	return q, n - q*m.d
}

//-----------------------------------------------------------------------------
// Elementary operations on words

// z1<<_W + z0 = x*y + c
func mulAddWWW(x, y, c uint16) (z1, z0 uint16) {
	t := uint32(x)*uint32(y) + uint32(c)
	return uint16(t >> _W), uint16(t)
}

// q = (u1<<_W + u0) / v, r = (u1<<_W + u0) % v. Requires u1 < v.
func divWW(u1, u0, v uint16) (q, r uint16) {
	u := uint32(u1)<<_W | uint32(u0)
	return uint16(u / uint32(v)), uint16(u % uint32(v))
}

func nlz(x uint16) uint {
	return uint(bits.LeadingZeros16(x))
}

//-----------------------------------------------------------------------------
// Vector operations. Unless stated otherwise, z, x and y have the length of
// z; they may be the same slice but must not otherwise overlap.

// The resulting carry c is either 0 or 1.
func addVV(z, x, y []uint16) (c uint16) {
	for i := range z {
		s := uint32(x[i]) + uint32(y[i]) + uint32(c)
		z[i] = uint16(s)
		c = uint16(s >> _W)
	}
	return
}

// The resulting borrow c is either 0 or 1.
func subVV(z, x, y []uint16) (c uint16) {
	for i := range z {
		d := uint32(x[i]) - uint32(y[i]) - uint32(c)
		z[i] = uint16(d)
		c = uint16(d >> 31)
	}
	return
}

func addVW(z, x []uint16, y uint16) (c uint16) {
	c = y
	for i := range z {
		s := uint32(x[i]) + uint32(c)
		z[i] = uint16(s)
		c = uint16(s >> _W)
	}
	return
}

func subVW(z, x []uint16, y uint16) (c uint16) {
	c = y
	for i := range z {
		d := uint32(x[i]) - uint32(c)
		z[i] = uint16(d)
		c = uint16(d >> 31)
	}
	return
}

// shlVU sets z to x<<s, 0 <= s < _W, and returns the bits shifted out of the
// top word. z may be x.
func shlVU(z, x []uint16, s uint) (c uint16) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	ŝ := _W - s
	n := len(z)
	c = x[n-1] >> ŝ
	for i := n - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return
}

// shrVU sets z to x>>s, 0 <= s < _W, and returns the bits shifted out of the
// bottom word, left aligned. z may be x.
func shrVU(z, x []uint16, s uint) (c uint16) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	ŝ := _W - s
	n := len(z)
	c = x[0] << ŝ
	for i := 0; i < n-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[n-1] = x[n-1] >> s
	return
}

// z = x*y + r
func mulAddVWW(z, x []uint16, y, r uint16) (c uint16) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// z += x*y
func addMulVVW(z, x []uint16, y uint16) (c uint16) {
	for i := range z {
		// (2**16-1)**2 + 2*(2**16-1) == 2**32-1
		t := uint32(x[i])*uint32(y) + uint32(z[i]) + uint32(c)
		z[i] = uint16(t)
		c = uint16(t >> _W)
	}
	return
}

// divWVW sets z to (xn<<(_W*len(x)) + x) / y and returns the remainder.
// Requires xn < y.
func divWVW(z []uint16, xn uint16, x []uint16, y uint16) (r uint16) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return r
}

// divWVWMagic is divWVW for a constant divisor, using a reciprocal multiply
// instead of a hardware division. (m.d-1)<<_W + _M must fit in a uint32.
func divWVWMagic(z []uint16, x []uint16, m magic) (r uint16) {
	var rr uint32
	for i := len(z) - 1; i >= 0; i-- {
		var q uint32
		q, rr = m.div(rr<<_W | uint32(x[i]))
		z[i] = uint16(q)
	}
	return uint16(rr)
}
