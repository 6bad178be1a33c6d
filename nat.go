// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"math/bits"
)

// nat is an unsigned integer x of the form
//
//   x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B and 0 <= i < n is stored in a slice of length n,
// with the digits x[i] as the slice elements.
//
// A number is normalized if the slice contains no leading 0 digits.
// During arithmetic operations, denormalized values may occur but are
// always normalized before returning the final result. The normalized
// representation of 0 is the empty or nil slice (length = 0).
//
// Operations returning a nat never modify their operands. The receiver z is
// only used as storage when it does not alias an operand; callers in this
// package pass nil unless they own z.
type nat []uint16

var natOne = nat{1}

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most nats start small and stay that way; don't over-allocate.
		return make(nat, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

func (z nat) setWord(x uint16) nat {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) setUint64(x uint64) nat {
	if x == 0 {
		return z[:0]
	}
	n := (bits.Len64(x) + _W - 1) / _W
	z = z.make(n)
	for i := range z {
		z[i] = uint16(x)
		x >>= _W
	}
	return z
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// uint64 returns the low 64 bits of x.
func (x nat) uint64() (v uint64) {
	n := len(x)
	if n > 64/_W {
		n = 64 / _W
	}
	for i := n - 1; i >= 0; i-- {
		v = v<<_W | uint64(x[i])
	}
	return v
}

func (x nat) cmp(y nat) (r int) {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

func (z nat) add(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m + 1)
	c := addVV(z[0:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.norm()
}

// sub returns x - y. It panics if x < y.
func (z nat) sub(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		panic("BUG: nat.sub underflow")
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m)
	c := subVV(z[0:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("BUG: nat.sub underflow")
	}

	return z.norm()
}

// absSub returns |x - y| and whether x < y.
func absSub(x, y nat) (nat, bool) {
	if x.cmp(y) < 0 {
		return nat(nil).sub(y, x), true
	}
	return nat(nil).sub(x, y), false
}

// addAt implements z += x<<(_W*i); z must be long enough.
// (we don't use nat.add because we need z to stay the same
// slice, and we don't need to normalize z after each addition)
func addAt(z, x nat, i int) {
	if n := len(x); n > 0 {
		if c := addVV(z[i:i+n], z[i:], x); c != 0 {
			j := i + n
			if j < len(z) {
				c = addVW(z[j:], z[j:], c)
			}
			if debugBignum && c != 0 {
				panic("BUG: addAt overflow")
			}
		}
	}
}

// mulAddWW returns x*y + r.
func (z nat) mulAddWW(x nat, y, r uint16) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r) // result is r
	}
	// m > 0

	if alias(z, x) && !same(z, x) {
		z = nil
	}
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)

	return z.norm()
}

// divW returns q = x/y and r = x%y. Division by 2 is a shift and division
// by 10 uses a reciprocal multiply.
func (z nat) divW(x nat, y uint16) (q nat, r uint16) {
	m := len(x)
	switch {
	case y == 0:
		panic(&Error{Kind: DivideByZero, Op: "Divide", Msg: "division by zero"})
	case y == 1:
		q = z.set(x) // result is x
		return
	case m == 0:
		q = z[:0] // result is 0
		return
	case y == 2:
		return z.shr(x, 1), x[0] & 1
	}
	// m > 0
	if alias(z, x) && !same(z, x) {
		z = nil
	}
	z = z.make(m)
	if y == 10 {
		r = divWVWMagic(z, x, div10)
	} else {
		r = divWVW(z, 0, x, y)
	}
	q = z.norm()
	return
}

// divW10000 returns x/10000 and x%10000.
func (z nat) divW10000(x nat) (q nat, r uint16) {
	if alias(z, x) && !same(z, x) {
		z = nil
	}
	z = z.make(len(x))
	r = divWVWMagic(z, x, div10000)
	return z.norm(), r
}

// shl returns x << s.
func (z nat) shl(x nat, s uint) nat {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	if s == 0 {
		if same(z, x) {
			return z
		}
		if !alias(z, x) {
			return z.set(x)
		}
	}
	// m > 0

	if alias(z, x) {
		z = nil
	}
	n := m + int(s/_W)
	z = z.make(n + 1)
	z[n] = shlVU(z[n-m:n], x, s%_W)
	for i := range z[0 : n-m] {
		z[i] = 0
	}

	return z.norm()
}

// shr returns x >> s.
func (z nat) shr(x nat, s uint) nat {
	m := len(x)
	n := m - int(s/_W)
	if n <= 0 {
		return z[:0]
	}
	// n > 0

	if alias(z, x) {
		z = nil
	}
	z = z.make(n)
	shrVU(z, x[m-n:], s%_W)

	return z.norm()
}

// Length of x in bits. x must be normalized.
func (x nat) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*_W + bits.Len16(x[i])
	}
	return 0
}

// trailingZeroBits returns the number of consecutive least significant zero
// bits of x.
func (x nat) trailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*_W + uint(bits.TrailingZeros16(w))
		}
	}
	return 0
}

// bit returns the value of the i'th bit of x.
func (x nat) bit(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j]>>(i%_W)) & 1
}

// sticky returns 1 if there's a 1 bit within the
// i least significant bits, otherwise it returns 0.
func (x nat) sticky(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		if len(x) == 0 {
			return 0
		}
		return 1
	}
	// 0 <= j < len(x)
	for _, w := range x[:j] {
		if w != 0 {
			return 1
		}
	}
	if x[j]<<(_W-i%_W) != 0 {
		return 1
	}
	return 0
}

// lowBits returns x mod 2**n.
func (z nat) lowBits(x nat, n uint) nat {
	w := int((n + _W - 1) / _W)
	if w > len(x) {
		w = len(x)
	}
	if alias(z, x) && !same(z, x) {
		z = nil
	}
	z = z.make(w)
	copy(z, x)
	if w > 0 && n%_W != 0 && int(n/_W) < len(x) {
		z[w-1] &= 1<<(n%_W) - 1
	}
	return z.norm()
}

// lowWords returns the n least significant words of x, normalized. The result
// shares storage with x and must only be used as an operand.
func (x nat) lowWords(n int) nat {
	if n < len(x) {
		x = x[:n:n]
	}
	return x.norm()
}

func (z nat) and(x, y nat) nat {
	m := len(x)
	n := len(y)
	if m > n {
		m = n
	}
	// m <= n

	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m)
	for i := 0; i < m; i++ {
		z[i] = x[i] & y[i]
	}

	return z.norm()
}

func (z nat) andNot(x, y nat) nat {
	m := len(x)
	n := len(y)
	if n > m {
		n = m
	}
	// m >= n

	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] &^ y[i]
	}
	copy(z[n:m], x[n:m])

	return z.norm()
}

func (z nat) or(x, y nat) nat {
	m := len(x)
	n := len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	// m >= n

	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] | y[i]
	}
	copy(z[n:m], s[n:m])

	return z.norm()
}

func (z nat) xor(x, y nat) nat {
	m := len(x)
	n := len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	// m >= n

	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] ^ y[i]
	}
	copy(z[n:m], s[n:m])

	return z.norm()
}

// popCount returns the number of one bits in x.
func (x nat) popCount() (n int) {
	for _, w := range x {
		n += bits.OnesCount16(w)
	}
	return n
}

// expWW returns x**y.
func (z nat) expWW(x uint16, y uint) nat {
	r := nat(nil).setWord(1)
	b := nat(nil).setWord(x)
	for y > 0 {
		if y&1 != 0 {
			r = nat(nil).mul(r, b)
		}
		y >>= 1
		if y > 0 {
			b = nat(nil).sqr(b)
		}
	}
	return z.set(r)
}

// bytes returns the big-endian bytes of x without leading zeros.
func (x nat) bytes() []byte {
	n := (x.bitLen() + 7) / 8
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[n-1-i] = byte(x[i/2] >> (8 * uint(i%2)))
	}
	return buf
}

// setBytes interprets buf as the bytes of a big-endian unsigned
// integer, sets z to that value, and returns z.
func (z nat) setBytes(buf []byte) nat {
	z = z.make((len(buf) + 1) / 2)
	for i := range z {
		z[i] = 0
	}
	for i := 0; i < len(buf); i++ {
		z[i/2] |= uint16(buf[len(buf)-1-i]) << (8 * uint(i%2))
	}
	return z.norm()
}

func same(x, y nat) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}

// alias reports whether x and y share the same base array.
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}
