// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements multiplication and squaring of nats.

package bignum

// Operands with at most basicMulThreshold words are multiplied using
// "grade school" multiplication; longer operands of the same length use the
// Karatsuba algorithm and operands of different lengths are multiplied in
// chunks the size of the shorter operand.
var basicMulThreshold = 10

// Operands with at most basicSqrThreshold words are squared using "grade
// school" squaring; longer operands use the Karatsuba algorithm optimized for
// x == y.
var basicSqrThreshold = 10

func (z nat) mul(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0)
	}
	// m >= n > 1

	// determine if z can be reused
	if alias(z, x) || alias(z, y) {
		z = nil // z is an alias for x or y - cannot reuse
	}

	if m == n {
		switch m {
		case 2:
			z = z.make(4)
			mul2(z, x, y)
			return z.norm()
		case 4:
			z = z.make(8)
			mul4((*[8]uint16)(z), (*[4]uint16)(x), (*[4]uint16)(y))
			return z.norm()
		case 8:
			z = z.make(16)
			mul8((*[16]uint16)(z), (*[8]uint16)(x), (*[8]uint16)(y))
			return z.norm()
		}
	}

	if n <= basicMulThreshold {
		z = z.make(m + n)
		basicMul(z, x, y)
		return z.norm()
	}

	if m == n {
		return karatsuba(x, y)
	}

	// m > n > basicMulThreshold
	return mulChunked(x, y)
}

// basicMul multiplies x and y and leaves the result in z.
// The (non-normalized) result is placed in z[0 : len(x) + len(y)].
func basicMul(z, x, y nat) {
	for i := range z[0 : len(x)+len(y)] {
		z[i] = 0
	}
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// mul2, mul4 and mul8 are column-wise (Comba) kernels for operands of exactly
// 2, 4 and 8 words. Each column sum is accumulated in a uint64 and only
// the final word of each column is stored.
func mul2(z, x, y nat) {
	x0, x1 := uint64(x[0]), uint64(x[1])
	y0, y1 := uint64(y[0]), uint64(y[1])
	t := x0 * y0
	z[0] = uint16(t)
	t = t>>_W + x0*y1 + x1*y0
	z[1] = uint16(t)
	t = t>>_W + x1*y1
	z[2] = uint16(t)
	z[3] = uint16(t >> _W)
}

func mul4(z *[8]uint16, x, y *[4]uint16) {
	var t uint64
	for k := 0; k < 7; k++ {
		i0, i1 := 0, k
		if k > 3 {
			i0, i1 = k-3, 3
		}
		for i := i0; i <= i1; i++ {
			t += uint64(x[i]) * uint64(y[k-i])
		}
		z[k] = uint16(t)
		t >>= _W
	}
	z[7] = uint16(t)
}

func mul8(z *[16]uint16, x, y *[8]uint16) {
	var t uint64
	for k := 0; k < 15; k++ {
		i0, i1 := 0, k
		if k > 7 {
			i0, i1 = k-7, 7
		}
		for i := i0; i <= i1; i++ {
			t += uint64(x[i]) * uint64(y[k-i])
		}
		z[k] = uint16(t)
		t >>= _W
	}
	z[15] = uint16(t)
}

// karatsuba returns x*y for len(x) == len(y) == n > basicMulThreshold.
//
// The operands are split at h = n/2 words:
//
//   x = x1*b + x0
//   y = y1*b + y0    with b = _B**h
//
// and
//
//   x*y = z2*b*b + (z2 + z0 - (x1-x0)(y1-y0))*b + z0
//
// with z2 = x1*y1 and z0 = x0*y0, so only three half-size products are
// needed. When n is odd, the high halves carry the extra word and the
// differences are taken over h+1 words.
func karatsuba(x, y nat) nat {
	n := len(x)
	h := n / 2

	x0, x1 := x[:h].norm(), x[h:]
	y0, y1 := y[:h].norm(), y[h:]

	z0 := nat(nil).mul(x0, y0)
	z2 := nat(nil).mul(x1, y1)

	dx, nx := absSub(x1, x0)
	dy, ny := absSub(y1, y0)
	p := nat(nil).mul(dx, dy)

	// mid = x1*y0 + x0*y1 >= 0
	mid := nat(nil).add(z0, z2)
	if nx == ny {
		mid = nat(nil).sub(mid, p)
	} else {
		mid = nat(nil).add(mid, p)
	}

	z := make(nat, 2*n)
	copy(z, z0)
	addAt(z, mid, h)
	addAt(z, z2, 2*h)
	return z.norm()
}

// mulChunked returns x*y for len(x) > len(y) > basicMulThreshold. x is cut
// into blocks of len(y) words; each block product is accumulated at its
// offset, carrying into the next block.
func mulChunked(x, y nat) nat {
	m, n := len(x), len(y)
	z := make(nat, m+n)
	for i := 0; i < m; i += n {
		end := i + n
		if end > m {
			end = m
		}
		p := nat(nil).mul(x[i:end].norm(), y)
		addAt(z, p, i)
	}
	return z.norm()
}

// sqr returns x*x.
func (z nat) sqr(x nat) nat {
	n := len(x)
	switch {
	case n == 0:
		return z[:0]
	case n == 1:
		d := x[0]
		z = z.make(2)
		z[1], z[0] = mulAddWWW(d, d, 0)
		return z.norm()
	}

	if alias(z, x) {
		z = nil // z is an alias for x - cannot reuse
	}

	if n <= basicSqrThreshold {
		z = z.make(2 * n)
		basicSqr(z, x)
		return z.norm()
	}

	return karatsubaSqr(x)
}

// basicSqr sets z = x*x and is asymptotically faster than basicMul
// by about a factor of 2, but slower for small arguments due to overhead.
// Requirements: len(x) > 0, len(z) == 2*len(x)
// The (non-normalized) result is placed in z.
func basicSqr(z, x nat) {
	n := len(x)
	t := make(nat, 2*n)
	z[1], z[0] = mulAddWWW(x[0], x[0], 0) // the initial square
	for i := 1; i < n; i++ {
		d := x[i]
		// z collects the squares x[i] * x[i]
		z[2*i+1], z[2*i] = mulAddWWW(d, d, 0)
		// t collects the products x[i] * x[j] where j < i
		t[2*i] = addMulVVW(t[i:2*i], x[0:i], d)
	}
	t[2*n-1] = shlVU(t[1:2*n-1], t[1:2*n-1], 1) // double the j < i products
	addVV(z, z, t)                              // combine the result
}

// karatsubaSqr squares x with the same split as karatsuba:
//
//   x*x = z2*b*b + (z2 + z0 - (x1-x0)**2)*b + z0
func karatsubaSqr(x nat) nat {
	n := len(x)
	h := n / 2

	x0, x1 := x[:h].norm(), x[h:]

	z0 := nat(nil).sqr(x0)
	z2 := nat(nil).sqr(x1)
	d, _ := absSub(x1, x0)
	p := nat(nil).sqr(d)

	// mid = 2*x1*x0 >= 0
	mid := nat(nil).add(z0, z2)
	mid = nat(nil).sub(mid, p)

	z := make(nat, 2*n)
	copy(z, z0)
	addAt(z, mid, h)
	addAt(z, z2, 2*h)
	return z.norm()
}
