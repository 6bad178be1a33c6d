// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements division of nats.

package bignum

import "math/bits"

// Divisors with at least divRecursiveThreshold words use the recursive
// Burnikel-Ziegler algorithm.
var divRecursiveThreshold = 40

// divRem returns q = u/v and r = u%v. It panics if v == 0.
func (z nat) divRem(u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic(&Error{Kind: DivideByZero, Op: "Divide", Msg: "division by zero"})
	}
	if u.cmp(v) < 0 {
		return z[:0], nat(nil).set(u)
	}
	if len(v) >= divRecursiveThreshold {
		return divRecursive(u, v)
	}
	return z.divClassic(u, v)
}

// divClassic divides u by v without recursion.
func (z nat) divClassic(u, v nat) (q, r nat) {
	switch {
	case u.cmp(v) < 0:
		return z[:0], nat(nil).set(u)
	case len(u) <= 2:
		a, b := uint32(u.uint64()), uint32(v.uint64())
		return z.setUint64(uint64(a / b)), nat(nil).setUint64(uint64(a % b))
	case len(u) <= 4:
		a, b := u.uint64(), v.uint64()
		return z.setUint64(a / b), nat(nil).setUint64(a % b)
	case len(v) == 1:
		var r1 uint16
		q, r1 = z.divW(u, v[0])
		return q, nat(nil).setWord(r1)
	}
	return divBasic(u, v)
}

// divBasic implements Knuth's algorithm D (TAOCP Vol. 2, section 4.3.1).
// It requires len(v) >= 2 and u >= v.
func divBasic(u, v nat) (q, r nat) {
	n := len(v)
	m := len(u) - n

	// D1: normalize so that the top word of the divisor has its high bit set.
	s := nlz(v[n-1])
	vn := make(nat, n)
	shlVU(vn, v, s)
	un := make(nat, len(u)+1)
	un[len(u)] = shlVU(un[:len(u)], u, s)

	q = make(nat, m+1)
	qhatv := make(nat, n+1)
	vtop := uint32(vn[n-1])
	vnext := uint32(vn[n-2])

	// D2
	for j := m; j >= 0; j-- {
		// D3: trial quotient from the top two words, corrected at most twice.
		num := uint32(un[j+n])<<_W | uint32(un[j+n-1])
		qhat := num / vtop
		rhat := num % vtop
		for qhat >= _B || qhat*vnext > (rhat<<_W|uint32(un[j+n-2])) {
			qhat--
			rhat += vtop
			if rhat >= _B {
				break
			}
		}

		// D4: multiply and subtract
		qhatv[n] = mulAddVWW(qhatv[:n], vn, uint16(qhat), 0)
		c := subVV(un[j:j+n+1], un[j:j+n+1], qhatv)
		if c != 0 {
			// D6: add back
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
			qhat--
		}
		q[j] = uint16(qhat)
	}

	// D8: unnormalize
	r = make(nat, n)
	shrVU(r, un[:n], s)
	return q.norm(), r.norm()
}

// divRecursive implements the Burnikel-Ziegler algorithm ("Fast Recursive
// Division", MPI-I-98-1-022). u and v are split into blocks of n words where
// n is a multiple of a power of two close to len(v)/divRecursiveThreshold,
// and each pair of blocks is divided by div2n1n.
func divRecursive(u, v nat) (q, r nat) {
	s := len(v)
	m := 1 << uint(bits.Len(uint(s/divRecursiveThreshold)))
	j := (s + m - 1) / m
	n := j * m

	// shift so that v has exactly n words with the high bit set
	sigma := uint(n*_W - v.bitLen())
	a := nat(nil).shl(u, sigma)
	b := nat(nil).shl(v, sigma)

	// number of n-word blocks of a; the top block has its high bit clear
	t := (a.bitLen() + n*_W) / (n * _W)
	if t < 2 {
		t = 2
	}

	block := func(i int) nat {
		lo := i * n
		if lo >= len(a) {
			return nil
		}
		hi := lo + n
		if hi > len(a) {
			hi = len(a)
		}
		return a[lo:hi].norm()
	}

	q = make(nat, (t-1)*n)
	z := nat(nil).shr(a, uint((t-2)*n*_W))
	var qi, ri nat
	for i := t - 2; i > 0; i-- {
		qi, ri = div2n1n(z, b, n)
		z = nat(nil).shl(ri, uint(n*_W))
		z = nat(nil).add(z, block(i-1))
		addAt(q, qi, i*n)
	}
	qi, ri = div2n1n(z, b, n)
	addAt(q, qi, 0)

	return q.norm(), nat(nil).shr(ri, sigma)
}

// div2n1n divides a 2n-word a by an n-word b. b must have its high bit set
// and a < b<<(n*_W).
func div2n1n(a, b nat, n int) (q, r nat) {
	if n%2 != 0 || n < divRecursiveThreshold {
		return nat(nil).divClassic(a, b)
	}
	h := n / 2

	// a = [a1 a2 a3 a4], each block h words wide
	q1, r1 := div3n2n(nat(nil).shr(a, uint(h*_W)), b, h)
	d := nat(nil).shl(r1, uint(h*_W))
	d = nat(nil).add(d, a.lowWords(h))
	q2, r := div3n2n(d, b, h)

	q = nat(nil).shl(q1, uint(h*_W))
	return nat(nil).add(q, q2), r
}

// div3n2n divides a 3h-word a by a 2h-word b. b must have its high bit set
// and a < b<<(h*_W).
func div3n2n(a, b nat, h int) (q, r nat) {
	a12 := nat(nil).shr(a, uint(h*_W))
	a1 := nat(nil).shr(a, uint(2*h*_W))
	a3 := a.lowWords(h)
	b1 := b[h:]
	b2 := b.lowWords(h)

	var r1 nat
	if a1.cmp(b1) < 0 {
		q, r1 = div2n1n(a12, b1, h)
	} else {
		// q = B**h - 1, r1 = a12 - b1*B**h + b1
		q = make(nat, h)
		for i := range q {
			q[i] = _M
		}
		r1 = nat(nil).add(a12, b1)
		r1 = nat(nil).sub(r1, nat(nil).shl(b1, uint(h*_W)))
	}

	d := nat(nil).mul(q, b2)
	rr := nat(nil).shl(r1, uint(h*_W))
	rr = nat(nil).add(rr, a3)
	for rr.cmp(d) < 0 {
		rr = nat(nil).add(rr, b)
		q = nat(nil).sub(q, natOne)
	}
	return q, nat(nil).sub(rr, d)
}
