// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"math/bits"
	"sync"
)

// log10(2) in 0.64 fixed point, rounded down.
const log10of2 = 0x4d104d427de7fbcc

// digitsShrinkWords is the size above which DigitCount divides out a power
// of ten before estimating.
const digitsShrinkWords = 64

// digitPowers memoizes the powers of ten DigitCount divides by. Entries are
// shared between goroutines and never modified.
var digitPowers = struct {
	sync.Mutex
	pows map[int]nat
}{pows: make(map[int]nat)}

// digitPower returns 10**n.
func digitPower(n int) nat {
	digitPowers.Lock()
	p, ok := digitPowers.pows[n]
	digitPowers.Unlock()
	if ok {
		return p
	}
	p = nat(nil).expWW(10, uint(n))
	digitPowers.Lock()
	if len(digitPowers.pows) < radixPowCacheSize {
		digitPowers.pows[n] = p
	}
	digitPowers.Unlock()
	return p
}

// decDigits returns the number of decimal digits of x. 0 has one digit.
func (x nat) decDigits() int64 {
	if len(x) == 0 {
		return 1
	}
	var n int64
	for len(x) > digitsShrinkWords {
		// x >= _B**(len(x)-1) > 10**(3*len(x)), so the quotient is non-zero
		k := 3 * len(x)
		x, _ = nat(nil).divRem(x, digitPower(k))
		n += int64(k)
	}
	if len(x) <= 64/_W {
		return n + int64(decDigits64(x.uint64()))
	}

	// 2**(l-1) <= x < 2**l, so the digit count is between
	// floor((l-1)*log10(2))+1 and floor(l*log10(2))+1.
	l := uint64(x.bitLen())
	hi, _ := bits.Mul64(l, log10of2)
	lo, _ := bits.Mul64(l-1, log10of2)
	if hi != lo && x.cmp(nat(nil).expWW(10, uint(hi))) < 0 {
		return n + int64(lo) + 1
	}
	return n + int64(hi) + 1
}

// DigitCount returns the number of decimal digits of |x|. DigitCount of 0
// is 1.
func (x *EInteger) DigitCount() int64 {
	mustNotNil("DigitCount", x)
	return x.mag.decDigits()
}
