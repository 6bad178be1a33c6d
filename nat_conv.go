// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between nats and strings.

package bignum

import (
	"math"
	"math/bits"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// MaxRadix is the largest radix accepted by the conversion functions.
const MaxRadix = len(digits)

const (
	parseLeafDigits   = 32  // digit strings up to this length are not split
	formatLeafWords   = 100 // nats up to this length are formatted without splitting
	radixPowCacheSize = 64
)

var (
	// maxDigits64[r] is the largest n such that r**n fits in a uint64.
	maxDigits64 [MaxRadix + 1]int
	// wordPow[r] is the largest power of r that fits in a word and
	// wordDigits[r] its exponent.
	wordPow    [MaxRadix + 1]uint16
	wordDigits [MaxRadix + 1]int
)

func init() {
	for r := 2; r <= MaxRadix; r++ {
		p, n := uint64(1), 0
		for p <= math.MaxUint64/uint64(r) {
			p *= uint64(r)
			n++
		}
		maxDigits64[r] = n

		w, n := uint32(r), 1
		for w*uint32(r) <= _M {
			w *= uint32(r)
			n++
		}
		wordPow[r], wordDigits[r] = uint16(w), n
	}
}

// digitVal returns the value of the digit ch, or MaxRadix if ch is not a
// digit in any radix.
func digitVal(ch byte) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return int(ch - 'a' + 10)
	case 'A' <= ch && ch <= 'Z':
		return int(ch - 'A' + 10)
	}
	return MaxRadix
}

// pow2Shift returns log2(radix) if radix is a power of two, 0 otherwise.
func pow2Shift(radix int) uint {
	if radix&(radix-1) == 0 {
		return uint(bits.TrailingZeros(uint(radix)))
	}
	return 0
}

// radixPowers memoizes radix**n for the recursive conversions. A cache lives
// for a single conversion.
type radixPowers struct {
	radix uint16
	pows  map[int]nat
}

func newRadixPowers(radix int) *radixPowers {
	return &radixPowers{radix: uint16(radix), pows: make(map[int]nat)}
}

func (c *radixPowers) pow(n int) nat {
	if p, ok := c.pows[n]; ok {
		return p
	}
	p := nat(nil).expWW(c.radix, uint(n))
	if len(c.pows) < radixPowCacheSize {
		c.pows[n] = p
	}
	return p
}

// setDigits sets z to the value of s in the given radix. s must be a non
// empty string of valid digits.
func (z nat) setDigits(s string, radix int) nat {
	if shift := pow2Shift(radix); shift != 0 {
		return z.setPow2Digits(s, shift)
	}
	if len(s) <= parseLeafDigits {
		return z.setLeafDigits(s, radix)
	}
	return z.set(parseDigits(s, radix, newRadixPowers(radix)))
}

// parseDigits splits s in halves: value(hi)*radix**len(lo) + value(lo).
func parseDigits(s string, radix int, pows *radixPowers) nat {
	if len(s) <= parseLeafDigits {
		return nat(nil).setLeafDigits(s, radix)
	}
	n := len(s) / 2
	hi := parseDigits(s[:len(s)-n], radix, pows)
	lo := parseDigits(s[len(s)-n:], radix, pows)
	hi = nat(nil).mul(hi, pows.pow(n))
	return nat(nil).add(hi, lo)
}

func (z nat) setLeafDigits(s string, radix int) nat {
	if len(s) <= maxDigits64[radix] {
		var v uint64
		for i := 0; i < len(s); i++ {
			v = v*uint64(radix) + uint64(digitVal(s[i]))
		}
		return z.setUint64(v)
	}

	// accumulate digits in groups that fit a word
	bn, n := wordPow[radix], wordDigits[radix]
	z = z[:0]
	var acc uint32
	var k int
	for i := 0; i < len(s); i++ {
		acc = acc*uint32(radix) + uint32(digitVal(s[i]))
		if k++; k == n {
			z = z.mulAddWW(z, bn, uint16(acc))
			acc, k = 0, 0
		}
	}
	if k > 0 {
		z = z.mulAddWW(z, uint16(pow(uint32(radix), k)), uint16(acc))
	}
	return z
}

func (z nat) setPow2Digits(s string, shift uint) nat {
	z = z.make((len(s)*int(shift) + _W - 1) / _W)
	var acc uint32
	var nbits uint
	k := 0
	for i := len(s) - 1; i >= 0; i-- {
		acc |= uint32(digitVal(s[i])) << nbits
		nbits += shift
		if nbits >= _W {
			z[k] = uint16(acc)
			k++
			acc >>= _W
			nbits -= _W
		}
	}
	if nbits > 0 {
		z[k] = uint16(acc)
		k++
	}
	for ; k < len(z); k++ {
		z[k] = 0
	}
	return z.norm()
}

// utoa converts x to an ASCII representation in the given radix;
// radix must be between 2 and MaxRadix, inclusive.
func (x nat) utoa(radix int) []byte {
	return x.itoa(false, radix)
}

// itoa is like utoa but it prepends a '-' if neg && x != 0.
func (x nat) itoa(neg bool, radix int) []byte {
	if radix < 2 || radix > MaxRadix {
		panic(&Error{Kind: InvalidArgument, Op: "ToRadixString", Msg: "radix out of range"})
	}

	// x == 0
	if len(x) == 0 {
		return []byte("0")
	}
	// len(x) > 0

	// allocate buffer for conversion
	var i int
	shift := pow2Shift(radix)
	if shift != 0 {
		i = (len(x)*_W + int(shift) - 1) / int(shift)
	} else {
		i = x.bitLen()/(bits.Len(uint(radix))-1) + 1
	}
	if neg {
		i++
	}
	s := make([]byte, i)

	if shift != 0 {
		x.convertPow2(s, shift)
	} else if len(x) > formatLeafWords {
		x.convertWords(s, radix, newRadixPowers(radix))
	} else {
		nat(nil).set(x).convertLeaf(s, radix)
	}

	// strip leading zeros
	// (x != 0; thus s must contain at least one non-zero digit
	// and the loop will terminate)
	i = 0
	for s[i] == '0' {
		i++
	}

	if neg {
		i--
		s[i] = '-'
	}

	return s[i:]
}

// convertPow2 writes x right aligned into s, zero filling from the left.
func (x nat) convertPow2(s []byte, shift uint) {
	mask := uint32(1)<<shift - 1
	i := len(s)
	var acc uint32
	var nbits uint
	for _, w := range x {
		acc |= uint32(w) << nbits
		nbits += _W
		for nbits >= shift {
			i--
			s[i] = digits[acc&mask]
			acc >>= shift
			nbits -= shift
		}
	}
	if acc != 0 {
		i--
		s[i] = digits[acc]
	}
	for i > 0 {
		i--
		s[i] = '0'
	}
}

// convertWords writes x right aligned into s, zero filling from the left.
// x must be less than radix**len(s). Large values are split by a power of
// the radix and each half converted separately.
func (x nat) convertWords(s []byte, radix int, pows *radixPowers) {
	if len(x) <= formatLeafWords || len(s) < 2 {
		nat(nil).set(x).convertLeaf(s, radix)
		return
	}
	d := len(s) / 2
	q, r := nat(nil).divRem(x, pows.pow(d))
	q.convertWords(s[:len(s)-d], radix, pows)
	r.convertWords(s[len(s)-d:], radix, pows)
}

// convertLeaf writes q right aligned into s, zero filling from the left.
// q is overwritten.
func (q nat) convertLeaf(s []byte, radix int) {
	i := len(s)
	var r uint16
	if radix == 10 {
		// four digits per word division
		for len(q) > 0 {
			q, r = q.divW10000(q)
			t := uint32(r)
			for j := 0; j < 4 && i > 0; j++ {
				i--
				var d uint32
				t, d = div10.div(t)
				s[i] = '0' + byte(d)
			}
		}
	} else {
		bn, n := wordPow[radix], wordDigits[radix]
		b := uint16(radix)
		for len(q) > 0 {
			q, r = q.divW(q, bn)
			for j := 0; j < n && i > 0; j++ {
				i--
				s[i] = digits[r%b]
				r /= b
			}
		}
	}

	// prepend high-order zeros
	for i > 0 {
		i--
		s[i] = '0'
	}
}

// pow returns x**n for n > 0, and 1 otherwise.
func pow(x uint32, n int) (p uint32) {
	// n == sum of bi * 2**i, for 0 <= i < imax, and bi is 0 or 1
	// thus x**n == product of x**(2**i) for all i where bi == 1
	// (Russian Peasant Method for exponentiation)
	p = 1
	for n > 0 {
		if n&1 != 0 {
			p *= x
		}
		x *= x
		n >>= 1
	}
	return
}
