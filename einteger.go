// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"math/big"
)

// An EInteger represents an arbitrary-precision signed integer. EIntegers
// are immutable: every operation returns a new value, or a shared cached one
// for small results. The zero value of an EInteger is 0.
//
// Since small values are shared, EIntegers must be compared with Equals or
// CompareTo, never by pointer.
type EInteger struct {
	mag nat // magnitude, normalized
	neg bool
}

const (
	cacheMin = -24
	cacheMax = 128
)

var smallCache = makeSmallCache()

func makeSmallCache() []EInteger {
	c := make([]EInteger, cacheMax-cacheMin+1)
	for i := range c {
		v := int64(i + cacheMin)
		if v < 0 {
			c[i] = EInteger{mag: nat(nil).setUint64(uint64(-v)), neg: true}
		} else {
			c[i] = EInteger{mag: nat(nil).setUint64(uint64(v))}
		}
	}
	return c
}

// Frequently used values.
var (
	Zero     = &smallCache[-cacheMin]
	One      = &smallCache[1-cacheMin]
	Ten      = &smallCache[10-cacheMin]
	MinusOne = &smallCache[-1-cacheMin]
)

// cached reports whether z is an entry of the shared small value cache.
// Each entry holds its own value, so only one address can match.
func (z *EInteger) cached() bool {
	if len(z.mag) > 1 {
		return false
	}
	v := 0
	if len(z.mag) == 1 {
		v = int(z.mag[0])
	}
	if z.neg {
		v = -v
	}
	return cacheMin <= v && v <= cacheMax && z == &smallCache[v-cacheMin]
}

// newEInteger freezes mag into an EInteger. mag must be normalized and not
// referenced elsewhere.
func newEInteger(mag nat, neg bool) *EInteger {
	switch len(mag) {
	case 0:
		return Zero
	case 1:
		v := int(mag[0])
		if neg {
			v = -v
		}
		if cacheMin <= v && v <= cacheMax {
			return &smallCache[v-cacheMin]
		}
	}
	if debugBignum && mag[len(mag)-1] == 0 {
		panic("BUG: non-normalized magnitude")
	}
	return &EInteger{mag: mag, neg: neg}
}

// FromInt32 returns an EInteger with the value v.
func FromInt32(v int32) *EInteger {
	return FromInt64(int64(v))
}

// FromInt64 returns an EInteger with the value v.
func FromInt64(v int64) *EInteger {
	if cacheMin <= v && v <= cacheMax {
		return &smallCache[v-cacheMin]
	}
	if v < 0 {
		// -v overflows for math.MinInt64, but uint64(-v) is still the magnitude
		return &EInteger{mag: nat(nil).setUint64(uint64(-v)), neg: true}
	}
	return &EInteger{mag: nat(nil).setUint64(uint64(v))}
}

// FromUint64 returns an EInteger with the value v.
func FromUint64(v uint64) *EInteger {
	if v <= cacheMax {
		return &smallCache[int(v)-cacheMin]
	}
	return &EInteger{mag: nat(nil).setUint64(v)}
}

// FromBig returns an EInteger with the value of x.
func FromBig(x *big.Int) *EInteger {
	if x == nil {
		panic(&Error{Kind: NullArgument, Op: "FromBig", Msg: "nil operand"})
	}
	if x.IsInt64() {
		return FromInt64(x.Int64())
	}
	const k = bitsPerBigWord / _W // words per big.Word
	xb := x.Bits()
	mag := make(nat, len(xb)*k)
	for i, w := range xb {
		for j := 0; j < k; j++ {
			mag[i*k+j] = uint16(w >> uint(j*_W))
		}
	}
	return newEInteger(mag.norm(), x.Sign() < 0)
}

const bitsPerBigWord = 32 << (^big.Word(0) >> 63)

// Big returns x as a *big.Int.
func (x *EInteger) Big() *big.Int {
	z := new(big.Int).SetBytes(x.mag.bytes())
	if x.neg {
		z.Neg(z)
	}
	return z
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x *EInteger) Sign() int {
	if len(x.mag) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x *EInteger) IsZero() bool { return len(x.mag) == 0 }

// IsEven reports whether x is even.
func (x *EInteger) IsEven() bool { return len(x.mag) == 0 || x.mag[0]&1 == 0 }

// IsPowerOfTwo reports whether x is a positive power of two.
func (x *EInteger) IsPowerOfTwo() bool {
	return !x.neg && len(x.mag) > 0 && x.mag.popCount() == 1
}

// CompareTo compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *EInteger) CompareTo(y *EInteger) int {
	mustNotNil("CompareTo", y)
	switch {
	case x.neg == y.neg:
		r := x.mag.cmp(y.mag)
		if x.neg {
			r = -r
		}
		return r
	case x.neg:
		return -1
	}
	return 1
}

// Equals reports whether x and y have the same value. A nil y is never
// equal to x.
func (x *EInteger) Equals(y *EInteger) bool {
	return y != nil && x.neg == y.neg && x.mag.cmp(y.mag) == 0
}

// Min returns the smaller of x and y.
func Min(x, y *EInteger) *EInteger {
	mustNotNil("Min", x, y)
	if x.CompareTo(y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max(x, y *EInteger) *EInteger {
	mustNotNil("Max", x, y)
	if x.CompareTo(y) >= 0 {
		return x
	}
	return y
}

// Abs returns |x|.
func (x *EInteger) Abs() *EInteger {
	if !x.neg {
		return x
	}
	return newEInteger(x.mag, false)
}

// Negate returns -x.
func (x *EInteger) Negate() *EInteger {
	if len(x.mag) == 0 {
		return Zero
	}
	return newEInteger(x.mag, !x.neg)
}
