// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"math"
	"math/bits"
)

// A BitShiftAccumulator shifts a non-negative magnitude right while keeping
// track of the bits it discards, so that a caller can round the shifted
// value afterwards. The residue is summarized by the last discarded bit (the
// bit just below the least significant bit of the shifted value) and by
// whether any bit below it was ever set.
//
// A BitShiftAccumulator is mutable and must not be shared.
type BitShiftAccumulator struct {
	small     uint32    // shifted value if big == nil
	big       *EInteger // shifted value when it does not fit in small
	discarded *EInteger
	last      int
	older     int
	bitLen    int64 // cached bit length of the shifted value, or -1
}

// NewBitShiftAccumulator returns an accumulator for the magnitude mag with
// an existing residue: last is the last discarded bit (0 or 1), and older
// is non-zero if any bit below it was set. It panics with an
// InvalidArgument *Error if mag < 0 or last is not 0 or 1.
func NewBitShiftAccumulator(mag *EInteger, last, older int) *BitShiftAccumulator {
	const op = "NewBitShiftAccumulator"
	mustNotNil(op, mag)
	if mag.neg {
		panic(&Error{Kind: InvalidArgument, Op: op, Msg: "negative magnitude"})
	}
	if last != 0 && last != 1 {
		panic(newError(InvalidArgument, op, "last discarded bit %d is not 0 or 1", last))
	}
	a := &BitShiftAccumulator{discarded: Zero, last: last, older: btoi(older != 0), bitLen: -1}
	if len(mag.mag) <= 32/_W {
		a.small = uint32(mag.mag.uint64())
	} else {
		a.big = mag
	}
	return a
}

// NewBitShiftAccumulatorInt is like NewBitShiftAccumulator for a native
// magnitude.
func NewBitShiftAccumulatorInt(mag uint32, last, older int) *BitShiftAccumulator {
	if last != 0 && last != 1 {
		panic(newError(InvalidArgument, "NewBitShiftAccumulatorInt", "last discarded bit %d is not 0 or 1", last))
	}
	return &BitShiftAccumulator{small: mag, discarded: Zero, last: last, older: btoi(older != 0), bitLen: -1}
}

// Radix returns 2.
func (a *BitShiftAccumulator) Radix() int { return 2 }

// ShiftedInt returns the shifted value.
func (a *BitShiftAccumulator) ShiftedInt() *EInteger {
	if a.big != nil {
		return a.big
	}
	return FromUint64(uint64(a.small))
}

// DiscardedDigitCount returns the total number of bits discarded so far.
func (a *BitShiftAccumulator) DiscardedDigitCount() *EInteger { return a.discarded }

// LastDiscardedDigit returns the last bit discarded.
func (a *BitShiftAccumulator) LastDiscardedDigit() int { return a.last }

// OlderDiscardedDigits returns 1 if any bit below the last discarded bit
// was set, 0 otherwise.
func (a *BitShiftAccumulator) OlderDiscardedDigits() int { return a.older }

// DigitLength returns the bit length of the shifted value. The bit length
// of 0 is 0.
func (a *BitShiftAccumulator) DigitLength() int64 {
	if a.bitLen < 0 {
		a.bitLen = a.calcBitLength()
	}
	return a.bitLen
}

func (a *BitShiftAccumulator) calcBitLength() int64 {
	if a.big != nil {
		return a.big.UnsignedBitLength()
	}
	return int64(bits.Len32(a.small))
}

// ShiftRight discards the n least significant bits of the shifted value.
// It does nothing if n <= 0.
func (a *BitShiftAccumulator) ShiftRight(n int64) {
	if n <= 0 {
		return
	}
	if a.big != nil {
		a.shiftBigRight(n)
	} else {
		a.shiftSmallRight(n)
	}
	a.discarded = a.discarded.Add(FromInt64(n))
	if debugBignum && a.bitLen >= 0 && a.bitLen != a.calcBitLength() {
		panic("BUG: BitShiftAccumulator: stale bit length")
	}
}

// ShiftRightBig is like ShiftRight for a count that may not fit an int64.
func (a *BitShiftAccumulator) ShiftRightBig(n *EInteger) {
	mustNotNil("ShiftRightBig", n)
	if n.Sign() <= 0 {
		return
	}
	if c, err := n.ToInt64Checked(); err == nil {
		a.ShiftRight(c)
		return
	}
	// more bits than any magnitude can have: everything goes
	a.ShiftRight(math.MaxInt64)
	a.discarded = a.discarded.Add(n).Subtract(FromInt64(math.MaxInt64))
}

// TruncateRight is ShiftRight for callers that round toward zero. The
// residue is tracked the same way.
func (a *BitShiftAccumulator) TruncateRight(n int64) {
	a.ShiftRight(n)
}

// setBitLen updates the cached bit length after a shift by n.
func (a *BitShiftAccumulator) setBitLen(n int64) {
	if a.bitLen < 0 {
		return
	}
	if a.bitLen -= n; a.bitLen < 0 {
		a.bitLen = 0
	}
}

func (a *BitShiftAccumulator) shiftSmallRight(n int64) {
	v := a.small
	a.older |= a.last
	if n > 32 {
		a.last = 0
		a.older |= btoi(v != 0)
		a.small = 0
	} else {
		a.last = int(v>>uint(n-1)) & 1
		if v != 0 && int64(bits.TrailingZeros32(v)) < n-1 {
			a.older = 1
		}
		a.small = v >> uint(n)
	}
	a.setBitLen(n)
}

func (a *BitShiftAccumulator) shiftBigRight(n int64) {
	v := a.big
	a.older |= a.last
	if lb := v.LowBit(); lb >= 0 && lb < n-1 {
		a.older = 1
	}
	bl := a.DigitLength()
	if n > bl {
		a.last = 0
		a.big = nil
		a.small = 0
		a.bitLen = 0
		return
	}
	a.last = int(v.mag.bit(uint(n - 1)))
	v = v.ShiftRight(int(n))
	a.setBitLen(n)
	if len(v.mag) <= 32/_W {
		a.small = uint32(v.mag.uint64())
		a.big = nil
	} else {
		a.big = v
	}
}

// ShiftToDigits shifts the value right until it has at most nbits bits.
// If preShift is positive, the value is shifted by at least preShift bits
// as well, so the shift is the larger of preShift and the excess bit
// length. The truncate flag does not change the shift; rounding is left to
// the caller. It panics with an InvalidArgument *Error if nbits < 0.
func (a *BitShiftAccumulator) ShiftToDigits(nbits int64, preShift *EInteger, truncate bool) {
	if nbits < 0 {
		panic(&Error{Kind: InvalidArgument, Op: "ShiftToDigits", Msg: "negative digit count"})
	}
	excess := a.DigitLength() - nbits
	if preShift != nil && preShift.Sign() > 0 {
		if FromInt64(excess).CompareTo(preShift) <= 0 {
			a.ShiftRightBig(preShift)
		} else {
			a.ShiftRight(excess)
		}
		return
	}
	if excess > 0 {
		a.ShiftRight(excess)
	}
}
