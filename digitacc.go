// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math"

// A DigitShiftAccumulator is the decimal counterpart of BitShiftAccumulator:
// it discards decimal digits and remembers the last discarded digit (0 to 9)
// and whether any digit below it was non-zero.
type DigitShiftAccumulator struct {
	small     uint32
	big       *EInteger
	discarded *EInteger
	last      int
	older     int
	digits    int64 // cached digit count, or -1
}

// NewDigitShiftAccumulator returns an accumulator for the magnitude mag with
// an existing residue. It panics with an InvalidArgument *Error if mag < 0
// or last is not a decimal digit.
func NewDigitShiftAccumulator(mag *EInteger, last, older int) *DigitShiftAccumulator {
	const op = "NewDigitShiftAccumulator"
	mustNotNil(op, mag)
	if mag.neg {
		panic(&Error{Kind: InvalidArgument, Op: op, Msg: "negative magnitude"})
	}
	if last < 0 || last > 9 {
		panic(newError(InvalidArgument, op, "last discarded digit %d out of range", last))
	}
	a := &DigitShiftAccumulator{discarded: Zero, last: last, older: btoi(older != 0), digits: -1}
	if len(mag.mag) <= 32/_W {
		a.small = uint32(mag.mag.uint64())
	} else {
		a.big = mag
	}
	return a
}

// Radix returns 10.
func (a *DigitShiftAccumulator) Radix() int { return 10 }

// ShiftedInt returns the shifted value.
func (a *DigitShiftAccumulator) ShiftedInt() *EInteger {
	if a.big != nil {
		return a.big
	}
	return FromUint64(uint64(a.small))
}

// DiscardedDigitCount returns the total number of digits discarded so far.
func (a *DigitShiftAccumulator) DiscardedDigitCount() *EInteger { return a.discarded }

// LastDiscardedDigit returns the last digit discarded.
func (a *DigitShiftAccumulator) LastDiscardedDigit() int { return a.last }

// OlderDiscardedDigits returns 1 if any digit below the last discarded
// digit was non-zero, 0 otherwise.
func (a *DigitShiftAccumulator) OlderDiscardedDigits() int { return a.older }

// DigitLength returns the number of decimal digits of the shifted value.
// 0 has one digit.
func (a *DigitShiftAccumulator) DigitLength() int64 {
	if a.digits < 0 {
		if a.big != nil {
			a.digits = a.big.DigitCount()
		} else {
			a.digits = int64(decDigits64(uint64(a.small)))
			if a.digits == 0 {
				a.digits = 1
			}
		}
	}
	return a.digits
}

// ShiftRight discards the n least significant digits of the shifted value.
// It does nothing if n <= 0.
func (a *DigitShiftAccumulator) ShiftRight(n int64) {
	if n <= 0 {
		return
	}
	a.older |= btoi(a.last != 0)
	if a.big == nil && n <= 10 {
		v := uint64(a.small)
		p := pow10tab[n-1]
		a.last = int(v / p % 10)
		a.older |= btoi(v%p != 0)
		a.small = uint32(v / (p * 10))
	} else if n > a.DigitLength() {
		a.last = 0
		a.older |= btoi(!a.ShiftedInt().IsZero())
		a.big, a.small = nil, 0
	} else {
		q, r := a.big.DivRem(Ten.Pow(int(n - 1)))
		a.older |= btoi(!r.IsZero())
		q, r = q.DivRem(Ten)
		a.last = int(r.small())
		if len(q.mag) <= 32/_W {
			a.small, a.big = uint32(q.mag.uint64()), nil
		} else {
			a.big = q
		}
	}
	a.digits = -1
	a.discarded = a.discarded.Add(FromInt64(n))
}

// ShiftRightBig is like ShiftRight for a count that may not fit an int64.
func (a *DigitShiftAccumulator) ShiftRightBig(n *EInteger) {
	mustNotNil("ShiftRightBig", n)
	if n.Sign() <= 0 {
		return
	}
	if c, err := n.ToInt64Checked(); err == nil {
		a.ShiftRight(c)
		return
	}
	a.ShiftRight(math.MaxInt64)
	a.discarded = a.discarded.Add(n).Subtract(FromInt64(math.MaxInt64))
}

// TruncateRight is ShiftRight for callers that round toward zero.
func (a *DigitShiftAccumulator) TruncateRight(n int64) {
	a.ShiftRight(n)
}

// ShiftToDigits shifts the value right until it has at most digits digits,
// and by at least preShift digits if preShift is positive. See
// BitShiftAccumulator.ShiftToDigits.
func (a *DigitShiftAccumulator) ShiftToDigits(digits int64, preShift *EInteger, truncate bool) {
	if digits < 0 {
		panic(&Error{Kind: InvalidArgument, Op: "ShiftToDigits", Msg: "negative digit count"})
	}
	excess := a.DigitLength() - digits
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
