// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the radix-specific helpers used by binary and
// decimal floating-point layers to round magnitudes.

package bignum

import (
	"fmt"
	"strings"
)

// A ShiftAccumulator discards the low digits of a magnitude in some radix
// and keeps the rounding residue. BitShiftAccumulator and
// DigitShiftAccumulator implement it.
type ShiftAccumulator interface {
	Radix() int
	ShiftRight(n int64)
	ShiftRightBig(n *EInteger)
	TruncateRight(n int64)
	ShiftToDigits(digits int64, preShift *EInteger, truncate bool)
	ShiftedInt() *EInteger
	DiscardedDigitCount() *EInteger
	LastDiscardedDigit() int
	OlderDiscardedDigits() int
	DigitLength() int64
}

var (
	_ ShiftAccumulator = (*BitShiftAccumulator)(nil)
	_ ShiftAccumulator = (*DigitShiftAccumulator)(nil)
)

// RadixMath groups the operations a floating-point layer needs on the
// mantissa of a number in a given radix.
type RadixMath interface {
	// Radix returns the radix, 2 or 10.
	Radix() int
	// NewShiftAccumulator returns a ShiftAccumulator for the non-negative
	// magnitude mag and the given residue.
	NewShiftAccumulator(mag *EInteger, last, older int) ShiftAccumulator
	// MultiplyByRadixPower returns x * radix**power. power must not be
	// negative.
	MultiplyByRadixPower(x *EInteger, power int64) *EInteger
	// DigitLength returns the number of digits of |x|.
	DigitLength(x *EInteger) int64
	// Split strips trailing zero digits: x == mant * radix**exp.
	Split(x *EInteger) (mant *EInteger, exp int64)
}

// Radix helpers.
var (
	BinaryMath  RadixMath = binaryMath{}
	DecimalMath RadixMath = decimalMath{}
)

type binaryMath struct{}

func (binaryMath) Radix() int { return 2 }

func (binaryMath) NewShiftAccumulator(mag *EInteger, last, older int) ShiftAccumulator {
	return NewBitShiftAccumulator(mag, last, older)
}

func (binaryMath) MultiplyByRadixPower(x *EInteger, power int64) *EInteger {
	mustNotNil("MultiplyByRadixPower", x)
	if power < 0 {
		panic(&Error{Kind: InvalidArgument, Op: "MultiplyByRadixPower", Msg: "negative power"})
	}
	return x.ShiftLeft(int(power))
}

func (binaryMath) DigitLength(x *EInteger) int64 {
	mustNotNil("DigitLength", x)
	return x.UnsignedBitLength()
}

func (binaryMath) Split(x *EInteger) (*EInteger, int64) {
	mustNotNil("Split", x)
	if x.IsZero() {
		return Zero, 0
	}
	e := x.LowBit()
	return x.ShiftRight(int(e)), e
}

type decimalMath struct{}

func (decimalMath) Radix() int { return 10 }

func (decimalMath) NewShiftAccumulator(mag *EInteger, last, older int) ShiftAccumulator {
	return NewDigitShiftAccumulator(mag, last, older)
}

func (decimalMath) MultiplyByRadixPower(x *EInteger, power int64) *EInteger {
	mustNotNil("MultiplyByRadixPower", x)
	if power < 0 {
		panic(&Error{Kind: InvalidArgument, Op: "MultiplyByRadixPower", Msg: "negative power"})
	}
	if power == 0 || x.IsZero() {
		return x
	}
	return x.Multiply(Ten.Pow(int(power)))
}

func (decimalMath) DigitLength(x *EInteger) int64 {
	mustNotNil("DigitLength", x)
	return x.DigitCount()
}

var tenThousand = FromInt64(10000)

func (decimalMath) Split(x *EInteger) (*EInteger, int64) {
	mustNotNil("Split", x)
	if x.IsZero() {
		return Zero, 0
	}
	var e int64
	for {
		q, r := x.DivRem(tenThousand)
		if !r.IsZero() {
			break
		}
		x, e = q, e+4
	}
	for {
		q, r := x.DivRem(Ten)
		if !r.IsZero() {
			break
		}
		x, e = q, e+1
	}
	return x, e
}

// RoundingMode determines how a shifted magnitude is rounded.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToNearestAway                     // == IEEE 754-2008 roundTiesToAway
	ToZero                            // == IEEE 754-2008 roundTowardZero
	AwayFromZero                      // no IEEE 754-2008 equivalent
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
)

var roundingModeNames = [...]string{
	ToNearestEven: "ToNearestEven",
	ToNearestAway: "ToNearestAway",
	ToZero:        "ToZero",
	AwayFromZero:  "AwayFromZero",
	ToNegativeInf: "ToNegativeInf",
	ToPositiveInf: "ToPositiveInf",
}

func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", byte(m))
}

// short names accepted by ParseRoundingMode.
var roundingModeAliases = map[string]RoundingMode{
	"halfeven": ToNearestEven,
	"halfup":   ToNearestAway,
	"down":     ToZero,
	"up":       AwayFromZero,
	"floor":    ToNegativeInf,
	"ceiling":  ToPositiveInf,
}

// ParseRoundingMode returns the rounding mode named s. Names are matched
// without regard to case, and dashes are ignored, so that "to-nearest-even"
// names ToNearestEven. The short names half-even, half-up, down, up, floor
// and ceiling are accepted as well.
func ParseRoundingMode(s string) (RoundingMode, error) {
	k := strings.ReplaceAll(s, "-", "")
	for m, name := range roundingModeNames {
		if strings.EqualFold(k, name) {
			return RoundingMode(m), nil
		}
	}
	if m, ok := roundingModeAliases[strings.ToLower(k)]; ok {
		return m, nil
	}
	return 0, newError(InvalidArgument, "ParseRoundingMode", "unknown rounding mode %q", s)
}

// Round reports whether the magnitude left in acc must be incremented to
// round it in the given mode. neg is the sign of the number the magnitude
// belongs to.
func Round(acc ShiftAccumulator, mode RoundingMode, neg bool) bool {
	r := acc.LastDiscardedDigit()
	sbit := acc.OlderDiscardedDigits() != 0
	if r == 0 && !sbit {
		// exact
		return false
	}
	half := acc.Radix() / 2
	switch mode {
	case ToNegativeInf:
		return neg
	case ToZero:
		return false
	case ToNearestEven:
		return r > half || (r == half && (sbit || !acc.ShiftedInt().IsEven()))
	case ToNearestAway:
		return r >= half
	case AwayFromZero:
		return true
	case ToPositiveInf:
		return !neg
	}
	panic(newError(InvalidArgument, "Round", "unknown rounding mode %v", mode))
}

// RoundToDigits rounds x to at most digits significant digits in the radix
// of rm, and returns the rounded value with the same scale as x.
func RoundToDigits(x *EInteger, rm RadixMath, digits int64, mode RoundingMode) *EInteger {
	mustNotNil("RoundToDigits", x)
	if digits <= 0 {
		panic(&Error{Kind: InvalidArgument, Op: "RoundToDigits", Msg: "digit count must be positive"})
	}
	acc := rm.NewShiftAccumulator(x.Abs(), 0, 0)
	acc.ShiftToDigits(digits, nil, false)
	m := acc.ShiftedInt()
	exp := acc.DiscardedDigitCount().ToInt64Unchecked()
	if Round(acc, mode, x.neg) {
		m = m.Increment()
		if rm.DigitLength(m) > digits {
			// carried into a new digit: m is a power of the radix
			m = m.Divide(FromInt64(int64(rm.Radix())))
			exp++
		}
	}
	m = rm.MultiplyByRadixPower(m, exp)
	if x.neg {
		m = m.Negate()
	}
	return m
}
