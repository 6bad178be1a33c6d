// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc implements the operations of the bigcalc command.
package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/db47h/bignum"
)

// An Op is a bigcalc operation on EInteger operands.
type Op struct {
	Name  string
	Short string
	Args  int // number of operands
	Run   func(x []*bignum.EInteger) ([]*bignum.EInteger, error)
}

func one(f func(x *bignum.EInteger) *bignum.EInteger) func([]*bignum.EInteger) ([]*bignum.EInteger, error) {
	return func(x []*bignum.EInteger) ([]*bignum.EInteger, error) {
		return []*bignum.EInteger{f(x[0])}, nil
	}
}

func two(f func(x, y *bignum.EInteger) *bignum.EInteger) func([]*bignum.EInteger) ([]*bignum.EInteger, error) {
	return func(x []*bignum.EInteger) ([]*bignum.EInteger, error) {
		return []*bignum.EInteger{f(x[0], x[1])}, nil
	}
}

func shift(f func(x *bignum.EInteger, n int) *bignum.EInteger) func([]*bignum.EInteger) ([]*bignum.EInteger, error) {
	return func(x []*bignum.EInteger) ([]*bignum.EInteger, error) {
		n, err := x[1].ToInt32Checked()
		if err != nil {
			return nil, err
		}
		return []*bignum.EInteger{f(x[0], int(n))}, nil
	}
}

// Ops lists the bigcalc operations.
var Ops = []Op{
	{"add", "x + y", 2, two((*bignum.EInteger).Add)},
	{"sub", "x - y", 2, two((*bignum.EInteger).Subtract)},
	{"mul", "x * y", 2, two((*bignum.EInteger).Multiply)},
	{"div", "x / y, truncated toward zero", 2, two((*bignum.EInteger).Divide)},
	{"rem", "x - y*(x/y)", 2, two((*bignum.EInteger).Remainder)},
	{"mod", "x modulo y, in [0, y)", 2, two((*bignum.EInteger).Mod)},
	{"divrem", "quotient and remainder of x / y", 2, func(x []*bignum.EInteger) ([]*bignum.EInteger, error) {
		q, r := x[0].DivRem(x[1])
		return []*bignum.EInteger{q, r}, nil
	}},
	{"pow", "x ** y", 2, two((*bignum.EInteger).PowBig)},
	{"modpow", "x ** y mod m", 3, func(x []*bignum.EInteger) ([]*bignum.EInteger, error) {
		return []*bignum.EInteger{x[0].ModPow(x[1], x[2])}, nil
	}},
	{"gcd", "greatest common divisor of x and y", 2, two((*bignum.EInteger).Gcd)},
	{"sqrt", "integer square root of x", 1, one((*bignum.EInteger).Sqrt)},
	{"sqrtrem", "integer square root of x and remainder", 1, func(x []*bignum.EInteger) ([]*bignum.EInteger, error) {
		s, r := x[0].SqrtRem()
		return []*bignum.EInteger{s, r}, nil
	}},
	{"and", "x & y", 2, two((*bignum.EInteger).And)},
	{"or", "x | y", 2, two((*bignum.EInteger).Or)},
	{"xor", "x ^ y", 2, two((*bignum.EInteger).Xor)},
	{"not", "^x", 1, one((*bignum.EInteger).Not)},
	{"shl", "x << n", 2, shift((*bignum.EInteger).ShiftLeft)},
	{"shr", "x >> n, rounded toward negative infinity", 2, shift((*bignum.EInteger).ShiftRight)},
	{"digits", "number of decimal digits of x", 1, one(func(x *bignum.EInteger) *bignum.EInteger {
		return bignum.FromInt64(x.DigitCount())
	})},
	{"bits", "bit length of |x|", 1, one(func(x *bignum.EInteger) *bignum.EInteger {
		return bignum.FromInt64(x.UnsignedBitLength())
	})},
}

// lookup returns the operation with the given name.
func lookup(name string) (Op, bool) {
	for _, op := range Ops {
		if op.Name == name {
			return op, true
		}
	}
	return Op{}, false
}

// Parse parses operands in the given radix.
func Parse(args []string, radix int) ([]*bignum.EInteger, error) {
	x := make([]*bignum.EInteger, len(args))
	for i, s := range args {
		v, err := bignum.FromRadixString(s, radix)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
		x[i] = v
	}
	return x, nil
}

// Format formats results in the given radix, separated by spaces.
func Format(x []*bignum.EInteger, radix int) string {
	s := make([]string, len(x))
	for i, v := range x {
		s[i] = v.ToRadixString(radix)
	}
	return strings.Join(s, " ")
}

// guard turns a panicking *bignum.Error into an error.
func guard(err *error) {
	if r := recover(); r != nil {
		var e *bignum.Error
		if re, ok := r.(error); ok && errors.As(re, &e) {
			*err = e
			return
		}
		panic(r)
	}
}

// Eval parses args in radix in, runs op and formats the results in radix out.
func (op Op) Eval(args []string, in, out int) (res string, err error) {
	if len(args) != op.Args {
		return "", fmt.Errorf("%s: expected %d operands, got %d", op.Name, op.Args, len(args))
	}
	x, err := Parse(args, in)
	if err != nil {
		return "", err
	}
	defer guard(&err)
	r, err := op.Run(x)
	if err != nil {
		return "", err
	}
	return Format(r, out), nil
}

// Convert converts s from radix in to radix out.
func Convert(s string, in, out int) (res string, err error) {
	x, err := bignum.FromRadixString(s, in)
	if err != nil {
		return "", err
	}
	defer guard(&err)
	return x.ToRadixString(out), nil
}

// Round rounds s, in radix in, to the given number of significant digits
// in the radix of rm and formats the result in radix out.
func Round(s string, in, out int, rm bignum.RadixMath, digits int64, mode bignum.RoundingMode) (res string, err error) {
	x, err := bignum.FromRadixString(s, in)
	if err != nil {
		return "", err
	}
	defer guard(&err)
	return bignum.RoundToDigits(x, rm, digits, mode).ToRadixString(out), nil
}

// RadixMath returns the RadixMath named kind: "binary" or "decimal".
func RadixMath(kind string) (bignum.RadixMath, error) {
	switch strings.ToLower(kind) {
	case "binary", "bin", "2":
		return bignum.BinaryMath, nil
	case "decimal", "dec", "10":
		return bignum.DecimalMath, nil
	}
	return nil, fmt.Errorf("unknown radix kind %q", kind)
}
