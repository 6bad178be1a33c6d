// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bignum implements arbitrary-precision integer arithmetic and the
shift accumulators that floating-point layers use to round magnitudes.

The magnitude of an EInteger is stored in a little-endian slice of 16-bit
words. All arithmetic is done on words with native integer operations; the
package never uses floating-point arithmetic internally.

Unlike big.Int, EIntegers are immutable. Operations are methods on the first
operand that return a new value:

    func (x *EInteger) Unary() *EInteger              // r = unary x
    func (x *EInteger) Binary(y *EInteger) *EInteger  // r = x binary y
    func (x *EInteger) Pred() P                       // p = pred(x)

so arithmetic expressions read as chains of calls:

    a := bignum.FromInt64(5)
    b := a.Multiply(bignum.FromInt64(200)).Add(bignum.One) // b == 1001

The zero value of an EInteger is 0. Small values are shared, so EIntegers
must be compared with Equals or CompareTo, never by pointer. Values may be
shared freely between goroutines.

The algorithms depend on operand size: multiplication uses fixed-size
column kernels, schoolbook, Karatsuba or chunked multiplication; division
uses native arithmetic, single-word division, Knuth's algorithm D or
Burnikel-Ziegler recursive division. Radix conversion splits large operands
recursively.

Errors

Failures caused by input data, such as malformed text or a value that does not
fit a fixed-width integer, are returned as *Error values. Violated
preconditions, such as a division by zero or a nil operand, panic with an
*Error, the same way math/big panics on division by zero. The Err* sentinels
match any *Error of the same kind with errors.Is.

Shift accumulators

A BitShiftAccumulator discards the low bits of a magnitude and keeps track of
the last discarded bit and of whether any older bit was set. Round decides
from that residue whether the shifted magnitude must be incremented.
DigitShiftAccumulator does the same with decimal digits. BinaryMath and
DecimalMath bundle the accumulators with the other radix-specific helpers.
*/
package bignum
