// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements EInteger conversions from and to strings, bytes and
// fixed-width integers.

package bignum

import (
	"fmt"
	"math"
	"strings"

	"fortio.org/safecast"
)

// FromRadixSubstring returns the value of s[start:end] in the given radix.
// The substring is an optional '-' followed by one or more digits; letters
// of either case stand for the digits 10 to 35.
//
// An InvalidArgument error is returned if the radix is outside [2,
// MaxRadix] or if start and end do not form a valid range of s. A
// FormatError error is returned if the substring is not a valid integer.
func FromRadixSubstring(s string, radix, start, end int) (*EInteger, error) {
	const op = "FromRadixSubstring"
	if radix < 2 || radix > MaxRadix {
		return nil, newError(InvalidArgument, op, "radix %d out of range", radix)
	}
	if start < 0 || end > len(s) || start > end {
		return nil, newError(InvalidArgument, op, "invalid range [%d:%d] for a string of length %d", start, end, len(s))
	}
	s = s[start:end]

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) == 0 {
		return nil, newError(FormatError, op, "no digits")
	}
	for i := 0; i < len(s); i++ {
		if digitVal(s[i]) >= radix {
			return nil, newError(FormatError, op, "invalid digit %q at offset %d", s[i], start+i+btoi(neg))
		}
	}
	return newEInteger(nat(nil).setDigits(s, radix), neg), nil
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// FromRadixString returns the value of s in the given radix.
// See FromRadixSubstring.
func FromRadixString(s string, radix int) (*EInteger, error) {
	return FromRadixSubstring(s, radix, 0, len(s))
}

// FromString returns the value of the decimal integer s.
func FromString(s string) (*EInteger, error) {
	return FromRadixSubstring(s, 10, 0, len(s))
}

// FromSubstring returns the value of the decimal integer s[start:end].
func FromSubstring(s string, start, end int) (*EInteger, error) {
	return FromRadixSubstring(s, 10, start, end)
}

// MustFromString is like FromString but panics on error. It simplifies the
// initialization of package-level variables.
func MustFromString(s string) *EInteger {
	x, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return x
}

// ToRadixString returns the representation of x in the given radix, using
// lower-case letters for digits above 9. It panics with an InvalidArgument
// *Error if radix is outside [2, MaxRadix].
func (x *EInteger) ToRadixString(radix int) string {
	mustNotNil("ToRadixString", x)
	return string(x.mag.itoa(x.neg, radix))
}

// String returns the decimal representation of x.
func (x *EInteger) String() string {
	if x == nil {
		return "<nil>"
	}
	return string(x.mag.itoa(x.neg, 10))
}

// Format implements fmt.Formatter. It accepts the formats
// 'b' (binary), 'o' (octal), 'd' (decimal), 'x' (lowercase hexadecimal),
// 'X' (uppercase hexadecimal), 's' and 'v' (decimal). The '+' and ' ' flags
// and width padding are honored.
func (x *EInteger) Format(s fmt.State, ch rune) {
	var radix int
	switch ch {
	case 'b':
		radix = 2
	case 'o':
		radix = 8
	case 'd', 's', 'v':
		radix = 10
	case 'x', 'X':
		radix = 16
	default:
		fmt.Fprintf(s, "%%!%c(bignum.EInteger=%s)", ch, x.String())
		return
	}
	if x == nil {
		fmt.Fprint(s, "<nil>")
		return
	}

	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}
	ds := string(x.mag.utoa(radix))
	if ch == 'X' {
		ds = strings.ToUpper(ds)
	}

	n := len(sign) + len(ds)
	pad := ""
	if w, ok := s.Width(); ok && w > n {
		pad = strings.Repeat(" ", w-n)
	}
	switch {
	case s.Flag('-'):
		fmt.Fprint(s, sign, ds, pad)
	case s.Flag('0') && pad != "":
		fmt.Fprint(s, sign, strings.Repeat("0", len(pad)), ds)
	default:
		fmt.Fprint(s, pad, sign, ds)
	}
}

var _ fmt.Formatter = Zero // *EInteger must implement fmt.Formatter

// FromBytes returns the value of the two's complement integer stored in b.
// The sign is the top bit of the most significant byte. An empty b is 0.
func FromBytes(b []byte, littleEndian bool) *EInteger {
	if len(b) == 0 {
		return Zero
	}
	buf := make([]byte, len(b))
	if littleEndian {
		for i, c := range b {
			buf[len(b)-1-i] = c
		}
	} else {
		copy(buf, b)
	}
	if buf[0]&0x80 == 0 {
		return newEInteger(nat(nil).setBytes(buf), false)
	}
	// -x == ^x + 1
	for i := range buf {
		buf[i] = ^buf[i]
	}
	m := nat(nil).setBytes(buf)
	return newEInteger(nat(nil).add(m, natOne), true)
}

// ToBytes returns the shortest two's complement encoding of x. Zero is
// encoded as a single 0 byte.
func (x *EInteger) ToBytes(littleEndian bool) []byte {
	mustNotNil("ToBytes", x)
	var buf []byte
	switch {
	case len(x.mag) == 0:
		buf = []byte{0}
	case !x.neg:
		buf = x.mag.bytes()
		if buf[0]&0x80 != 0 {
			buf = append([]byte{0}, buf...)
		}
	default:
		// -x == ^(x-1)
		buf = nat(nil).sub(x.mag, natOne).bytes()
		if len(buf) == 0 || buf[0]&0x80 != 0 {
			buf = append([]byte{0}, buf...)
		}
		for i := range buf {
			buf[i] = ^buf[i]
		}
	}
	if littleEndian {
		for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return buf
}

// CanFitInInt32 reports whether x can be represented as an int32.
func (x *EInteger) CanFitInInt32() bool {
	_, err := x.ToInt32Checked()
	return err == nil
}

// CanFitInInt64 reports whether x can be represented as an int64.
func (x *EInteger) CanFitInInt64() bool {
	_, err := x.ToInt64Checked()
	return err == nil
}

func (x *EInteger) overflow(op, typ string) error {
	return newError(Overflow, op, "%s does not fit in %s", x.String(), typ)
}

// ToInt64Checked returns the value of x as an int64, or an Overflow error if
// x is out of range.
func (x *EInteger) ToInt64Checked() (int64, error) {
	const op = "ToInt64Checked"
	mustNotNil(op, x)
	if len(x.mag) > 64/_W {
		return 0, x.overflow(op, "int64")
	}
	m := x.mag.uint64()
	if x.neg {
		if m > 1<<63 {
			return 0, x.overflow(op, "int64")
		}
		return int64(-m), nil
	}
	v, err := safecast.Conv[int64](m)
	if err != nil {
		return 0, x.overflow(op, "int64")
	}
	return v, nil
}

// ToInt32Checked returns the value of x as an int32, or an Overflow error if
// x is out of range.
func (x *EInteger) ToInt32Checked() (int32, error) {
	const op = "ToInt32Checked"
	mustNotNil(op, x)
	v, err := x.ToInt64Checked()
	if err != nil {
		return 0, x.overflow(op, "int32")
	}
	w, err := safecast.Conv[int32](v)
	if err != nil {
		return 0, x.overflow(op, "int32")
	}
	return w, nil
}

// ToUint64Checked returns the value of x as a uint64, or an Overflow error
// if x is negative or too large.
func (x *EInteger) ToUint64Checked() (uint64, error) {
	const op = "ToUint64Checked"
	mustNotNil(op, x)
	if x.neg || len(x.mag) > 64/_W {
		return 0, x.overflow(op, "uint64")
	}
	return x.mag.uint64(), nil
}

// ToInt64Unchecked returns the low 64 bits of the two's complement
// representation of x.
func (x *EInteger) ToInt64Unchecked() int64 {
	mustNotNil("ToInt64Unchecked", x)
	m := x.mag.uint64()
	if x.neg {
		m = -m
	}
	return int64(m)
}

// ToInt32Unchecked returns the low 32 bits of the two's complement
// representation of x.
func (x *EInteger) ToInt32Unchecked() int32 {
	return int32(x.ToInt64Unchecked() & math.MaxUint32)
}
