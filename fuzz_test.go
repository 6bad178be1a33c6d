// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"math/big"
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
)

func FuzzFromRadixString(f *testing.F) {
	for _, s := range []string{"0", "-1", "ff", "zz", "12345678901234567890", "-", ""} {
		f.Add(s, 16)
	}
	f.Fuzz(func(t *testing.T, s string, radix int) {
		radix = 2 + (radix&0xff)%(MaxRadix-1)
		x, err := FromRadixString(s, radix)
		b, ok := new(big.Int).SetString(s, radix)
		// big.Int accepts a '+' sign and underscores only with radix 0
		if ok != (err == nil) && !(ok && len(s) > 0 && s[0] == '+') {
			t.Fatalf("%q radix %d: err = %v, big ok = %v", s, radix, err, ok)
		}
		if err != nil {
			return
		}
		if x.String() != b.String() {
			t.Fatalf("%q radix %d: got %v, want %v", s, radix, x, b)
		}
		y, err := FromRadixString(x.ToRadixString(radix), radix)
		if err != nil || !x.Equals(y) {
			t.Fatalf("%q radix %d: round trip gave %v, %v", s, radix, y, err)
		}
	})
}

func FuzzArith(f *testing.F) {
	f.Add([]byte("\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0a\x0b\x0c"))
	f.Fuzz(func(t *testing.T, data []byte) {
		c := fuzz.NewConsumer(data)
		xb, err := c.GetBytes()
		if err != nil {
			return
		}
		yb, err := c.GetBytes()
		if err != nil {
			return
		}
		le, err := c.GetBool()
		if err != nil {
			return
		}
		x, y := FromBytes(xb, le), FromBytes(yb, le)
		bx, by := x.Big(), y.Big()
		check := func(op string, want *big.Int, got *EInteger) {
			if want.String() != got.String() {
				t.Fatalf("%v %s %v: got %v, want %v", bx, op, by, got, want)
			}
		}
		check("+", new(big.Int).Add(bx, by), x.Add(y))
		check("-", new(big.Int).Sub(bx, by), x.Subtract(y))
		check("*", new(big.Int).Mul(bx, by), x.Multiply(y))
		check("&", new(big.Int).And(bx, by), x.And(y))
		check("|", new(big.Int).Or(bx, by), x.Or(y))
		check("^", new(big.Int).Xor(bx, by), x.Xor(y))
		if !y.IsZero() {
			q, r := x.DivRem(y)
			bq, br := new(big.Int).QuoRem(bx, by, new(big.Int))
			check("/", bq, q)
			check("%", br, r)
		}
		check("gcd", new(big.Int).GCD(nil, nil, new(big.Int).Abs(bx), new(big.Int).Abs(by)), x.Gcd(y))
		if x.Sign() >= 0 {
			check("sqrt", new(big.Int).Sqrt(bx), x.Sqrt())
		}
		if !x.Equals(FromBytes(x.ToBytes(le), le)) {
			t.Fatalf("bytes round trip of %v", bx)
		}
	})
}

func FuzzShiftAccumulator(f *testing.F) {
	f.Add([]byte("\x10\x20\x30\x40\x50\x60\x70"))
	f.Fuzz(func(t *testing.T, data []byte) {
		c := fuzz.NewConsumer(data)
		mb, err := c.GetBytes()
		if err != nil {
			return
		}
		x := FromBytes(mb, true).Abs()
		a := NewBitShiftAccumulator(x, 0, 0)
		d := NewDigitShiftAccumulator(x, 0, 0)
		for i := 0; i < 4; i++ {
			n, err := c.GetInt()
			if err != nil {
				break
			}
			n &= 0x7f
			a.ShiftRight(int64(n))
			d.ShiftRight(int64(n))
			if a.DigitLength() != a.ShiftedInt().UnsignedBitLength() {
				t.Fatalf("stale bit length %d for %v", a.DigitLength(), a.ShiftedInt())
			}
			if d.DigitLength() != d.ShiftedInt().DigitCount() {
				t.Fatalf("stale digit length %d for %v", d.DigitLength(), d.ShiftedInt())
			}
		}
		if want := x.ShiftRight(int(a.DiscardedDigitCount().ToInt64Unchecked())); !want.Equals(a.ShiftedInt()) {
			t.Fatalf("%v >> %v: got %v, want %v", x, a.DiscardedDigitCount(), a.ShiftedInt(), want)
		}
	})
}
