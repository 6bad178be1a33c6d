// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the arithmetic operations of EInteger.

package bignum

// small returns the value of x, which must have at most 3 words.
func (x *EInteger) small() int64 {
	v := int64(x.mag.uint64())
	if x.neg {
		v = -v
	}
	return v
}

// Add returns x + y.
func (x *EInteger) Add(y *EInteger) *EInteger {
	mustNotNil("Add", x, y)
	return x.add(y.mag, y.neg)
}

// Subtract returns x - y.
func (x *EInteger) Subtract(y *EInteger) *EInteger {
	mustNotNil("Subtract", x, y)
	return x.add(y.mag, !y.neg && len(y.mag) > 0)
}

// add returns x + (-1)**neg * mag.
func (x *EInteger) add(mag nat, neg bool) *EInteger {
	if len(x.mag) <= 2 && len(mag) <= 2 {
		v := int64(mag.uint64())
		if neg {
			v = -v
		}
		return FromInt64(x.small() + v)
	}
	if x.neg == neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		return newEInteger(nat(nil).add(x.mag, mag), neg)
	}
	// x + (-y) == x - y == -(y - x)
	// (-x) + y == y - x == -(x - y)
	switch x.mag.cmp(mag) {
	case 0:
		return Zero
	case 1:
		return newEInteger(nat(nil).sub(x.mag, mag), x.neg)
	}
	return newEInteger(nat(nil).sub(mag, x.mag), neg)
}

// Increment returns x + 1.
func (x *EInteger) Increment() *EInteger {
	mustNotNil("Increment", x)
	return x.add(natOne, false)
}

// Decrement returns x - 1.
func (x *EInteger) Decrement() *EInteger {
	mustNotNil("Decrement", x)
	return x.add(natOne, true)
}

func (x *EInteger) isUnit() bool { return len(x.mag) == 1 && x.mag[0] == 1 }

// Multiply returns x * y.
func (x *EInteger) Multiply(y *EInteger) *EInteger {
	mustNotNil("Multiply", x, y)
	if x == y {
		return x.Square()
	}
	switch {
	case len(x.mag) == 0 || len(y.mag) == 0:
		return Zero
	case y.isUnit():
		if y.neg {
			return x.Negate()
		}
		return x
	case x.isUnit():
		if x.neg {
			return y.Negate()
		}
		return y
	}
	return newEInteger(nat(nil).mul(x.mag, y.mag), x.neg != y.neg)
}

// Square returns x * x.
func (x *EInteger) Square() *EInteger {
	mustNotNil("Square", x)
	if len(x.mag) == 0 || x.isUnit() {
		return x.Abs()
	}
	return newEInteger(nat(nil).sqr(x.mag), false)
}

// DivRem returns the quotient x/y truncated toward zero and the remainder
// x - y*q, which has the sign of x. It panics with a DivideByZero *Error if
// y == 0.
func (x *EInteger) DivRem(y *EInteger) (q, r *EInteger) {
	mustNotNil("DivRem", x, y)
	if len(y.mag) == 0 {
		panic(&Error{Kind: DivideByZero, Op: "DivRem", Msg: "division by zero"})
	}
	qm, rm := nat(nil).divRem(x.mag, y.mag)
	return newEInteger(qm, x.neg != y.neg), newEInteger(rm, x.neg)
}

// Divide returns the quotient x/y truncated toward zero. It panics with a
// DivideByZero *Error if y == 0.
func (x *EInteger) Divide(y *EInteger) *EInteger {
	mustNotNil("Divide", x, y)
	if len(y.mag) == 0 {
		panic(&Error{Kind: DivideByZero, Op: "Divide", Msg: "division by zero"})
	}
	if y.isUnit() {
		if y.neg {
			return x.Negate()
		}
		return x
	}
	q, _ := nat(nil).divRem(x.mag, y.mag)
	return newEInteger(q, x.neg != y.neg)
}

// Remainder returns x - y*(x/y), which has the sign of x. It panics with a
// DivideByZero *Error if y == 0.
func (x *EInteger) Remainder(y *EInteger) *EInteger {
	mustNotNil("Remainder", x, y)
	if len(y.mag) == 0 {
		panic(&Error{Kind: DivideByZero, Op: "Remainder", Msg: "division by zero"})
	}
	_, r := nat(nil).divRem(x.mag, y.mag)
	return newEInteger(r, x.neg)
}

// Mod returns x modulo m, in the range [0, m). It panics with a
// DivideByZero *Error if m == 0 and with an ArithmeticError *Error if m < 0.
func (x *EInteger) Mod(m *EInteger) *EInteger {
	mustNotNil("Mod", x, m)
	switch m.Sign() {
	case 0:
		panic(&Error{Kind: DivideByZero, Op: "Mod", Msg: "division by zero"})
	case -1:
		panic(&Error{Kind: ArithmeticError, Op: "Mod", Msg: "negative modulus"})
	}
	r := x.Remainder(m)
	if r.neg {
		r = r.Add(m)
	}
	return r
}

// TryDivide is like DivRem but returns an error instead of panicking.
func (x *EInteger) TryDivide(y *EInteger) (q, r *EInteger, err error) {
	defer catch(&err)
	q, r = x.DivRem(y)
	return q, r, nil
}
