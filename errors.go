// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
)

// An ErrorKind classifies the errors reported by this package.
type ErrorKind uint8

// Error kinds.
const (
	NullArgument    ErrorKind = iota + 1 // a required operand is nil
	InvalidArgument                      // bad radix, index range or negative count
	FormatError                          // malformed numeric text
	DivideByZero                         // division or modulus by zero
	Overflow                             // value does not fit the requested type
	ArithmeticError                      // violated arithmetic precondition
)

var kindNames = [...]string{
	NullArgument:    "null argument",
	InvalidArgument: "invalid argument",
	FormatError:     "format error",
	DivideByZero:    "division by zero",
	Overflow:        "overflow",
	ArithmeticError: "arithmetic error",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// An Error describes a failed operation. Errors caused by bad input data
// (parsing, narrowing, decoding) are returned; violated preconditions
// (nil operands, zero divisors, out of domain arguments) panic with an
// *Error, the same way math/big panics on division by zero.
type Error struct {
	Kind ErrorKind
	Op   string // operation that failed, e.g. "Divide"
	Msg  string
}

func (e *Error) Error() string {
	switch {
	case e.Op == "" && e.Msg == "":
		return "bignum: " + e.Kind.String()
	case e.Msg == "":
		return "bignum: " + e.Op + ": " + e.Kind.String()
	case e.Op == "":
		return "bignum: " + e.Msg
	}
	return "bignum: " + e.Op + ": " + e.Msg
}

// Is reports whether target is an *Error of the same kind. This makes the
// Err* sentinels usable with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Op == "" && t.Msg == ""
}

// Sentinels for errors.Is.
var (
	ErrNullArgument    = &Error{Kind: NullArgument}
	ErrInvalidArgument = &Error{Kind: InvalidArgument}
	ErrFormat          = &Error{Kind: FormatError}
	ErrDivideByZero    = &Error{Kind: DivideByZero}
	ErrOverflow        = &Error{Kind: Overflow}
	ErrArithmetic      = &Error{Kind: ArithmeticError}
)

func newError(kind ErrorKind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func mustNotNil(op string, args ...*EInteger) {
	for _, x := range args {
		if x == nil {
			panic(&Error{Kind: NullArgument, Op: op, Msg: "nil operand"})
		}
	}
}

// catch recovers a panicking *Error into *err. Any other panic, including
// internal "BUG:" assertions, is propagated.
func catch(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(*Error); ok {
			*err = e
			return
		}
		panic(r)
	}
}
