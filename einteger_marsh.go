// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of EIntegers.

package bignum

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const eintegerGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The value is encoded
// as a version byte followed by its little endian two's complement bytes.
func (x *EInteger) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	b := x.ToBytes(true)
	buf := make([]byte, 1+len(b))
	buf[0] = eintegerGobVersion
	copy(buf[1:], b)
	return buf, nil
}

// errCachedTarget is returned by the decoders when the receiver is a shared
// small value, such as Zero or the result of FromInt64(5).
func errCachedTarget(op string) error {
	return newError(InvalidArgument, op, "cannot decode into a shared small value")
}

// GobDecode implements the gob.GobDecoder interface. Decoding into a shared
// small value fails with an InvalidArgument error.
func (z *EInteger) GobDecode(buf []byte) error {
	if z.cached() {
		return errCachedTarget("GobDecode")
	}
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = EInteger{}
		return nil
	}
	if buf[0] != eintegerGobVersion {
		return newError(FormatError, "GobDecode", "encoding version %d not supported", buf[0])
	}
	*z = *FromBytes(buf[1:], true)
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *EInteger) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.mag.itoa(x.neg, 10), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. Decoding
// into a shared small value fails with an InvalidArgument error.
func (z *EInteger) UnmarshalText(text []byte) error {
	if z.cached() {
		return errCachedTarget("UnmarshalText")
	}
	x, err := FromString(string(text))
	if err != nil {
		return fmt.Errorf("bignum: cannot unmarshal %q into a *bignum.EInteger (%w)", text, err)
	}
	*z = *x
	return nil
}

// MarshalJSON implements the json.Marshaler interface. The value is
// encoded as a JSON number.
func (x *EInteger) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return x.mag.itoa(x.neg, 10), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts a
// JSON number without fraction or exponent, or a JSON string holding one.
func (z *EInteger) UnmarshalJSON(text []byte) error {
	// Ignore null, like in the main JSON package.
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return z.UnmarshalText(text)
}

var (
	_ msgpack.CustomEncoder = (*EInteger)(nil)
	_ msgpack.CustomDecoder = (*EInteger)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder. The value is encoded as a
// msgpack bin holding its big endian two's complement bytes.
func (x *EInteger) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(x.ToBytes(false))
}

// DecodeMsgpack implements msgpack.CustomDecoder. Decoding into a shared
// small value fails with an InvalidArgument error.
func (z *EInteger) DecodeMsgpack(dec *msgpack.Decoder) error {
	if z.cached() {
		return errCachedTarget("DecodeMsgpack")
	}
	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	if b == nil {
		*z = EInteger{}
		return nil
	}
	*z = *FromBytes(b, false)
	return nil
}
