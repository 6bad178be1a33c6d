// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadixRoundTrip(t *testing.T) {
	// sizes cover the leaf paths and the recursive split on both sides
	for _, n := range []int{0, 1, 2, 4, 5, 20, 99, 101, 250, 600} {
		for radix := 2; radix <= MaxRadix; radix++ {
			x := rndEInteger(n)
			s := x.ToRadixString(radix)
			require.Equal(t, x.Big().Text(radix), s, "radix %d", radix)
			y, err := FromRadixString(s, radix)
			require.NoError(t, err)
			require.True(t, x.Equals(y), "radix %d: %s", radix, s)
			y, err = FromRadixString(strings.ToUpper(s), radix)
			require.NoError(t, err)
			require.True(t, x.Equals(y))
		}
	}
}

func TestFromString_Long(t *testing.T) {
	// more digits than a single parse leaf
	s := "1" + strings.Repeat("0123456789", 50)
	x, err := FromString(s)
	require.NoError(t, err)
	assert.Equal(t, s, x.String())
	eq(t, bigOf(s), x)

	x, err = FromString("-" + strings.Repeat("9", 1000))
	require.NoError(t, err)
	assert.True(t, x.Decrement().Negate().Equals(Ten.Pow(1000)))
}

func TestFromString_Errors(t *testing.T) {
	for _, tc := range []struct {
		s     string
		radix int
		kind  ErrorKind
	}{
		{"", 10, FormatError},
		{"-", 10, FormatError},
		{"+1", 10, FormatError},
		{" 1", 10, FormatError},
		{"1_000", 10, FormatError},
		{"12a", 10, FormatError},
		{"2", 2, FormatError},
		{"z", 35, FormatError},
		{"--1", 10, FormatError},
		{"1", 1, InvalidArgument},
		{"1", 37, InvalidArgument},
	} {
		_, err := FromRadixString(tc.s, tc.radix)
		require.Error(t, err, "%q", tc.s)
		var e *Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, tc.kind, e.Kind, "%q: %v", tc.s, err)
	}
}

func TestFromSubstring(t *testing.T) {
	x, err := FromSubstring("xx-1234yy", 2, 7)
	require.NoError(t, err)
	assert.Equal(t, "-1234", x.String())

	x, err = FromRadixSubstring("0xff", 16, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(255), x.ToInt64Unchecked())

	for _, r := range [][2]int{{-1, 2}, {0, 5}, {3, 2}} {
		_, err = FromSubstring("1234", r[0], r[1])
		assert.True(t, errors.Is(err, ErrInvalidArgument), "%v", r)
	}
	_, err = FromSubstring("1234", 2, 2)
	assert.True(t, errors.Is(err, ErrFormat))

	assert.Panics(t, func() { MustFromString("x") })
}

func TestToRadixString_BadRadix(t *testing.T) {
	assert.Equal(t, InvalidArgument, panicKind(func() { One.ToRadixString(1) }))
	assert.Equal(t, InvalidArgument, panicKind(func() { One.ToRadixString(37) }))
	assert.Equal(t, "<nil>", (*EInteger)(nil).String())
}

func TestFormat(t *testing.T) {
	x := FromInt64(-255)
	for _, tc := range []struct {
		format string
		x      *EInteger
		want   string
	}{
		{"%d", x, "-255"},
		{"%v", x, "-255"},
		{"%s", x, "-255"},
		{"%x", x, "-ff"},
		{"%X", x, "-FF"},
		{"%o", x, "-377"},
		{"%b", FromInt64(5), "101"},
		{"%+d", FromInt64(5), "+5"},
		{"% d", FromInt64(5), " 5"},
		{"%6d", x, "  -255"},
		{"%-6d|", x, "-255  |"},
		{"%06d", x, "-00255"},
		{"%q", FromInt64(5), "%!q(bignum.EInteger=5)"},
		{"%d", (*EInteger)(nil), "<nil>"},
	} {
		assert.Equal(t, tc.want, fmt.Sprintf(tc.format, tc.x), tc.format)
	}
}

func TestBytes(t *testing.T) {
	for _, tc := range []struct {
		v    int64
		want []byte // big endian
	}{
		{0, []byte{0}},
		{1, []byte{1}},
		{-1, []byte{0xff}},
		{127, []byte{0x7f}},
		{128, []byte{0, 0x80}},
		{-128, []byte{0x80}},
		{-129, []byte{0xff, 0x7f}},
		{255, []byte{0, 0xff}},
		{256, []byte{1, 0}},
		{-256, []byte{0xff, 0}},
		{-32768, []byte{0x80, 0}},
		{65535, []byte{0, 0xff, 0xff}},
	} {
		x := FromInt64(tc.v)
		if diff := cmp.Diff(tc.want, x.ToBytes(false)); diff != "" {
			t.Errorf("%d: ToBytes(false) mismatch (-want +got):\n%s", tc.v, diff)
		}
		le := x.ToBytes(true)
		for i, j := 0, len(le)-1; i < j; i, j = i+1, j-1 {
			le[i], le[j] = le[j], le[i]
		}
		if diff := cmp.Diff(tc.want, le); diff != "" {
			t.Errorf("%d: ToBytes(true) mismatch (-want +got):\n%s", tc.v, diff)
		}
		assert.True(t, x.Equals(FromBytes(tc.want, false)), "%d", tc.v)
	}
	assert.True(t, FromBytes(nil, false).IsZero())
	assert.True(t, FromBytes([]byte{}, true).IsZero())
	// redundant sign bytes are accepted
	assert.Equal(t, "-1", FromBytes([]byte{0xff, 0xff, 0xff}, true).String())
	assert.Equal(t, "1", FromBytes([]byte{1, 0, 0}, true).String())
}

func TestBytes_RoundTrip(t *testing.T) {
	for i := 0; i < 500; i++ {
		x := rndEInteger(20)
		for _, le := range []bool{false, true} {
			b := x.ToBytes(le)
			require.True(t, x.Equals(FromBytes(b, le)), "%v %v", x, b)
		}
	}
}

func TestNarrowing(t *testing.T) {
	for _, tc := range []struct {
		s      string
		fit32  bool
		fit64  bool
		fitU64 bool
		unc64  int64
		unc32  int32
	}{
		{"0", true, true, true, 0, 0},
		{"2147483647", true, true, true, math.MaxInt32, math.MaxInt32},
		{"2147483648", false, true, true, 1 << 31, math.MinInt32},
		{"-2147483648", true, true, false, math.MinInt32, math.MinInt32},
		{"-2147483649", false, true, false, -(1 << 31) - 1, math.MaxInt32},
		{"9223372036854775807", false, true, true, math.MaxInt64, -1},
		{"9223372036854775808", false, false, true, math.MinInt64, 0},
		{"-9223372036854775808", false, true, false, math.MinInt64, 0},
		{"-9223372036854775809", false, false, false, math.MaxInt64, -1},
		{"18446744073709551615", false, false, true, -1, -1},
		{"18446744073709551616", false, false, false, 0, 0},
		{"-1", true, true, false, -1, -1},
	} {
		x := MustFromString(tc.s)
		assert.Equal(t, tc.fit32, x.CanFitInInt32(), tc.s)
		assert.Equal(t, tc.fit64, x.CanFitInInt64(), tc.s)
		_, err := x.ToUint64Checked()
		assert.Equal(t, tc.fitU64, err == nil, tc.s)
		if err != nil {
			assert.True(t, errors.Is(err, ErrOverflow))
		}
		v, err := x.ToInt64Checked()
		if tc.fit64 {
			require.NoError(t, err)
			assert.Equal(t, tc.unc64, v)
		} else {
			assert.True(t, errors.Is(err, ErrOverflow), tc.s)
		}
		_, err = x.ToInt32Checked()
		assert.Equal(t, tc.fit32, err == nil, tc.s)
		assert.Equal(t, tc.unc64, x.ToInt64Unchecked(), tc.s)
		assert.Equal(t, tc.unc32, x.ToInt32Unchecked(), tc.s)
	}
}

func TestDigitCount(t *testing.T) {
	for _, tc := range []struct {
		s    string
		want int64
	}{
		{"0", 1},
		{"9", 1},
		{"-10", 2},
		{"65535", 5},
		{"65536", 5},
		{"99999", 5},
		{"100000", 6},
		{"18446744073709551615", 20},
		{"18446744073709551616", 20},
		{"99999999999999999999", 20},
		{"100000000000000000000", 21},
	} {
		assert.Equal(t, tc.want, MustFromString(tc.s).DigitCount(), tc.s)
	}
	for _, n := range []int{1, 10, 100, 500} {
		p := Ten.Pow(n)
		assert.Equal(t, int64(n+1), p.DigitCount(), "10**%d", n)
		assert.Equal(t, int64(n), p.Decrement().DigitCount(), "10**%d-1", n)
		assert.Equal(t, int64(n+1), p.Negate().DigitCount())
	}
	for i := 0; i < 200; i++ {
		x := rndEInteger(150)
		require.Equal(t, int64(len(x.Abs().Big().String())), x.DigitCount(), "%v", x)
	}
}

func TestDigitCount_PowerCache(t *testing.T) {
	x := Ten.Pow(1000)
	k := 3 * len(x.mag)
	for i := 0; i < 2; i++ {
		assert.Equal(t, int64(1001), x.DigitCount())
		assert.Equal(t, int64(1000), x.Decrement().DigitCount())
	}
	digitPowers.Lock()
	p, ok := digitPowers.pows[k]
	n := len(digitPowers.pows)
	digitPowers.Unlock()
	if !ok {
		// the cache filled up before this test ran
		assert.Equal(t, radixPowCacheSize, n)
		return
	}
	assert.Equal(t, 0, p.cmp(nat(nil).expWW(10, uint(k))))
}
