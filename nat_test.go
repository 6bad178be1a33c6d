// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rnd = rand.New(rand.NewSource(1))

// rndNat returns a random normalized nat of exactly n words.
func rndNat(n int) nat {
	z := make(nat, n)
	for i := range z {
		z[i] = uint16(rnd.Uint32())
	}
	if n > 0 && z[n-1] == 0 {
		z[n-1] = 1
	}
	return z
}

func natBig(x nat) *big.Int {
	return newEInteger(nat(nil).set(x), false).Big()
}

func bigNat(b *big.Int) nat {
	return FromBig(b).mag
}

func TestDivWVWMagic(t *testing.T) {
	for _, m := range []magic{div10, div10000} {
		for i := 0; i < 1000; i++ {
			x := rndNat(1 + rnd.Intn(20))
			q1 := make([]uint16, len(x))
			q2 := make([]uint16, len(x))
			r1 := divWVW(q1, 0, x, uint16(m.d))
			r2 := divWVWMagic(q2, x, m)
			require.Equal(t, q1, q2, "%v / %d", x, m.d)
			require.Equal(t, r1, r2, "%v %% %d", x, m.d)
		}
	}
}

func TestMagicDiv(t *testing.T) {
	for _, n := range []uint32{0, 1, 9, 10, 11, 9999, 10000, 10001, 655359999, 1<<32 - 1} {
		for _, m := range []magic{div10, div10000} {
			q, r := m.div(n)
			assert.Equal(t, n/m.d, q)
			assert.Equal(t, n%m.d, r)
		}
	}
	for i := 0; i < 100000; i++ {
		n := rnd.Uint32()
		q, r := div10000.div(n)
		require.Equal(t, n/10000, q)
		require.Equal(t, n%10000, r)
	}
}

func TestDecDigits64(t *testing.T) {
	assert.Equal(t, uint(0), decDigits64(0))
	for i := 0; i < 10000; i++ {
		n := rnd.Uint64() >> uint(rnd.Intn(64))
		d := uint(0)
		for m := n; m != 0; m /= 10 {
			d++
		}
		require.Equal(t, d, decDigits64(n), "%d", n)
	}
}

func TestNatAddSub(t *testing.T) {
	for i := 0; i < 500; i++ {
		x, y := rndNat(rnd.Intn(30)), rndNat(rnd.Intn(30))
		bx, by := natBig(x), natBig(y)
		s := nat(nil).add(x, y)
		require.Equal(t, 0, natBig(s).Cmp(new(big.Int).Add(bx, by)))
		if x.cmp(y) < 0 {
			x, y = y, x
			bx, by = by, bx
		}
		d := nat(nil).sub(x, y)
		require.Equal(t, 0, natBig(d).Cmp(new(big.Int).Sub(bx, by)))
	}
}

func TestNatShift(t *testing.T) {
	for i := 0; i < 500; i++ {
		x := rndNat(rnd.Intn(20))
		s := uint(rnd.Intn(100))
		bx := natBig(x)
		require.Equal(t, 0, natBig(nat(nil).shl(x, s)).Cmp(new(big.Int).Lsh(bx, s)))
		require.Equal(t, 0, natBig(nat(nil).shr(x, s)).Cmp(new(big.Int).Rsh(bx, s)))
	}
}

// mulSizes covers the fixed-size kernels, the schoolbook range, Karatsuba
// and chunked multiplication.
var mulSizes = [][2]int{
	{1, 1}, {2, 2}, {2, 1}, {3, 2}, {4, 4}, {5, 4}, {8, 8}, {9, 8}, {10, 10},
	{11, 11}, {20, 20}, {33, 33}, {64, 64}, {100, 100}, {257, 257},
	{100, 11}, {300, 20}, {500, 64}, {1000, 33},
}

func TestNatMul(t *testing.T) {
	for _, sz := range mulSizes {
		t.Run(fmt.Sprintf("%dx%d", sz[0], sz[1]), func(t *testing.T) {
			for i := 0; i < 5; i++ {
				x, y := rndNat(sz[0]), rndNat(sz[1])
				want := new(big.Int).Mul(natBig(x), natBig(y))
				z := nat(nil).mul(x, y)
				require.Equal(t, 0, natBig(z).Cmp(want))
				// commutativity
				require.Equal(t, 0, nat(nil).mul(y, x).cmp(z))
			}
		})
	}
}

func TestNatMul_Associative(t *testing.T) {
	for i := 0; i < 50; i++ {
		x, y, z := rndNat(1+rnd.Intn(60)), rndNat(1+rnd.Intn(60)), rndNat(1+rnd.Intn(60))
		a := nat(nil).mul(nat(nil).mul(x, y), z)
		b := nat(nil).mul(x, nat(nil).mul(y, z))
		require.Equal(t, 0, a.cmp(b))
	}
}

func TestNatSqr(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 8, 10, 11, 20, 40, 99, 256} {
		x := rndNat(n)
		require.Equal(t, 0, nat(nil).sqr(x).cmp(nat(nil).mul(x, nat(nil).set(x))), "%d words", n)
	}
}

func testDivRem(t *testing.T, un, vn int) {
	t.Helper()
	u, v := rndNat(un), rndNat(vn)
	q, r := nat(nil).divRem(u, v)
	bq, br := new(big.Int).QuoRem(natBig(u), natBig(v), new(big.Int))
	require.Equal(t, 0, natBig(q).Cmp(bq), "%d/%d words", un, vn)
	require.Equal(t, 0, natBig(r).Cmp(br), "%d/%d words", un, vn)
	// u == q*v + r and r < v
	require.Equal(t, 0, nat(nil).add(nat(nil).mul(q, v), r).cmp(u))
	require.Less(t, r.cmp(v), 0)
}

var divSizes = [][2]int{
	{1, 1}, {2, 1}, {2, 2}, {4, 1}, {4, 3}, {5, 1}, {10, 1}, {10, 2}, {10, 9},
	{30, 10}, {80, 40}, {100, 41}, {200, 60}, {400, 100}, {333, 111}, {90, 89},
}

func TestNatDivRem(t *testing.T) {
	for _, sz := range divSizes {
		for i := 0; i < 5; i++ {
			testDivRem(t, sz[0], sz[1])
		}
	}
}

func TestNatDivRem_Recursive(t *testing.T) {
	defer func(th int) { divRecursiveThreshold = th }(divRecursiveThreshold)
	for _, th := range []int{2, 3, 4, 8} {
		divRecursiveThreshold = th
		for _, sz := range divSizes {
			if sz[1] < 2 {
				continue
			}
			testDivRem(t, sz[0], sz[1])
		}
	}
}

func TestNatDivRem_Edge(t *testing.T) {
	// divisors with a maximal top word and quotients with qhat corrections
	for _, tc := range []struct{ u, v string }{
		{"ffffffffffffffffffffffffffffffff", "ffffffffffffffff"},
		{"100000000000000000000000000000000", "ffffffffffffffffffff"},
		{"7fff800000000000000000000000", "800000000001"},
		{"fffffffffffffffffffe0000000000000001", "ffffffffffffffffff"},
	} {
		u, _ := new(big.Int).SetString(tc.u, 16)
		v, _ := new(big.Int).SetString(tc.v, 16)
		q, r := nat(nil).divRem(bigNat(u), bigNat(v))
		bq, br := new(big.Int).QuoRem(u, v, new(big.Int))
		assert.Equal(t, 0, natBig(q).Cmp(bq), "%s / %s", tc.u, tc.v)
		assert.Equal(t, 0, natBig(r).Cmp(br), "%s %% %s", tc.u, tc.v)
	}
}

func TestNatBitOps(t *testing.T) {
	for i := 0; i < 200; i++ {
		x, y := rndNat(rnd.Intn(10)), rndNat(rnd.Intn(10))
		bx, by := natBig(x), natBig(y)
		assert.Equal(t, 0, natBig(nat(nil).and(x, y)).Cmp(new(big.Int).And(bx, by)))
		assert.Equal(t, 0, natBig(nat(nil).or(x, y)).Cmp(new(big.Int).Or(bx, by)))
		assert.Equal(t, 0, natBig(nat(nil).xor(x, y)).Cmp(new(big.Int).Xor(bx, by)))
		assert.Equal(t, 0, natBig(nat(nil).andNot(x, y)).Cmp(new(big.Int).AndNot(bx, by)))
		assert.Equal(t, bx.BitLen(), x.bitLen())
		if len(x) > 0 {
			assert.Equal(t, bx.TrailingZeroBits(), x.trailingZeroBits())
		}
	}
}

func TestNatBytes(t *testing.T) {
	for i := 0; i < 100; i++ {
		x := rndNat(rnd.Intn(12))
		assert.Equal(t, natBig(x).Bytes(), x.bytes())
		assert.Equal(t, 0, nat(nil).setBytes(x.bytes()).cmp(x))
	}
}

func BenchmarkNatMul(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		x, y := rndNat(n), rndNat(n)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			var z nat
			for i := 0; i < b.N; i++ {
				z = z.mul(x, y)
			}
		})
	}
}

func BenchmarkNatDivRem(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		u, v := rndNat(2*n), rndNat(n)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				nat(nil).divRem(u, v)
			}
		})
	}
}
