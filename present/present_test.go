// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package present

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/xtaci/lwcrypt/kat"
)

func TestKnownAnswers(t *testing.T) {
	for _, method := range []string{"present-80", "present-128"} {
		t.Run(method, func(t *testing.T) {
			vs := kat.ByMethod(method)
			if len(vs) != 4 {
				t.Fatalf("expected 4 vectors, got %d", len(vs))
			}
			for _, v := range vs {
				c, err := NewCipher(v.KeyBytes())
				if err != nil {
					t.Fatal(err)
				}
				if err := kat.Check(c, v); err != nil {
					t.Fatal(err)
				}
			}
		})
	}
}

func TestPermutation(t *testing.T) {
	var seen uint64
	for i := uint(0); i < 64; i++ {
		seen |= 1 << position(i)
	}
	if seen != ^uint64(0) {
		t.Fatalf("bit permutation is not a bijection: %016x", seen)
	}
	if position(1) != 16 || position(4) != 1 || position(62) != 47 {
		t.Fatal("unexpected bit positions")
	}
	for _, s := range []uint64{1, 0x8000000000000000, 0x0123456789abcdef} {
		if unpermute(permute(s)) != s {
			t.Fatalf("unpermute(permute(%016x)) mismatch", s)
		}
	}
}

func TestSboxInverse(t *testing.T) {
	for v := uint64(0); v < 16; v++ {
		if sboxInv[sbox[v]] != v {
			t.Fatalf("sbox inverse broken at %x", v)
		}
	}
}

func TestSchedule(t *testing.T) {
	tcases := []struct {
		keyLen          int
		rk1, rk2, rkEnd uint64
	}{
		{10, 0xc000000000000000, 0x5000180000000001, 0x6dab31744f41d700},
		{16, 0xcc00000000000000, 0xc300000000000000, 0x97534980aeced6b7},
	}
	for _, tc := range tcases {
		c, _ := NewCipher(make([]byte, tc.keyLen))
		if c.rk[0] != 0 || c.rk[1] != tc.rk1 || c.rk[2] != tc.rk2 || c.rk[rounds] != tc.rkEnd {
			t.Fatalf("%d-byte zero key schedule: %016x %016x %016x ... %016x",
				tc.keyLen, c.rk[0], c.rk[1], c.rk[2], c.rk[rounds])
		}
	}

	// the first round key is the top 64 bits of the register
	key := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0xfe, 0xdc}
	c, _ := NewCipher(key)
	if c.rk[0] != 0x0123456789abcdef {
		t.Fatalf("K1 = %016x", c.rk[0])
	}
}

func TestWordAPI(t *testing.T) {
	v := kat.ByMethod("present-80")[0]
	c, _ := NewCipher(v.KeyBytes())
	want := Block{0x5579, 0xc138, 0x7b22, 0x8445}
	if got := c.EncryptBlock(Block{}); got != want {
		t.Fatalf("EncryptBlock = %04x, want %04x", got, want)
	}
	if got := c.DecryptBlock(want); got != (Block{}) {
		t.Fatalf("DecryptBlock = %04x", got)
	}
}

// The all-ones key and the all-ones block give distinct answers: a swap of
// key and plaintext must not go unnoticed.
func TestWide128Answers(t *testing.T) {
	ones := bytes.Repeat([]byte{0xff}, 16)
	tcases := []struct {
		key   []byte
		plain uint64
		want  uint64
	}{
		{make([]byte, 16), 0, 0x96db702a2e6900af},
		{ones, 0, 0x13238c710272a5d8},
		{make([]byte, 16), ^uint64(0), 0x3c6019e5e5edd563},
		{ones, ^uint64(0), 0x628d9fbd4218e5b4},
	}
	for _, tc := range tcases {
		c, err := NewCipher(tc.key)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.encrypt(tc.plain); got != tc.want {
			t.Fatalf("key %x plain %016x: got %016x, want %016x", tc.key[:1], tc.plain, got, tc.want)
		}
		if got := c.decrypt(tc.want); got != tc.plain {
			t.Fatalf("key %x: decrypt %016x = %016x", tc.key[:1], tc.want, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{10, 16} {
		for i, fill := range []byte{0x00, 0xff, 0x3c} {
			c, _ := NewCipher(bytes.Repeat([]byte{fill}, n))
			if err := kat.RoundTrip(c, 256, int64(i)); err != nil {
				t.Fatal(err)
			}
			if err := kat.Stable(c, 4); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestKeySize(t *testing.T) {
	for _, n := range []int{0, 8, 9, 11, 12, 15, 17, 24, 32} {
		if c, err := NewCipher(make([]byte, n)); c != nil || err != KeySizeError(n) {
			t.Fatalf("NewCipher(%d bytes) = %v, %v", n, c, err)
		}
	}
}

func BenchmarkEncrypt(b *testing.B) {
	c, _ := NewCipher(make([]byte, 16))
	buf := make([]byte, BlockSize)
	b.SetBytes(BlockSize)
	for i := 0; i < b.N; i++ {
		c.Encrypt(buf, buf)
	}
}

func TestDeterministicSchedule(t *testing.T) {
	for _, n := range []int{10, 16} {
		key := make([]byte, n)
		for i := range key {
			key[i] = byte(7*i + 3)
		}
		a, _ := NewCipher(key)
		b, _ := NewCipher(append([]byte(nil), key...))
		if !reflect.DeepEqual(a, b) || a.rk != b.rk {
			t.Fatalf("%d-byte key: identical keys produced different schedules", n)
		}

		key[n-1] ^= 1
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("%d-byte key: schedule changed with the caller's key buffer", n)
		}
		c, _ := NewCipher(key)
		if a.rk == c.rk {
			t.Fatalf("%d-byte key: flipping a key bit did not change the schedule", n)
		}
	}
}
