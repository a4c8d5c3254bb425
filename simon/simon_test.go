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

package simon

import (
	"bytes"
	"testing"

	"github.com/xtaci/lwcrypt/kat"
)

func TestKnownAnswers(t *testing.T) {
	for _, name := range []string{"simon-128", "simon-192", "simon-256"} {
		t.Run(name, func(t *testing.T) {
			vs := kat.ByMethod(name)
			if len(vs) == 0 {
				t.Fatalf("no vectors for %s", name)
			}
			for _, v := range vs {
				s, err := NewCipher(v.KeyBytes())
				if err != nil {
					t.Fatal(err)
				}
				if err := kat.Check(s, v); err != nil {
					t.Fatal(err)
				}
			}
		})
	}
}

func TestWordAPI(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(0x1f - i)
	}
	s, err := NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	pt := Block{0x74206e69206d6f6f, 0x6d69732061207369}
	want := Block{0x8d2b5579afc8a3a0, 0x3bf72a87efe7b868}
	if got := s.EncryptBlock(pt); got != want {
		t.Fatalf("EncryptBlock = %x, want %x", got, want)
	}
	if got := s.DecryptBlock(want); got != pt {
		t.Fatalf("DecryptBlock = %x, want %x", got, pt)
	}
}

func TestRounds(t *testing.T) {
	for keyLen, want := range map[int]int{16: 68, 24: 69, 32: 72} {
		s, err := NewCipher(make([]byte, keyLen))
		if err != nil {
			t.Fatal(err)
		}
		if s.Rounds() != want {
			t.Fatalf("%d-byte key: %d rounds, want %d", keyLen, s.Rounds(), want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, keyLen := range []int{16, 24, 32} {
		for _, fill := range []byte{0x00, 0xff} {
			s, _ := NewCipher(bytes.Repeat([]byte{fill}, keyLen))
			if err := kat.RoundTrip(s, 64, int64(keyLen)); err != nil {
				t.Fatalf("%d-byte key %02x: %v", keyLen, fill, err)
			}
			if err := kat.Stable(s, 4); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestKeySize(t *testing.T) {
	for _, n := range []int{0, 10, 12, 20, 48} {
		if s, err := NewCipher(make([]byte, n)); s != nil || err != KeySizeError(n) {
			t.Fatalf("NewCipher(%d bytes) = %v, %v", n, s, err)
		}
	}
}

func TestScheduleDependsOnlyOnKey(t *testing.T) {
	key := bytes.Repeat([]byte{0xa5}, 24)
	a, _ := NewCipher(key)
	key[0] ^= 1
	b, _ := NewCipher(key)
	key[0] ^= 1
	c, _ := NewCipher(key)
	if a.rk[0] == b.rk[0] && a.rk[len(a.rk)-1] == b.rk[len(b.rk)-1] {
		t.Fatal("flipping a key bit did not change the schedule")
	}
	for i := range a.rk {
		if a.rk[i] != c.rk[i] {
			t.Fatalf("round key %d differs for identical keys", i)
		}
	}
}
