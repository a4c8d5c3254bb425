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

package noekeon

import (
	"bytes"
	"math/rand"
	"reflect"
	"testing"

	"github.com/xtaci/lwcrypt/kat"
)

func TestKnownAnswers(t *testing.T) {
	for _, v := range kat.ByMethod("noekeon") {
		c, err := NewCipher(v.KeyBytes())
		if err != nil {
			t.Fatal(err)
		}
		if err := kat.Check(c, v); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRoundConstants(t *testing.T) {
	x := uint32(0x80)
	for i, v := range rc {
		if v != x {
			t.Fatalf("rc[%d] = %#02x, want %#02x", i, v, x)
		}
		x <<= 1
		if x&0x100 != 0 {
			x ^= 0x11b
		}
	}
}

func TestInvolutions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a := Block{rng.Uint32(), rng.Uint32(), rng.Uint32(), rng.Uint32()}

		b := a
		gamma(&b)
		gamma(&b)
		if b != a {
			t.Fatalf("gamma is not an involution on %08x", a)
		}

		b = a
		theta(&b, &Block{})
		theta(&b, &Block{})
		if b != a {
			t.Fatalf("theta with a null key is not an involution on %08x", a)
		}

		b = a
		pi1(&b)
		pi2(&b)
		if b != a {
			t.Fatalf("pi2 does not undo pi1 on %08x", a)
		}
	}
}

func TestDecryptionKey(t *testing.T) {
	key := []byte("0123456789abcdef")
	c, _ := NewCipher(key)
	if c.ek != load(key) {
		t.Fatal("working key differs from the raw key")
	}
	k := c.dk
	theta(&k, &Block{})
	if k != c.ek {
		t.Fatal("decryption key is not theta of the working key")
	}
}

func TestRoundTrip(t *testing.T) {
	for i, fill := range []byte{0x00, 0xff, 0x5a} {
		c, _ := NewCipher(bytes.Repeat([]byte{fill}, KeySize))
		if err := kat.RoundTrip(c, 256, int64(i)); err != nil {
			t.Fatal(err)
		}
		if err := kat.Stable(c, 4); err != nil {
			t.Fatal(err)
		}
	}
}

func TestInPlace(t *testing.T) {
	v := kat.ByMethod("noekeon")[0]
	c, _ := NewCipher(v.KeyBytes())
	buf := v.PlainBytes()
	c.Encrypt(buf, buf)
	if !bytes.Equal(buf, v.CipherBytes()) {
		t.Fatalf("in-place encrypt = %x", buf)
	}
	c.Decrypt(buf, buf)
	if !bytes.Equal(buf, v.PlainBytes()) {
		t.Fatalf("in-place decrypt = %x", buf)
	}
}

func TestKeySize(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 24, 32} {
		if c, err := NewCipher(make([]byte, n)); c != nil || err != KeySizeError(n) {
			t.Fatalf("NewCipher(%d bytes) = %v, %v", n, c, err)
		}
	}
}

func TestShortBufferPanics(t *testing.T) {
	c, _ := NewCipher(make([]byte, KeySize))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on short input")
		}
	}()
	c.Encrypt(make([]byte, BlockSize), make([]byte, BlockSize-1))
}

func TestDeterministicSchedule(t *testing.T) {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(7*i + 3)
	}
	a, _ := NewCipher(key)
	b, _ := NewCipher(append([]byte(nil), key...))
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical keys produced different schedules")
	}
	if !reflect.DeepEqual(a.ek, b.ek) {
		t.Fatal("ek differs for identical keys")
	}
	if !reflect.DeepEqual(a.dk, b.dk) {
		t.Fatal("dk differs for identical keys")
	}

	// the key is not retained
	key[0] ^= 1
	if !reflect.DeepEqual(a, b) {
		t.Fatal("schedule changed with the caller's key buffer")
	}
	c, _ := NewCipher(key)
	if reflect.DeepEqual(a.ek, c.ek) && reflect.DeepEqual(a.dk, c.dk) {
		t.Fatal("flipping a key bit did not change the schedule")
	}
}
