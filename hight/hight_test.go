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

package hight

import (
	"bytes"
	"math/bits"
	"reflect"
	"testing"

	"github.com/xtaci/lwcrypt/kat"
)

func TestDeltaRecurrence(t *testing.T) {
	d := byte(0x5a)
	for i := 0; i < len(delta); i++ {
		if delta[i] != d {
			t.Fatalf("delta[%d] = %#02x, recurrence gives %#02x", i, delta[i], d)
		}
		d = ((d<<3)^(d<<6))&0x40 | bits.RotateLeft8(d, -1)&0x7f
	}
}

func TestKnownAnswers(t *testing.T) {
	vs := kat.ByMethod("hight")
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
}

func TestLaneOrder(t *testing.T) {
	key := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	c, _ := NewCipher(key)

	// MK0 is the last printed byte
	if c.wk[0] != 0x33 || c.wk[3] != 0x00 || c.wk[4] != 0xff || c.wk[7] != 0xcc {
		t.Fatalf("unexpected whitening keys %x", c.wk)
	}

	// printed ciphertext 00 f4 18 ae d9 4f 03 f2 is C7..C0
	want := Block{0xf2, 0x03, 0x4f, 0xd9, 0xae, 0x18, 0xf4, 0x00}
	if got := c.EncryptBlock(Block{}); got != want {
		t.Fatalf("EncryptBlock = %x, want %x", got, want)
	}
}

func TestSubkeyAddressing(t *testing.T) {
	key := make([]byte, KeySize)
	c, _ := NewCipher(key)
	// with an all-zero key the subkeys are the round constants
	if !bytes.Equal(c.sk[:], delta[:]) {
		t.Fatal("zero key subkeys differ from delta")
	}

	for i := range key {
		key[i] = byte(KeySize - 1 - i) // MKi = i
	}
	c, _ = NewCipher(key)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			idx := byte((j - i + 8) % 8)
			if c.sk[16*i+j] != idx+delta[16*i+j] {
				t.Fatalf("SK%d uses the wrong key byte", 16*i+j)
			}
			if c.sk[16*i+j+8] != idx+8+delta[16*i+j+8] {
				t.Fatalf("SK%d uses the wrong key byte", 16*i+j+8)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for i, fill := range []byte{0x00, 0xff, 0x81} {
		c, _ := NewCipher(bytes.Repeat([]byte{fill}, KeySize))
		if err := kat.RoundTrip(c, 256, int64(i)); err != nil {
			t.Fatal(err)
		}
		if err := kat.Stable(c, 4); err != nil {
			t.Fatal(err)
		}
	}
}

func TestKeySize(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 24, 32} {
		if c, err := NewCipher(make([]byte, n)); c != nil || err != KeySizeError(n) {
			t.Fatalf("NewCipher(%d bytes) = %v, %v", n, c, err)
		}
	}
}

func BenchmarkEncrypt(b *testing.B) {
	c, _ := NewCipher(make([]byte, KeySize))
	buf := make([]byte, BlockSize)
	b.SetBytes(BlockSize)
	for i := 0; i < b.N; i++ {
		c.Encrypt(buf, buf)
	}
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
	if !reflect.DeepEqual(a.wk, b.wk) {
		t.Fatal("wk differs for identical keys")
	}
	if !reflect.DeepEqual(a.sk, b.sk) {
		t.Fatal("sk differs for identical keys")
	}

	// the key is not retained
	key[0] ^= 1
	if !reflect.DeepEqual(a, b) {
		t.Fatal("schedule changed with the caller's key buffer")
	}
	c, _ := NewCipher(key)
	if reflect.DeepEqual(a.wk, c.wk) && reflect.DeepEqual(a.sk, c.sk) {
		t.Fatal("flipping a key bit did not change the schedule")
	}
}
