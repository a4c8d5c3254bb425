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

package speck

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/xtaci/lwcrypt/kat"
)

var methods = []struct {
	name   string
	keyLen int
	rounds int
}{
	{"speck-128", 16, 32},
	{"speck-192", 24, 33},
	{"speck-256", 32, 34},
}

func TestKnownAnswers(t *testing.T) {
	for _, m := range methods {
		vs := kat.ByMethod(m.name)
		if len(vs) == 0 {
			t.Fatalf("no vectors for %s", m.name)
		}
		for _, v := range vs {
			c, err := NewCipher(v.KeyBytes())
			if err != nil {
				t.Fatalf("%s: NewCipher: %v", m.name, err)
			}
			if err := kat.Check(c, v); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestWordAPI(t *testing.T) {
	key := []byte{
		0x0f, 0x0e, 0x0d, 0x0c, 0x0b, 0x0a, 0x09, 0x08,
		0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, 0x00,
	}
	c, err := NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	pt := Block{0x6c61766975716520, 0x7469206564616d20}
	ct := c.EncryptBlock(pt)
	if ct != (Block{0xa65d985179783265, 0x7860fedf5c570d18}) {
		t.Fatalf("EncryptBlock = %x", ct)
	}
	if got := c.DecryptBlock(ct); got != pt {
		t.Fatalf("DecryptBlock = %x, want %x", got, pt)
	}
}

func TestRounds(t *testing.T) {
	for _, m := range methods {
		c, err := NewCipher(make([]byte, m.keyLen))
		if err != nil {
			t.Fatal(err)
		}
		if c.Rounds() != m.rounds || len(c.rk) != m.rounds {
			t.Fatalf("%s: %d rounds, %d round keys; want %d", m.name, c.Rounds(), len(c.rk), m.rounds)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, m := range methods {
		for _, fill := range []byte{0x00, 0xff, 0x5a} {
			c, err := NewCipher(bytes.Repeat([]byte{fill}, m.keyLen))
			if err != nil {
				t.Fatal(err)
			}
			if err := kat.RoundTrip(c, 64, int64(m.keyLen)+int64(fill)); err != nil {
				t.Fatalf("%s key %02x: %v", m.name, fill, err)
			}
		}
	}
}

func TestDeterministicSchedule(t *testing.T) {
	key := []byte("0123456789abcdefghijklmnopqrstuv")
	a, _ := NewCipher(key)
	b, _ := NewCipher(append([]byte(nil), key...))
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical keys produced different schedules")
	}
	if err := kat.Stable(a, 8); err != nil {
		t.Fatal(err)
	}
}

func TestKeySize(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 23, 31, 33, 64} {
		c, err := NewCipher(make([]byte, n))
		if c != nil {
			t.Fatalf("NewCipher(%d bytes) returned a cipher", n)
		}
		if _, ok := err.(KeySizeError); !ok {
			t.Fatalf("NewCipher(%d bytes) error = %v, want KeySizeError", n, err)
		}
	}
	if got := KeySizeError(20).Error(); got != "speck: invalid key size 20" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestShortBufferPanics(t *testing.T) {
	c, _ := NewCipher(make([]byte, 16))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on short input")
		}
	}()
	c.Encrypt(make([]byte, BlockSize), make([]byte, BlockSize-1))
}

func BenchmarkEncrypt(b *testing.B) {
	c, _ := NewCipher(make([]byte, 16))
	buf := make([]byte, BlockSize)
	b.SetBytes(BlockSize)
	for i := 0; i < b.N; i++ {
		c.Encrypt(buf, buf)
	}
}
