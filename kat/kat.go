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

// Package kat is the conformance harness shared by the cipher packages and
// the cryptctl tool.
//
// Vectors are written the way the reference drivers receive them: as 32-bit
// words, most significant byte first. Pack turns them into the byte layout
// every cipher.Block in this module consumes.
package kat

import (
	"bytes"
	"crypto/cipher"
	"encoding/binary"
	"math/rand"

	"github.com/pkg/errors"
)

// Vector is one published known-answer triple for a registry method.
type Vector struct {
	Method string
	Key    []uint32
	KeyLen int // key length in bytes when it is not a multiple of four
	Plain  []uint32
	Cipher []uint32
}

// KeyBytes packs the key words.
func (v Vector) KeyBytes() []byte {
	n := v.KeyLen
	if n == 0 {
		n = 4 * len(v.Key)
	}
	return Pack(v.Key, n)
}

// PlainBytes packs the plaintext words.
func (v Vector) PlainBytes() []byte { return Pack(v.Plain, 4*len(v.Plain)) }

// CipherBytes packs the expected ciphertext words.
func (v Vector) CipherBytes() []byte { return Pack(v.Cipher, 4*len(v.Cipher)) }

// Pack writes words big-endian and returns the first n bytes. Words are left
// aligned, so an 80-bit key is three words with the last one's low half zero.
func Pack(words []uint32, n int) []byte {
	if n > 4*len(words) {
		panic("kat: pack length exceeds words")
	}
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint32(buf[4*i:], w)
	}
	return buf[:n]
}

// Check encrypts v's plaintext, compares it with the expected ciphertext, then
// decrypts the result back to the plaintext.
func Check(b cipher.Block, v Vector) error {
	plain, want := v.PlainBytes(), v.CipherBytes()
	if len(plain) != b.BlockSize() || len(want) != b.BlockSize() {
		return errors.Errorf("kat: %s vector has %d/%d bytes, block size is %d", v.Method, len(plain), len(want), b.BlockSize())
	}

	got := make([]byte, b.BlockSize())
	b.Encrypt(got, plain)
	if !bytes.Equal(got, want) {
		return errors.Errorf("kat: %s encrypt %x: got %x want %x", v.Method, plain, got, want)
	}

	back := make([]byte, b.BlockSize())
	b.Decrypt(back, got)
	if !bytes.Equal(back, plain) {
		return errors.Errorf("kat: %s decrypt %x: got %x want %x", v.Method, got, back, plain)
	}
	return nil
}

// RoundTrip checks decrypt(encrypt(p)) == p for the all-zero block, the
// all-one block and samples pseudo-random blocks drawn from seed. It also
// verifies that neither direction writes to its source buffer.
func RoundTrip(b cipher.Block, samples int, seed int64) error {
	n := b.BlockSize()
	rng := rand.New(rand.NewSource(seed))

	blocks := [][]byte{make([]byte, n), bytes.Repeat([]byte{0xff}, n)}
	for i := 0; i < samples; i++ {
		p := make([]byte, n)
		rng.Read(p)
		blocks = append(blocks, p)
	}

	ct := make([]byte, n)
	pt := make([]byte, n)
	for _, p := range blocks {
		src := append([]byte(nil), p...)
		b.Encrypt(ct, src)
		if !bytes.Equal(src, p) {
			return errors.Errorf("kat: encrypt modified its input %x", p)
		}
		ctCopy := append([]byte(nil), ct...)
		b.Decrypt(pt, ct)
		if !bytes.Equal(ct, ctCopy) {
			return errors.Errorf("kat: decrypt modified its input %x", ctCopy)
		}
		if !bytes.Equal(pt, p) {
			return errors.Errorf("kat: round trip %x -> %x -> %x", p, ct, pt)
		}
	}
	return nil
}

// Stable encrypts the all-zero block runs times and requires every result to
// be identical and to decrypt back to zero.
func Stable(b cipher.Block, runs int) error {
	zero := make([]byte, b.BlockSize())
	first := make([]byte, b.BlockSize())
	b.Encrypt(first, zero)

	ct := make([]byte, b.BlockSize())
	for i := 1; i < runs; i++ {
		b.Encrypt(ct, zero)
		if !bytes.Equal(ct, first) {
			return errors.Errorf("kat: run %d produced %x, first run %x", i, ct, first)
		}
	}

	b.Decrypt(ct, first)
	if !bytes.Equal(ct, zero) {
		return errors.Errorf("kat: zero block decrypted to %x", ct)
	}
	return nil
}
