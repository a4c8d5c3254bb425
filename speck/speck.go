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

// Package speck implements the SPECK block cipher with a 128-bit block and
// 128, 192 or 256-bit keys, as defined in "The SIMON and SPECK Families of
// Lightweight Block Ciphers" (ePrint 2013/404).
package speck

import (
	"math/bits"
	"strconv"

	"github.com/xtaci/lwcrypt/arx"
)

// BlockSize is the SPECK 128 block size in bytes.
const BlockSize = 16

// rounds is the T column of the SPECK 128 parameter table.
var rounds = arx.RoundTable{32, 33, 34}

// KeySizeError is returned for keys that are not 16, 24 or 32 bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "speck: invalid key size " + strconv.Itoa(int(k))
}

// Block is a SPECK block as two 64-bit words, x (high) first.
type Block [2]uint64

// Cipher holds the expanded round keys. It is safe for concurrent use once
// created.
type Cipher struct {
	rk []uint64
}

// NewCipher expands a 16, 24 or 32-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	nr, ok := rounds.Rounds(len(key))
	if !ok {
		return nil, KeySizeError(len(key))
	}

	var k [arx.MaxKeyWords]uint64
	m := arx.KeyWords(&k, key)

	// k[0] seeds the round keys, the remaining words are the l sequence that
	// is consumed round-robin.
	c := &Cipher{rk: make([]uint64, nr)}
	a := k[0]
	l := k[1:m]
	for i := 0; i < nr; i++ {
		c.rk[i] = a
		if i == nr-1 {
			break
		}
		j := i % len(l)
		l[j], a = round(l[j], a, uint64(i))
	}
	return c, nil
}

func round(x, y, k uint64) (uint64, uint64) {
	x = bits.RotateLeft64(x, -8)
	x += y
	x ^= k
	y = bits.RotateLeft64(y, 3)
	y ^= x
	return x, y
}

func unround(x, y, k uint64) (uint64, uint64) {
	y ^= x
	y = bits.RotateLeft64(y, -3)
	x ^= k
	x -= y
	x = bits.RotateLeft64(x, 8)
	return x, y
}

// Rounds returns the number of rounds selected by the key width.
func (c *Cipher) Rounds() int { return len(c.rk) }

// EncryptBlock runs the forward rounds.
func (c *Cipher) EncryptBlock(b Block) Block {
	x, y := b[0], b[1]
	for _, k := range c.rk {
		x, y = round(x, y, k)
	}
	return Block{x, y}
}

// DecryptBlock runs the inverse rounds with the round keys reversed.
func (c *Cipher) DecryptBlock(b Block) Block {
	x, y := b[0], b[1]
	for i := len(c.rk) - 1; i >= 0; i-- {
		x, y = unround(x, y, c.rk[i])
	}
	return Block{x, y}
}

func (c *Cipher) BlockSize() int { return BlockSize }

func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("speck: input not full block")
	}
	if len(dst) < BlockSize {
		panic("speck: output not full block")
	}
	x, y := arx.LoadBlock(src)
	b := c.EncryptBlock(Block{x, y})
	arx.StoreBlock(dst, b[0], b[1])
}

func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("speck: input not full block")
	}
	if len(dst) < BlockSize {
		panic("speck: output not full block")
	}
	x, y := arx.LoadBlock(src)
	b := c.DecryptBlock(Block{x, y})
	arx.StoreBlock(dst, b[0], b[1])
}
