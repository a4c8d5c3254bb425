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

// Package gost implements the GOST 28147-89 block cipher with the
// substitution box fixed by GOST R 34.12-2015 (Magma, RFC 8891).
//
// The block is two 32-bit halves, high half first, and the 256-bit key is
// read as eight big-endian words K1..K8, matching the RFC 8891 test vectors.
package gost

import (
	"encoding/binary"
	"math/bits"
	"strconv"
)

const (
	BlockSize = 8
	KeySize   = 32
	rounds    = 32
)

// sbox is the pi' table of GOST R 34.12-2015; row i substitutes nibble i,
// counting from the least significant.
var sbox = [8][16]byte{
	{12, 4, 6, 2, 10, 5, 11, 9, 14, 8, 13, 7, 0, 3, 15, 1},
	{6, 8, 2, 3, 9, 10, 5, 12, 1, 14, 4, 7, 11, 13, 0, 15},
	{11, 3, 5, 8, 2, 15, 10, 13, 14, 1, 7, 4, 12, 9, 6, 0},
	{12, 8, 2, 1, 13, 4, 15, 6, 7, 0, 10, 5, 3, 14, 9, 11},
	{7, 15, 5, 10, 8, 1, 6, 13, 0, 9, 3, 14, 11, 4, 2, 12},
	{5, 13, 15, 6, 9, 2, 12, 10, 11, 7, 8, 1, 4, 3, 14, 0},
	{8, 14, 2, 5, 6, 9, 1, 12, 15, 4, 11, 0, 13, 10, 3, 7},
	{1, 7, 14, 13, 0, 5, 8, 3, 4, 15, 10, 6, 9, 12, 11, 2},
}

// lookup merges pairs of nibble boxes into byte tables, already shifted into
// place.
var lookup [4][256]uint32

func init() {
	for k := 0; k < 4; k++ {
		lo, hi := &sbox[2*k], &sbox[2*k+1]
		for i := 0; i < 256; i++ {
			v := uint32(lo[i&0x0f]) | uint32(hi[i>>4])<<4
			lookup[k][i] = v << (8 * uint(k))
		}
	}
}

// KeySizeError is returned for keys that are not 32 bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "gost: invalid key size " + strconv.Itoa(int(k))
}

// Block is a GOST block: the high half a1 followed by the low half a0.
type Block [2]uint32

// Cipher holds the 32 round keys in encryption order.
type Cipher struct {
	rk [rounds]uint32
}

// NewCipher creates a cipher from a 32-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	switch len(key) {
	case KeySize:
	default:
		return nil, KeySizeError(len(key))
	}

	var k [8]uint32
	for i := range k {
		k[i] = binary.BigEndian.Uint32(key[4*i:])
	}

	// K1..K8 three times, then K8..K1.
	c := new(Cipher)
	for i := 0; i < 24; i++ {
		c.rk[i] = k[i%8]
	}
	for i := 0; i < 8; i++ {
		c.rk[24+i] = k[7-i]
	}
	return c, nil
}

func substitute(a uint32) uint32 {
	return lookup[0][a&0xff] |
		lookup[1][(a>>8)&0xff] |
		lookup[2][(a>>16)&0xff] |
		lookup[3][a>>24]
}

// g is the round function g[k](a) = t(a + k) <<< 11.
func g(k, a uint32) uint32 {
	return bits.RotateLeft32(substitute(a+k), 11)
}

func (c *Cipher) EncryptBlock(b Block) Block {
	a1, a0 := b[0], b[1]
	for i := 0; i < rounds-1; i++ {
		a1, a0 = a0, g(c.rk[i], a0)^a1
	}
	// the last round does not swap the halves
	return Block{g(c.rk[rounds-1], a0) ^ a1, a0}
}

func (c *Cipher) DecryptBlock(b Block) Block {
	a1, a0 := b[0], b[1]
	for i := rounds - 1; i > 0; i-- {
		a1, a0 = a0, g(c.rk[i], a0)^a1
	}
	return Block{g(c.rk[0], a0) ^ a1, a0}
}

func (c *Cipher) BlockSize() int { return BlockSize }

func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("gost: input not full block")
	}
	if len(dst) < BlockSize {
		panic("gost: output not full block")
	}
	b := c.EncryptBlock(Block{binary.BigEndian.Uint32(src[0:]), binary.BigEndian.Uint32(src[4:])})
	binary.BigEndian.PutUint32(dst[0:], b[0])
	binary.BigEndian.PutUint32(dst[4:], b[1])
}

func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("gost: input not full block")
	}
	if len(dst) < BlockSize {
		panic("gost: output not full block")
	}
	b := c.DecryptBlock(Block{binary.BigEndian.Uint32(src[0:]), binary.BigEndian.Uint32(src[4:])})
	binary.BigEndian.PutUint32(dst[0:], b[0])
	binary.BigEndian.PutUint32(dst[4:], b[1])
}
