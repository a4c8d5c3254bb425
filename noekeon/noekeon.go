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

// Package noekeon implements the NOEKEON block cipher in direct-key mode:
// 128-bit blocks and keys, 16 rounds of a bitsliced Gamma/Theta/Pi round.
//
// Blocks and keys are four big-endian 32-bit words a0..a3.
package noekeon

import (
	"encoding/binary"
	"math/bits"
	"strconv"
)

const (
	BlockSize = 16
	KeySize   = 16
	rounds    = 16
)

// rc holds the round constants, doubling in GF(2^8) from 0x80.
var rc = [rounds + 1]uint32{
	0x80, 0x1b, 0x36, 0x6c, 0xd8, 0xab, 0x4d, 0x9a,
	0x2f, 0x5e, 0xbc, 0x63, 0xc6, 0x97, 0x35, 0x6a,
	0xd4,
}

type KeySizeError int

func (k KeySizeError) Error() string {
	return "noekeon: invalid key size " + strconv.Itoa(int(k))
}

// Block is the cipher state a0..a3.
type Block [4]uint32

// Cipher holds the working key and the Theta-transformed decryption key.
type Cipher struct {
	ek, dk Block
}

func NewCipher(key []byte) (*Cipher, error) {
	switch len(key) {
	case KeySize:
	default:
		return nil, KeySizeError(len(key))
	}

	c := new(Cipher)
	c.ek = load(key)
	c.dk = c.ek
	theta(&c.dk, &Block{})
	return c, nil
}

func theta(a, k *Block) {
	t := a[0] ^ a[2]
	t ^= bits.RotateLeft32(t, 8) ^ bits.RotateLeft32(t, 24)
	a[1] ^= t
	a[3] ^= t

	a[0] ^= k[0]
	a[1] ^= k[1]
	a[2] ^= k[2]
	a[3] ^= k[3]

	t = a[1] ^ a[3]
	t ^= bits.RotateLeft32(t, 8) ^ bits.RotateLeft32(t, 24)
	a[0] ^= t
	a[2] ^= t
}

func gamma(a *Block) {
	a[1] ^= ^a[3] &^ a[2]
	a[0] ^= a[2] & a[1]

	a[0], a[3] = a[3], a[0]
	a[2] ^= a[0] ^ a[1] ^ a[3]

	a[1] ^= ^a[3] &^ a[2]
	a[0] ^= a[2] & a[1]
}

func pi1(a *Block) {
	a[1] = bits.RotateLeft32(a[1], 1)
	a[2] = bits.RotateLeft32(a[2], 5)
	a[3] = bits.RotateLeft32(a[3], 2)
}

func pi2(a *Block) {
	a[1] = bits.RotateLeft32(a[1], -1)
	a[2] = bits.RotateLeft32(a[2], -5)
	a[3] = bits.RotateLeft32(a[3], -2)
}

// round applies one round; encryption injects c1, decryption c2.
func round(a, k *Block, c1, c2 uint32) {
	a[0] ^= c1
	theta(a, k)
	a[0] ^= c2
	pi1(a)
	gamma(a)
	pi2(a)
}

func (c *Cipher) EncryptBlock(b Block) Block {
	for i := 0; i < rounds; i++ {
		round(&b, &c.ek, rc[i], 0)
	}
	b[0] ^= rc[rounds]
	theta(&b, &c.ek)
	return b
}

func (c *Cipher) DecryptBlock(b Block) Block {
	for i := rounds; i > 0; i-- {
		round(&b, &c.dk, 0, rc[i])
	}
	theta(&b, &c.dk)
	b[0] ^= rc[0]
	return b
}

func (c *Cipher) BlockSize() int { return BlockSize }

func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("noekeon: input not full block")
	}
	if len(dst) < BlockSize {
		panic("noekeon: output not full block")
	}
	store(dst, c.EncryptBlock(load(src)))
}

func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("noekeon: input not full block")
	}
	if len(dst) < BlockSize {
		panic("noekeon: output not full block")
	}
	store(dst, c.DecryptBlock(load(src)))
}

func load(src []byte) Block {
	return Block{
		binary.BigEndian.Uint32(src[0:]),
		binary.BigEndian.Uint32(src[4:]),
		binary.BigEndian.Uint32(src[8:]),
		binary.BigEndian.Uint32(src[12:]),
	}
}

func store(dst []byte, b Block) {
	binary.BigEndian.PutUint32(dst[0:], b[0])
	binary.BigEndian.PutUint32(dst[4:], b[1])
	binary.BigEndian.PutUint32(dst[8:], b[2])
	binary.BigEndian.PutUint32(dst[12:], b[3])
}
