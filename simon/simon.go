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

// Package simon implements the SIMON block cipher with a 128-bit block and
// 128, 192 or 256-bit keys (ePrint 2013/404).
package simon

import (
	"math/bits"
	"strconv"

	"github.com/xtaci/lwcrypt/arx"
)

const BlockSize = 16

var rounds = arx.RoundTable{68, 69, 72}

// z holds the constant sequences z2, z3 and z4, bit i being element i. Keys
// of m words use z[m-2].
var z = [3]uint64{
	0x7369f885192c0ef5,
	0xfc2ce51207a635db,
	0xfdc94c3a046d678b,
}

// c is 2^64 - 4.
const c = 0xfffffffffffffffc

// KeySizeError is returned for keys that are not 16, 24 or 32 bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "simon: invalid key size " + strconv.Itoa(int(k))
}

// Block is a SIMON block as two 64-bit words, x (high) first.
type Block [2]uint64

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

	rk := make([]uint64, nr)
	copy(rk, k[:m])
	seq := z[m-2]
	for i := m; i < nr; i++ {
		tmp := bits.RotateLeft64(rk[i-1], -3)
		if m == 4 {
			tmp ^= rk[i-3]
		}
		tmp ^= bits.RotateLeft64(tmp, -1)
		rk[i] = c ^ rk[i-m] ^ tmp ^ (seq>>uint((i-m)%62))&1
	}
	return &Cipher{rk: rk}, nil
}

func f(x uint64) uint64 {
	return (bits.RotateLeft64(x, 1) & bits.RotateLeft64(x, 8)) ^ bits.RotateLeft64(x, 2)
}

// Rounds returns the number of rounds selected by the key width.
func (s *Cipher) Rounds() int { return len(s.rk) }

func (s *Cipher) EncryptBlock(b Block) Block {
	x, y := b[0], b[1]
	for _, k := range s.rk {
		x, y = y^f(x)^k, x
	}
	return Block{x, y}
}

func (s *Cipher) DecryptBlock(b Block) Block {
	x, y := b[0], b[1]
	for i := len(s.rk) - 1; i >= 0; i-- {
		x, y = y, x^f(y)^s.rk[i]
	}
	return Block{x, y}
}

func (s *Cipher) BlockSize() int { return BlockSize }

func (s *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("simon: input not full block")
	}
	if len(dst) < BlockSize {
		panic("simon: output not full block")
	}
	x, y := arx.LoadBlock(src)
	b := s.EncryptBlock(Block{x, y})
	arx.StoreBlock(dst, b[0], b[1])
}

func (s *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("simon: input not full block")
	}
	if len(dst) < BlockSize {
		panic("simon: output not full block")
	}
	x, y := arx.LoadBlock(src)
	b := s.DecryptBlock(Block{x, y})
	arx.StoreBlock(dst, b[0], b[1])
}
