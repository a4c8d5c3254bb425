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

// Package idea implements the IDEA block cipher: a 64-bit block, a 128-bit
// key and eight rounds of mixed multiplication modulo 2^16+1, addition modulo
// 2^16 and XOR, followed by an output transformation.
package idea

import (
	"encoding/binary"
	"strconv"
)

const (
	BlockSize = 8
	KeySize   = 16

	rounds = 8
	keyLen = 6*rounds + 4 // 52 subkeys
)

// KeySizeError is returned for keys that are not 16 bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "idea: invalid key size " + strconv.Itoa(int(k))
}

// Block is an IDEA block as four 16-bit words, most significant first.
type Block [4]uint16

// Cipher holds the encryption subkeys and the decryption subkeys derived
// from them.
type Cipher struct {
	ek [keyLen]uint16
	dk [keyLen]uint16
}

// NewCipher creates a cipher from a 16-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	switch len(key) {
	case KeySize:
	default:
		return nil, KeySizeError(len(key))
	}

	c := new(Cipher)
	expandKey(key, &c.ek)
	invertKey(&c.ek, &c.dk)
	return c, nil
}

// mul computes x*y mod 2^16+1, where 0 stands for 2^16.
func mul(x, y uint16) uint16 {
	if y == 0 {
		return 1 - x
	}
	if x == 0 {
		return 1 - y
	}

	t32 := uint32(x) * uint32(y)
	lo, hi := uint16(t32), uint16(t32>>16)
	if lo < hi {
		return lo - hi + 1
	}
	return lo - hi
}

// mulInv computes the multiplicative inverse of x mod 2^16+1 with the
// extended Euclidean algorithm.
func mulInv(x uint16) uint16 {
	if x <= 1 {
		return x // 0 and 1 are self-inverse
	}

	t1 := uint16(0x10001 / uint32(x)) // x >= 2, so this fits into 16 bits
	y := uint16(0x10001 % uint32(x))
	if y == 1 {
		return 1 - t1
	}

	var t0 uint16 = 1
	for y != 1 {
		q := x / y
		x %= y
		t0 += q * t1
		if x == 1 {
			return t0
		}
		q = y / x
		y %= x
		t1 += q * t0
	}
	return 1 - t1
}

// expandKey fills ek with the eight key words followed by successive 25-bit
// rotations of the whole key, one 16-bit word at a time. Positions 6 and 7 of
// each group of eight wrap around to the start of the previous group.
func expandKey(key []byte, ek *[keyLen]uint16) {
	for i := 0; i < 8; i++ {
		ek[i] = binary.BigEndian.Uint16(key[2*i:])
	}
	for i := 8; i < keyLen; i++ {
		switch i & 7 {
		case 6:
			ek[i] = ek[i-7]<<9 | ek[i-14]>>7
		case 7:
			ek[i] = ek[i-15]<<9 | ek[i-14]>>7
		default:
			ek[i] = ek[i-7]<<9 | ek[i-6]>>7
		}
	}
}

// invertKey derives the decryption subkeys. Round r of decryption uses the
// inverted group of encryption round 8-r: multiplicative keys are inverted,
// additive keys negated and, for the inner rounds, the additive pair swapped.
// The MA keys of encryption round 7-r are used unchanged.
func invertKey(ek, dk *[keyLen]uint16) {
	for r := 0; r <= rounds; r++ {
		e := ek[6*(rounds-r):]
		d := dk[6*r:]

		d[0] = mulInv(e[0])
		if r == 0 || r == rounds {
			// the output transformation has no swap to undo
			d[1], d[2] = -e[1], -e[2]
		} else {
			d[1], d[2] = -e[2], -e[1]
		}
		d[3] = mulInv(e[3])

		if r < rounds {
			m := ek[6*(rounds-1-r)+4:]
			d[4], d[5] = m[0], m[1]
		}
	}
}

// crypt runs the eight rounds and the output transformation with either
// subkey set.
func crypt(b Block, z *[keyLen]uint16) Block {
	x0, x1, x2, x3 := b[0], b[1], b[2], b[3]
	k := z[:]

	for r := 0; r < rounds; r++ {
		x0 = mul(x0, k[0])
		x1 += k[1]
		x2 += k[2]
		x3 = mul(x3, k[3])

		// multiplication-addition structure
		t0 := mul(k[4], x0^x2)
		t1 := mul(k[5], t0+(x1^x3))
		t0 += t1

		x0 ^= t1
		x3 ^= t0
		t0 ^= x1
		x1 = t1 ^ x2
		x2 = t0

		k = k[6:]
	}

	// output transformation, undoing the last swap of the middle words
	return Block{mul(x0, k[0]), x2 + k[1], x1 + k[2], mul(x3, k[3])}
}

func (c *Cipher) EncryptBlock(b Block) Block { return crypt(b, &c.ek) }
func (c *Cipher) DecryptBlock(b Block) Block { return crypt(b, &c.dk) }

func (c *Cipher) BlockSize() int { return BlockSize }

func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("idea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("idea: output not full block")
	}
	store(dst, c.EncryptBlock(load(src)))
}

func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("idea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("idea: output not full block")
	}
	store(dst, c.DecryptBlock(load(src)))
}

func load(src []byte) (b Block) {
	for i := range b {
		b[i] = binary.BigEndian.Uint16(src[2*i:])
	}
	return
}

func store(dst []byte, b Block) {
	for i, w := range b {
		binary.BigEndian.PutUint16(dst[2*i:], w)
	}
}
