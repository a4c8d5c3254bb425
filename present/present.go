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

// Package present implements the PRESENT block cipher (CHES 2007,
// ISO/IEC 29192-2): a 64-bit substitution-permutation network with 31
// rounds and either an 80-bit or a 128-bit key.
package present

import (
	"encoding/binary"
	"strconv"
)

const (
	BlockSize = 8
	rounds    = 31
)

var (
	sbox    = [16]uint64{0xc, 0x5, 0x6, 0xb, 0x9, 0x0, 0xa, 0xd, 0x3, 0xe, 0xf, 0x8, 0x4, 0x7, 0x1, 0x2}
	sboxInv [16]uint64

	// sp[i][v] is nibble i set to v, substituted and then permuted.
	sp [16][16]uint64
	// pInv[i][v] is nibble i set to v under the inverse permutation.
	pInv [16][16]uint64
)

func init() {
	for v, s := range sbox {
		sboxInv[s] = uint64(v)
	}
	for i := 0; i < 16; i++ {
		for v := 0; v < 16; v++ {
			sp[i][v] = permute(sbox[v] << (4 * uint(i)))
			pInv[i][v] = unpermute(uint64(v) << (4 * uint(i)))
		}
	}
}

// position returns where bit i moves to: 16i mod 63, with bit 63 fixed.
func position(i uint) uint {
	if i == 63 {
		return 63
	}
	return 16 * i % 63
}

func permute(s uint64) (r uint64) {
	for i := uint(0); i < 64; i++ {
		r |= (s >> i & 1) << position(i)
	}
	return
}

func unpermute(s uint64) (r uint64) {
	for i := uint(0); i < 64; i++ {
		r |= (s >> position(i) & 1) << i
	}
	return
}

// KeySizeError is returned for keys that are neither 10 nor 16 bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "present: invalid key size " + strconv.Itoa(int(k))
}

// Block is the 64-bit state as four 16-bit words, most significant first.
type Block [4]uint16

// Cipher holds the 32 round keys.
type Cipher struct {
	rk [rounds + 1]uint64
}

// NewCipher creates a cipher from an 80-bit (10 byte) or 128-bit (16 byte)
// key.
func NewCipher(key []byte) (*Cipher, error) {
	c := new(Cipher)
	switch len(key) {
	case 10:
		c.expand80(key)
	case 16:
		c.expand128(key)
	default:
		return nil, KeySizeError(len(key))
	}
	return c, nil
}

// expand80 keeps the 80-bit register as its top 16 bits and low 64 bits.
func (c *Cipher) expand80(key []byte) {
	hi := uint64(binary.BigEndian.Uint16(key[0:]))
	lo := binary.BigEndian.Uint64(key[2:])
	for i := uint64(1); ; i++ {
		c.rk[i-1] = hi<<48 | lo>>16
		if i == rounds+1 {
			return
		}
		// rotate left by 61
		hi, lo = lo>>3&0xffff, lo>>19|hi<<45|lo<<61
		hi = sbox[hi>>12]<<12 | hi&0xfff
		lo ^= i << 15
	}
}

func (c *Cipher) expand128(key []byte) {
	hi := binary.BigEndian.Uint64(key[0:])
	lo := binary.BigEndian.Uint64(key[8:])
	for i := uint64(1); ; i++ {
		c.rk[i-1] = hi
		if i == rounds+1 {
			return
		}
		hi, lo = hi<<61|lo>>3, lo<<61|hi>>3
		hi = sbox[hi>>60]<<60 | sbox[hi>>56&0xf]<<56 | hi&0x00ffffffffffffff
		lo ^= i << 62
		hi ^= i >> 2
	}
}

func (c *Cipher) encrypt(s uint64) uint64 {
	for i := 0; i < rounds; i++ {
		s ^= c.rk[i]
		var t uint64
		for n := 0; n < 16; n++ {
			t |= sp[n][s>>(4*uint(n))&0xf]
		}
		s = t
	}
	return s ^ c.rk[rounds]
}

func (c *Cipher) decrypt(s uint64) uint64 {
	s ^= c.rk[rounds]
	for i := rounds - 1; i >= 0; i-- {
		var t uint64
		for n := 0; n < 16; n++ {
			t |= pInv[n][s>>(4*uint(n))&0xf]
		}
		s = 0
		for n := uint(0); n < 64; n += 4 {
			s |= sboxInv[t>>n&0xf] << n
		}
		s ^= c.rk[i]
	}
	return s
}

func (c *Cipher) EncryptBlock(b Block) Block { return split(c.encrypt(join(b))) }

func (c *Cipher) DecryptBlock(b Block) Block { return split(c.decrypt(join(b))) }

func (c *Cipher) BlockSize() int { return BlockSize }

func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("present: input not full block")
	}
	if len(dst) < BlockSize {
		panic("present: output not full block")
	}
	binary.BigEndian.PutUint64(dst, c.encrypt(binary.BigEndian.Uint64(src)))
}

func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("present: input not full block")
	}
	if len(dst) < BlockSize {
		panic("present: output not full block")
	}
	binary.BigEndian.PutUint64(dst, c.decrypt(binary.BigEndian.Uint64(src)))
}

func join(b Block) uint64 {
	return uint64(b[0])<<48 | uint64(b[1])<<32 | uint64(b[2])<<16 | uint64(b[3])
}

func split(s uint64) Block {
	return Block{uint16(s >> 48), uint16(s >> 32), uint16(s >> 16), uint16(s)}
}
