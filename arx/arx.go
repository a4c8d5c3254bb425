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

// Package arx holds the pieces SIMON and SPECK share: the key-width to
// round-count table and the loading of 64-bit key and block words.
package arx

import "encoding/binary"

// MaxKeyWords is the number of 64-bit words in the widest (256-bit) key.
const MaxKeyWords = 4

// RoundTable lists a cipher's round count for 128, 192 and 256-bit keys.
type RoundTable [3]int

// Rounds reports the round count for a key of keyLen bytes. ok is false for
// any other width.
func (t RoundTable) Rounds(keyLen int) (rounds int, ok bool) {
	switch keyLen {
	case 16:
		return t[0], true
	case 24:
		return t[1], true
	case 32:
		return t[2], true
	default:
		return 0, false
	}
}

// KeyWords splits key into big-endian 64-bit words and stores them in
// reverse, so dst[0] holds the last (least significant) printed word. It
// returns the number of words written.
func KeyWords(dst *[MaxKeyWords]uint64, key []byte) int {
	m := len(key) / 8
	for i := 0; i < m; i++ {
		dst[m-1-i] = binary.BigEndian.Uint64(key[8*i:])
	}
	return m
}

// LoadBlock returns the high and low words of a 16-byte block.
func LoadBlock(src []byte) (x, y uint64) {
	return binary.BigEndian.Uint64(src[0:]), binary.BigEndian.Uint64(src[8:])
}

// StoreBlock is the inverse of LoadBlock.
func StoreBlock(dst []byte, x, y uint64) {
	binary.BigEndian.PutUint64(dst[0:], x)
	binary.BigEndian.PutUint64(dst[8:], y)
}
