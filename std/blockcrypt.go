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

package std

import (
	"crypto/cipher"

	"github.com/templexxx/xorsimd"
	kcp "github.com/xtaci/kcp-go/v5"
)

// initialVector is the fixed IV kcp-go uses for its own block crypts, so a
// packet's random nonce header acts as the real IV.
var initialVector = []byte{167, 115, 79, 156, 18, 172, 27, 1, 164, 21, 242, 193, 252, 120, 230, 107}

type blockCrypt struct {
	block cipher.Block
	iv    []byte
	enc   []byte
	dec   []byte
}

// NewBlockCrypt wraps block in CFB mode as a kcp.BlockCrypt. Encrypt and
// Decrypt accept dst == src. Like kcp-go's built-in crypts, each direction
// owns one scratch buffer, so at most one Encrypt and one Decrypt may run at
// a time.
func NewBlockCrypt(block cipher.Block) kcp.BlockCrypt {
	n := block.BlockSize()
	return &blockCrypt{
		block: block,
		iv:    initialVector[:n],
		enc:   make([]byte, n),
		dec:   make([]byte, 2*n),
	}
}

func (c *blockCrypt) Encrypt(dst, src []byte) {
	n := c.block.BlockSize()
	tbl := c.enc
	c.block.Encrypt(tbl, c.iv)

	base := 0
	for ; base+n <= len(src); base += n {
		d := dst[base : base+n]
		xorsimd.Bytes(d, src[base:base+n], tbl)
		c.block.Encrypt(tbl, d)
	}
	xorsimd.Bytes(dst[base:], src[base:], tbl)
}

func (c *blockCrypt) Decrypt(dst, src []byte) {
	n := c.block.BlockSize()
	tbl, next := c.dec[:n], c.dec[n:]
	c.block.Encrypt(tbl, c.iv)

	base := 0
	for ; base+n <= len(src); base += n {
		s := src[base : base+n]
		c.block.Encrypt(next, s)
		xorsimd.Bytes(dst[base:base+n], s, tbl)
		tbl, next = next, tbl
	}
	xorsimd.Bytes(dst[base:], src[base:], tbl)
}
