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

package main

import (
	"crypto/cipher"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"

	"github.com/xtaci/lwcrypt/kat"
	"github.com/xtaci/lwcrypt/std"
)

// parseHex decodes a hex string, ignoring whitespace and an optional 0x
// prefix.
func parseHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parse hex %q", s)
	}
	return b, nil
}

// deriveKey returns the raw key for method: the hex key when given,
// otherwise the passphrase stretched with PBKDF2 to the method's key size.
func deriveKey(method string, config *Config) ([]byte, error) {
	n, err := std.KeySize(method)
	if err != nil {
		return nil, err
	}
	switch {
	case config.Key != "":
		return parseHex(config.Key)
	case config.Pass != "":
		return pbkdf2.Key([]byte(config.Pass), []byte(SALT), 4096, n, sha1.New), nil
	default:
		return nil, errors.New("either --key or --pass is required")
	}
}

// cryptBlocks runs every block of src through b independently. There is no
// chaining between blocks.
func cryptBlocks(b cipher.Block, src []byte, decrypt bool) ([]byte, error) {
	n := b.BlockSize()
	if len(src) == 0 || len(src)%n != 0 {
		return nil, errors.Errorf("input is %d bytes, need a non-zero multiple of %d", len(src), n)
	}
	dst := make([]byte, len(src))
	for i := 0; i < len(src); i += n {
		if decrypt {
			b.Decrypt(dst[i:i+n], src[i:i+n])
		} else {
			b.Encrypt(dst[i:i+n], src[i:i+n])
		}
	}
	return dst, nil
}

// runKAT checks the known-answer vectors of method, or of every method when
// it is empty, and reports one line per vector. It returns the number of
// failures.
func runKAT(w io.Writer, method string) (int, error) {
	vectors := kat.Vectors()
	if method != "" {
		if _, err := std.KeySize(method); err != nil {
			return 0, err
		}
		vectors = kat.ByMethod(method)
	}

	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)
	failed := 0
	for i, v := range vectors {
		b, err := std.NewBlock(v.Method, v.KeyBytes())
		if err == nil {
			err = kat.Check(b, v)
		}
		if err == nil {
			err = kat.RoundTrip(b, 16, int64(i))
		}
		if err != nil {
			failed++
			fail.Fprintf(w, "FAIL %-12s %v\n", v.Method, err)
			continue
		}
		pass.Fprintf(w, "PASS %-12s key=%x plain=%x cipher=%x\n", v.Method, v.KeyBytes(), v.PlainBytes(), v.CipherBytes())
	}
	return failed, nil
}

// listMethods prints every method with its key and block size in bits.
func listMethods(w io.Writer) error {
	for _, name := range std.Methods() {
		n, err := std.KeySize(name)
		if err != nil {
			return err
		}
		b, err := std.NewBlock(name, make([]byte, n))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-12s key %3d bits  block %3d bits\n", name, 8*n, 8*b.BlockSize())
	}
	return nil
}
