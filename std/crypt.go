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

// Package std exposes the cipher suite by name and adapts it to kcp-go's
// BlockCrypt so sessions can be encrypted with any method in the registry.
package std

import (
	"crypto/cipher"
	stderrors "errors"
	"fmt"
	"log"
	"sort"

	"github.com/pkg/errors"
	kcp "github.com/xtaci/kcp-go/v5"

	"github.com/xtaci/lwcrypt/gost"
	"github.com/xtaci/lwcrypt/hight"
	"github.com/xtaci/lwcrypt/idea"
	"github.com/xtaci/lwcrypt/noekeon"
	"github.com/xtaci/lwcrypt/present"
	"github.com/xtaci/lwcrypt/seed"
	"github.com/xtaci/lwcrypt/simon"
	"github.com/xtaci/lwcrypt/speck"
)

// DefaultMethod is used when a requested method cannot be built.
const DefaultMethod = "speck-128"

var (
	ErrUnknownMethod   = stderrors.New("std: unknown cipher method")
	ErrInvalidKeyWidth = stderrors.New("std: invalid key width")
)

// KeyWidthError reports a key whose length does not match the method.
// It matches ErrInvalidKeyWidth under errors.Is.
type KeyWidthError struct {
	Method    string
	Got, Want int
}

func (e *KeyWidthError) Error() string {
	return fmt.Sprintf("std: %s needs a %d byte key, got %d", e.Method, e.Want, e.Got)
}

func (e *KeyWidthError) Is(target error) bool { return target == ErrInvalidKeyWidth }

// cryptMethod maps a method name to its constructor and the key size it takes.
type cryptMethod struct {
	keySize int
	build   func(key []byte) (cipher.Block, error)
}

var cryptMethods = map[string]cryptMethod{
	"gost":        {gost.KeySize, func(key []byte) (cipher.Block, error) { return gost.NewCipher(key) }},
	"hight":       {hight.KeySize, func(key []byte) (cipher.Block, error) { return hight.NewCipher(key) }},
	"idea":        {idea.KeySize, func(key []byte) (cipher.Block, error) { return idea.NewCipher(key) }},
	"noekeon":     {noekeon.KeySize, func(key []byte) (cipher.Block, error) { return noekeon.NewCipher(key) }},
	"present-80":  {10, func(key []byte) (cipher.Block, error) { return present.NewCipher(key) }},
	"present-128": {16, func(key []byte) (cipher.Block, error) { return present.NewCipher(key) }},
	"seed":        {seed.KeySize, func(key []byte) (cipher.Block, error) { return seed.NewCipher(key) }},
	"simon-128":   {16, func(key []byte) (cipher.Block, error) { return simon.NewCipher(key) }},
	"simon-192":   {24, func(key []byte) (cipher.Block, error) { return simon.NewCipher(key) }},
	"simon-256":   {32, func(key []byte) (cipher.Block, error) { return simon.NewCipher(key) }},
	"speck-128":   {16, func(key []byte) (cipher.Block, error) { return speck.NewCipher(key) }},
	"speck-192":   {24, func(key []byte) (cipher.Block, error) { return speck.NewCipher(key) }},
	"speck-256":   {32, func(key []byte) (cipher.Block, error) { return speck.NewCipher(key) }},
}

// Methods returns the registered method names in sorted order.
func Methods() []string {
	names := make([]string, 0, len(cryptMethods))
	for name := range cryptMethods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KeySize returns the key length in bytes that method expects.
func KeySize(method string) (int, error) {
	m, ok := cryptMethods[method]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownMethod, "method %q", method)
	}
	return m.keySize, nil
}

// NewBlock builds the named cipher. The key must have exactly the method's
// key size.
func NewBlock(method string, key []byte) (cipher.Block, error) {
	m, ok := cryptMethods[method]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMethod, "method %q", method)
	}
	if len(key) != m.keySize {
		return nil, errors.WithStack(&KeyWidthError{Method: method, Got: len(key), Want: m.keySize})
	}
	block, err := m.build(key)
	if err != nil {
		return nil, errors.Wrapf(err, "std: build %s", method)
	}
	return block, nil
}

// SelectBlockCrypt translates a cipher name into a kcp.BlockCrypt keyed from
// pass, truncated to the method's key size. It reports the effective method
// after falling back to DefaultMethod.
func SelectBlockCrypt(method string, pass []byte) (kcp.BlockCrypt, string) {
	if m, ok := cryptMethods[method]; ok {
		key := pass
		if len(pass) >= m.keySize {
			key = pass[:m.keySize]
		}
		block, err := NewBlock(method, key)
		if err == nil {
			return NewBlockCrypt(block), method
		}
		log.Printf("crypt: failed to create %s cipher: %v, falling back to %s", method, err, DefaultMethod)
	} else {
		log.Printf("crypt: unknown method %q, falling back to %s", method, DefaultMethod)
	}

	key := pass
	if n := cryptMethods[DefaultMethod].keySize; len(pass) >= n {
		key = pass[:n]
	}
	block, err := NewBlock(DefaultMethod, key)
	if err != nil {
		log.Printf("crypt: failed to create default %s cipher: %v", DefaultMethod, err)
		return nil, DefaultMethod
	}
	return NewBlockCrypt(block), DefaultMethod
}
