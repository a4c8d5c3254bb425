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

package kat

// vectors are the published test vectors, copied from each cipher's
// defining document: RFC 8891 (GOST R 34.12-2015 Magma), the HIGHT paper
// (CHES 2006), the IDEA reference, the NOEKEON submission (direct-key mode),
// the PRESENT paper and its 128-bit addendum, RFC 4269 (SEED) and the
// SIMON/SPECK paper (ePrint 2013/404).
var vectors = []Vector{
	{
		Method: "gost",
		Key:    []uint32{0xffeeddcc, 0xbbaa9988, 0x77665544, 0x33221100, 0xf0f1f2f3, 0xf4f5f6f7, 0xf8f9fafb, 0xfcfdfeff},
		Plain:  []uint32{0xfedcba98, 0x76543210},
		Cipher: []uint32{0x4ee901e5, 0xc2d8ca3d},
	},

	{Method: "hight", Key: []uint32{0x00112233, 0x44556677, 0x8899aabb, 0xccddeeff}, Plain: []uint32{0x00000000, 0x00000000}, Cipher: []uint32{0x00f418ae, 0xd94f03f2}},
	{Method: "hight", Key: []uint32{0xffeeddcc, 0xbbaa9988, 0x77665544, 0x33221100}, Plain: []uint32{0x00112233, 0x44556677}, Cipher: []uint32{0x23ce9f72, 0xe543e6d8}},
	{Method: "hight", Key: []uint32{0x00010203, 0x04050607, 0x08090a0b, 0x0c0d0e0f}, Plain: []uint32{0x01234567, 0x89abcdef}, Cipher: []uint32{0x7a6fb2a2, 0x8d23f466}},
	{Method: "hight", Key: []uint32{0x28dbc3bc, 0x49ffd87d, 0xcfa509b1, 0x1d422be7}, Plain: []uint32{0xb41e6be2, 0xeba84a14}, Cipher: []uint32{0xcc047a75, 0x209c1fc6}},

	{
		Method: "idea",
		Key:    []uint32{0x00010002, 0x00030004, 0x00050006, 0x00070008},
		Plain:  []uint32{0x00000001, 0x00020003},
		Cipher: []uint32{0x11fbed2b, 0x01986de5},
	},

	{Method: "noekeon", Key: []uint32{0, 0, 0, 0}, Plain: []uint32{0, 0, 0, 0}, Cipher: []uint32{0xb1656851, 0x699e29fa, 0x24b70148, 0x503d2dfc}},
	{
		Method: "noekeon",
		Key:    []uint32{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff},
		Plain:  []uint32{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff},
		Cipher: []uint32{0x2a78421b, 0x87c7d092, 0x4f26113f, 0x1d1349b2},
	},
	{
		Method: "noekeon",
		Key:    []uint32{0xb1656851, 0x699e29fa, 0x24b70148, 0x503d2dfc},
		Plain:  []uint32{0x2a78421b, 0x87c7d092, 0x4f26113f, 0x1d1349b2},
		Cipher: []uint32{0xe2f687e0, 0x7b75660f, 0xfc372233, 0xbc47532c},
	},

	{Method: "present-80", Key: []uint32{0, 0, 0}, KeyLen: 10, Plain: []uint32{0, 0}, Cipher: []uint32{0x5579c138, 0x7b228445}},
	{Method: "present-80", Key: []uint32{0xffffffff, 0xffffffff, 0xffff0000}, KeyLen: 10, Plain: []uint32{0, 0}, Cipher: []uint32{0xe72c46c0, 0xf5945049}},
	{Method: "present-80", Key: []uint32{0, 0, 0}, KeyLen: 10, Plain: []uint32{0xffffffff, 0xffffffff}, Cipher: []uint32{0xa112ffc7, 0x2f68417b}},
	{Method: "present-80", Key: []uint32{0xffffffff, 0xffffffff, 0xffff0000}, KeyLen: 10, Plain: []uint32{0xffffffff, 0xffffffff}, Cipher: []uint32{0x3333dcd3, 0x213210d2}},
	{Method: "present-128", Key: []uint32{0, 0, 0, 0}, Plain: []uint32{0, 0}, Cipher: []uint32{0x96db702a, 0x2e6900af}},
	{Method: "present-128", Key: []uint32{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff}, Plain: []uint32{0, 0}, Cipher: []uint32{0x13238c71, 0x0272a5d8}},
	{Method: "present-128", Key: []uint32{0, 0, 0, 0}, Plain: []uint32{0xffffffff, 0xffffffff}, Cipher: []uint32{0x3c6019e5, 0xe5edd563}},
	{Method: "present-128", Key: []uint32{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff}, Plain: []uint32{0xffffffff, 0xffffffff}, Cipher: []uint32{0x628d9fbd, 0x4218e5b4}},

	{Method: "seed", Key: []uint32{0, 0, 0, 0}, Plain: []uint32{0x00010203, 0x04050607, 0x08090a0b, 0x0c0d0e0f}, Cipher: []uint32{0x5ebac6e0, 0x054e1668, 0x19aff1cc, 0x6d346cdb}},
	{Method: "seed", Key: []uint32{0x00010203, 0x04050607, 0x08090a0b, 0x0c0d0e0f}, Plain: []uint32{0, 0, 0, 0}, Cipher: []uint32{0xc11f22f2, 0x01405050, 0x84483597, 0xe4370f43}},
	{
		Method: "seed",
		Key:    []uint32{0x47064808, 0x51e61be8, 0x5d74bfb3, 0xfd956185},
		Plain:  []uint32{0x83a2f8a2, 0x88641fb9, 0xa4e9a5cc, 0x2f131c7d},
		Cipher: []uint32{0xee54d13e, 0xbcae706d, 0x226bc314, 0x2cd40d4a},
	},
	{
		Method: "seed",
		Key:    []uint32{0x28dbc3bc, 0x49ffd87d, 0xcfa509b1, 0x1d422be7},
		Plain:  []uint32{0xb41e6be2, 0xeba84a14, 0x8e2eed84, 0x593c5ec7},
		Cipher: []uint32{0x9b9b7bfc, 0xd1813cb9, 0x5d0b3618, 0xf40f5122},
	},

	{
		Method: "simon-128",
		Key:    []uint32{0x0f0e0d0c, 0x0b0a0908, 0x07060504, 0x03020100},
		Plain:  []uint32{0x63736564, 0x20737265, 0x6c6c6576, 0x61727420},
		Cipher: []uint32{0x49681b1e, 0x1e54fe3f, 0x65aa832a, 0xf84e0bbc},
	},
	{
		Method: "simon-192",
		Key:    []uint32{0x17161514, 0x13121110, 0x0f0e0d0c, 0x0b0a0908, 0x07060504, 0x03020100},
		Plain:  []uint32{0x20657265, 0x6874206e, 0x65687720, 0x65626972},
		Cipher: []uint32{0xc4ac61ef, 0xfcdc0d4f, 0x6c9c8d6e, 0x2597b85b},
	},
	{
		Method: "simon-256",
		Key:    []uint32{0x1f1e1d1c, 0x1b1a1918, 0x17161514, 0x13121110, 0x0f0e0d0c, 0x0b0a0908, 0x07060504, 0x03020100},
		Plain:  []uint32{0x74206e69, 0x206d6f6f, 0x6d697320, 0x61207369},
		Cipher: []uint32{0x8d2b5579, 0xafc8a3a0, 0x3bf72a87, 0xefe7b868},
	},

	{
		Method: "speck-128",
		Key:    []uint32{0x0f0e0d0c, 0x0b0a0908, 0x07060504, 0x03020100},
		Plain:  []uint32{0x6c617669, 0x75716520, 0x74692065, 0x64616d20},
		Cipher: []uint32{0xa65d9851, 0x79783265, 0x7860fedf, 0x5c570d18},
	},
	{
		Method: "speck-192",
		Key:    []uint32{0x17161514, 0x13121110, 0x0f0e0d0c, 0x0b0a0908, 0x07060504, 0x03020100},
		Plain:  []uint32{0x72614820, 0x66656968, 0x43206f74, 0x20746e65},
		Cipher: []uint32{0x1be4cf3a, 0x13135566, 0xf9bc185d, 0xe03c1886},
	},
	{
		Method: "speck-256",
		Key:    []uint32{0x1f1e1d1c, 0x1b1a1918, 0x17161514, 0x13121110, 0x0f0e0d0c, 0x0b0a0908, 0x07060504, 0x03020100},
		Plain:  []uint32{0x65736f68, 0x74206e49, 0x202e7265, 0x6e6f6f70},
		Cipher: []uint32{0x41090104, 0x05c0f53e, 0x4eeeb48d, 0x9c188f43},
	},
}

// Vectors returns every known-answer vector.
func Vectors() []Vector {
	return append([]Vector(nil), vectors...)
}

// ByMethod returns the vectors of one registry method.
func ByMethod(method string) []Vector {
	var out []Vector
	for _, v := range vectors {
		if v.Method == method {
			out = append(out, v)
		}
	}
	return out
}
