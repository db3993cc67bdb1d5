// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package streamvbyte

// simdOverreadSlack is the number of trailing bytes MaxCompressedLen adds
// beyond the 4-bytes-per-value worst case: 16 - 4, the most a 16-byte load
// can reach past the data of a control byte, which consumes at least 4
// data bytes. PortableVectorDecodeInto does not read into it (it checks
// every 16-byte load against len(data)); ScalarEncodeInto's unconditional
// 4-byte stores may write into it.
const simdOverreadSlack = 16 - 4

// ControlBytesLen returns the number of control bytes needed to encode n
// values: one control byte packs the codes of up to four values.
func ControlBytesLen(n int) int {
	return (n + 3) / 4
}

// MaxCompressedLen returns a safe upper bound on the total number of bytes
// (control region plus data region) Encode(values) can produce for n
// values, plus simdOverreadSlack trailing bytes. The logical end of the
// buffer (what a caller should treat as "valid") is always
// ControlBytesLen(n) + ExactCompressedLen(values); Encode trims its result
// to that length, so the slack is not part of the slice it returns.
func MaxCompressedLen(n int) int {
	return ControlBytesLen(n) + 4*n + simdOverreadSlack
}

// ExactCompressedLen returns the exact number of data bytes Encode(values)
// will produce (excluding control bytes), by examining every value once.
func ExactCompressedLen(values []uint32) int {
	total := 0
	for _, v := range values {
		total += valueCode(v) + 1
	}
	return total
}

// valueCode returns the 2-bit code for v: the number of extra bytes beyond
// the first needed to hold v in little-endian form, i.e. the smallest k in
// {0,1,2,3} such that v < 2^(8*(k+1)).
func valueCode(v uint32) int {
	t1 := b2i(v > 0x000000ff)
	t2 := b2i(v > 0x0000ffff)
	t3 := b2i(v > 0x00ffffff)
	return t1 + t2 + t3
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
