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

// ZigZagEncode maps a two's-complement-interpreted uint32 to an unsigned
// value whose magnitude tracks the original's absolute value, so that
// small negative numbers compress as well as small positive ones under
// this package's variable-length codes. It is the standard zig-zag
// transform (Protocol Buffers' sint32 encoding uses the same mapping).
func ZigZagEncode(v uint32) uint32 {
	return (v << 1) ^ uint32(int32(v)>>31)
}

// ZigZagDecode is the inverse of ZigZagEncode.
func ZigZagDecode(v uint32) uint32 {
	return (v >> 1) ^ uint32(-int32(v&1))
}

// ZigZagEncodeInto applies ZigZagEncode to every element of values in
// place. Callers wanting to preserve the original slice should copy it
// first.
func ZigZagEncodeInto(values []uint32) {
	for i, v := range values {
		values[i] = ZigZagEncode(v)
	}
}

// ZigZagDecodeInto applies ZigZagDecode to every element of values in
// place.
func ZigZagDecodeInto(values []uint32) {
	for i, v := range values {
		values[i] = ZigZagDecode(v)
	}
}

// EncodeZigZag is Encode composed with ZigZagEncode: it lets callers carry
// signed integers (held as a uint32 two's-complement bit pattern) through
// this package's unsigned-only wire format, at the cost of one extra pass
// over a copy of values (Encode itself applies no transform).
func EncodeZigZag(values []uint32) (count int, bytes []byte) {
	zz := make([]uint32, len(values))
	copy(zz, values)
	ZigZagEncodeInto(zz)
	return Encode(zz)
}

// DecodeZigZag is Decode composed with ZigZagDecode.
func DecodeZigZag(count int, bytes []byte) ([]uint32, error) {
	values, err := Decode(count, bytes)
	if err != nil {
		return nil, err
	}
	ZigZagDecodeInto(values)
	return values, nil
}
