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

// encodeIntoFn and decodeIntoFn are the shapes ScalarEncodeInto/Decode and
// their vectorized counterparts share; dispatch picks one implementation
// of each per build target in init(), the same way the codebase this
// package's dispatch pattern is adapted from keeps one function variable
// per operation and lets architecture-specific files in this package
// override it.
type encodeIntoFn func(values []uint32, control, data []byte) (controlLen, dataLen int)
type decodeIntoFn func(n int, control, data []byte, out []uint32) (dataLen int, err error)

// encodeInto and decodeInto are the implementations Encode/Decode call.
// They default to the portable scalar path in init() below; architecture
// detection files (dispatch_amd64.go, dispatch_arm64.go) may override them
// to a vectorized path when the running target supports one.
var encodeInto encodeIntoFn
var decodeInto decodeIntoFn

func init() {
	encodeInto = ScalarEncodeInto
	decodeInto = ScalarDecodeInto
}

// Encode returns the element count and a single wire-format byte slice for
// values: the control bytes followed immediately by the data bytes, sized
// exactly to ControlBytesLen(count) + ExactCompressedLen(values). It never
// fails.
func Encode(values []uint32) (count int, bytes []byte) {
	n := len(values)
	controlLen := ControlBytesLen(n)
	buf := make([]byte, MaxCompressedLen(n))
	_, dataLen := encodeInto(values, buf[:controlLen], buf[controlLen:])
	return n, buf[:controlLen+dataLen]
}

// EncodeInto appends the wire-format encoding of values to dst and returns
// the resulting slice together with how many bytes were appended. dst's
// existing contents are left untouched; its capacity is grown as needed.
func EncodeInto(values []uint32, dst []byte) (out []byte, appended int) {
	n := len(values)
	controlLen := ControlBytesLen(n)
	start := len(dst)
	dst = append(dst, make([]byte, MaxCompressedLen(n))...)
	_, dataLen := encodeInto(values, dst[start:start+controlLen], dst[start+controlLen:])
	total := controlLen + dataLen
	return dst[:start+total], total
}

// Decode decodes count values from the wire-format bytes produced by
// Encode, returning a freshly allocated slice. It returns
// ErrDecodeOutOfBounds if bytes is too short to hold count values.
func Decode(count int, bytes []byte) ([]uint32, error) {
	out := make([]uint32, count)
	if _, err := decodeBuffer(count, bytes, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeInto decodes count values from the wire-format bytes produced by
// Encode into out, which must have length at least count, and returns the
// number of bytes consumed from bytes (control and data combined).
func DecodeInto(count int, bytes []byte, out []uint32) (consumed int, err error) {
	return decodeBuffer(count, bytes, out)
}

// decodeBuffer splits a combined wire-format buffer into its control and
// data regions and dispatches to decodeInto, reporting the total bytes
// (control plus data) consumed.
func decodeBuffer(count int, bytes []byte, out []uint32) (consumed int, err error) {
	controlLen := ControlBytesLen(count)
	if len(bytes) < controlLen {
		return 0, ErrDecodeOutOfBounds
	}
	dataLen, err := decodeInto(count, bytes[:controlLen], bytes[controlLen:], out)
	if err != nil {
		return 0, err
	}
	return controlLen + dataLen, nil
}
