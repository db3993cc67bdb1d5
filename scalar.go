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

import "encoding/binary"

// ScalarEncodeInto writes the control and data bytes for values into the
// given buffers, which must be at least ControlBytesLen(len(values)) and
// MaxCompressedLen(len(values)) bytes respectively, and returns the number
// of control bytes and data bytes written. It never fails: there is no
// encode input that can run past the bounds MaxCompressedLen promises.
func ScalarEncodeInto(values []uint32, control, data []byte) (controlLen, dataLen int) {
	n := len(values)
	controlLen = ControlBytesLen(n)
	pos := 0
	i := 0
	for ; i+4 <= n; i += 4 {
		ctrl, written := scalarEncodeGroup(values[i:i+4], data[pos:])
		control[i/4] = ctrl
		pos += written
	}
	if rem := n - i; rem > 0 {
		var tail [4]uint32
		copy(tail[:], values[i:])
		ctrl, written := scalarEncodeGroup(tail[:], data[pos:])
		control[i/4] = maskControlByte(ctrl, rem)
		pos += maskedWritten(tail[:], rem, written)
	}
	return controlLen, pos
}

// scalarEncodeGroup encodes exactly four values (the caller pads a short
// final group with zeros and trims the result with maskedWritten) using the
// branch-free t1+t2+t3 code computation: every value's four bytes are
// written unconditionally and the output cursor advances by code+1, so a
// short value's unwritten high bytes are simply overwritten by the next
// value.
func scalarEncodeGroup(values []uint32, data []byte) (ctrl byte, written int) {
	pos := 0
	for lane := 0; lane < 4; lane++ {
		v := values[lane]
		code := valueCode(v)
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], v)
		copy(data[pos:pos+4], buf[:])
		pos += code + 1
		ctrl |= byte(code) << uint(2*lane)
	}
	return ctrl, pos
}

// maskControlByte clears the codes of lanes beyond rem (rem in 1..3) so a
// partial final group reports zero-length codes for the padding lanes.
func maskControlByte(ctrl byte, rem int) byte {
	var mask byte
	for lane := 0; lane < rem; lane++ {
		mask |= 0x3 << uint(2*lane)
	}
	return ctrl & mask
}

// maskedWritten recomputes how many data bytes a partial final group
// actually needed, ignoring the padding lanes' contribution.
func maskedWritten(values []uint32, rem, fullWritten int) int {
	if rem == 4 {
		return fullWritten
	}
	total := 0
	for lane := 0; lane < rem; lane++ {
		total += valueCode(values[lane]) + 1
	}
	return total
}

// ScalarDecodeInto decodes n values from control and data into out, which
// must have length at least n, and returns the number of data bytes
// consumed. It returns ErrDecodeOutOfBounds rather than reading past the
// end of control or data: control must hold at least ControlBytesLen(n)
// bytes and every code's declared length must fit within the remaining
// data bytes.
func ScalarDecodeInto(n int, control, data []byte, out []uint32) (dataLen int, err error) {
	controlLen := ControlBytesLen(n)
	if len(control) < controlLen {
		return 0, ErrDecodeOutOfBounds
	}
	pos := 0
	i := 0
	for ; i+4 <= n; i += 4 {
		ctrl := control[i/4]
		need := int(decodeLengthTable[ctrl])
		if pos+need > len(data) {
			return 0, ErrDecodeOutOfBounds
		}
		decodeGroup(ctrl, data[pos:pos+need], out[i:i+4])
		pos += need
	}
	if rem := n - i; rem > 0 {
		ctrl := control[i/4]
		lens := codeLens(ctrl)
		var tail [4]uint32
		for lane := 0; lane < rem; lane++ {
			l := lens[lane]
			if pos+l > len(data) {
				return 0, ErrDecodeOutOfBounds
			}
			tail[lane] = decodeLane(data[pos : pos+l])
			pos += l
		}
		copy(out[i:n], tail[:rem])
	}
	return pos, nil
}

// decodeGroup decodes exactly four values governed by ctrl from a data
// slice already known to hold decodeLengthTable[ctrl] bytes.
func decodeGroup(ctrl byte, data []byte, out []uint32) {
	lens := codeLens(ctrl)
	pos := 0
	for lane := 0; lane < 4; lane++ {
		l := lens[lane]
		out[lane] = decodeLane(data[pos : pos+l])
		pos += l
	}
}

// decodeLane reads a little-endian value from a 1..4 byte run, zero
// extending any bytes the code omitted.
func decodeLane(b []byte) uint32 {
	var v uint32
	for i, c := range b {
		v |= uint32(c) << uint(8*i)
	}
	return v
}
