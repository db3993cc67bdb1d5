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

// vectorDecodeTailGroups is the number of trailing control-byte groups
// PortableVectorDecodeInto always hands to the scalar path rather than the
// vector one, even when the data they describe would fit a 16-byte vector
// load cleanly. It exists so a single, fixed bounds check ("is there a
// 16-byte window left") in the vector loop's hot path never needs to also
// worry about the last group's window running past the end of a
// tightly-sized buffer: the last 4 groups are small enough that the
// per-group scalar bounds check costs nothing.
const vectorDecodeTailGroups = 4

// PortableVectorDecodeInto decodes n values the same way ScalarDecodeInto
// does, but processes interior groups with the 16-byte table-gather
// vectorDecodeGroup uses, falling back to ScalarDecodeInto-equivalent
// per-group bounds checking for the trailing vectorDecodeTailGroups groups
// (and any partial final group). Output is byte-for-byte identical to
// ScalarDecodeInto's for every input; only the code path differs.
func PortableVectorDecodeInto(n int, control, data []byte, out []uint32) (dataLen int, err error) {
	controlLen := ControlBytesLen(n)
	if len(control) < controlLen {
		return 0, ErrDecodeOutOfBounds
	}
	fullGroups := n / 4
	vectorGroups := fullGroups - vectorDecodeTailGroups
	if vectorGroups < 0 {
		vectorGroups = 0
	}

	pos := 0
	i := 0
	for ; i/4 < vectorGroups; i += 4 {
		ctrl := control[i/4]
		need := int(decodeLengthTable[ctrl])
		if pos+16 > len(data) {
			return 0, ErrDecodeOutOfBounds
		}
		var window [16]byte
		copy(window[:], data[pos:pos+16])
		vectorDecodeGroup(ctrl, window, out[i:i+4])
		pos += need
	}
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

// PortableVectorEncodeIntoNEON encodes values the same way ScalarEncodeInto
// does, using the full-control-byte compaction table (encodeShuffleTableNEON)
// for every complete group of four values; output is byte-for-byte
// identical to ScalarEncodeInto's.
func PortableVectorEncodeIntoNEON(values []uint32, control, data []byte) (controlLen, dataLen int) {
	return vectorEncodeInto(values, control, data, vectorEncodeGroupNEON)
}

// PortableVectorEncodeIntoSSSE3 is the same as PortableVectorEncodeIntoNEON
// but uses the 64-entry table that assumes lane 3 needs the maximum of 4
// bytes; it is included for parity with the reference implementation's x86
// encoder, which only ever builds this narrower table.
func PortableVectorEncodeIntoSSSE3(values []uint32, control, data []byte) (controlLen, dataLen int) {
	return vectorEncodeInto(values, control, data, vectorEncodeGroupSSSE3)
}

type groupEncoder func(ctrl byte, lanes [16]byte) (packed [16]byte, n int)

func vectorEncodeInto(values []uint32, control, data []byte, encodeGroup groupEncoder) (controlLen, dataLen int) {
	n := len(values)
	controlLen = ControlBytesLen(n)
	pos := 0
	i := 0
	for ; i+4 <= n; i += 4 {
		var quad [4]uint32
		copy(quad[:], values[i:i+4])
		ctrl := scalarControlByte(quad)
		lanes := loadLanes(quad)
		packed, written := encodeGroup(ctrl, lanes)
		copy(data[pos:pos+written], packed[:written])
		control[i/4] = ctrl
		pos += written
	}
	if rem := n - i; rem > 0 {
		var quad [4]uint32
		copy(quad[:], values[i:])
		ctrl := maskControlByte(scalarControlByte(quad), rem)
		lanes := loadLanes(quad)
		packed, _ := encodeGroup(ctrl, lanes)
		written := maskedWritten(quad[:], rem, 0)
		copy(data[pos:pos+written], packed[:written])
		control[i/4] = ctrl
		pos += written
	}
	return controlLen, pos
}

// scalarControlByte computes the control byte for four values without
// writing any data bytes, for callers (like vectorEncodeInto) that obtain
// the packed data bytes via a shuffle instead.
func scalarControlByte(values [4]uint32) byte {
	var ctrl byte
	for lane, v := range values {
		ctrl |= byte(valueCode(v)) << uint(2*lane)
	}
	return ctrl
}
