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

import (
	"encoding/binary"

	"github.com/ajroetker/go-highway/hwy"
)

// vectorGather performs a 16-byte PSHUFB/TBL-style byte-gather: out[i] =
// src[mask[i]], or 0 when mask[i] names a lane outside the vector. It is
// the one primitive the vector encode and decode paths share, built on
// hwy.Load/hwy.TableLookupBytes/hwy.Store exactly the way the teacher's
// own Stream VByte group decoder does (hwy/contrib/varint/streamvbyte_base.go,
// BaseDecodeStreamVByte32GroupSIMD): hwy.TableLookupBytes treats any index
// at or beyond the vector's lane count as the instruction's zero-fill
// sentinel, which is why decodeShuffleTable and the encode compaction
// tables use 0xff (shuffleZero) for "no source byte" entries.
func vectorGather(src []byte, mask [16]byte) [16]byte {
	dataVec := hwy.Load[uint8](src)
	maskVec := hwy.Load[uint8](mask[:])
	shuffled := hwy.TableLookupBytes(dataVec, maskVec)

	var out [16]byte
	hwy.Store(shuffled, out[:])
	return out
}

// vectorDecodeGroup decodes exactly four values from a 16-byte window over
// data (the caller copies it out of data after checking that 16 bytes
// remain) using the full-control-byte decode
// shuffle table, gathering the real scattered bytes rather than
// over-reading garbage: the shuffle only ever reads within the first
// decodeLengthTable[ctrl] bytes of the window, the rest of the window is
// never touched by result bytes thanks to the zero-fill entries.
func vectorDecodeGroup(ctrl byte, window [16]byte, out []uint32) {
	gathered := vectorGather(window[:], decodeShuffleTable[ctrl])
	out[0] = binary.LittleEndian.Uint32(gathered[0:4])
	out[1] = binary.LittleEndian.Uint32(gathered[4:8])
	out[2] = binary.LittleEndian.Uint32(gathered[8:12])
	out[3] = binary.LittleEndian.Uint32(gathered[12:16])
}

// vectorEncodeGroupNEON packs four little-endian uint32 lanes (as a single
// 16-byte register) down to their minimal byte runs using the exact,
// full-control-byte indexed NEON compaction table, and returns the packed
// bytes together with how many of them are meaningful.
func vectorEncodeGroupNEON(ctrl byte, lanes [16]byte) (packed [16]byte, n int) {
	packed = vectorGather(lanes[:], encodeShuffleTableNEON[ctrl])
	n = int(decodeLengthTable[ctrl])
	return packed, n
}

// vectorEncodeGroupSSSE3 is the same compaction, but using the 64-entry
// table indexed only by lanes 0..2 (see encodeShuffleTableSSSE3): it always
// gathers as though lane 3 needs 4 bytes, so the caller must trim the
// result to decodeLengthTable[ctrl] bytes rather than trusting a fixed
// length the way vectorEncodeGroupNEON's table already encodes.
func vectorEncodeGroupSSSE3(ctrl byte, lanes [16]byte) (packed [16]byte, n int) {
	packed = vectorGather(lanes[:], encodeShuffleTableSSSE3[ctrl&0x3f])
	n = int(decodeLengthTable[ctrl])
	return packed, n
}

// loadLanes assembles the 16-byte register vectorEncodeGroup{NEON,SSSE3}
// expect from four uint32 values.
func loadLanes(values [4]uint32) [16]byte {
	var lanes [16]byte
	binary.LittleEndian.PutUint32(lanes[0:4], values[0])
	binary.LittleEndian.PutUint32(lanes[4:8], values[1])
	binary.LittleEndian.PutUint32(lanes[8:12], values[2])
	binary.LittleEndian.PutUint32(lanes[12:16], values[3])
	return lanes
}
