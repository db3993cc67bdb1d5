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

//go:generate true

// shuffleZero is the shuffle-instruction sentinel byte: any source index at
// or above it produces a zero output byte from PSHUFB/TBL-style gathers.
const shuffleZero = 0xff

// decodeLengthTable[ctrl] is the number of data bytes a control byte's four
// codes consume: 4 + c0 + c1 + c2 + c3, range 4..=16.
var decodeLengthTable [256]uint8

// decodeShuffleTable[ctrl] is the 16-byte gather mask that expands the
// packed data bytes for one group of four values into four little-endian
// uint32 lanes: lane i occupies output bytes [4i:4i+4), its low code(i)+1
// bytes gathered from the data region and the rest zero-filled.
var decodeShuffleTable [256][16]byte

// encodeShuffleTableNEON[ctrl] is the 16-byte gather mask that compacts
// four little-endian uint32 lanes (16 bytes of input) down to their
// minimal byte runs, for the given control byte. Indexed by the full
// 8-bit control byte, so it is exact for all four lanes.
var encodeShuffleTableNEON [256][16]byte

// encodeShuffleTableSSSE3[k] is the same compaction mask, but indexed only
// by the low 6 bits of the control byte (the codes of lanes 0..2). Lane 3
// is always assumed to need all 4 bytes; the true length (from the real,
// 8-bit control byte) may be shorter, in which case the extra bytes this
// mask places are dropped: vectorEncodeGroupSSSE3 reports
// decodeLengthTable[ctrl] as the length and vectorEncodeInto copies only
// that many bytes. This mirrors the
// reference streamvbyte x86-64 encoder, which only ever reads 6 bits of
// the movemask result to index its table.
var encodeShuffleTableSSSE3 [64][16]byte

func init() {
	for ctrl := 0; ctrl < 256; ctrl++ {
		lens := codeLens(byte(ctrl))
		decodeLengthTable[ctrl] = uint8(lens[0] + lens[1] + lens[2] + lens[3])
		decodeShuffleTable[ctrl] = decodeMask(lens)
		encodeShuffleTableNEON[ctrl] = encodeMask(lens, lens[3])
	}
	for k := 0; k < 64; k++ {
		// k packs c0,c1,c2 in its low 6 bits; c3 is unknown, so lane 3 is
		// always assumed to need the maximum of 4 bytes (see doc comment
		// on encodeShuffleTableSSSE3).
		lens := codeLens(byte(k))
		encodeShuffleTableSSSE3[k] = encodeMask(lens, 4)
	}
}

// codeLens decodes a control byte into the four 1-based lengths (1..=4) of
// the values it governs.
func codeLens(ctrl byte) [4]int {
	return [4]int{
		int((ctrl>>0)&0x3) + 1,
		int((ctrl>>2)&0x3) + 1,
		int((ctrl>>4)&0x3) + 1,
		int((ctrl>>6)&0x3) + 1,
	}
}

// decodeMask builds the decode shuffle mask for the given per-lane lengths:
// lane i's low lens[i] bytes come from the packed data region (in order),
// the rest of the lane is zero-filled.
func decodeMask(lens [4]int) [16]byte {
	var mask [16]byte
	srcOff := 0
	for lane := 0; lane < 4; lane++ {
		for b := 0; b < 4; b++ {
			if b < lens[lane] {
				mask[4*lane+b] = byte(srcOff)
				srcOff++
			} else {
				mask[4*lane+b] = shuffleZero
			}
		}
	}
	return mask
}

// encodeMask builds the encode (compaction) shuffle mask: it gathers the
// low lens[i] bytes of source lane i (source lane i occupies bytes
// [4i:4i+4) of a 16-byte input register) into consecutive output
// positions. lane3Len overrides lens[3], the number of bytes lane 3
// contributes (the SSSE3 table always passes 4 here since its index
// carries no information about lane 3; the NEON table passes the real
// length since it is indexed by the full control byte).
func encodeMask(lens [4]int, lane3Len int) [16]byte {
	var mask [16]byte
	for i := range mask {
		mask[i] = shuffleZero
	}
	effLens := lens
	effLens[3] = lane3Len
	out := 0
	for lane := 0; lane < 4; lane++ {
		for b := 0; b < effLens[lane]; b++ {
			if out >= 16 {
				break
			}
			mask[out] = byte(4*lane + b)
			out++
		}
	}
	return mask
}
