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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeEmpty(t *testing.T) {
	count, bytes := Encode(nil)
	require.Equal(t, 0, count)
	require.Empty(t, bytes)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := []uint32{0x11, 0x5544, 0x230021, 0xdeadbeef, 0x2142}
	count, bytes := Encode(values)
	require.Equal(t, len(values), count)

	decoded, err := Decode(count, bytes)
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestEncodeSizeExactness(t *testing.T) {
	values := []uint32{0, 23, 99, 301, 70211, 89902932}
	count, bytes := Encode(values)
	want := ControlBytesLen(count) + ExactCompressedLen(values)
	require.Equal(t, want, len(bytes))
}

func TestDecodeOutOfBoundsForExtraElement(t *testing.T) {
	values := []uint32{1, 2, 3, 4, 5, 6, 7}
	count, bytes := Encode(values)
	_, err := Decode(count+1, bytes)
	require.ErrorIs(t, err, ErrDecodeOutOfBounds)
}

func TestEncodeIntoAppends(t *testing.T) {
	dst := []byte{0xde, 0xad}
	values := []uint32{1, 300, 70000}
	out, appended := EncodeInto(values, dst)
	require.Equal(t, []byte{0xde, 0xad}, out[:2])
	require.Equal(t, len(out)-2, appended)

	decoded, err := Decode(len(values), out[2:])
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestDecodeIntoReportsConsumed(t *testing.T) {
	values := []uint32{1, 2, 3, 4, 5}
	count, bytes := Encode(values)
	out := make([]uint32, count)
	consumed, err := DecodeInto(count, bytes, out)
	require.NoError(t, err)
	require.Equal(t, len(bytes), consumed)
	require.Equal(t, values, out)
}

// TestImplementationEquivalence checks invariant 6: scalar, SSSE3-table and
// NEON-table encoders produce identical bytes, and the scalar and vector
// decoders produce identical values, for the same input.
func TestImplementationEquivalence(t *testing.T) {
	sets := [][]uint32{
		{},
		{1},
		{300},
		{0, 23, 99, 301, 70211, 89902932},
		makeSequentialValues(203),
	}

	for _, values := range sets {
		n := len(values)
		wantControl := make([]byte, ControlBytesLen(n))
		wantData := make([]byte, MaxCompressedLen(n))
		_, wantDataLen := ScalarEncodeInto(values, wantControl, wantData)
		wantData = wantData[:wantDataLen]

		gotControlNEON := make([]byte, ControlBytesLen(n))
		gotDataNEON := make([]byte, MaxCompressedLen(n))
		_, gotLenNEON := PortableVectorEncodeIntoNEON(values, gotControlNEON, gotDataNEON)
		require.Equal(t, wantControl, gotControlNEON, "NEON control mismatch for %v", values)
		require.Equal(t, wantData, gotDataNEON[:gotLenNEON], "NEON data mismatch for %v", values)

		gotControlSSSE3 := make([]byte, ControlBytesLen(n))
		gotDataSSSE3 := make([]byte, MaxCompressedLen(n))
		_, gotLenSSSE3 := PortableVectorEncodeIntoSSSE3(values, gotControlSSSE3, gotDataSSSE3)
		require.Equal(t, wantControl, gotControlSSSE3, "SSSE3 control mismatch for %v", values)
		require.Equal(t, wantData, gotDataSSSE3[:gotLenSSSE3], "SSSE3 data mismatch for %v", values)

		wantOut := make([]uint32, n)
		_, err := ScalarDecodeInto(n, wantControl, wantData, wantOut)
		require.NoError(t, err)

		gotOut := make([]uint32, n)
		_, err = PortableVectorDecodeInto(n, wantControl, wantData, gotOut)
		require.NoError(t, err)
		require.Equal(t, wantOut, gotOut, "vector decode mismatch for %v", values)
	}
}

func makeSequentialValues(n int) []uint32 {
	values := make([]uint32, n)
	for i := range values {
		values[i] = uint32(i*i + i)
	}
	return values
}
