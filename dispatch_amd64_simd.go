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

//go:build amd64 && goexperiment.simd

package streamvbyte

import (
	"os"

	"simd/archsimd"
)

// init overrides the scalar default (dispatch.go). dispatch_amd64.go's build
// tag excludes it under GOEXPERIMENT=simd, so in such builds this is the
// only amd64 dispatch file, and no file-ordering convention is needed.
// It detects CPU features via archsimd's own intrinsics instead of
// golang.org/x/sys/cpu purely so builds made with the experiment enabled
// exercise that package's detection path too; the implementation wired in
// is the same portable table-gather encodeInto/decodeInto as the non-simd
// build, since real PSHUFB intrinsics require generated assembly this
// package does not carry (see DESIGN.md).
func init() {
	if os.Getenv("STREAMVBYTE_NO_SIMD") != "" {
		return
	}
	if !archsimd.X86.AVX2() && !archsimd.X86.AVX512() {
		return
	}
	encodeInto = PortableVectorEncodeIntoSSSE3
	decodeInto = PortableVectorDecodeInto
}
