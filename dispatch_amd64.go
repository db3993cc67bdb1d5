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

//go:build amd64 && !goexperiment.simd

package streamvbyte

import (
	"os"

	"golang.org/x/sys/cpu"
)

// init overrides the scalar default (dispatch.go) with the portable
// table-gather path whenever the running CPU has SSSE3, which has been
// true of every amd64 CPU sold since 2006. This package issues no real
// PSHUFB instructions, so "SSSE3 support" here only gates the switch to the
// table-gather path (with the 64-entry encode table the reference x86-64
// encoder builds), not whether the gather itself runs in hardware;
// dispatch_amd64_simd.go wires in the same portable path.
func init() {
	if os.Getenv("STREAMVBYTE_NO_SIMD") != "" {
		return
	}
	if !cpu.X86.HasSSSE3 {
		return
	}
	encodeInto = PortableVectorEncodeIntoSSSE3
	decodeInto = PortableVectorDecodeInto
}
