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

//go:build arm64

package streamvbyte

import (
	"os"

	"golang.org/x/sys/cpu"
)

// init overrides the scalar default with the portable NEON-table path.
// Every arm64 CPU Go supports has ASIMD (it is part of the base
// architecture, unlike x86-64's SSSE3), but the check against
// cpu.ARM64.HasASIMD is kept for parity with the rest of this package's
// dispatch files and in case a future constrained arm64 target lacks it.
func init() {
	if os.Getenv("STREAMVBYTE_NO_SIMD") != "" {
		return
	}
	if !cpu.ARM64.HasASIMD {
		return
	}
	encodeInto = PortableVectorEncodeIntoNEON
	decodeInto = PortableVectorDecodeInto
}
