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

// Package streamvbyte encodes and decodes sequences of uint32 values using
// the Stream VByte format: a control stream of packed 2-bit length codes
// followed by a data stream of the corresponding little-endian byte runs.
//
// The format is compatible byte-for-byte with the reference streamvbyte
// implementation by Lemire et al. Four bytes of input that need k+1 bytes
// on the wire (k in 0..=3) contribute one 2-bit code to a control byte and
// k+1 bytes to the data region; four such codes pack into one control byte.
//
// Encode and Decode dispatch to an implementation chosen when the package
// initialises, from the build target and the running CPU's features: an
// SSSE3 shuffle-table path on amd64 CPUs with SSSE3 (AVX2 or AVX-512 in
// builds with GOEXPERIMENT=simd), a NEON shuffle-table path on arm64, and a
// branch-free scalar path everywhere else or when the STREAMVBYTE_NO_SIMD
// environment variable is set. All three are functionally identical and produce
// byte-for-byte identical output; see dispatch.go.
package streamvbyte
