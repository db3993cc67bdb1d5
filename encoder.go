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

// Encoder accumulates uint32 values one at a time (or in batches) and
// encodes them to the wire format on Finish, for callers that produce
// values incrementally rather than holding a complete []uint32 up front.
type Encoder struct {
	values []uint32
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Add buffers one value.
func (e *Encoder) Add(v uint32) {
	e.values = append(e.values, v)
}

// AddBatch buffers multiple values.
func (e *Encoder) AddBatch(values []uint32) {
	e.values = append(e.values, values...)
}

// Finish encodes every buffered value and returns the element count and
// wire-format bytes, exactly as Encode(values) would for the values
// accumulated via Add/AddBatch so far.
func (e *Encoder) Finish() (count int, bytes []byte) {
	return Encode(e.values)
}

// Reset clears the encoder for reuse.
func (e *Encoder) Reset() {
	e.values = e.values[:0]
}
