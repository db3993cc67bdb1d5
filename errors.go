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

import "errors"

// ErrDecodeOutOfBounds is returned whenever decoding would require reading
// past the end of the supplied byte buffer: either the declared count
// implies more control bytes than the buffer holds, or a control byte's
// code would pull data bytes past the buffer's end. Encoding never fails.
var ErrDecodeOutOfBounds = errors.New("streamvbyte: decode out of bounds")
