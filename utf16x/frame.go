/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package utf16x

import (
	"fmt"

	"github.com/cloudwego/widechar/internal/safecast"
	"github.com/cloudwego/widechar/unsafex"
)

// unitSize is the size of a UTF-16 code unit, which is also the size of
// wchar_t on windows.
const unitSize = uint64(unsafex.Uint16Size)

// fails to compile if a code unit is not 2 bytes.
var _ = [1]struct{}{}[unitSize-2]

// frameUTF8 returns the int32 byte count of UTF-8 input of nb bytes.
func frameUTF8(nb uint64) (int32, error) {
	n, err := safecast.ToInt32(nb)
	if err != nil {
		return 0, fmt.Errorf("%w: input buffer is too large at %d bytes", ErrSizeOverflow, nb)
	}
	return n, nil
}

// frameUTF16 returns the int32 unit count of UTF-16 input of nb bytes.
func frameUTF16(nb uint64) (int32, error) {
	if nb%unitSize != 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBufferSize, nb)
	}
	nch := nb / unitSize
	n, err := safecast.ToInt32(nch)
	if err != nil {
		return 0, fmt.Errorf("%w: input buffer is too large at %d characters", ErrSizeOverflow, nch)
	}
	return n, nil
}
