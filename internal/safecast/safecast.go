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

// Package safecast converts counts between Go's int-sized lengths and the
// int32 counts used by transcoding primitives.
// A value that doesn't fit the target type is an error, it's never truncated.
package safecast

import (
	"errors"
	"math"
)

// ErrOverflow is returned when a value can not be represented in the target type.
var ErrOverflow = errors.New("size overflow")

const maxInt = int(^uint(0) >> 1)

// ToInt32 converts an unsigned length to int32.
func ToInt32(n uint64) (int32, error) {
	if n > math.MaxInt32 {
		return 0, ErrOverflow
	}
	return int32(n), nil
}

// ToInt converts a count returned by a primitive to int.
// Negative counts are rejected, the caller must check the primitive's
// failure value before calling it.
func ToInt(n int32) (int, error) {
	if n < 0 {
		return 0, ErrOverflow
	}
	return int(n), nil
}

// Mul returns n*size, or ErrOverflow if the product doesn't fit int.
func Mul(n, size int) (int, error) {
	if n < 0 || size < 0 {
		return 0, ErrOverflow
	}
	if size != 0 && n > maxInt/size {
		return 0, ErrOverflow
	}
	return n * size, nil
}

// Equal reports whether an int length and an int32 count are the same value.
func Equal(n int, m int32) bool {
	return int64(n) == int64(m)
}
