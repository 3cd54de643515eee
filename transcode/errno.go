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

package transcode

import "strconv"

// Errno is an error code reported by a Transcoder.
// Values match the windows system error codes.
type Errno uint32

const (
	ErrorInvalidParameter     Errno = 87   // ERROR_INVALID_PARAMETER
	ErrorInsufficientBuffer   Errno = 122  // ERROR_INSUFFICIENT_BUFFER
	ErrorArithmeticOverflow   Errno = 534  // ERROR_ARITHMETIC_OVERFLOW
	ErrorInvalidFlags         Errno = 1004 // ERROR_INVALID_FLAGS
	ErrorNoUnicodeTranslation Errno = 1113 // ERROR_NO_UNICODE_TRANSLATION
)

var errnoText = map[Errno]string{
	ErrorInvalidParameter:     "the parameter is incorrect",
	ErrorInsufficientBuffer:   "the data area passed to a system call is too small",
	ErrorArithmeticOverflow:   "arithmetic result exceeded 32 bits",
	ErrorInvalidFlags:         "invalid flags",
	ErrorNoUnicodeTranslation: "no mapping for the Unicode character exists in the target multi-byte code page",
}

// Error ...
func (e Errno) Error() string {
	if s, ok := errnoText[e]; ok {
		return s
	}
	return "errno " + strconv.FormatUint(uint64(e), 10)
}

// Known reports whether e has a description.
func (e Errno) Known() bool {
	_, ok := errnoText[e]
	return ok
}
