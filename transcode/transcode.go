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

// Package transcode defines the platform primitive used for UTF-8 <-> UTF-16
// conversion, and its implementations.
//
// A Transcoder works the way MultiByteToWideChar / WideCharToMultiByte do:
// called with an empty dst it returns the number of units needed,
// called with a dst it writes the converted units and returns how many were written.
// It returns 0 and an Errno on failure.
package transcode

// Transcoder converts between UTF-8 and native-endian UTF-16.
//
// Callers guarantee len(src) and len(dst) are not larger than math.MaxInt32.
// Implementations must reject malformed input instead of substituting
// U+FFFD or a best-fit character, and must be safe for concurrent use.
type Transcoder interface {
	// UTF8ToUTF16 converts src to dst. If len(dst) == 0, it only returns the
	// number of uint16 units required.
	UTF8ToUTF16(src []byte, dst []uint16) (int32, error)

	// UTF16ToUTF8 converts src to dst. If len(dst) == 0, it only returns the
	// number of bytes required.
	UTF16ToUTF8(src []uint16, dst []byte) (int32, error)
}

// Names of the platform functions, used in error messages.
const (
	FuncUTF8ToUTF16 = "MultiByteToWideChar"
	FuncUTF16ToUTF8 = "WideCharToMultiByte"
)

// Default returns the transcoder for the current platform.
// It's kernel32 on windows, and Portable on others.
func Default() Transcoder {
	return defaultTranscoder
}
