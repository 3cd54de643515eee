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
	"errors"
	"strconv"

	"github.com/cloudwego/widechar/transcode"
)

var (
	// ErrSizeOverflow is returned when a count can not be represented by
	// the primitive's int32 or by an int.
	ErrSizeOverflow = errors.New("utf16x: size overflow")

	// ErrInvalidBufferSize is returned when the byte length of UTF-16 input is odd.
	ErrInvalidBufferSize = errors.New("utf16x: invalid buffer size")

	// ErrTranscodeFailed is matched by every *TranscodeError.
	ErrTranscodeFailed = errors.New("utf16x: transcode failed")

	// ErrOutputLengthMismatch is returned when the primitive writes a different
	// number of units than it asked for.
	ErrOutputLengthMismatch = errors.New("utf16x: output length mismatch")
)

const (
	opWiden  = "widen"
	opNarrow = "narrow"
)

// TranscodeError is returned when the underlying Transcoder fails.
type TranscodeError struct {
	Op   string          // "widen" or "narrow"
	Func string          // platform function, like MultiByteToWideChar
	Code transcode.Errno // error code reported by the transcoder
}

// Error ...
func (e *TranscodeError) Error() string {
	s := "utf16x: " + e.Op + " failed: " + e.Func +
		" failed with error code " + strconv.FormatUint(uint64(e.Code), 10)
	if e.Code.Known() {
		s += " (" + e.Code.Error() + ")"
	}
	return s
}

// Is ... for errors pkg
func (e *TranscodeError) Is(target error) bool {
	return target == ErrTranscodeFailed
}

// Unwrap ... for errors pkg
func (e *TranscodeError) Unwrap() error { return e.Code }

// errnoOf returns the code carried by err, or 0 if there's none.
func errnoOf(err error) transcode.Errno {
	var errno transcode.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}
