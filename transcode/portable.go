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

import (
	"math"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	surr1    = 0xd800
	surr2    = 0xdc00
	surr3    = 0xe000
	surrSelf = 0x10000
)

// Portable is a Transcoder written in Go.
// It follows the strict behaviour of the windows functions
// with MB_ERR_INVALID_CHARS and WC_ERR_INVALID_CHARS:
//   - an empty src is ErrorInvalidParameter
//   - malformed UTF-8, or an unpaired surrogate in UTF-16, is ErrorNoUnicodeTranslation
//   - a dst shorter than the result is ErrorInsufficientBuffer
var Portable Transcoder = portable{}

type portable struct{}

func (portable) UTF8ToUTF16(src []byte, dst []uint16) (int32, error) {
	if err := checkArgs(len(src), len(dst)); err != nil {
		return 0, err
	}
	measure := len(dst) == 0
	n := 0
	for i := 0; i < len(src); {
		r, size := rune(src[i]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && size == 1 {
				return 0, ErrorNoUnicodeTranslation
			}
		}
		i += size

		w := 1
		if r >= surrSelf {
			w = 2
		}
		if !measure {
			if n+w > len(dst) {
				return 0, ErrorInsufficientBuffer
			}
			if w == 1 {
				dst[n] = uint16(r)
			} else {
				r1, r2 := utf16.EncodeRune(r)
				dst[n], dst[n+1] = uint16(r1), uint16(r2)
			}
		}
		// no overflow: n <= len(src) <= math.MaxInt32
		n += w
	}
	return int32(n), nil
}

func (portable) UTF16ToUTF8(src []uint16, dst []byte) (int32, error) {
	if err := checkArgs(len(src), len(dst)); err != nil {
		return 0, err
	}
	measure := len(dst) == 0
	var n int64 // up to 3 bytes per unit, may not fit int32
	for i := 0; i < len(src); i++ {
		r := rune(src[i])
		switch {
		case r < surr1, r >= surr3:
		case r < surr2 && i+1 < len(src) && surr2 <= src[i+1] && src[i+1] < surr3:
			r = utf16.DecodeRune(r, rune(src[i+1]))
			i++
		default:
			return 0, ErrorNoUnicodeTranslation
		}

		w := int64(utf8.RuneLen(r))
		if !measure {
			if n+w > int64(len(dst)) {
				return 0, ErrorInsufficientBuffer
			}
			utf8.EncodeRune(dst[n:], r)
		}
		n += w
		if n > math.MaxInt32 {
			return 0, ErrorArithmeticOverflow
		}
	}
	return int32(n), nil
}

func checkArgs(nsrc, ndst int) error {
	if nsrc == 0 || int64(nsrc) > math.MaxInt32 || int64(ndst) > math.MaxInt32 {
		return ErrorInvalidParameter
	}
	return nil
}
