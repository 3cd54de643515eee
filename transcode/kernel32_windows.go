//go:build windows

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
	"errors"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	cpUTF8            = 65001      // CP_UTF8
	mbErrInvalidChars = 0x00000008 // MB_ERR_INVALID_CHARS
	wcErrInvalidChars = 0x00000080 // WC_ERR_INVALID_CHARS
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procMultiByteToWideChar = modkernel32.NewProc(FuncUTF8ToUTF16)
	procWideCharToMultiByte = modkernel32.NewProc(FuncUTF16ToUTF8)
)

var defaultTranscoder = Kernel32

// Kernel32 is a Transcoder calling MultiByteToWideChar and WideCharToMultiByte
// with CP_UTF8 and the strict *_ERR_INVALID_CHARS flags.
var Kernel32 Transcoder = kernel32{}

type kernel32 struct{}

func (kernel32) UTF8ToUTF16(src []byte, dst []uint16) (int32, error) {
	if err := checkBounds(len(src), len(dst)); err != nil {
		return 0, err
	}
	var out *uint16
	if len(dst) > 0 {
		out = &dst[0]
	}
	r1, _, e := procMultiByteToWideChar.Call(
		uintptr(cpUTF8),
		uintptr(mbErrInvalidChars),
		uintptr(unsafe.Pointer(unsafe.SliceData(src))),
		uintptr(len(src)),
		uintptr(unsafe.Pointer(out)),
		uintptr(len(dst)),
	)
	if n := int32(r1); n != 0 {
		return n, nil
	}
	return 0, lastErrno(e)
}

func (kernel32) UTF16ToUTF8(src []uint16, dst []byte) (int32, error) {
	if err := checkBounds(len(src), len(dst)); err != nil {
		return 0, err
	}
	var out *byte
	if len(dst) > 0 {
		out = &dst[0]
	}
	// lpDefaultChar and lpUsedDefaultChar must be NULL for CP_UTF8
	r1, _, e := procWideCharToMultiByte.Call(
		uintptr(cpUTF8),
		uintptr(wcErrInvalidChars),
		uintptr(unsafe.Pointer(unsafe.SliceData(src))),
		uintptr(len(src)),
		uintptr(unsafe.Pointer(out)),
		uintptr(len(dst)),
		0,
		0,
	)
	if n := int32(r1); n != 0 {
		return n, nil
	}
	return 0, lastErrno(e)
}

// checkBounds only checks what can't be passed as an int;
// an empty src is left to the system to reject.
func checkBounds(nsrc, ndst int) error {
	if nsrc != 0 {
		return checkArgs(nsrc, ndst)
	}
	return checkArgs(1, ndst)
}

func lastErrno(err error) Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return Errno(errno)
	}
	return ErrorInvalidParameter
}
