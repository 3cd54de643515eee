/*
 * Copyright 2024 CloudWeGo Authors
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

// Package unsafex provides zero-copy views between strings, bytes and
// native-endian UTF-16 units.
package unsafex

import "unsafe"

// Uint16Size is the size of a UTF-16 code unit in bytes.
const Uint16Size = int(unsafe.Sizeof(uint16(0)))

// fails to compile if a code unit is not 2 bytes.
var _ = [1]struct{}{}[Uint16Size-2]

// BinaryToString converts []byte to string without copy
func BinaryToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBinary converts string to []byte without copy.
// The returned []byte MUST NOT be modified.
func StringToBinary(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Uint16sToBinary returns the bytes backing u in native byte order without copy.
// len(result) == len(u) * Uint16Size
func Uint16sToBinary(u []uint16) []byte {
	if len(u) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(u))), len(u)*Uint16Size)
}

// BinaryToUint16s returns b as native-endian uint16 units without copy.
// It returns false if len(b) is odd or b is not 2-byte aligned,
// use CopyBinaryToUint16s in that case.
func BinaryToUint16s(b []byte) ([]uint16, bool) {
	if len(b)%Uint16Size != 0 {
		return nil, false
	}
	if len(b) == 0 {
		return nil, true
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%unsafe.Alignof(uint16(0)) != 0 {
		return nil, false
	}
	return unsafe.Slice((*uint16)(p), len(b)/Uint16Size), true
}

// CopyBinaryToUint16s copies b into dst, which must be 2-byte aligned and
// at least len(b) bytes, and returns dst viewed as uint16 units.
// It panics if dst is too small or not aligned.
func CopyBinaryToUint16s(dst, b []byte) []uint16 {
	if len(dst) < len(b) {
		panic("unsafex: dst too small")
	}
	n := copy(dst, b)
	u, ok := BinaryToUint16s(dst[:n&^(Uint16Size-1)])
	if !ok {
		panic("unsafex: dst not aligned")
	}
	return u
}
