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

// Package utf16x converts text between UTF-8 and native-endian UTF-16.
//
// Every conversion is strict and all-or-nothing: malformed input is an error,
// it's never replaced with U+FFFD, and no partial result is returned.
// Conversions are done by a transcode.Transcoder in two passes,
// the first one measures the output, the second one fills a buffer of that size.
package utf16x

import (
	"fmt"
	"unsafe"

	"github.com/bytedance/gopkg/lang/dirtmake"
	"github.com/bytedance/gopkg/lang/mcache"
	"go.uber.org/zap"

	"github.com/cloudwego/widechar/internal/safecast"
	"github.com/cloudwego/widechar/transcode"
	"github.com/cloudwego/widechar/unsafex"
)

// Option ...
type Option struct {
	// Transcoder does the conversions.
	// transcode.Default() is used if it's nil.
	Transcoder transcode.Transcoder

	// Logger receives debug logs of failed conversions.
	// The package logger is used if it's nil, see SetLogger.
	Logger *zap.Logger
}

// DefaultOption returns the default values of Option.
func DefaultOption() *Option {
	return &Option{
		Transcoder: transcode.Default(),
	}
}

// Converter converts between UTF-8 and UTF-16 using a Transcoder.
// It's safe for concurrent use.
type Converter struct {
	t      transcode.Transcoder
	logger *zap.Logger
}

// NewConverter creates a Converter, nil o means DefaultOption().
func NewConverter(o *Option) *Converter {
	if o == nil {
		o = DefaultOption()
	}
	c := &Converter{t: o.Transcoder, logger: o.Logger}
	if c.t == nil {
		c.t = transcode.Default()
	}
	return c
}

var std = NewConverter(nil)

// Widen converts UTF-8 string s to UTF-16.
func Widen(s string) ([]uint16, error) { return std.Widen(s) }

// WidenBytes converts UTF-8 bytes b to UTF-16.
func WidenBytes(b []byte) ([]uint16, error) { return std.WidenBytes(b) }

// Narrow converts UTF-16 units u to a UTF-8 string.
func Narrow(u []uint16) (string, error) { return std.Narrow(u) }

// NarrowBytes converts b, holding native-endian UTF-16 units, to a UTF-8 string.
func NarrowBytes(b []byte) (string, error) { return std.NarrowBytes(b) }

// Widen converts UTF-8 string s to UTF-16.
func (c *Converter) Widen(s string) ([]uint16, error) {
	// read-only view, the transcoder never writes src
	return c.WidenBytes(unsafex.StringToBinary(s))
}

// WidenBytes converts UTF-8 bytes b to UTF-16.
// The result never shares memory with b.
func (c *Converter) WidenBytes(b []byte) ([]uint16, error) {
	n, err := frameUTF8(uint64(len(b)))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []uint16{}, nil
	}
	return convert(c, opWiden, transcode.FuncUTF8ToUTF16, b, c.t.UTF8ToUTF16)
}

// Narrow converts UTF-16 units u to a UTF-8 string.
func (c *Converter) Narrow(u []uint16) (string, error) {
	return c.NarrowBytes(unsafex.Uint16sToBinary(u))
}

// NarrowBytes converts b, holding native-endian UTF-16 units, to a UTF-8 string.
// len(b) must be a multiple of 2.
func (c *Converter) NarrowBytes(b []byte) (string, error) {
	n, err := frameUTF16(uint64(len(b)))
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	units, ok := unsafex.BinaryToUint16s(b)
	if !ok {
		scratch := mcache.Malloc(len(b))
		defer mcache.Free(scratch)
		units = unsafex.CopyBinaryToUint16s(scratch, b)
	}
	out, err := convert(c, opNarrow, transcode.FuncUTF16ToUTF8, units, c.t.UTF16ToUTF8)
	if err != nil {
		return "", err
	}
	// out is owned by this call and never modified again
	return unsafex.BinaryToString(out), nil
}

type unit interface {
	~byte | ~uint16
}

// convert measures, allocates, fills and verifies. src must not be empty.
func convert[S, D unit](c *Converter, op, fn string, src []S,
	call func(src []S, dst []D) (int32, error),
) ([]D, error) {
	need, err := call(src, nil)
	if need == 0 {
		return nil, c.failed(op, fn, "measure", len(src), err)
	}
	out, err := alloc[D](need)
	if err != nil {
		return nil, err
	}
	got, err := call(src, out)
	if got == 0 {
		return nil, c.failed(op, fn, "fill", len(src), err)
	}
	if !safecast.Equal(len(out), got) {
		c.log().Debug("output length mismatch",
			zap.String("op", op), zap.String("func", fn),
			zap.Int("expected", len(out)), zap.Int32("actual", got))
		return nil, fmt.Errorf("%w: expected output length %d, got %d", ErrOutputLengthMismatch, len(out), got)
	}
	return out, nil
}

// alloc returns a buffer of n units, its content is undefined.
func alloc[D unit](n int32) ([]D, error) {
	sz, err := safecast.ToInt(n)
	if err == nil {
		var zero D
		sz, err = safecast.Mul(sz, int(unsafe.Sizeof(zero)))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: invalid buffer size %d", ErrSizeOverflow, n)
	}
	// dirtmake: every unit is written by the transcoder or the buffer is dropped
	b := dirtmake.Bytes(sz, sz)
	return unsafe.Slice((*D)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

func (c *Converter) failed(op, fn, mode string, n int, err error) error {
	code := errnoOf(err)
	c.log().Debug("transcode failed",
		zap.String("op", op), zap.String("func", fn), zap.String("mode", mode),
		zap.Int("units", n), zap.Uint32("code", uint32(code)), zap.Error(err))
	return &TranscodeError{Op: op, Func: fn, Code: code}
}

func (c *Converter) log() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}
