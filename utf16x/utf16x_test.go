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
	"encoding/binary"
	"math/rand"
	"strconv"
	"testing"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudwego/widechar/transcode"
	"github.com/cloudwego/widechar/unsafex"
)

var (
	hello8   = []byte{0x48, 0x65, 0x6c, 0x6c, 0x6f}
	hello16  = []uint16{0x0048, 0x0065, 0x006c, 0x006c, 0x006f}
	privet8  = []byte{0xd0, 0x9f, 0xd1, 0x80, 0xd0, 0xb8, 0xd0, 0xb2, 0xd0, 0xb5, 0xd1, 0x82}
	privet16 = []uint16{0x041f, 0x0440, 0x0438, 0x0432, 0x0435, 0x0442}
)

// le returns u as little-endian bytes
func le(u []uint16) []byte {
	b := make([]byte, len(u)*2)
	for i, v := range u {
		binary.LittleEndian.PutUint16(b[i*2:], v)
	}
	return b
}

// native returns u as native-endian bytes
func native(u []uint16) []byte {
	b := make([]byte, len(u)*2)
	for i, v := range u {
		binary.NativeEndian.PutUint16(b[i*2:], v)
	}
	return b
}

func TestWiden(t *testing.T) {
	u, err := WidenBytes(hello8)
	require.NoError(t, err)
	assert.Equal(t, hello16, u)
	assert.Equal(t, []byte{0x48, 0x00, 0x65, 0x00, 0x6c, 0x00, 0x6c, 0x00, 0x6f, 0x00}, le(u))

	u, err = WidenBytes(privet8)
	require.NoError(t, err)
	assert.Equal(t, privet16, u)
	assert.Equal(t, []byte{0x1f, 0x04, 0x40, 0x04, 0x38, 0x04, 0x32, 0x04, 0x35, 0x04, 0x42, 0x04}, le(u))

	u, err = Widen("Hello")
	require.NoError(t, err)
	assert.Equal(t, hello16, u)
}

func TestNarrow(t *testing.T) {
	s, err := Narrow(hello16)
	require.NoError(t, err)
	assert.Equal(t, hello8, []byte(s))

	s, err = Narrow(privet16)
	require.NoError(t, err)
	assert.Equal(t, privet8, []byte(s))

	s, err = NarrowBytes(native(privet16))
	require.NoError(t, err)
	assert.Equal(t, "Привет", s)
}

func TestLiterals(t *testing.T) {
	hello16 := utf16.Encode([]rune("Привет"))
	hello8 := "Привет"

	u, err := Widen(hello8)
	require.NoError(t, err)
	assert.Equal(t, hello16, u)

	s, err := Narrow(hello16)
	require.NoError(t, err)
	assert.Equal(t, hello8, s)
}

func TestEmpty(t *testing.T) {
	u, err := Widen("")
	require.NoError(t, err)
	assert.NotNil(t, u)
	assert.Len(t, u, 0)

	u, err = WidenBytes(nil)
	require.NoError(t, err)
	assert.NotNil(t, u)
	assert.Len(t, u, 0)

	s, err := Narrow(nil)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	s, err = NarrowBytes([]byte{})
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestEmbeddedNUL(t *testing.T) {
	u, err := Widen("abc\x00123")
	require.NoError(t, err)
	assert.Equal(t, []uint16{'a', 'b', 'c', 0, '1', '2', '3'}, u)

	s, err := Narrow([]uint16{0, 'a', 'b', 'c', 0, '1', '2', '3'})
	require.NoError(t, err)
	assert.Equal(t, "\x00abc\x00123", s)
	assert.Len(t, s, 8)
}

func TestNarrowBytesOddLength(t *testing.T) {
	for _, n := range []int{1, 3, 11} {
		s, err := NarrowBytes(make([]byte, n))
		assert.ErrorIs(t, err, ErrInvalidBufferSize)
		assert.EqualError(t, err, "utf16x: invalid buffer size: "+strconv.Itoa(n))
		assert.Equal(t, "", s)
	}
}

func TestNarrowBytesUnaligned(t *testing.T) {
	b := make([]byte, len(privet16)*2+1)
	copy(b[1:], native(privet16))
	if _, ok := unsafex.BinaryToUint16s(b[1:]); ok {
		t.Skip("sub-slice happens to be aligned")
	}
	s, err := NarrowBytes(b[1:])
	require.NoError(t, err)
	assert.Equal(t, "Привет", s)
}

func TestWidenMalformed(t *testing.T) {
	for _, src := range [][]byte{
		{0xff, 0xfe},
		{0x48, 0x65, 0xc0},
		{0xed, 0xa0, 0x80},
	} {
		u, err := WidenBytes(src)
		assert.Nil(t, u)
		require.ErrorIs(t, err, ErrTranscodeFailed)

		var te *TranscodeError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, "widen", te.Op)
		assert.Equal(t, transcode.FuncUTF8ToUTF16, te.Func)
		assert.Equal(t, transcode.ErrorNoUnicodeTranslation, te.Code)
		assert.ErrorIs(t, err, transcode.ErrorNoUnicodeTranslation)
	}
}

func TestNarrowUnpairedSurrogate(t *testing.T) {
	for _, src := range [][]uint16{
		{0xd800},
		{0x0048, 0xdc00},
		{0xd83d, 0x0041},
	} {
		s, err := Narrow(src)
		assert.Equal(t, "", s)
		require.ErrorIs(t, err, ErrTranscodeFailed)

		var te *TranscodeError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, "narrow", te.Op)
		assert.Equal(t, transcode.FuncUTF16ToUTF8, te.Func)
		assert.Equal(t, transcode.ErrorNoUnicodeTranslation, te.Code)
	}
}

func TestRoundTrip(t *testing.T) {
	samples := []string{
		"Hello",
		"Привет",
		"日本語テキスト",
		"😀 grinning, 𝄞 clef",
		"�\U0010FFFFé",
	}
	rnd := newRand(1)
	for i := 0; i < 200; i++ {
		samples = append(samples, randomString(rnd, rnd.Intn(64)+1))
	}

	for _, s := range samples {
		u, err := Widen(s)
		require.NoError(t, err)
		if diff := cmp.Diff(utf16.Encode([]rune(s)), u); diff != "" {
			t.Fatalf("Widen(%q) mismatch (-want +got):\n%s", s, diff)
		}

		back, err := Narrow(u)
		require.NoError(t, err)
		assert.Equal(t, s, back)

		again, err := Widen(back)
		require.NoError(t, err)
		assert.Equal(t, u, again)
	}
}

func TestNoAliasing(t *testing.T) {
	b := append([]byte(nil), privet8...)
	u, err := WidenBytes(b)
	require.NoError(t, err)
	b[0] = 'x'
	assert.Equal(t, privet16, u)

	v := append([]uint16(nil), privet16...)
	s, err := Narrow(v)
	require.NoError(t, err)
	v[0] = 'x'
	assert.Equal(t, "Привет", s)
}

// randomString returns a valid string of n random code points, surrogates excluded.
func randomString(rnd *rand.Rand, n int) string {
	rs := make([]rune, n)
	for i := range rs {
		switch rnd.Intn(4) {
		case 0:
			rs[i] = rune(rnd.Intn(0x80))
		case 1:
			rs[i] = rune(0x80 + rnd.Intn(0x800-0x80))
		case 2:
			r := rune(0x800 + rnd.Intn(0x10000-0x800))
			if r >= 0xd800 && r < 0xe000 {
				r -= 0x800
			}
			rs[i] = r
		default:
			rs[i] = rune(0x10000 + rnd.Intn(0x110000-0x10000))
		}
	}
	return string(rs)
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
