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

package safecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt32(t *testing.T) {
	n, err := ToInt32(0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), n)

	n, err = ToInt32(math.MaxInt32)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), n)

	_, err = ToInt32(math.MaxInt32 + 1)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = ToInt32(math.MaxUint32)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = ToInt32(math.MaxUint64)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestToInt(t *testing.T) {
	n, err := ToInt(0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = ToInt(math.MaxInt32)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, n)

	_, err = ToInt(-1)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = ToInt(math.MinInt32)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestMul(t *testing.T) {
	n, err := Mul(math.MaxInt32, 2)
	if maxInt == math.MaxInt32 {
		assert.ErrorIs(t, err, ErrOverflow)
	} else {
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt32)*2, int64(n))
	}

	n, err = Mul(7, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = Mul(maxInt/2+1, 2)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Mul(-1, 2)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(5, 5))
	assert.False(t, Equal(5, 4))
	assert.False(t, Equal(0, -1))
	assert.False(t, Equal(math.MaxInt32, math.MinInt32))
}
