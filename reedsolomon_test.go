/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReedSolomonComputeDivisor(t *testing.T) {
	var generator []byte

	generator = reedSolomonComputeDivisor(1)
	assert.True(t, generator[0] == 0x01)

	generator = reedSolomonComputeDivisor(2)
	assert.True(t, generator[0] == 0x03)
	assert.True(t, generator[1] == 0x02)

	generator = reedSolomonComputeDivisor(5)
	assert.True(t, generator[0] == 0x1F)
	assert.True(t, generator[1] == 0xC6)
	assert.True(t, generator[2] == 0x3F)
	assert.True(t, generator[3] == 0x93)
	assert.True(t, generator[4] == 0x74)

	generator = reedSolomonComputeDivisor(30)
	assert.True(t, generator[0] == 0xD4)
	assert.True(t, generator[1] == 0xF6)
	assert.True(t, generator[5] == 0xC0)
	assert.True(t, generator[12] == 0x16)
	assert.True(t, generator[13] == 0xD9)
	assert.True(t, generator[20] == 0x12)
	assert.True(t, generator[27] == 0x6A)
	assert.True(t, generator[29] == 0x96)
}

func TestReedSolomonComputeRemainder(t *testing.T) {
	{
		data := []byte{0}
		generator := reedSolomonComputeDivisor(3)
		remainder := reedSolomonComputeRemainder(data, generator)
		assert.Equal(t, 3, len(remainder))
		for i := 0; i < 3; i++ {
			assert.Equal(t, byte(0), remainder[i])
		}
	}
	{
		data := []byte{0, 1}
		generator := reedSolomonComputeDivisor(3)
		remainder := reedSolomonComputeRemainder(data, generator)
		assert.Equal(t, 3, len(remainder))
		for i := 0; i < 3; i++ {
			assert.Equal(t, generator[i], remainder[i])
		}
	}
	{
		data := []byte{0x03, 0x3A, 0x60, 0x12, 0xC7}
		generator := reedSolomonComputeDivisor(5)
		remainder := reedSolomonComputeRemainder(data, generator)
		assert.Equal(t, 5, len(remainder))
		expected := []byte{0xCB, 0x36, 0x16, 0xFA, 0x9D}
		assert.Equal(t, expected, remainder)
	}
	{
		data := []byte{
			0x38, 0x71, 0xDB, 0xF9, 0xD7, 0x28, 0xF6, 0x8E, 0xFE, 0x5E,
			0xE6, 0x7D, 0x7D, 0xB2, 0xA5, 0x58, 0xBC, 0x28, 0x23, 0x53,
			0x14, 0xD5, 0x61, 0xC0, 0x20, 0x6C, 0xDE, 0xDE, 0xFC, 0x79,
			0xB0, 0x8B, 0x78, 0x6B, 0x49, 0xD0, 0x1A, 0xAD, 0xF3, 0xEF,
			0x52, 0x7D, 0x9A,
		}
		generator := reedSolomonComputeDivisor(30)
		remainder := reedSolomonComputeRemainder(data, generator)
		assert.Equal(t, 30, len(remainder))
		assert.Equal(t, byte(0xCE), remainder[0])
		assert.Equal(t, byte(0xF0), remainder[1])
		assert.Equal(t, byte(0x31), remainder[2])
		assert.Equal(t, byte(0xDE), remainder[3])
		assert.Equal(t, byte(0xE1), remainder[8])
		assert.Equal(t, byte(0xCA), remainder[12])
		assert.Equal(t, byte(0xE3), remainder[17])
		assert.Equal(t, byte(0x85), remainder[19])
		assert.Equal(t, byte(0x50), remainder[20])
		assert.Equal(t, byte(0xBE), remainder[24])
		assert.Equal(t, byte(0xB3), remainder[29])
	}
}

// A remainder appended to its data must make the combined polynomial evenly
// divisible by the generator (spec §8): dividing the result by the
// generator a second time must leave an all-zero remainder.
func TestReedSolomonRemainderMakesDataDivisible(t *testing.T) {
	generator := reedSolomonComputeDivisor(10)
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0, 0x11, 0x22}
	remainder := reedSolomonComputeRemainder(data, generator)

	combined := append(append([]byte{}, data...), remainder...)
	second := reedSolomonComputeRemainder(combined, generator)
	for _, b := range second {
		assert.Equal(t, byte(0), b)
	}
}
