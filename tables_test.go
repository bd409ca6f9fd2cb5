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

func TestNumRawDataModules(t *testing.T) {
	assert.Equal(t, 208, numRawDataModules[1])
	assert.Equal(t, 29648, numRawDataModules[40])
	for v := 1; v <= 40; v++ {
		assert.True(t, numRawDataModules[v] >= 208)
		assert.True(t, numRawDataModules[v] <= 29648)
	}
}

func TestNumDataCodewords(t *testing.T) {
	assert.Equal(t, 19, numDataCodewords[Low][1])
	assert.Equal(t, 2956, numDataCodewords[Low][40])
	assert.Equal(t, 9, numDataCodewords[High][1])

	for e := Low; e <= High; e++ {
		for v := 1; v <= 40; v++ {
			assert.True(t, numDataCodewords[e][v] > 0)
		}
	}
}

func TestReedSolomonDivisorsPrecomputed(t *testing.T) {
	for e := 0; e < 4; e++ {
		for v := 1; v <= 40; v++ {
			degree := eccCodeWordsPerBlock[e][v]
			divisor, ok := reedSolomonDivisors[degree]
			assert.True(t, ok)
			assert.Equal(t, degree, len(divisor))
		}
	}
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, abs(5))
	assert.Equal(t, 5, abs(-5))
	assert.Equal(t, 0, abs(0))
}

func TestBToI(t *testing.T) {
	assert.Equal(t, 1, bToI(true))
	assert.Equal(t, 0, bToI(false))
}

func TestBToModule(t *testing.T) {
	assert.Equal(t, Module(1), bToModule(true))
	assert.Equal(t, Module(0), bToModule(false))
}

func TestGetBit(t *testing.T) {
	assert.Equal(t, 1, getBit(0b1010, 1))
	assert.Equal(t, 0, getBit(0b1010, 0))
}

func TestGetBitAsBool(t *testing.T) {
	assert.True(t, getBitAsBool(0b1010, 1))
	assert.False(t, getBitAsBool(0b1010, 0))
}

func TestMaxIntMinInt(t *testing.T) {
	assert.Equal(t, 5, maxInt(5, 3))
	assert.Equal(t, 3, maxInt(3, 3))
	assert.Equal(t, 3, minInt(5, 3))
	assert.Equal(t, 3, minInt(3, 3))
}
