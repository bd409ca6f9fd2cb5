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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReedSolomonMultiply(t *testing.T) {
	cases := [][3]byte{
		{0x00, 0x00, 0x00},
		{0x01, 0x01, 0x01},
		{0x02, 0x02, 0x04},
		{0x00, 0x6E, 0x00},
		{0xB2, 0xDD, 0xE6},
		{0x41, 0x11, 0x25},
		{0xB0, 0x1F, 0x11},
		{0x05, 0x75, 0xBC},
		{0x52, 0xB5, 0xAE},
		{0xA8, 0x20, 0xA4},
		{0x0E, 0x44, 0x9F},
		{0xD4, 0x13, 0xA0},
		{0x31, 0x10, 0x37},
		{0x6C, 0x58, 0xCB},
		{0xB6, 0x75, 0x3E},
		{0xFF, 0xFF, 0xE2},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestReedSolomonMultiply %v", tc), func(t *testing.T) {
			assert.Equal(t, tc[2], reedSolomonMultiply(tc[0], tc[1]))
		})
	}
}

func TestReedSolomonMultiplyIsCommutative(t *testing.T) {
	for x := 0; x < 256; x += 17 {
		for y := 0; y < 256; y += 23 {
			assert.Equal(t, reedSolomonMultiply(byte(x), byte(y)), reedSolomonMultiply(byte(y), byte(x)))
		}
	}
}

func TestReedSolomonMultiplyIsAssociative(t *testing.T) {
	xs := []byte{0x00, 0x01, 0x02, 0x1D, 0x7F, 0xB2, 0xDD, 0xFF}
	for _, x := range xs {
		for _, y := range xs {
			for _, z := range xs {
				left := reedSolomonMultiply(reedSolomonMultiply(x, y), z)
				right := reedSolomonMultiply(x, reedSolomonMultiply(y, z))
				assert.Equal(t, left, right)
			}
		}
	}
}

func TestReedSolomonMultiplyDistributesOverXor(t *testing.T) {
	xs := []byte{0x00, 0x01, 0x02, 0x1D, 0x7F, 0xB2, 0xDD, 0xFF}
	for _, x := range xs {
		for _, y := range xs {
			for _, z := range xs {
				left := reedSolomonMultiply(x, y^z)
				right := reedSolomonMultiply(x, y) ^ reedSolomonMultiply(x, z)
				assert.Equal(t, left, right)
			}
		}
	}
}
