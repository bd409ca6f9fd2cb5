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

func TestApplyMaskIsItsOwnInverse(t *testing.T) {
	q := newBlankQRCode(3)
	q.drawFunctionPatterns()
	before := make([][]Module, q.size)
	for y := range q.modules {
		before[y] = append([]Module{}, q.modules[y]...)
	}

	q.applyMask(0)
	q.applyMask(0)

	for y := 0; y < q.size; y++ {
		assert.Equal(t, before[y], q.modules[y])
	}
}

func TestApplyMaskPanicsOnIllegalValue(t *testing.T) {
	q := newBlankQRCode(1)
	assert.Panics(t, func() {
		q.applyMask(8)
	})
}

func TestHandleConstructorMaskingAutomaticPicksValidMask(t *testing.T) {
	q := newBlankQRCode(1)
	q.ecl = Medium
	q.drawFunctionPatterns()
	data := make([]byte, numRawDataModules[1]/8)
	q.drawCodewords(data)

	chosen := q.handleConstructorMasking(-1)
	assert.True(t, chosen >= 0 && chosen <= 7)
}

func TestHandleConstructorMaskingExplicit(t *testing.T) {
	q := newBlankQRCode(1)
	q.ecl = Medium
	q.drawFunctionPatterns()
	data := make([]byte, numRawDataModules[1]/8)
	q.drawCodewords(data)

	chosen := q.handleConstructorMasking(5)
	assert.Equal(t, Mask(5), chosen)
}

func TestFinderPenaltyCountPatternsNoRun(t *testing.T) {
	q := newBlankQRCode(1)
	var history [7]int
	assert.Equal(t, 0, q.finderPenaltyCountPatterns(&history))
}

func TestGetPenaltyScoreNonNegative(t *testing.T) {
	q := newBlankQRCode(2)
	q.drawFunctionPatterns()
	data := make([]byte, numRawDataModules[2]/8)
	for i := range data {
		data[i] = byte(i)
	}
	q.drawCodewords(data)
	assert.True(t, q.getPenaltyScore() >= 0)
}
