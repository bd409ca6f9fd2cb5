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

import "math"

// applyMask XOR's every non-function module with the given mask predicate.
// Applying this method twice with the same mask is a no-op, since XOR is
// its own inverse — that's how handleConstructorMasking evaluates each
// candidate mask without committing to it.
func (q *QRCode) applyMask(mask Mask) {
	for y := 0; y < q.size; y++ {
		for x := 0; x < q.size; x++ {
			var invert bool
			switch mask {
			case 0:
				invert = (x+y)%2 == 0
			case 1:
				invert = y%2 == 0
			case 2:
				invert = x%3 == 0
			case 3:
				invert = (x+y)%3 == 0
			case 4:
				invert = (x/3+y/2)%2 == 0
			case 5:
				invert = x*y%2+x*y%3 == 0
			case 6:
				invert = (x*y%2+x*y%3)%2 == 0
			case 7:
				invert = ((x+y)%2+x*y%3)%2 == 0
			default:
				panic("illegal mask value")
			}
			q.modules[y][x] ^= Module(bToI(invert && !q.isFunction[y][x]))
		}
	}
}

// handleConstructorMasking applies mask (or, if mask == -1, the
// automatically-selected lowest-penalty mask) and draws its format bits.
// State machine per candidate: apply -> score -> unapply, safe because
// applyMask is its own inverse.
func (q *QRCode) handleConstructorMasking(mask Mask) Mask {
	if mask == -1 {
		minPenalty := math.MaxInt32
		for i := Mask(0); i < 8; i++ {
			q.applyMask(i)
			q.drawFormatBits(i)
			penalty := q.getPenaltyScore()
			if penalty < minPenalty {
				mask = i
				minPenalty = penalty
			}
			q.applyMask(i) // Undo, because XOR is its own inverse.
		}
	}

	if mask < 0 || 7 < mask {
		panic("illegal mask value")
	}

	q.applyMask(mask)
	q.drawFormatBits(mask)
	return mask
}

// getPenaltyScore computes the four-term penalty defined in ISO/IEC 18004
// §7.8.3, used only to compare candidate masks against each other.
func (q *QRCode) getPenaltyScore() int {
	result := 0

	// N1: runs of 5+ same-color modules in a row, and finder-like patterns.
	for y := 0; y < q.size; y++ {
		runColor := Module(0)
		runX := 0
		var runHistory [7]int
		for x := 0; x < q.size; x++ {
			if q.modules[y][x] == runColor {
				runX++
				if runX == 5 {
					result += penaltyN1
				} else if runX > 5 {
					result++
				}
			} else {
				q.finderPenaltyAddHistory(runX, &runHistory)
				if runColor == 0 {
					result += q.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = q.modules[y][x]
				runX = 1
			}
		}
		result += q.finderPenaltyTerminateAndCount(runColor, runX, &runHistory) * penaltyN3
	}

	// N1/N3 again, by column.
	for x := 0; x < q.size; x++ {
		runColor := Module(0)
		runY := 0
		var runHistory [7]int
		for y := 0; y < q.size; y++ {
			if q.modules[y][x] == runColor {
				runY++
				if runY == 5 {
					result += penaltyN1
				} else if runY > 5 {
					result++
				}
			} else {
				q.finderPenaltyAddHistory(runY, &runHistory)
				if runColor == 0 {
					result += q.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = q.modules[y][x]
				runY = 1
			}
		}
		result += q.finderPenaltyTerminateAndCount(runColor, runY, &runHistory) * penaltyN3
	}

	// N2: 2*2 blocks of same-color modules.
	for y := 0; y < q.size-1; y++ {
		for x := 0; x < q.size-1; x++ {
			color := q.modules[y][x]
			if color == q.modules[y][x+1] &&
				color == q.modules[y+1][x] &&
				color == q.modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}

	// N4: balance of dark and light modules.
	dark := 0
	for _, row := range q.modules {
		for _, color := range row {
			if color == 1 {
				dark++
			}
		}
	}
	total := q.size * q.size // size is always odd, so dark/total never = 1/2.
	k := (abs(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// finderPenaltyAddHistory pushes currentRunLength to the front of the run
// history, dropping the oldest entry.
func (q *QRCode) finderPenaltyAddHistory(currentRunLength int, runHistory *[7]int) {
	if runHistory[0] == 0 {
		currentRunLength += q.size // Add light border to the initial run.
	}

	copy(runHistory[1:], runHistory[0:])
	runHistory[0] = currentRunLength
}

// finderPenaltyCountPatterns finds runs shaped like a finder pattern
// (1:1:3:1:1 with enough light quiet zone on one side) in the run history.
func (q *QRCode) finderPenaltyCountPatterns(runHistory *[7]int) int {
	n := runHistory[1]
	if n > q.size*3 {
		panic("bad run history")
	}
	core := n > 0 && runHistory[2] == n && runHistory[3] == n*3 && runHistory[4] == n && runHistory[5] == n
	return bToI(core && runHistory[0] >= n*4 && runHistory[6] >= n) + bToI(core && runHistory[6] >= n*4 && runHistory[0] >= n)
}

// finderPenaltyTerminateAndCount adds the penalty contribution of the final
// run in a row or column once scanning reaches the edge.
func (q *QRCode) finderPenaltyTerminateAndCount(runColor Module, runLength int, runHistory *[7]int) int {
	if runColor == 1 { // Terminate a dark run.
		q.finderPenaltyAddHistory(runLength, runHistory)
		runLength = 0
	}
	runLength += q.size // Add the light border to the final run.
	q.finderPenaltyAddHistory(runLength, runHistory)
	return q.finderPenaltyCountPatterns(runHistory)
}
