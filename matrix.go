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

// setFunctionModule paints a single module and marks it as a function
// module, so masking (mask.go) and the codeword painter (drawCodewords,
// below) both skip it.
func (q *QRCode) setFunctionModule(x, y int, isBlack bool) {
	q.modules[y][x] = bToModule(isBlack)
	q.isFunction[y][x] = true
}

// drawFunctionPatterns draws every non-data module: timing patterns, the
// three finder patterns, alignment patterns, and placeholder format/version
// information (format bits are drawn again, for real, once the final mask
// is known; see handleConstructorMasking).
func (q *QRCode) drawFunctionPatterns() {
	// Draw horizontal and vertical timing patterns.
	for i := 0; i < q.size; i++ {
		q.setFunctionModule(6, i, i%2 == 0)
		q.setFunctionModule(i, 6, i%2 == 0)
	}

	// Draw 3 finder patterns (all corners except the bottom right; overwrites
	// some timing modules).
	q.drawFinderPattern(3, 3)
	q.drawFinderPattern(q.size-4, 3)
	q.drawFinderPattern(3, q.size-4)

	// Draw alignment patterns, skipping the three finder corners.
	alignPatPos := alignmentPatternPositions[q.version]
	numAlign := len(alignPatPos)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			if !(i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0) {
				q.drawAlignmentPattern(int(alignPatPos[i]), int(alignPatPos[j]))
			}
		}
	}

	q.drawFormatBits(0)
	q.drawVersion()
}

// drawFinderPattern draws a 9*9 finder pattern including the border
// separator, with the center module at (x, y).
func (q *QRCode) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := maxInt(abs(dx), abs(dy))
			xx := x + dx
			yy := y + dy
			if 0 <= xx && xx < q.size && 0 <= yy && yy < q.size {
				q.setFunctionModule(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

// drawAlignmentPattern draws a 5*5 alignment pattern, with the center
// module at (x, y).
func (q *QRCode) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			q.setFunctionModule(x+dx, y+dy, maxInt(abs(dx), abs(dy)) != 1)
		}
	}
}

// drawFormatBits draws two copies of the format information (error
// correction level + mask, with its own 10-bit BCH error correction code
// over generator 0x537, masked with 0x5412).
func (q *QRCode) drawFormatBits(mask Mask) {
	data := q.ecl.formatBits()<<3 | int(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*0x537
	}
	bits := data<<10 | rem ^ 0x5412
	if bits>>15 != 0 {
		panic("incorrect format bits calculation")
	}

	// Draw first copy.
	for i := 0; i <= 5; i++ {
		q.setFunctionModule(8, i, getBitAsBool(bits, i))
	}
	q.setFunctionModule(8, 7, getBitAsBool(bits, 6))
	q.setFunctionModule(8, 8, getBitAsBool(bits, 7))
	q.setFunctionModule(7, 8, getBitAsBool(bits, 8))
	for i := 9; i < 15; i++ {
		q.setFunctionModule(14-i, 8, getBitAsBool(bits, i))
	}

	// Draw second copy.
	for i := 0; i < 8; i++ {
		q.setFunctionModule(q.size-1-i, 8, getBitAsBool(bits, i))
	}
	for i := 8; i < 15; i++ {
		q.setFunctionModule(8, q.size-15+i, getBitAsBool(bits, i))
	}
	q.setFunctionModule(8, q.size-8, true) // Always dark.
}

// drawVersion draws two copies of the 18-bit version information (with its
// own Golay error correction code), for versions 7 and above.
func (q *QRCode) drawVersion() {
	if q.version < 7 {
		return
	}

	rem := int(q.version)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*0x1F25
	}
	bits := int(q.version)<<12 | rem
	if bits>>18 != 0 {
		panic("incorrect version calculation")
	}

	for i := 0; i < 18; i++ {
		bit := getBitAsBool(bits, i)
		a := q.size - 11 + i%3
		b := i / 3
		q.setFunctionModule(a, b, bit)
		q.setFunctionModule(b, a, bit)
	}
}

// getAlignmentPatternPositions returns an ascending list of alignment
// pattern center positions for this version, used on both the x and y axes.
func getAlignmentPatternPositions(version Version) []byte {
	if version == 1 {
		return []byte{}
	}

	numAlign := version/7 + 2
	var step int
	if version == 32 { // Special snowflake.
		step = 26
	} else { // step = ceil[(size - 13) / (numAlign * 2 - 2)] * 2.
		step = (int(version)*4 + int(numAlign)*2 + 1) / (int(numAlign)*2 - 2) * 2
	}
	result := make([]byte, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, int(version)*4+17-7; i >= 1; i-- {
		result[i] = byte(pos)
		pos -= step
	}

	return result
}

// drawCodewords performs the zig-zag scan (component C10): right-to-left
// column pairs, serpentining up/down, skipping column 6 (the timing
// column), placing MSB-first bits from data into every non-function
// module. Function modules must already be marked before this runs. Any
// trailing remainder-bit positions are left at their initial light value.
func (q *QRCode) drawCodewords(data []byte) {
	if len(data) != numRawDataModules[q.version]/8 {
		panic("incorrect data length")
	}

	i := 0 // Bit index into the data.

	for right := q.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < q.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0

				var y int
				if upward {
					y = q.size - 1 - vert
				} else {
					y = vert
				}

				if !q.isFunction[y][x] && i < len(data)*8 {
					q.modules[y][x] = Module(getBit(int(data[i>>3]), 7-(i&7)))
					i++
				}
			}
		}
	}

	if i != len(data)*8 {
		panic("incorrect length")
	}
}
