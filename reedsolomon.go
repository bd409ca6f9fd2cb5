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

// reedSolomonComputeDivisor creates a Reed-Solomon error correction generator
// polynomial of the given degree.
func reedSolomonComputeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("degree out of range")
	}

	// Polynomial coefficients are stored from highest to lowest power,
	// excluding the leading term, which is always 1. For example, the
	// polynomial x^3 + 255*x^2 + 8x + 93 is stored as the byte array [255, 8,
	// 93].
	result := make([]byte, degree)
	result[degree-1] = 1 // Start off with the monomial x^0.

	// Compute the product polynomial (x - r^0) * (x - r^1) * (x - r^2) * ... *
	// (x - r^(degree - 1)), and drop the highest monomial term which is always
	// 1*x^degree. Note that r = 0x02, which is a generator element of this
	// field GF(2^8/0x11D).
	root := byte(1)
	for i := 0; i < degree; i++ {
		// Multiply the current product by (x - r^i).
		for j := 0; j < len(result); j++ {
			result[j] = reedSolomonMultiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = reedSolomonMultiply(root, 0x02)
	}

	return result
}

// reedSolomonComputeRemainder returns the Reed-Solomon error correction
// codeword for the given data and divisor polynomials.
func reedSolomonComputeRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data { // Polynomial long division.
		factor := b ^ result[0]
		copy(result[0:], result[1:])
		result[len(result)-1] = 0
		for i := 0; i < len(result); i++ {
			result[i] ^= reedSolomonMultiply(divisor[i], factor)
		}
	}

	return result
}

// addECCAndInterleave splits the padded data codewords into blocks, appends
// a Reed-Solomon remainder to each, and interleaves the bytes of all blocks
// (data first, then ECC) into the final raw codeword sequence, per ISO/IEC
// 18004 §6.6.
func (q *QRCode) addECCAndInterleave(data []byte) []byte {
	if len(data) != numDataCodewords[q.ecl][q.version] {
		panic("data is not correct length")
	}

	numBlocks := numErrorCorrectionBlocks[q.ecl][q.version]
	blockECCLen := eccCodeWordsPerBlock[q.ecl][q.version]
	rawCodeWords := numRawDataModules[q.version] / 8
	numShortBlocks := numBlocks - rawCodeWords%numBlocks
	shortBlockLen := rawCodeWords / numBlocks

	// Split data into blocks and append ECC to each block.
	blocks := make([][]byte, numBlocks)
	rsDiv := reedSolomonDivisors[blockECCLen]
	for i, k := 0, 0; i < numBlocks; i++ {
		dat := data[k : k+shortBlockLen-blockECCLen+bToI(i >= numShortBlocks)]
		k += len(dat)
		block := make([]byte, shortBlockLen+1)
		copy(block, dat)
		ecc := reedSolomonComputeRemainder(dat, rsDiv)
		copy(block[(len(block)-len(ecc)):], ecc)
		blocks[i] = block
	}

	// Interleave (not concatenate) the bytes from every block into a single
	// sequence: byte i of every block in block order, skipping the absent
	// padding byte position in short blocks, then the ECC bytes the same way.
	result := make([]byte, rawCodeWords)
	for i, k := 0, 0; i < len(blocks[0]); i++ {
		for j := 0; j < len(blocks); j++ {
			// Skip the padding byte in short blocks.
			if i != shortBlockLen-blockECCLen || j >= numShortBlocks {
				result[k] = blocks[j][i]
				k++
			}
		}
	}

	return result
}
