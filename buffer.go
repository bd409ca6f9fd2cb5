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

// PackedBufferSize returns the number of bytes a packed module bitmap for a
// symbol of the given version requires: ceil(Size(version)^2 / 8).
func PackedBufferSize(version Version) int {
	n := version.Size()
	return (n*n + 7) / 8
}

// packInto packs this symbol's modules into buf LSB-first: bit y*Size+x
// lives at buf[index>>3], bit index&7. buf must be at least
// PackedBufferSize(q.version) bytes; only that prefix is written.
func (q *QRCode) packInto(buf []byte) []byte {
	need := PackedBufferSize(q.version)
	if len(buf) < need {
		panic("packed buffer too small")
	}
	out := buf[:need]
	for i := range out {
		out[i] = 0
	}
	for y := 0; y < q.size; y++ {
		for x := 0; x < q.size; x++ {
			if q.modules[y][x] != 0 {
				index := y*q.size + x
				out[index>>3] |= 1 << (index & 7)
			}
		}
	}
	return out
}

// EncodeSegmentsToBuffer is the caller-allocated counterpart to
// EncodeSegments (spec §9's buffer protocol): tempBuffer and qrBuffer must
// each be at least PackedBufferSize(maxVersion) bytes, where maxVersion is
// either WithMaxVersion's value or 40 by default. It returns the encoded
// symbol together with its packed module bitmap written into qrBuffer.
// tempBuffer is not used, and the module grids are allocated on the heap
// exactly as in EncodeSegments.
func EncodeSegmentsToBuffer(segs []*QRSegment, ecl ECL, tempBuffer, qrBuffer []byte, options ...func(*segmentEncoder)) (*QRCode, []byte, error) {
	if qrBuffer == nil {
		return nil, nil, newError(InvalidArgument, "qrBuffer must not be nil")
	}
	return encodeSegmentsInto(segs, ecl, options, tempBuffer, qrBuffer)
}
