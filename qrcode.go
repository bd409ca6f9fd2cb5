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
	"strings"
)

// QRCode represents a fully encoded QR code symbol: a square grid of dark
// and light modules, together with the version, error correction level, and
// mask that produced it. A QRCode is immutable once returned by one of the
// Encode* functions.
type QRCode struct {
	version    Version
	size       int
	ecl        ECL
	mask       Mask
	modules    [][]Module
	isFunction [][]bool // discarded after construction
}

// The maximum and minimum versions (QR code sizes) for a QR code symbol.
// Version 1 = 21 modules square, and version 40 = 177 modules square.
const (
	MaxVersion = Version(40)
	MinVersion = Version(1)

	// Penalty weights used when scoring a candidate mask. Lower total
	// penalty is assumed to scan more reliably.
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// Version returns the QR code version (symbol size class) of this symbol.
func (q *QRCode) Version() Version { return q.version }

// Size returns the width and height, in modules, of this symbol.
func (q *QRCode) Size() int { return q.size }

// ErrorCorrectionLevel returns the error correction level used by this
// symbol.
func (q *QRCode) ErrorCorrectionLevel() ECL { return q.ecl }

// Mask returns the mask pattern, in [0, 7], applied to this symbol.
func (q *QRCode) Mask() Mask { return q.mask }

// GetModule reports whether the module at (x, y) is dark. Coordinates
// outside [0, Size) in either axis read as light (false), never panic.
func (q *QRCode) GetModule(x, y int) bool {
	if x < 0 || x >= q.size || y < 0 || y >= q.size {
		return false
	}
	return q.modules[y][x] != 0
}

// EncodeBinary encodes a byte slice into a QR code symbol with the given
// error correction level, using a single byte-mode segment.
func EncodeBinary(data []byte, ecl ECL) (*QRCode, error) {
	seg := MakeBytes(data)
	return EncodeSegments([]*QRSegment{seg}, ecl)
}

// EncodeText encodes text as a QR code symbol with the given error
// correction level, selecting numeric, alphanumeric, kanji, or byte mode
// automatically via MakeSegments.
func EncodeText(text string, ecl ECL) (*QRCode, error) {
	segs := MakeSegments(text)
	return EncodeSegments(segs, ecl)
}

// EncodeSegments creates a QR code symbol from one or more already-built
// segments, applying any WithXxx options supplied. By default the version
// range is [1, 40], the error correction level is boosted when room
// permits, and the mask is chosen automatically.
func EncodeSegments(segs []*QRSegment, ecl ECL, options ...func(*segmentEncoder)) (*QRCode, error) {
	qrCode, _, err := encodeSegmentsInto(segs, ecl, options, nil, nil)
	return qrCode, err
}

// encodeSegmentsInto is the shared core behind EncodeSegments and the
// buffer-based API (see buffer.go). It always allocates the module and
// isFunction grids on the heap; when qrBuffer is non-nil it also writes the
// packed bitmap there. tempBuffer is not used.
func encodeSegmentsInto(segs []*QRSegment, ecl ECL, options []func(*segmentEncoder), tempBuffer, qrBuffer []byte) (*QRCode, []byte, error) {
	s := segmentEncoder{
		boostECL:   true,
		mask:       -1, // Automatic mask selection.
		maxVersion: 40,
		minVersion: 1,
	}
	for _, o := range options {
		o(&s)
	}

	if s.minVersion < MinVersion || MaxVersion < s.maxVersion || s.maxVersion < s.minVersion {
		return nil, nil, newError(InvalidArgument, "version range [%d, %d] is invalid", s.minVersion, s.maxVersion)
	}
	if s.mask < -1 || s.mask > 7 {
		return nil, nil, newError(InvalidArgument, "mask value %d out of range", s.mask)
	}

	version, dataUsedBits, err := chooseVersion(segs, ecl, s.minVersion, s.maxVersion)
	if err != nil {
		return nil, nil, err
	}

	// Increase the error correction level while the data still fits in the
	// current version number.
	if s.boostECL {
		for newEcl := Medium; newEcl <= High; newEcl++ {
			if dataUsedBits <= numDataCodewords[newEcl][version]*8 {
				ecl = newEcl
			}
		}
	}

	dataCodeWords, err := buildDataCodewords(segs, ecl, version, dataUsedBits)
	if err != nil {
		return nil, nil, err
	}

	size := version.Size()
	qrCode := QRCode{
		version: version,
		size:    size,
		ecl:     ecl,
		modules: make([][]Module, size),
		isFunction: make([][]bool, size),
	}
	for i := 0; i < size; i++ {
		qrCode.modules[i] = make([]Module, size)
		qrCode.isFunction[i] = make([]bool, size)
	}

	qrCode.drawFunctionPatterns()
	allCodeWords := qrCode.addECCAndInterleave(dataCodeWords)
	qrCode.drawCodewords(allCodeWords)
	qrCode.mask = qrCode.handleConstructorMasking(s.mask)

	qrCode.isFunction = nil

	var packed []byte
	if qrBuffer != nil {
		packed = qrCode.packInto(qrBuffer)
	}
	_ = tempBuffer // reserved for a future scratch-allocation path; unused today

	return &qrCode, packed, nil
}

// chooseVersion walks versions from minVersion upward and returns the
// smallest that has room for segs at ecl (component C7).
func chooseVersion(segs []*QRSegment, ecl ECL, minVersion, maxVersion Version) (Version, int, error) {
	version := minVersion
	var dataUsedBits int
	for {
		dataCapacityBits := numDataCodewords[ecl][version] * 8
		dataUsedBits = getTotalBits(segs, version)
		if dataUsedBits != -1 && dataUsedBits <= dataCapacityBits {
			return version, dataUsedBits, nil
		}
		if version >= maxVersion {
			if dataUsedBits != -1 {
				return 0, 0, newError(DataTooLong, "data length = %d bits, max capacity = %d bits", dataUsedBits, dataCapacityBits)
			}
			return 0, 0, newError(DataTooLong, "segment character count exceeds the field width at every version up to %d", maxVersion)
		}
		version++
	}
}

// buildDataCodewords concatenates segs into a bit stream, appends the
// terminator and padding, and packs the result into bytes (component C8,
// padding half; spec §4.8).
func buildDataCodewords(segs []*QRSegment, ecl ECL, version Version, dataUsedBits int) ([]byte, error) {
	bb := make(bitBuffer, 0, dataUsedBits)
	for _, seg := range segs {
		bb.appendBits(int(seg.modeBits), 4)
		bb.appendBits(seg.NumChars, seg.Mode.numCharCountBits(version))
		bb = append(bb, seg.Data...)
	}
	if len(bb) != dataUsedBits {
		panic("incorrect data size calculation")
	}

	dataCapacityBits := numDataCodewords[ecl][version] * 8
	if len(bb) > dataCapacityBits {
		panic("incorrect data size calculation")
	}

	// Terminator: up to 4 zero bits, fewer if capacity runs out first.
	bb.appendBits(0, int8(minInt(4, dataCapacityBits-len(bb))))
	// Pad to a byte boundary.
	bb.appendBits(0, int8((8-len(bb)%8)%8))
	if len(bb)%8 != 0 {
		panic("incorrect data size calculation")
	}

	// Pad with alternating bytes until data capacity is reached.
	for padByte := int16(0xec); len(bb) < dataCapacityBits; padByte ^= 0xec ^ 0x11 {
		bb.appendBits(int(padByte), 8)
	}

	dataCodeWords := make([]byte, len(bb)/8)
	for i := 0; i < len(bb); i++ {
		dataCodeWords[i>>3] |= bb[i] << (7 - i&7)
	}
	return dataCodeWords, nil
}

// String renders the symbol as a block-character grid, for debugging.
func (q *QRCode) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "QRCode{version=%d size=%d ecl=%d mask=%d}\n", q.version, q.size, q.ecl, q.mask)
	for y := 0; y < q.size; y++ {
		for x := 0; x < q.size; x++ {
			if q.modules[y][x] == 1 {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
