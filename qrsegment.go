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
	"math"
	"regexp"
	"strconv"
	"strings"
)

// QRSegment represents a single segment in a QR code. A QR code may contain
// more than one segment (numeric, alphanumeric, byte, kanji, or ECI).
type QRSegment struct {
	Mode            // The mode of this segment (numeric, alphanumeric, byte, kanji, or ECI).
	NumChars int    // The length of this segment's unencoded data: characters for numeric/alphanumeric/kanji, bytes for byte mode, 0 for ECI.
	Data     []byte // The mode-encoded payload bits, excluding mode indicator and count field; one element per bit.
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp       = regexp.MustCompile(`^[0-9]*$`)
)

// getTotalBits returns the number of bits segs would occupy (mode
// indicators + count fields + payload) at the given version, or -1 if any
// segment's character count overflows its count field, or if the total
// overflows an int32 (component C7's capacity check).
func getTotalBits(segs []*QRSegment, version Version) int {
	result := int64(0)
	for _, seg := range segs {
		ccBits := seg.Mode.numCharCountBits(version)
		if seg.NumChars >= 1<<ccBits {
			return -1
		}

		result += int64(4 + int(ccBits) + len(seg.Data))
		if result > math.MaxInt32 {
			return -1
		}
	}

	return int(result)
}

// IsNumeric reports whether text can be losslessly encoded in numeric mode.
func IsNumeric(text string) bool {
	return numericRegexp.MatchString(text)
}

// IsAlphanumeric reports whether text can be losslessly encoded in
// alphanumeric mode.
func IsAlphanumeric(text string) bool {
	return alphanumericRegexp.MatchString(text)
}

// MakeAlphanumeric creates an alphanumeric segment from the given text
// (uppercase letters, digits, and the symbols in alphanumericCharset). It
// panics if text contains any other character; callers should check
// IsAlphanumeric first.
func MakeAlphanumeric(text string) *QRSegment {
	if !alphanumericRegexp.MatchString(text) {
		panic("string contains non-alphanumeric characters")
	}

	bb := make(bitBuffer, 0, len(text)*5+(len(text)+1)/2)
	var i int
	for i = 0; i <= len(text)-2; i += 2 { // Process groups of 2 characters.
		temp := strings.Index(alphanumericCharset, text[i:i+1]) * 45
		temp += strings.Index(alphanumericCharset, text[i+1:i+2])
		bb.appendBits(temp, 11)
	}

	if i < len(text) { // 1 character remaining.
		bb.appendBits(strings.Index(alphanumericCharset, text[i:i+1]), 6)
	}

	return &QRSegment{
		Mode:     Alphanumeric,
		NumChars: len(text),
		Data:     bb,
	}
}

// MakeBytes encodes a byte slice into a QR segment of type Byte.
func MakeBytes(data []byte) *QRSegment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}

	return &QRSegment{
		Mode:     Byte,
		NumChars: len(data),
		Data:     bb,
	}
}

// MakeECI creates a segment representing an extended channel interpretation
// (ECI) designator with the given assignment value, in [0, 1000000).
func MakeECI(assignValue int) (*QRSegment, error) {
	bb := make(bitBuffer, 0, 24)
	if assignValue < 0 {
		return nil, newError(InvalidArgument, "ECI assignment value %d is negative", assignValue)
	} else if assignValue < 1<<7 {
		bb.appendBits(assignValue, 8)
	} else if assignValue < 1<<14 {
		bb.appendBits(2, 2)
		bb.appendBits(assignValue, 14)
	} else if assignValue < 1_000_000 {
		bb.appendBits(6, 3)
		bb.appendBits(assignValue, 21)
	} else {
		return nil, newError(InvalidArgument, "ECI assignment value %d out of range", assignValue)
	}

	return &QRSegment{
		Mode:     ECI,
		NumChars: 0,
		Data:     bb,
	}, nil
}

// MakeNumeric creates a numeric segment from the given digit string. It
// panics if digits contains a non-digit character; callers should check
// IsNumeric first.
func MakeNumeric(digits string) *QRSegment {
	if !numericRegexp.MatchString(digits) {
		panic("string contains non-numeric characters")
	}

	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := minInt(len(digits)-i, 3)
		d, _ := strconv.Atoi(digits[i : i+n]) // Safe: numericRegexp already confirmed digits-only.
		bb.appendBits(d, int8(n*3+1))
		i += n
	}

	return &QRSegment{
		Mode:     Numeric,
		NumChars: len(digits),
		Data:     bb,
	}
}

// MakeSegments encodes text into a single QR segment, selecting the most
// efficient single mode that can represent it losslessly: numeric,
// alphanumeric, kanji, or (as a fallback) byte. For mixed-mode text that
// would benefit from splitting across several segments, see
// MakeOptimizedSegments.
func MakeSegments(text string) []*QRSegment {
	if len(text) == 0 {
		return []*QRSegment{}
	}

	if numericRegexp.MatchString(text) {
		return []*QRSegment{MakeNumeric(text)}
	}

	if alphanumericRegexp.MatchString(text) {
		return []*QRSegment{MakeAlphanumeric(text)}
	}

	if seg, ok := makeKanjiIfPossible(text); ok {
		return []*QRSegment{seg}
	}

	return []*QRSegment{MakeBytes([]byte(text))}
}
