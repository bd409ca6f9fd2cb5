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
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// kanjiCodeword converts a single 2-byte Shift-JIS sequence into the 13-bit
// value ISO/IEC 18004 §7.4.6 specifies for kanji mode, reporting false if
// the sequence falls outside either of the two accepted ranges
// ([0x8140, 0x9FFC] or [0xE040, 0xEBBF]).
func kanjiCodeword(hi, lo byte) (int, bool) {
	s := int(hi)<<8 | int(lo)
	var base int
	switch {
	case s >= 0x8140 && s <= 0x9FFC:
		base = 0x8140
	case s >= 0xE040 && s <= 0xEBBF:
		base = 0xC140
	default:
		return 0, false
	}
	diff := s - base
	return (diff>>8)*0xC0 + diff&0xFF, true
}

// shiftJIS transcodes UTF-8 text to Shift-JIS, the byte encoding QR kanji
// mode is defined over. It returns an error for any rune Shift-JIS cannot
// represent.
func shiftJIS(text string) ([]byte, error) {
	encoded, _, err := transform.String(japanese.ShiftJIS.NewEncoder(), text)
	if err != nil {
		return nil, err
	}
	return []byte(encoded), nil
}

// IsKanjiEncodable reports whether text transcodes entirely into 2-byte
// Shift-JIS sequences that are valid QR kanji mode code points (component
// C13's kanji classifier). Text containing any ASCII/halfwidth-katakana
// single-byte run, or any character Shift-JIS cannot represent, is not
// kanji-encodable.
func IsKanjiEncodable(text string) bool {
	_, ok := kanjiCodewords(text)
	return ok
}

// kanjiCodewords transcodes text to Shift-JIS and maps every 2-byte pair to
// its 13-bit kanji codeword, failing if transcoding errors, produces an odd
// number of bytes, or yields any byte pair outside the accepted ranges.
func kanjiCodewords(text string) ([]int, bool) {
	if text == "" {
		return nil, true
	}
	sjis, err := shiftJIS(text)
	if err != nil || len(sjis)%2 != 0 {
		return nil, false
	}
	codewords := make([]int, 0, len(sjis)/2)
	for i := 0; i < len(sjis); i += 2 {
		cw, ok := kanjiCodeword(sjis[i], sjis[i+1])
		if !ok {
			return nil, false
		}
		codewords = append(codewords, cw)
	}
	return codewords, true
}

// makeKanjiIfPossible builds a Kanji-mode segment from text if and only if
// every rune in it is kanji-encodable; otherwise it reports false so the
// caller can fall back to byte mode (component C4's kanji path, C13's
// classifier fallback).
func makeKanjiIfPossible(text string) (*QRSegment, bool) {
	codewords, ok := kanjiCodewords(text)
	if !ok {
		return nil, false
	}

	bb := make(bitBuffer, 0, len(codewords)*13)
	for _, cw := range codewords {
		bb.appendBits(cw, 13)
	}

	return &QRSegment{
		Mode:     Kanji,
		NumChars: len(codewords),
		Data:     bb,
	}, true
}
