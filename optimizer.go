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
	"strings"
	"unicode/utf8"
)

// Per-code-point costs in sixths of a bit (spec §4.5), so that the
// mode-switch rounding (round a partial cost up to the next whole bit) is
// exact integer arithmetic, never floating point.
const (
	costNumeric      = 20
	costAlphanumeric = 33
	costBytePerByte  = 48
	costKanji        = 78
)

const infeasible = math.MaxInt64 / 2

// optimizerMode indexes the four modes the optimizer considers, in a fixed
// order used throughout this file.
type optimizerMode int

const (
	omNumeric optimizerMode = iota
	omAlphanumeric
	omByte
	omKanji
	numOptimizerModes
)

func (m optimizerMode) mode() Mode {
	switch m {
	case omNumeric:
		return Numeric
	case omAlphanumeric:
		return Alphanumeric
	case omByte:
		return Byte
	case omKanji:
		return Kanji
	default:
		panic("unknown optimizer mode")
	}
}

// runeCost returns the cost, in sixths of a bit, of encoding r in mode m, or
// infeasible if m cannot represent r at all.
func runeCost(m optimizerMode, r rune) int {
	switch m {
	case omNumeric:
		if r >= '0' && r <= '9' {
			return costNumeric
		}
	case omAlphanumeric:
		if strings.ContainsRune(alphanumericCharset, r) {
			return costAlphanumeric
		}
	case omByte:
		return costBytePerByte * utf8.RuneLen(r)
	case omKanji:
		if _, ok := kanjiRuneCodeword(r); ok {
			return costKanji
		}
	}
	return infeasible
}

// kanjiRuneCodeword reports the 13-bit QR kanji codeword for a single rune,
// if it transcodes to exactly one 2-byte Shift-JIS sequence in an accepted
// range.
func kanjiRuneCodeword(r rune) (int, bool) {
	sjis, err := shiftJIS(string(r))
	if err != nil || len(sjis) != 2 {
		return 0, false
	}
	return kanjiCodeword(sjis[0], sjis[1])
}

// roundUpToBit rounds a cost in sixths of a bit up to the next whole bit
// (a multiple of 6) — the rounding spec §4.5 requires before a mode switch.
func roundUpToBit(cost int) int {
	return (cost + 5) / 6 * 6
}

// headerCost returns the cost, in sixths of a bit, of the 4-bit mode
// indicator plus m's character-count field at version.
func headerCost(m Mode, version Version) int {
	return (4 + int(m.numCharCountBits(version))) * 6
}

// MakeOptimizedSegments splits text into the mode sequence with the fewest
// total bits at the given version (component C5), via the dynamic program
// described in spec §4.5: state is the minimum cost of encoding a prefix
// ending in each mode, transitions either continue the current mode or pay
// a rounded-up header cost to switch modes. Re-run this at each version
// boundary (1, 10, 27) since character-count field widths change there.
func MakeOptimizedSegments(text string, version Version) []*QRSegment {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return []*QRSegment{}
	}

	// cost[i][m]: minimum total cost of a prefix of i runes whose last
	// (possibly just-opened) segment is in mode m. parent[i][m] records how
	// that state was reached: continueSame, or the mode switched from.
	const continueSame = -1
	const fromStart = -2

	cost := make([][numOptimizerModes]int, n+1)
	parent := make([][numOptimizerModes]int, n+1)

	for m := optimizerMode(0); m < numOptimizerModes; m++ {
		cost[0][m] = infeasible
	}

	for i := 1; i <= n; i++ {
		r := runes[i-1]
		for m := optimizerMode(0); m < numOptimizerModes; m++ {
			rc := runeCost(m, r)
			if rc >= infeasible {
				cost[i][m] = infeasible
				parent[i][m] = continueSame
				continue
			}

			if i == 1 {
				cost[i][m] = headerCost(m.mode(), version) + rc
				parent[i][m] = fromStart
				continue
			}

			best := cost[i-1][m] // continue the same open segment
			bestFrom := continueSame
			for j := optimizerMode(0); j < numOptimizerModes; j++ {
				if j == m || cost[i-1][j] >= infeasible {
					continue
				}
				switched := roundUpToBit(cost[i-1][j]) + headerCost(m.mode(), version)
				if switched < best {
					best = switched
					bestFrom = int(j)
				}
			}
			cost[i][m] = best + rc
			parent[i][m] = bestFrom
		}
	}

	bestMode := optimizerMode(0)
	for m := optimizerMode(1); m < numOptimizerModes; m++ {
		if cost[n][m] < cost[n][bestMode] {
			bestMode = m
		}
	}

	// Trace back, coalescing consecutive same-mode runs into one segment
	// each, then reverse to get left-to-right order.
	type run struct {
		mode       optimizerMode
		start, end int // [start, end) in runes
	}
	var runsRev []run
	end := n
	m := bestMode
	for i := n; i >= 1; {
		p := parent[i][m]
		if p == continueSame {
			i--
			continue
		}
		runsRev = append(runsRev, run{mode: m, start: i - 1, end: end})
		if p == fromStart {
			break
		}
		end = i - 1
		m = optimizerMode(p)
		i--
	}

	segs := make([]*QRSegment, 0, len(runsRev))
	for k := len(runsRev) - 1; k >= 0; k-- {
		r := runsRev[k]
		chunk := string(runes[r.start:r.end])
		switch r.mode {
		case omNumeric:
			segs = append(segs, MakeNumeric(chunk))
		case omAlphanumeric:
			segs = append(segs, MakeAlphanumeric(chunk))
		case omByte:
			segs = append(segs, MakeBytes([]byte(chunk)))
		case omKanji:
			seg, ok := makeKanjiIfPossible(chunk)
			if !ok {
				panic("optimizer chose an unencodable kanji run")
			}
			segs = append(segs, seg)
		}
	}
	return segs
}
