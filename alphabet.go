// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fuzztype

import "math"

// longSentinel terminates every position list in a long AlphabetMap. It
// compares greater than any real position so boundary scans in the
// long-token LLCS never need a separate end-of-list check.
const longSentinel = math.MaxInt32

// AlphabetMap is a tagged short/long variant: a per-character bitmask
// for tokens of length <= W, or a per-character sorted position list
// (sentinel-terminated) for longer tokens. The constructors below build
// one per token; PackTokens also builds the combined short variant of a
// packed group. The tag is the Long field.
type AlphabetMap struct {
	Long bool

	// bits holds, for a short token, one BitMask per rune with bit i set
	// when the token's i'th rune equals that key.
	bits map[rune]BitMask

	// positions holds, for a long token, the ascending list of positions
	// (terminated by longSentinel) where the token has that rune.
	positions map[rune][]int32
}

// BuildAlphabetMap dispatches on token length, producing the short
// bitmask variant for tokens of length <= W and the long position-list
// variant otherwise.
func BuildAlphabetMap(t Token) AlphabetMap {
	if len(t) <= W {
		return buildShortAlphabetMap(t)
	}
	return buildLongAlphabetMap(t)
}

func buildShortAlphabetMap(t Token) AlphabetMap {
	m := make(map[rune]BitMask, len(t))
	for i, r := range t {
		m[r] |= BitMask(1) << uint(i)
	}
	return AlphabetMap{bits: m}
}

func buildLongAlphabetMap(t Token) AlphabetMap {
	m := make(map[rune][]int32, len(t))
	for i, r := range t {
		m[r] = append(m[r], int32(i))
	}
	for r := range m {
		m[r] = append(m[r], longSentinel)
	}
	return AlphabetMap{Long: true, positions: m}
}

// Mask returns the bitmask for r in a short AlphabetMap. Unknown
// characters contribute 0 rather than signalling an error. Calling Mask
// on a long AlphabetMap always returns 0; use Positions.
func (a AlphabetMap) Mask(r rune) BitMask {
	return a.bits[r]
}

// Positions returns the sentinel-terminated ascending position list for r
// in a long AlphabetMap. Unknown characters yield a single-element list
// containing only the sentinel.
func (a AlphabetMap) Positions(r rune) []int32 {
	if p, ok := a.positions[r]; ok {
		return p
	}
	return []int32{longSentinel}
}
