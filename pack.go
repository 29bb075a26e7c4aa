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

// PackInfo is a group of query tokens sharing one machine word. A group
// either holds one or more short tokens packed into disjoint lanes, or
// (Long == true) exactly one token too long to pack at all.
type PackInfo struct {
	Tokens  []Token
	Offsets []int

	// GlobalOffset is the index, in the owning Query's flattened token
	// order, of Tokens[0]. Set by NewQuery after packing; zero otherwise.
	GlobalOffset int

	// Alphabet is the combined map for the group: for a packed group it
	// spans disjoint bit offsets, one lane per token; for a solo long
	// group it is that token's own long AlphabetMap.
	Alphabet AlphabetMap

	// Gate has a zero bit at the top of every lane, preventing a carry
	// from the bit-parallel addition in the packed sweep from crossing
	// lane boundaries. Meaningless (left zero) for long groups.
	Gate BitMask

	Long bool
}

// PackTokens packs tokens into PackInfo groups greedily in input order,
// filling only the current group; this does not always give the fewest
// groups. A token of length >= W always gets
// its own long-token group; a token that would overflow the current
// group starts a new one.
func PackTokens(tokens []Token) []PackInfo {
	var groups []PackInfo

	var curTokens []Token
	var curOffsets []int
	curBits := map[rune]BitMask{}
	var curGate BitMask
	offset := 0

	flush := func() {
		if len(curTokens) == 0 {
			return
		}
		groups = append(groups, PackInfo{
			Tokens:   curTokens,
			Offsets:  curOffsets,
			Alphabet: AlphabetMap{bits: curBits},
			Gate:     curGate,
		})
		curTokens = nil
		curOffsets = nil
		curBits = map[rune]BitMask{}
		curGate = 0
		offset = 0
	}

	for _, tok := range tokens {
		l := len(tok)
		if l >= W {
			flush()
			groups = append(groups, PackInfo{
				Tokens:   []Token{tok},
				Offsets:  []int{0},
				Alphabet: buildLongAlphabetMap(tok),
				Long:     true,
			})
			continue
		}
		if offset+l > W {
			flush()
		}
		for i, r := range tok {
			curBits[r] |= BitMask(1) << uint(offset+i)
		}
		if l > 1 {
			curGate |= ((BitMask(1) << uint(l-1)) - 1) << uint(offset)
		}
		curTokens = append(curTokens, tok)
		curOffsets = append(curOffsets, offset)
		offset += l
	}
	flush()

	return groups
}
