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

import "math/bits"

// ScorePacked evaluates every token in a packed group against one field
// token in a single bit-parallel sweep, returning one score per packed
// token in the same order as pack.Tokens. The result is identical, lane
// by lane, to calling ScoreToken on each (query, field) pair in
// isolation; the sweep only amortizes the shared scan over the field
// token's characters.
func ScorePacked(pack PackInfo, field Token, opts Options) []float64 {
	n := len(field)
	scores := make([]float64, len(pack.Tokens))
	if n == 0 {
		return scores
	}

	S := ^BitMask(0)
	for j := 0; j < n; j++ {
		U := S & pack.Alphabet.Mask(field[j])
		S = ((S & pack.Gate) + (U & pack.Gate)) | (S - U)
	}
	S = ^S

	for k, tok := range pack.Tokens {
		m := len(tok)
		off := pack.Offsets[k]

		if float64(n) < opts.TokenMinRelSize*float64(m) || float64(n) > opts.TokenMaxRelSize*float64(m) {
			continue
		}

		sz := (float64(m) + float64(n)) / (2 * float64(m) * float64(n))
		p := commonPrefixLen(tok, field)
		if shorter := minInt(m, n); p == shorter {
			scores[k] = sz*float64(p*p) + opts.BonusMatchStart*float64(p)
			continue
		}

		lane := (S >> uint(off)) & (BitMask(1)<<uint(m) - 1)
		lane &^= BitMask(1)<<uint(p) - 1
		llcs := p + bits.OnesCount32(lane)
		scores[k] = sz*float64(llcs*llcs) + opts.BonusMatchStart*float64(p)
	}
	return scores
}
