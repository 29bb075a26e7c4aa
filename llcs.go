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

// ScoreToken scores a single query token against a single field token.
// alphabet must be an alphabet map of query: BuildAlphabetMap(query), or
// the long variant PackTokens gives a token of exactly W runes, which
// routes scoring to the long-token path. The result is always >= 0;
// there is no error return — ill-formed or unmatching inputs map to a
// score of zero, not a fault.
func ScoreToken(query, field Token, alphabet AlphabetMap, opts Options) float64 {
	m, n := len(query), len(field)
	if m == 0 || n == 0 {
		return 0
	}

	// 1. Rel-size gate.
	if float64(n) < opts.TokenMinRelSize*float64(m) || float64(n) > opts.TokenMaxRelSize*float64(m) {
		return 0
	}

	sz := (float64(m) + float64(n)) / (2 * float64(m) * float64(n))

	// 2. Prefix.
	p := commonPrefixLen(query, field)
	if shorter := minInt(m, n); p == shorter {
		return sz*float64(p*p) + opts.BonusMatchStart*float64(p)
	}

	// 3. Long-token fallback.
	if m > W || alphabet.Long {
		llcs := p + longLLCS(query[p:], field[p:])
		return sz*float64(llcs*llcs) + opts.BonusMatchStart*float64(p)
	}

	// 4. Bit-parallel LLCS (Hyyrö 2004): S tracks, per bit/column of the
	// query token, whether that column still contributes to the running
	// LCS increment; (S+U)|(S-U) is the bit-parallel realization of the
	// DP row recurrence, with carries propagating exactly as a DP row's
	// increments propagate to later columns. The sweep covers the whole
	// field token, prefix included, so the result is the same LLCS the
	// packed sweep in packed.go and the long-token fallback compute.
	mask := BitMask(1)<<uint(m) - 1
	S := mask
	for j := 0; j < n; j++ {
		U := S & alphabet.Mask(field[j])
		S = (S + U) | (S - U)
	}
	mask &^= BitMask(1)<<uint(p) - 1
	S = ^S & mask
	llcs := p + bits.OnesCount32(S)

	return sz*float64(llcs*llcs) + opts.BonusMatchStart*float64(p)
}
