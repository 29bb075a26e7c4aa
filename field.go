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

// ScoreField combines the per-token and packed scorers across every
// token of one field. itemBestPerLane is the item-level per-lane
// accumulator: it is maintained by the caller across every field of the
// item and updated here, lane by lane, with the larger of its current
// value and this field's best score for that lane.
//
// The returned score is the in-order-bonused token sum, maximized
// against a fused whole-query-vs-whole-field score when
// opts.ScoreTestFused is set (or used exclusively when opts.ScorePerToken
// is false).
func ScoreField(q *Query, fieldTokens []Token, itemBestPerLane []float64, opts Options) float64 {
	if !opts.ScorePerToken {
		fused := scoreFused(q, fieldTokens, opts)
		return fused
	}

	var tokenSum float64
	lastIndex := -1

	for _, g := range q.Groups {
		if len(fieldTokens) == 0 {
			continue
		}
		bestScore := make([]float64, len(g.Tokens))
		bestIndex := make([]int, len(g.Tokens))
		for i := range bestIndex {
			bestIndex[i] = -1
		}

		for fi, ft := range fieldTokens {
			var scores []float64
			if len(g.Tokens) == 1 {
				scores = []float64{ScoreToken(g.Tokens[0], ft, g.Alphabet, opts)}
			} else {
				scores = ScorePacked(g, ft, opts)
			}
			for k, s := range scores {
				if s > bestScore[k] {
					bestScore[k] = s
					bestIndex[k] = fi
				}
			}
		}

		for k, s := range bestScore {
			globalIdx := g.GlobalOffset + k
			if s > itemBestPerLane[globalIdx] {
				itemBestPerLane[globalIdx] = s
			}
			tokenSum += s
			if s > opts.MinimumMatch && bestIndex[k] > lastIndex {
				tokenSum += opts.BonusTokenOrder
				lastIndex = bestIndex[k]
			}
		}
	}

	score := tokenSum
	if opts.ScoreTestFused {
		if fused := scoreFused(q, fieldTokens, opts); fused > score {
			score = fused
		}
	}
	return score
}

func scoreFused(q *Query, fieldTokens []Token, opts Options) float64 {
	joined := joinTokens(fieldTokens)
	fused := ScoreToken(q.Fused, joined, q.FusedMap, opts)
	if fused > q.fusedScore {
		q.fusedScore = fused
	}
	return fused
}
