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

import "github.com/bits-and-blooms/bitset"

// IndexedRecord is an original record plus its pre-normalized,
// pre-split per-field token lists. Field order is the declared order
// used for position decay in ScoreItem.
type IndexedRecord struct {
	Record  any
	Fields  [][]Token
	SortKey string
}

// ItemScore is the result of aggregating one item's fields.
type ItemScore struct {
	Score        float64
	MatchedField int

	// Coverage marks which query-token lanes (in the query's flattened
	// token order) were matched by any field of this item above 0. It
	// is a diagnostic, not used in ranking; sized to the query's total
	// token count, which can exceed one machine word for large queries,
	// hence a real bitset rather than a BitMask.
	Coverage *bitset.BitSet
}

// ScoreItem combines field scores across an item's fields with position
// decay, mixes in the best-per-lane query score, and applies the
// field-good-enough early exit.
func ScoreItem(q *Query, rec *IndexedRecord, opts Options) ItemScore {
	q.resetItemState()

	total := q.TotalTokens()
	itemBestPerLane := make([]float64, total)

	itemScore := 0.0
	positionBonus := 1.0
	matchedField := -1

	for idx, fieldTokens := range rec.Fields {
		fieldScore := ScoreField(q, fieldTokens, itemBestPerLane, opts)
		boosted := fieldScore * (1 + positionBonus)
		positionBonus *= opts.BonusPositionDecay

		if boosted > itemScore {
			itemScore = boosted
			matchedField = idx
		}
		if boosted > opts.FieldGoodEnough {
			break
		}
	}

	coverage := bitset.New(uint(total))
	for i, v := range itemBestPerLane {
		if v > 0 {
			coverage.Set(uint(i))
		}
	}

	if len(q.Tokens) > 1 {
		querySum := 0.0
		for _, v := range itemBestPerLane {
			querySum += v
		}
		queryScore := querySum
		if q.fusedScore > queryScore {
			queryScore = q.fusedScore
		}
		itemScore = 0.5*itemScore + 0.5*queryScore
	}

	return ItemScore{Score: itemScore, MatchedField: matchedField, Coverage: coverage}
}
