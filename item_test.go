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

import (
	"math"
	"testing"
)

func tokenizeField(s string, opts Options) []Token {
	return Tokenize(Normalize(s), opts.TokenFieldMinLength, opts.TokenFieldMaxLength)
}

func TestScoreItemPicksBestField(t *testing.T) {
	opts := DefaultOptions()
	q := NewQuery("golang", opts)
	rec := &IndexedRecord{
		Fields: [][]Token{
			tokenizeField("unrelated text here", opts),
			tokenizeField("the golang programming language", opts),
		},
		SortKey: "b",
	}
	got := ScoreItem(q, rec, opts)
	if got.MatchedField != 1 {
		t.Fatalf("MatchedField = %d, want 1", got.MatchedField)
	}
	if got.Score <= 0 {
		t.Fatalf("Score = %v, want > 0", got.Score)
	}
}

func TestScoreItemNoMatch(t *testing.T) {
	opts := DefaultOptions()
	q := NewQuery("zzzzzzzzzz", opts)
	rec := &IndexedRecord{
		Fields:  [][]Token{tokenizeField("completely different", opts)},
		SortKey: "a",
	}
	got := ScoreItem(q, rec, opts)
	if got.MatchedField != -1 {
		t.Errorf("MatchedField = %d, want -1 for no match above 0", got.MatchedField)
	}
}

func TestScoreItemFieldGoodEnoughEarlyExit(t *testing.T) {
	opts := DefaultOptions()
	opts.FieldGoodEnough = 0.01 // trivially satisfied by the first field
	q := NewQuery("exactmatch", opts)
	rec := &IndexedRecord{
		Fields: [][]Token{
			tokenizeField("exactmatch", opts),
			tokenizeField("exactmatch", opts), // would also match, but should never be reached
		},
		SortKey: "a",
	}
	got := ScoreItem(q, rec, opts)
	if got.MatchedField != 0 {
		t.Errorf("MatchedField = %d, want 0 (early exit on first field)", got.MatchedField)
	}
}

func TestScoreItemCoverageBitset(t *testing.T) {
	opts := DefaultOptions()
	// "kiwi" shares no rune with "alpha" or "only", so its lane scores 0;
	// any shared rune would give it a small positive score and count it.
	q := NewQuery("alpha kiwi", opts)
	rec := &IndexedRecord{
		Fields:  [][]Token{tokenizeField("alpha only", opts)},
		SortKey: "a",
	}
	got := ScoreItem(q, rec, opts)
	if got.Coverage.Count() == 0 {
		t.Error("expected at least one covered lane for a partial match")
	}
	if got.Coverage.Count() == uint(q.TotalTokens()) {
		t.Error("expected not every lane to be covered when only one query token matches")
	}
}

func TestScoreItemMultiTokenBlendsQueryScore(t *testing.T) {
	opts := DefaultOptions()
	q := NewQuery("one two", opts)
	rec := &IndexedRecord{
		Fields:  [][]Token{tokenizeField("one two", opts)},
		SortKey: "a",
	}
	single := NewQuery("one", opts)
	singleRec := &IndexedRecord{
		Fields:  [][]Token{tokenizeField("one", opts)},
		SortKey: "a",
	}
	multi := ScoreItem(q, rec, opts)
	solo := ScoreItem(single, singleRec, opts)
	if multi.Score <= 0 || solo.Score <= 0 {
		t.Fatalf("expected both scores > 0, got multi=%v solo=%v", multi.Score, solo.Score)
	}

	// With one field, the unblended item score is that field's score
	// boosted by (1 + 1); the multi-token item score is its 50/50 mix with
	// the sum of the per-lane bests.
	lanes := make([]float64, q.TotalTokens())
	boosted := ScoreField(q, rec.Fields[0], lanes, opts) * 2
	querySum := 0.0
	for _, v := range lanes {
		querySum += v
	}
	if want := 0.5*boosted + 0.5*querySum; math.Abs(multi.Score-want) > 1e-9 {
		t.Errorf("multi-token Score = %v, want blended %v", multi.Score, want)
	}
}
