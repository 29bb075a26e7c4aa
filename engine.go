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
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/sourcegraph/log"
	"go.opentelemetry.io/otel"
	"go.uber.org/atomic"
)

var tracer = otel.Tracer("github.com/sourcegraph/fuzztype")

// SearchResult is one item's outcome from Engine.Search, sorted by Score
// descending and SortKey ascending.
type SearchResult struct {
	Record    any
	Score     float64
	SortKey   string
	ItemScore ItemScore

	// rec pins the exact IndexedRecord this result came from, so
	// Highlight never has to re-identify it by comparing Record values
	// (which may be maps, and so not comparable with ==).
	rec *IndexedRecord
}

// Engine is the synchronous orchestrator around the matching kernel: it
// owns the current set of indexed records, applies the inclusion
// thresholds and output limit, and produces sorted results. An Engine is
// safe for concurrent Search calls; Install replaces the record set
// atomically so an in-flight Search always sees a consistent snapshot.
type Engine struct {
	opts   Options
	paths  []FieldPath
	logger log.Logger

	records atomic.Pointer[[]*IndexedRecord]
}

// NewEngine constructs an Engine. paths are the field-path patterns used
// to flatten each installed record into its per-field token lists.
func NewEngine(opts Options, paths []FieldPath) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		opts:   opts,
		paths:  paths,
		logger: log.Scoped("fuzztype", "approximate search engine"),
	}
	empty := []*IndexedRecord{}
	e.records.Store(&empty)
	return e, nil
}

// Install replaces the engine's entire record set, invalidating and
// rebuilding it from scratch. Each record is normalized, tokenized per
// field, and given a sort key, the text of the first field path, for use
// as the ranking tie-break.
func (e *Engine) Install(records []any) {
	indexed := make([]*IndexedRecord, 0, len(records))
	for _, rec := range records {
		fields := make([][]Token, len(e.paths))
		var sortKey string
		for i, p := range e.paths {
			text := ExtractFieldText(rec, p)
			fields[i] = Tokenize(Normalize(text), e.opts.TokenFieldMinLength, e.opts.TokenFieldMaxLength)
			if i == 0 {
				sortKey = text
			}
		}
		indexed = append(indexed, &IndexedRecord{Record: rec, Fields: fields, SortKey: sortKey})
	}
	e.records.Store(&indexed)
	e.logger.Info("installed records", log.Int("count", len(indexed)))
}

// Search runs raw through the kernel against every installed record and
// returns the matches above the inclusion threshold, sorted best first.
// The relative-to-best threshold rises as better items are found, so the
// effective cutoff tightens over the course of one scan.
func (e *Engine) Search(ctx context.Context, raw string) ([]SearchResult, error) {
	start := time.Now()
	searchID := xid.New().String()

	ctx, span := tracer.Start(ctx, "Engine.Search")
	defer span.End()

	logger := e.logger.With(log.String("searchID", searchID), log.String("query", raw))
	logger.Debug("search starting")

	q := NewQuery(raw, e.opts)
	records := *e.records.Load()

	var results []SearchResult
	best := 0.0

	for _, rec := range records {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		searchItemsScanned.Inc()
		itemScore := ScoreItem(q, rec, e.opts)
		thresh := e.opts.ThreshInclude
		if rel := best * e.opts.ThreshRelativeToBest; rel > thresh {
			thresh = rel
		}
		if itemScore.Score <= thresh {
			continue
		}
		if itemScore.Score > best {
			best = itemScore.Score
		}
		results = append(results, SearchResult{
			Record:    rec.Record,
			Score:     roundScore(itemScore.Score, e.opts.ScoreRound),
			SortKey:   rec.SortKey,
			ItemScore: itemScore,
			rec:       rec,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return strings.Compare(results[i].SortKey, results[j].SortKey) < 0
	})

	if e.opts.OutputLimit > 0 && len(results) > e.opts.OutputLimit {
		results = results[:e.opts.OutputLimit]
	}

	searchLatencySeconds.Observe(time.Since(start).Seconds())
	searchResultsReturned.Observe(float64(len(results)))
	logger.Debug("search finished", log.Int("results", len(results)), log.Duration("duration", time.Since(start)))

	return results, nil
}

// Highlight re-runs the local aligner between the query and the matched
// field's text of result, returning the ranges to mark. It is
// deliberately not computed during Search: alignment is only useful for
// the items actually rendered to a user, not every scanned item.
func (e *Engine) Highlight(result SearchResult, raw string) []AlignRange {
	idx := result.ItemScore.MatchedField
	if idx < 0 || result.rec == nil || idx >= len(result.rec.Fields) {
		return nil
	}
	field := joinTokens(result.rec.Fields[idx])
	query := Token([]rune(Normalize(raw)))
	return Align(query, field, DefaultAlignOptions())
}

func roundScore(score, quantum float64) float64 {
	if quantum <= 0 {
		return score
	}
	return float64(int64(score/quantum+0.5)) * quantum
}
