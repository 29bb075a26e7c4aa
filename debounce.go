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
	"time"

	"golang.org/x/sync/singleflight"
)

// Debouncer adapts Engine.Search for an interactive, type-ahead caller:
// it waits out a short quiet period after each keystroke before actually
// searching, and while a search is in flight it never cancels it — a
// second call for the same query instead joins the in-flight one.
type Debouncer struct {
	engine *Engine
	delay  time.Duration
	group  singleflight.Group
}

// NewDebouncer wraps engine with a quiet-period debounce of delay.
func NewDebouncer(engine *Engine, delay time.Duration) *Debouncer {
	return &Debouncer{engine: engine, delay: delay}
}

// Search waits for the quiet period, then runs (or joins) a search for
// query. Each call waits out its own delay; a later call neither restarts
// nor cancels an earlier call's wait. A call for the same raw query
// string that finishes its wait while a search for that string is in
// flight joins it instead of starting another kernel run. The Debouncer
// never cancels an in-flight search; it stops early only when the
// context of the call that started it is done.
func (d *Debouncer) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	v, err, shared := d.group.Do(query, func() (any, error) {
		return d.engine.Search(ctx, query)
	})
	if shared {
		debounceCoalesced.Inc()
	}
	if err != nil {
		return nil, err
	}
	return v.([]SearchResult), nil
}
