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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchLatencySeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fuzztype_search_duration_seconds",
		Help:    "Wall-clock latency of Engine.Search, end to end.",
		Buckets: prometheus.DefBuckets,
	})

	searchResultsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fuzztype_search_results_returned",
		Help:    "Number of results a single Search call returned, after the output limit.",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})

	searchItemsScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fuzztype_search_items_scanned_total",
		Help: "Total items passed through ScoreItem across all searches.",
	})

	assignRecursionDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fuzztype_assign_recursion_depth",
		Help: "Deepest row index reached by the most recent assignment-solver DFS.",
	})

	debounceCoalesced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fuzztype_debounce_coalesced_total",
		Help: "Interactive search calls that were coalesced into an in-flight call instead of starting a new one.",
	})
)
