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
	"math/rand"
	"testing"
)

func TestSolveAssignmentSimple(t *testing.T) {
	scores := [][]float64{
		{5, 0},
		{0, 3},
	}
	thresh := []float64{1, 1}
	got := SolveAssignment(scores, thresh)
	if got.Columns[0] != 0 || got.Columns[1] != 1 {
		t.Fatalf("Columns = %v, want [0 1]", got.Columns)
	}
	if got.Score != 8 {
		t.Fatalf("Score = %v, want 8", got.Score)
	}
}

func TestSolveAssignmentBelowThreshold(t *testing.T) {
	scores := [][]float64{{0.5}}
	thresh := []float64{1}
	got := SolveAssignment(scores, thresh)
	if got.Columns[0] != -1 {
		t.Fatalf("Columns = %v, want [-1]", got.Columns)
	}
	if got.Score != 0 {
		t.Fatalf("Score = %v, want 0", got.Score)
	}
}

func TestSolveAssignmentEmpty(t *testing.T) {
	got := SolveAssignment(nil, nil)
	if len(got.Columns) != 0 || got.Score != 0 {
		t.Fatalf("SolveAssignment(nil, nil) = %+v, want zero value", got)
	}
}

func TestSolveAssignmentPrefersBetterTotal(t *testing.T) {
	// Row 0 best matches col 0, but taking col 1 instead frees up col 0
	// for row 1, which scores far higher there than anywhere else.
	scores := [][]float64{
		{10, 9},
		{8, 1},
	}
	thresh := []float64{0, 0}
	got := SolveAssignment(scores, thresh)
	// Optimal: row0->col1 (9), row1->col0 (8) = 17, beats row0->col0(10)+row1->col1(1)=11
	if got.Score != 17 {
		t.Fatalf("Score = %v, want 17 (optimal assignment), Columns = %v", got.Score, got.Columns)
	}
}

// TestSolveAssignmentOptimalVsBruteForce checks that for small instances
// the DFS solver finds the same optimum as an exhaustive brute-force
// search over every partial matching.
func TestSolveAssignmentOptimalVsBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		// Kept within assignFlipThreshold of each other so the solver
		// never takes the row/column transpose path, which substitutes a
		// single global threshold for the per-row ones and so is not
		// comparable to this per-row-threshold brute force.
		m := 1 + rng.Intn(4)
		n := 1 + rng.Intn(4)
		scores := make([][]float64, m)
		thresh := make([]float64, m)
		for i := range scores {
			scores[i] = make([]float64, n)
			for j := range scores[i] {
				scores[i][j] = float64(rng.Intn(10))
			}
			thresh[i] = float64(rng.Intn(4))
		}

		got := SolveAssignment(scores, thresh)
		want := bruteForceAssignment(scores, thresh)
		if got.Score != want {
			t.Fatalf("trial %d: m=%d n=%d scores=%v thresh=%v: SolveAssignment score=%v, brute force=%v",
				trial, m, n, scores, thresh, got.Score, want)
		}
	}
}

func bruteForceAssignment(scores [][]float64, thresh []float64) float64 {
	m := len(scores)
	n := 0
	for _, row := range scores {
		if len(row) > n {
			n = len(row)
		}
	}
	best := 0.0
	var rec func(row int, used int, total float64)
	rec = func(row int, used int, total float64) {
		if row == m {
			if total > best {
				best = total
			}
			return
		}
		rec(row+1, used, total)
		for j := 0; j < n; j++ {
			if used&(1<<uint(j)) != 0 {
				continue
			}
			if scores[row][j] < thresh[row] {
				continue
			}
			rec(row+1, used|(1<<uint(j)), total+scores[row][j])
		}
	}
	rec(0, 0, 0)
	return best
}
