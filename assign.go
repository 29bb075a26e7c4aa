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

// assignFlipThreshold bounds the recursion depth of the DFS solver: when
// rows outnumber columns by more than this, rows and columns are
// swapped before solving.
const assignFlipThreshold = 3

// Assignment is the result of the token assignment solver: Columns[i] is
// the field-token index matched to query-token row i, or -1 if row i was
// left unmatched. Score is the sum of the matched cells.
type Assignment struct {
	Columns []int
	Score   float64
}

// SolveAssignment finds the best one-to-one matching between the rows
// and columns of scores under per-row thresholds thresh, maximizing the
// sum of matched cells. Columns at index >= W are ignored: extras beyond
// the host word width are dropped in input order, not considered at all.
func SolveAssignment(scores [][]float64, thresh []float64) Assignment {
	m := len(scores)
	if m == 0 {
		return Assignment{}
	}
	n := 0
	for _, row := range scores {
		if len(row) > n {
			n = len(row)
		}
	}
	if n > W {
		n = W
	}

	origM := m
	flipped := false
	if m-n > assignFlipThreshold {
		scores, thresh = transposeScores(scores, thresh, m, n)
		m, n = n, m
		flipped = true
	}

	qualifyingRows := 0
	lastQualifyingRow := -1
	anyQualifies := false
	for i := 0; i < m; i++ {
		for j := 0; j < n && j < len(scores[i]); j++ {
			if scores[i][j] >= thresh[i] {
				qualifyingRows++
				lastQualifyingRow = i
				anyQualifies = true
				break
			}
		}
	}
	if !anyQualifies {
		return emptyAssignment(origM)
	}
	if qualifyingRows == 1 {
		cols := make([]int, m)
		for i := range cols {
			cols[i] = -1
		}
		best, bestScore := -1, 0.0
		for j := 0; j < n && j < len(scores[lastQualifyingRow]); j++ {
			if scores[lastQualifyingRow][j] >= thresh[lastQualifyingRow] && scores[lastQualifyingRow][j] > bestScore {
				best, bestScore = j, scores[lastQualifyingRow][j]
			}
		}
		cols[lastQualifyingRow] = best
		a := Assignment{Columns: cols, Score: bestScore}
		if flipped {
			a = flipAssignment(a, m, n)
		}
		return a
	}

	solver := &assignSolver{scores: scores, thresh: thresh, m: m, n: n, memo: map[assignKey]assignResult{}}
	res := solver.solve(0, 0)
	assignRecursionDepth.Set(float64(solver.maxRow))

	cols := make([]int, m)
	used := 0
	for i := 0; i < m; i++ {
		key := assignKey{i, used}
		r, ok := solver.memo[key]
		if !ok {
			cols[i] = -1
			continue
		}
		cols[i] = r.choice
		if r.choice >= 0 {
			used |= 1 << uint(r.choice)
		}
	}

	a := Assignment{Columns: cols, Score: res.score}
	if flipped {
		a = flipAssignment(a, m, n)
	}
	return a
}

type assignKey struct {
	row  int
	used int
}

type assignResult struct {
	score  float64
	choice int
}

type assignSolver struct {
	scores [][]float64
	thresh []float64
	m, n   int
	memo   map[assignKey]assignResult
	maxRow int
}

func (s *assignSolver) solve(row, used int) assignResult {
	if row > s.maxRow {
		s.maxRow = row
	}
	if row == s.m {
		return assignResult{0, -1}
	}
	key := assignKey{row, used}
	if r, ok := s.memo[key]; ok {
		return r
	}

	best := assignResult{score: -1, choice: -1}
	// The -1 branch: leave this row unmatched.
	rest := s.solve(row+1, used)
	if rest.score >= best.score {
		best = assignResult{score: rest.score, choice: -1}
	}

	row_ := s.scores[row]
	for j := 0; j < s.n && j < len(row_); j++ {
		if used&(1<<uint(j)) != 0 {
			continue
		}
		if row_[j] < s.thresh[row] {
			continue
		}
		sub := s.solve(row+1, used|(1<<uint(j)))
		total := row_[j] + sub.score
		if total > best.score {
			best = assignResult{score: total, choice: j}
		}
	}

	s.memo[key] = best
	return best
}

func emptyAssignment(m int) Assignment {
	cols := make([]int, m)
	for i := range cols {
		cols[i] = -1
	}
	return Assignment{Columns: cols, Score: 0}
}

func transposeScores(scores [][]float64, thresh []float64, m, n int) ([][]float64, []float64) {
	t := make([][]float64, n)
	for j := 0; j < n; j++ {
		t[j] = make([]float64, m)
		for i := 0; i < m; i++ {
			if j < len(scores[i]) {
				t[j][i] = scores[i][j]
			}
		}
	}
	// A flipped solve has no natural per-row threshold for the former
	// columns; fall back to the global minimum of the original
	// thresholds so a flipped solve never rejects a pair the unflipped
	// solve would have accepted. It may accept a pair that a higher
	// per-row threshold would have rejected.
	minThresh := thresh[0]
	for _, th := range thresh {
		if th < minThresh {
			minThresh = th
		}
	}
	newThresh := make([]float64, n)
	for j := range newThresh {
		newThresh[j] = minThresh
	}
	return t, newThresh
}

// flipAssignment converts a solution computed on the transposed matrix
// (solved with n rows, m columns) back into a length-m row->column
// mapping.
func flipAssignment(a Assignment, n, m int) Assignment {
	cols := make([]int, m)
	for i := range cols {
		cols[i] = -1
	}
	for j, i := range a.Columns {
		if i >= 0 && i < m {
			cols[i] = j
		}
	}
	return Assignment{Columns: cols, Score: a.Score}
}
