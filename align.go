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

import "math"

// AlignOptions configures the local aligner.
type AlignOptions struct {
	MatchWeight float64
	GapOpen     float64
	GapExtend   float64

	// BridgeGap is the maximum number of unmatched field characters
	// between two diagonal matches that still counts as one highlighted
	// range rather than splitting into two.
	BridgeGap int
}

// DefaultAlignOptions returns reasonable highlighting weights: matches
// score positively, gaps are cheap to open and cheaper to extend, and
// adjacent matches separated by up to two unmatched characters still
// merge into one highlighted run.
func DefaultAlignOptions() AlignOptions {
	return AlignOptions{MatchWeight: 1.0, GapOpen: -0.1, GapExtend: -0.01, BridgeGap: 2}
}

// AlignRange is a half-open [Start, End) run of field-token positions to
// highlight.
type AlignRange struct {
	Start, End int
}

const (
	dirStop byte = iota
	dirUp
	dirLeft
	dirDiag
)

const negInf = math.MaxFloat64 * -1

// Align runs Smith-Waterman with affine gaps (Gotoh's algorithm) between
// query and field and returns the substring ranges of field to highlight.
// It assumes query and field are an already-chosen pairing; Align itself
// does no token assignment.
func Align(query, field Token, opts AlignOptions) []AlignRange {
	m, n := len(query), len(field)
	if m == 0 || n == 0 {
		return nil
	}

	dir := make([][]byte, m+1)
	for i := range dir {
		dir[i] = make([]byte, n+1)
	}

	hPrev := make([]float64, n+1)
	ePrev := make([]float64, n+1)
	fPrev := make([]float64, n+1)
	for j := range ePrev {
		ePrev[j] = negInf
		fPrev[j] = negInf
	}

	var vMax float64
	var iMax, jMax int

	for i := 1; i <= m; i++ {
		hCur := make([]float64, n+1)
		eCur := make([]float64, n+1)
		fCur := make([]float64, n+1)
		eCur[0] = negInf
		fCur[0] = negInf

		for j := 1; j <= n; j++ {
			f := math.Max(hPrev[j]+opts.GapOpen, fPrev[j]+opts.GapExtend)
			fCur[j] = f

			e := math.Max(hCur[j-1]+opts.GapOpen, eCur[j-1]+opts.GapExtend)
			eCur[j] = e

			diag := hPrev[j-1]
			if query[i-1] == field[j-1] {
				diag += opts.MatchWeight
			}

			best, d := 0.0, dirStop
			if diag > best {
				best, d = diag, dirDiag
			}
			if f > best {
				best, d = f, dirUp
			}
			if e > best {
				best, d = e, dirLeft
			}
			hCur[j] = best
			dir[i][j] = d

			if best > vMax {
				vMax, iMax, jMax = best, i, j
			}
		}
		hPrev, ePrev, fPrev = hCur, eCur, fCur
	}

	if vMax == 0 {
		return prefixOnlyRange(query, field, opts)
	}

	var positions []int
	i, j := iMax, jMax
	for i > 0 && j > 0 && dir[i][j] != dirStop {
		switch dir[i][j] {
		case dirDiag:
			if query[i-1] == field[j-1] {
				positions = append(positions, j-1)
			}
			i--
			j--
		case dirUp:
			i--
		case dirLeft:
			j--
		}
	}
	for l, r := 0, len(positions)-1; l < r; l, r = l+1, r-1 {
		positions[l], positions[r] = positions[r], positions[l]
	}

	ranges := mergePositions(positions, opts.BridgeGap)
	return bridgePrefix(query, field, ranges, opts.BridgeGap)
}

func mergePositions(positions []int, bridgeGap int) []AlignRange {
	var ranges []AlignRange
	for _, p := range positions {
		if len(ranges) > 0 {
			last := &ranges[len(ranges)-1]
			if p-last.End <= bridgeGap {
				last.End = p + 1
				continue
			}
		}
		ranges = append(ranges, AlignRange{Start: p, End: p + 1})
	}
	return ranges
}

func prefixOnlyRange(query, field Token, opts AlignOptions) []AlignRange {
	p := commonPrefixLen(query, field)
	if p == 0 {
		return nil
	}
	return []AlignRange{{Start: 0, End: p}}
}

// bridgePrefix enforces the common prefix as a match region: when it
// sits within BridgeGap of the first traceback match, the first range is
// extended to start at 0; otherwise the prefix becomes its own leading
// range.
func bridgePrefix(query, field Token, ranges []AlignRange, bridgeGap int) []AlignRange {
	p := commonPrefixLen(query, field)
	if p == 0 {
		return ranges
	}
	if len(ranges) > 0 && ranges[0].Start <= p+bridgeGap {
		if ranges[0].Start > 0 {
			ranges[0].Start = 0
		}
		return ranges
	}
	return append([]AlignRange{{Start: 0, End: p}}, ranges...)
}
