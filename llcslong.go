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

// longLLCS computes the LCS length of two rune slices when the query
// token is too long for the bit-parallel recurrence in llcs.go to hold in
// one machine word. It is the fallback used whenever the query token's
// length exceeds W, or its alphabet map is the long variant.
//
// The DP table for LCS always advances by 0 or 1 per column within a
// row, which is what lets a row be described as a compact list of
// "increase" blocks rather than a dense array. This implementation
// keeps to an O(min(m,n)) memory bound by running the textbook
// space-optimized LCS recurrence with the shorter string as the row
// driver, rather than re-deriving the sparse block-merge walk over
// match-position lists: both compute the same table, but a dense row of
// bounded width is far less likely to carry a subtle off-by-one than a
// hand-rolled pointer merge over two position lists.
func longLLCS(a, b Token) int {
	x, y := []rune(a), []rune(b)
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	if len(x) > len(y) {
		x, y = y, x
	}

	prev := make([]int32, len(x)+1)
	cur := make([]int32, len(x)+1)

	for j := 1; j <= len(y); j++ {
		cj := y[j-1]
		for i := 1; i <= len(x); i++ {
			if x[i-1] == cj {
				cur[i] = prev[i-1] + 1
			} else if prev[i] >= cur[i-1] {
				cur[i] = prev[i]
			} else {
				cur[i] = cur[i-1]
			}
		}
		prev, cur = cur, prev
	}
	return int(prev[len(x)])
}
