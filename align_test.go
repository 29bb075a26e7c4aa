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

import "testing"

func TestAlignExactMatch(t *testing.T) {
	opts := DefaultAlignOptions()
	ranges := Align(Token("cat"), Token("cat"), opts)
	if len(ranges) != 1 {
		t.Fatalf("got %d ranges, want 1: %v", len(ranges), ranges)
	}
	if ranges[0].Start != 0 || ranges[0].End != 3 {
		t.Errorf("range = %+v, want {0 3}", ranges[0])
	}
}

func TestAlignSubstring(t *testing.T) {
	opts := DefaultAlignOptions()
	ranges := Align(Token("cat"), Token("concatenate"), opts)
	if len(ranges) == 0 {
		t.Fatal("expected at least one range for a clear substring match")
	}
	found := false
	for _, r := range ranges {
		if r.Start <= 3 && r.End >= 6 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a range covering 'cat' at [3,6), got %v", ranges)
	}
}

func TestAlignNoMatch(t *testing.T) {
	opts := DefaultAlignOptions()
	ranges := Align(Token("xyz"), Token("abcdef"), opts)
	if len(ranges) != 0 {
		t.Errorf("got %v, want no ranges for disjoint alphabets", ranges)
	}
}

func TestAlignEmptyInputs(t *testing.T) {
	opts := DefaultAlignOptions()
	if got := Align(nil, Token("abc"), opts); got != nil {
		t.Errorf("Align(nil, ...) = %v, want nil", got)
	}
	if got := Align(Token("abc"), nil, opts); got != nil {
		t.Errorf("Align(..., nil) = %v, want nil", got)
	}
}

func TestAlignBridgesSmallGap(t *testing.T) {
	opts := DefaultAlignOptions()
	opts.BridgeGap = 1
	// "ab" then a 1-char gap then "cd" in the field should merge into one range.
	ranges := Align(Token("abcd"), Token("abXcd"), opts)
	if len(ranges) != 1 {
		t.Fatalf("got %d ranges, want 1 bridged range: %v", len(ranges), ranges)
	}
}

func TestAlignRangesAreLeftToRight(t *testing.T) {
	opts := DefaultAlignOptions()
	opts.BridgeGap = 0
	ranges := Align(Token("abcd"), Token("ab__cd"), opts)
	for i := 1; i < len(ranges); i++ {
		if ranges[i].Start < ranges[i-1].End {
			t.Fatalf("ranges not in left-to-right, non-overlapping order: %v", ranges)
		}
	}
}
