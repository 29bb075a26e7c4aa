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

func TestCommonPrefixLen(t *testing.T) {
	cases := []struct {
		a, b Token
		want int
	}{
		{Token("abc"), Token("abd"), 2},
		{Token("abc"), Token("abc"), 3},
		{Token(""), Token("abc"), 0},
		{Token("abc"), Token(""), 0},
		{Token("xyz"), Token("abc"), 0},
		{Token("ab"), Token("abcdef"), 2},
	}
	for _, c := range cases {
		if got := commonPrefixLen(c.a, c.b); got != c.want {
			t.Errorf("commonPrefixLen(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token("hello")
	if tok.String() != "hello" {
		t.Errorf("String() = %q, want %q", tok.String(), "hello")
	}
	if tok.Len() != 5 {
		t.Errorf("Len() = %d, want 5", tok.Len())
	}
}

func TestMinMaxInt(t *testing.T) {
	if minInt(3, 5) != 3 {
		t.Error("minInt(3, 5) != 3")
	}
	if minInt(5, 3) != 3 {
		t.Error("minInt(5, 3) != 3")
	}
	if maxInt(3, 5) != 5 {
		t.Error("maxInt(3, 5) != 5")
	}
	if maxInt(5, 3) != 5 {
		t.Error("maxInt(5, 3) != 5")
	}
}
