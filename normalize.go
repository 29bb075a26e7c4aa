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
	"strings"

	"github.com/grafana/regexp"
)

// whitespaceRun collapses any run of ASCII whitespace (\s, which is
// [\t\n\f\r ] in RE2 syntax) to a single space. Built with grafana/regexp, a drop-in replacement for the
// standard library's regexp package.
var whitespaceRun = regexp.MustCompile(`\s+`)

// diacriticFold is the process-wide, read-only fold table for common
// Latin-1 accented characters. It is intentionally small: the kernel is
// not a general Unicode normalizer, only a fixed fold for the accented
// Latin letters an autocomplete query is likely to contain.
var diacriticFold = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ñ': 'n',
	'ç': 'c',
	'æ': 'a',
	'œ': 'o',
	'ß': 's',
}

// Normalize lowercases s, folds known diacritics, and collapses any run
// of whitespace to a single space. It is idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if folded, ok := diacriticFold[r]; ok {
			r = folded
		}
		b.WriteRune(r)
	}
	folded := whitespaceRun.ReplaceAllString(b.String(), " ")
	return strings.TrimSpace(folded)
}

// Tokenize splits a normalized string on the single-space boundary and
// filters tokens outside [minLen, maxLen], truncating overlong tokens to
// maxLen rather than dropping them.
func Tokenize(normalized string, minLen, maxLen int) []Token {
	if normalized == "" {
		return nil
	}
	fields := strings.Split(normalized, " ")
	out := make([]Token, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		runes := []rune(f)
		if len(runes) > maxLen {
			runes = runes[:maxLen]
		}
		if len(runes) < minLen {
			continue
		}
		out = append(out, Token(runes))
	}
	return out
}
