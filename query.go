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

// maxFusedLength bounds the fused query string. It is generous relative
// to TokenQueryMaxLength since it covers the whole query, not one token.
const maxFusedLength = 256

// Query holds everything prepared once per search: the tokenized and
// packed query tokens, and the fused whole-query representation used as
// a fallback or when tokenization is disabled.
//
// fusedScore is transient and reset at the start of every item's
// evaluation by ScoreItem: it tracks the best fused score seen so
// far across the fields of the item currently being scored.
type Query struct {
	Raw      string
	Fused    Token
	Tokens   []Token
	Groups   []PackInfo
	FusedMap AlphabetMap

	fusedScore float64
}

// NewQuery normalizes and tokenizes raw, builds the packed token groups,
// and prepares the fused whole-query alphabet map.
func NewQuery(raw string, opts Options) *Query {
	normalized := Normalize(raw)
	tokens := Tokenize(normalized, opts.TokenQueryMinLength, opts.TokenQueryMaxLength)
	groups := PackTokens(tokens)

	offset := 0
	for i := range groups {
		groups[i].GlobalOffset = offset
		offset += len(groups[i].Tokens)
	}

	fusedRunes := []rune(normalized)
	if len(fusedRunes) > maxFusedLength {
		fusedRunes = fusedRunes[:maxFusedLength]
	}
	fused := Token(fusedRunes)

	return &Query{
		Raw:      raw,
		Fused:    fused,
		Tokens:   tokens,
		Groups:   groups,
		FusedMap: BuildAlphabetMap(fused),
	}
}

// TotalTokens is the number of query tokens across every packed group,
// i.e. the width of the per-lane accumulator item.go maintains across a
// single item's fields.
func (q *Query) TotalTokens() int {
	n := 0
	for _, g := range q.Groups {
		n += len(g.Tokens)
	}
	return n
}

// resetItemState clears the transient fused-score accumulator before
// scoring a new item.
func (q *Query) resetItemState() {
	q.fusedScore = 0
}

func joinTokens(tokens []Token) Token {
	if len(tokens) == 0 {
		return nil
	}
	n := len(tokens) - 1
	for _, t := range tokens {
		n += len(t)
	}
	out := make(Token, 0, n)
	for i, t := range tokens {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, t...)
	}
	return out
}
