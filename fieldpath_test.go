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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldPathLiteral(t *testing.T) {
	p, err := CompileFieldPath("name")
	require.NoError(t, err)

	record := map[string]any{"name": "Ada Lovelace", "age": float64(36)}
	got := p.Extract(record)
	require.Equal(t, []any{"Ada Lovelace"}, got)
}

func TestFieldPathNested(t *testing.T) {
	p, err := CompileFieldPath("address.city")
	require.NoError(t, err)

	record := map[string]any{
		"address": map[string]any{"city": "London", "zip": "EC1"},
	}
	require.Equal(t, []any{"London"}, p.Extract(record))
}

func TestFieldPathWildcardOverArray(t *testing.T) {
	p, err := CompileFieldPath("addresses.*.city")
	require.NoError(t, err)

	record := map[string]any{
		"addresses": []any{
			map[string]any{"city": "London"},
			map[string]any{"city": "Paris"},
		},
	}
	got := p.Extract(record)
	require.ElementsMatch(t, []any{"London", "Paris"}, got)
}

func TestFieldPathNoMatch(t *testing.T) {
	p, err := CompileFieldPath("missing.field")
	require.NoError(t, err)
	require.Empty(t, p.Extract(map[string]any{"name": "x"}))
}

func TestCompileFieldPathRejectsEmpty(t *testing.T) {
	_, err := CompileFieldPath("")
	require.Error(t, err)
}

func TestExtractFieldTextJoinsLeaves(t *testing.T) {
	p, err := CompileFieldPath("tags.*")
	require.NoError(t, err)
	record := map[string]any{"tags": []any{"red", "blue"}}
	got := ExtractFieldText(record, p)
	require.Equal(t, "red blue", got)
}
