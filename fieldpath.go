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
	"sort"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// FieldPath is a compiled dotted field-path pattern, e.g. "name",
// "addresses.*.city". A "*" segment matches any map key or any array
// index.
type FieldPath struct {
	raw     string
	glob    glob.Glob
	literal bool
}

// CompileFieldPath compiles a dotted path pattern. Segments are joined
// with "/" for the underlying glob so a literal "." inside a key cannot
// be confused with the path separator.
func CompileFieldPath(pattern string) (FieldPath, error) {
	if pattern == "" {
		return FieldPath{}, errors.New("fieldpath: empty pattern")
	}
	joined := strings.ReplaceAll(pattern, ".", "/")
	g, err := glob.Compile(joined, '/')
	if err != nil {
		return FieldPath{}, errors.Wrapf(err, "fieldpath: compiling %q", pattern)
	}
	return FieldPath{raw: pattern, glob: g, literal: !strings.Contains(pattern, "*")}, nil
}

// String returns the original dotted pattern.
func (p FieldPath) String() string { return p.raw }

// Extract walks record and returns every leaf value whose path matches p,
// in a stable traversal order (map keys sorted, array indices ascending).
// Leaves are values that are not themselves map[string]any or []any.
func (p FieldPath) Extract(record any) []any {
	var out []any
	walkFieldPath(record, nil, p, &out)
	return out
}

func walkFieldPath(v any, segments []string, p FieldPath, out *[]any) {
	switch node := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walkFieldPath(node[k], append(segments, k), p, out)
		}
	case []any:
		for i, elem := range node {
			walkFieldPath(elem, append(segments, strconv.Itoa(i)), p, out)
		}
	default:
		if p.glob.Match(strings.Join(segments, "/")) {
			*out = append(*out, v)
		}
	}
}

// ExtractFieldText extracts every leaf under path and joins the string
// leaves into one text blob, separated by a space, so a wildcard path
// still contributes one field's worth of tokens. Leaves that are not
// strings (numbers, booleans, nil) are skipped.
func ExtractFieldText(record any, path FieldPath) string {
	leaves := path.Extract(record)
	if len(leaves) == 0 {
		return ""
	}
	parts := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		if s, ok := leaf.(string); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
