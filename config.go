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
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// optionsSchema is the embedded JSON Schema a config file is validated
// against before it is even unmarshaled into Options, so a long-running
// process (cmd/fuzztype-demo) fails fast on a typo'd field name or an
// out-of-range value rather than starting up with silently-defaulted
// zero values.
const optionsSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "minimumMatch":         {"type": "number", "minimum": 0},
    "threshInclude":        {"type": "number", "minimum": 0},
    "threshRelativeToBest": {"type": "number", "minimum": 0},
    "fieldGoodEnough":      {"type": "number", "minimum": 0},
    "bonusMatchStart":      {"type": "number"},
    "bonusTokenOrder":      {"type": "number"},
    "bonusPositionDecay":   {"type": "number", "minimum": 0},
    "scorePerToken":        {"type": "boolean"},
    "scoreTestFused":       {"type": "boolean"},
    "scoreRound":           {"type": "number", "exclusiveMinimum": 0},
    "tokenQueryMinLength":  {"type": "integer", "minimum": 0},
    "tokenFieldMinLength":  {"type": "integer", "minimum": 0},
    "tokenQueryMaxLength":  {"type": "integer", "minimum": 0},
    "tokenFieldMaxLength":  {"type": "integer", "minimum": 0},
    "tokenMinRelSize":      {"type": "number", "minimum": 0},
    "tokenMaxRelSize":      {"type": "number", "minimum": 0},
    "outputLimit":          {"type": "integer", "minimum": 0}
  }
}`

// jsonOptions mirrors Options with JSON tags; a config file only needs to
// set the fields it wants to override from DefaultOptions.
type jsonOptions struct {
	MinimumMatch         *float64 `json:"minimumMatch"`
	ThreshInclude        *float64 `json:"threshInclude"`
	ThreshRelativeToBest *float64 `json:"threshRelativeToBest"`
	FieldGoodEnough      *float64 `json:"fieldGoodEnough"`
	BonusMatchStart      *float64 `json:"bonusMatchStart"`
	BonusTokenOrder      *float64 `json:"bonusTokenOrder"`
	BonusPositionDecay   *float64 `json:"bonusPositionDecay"`
	ScorePerToken        *bool    `json:"scorePerToken"`
	ScoreTestFused       *bool    `json:"scoreTestFused"`
	ScoreRound           *float64 `json:"scoreRound"`
	TokenQueryMinLength  *int     `json:"tokenQueryMinLength"`
	TokenFieldMinLength  *int     `json:"tokenFieldMinLength"`
	TokenQueryMaxLength  *int     `json:"tokenQueryMaxLength"`
	TokenFieldMaxLength  *int     `json:"tokenFieldMaxLength"`
	TokenMinRelSize      *float64 `json:"tokenMinRelSize"`
	TokenMaxRelSize      *float64 `json:"tokenMaxRelSize"`
	OutputLimit          *int     `json:"outputLimit"`
}

// LoadOptionsJSON validates data against optionsSchema, then applies any
// fields it sets on top of DefaultOptions(). A config file may set as few
// or as many fields as it likes; anything else keeps its default.
func LoadOptionsJSON(data []byte) (Options, error) {
	schemaLoader := gojsonschema.NewStringLoader(optionsSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return Options{}, errors.Wrap(err, "fuzztype: validating config against schema")
	}
	if !result.Valid() {
		msg := "fuzztype: invalid config:"
		for _, e := range result.Errors() {
			msg += " " + e.String() + ";"
		}
		return Options{}, errors.New(msg)
	}

	var jo jsonOptions
	if err := json.Unmarshal(data, &jo); err != nil {
		return Options{}, errors.Wrap(err, "fuzztype: decoding config")
	}

	opts := DefaultOptions()
	applyJSONOptions(&opts, jo)

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func applyJSONOptions(opts *Options, jo jsonOptions) {
	if jo.MinimumMatch != nil {
		opts.MinimumMatch = *jo.MinimumMatch
	}
	if jo.ThreshInclude != nil {
		opts.ThreshInclude = *jo.ThreshInclude
	}
	if jo.ThreshRelativeToBest != nil {
		opts.ThreshRelativeToBest = *jo.ThreshRelativeToBest
	}
	if jo.FieldGoodEnough != nil {
		opts.FieldGoodEnough = *jo.FieldGoodEnough
	}
	if jo.BonusMatchStart != nil {
		opts.BonusMatchStart = *jo.BonusMatchStart
	}
	if jo.BonusTokenOrder != nil {
		opts.BonusTokenOrder = *jo.BonusTokenOrder
	}
	if jo.BonusPositionDecay != nil {
		opts.BonusPositionDecay = *jo.BonusPositionDecay
	}
	if jo.ScorePerToken != nil {
		opts.ScorePerToken = *jo.ScorePerToken
	}
	if jo.ScoreTestFused != nil {
		opts.ScoreTestFused = *jo.ScoreTestFused
	}
	if jo.ScoreRound != nil {
		opts.ScoreRound = *jo.ScoreRound
	}
	if jo.TokenQueryMinLength != nil {
		opts.TokenQueryMinLength = *jo.TokenQueryMinLength
	}
	if jo.TokenFieldMinLength != nil {
		opts.TokenFieldMinLength = *jo.TokenFieldMinLength
	}
	if jo.TokenQueryMaxLength != nil {
		opts.TokenQueryMaxLength = *jo.TokenQueryMaxLength
	}
	if jo.TokenFieldMaxLength != nil {
		opts.TokenFieldMaxLength = *jo.TokenFieldMaxLength
	}
	if jo.TokenMinRelSize != nil {
		opts.TokenMinRelSize = *jo.TokenMinRelSize
	}
	if jo.TokenMaxRelSize != nil {
		opts.TokenMaxRelSize = *jo.TokenMaxRelSize
	}
	if jo.OutputLimit != nil {
		opts.OutputLimit = *jo.OutputLimit
	}
}
