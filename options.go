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

import "github.com/pkg/errors"

// Options holds the scoring tunables. All fields have sane defaults via
// DefaultOptions; inconsistent combinations (e.g. ThreshInclude >
// FieldGoodEnough) are accepted — the consequences are purely ranking
// behavior, not a configuration error.
type Options struct {
	MinimumMatch         float64
	ThreshInclude        float64
	ThreshRelativeToBest float64
	FieldGoodEnough      float64
	BonusMatchStart      float64
	BonusTokenOrder      float64
	BonusPositionDecay   float64
	ScorePerToken        bool
	ScoreTestFused       bool
	ScoreRound           float64
	TokenQueryMinLength  int
	TokenFieldMinLength  int
	TokenQueryMaxLength  int
	TokenFieldMaxLength  int
	TokenMinRelSize      float64
	TokenMaxRelSize      float64
	OutputLimit          int
}

// DefaultOptions returns a reasonable starting point for interactive
// autocomplete-style matching.
func DefaultOptions() Options {
	return Options{
		MinimumMatch:         1.0,
		ThreshInclude:        2.0,
		ThreshRelativeToBest: 0.5,
		FieldGoodEnough:      20,
		BonusMatchStart:      0.5,
		BonusTokenOrder:      2.0,
		BonusPositionDecay:   0.7,
		ScorePerToken:        true,
		ScoreTestFused:       false,
		ScoreRound:           0.1,
		TokenQueryMinLength:  2,
		TokenFieldMinLength:  3,
		TokenQueryMaxLength:  64,
		TokenFieldMaxLength:  64,
		TokenMinRelSize:      0.6,
		TokenMaxRelSize:      6,
		OutputLimit:          0,
	}
}

// Validate rejects options that are structurally nonsensical (negative
// lengths, a non-positive round quantum, an inverted rel-size window) —
// not options that merely rank poorly. This is the one place the kernel's
// total, error-free scoring design gives way: a boundary check run once,
// at configuration time, not per scored pair.
func (o Options) Validate() error {
	switch {
	case o.TokenQueryMinLength < 0:
		return errors.New("fuzztype: TokenQueryMinLength must be >= 0")
	case o.TokenFieldMinLength < 0:
		return errors.New("fuzztype: TokenFieldMinLength must be >= 0")
	case o.TokenQueryMaxLength < o.TokenQueryMinLength:
		return errors.New("fuzztype: TokenQueryMaxLength must be >= TokenQueryMinLength")
	case o.TokenFieldMaxLength < o.TokenFieldMinLength:
		return errors.New("fuzztype: TokenFieldMaxLength must be >= TokenFieldMinLength")
	case o.TokenMinRelSize < 0:
		return errors.New("fuzztype: TokenMinRelSize must be >= 0")
	case o.TokenMaxRelSize < o.TokenMinRelSize:
		return errors.New("fuzztype: TokenMaxRelSize must be >= TokenMinRelSize")
	case o.ScoreRound <= 0:
		return errors.New("fuzztype: ScoreRound must be > 0")
	case o.BonusPositionDecay < 0:
		return errors.New("fuzztype: BonusPositionDecay must be >= 0")
	case o.OutputLimit < 0:
		return errors.New("fuzztype: OutputLimit must be >= 0")
	}
	return nil
}
