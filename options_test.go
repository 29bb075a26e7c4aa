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

func TestDefaultOptionsValid(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("DefaultOptions() failed validation: %v", err)
	}
}

func TestOptionsValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
	}{
		{"negative query min", func(o *Options) { o.TokenQueryMinLength = -1 }},
		{"negative field min", func(o *Options) { o.TokenFieldMinLength = -1 }},
		{"query max below min", func(o *Options) { o.TokenQueryMaxLength = 1; o.TokenQueryMinLength = 2 }},
		{"field max below min", func(o *Options) { o.TokenFieldMaxLength = 1; o.TokenFieldMinLength = 2 }},
		{"negative rel size", func(o *Options) { o.TokenMinRelSize = -1 }},
		{"max rel below min rel", func(o *Options) { o.TokenMaxRelSize = 0.1; o.TokenMinRelSize = 0.5 }},
		{"zero round quantum", func(o *Options) { o.ScoreRound = 0 }},
		{"negative decay", func(o *Options) { o.BonusPositionDecay = -0.5 }},
		{"negative output limit", func(o *Options) { o.OutputLimit = -1 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := DefaultOptions()
			c.mutate(&o)
			if err := o.Validate(); err == nil {
				t.Errorf("expected Validate() to reject %s", c.name)
			}
		})
	}
}

func TestOptionsValidateAllowsInconsistentThresholds(t *testing.T) {
	o := DefaultOptions()
	o.ThreshInclude = 100
	o.FieldGoodEnough = 1
	if err := o.Validate(); err != nil {
		t.Errorf("ranking-inconsistent but structurally valid options should pass Validate, got %v", err)
	}
}
