// Copyright (c) 2026, The craftplan Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import (
	"time"

	"github.com/craftplan/craftplan/pkg/inventory"
)

// Outcome tells how a search ended.
type Outcome string

const (
	// OutcomeFound means a goal state was popped and a plan reconstructed.
	OutcomeFound Outcome = "found"
	// OutcomeTimeLimit means the time budget ran out first. It does not prove
	// the goal unreachable.
	OutcomeTimeLimit Outcome = "time-limit"
	// OutcomeCanceled means the context was done before a plan was found.
	OutcomeCanceled Outcome = "canceled"
	// OutcomeExhausted means every reachable state was expanded without
	// meeting the goal.
	OutcomeExhausted Outcome = "exhausted"
)

// Action describes the recipe applied at one step of a plan.
type Action struct {
	Name  string              `json:"name" yaml:"name"`
	State inventory.Inventory `json:"state" yaml:"state"`
	Cost  float64             `json:"cost" yaml:"cost"`
}

// Step pairs a state with the action that produced it.
type Step struct {
	State  inventory.Inventory `json:"state" yaml:"state"`
	Action Action              `json:"action" yaml:"action"`
}

// Result contains the outcome of a search.
type Result struct {
	Outcome Outcome
	// Plan runs from the state after the first action to the goal state. It
	// is nil unless Outcome is OutcomeFound, and empty when the start state
	// already meets the goal.
	Plan      []Step
	TotalCost float64
	Elapsed   time.Duration
	// Discovered counts distinct states that received a path cost.
	Discovered int
	// Expanded counts states whose successors were generated.
	Expanded int
	// Stale counts frontier entries discarded because a cheaper path to
	// their state had been recorded after they were pushed.
	Stale int
	// Pruned counts successors dropped because the heuristic returned +Inf.
	Pruned int
}

// Found reports whether a plan was found.
func (r *Result) Found() bool {
	return r != nil && r.Outcome == OutcomeFound
}
