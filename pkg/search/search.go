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
	"context"
	"math"
	"slices"

	"github.com/craftplan/craftplan/pkg/defaults"
	"github.com/craftplan/craftplan/pkg/heuristic"
	"github.com/craftplan/craftplan/pkg/inventory"
	"github.com/craftplan/craftplan/pkg/recipe"
)

// Graph generates the transitions leaving a state.
type Graph interface {
	Successors(inv inventory.Inventory) []recipe.Transition
}

// Goal decides whether a state ends the search.
type Goal interface {
	IsGoal(inv inventory.Inventory) bool
}

// link records how a state was first reached along its best known path.
// The start state links to the root sentinel.
type link struct {
	root   bool
	parent string
	action Action
}

var rootLink = link{root: true}

// Search runs A* from start until a state satisfying goal is popped, the time
// budget is spent, ctx is done, or the frontier empties. A nil heuristic is
// treated as heuristic.Zero. Search never returns nil and never fails with an
// error: the outcome is carried by Result.Outcome.
func Search(ctx context.Context, graph Graph, start inventory.Inventory, goal Goal, h heuristic.Func, opts ...Option) *Result {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if h == nil {
		h = heuristic.Zero
	}

	s := &searcher{
		graph:    graph,
		goal:     goal,
		h:        h,
		opts:     o,
		best:     make(map[string]float64),
		cameFrom: make(map[string]link),
		steps:    make(map[string]int),
		states:   make(map[string]inventory.Inventory),
	}

	result := s.run(ctx, start)
	observe(result)

	if result.Found() {
		o.Logger.Debug("search found plan",
			"steps", len(result.Plan),
			"cost", result.TotalCost,
			"elapsed", result.Elapsed,
			"discovered", result.Discovered,
			"expanded", result.Expanded)
	} else {
		o.Logger.Warn("search failed",
			"outcome", result.Outcome,
			"elapsed", result.Elapsed,
			"discovered", result.Discovered,
			"expanded", result.Expanded)
	}
	return result
}

// searcher holds the per-invocation state of one search.
type searcher struct {
	graph Graph
	goal  Goal
	h     heuristic.Func
	opts  Options

	queue    priorityQueue
	best     map[string]float64
	cameFrom map[string]link
	steps    map[string]int
	states   map[string]inventory.Inventory

	result Result
}

func (s *searcher) run(ctx context.Context, start inventory.Inventory) *Result {
	clk := s.opts.Clock
	began := clk.Now()
	finish := func(outcome Outcome) *Result {
		s.result.Outcome = outcome
		s.result.Elapsed = clk.Since(began)
		s.result.Discovered = len(s.best)
		return &s.result
	}

	startKey := start.Key()
	s.best[startKey] = 0
	s.cameFrom[startKey] = rootLink
	s.steps[startKey] = 0
	s.states[startKey] = start

	if est := s.h(start); !math.IsInf(est, 1) {
		s.queue.push(&queueItem{priority: est, cost: 0, state: start})
	} else {
		s.result.Pruned++
	}

	for s.queue.Len() > 0 {
		if !s.opts.Unbounded && clk.Since(began) >= s.opts.TimeLimit {
			return finish(OutcomeTimeLimit)
		}
		if ctx.Err() != nil {
			return finish(OutcomeCanceled)
		}

		item := s.queue.pop()
		key := item.state.Key()
		if item.cost != s.best[key] {
			s.result.Stale++
			continue
		}

		if s.goal.IsGoal(item.state) {
			s.result.Plan = s.reconstruct(key)
			s.result.TotalCost = item.cost
			return finish(OutcomeFound)
		}

		s.expand(item)
	}

	return finish(OutcomeExhausted)
}

func (s *searcher) expand(item *queueItem) {
	s.result.Expanded++
	if s.result.Expanded%defaults.SearchProgressInterval == 0 {
		s.opts.Logger.Debug("search progress",
			"expanded", s.result.Expanded,
			"discovered", len(s.best),
			"frontier", s.queue.Len(),
			"cost", item.cost)
	}

	key := item.state.Key()
	depth := s.steps[key]
	for _, t := range s.graph.Successors(item.state) {
		cost := item.cost + t.Cost
		nextKey := t.State.Key()
		if known, ok := s.best[nextKey]; ok && cost >= known {
			continue
		}

		est := s.h(t.State)
		if math.IsInf(est, 1) {
			s.result.Pruned++
			continue
		}

		s.best[nextKey] = cost
		s.cameFrom[nextKey] = link{
			parent: key,
			action: Action{Name: t.Name, State: t.State, Cost: t.Cost},
		}
		s.steps[nextKey] = depth + 1
		s.states[nextKey] = t.State
		s.queue.push(&queueItem{priority: cost + est, cost: cost, state: t.State})
	}
}

// reconstruct walks predecessor links from key back to the start state and
// returns the steps in execution order.
func (s *searcher) reconstruct(key string) []Step {
	plan := make([]Step, 0, s.steps[key])
	for {
		l := s.cameFrom[key]
		if l.root {
			break
		}
		plan = append(plan, Step{State: s.states[key], Action: l.action})
		key = l.parent
	}
	slices.Reverse(plan)
	return plan
}

// Nodes returns the states of a plan prefixed by start, so that element i+1 is
// reached from element i by plan[i].Action.
func Nodes(start inventory.Inventory, plan []Step) []inventory.Inventory {
	nodes := make([]inventory.Inventory, 0, len(plan)+1)
	nodes = append(nodes, start)
	for _, st := range plan {
		nodes = append(nodes, st.State)
	}
	return nodes
}
