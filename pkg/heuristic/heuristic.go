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

package heuristic

import (
	"math"

	"github.com/craftplan/craftplan/pkg/goal"
	"github.com/craftplan/craftplan/pkg/inventory"
	"github.com/craftplan/craftplan/pkg/recipe"
)

// Func estimates the remaining cost from an inventory to the goal. It must
// return a non-negative value. +Inf marks a state from which the goal cannot
// be reached.
type Func func(inventory.Inventory) float64

// Zero is the default estimate. It turns A* into uniform-cost search and is
// trivially admissible.
func Zero(inventory.Inventory) float64 {
	return 0
}

// MaxProducerCost returns an admissible estimate: every goal item that is
// still short needs at least one more action producing it, and no such action
// is cheaper than the cheapest producer of that item. The estimate is the
// largest of those lower bounds. A short item that nothing produces yields
// +Inf.
func MaxProducerCost(book *recipe.Book, checker *goal.Checker) Func {
	type bound struct {
		item     string
		required int
		cost     float64
	}
	var bounds []bound
	for _, item := range checker.Items() {
		b := bound{item: item, required: checker.Required(item), cost: math.Inf(1)}
		for _, r := range book.Producers(item) {
			b.cost = min(b.cost, r.Cost())
		}
		bounds = append(bounds, b)
	}

	return func(inv inventory.Inventory) float64 {
		var estimate float64
		for _, b := range bounds {
			if inv.Get(b.item) < b.required {
				estimate = max(estimate, b.cost)
			}
		}
		return estimate
	}
}

// Weighted scales h by w. A weight above 1 trades the optimality guarantee
// for fewer expansions; a weight of 1 returns h unchanged. An infinite
// estimate stays infinite so dead ends are still pruned, and a weight that is
// not positive scales every finite estimate to 0.
func Weighted(h Func, w float64) Func {
	if w == 1 {
		return h
	}
	if w <= 0 || math.IsNaN(w) {
		w = 0
	}
	return func(inv inventory.Inventory) float64 {
		est := h(inv)
		if est == 0 || math.IsInf(est, 1) {
			return est
		}
		return w * est
	}
}
