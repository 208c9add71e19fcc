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

package recipe

import (
	"maps"
	"slices"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/craftplan/craftplan/pkg/inventory"
)

// Rule is the raw definition of a crafting action as it appears in a domain
// file. Requires, Consumes and Produces may be empty.
type Rule struct {
	// Requires lists items that must be present (quantity > 0) but are not used up.
	Requires map[string]bool `json:"Requires,omitempty" yaml:"Requires,omitempty"`
	// Consumes maps items to the amount required and removed.
	Consumes map[string]int `json:"Consumes,omitempty" yaml:"Consumes,omitempty"`
	// Produces maps items to the amount added.
	Produces map[string]int `json:"Produces,omitempty" yaml:"Produces,omitempty"`
	// Time is the duration of the action, used as its cost.
	Time float64 `json:"Time" yaml:"Time"`
}

// RequiredItems returns the items the rule requires, ignoring entries set to false.
func (r Rule) RequiredItems() sets.Set[string] {
	required := sets.New[string]()
	for item, needed := range r.Requires {
		if needed {
			required.Insert(item)
		}
	}
	return required
}

// delta is one item change applied by a recipe.
type delta struct {
	item   string
	amount int
}

// Recipe is a compiled Rule: a feasibility check, a transition and a fixed cost.
type Recipe struct {
	name     string
	cost     float64
	requires sets.Set[string]

	// sorted copies used on the hot path
	required []string
	consumes []delta
	produces []delta
}

// Compile turns a raw rule into a Recipe. The rule is copied, later changes to
// its maps do not affect the compiled recipe.
func Compile(name string, rule Rule) *Recipe {
	requires := rule.RequiredItems()
	return &Recipe{
		name:     name,
		cost:     rule.Time,
		requires: requires,
		required: sets.List(requires),
		consumes: sortedDeltas(rule.Consumes),
		produces: sortedDeltas(rule.Produces),
	}
}

func sortedDeltas(m map[string]int) []delta {
	deltas := make([]delta, 0, len(m))
	for _, item := range slices.Sorted(maps.Keys(m)) {
		deltas = append(deltas, delta{item: item, amount: m[item]})
	}
	return deltas
}

// Name returns the unique recipe name.
func (r *Recipe) Name() string {
	return r.name
}

// Cost returns the edge weight of the action.
func (r *Recipe) Cost() float64 {
	return r.cost
}

// Requires returns a copy of the requirement set.
func (r *Recipe) Requires() sets.Set[string] {
	return r.requires.Clone()
}

// Consumes returns the consumed items and amounts.
func (r *Recipe) Consumes() map[string]int {
	return deltaMap(r.consumes)
}

// Produces returns the produced items and amounts.
func (r *Recipe) Produces() map[string]int {
	return deltaMap(r.produces)
}

func deltaMap(deltas []delta) map[string]int {
	m := make(map[string]int, len(deltas))
	for _, d := range deltas {
		m[d.item] = d.amount
	}
	return m
}

// Check reports whether the recipe can be applied to inv: every required item
// is present and every consumed item is available in the needed amount.
func (r *Recipe) Check(inv inventory.Inventory) bool {
	for _, item := range r.required {
		if inv.Get(item) <= 0 {
			return false
		}
	}
	for _, c := range r.consumes {
		if inv.Get(c.item) < c.amount {
			return false
		}
	}
	return true
}

// Apply returns the inventory that results from performing the recipe on inv.
// inv is left untouched. Callers must only call Apply when Check(inv) holds.
func (r *Recipe) Apply(inv inventory.Inventory) inventory.Inventory {
	b := inv.Builder()
	for _, c := range r.consumes {
		b.Add(c.item, -c.amount)
	}
	for _, p := range r.produces {
		b.Add(p.item, p.amount)
	}
	return b.Build()
}
