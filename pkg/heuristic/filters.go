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
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/craftplan/craftplan/pkg/goal"
	"github.com/craftplan/craftplan/pkg/inventory"
	"github.com/craftplan/craftplan/pkg/recipe"
)

// Tools returns the items that some recipe requires and no recipe consumes.
func Tools(book *recipe.Book) sets.Set[string] {
	required := sets.New[string]()
	consumed := sets.New[string]()
	for _, r := range book.Recipes() {
		required = required.Union(r.Requires())
		for item := range r.Consumes() {
			consumed.Insert(item)
		}
	}
	return required.Difference(consumed)
}

// ToolCap rejects transitions that add another copy of a tool the inventory
// already holds enough of: one, or the goal amount when the goal asks for more.
//
// This is guidance, not an estimate. It forfeits the optimality guarantee and
// can make a goal unreachable in domains where extra tools are useful.
func ToolCap(book *recipe.Book, checker *goal.Checker) recipe.Filter {
	caps := make(map[string]int)
	for item := range Tools(book) {
		caps[item] = max(1, checker.Required(item))
	}
	return capFilter(book, caps)
}

// MaterialCap rejects transitions that add more of a consumed item when the
// inventory already holds the largest amount any single recipe consumes, or
// the goal amount when that is larger.
//
// Like ToolCap, this forfeits the optimality guarantee.
func MaterialCap(book *recipe.Book, checker *goal.Checker) recipe.Filter {
	caps := make(map[string]int)
	for _, r := range book.Recipes() {
		for item, amount := range r.Consumes() {
			caps[item] = max(caps[item], amount, checker.Required(item))
		}
	}
	return capFilter(book, caps)
}

type itemCap struct {
	item  string
	limit int
}

// cappedOutputs lists the capped items r produces.
func cappedOutputs(r *recipe.Recipe, caps map[string]int) []itemCap {
	var out []itemCap
	for item := range r.Produces() {
		if limit, ok := caps[item]; ok {
			out = append(out, itemCap{item: item, limit: limit})
		}
	}
	return out
}

// capFilter resolves the capped outputs of every recipe in book up front;
// transitions are generated far more often than filters are built.
func capFilter(book *recipe.Book, caps map[string]int) recipe.Filter {
	byRecipe := make(map[string][]itemCap, book.Len())
	for _, r := range book.Recipes() {
		byRecipe[r.Name()] = cappedOutputs(r, caps)
	}

	return func(from, to inventory.Inventory, r *recipe.Recipe) bool {
		outputs, known := byRecipe[r.Name()]
		if !known {
			outputs = cappedOutputs(r, caps)
		}
		for _, c := range outputs {
			have := from.Get(c.item)
			if have >= c.limit && to.Get(c.item) > have {
				return false
			}
		}
		return true
	}
}
