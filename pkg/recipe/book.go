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

	"github.com/craftplan/craftplan/pkg/inventory"
)

// Transition is one applicable action out of a state.
type Transition struct {
	Name  string
	State inventory.Inventory
	Cost  float64
}

// Filter is a hard constraint on transitions. Returning false drops the
// transition from the successor set. Filters prune the graph; they do not
// estimate distance.
type Filter func(from, to inventory.Inventory, r *Recipe) bool

// Book is an owned, ordered collection of compiled recipes. It generates the
// successors of a state and is safe for concurrent use once built.
type Book struct {
	recipes []*Recipe
	byName  map[string]*Recipe
	filters []Filter
}

// BookOption configures a Book.
type BookOption func(*Book)

// WithFilter adds pruning filters applied to every generated transition.
func WithFilter(filters ...Filter) BookOption {
	return func(b *Book) {
		for _, f := range filters {
			if f != nil {
				b.filters = append(b.filters, f)
			}
		}
	}
}

// NewBook compiles every rule. Recipes are ordered by name so that successor
// order is the same on every run.
func NewBook(rules map[string]Rule, opts ...BookOption) *Book {
	b := &Book{
		recipes: make([]*Recipe, 0, len(rules)),
		byName:  make(map[string]*Recipe, len(rules)),
	}
	for _, name := range slices.Sorted(maps.Keys(rules)) {
		r := Compile(name, rules[name])
		b.recipes = append(b.recipes, r)
		b.byName[name] = r
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// With returns a copy of the book sharing its compiled recipes, with the
// given options applied on top.
func (b *Book) With(opts ...BookOption) *Book {
	clone := &Book{
		recipes: b.recipes,
		byName:  b.byName,
		filters: slices.Clone(b.filters),
	}
	for _, opt := range opts {
		opt(clone)
	}
	return clone
}

// Len returns the number of recipes.
func (b *Book) Len() int {
	return len(b.recipes)
}

// Recipes returns the recipes in book order.
func (b *Book) Recipes() []*Recipe {
	return slices.Clone(b.recipes)
}

// Get returns the recipe with the given name.
func (b *Book) Get(name string) (*Recipe, bool) {
	r, ok := b.byName[name]
	return r, ok
}

// Producers returns the recipes that produce a positive amount of item, in
// book order.
func (b *Book) Producers(item string) []*Recipe {
	var producers []*Recipe
	for _, r := range b.recipes {
		for _, p := range r.produces {
			if p.item == item && p.amount > 0 {
				producers = append(producers, r)
				break
			}
		}
	}
	return producers
}

// Successors returns one transition per recipe applicable to inv, in book
// order. inv is not modified, and repeated calls return equivalent results.
func (b *Book) Successors(inv inventory.Inventory) []Transition {
	var out []Transition
	for _, r := range b.recipes {
		if !r.Check(inv) {
			continue
		}
		next := r.Apply(inv)
		if !b.allowed(inv, next, r) {
			continue
		}
		out = append(out, Transition{Name: r.name, State: next, Cost: r.cost})
	}
	return out
}

func (b *Book) allowed(from, to inventory.Inventory, r *Recipe) bool {
	for _, f := range b.filters {
		if !f(from, to, r) {
			return false
		}
	}
	return true
}
