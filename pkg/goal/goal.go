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

// Package goal compiles the minimum quantities a plan must reach into a
// reusable checker.
package goal

import (
	"cmp"
	"maps"
	"slices"

	"github.com/craftplan/craftplan/pkg/inventory"
)

// Goal maps items to the minimum quantity required. Items not listed are
// unconstrained.
type Goal map[string]int

type requirement struct {
	item string
	min  int
}

// Checker tests inventories against a Goal. It is immutable and safe for
// concurrent use.
type Checker struct {
	reqs []requirement
}

// Compile builds a Checker from g. Later changes to g are not observed.
func Compile(g Goal) *Checker {
	reqs := make([]requirement, 0, len(g))
	for _, item := range slices.Sorted(maps.Keys(g)) {
		reqs = append(reqs, requirement{item: item, min: g[item]})
	}
	return &Checker{reqs: reqs}
}

// IsGoal reports whether inv holds at least the required quantity of every
// goal item.
func (c *Checker) IsGoal(inv inventory.Inventory) bool {
	for _, r := range c.reqs {
		if inv.Get(r.item) < r.min {
			return false
		}
	}
	return true
}

// Deficit returns, for every goal item inv is short on, the missing amount.
// The result is empty when IsGoal(inv) holds.
func (c *Checker) Deficit(inv inventory.Inventory) map[string]int {
	short := make(map[string]int)
	for _, r := range c.reqs {
		if have := inv.Get(r.item); have < r.min {
			short[r.item] = r.min - have
		}
	}
	return short
}

// Items returns the goal items in sorted order.
func (c *Checker) Items() []string {
	items := make([]string, 0, len(c.reqs))
	for _, r := range c.reqs {
		items = append(items, r.item)
	}
	return items
}

// Required returns the minimum quantity for item, or 0 when the goal does
// not constrain it.
func (c *Checker) Required(item string) int {
	i, found := slices.BinarySearchFunc(c.reqs, item, func(r requirement, target string) int {
		return cmp.Compare(r.item, target)
	})
	if !found {
		return 0
	}
	return c.reqs[i].min
}
