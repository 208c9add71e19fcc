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

package inventory

// Builder is a mutable working copy of an Inventory. It never shares storage
// with the inventory it was created from, so published inventories stay valid
// while a successor is being assembled.
type Builder struct {
	items map[string]int
}

// Builder returns a mutable copy of inv.
func (inv Inventory) Builder() *Builder {
	items := make(map[string]int, len(inv.entries)+2)
	for _, e := range inv.entries {
		items[e.Item] = e.Quantity
	}
	return &Builder{items: items}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{items: make(map[string]int)}
}

// Add changes the quantity of item by delta.
func (b *Builder) Add(item string, delta int) *Builder {
	b.items[item] += delta
	return b
}

// Set overwrites the quantity of item.
func (b *Builder) Set(item string, qty int) *Builder {
	b.items[item] = qty
	return b
}

// Get returns the current working quantity of item.
func (b *Builder) Get(item string) int {
	return b.items[item]
}

// Build publishes the working copy as a new Inventory. The Builder may keep
// being used afterwards without affecting the returned value.
func (b *Builder) Build() Inventory {
	entries := make([]Entry, 0, len(b.items))
	for item, qty := range b.items {
		if qty == 0 {
			continue
		}
		entries = append(entries, Entry{Item: item, Quantity: qty})
	}
	return fromEntries(entries)
}
