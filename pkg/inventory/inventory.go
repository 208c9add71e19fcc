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

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Entry is a single item quantity held by an Inventory.
type Entry struct {
	Item     string
	Quantity int
}

// Inventory is an immutable mapping from item identifiers to non-negative
// quantities. Only positive quantities are stored, sorted by item name, so two
// inventories with the same content are equal regardless of how they were
// built. The zero value is the empty inventory.
type Inventory struct {
	entries []Entry
	key     string
}

// New creates an Inventory from the given mapping. Zero quantities are dropped.
func New(items map[string]int) Inventory {
	entries := make([]Entry, 0, len(items))
	for item, qty := range items {
		if qty == 0 {
			continue
		}
		entries = append(entries, Entry{Item: item, Quantity: qty})
	}
	return fromEntries(entries)
}

// fromEntries takes ownership of entries.
func fromEntries(entries []Entry) Inventory {
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Item, b.Item)
	})
	return Inventory{entries: entries, key: encodeKey(entries)}
}

func encodeKey(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Quote(e.Item))
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(e.Quantity))
	}
	return b.String()
}

// Get returns the quantity of item, or 0 when the item is absent.
func (inv Inventory) Get(item string) int {
	i, found := slices.BinarySearchFunc(inv.entries, item, func(e Entry, target string) int {
		return cmp.Compare(e.Item, target)
	})
	if !found {
		return 0
	}
	return inv.entries[i].Quantity
}

// Clone returns a deep copy that shares no storage with inv.
func (inv Inventory) Clone() Inventory {
	return Inventory{entries: slices.Clone(inv.entries), key: inv.key}
}

// Len returns the number of items with a positive quantity.
func (inv Inventory) Len() int {
	return len(inv.entries)
}

// Entries returns a copy of the stored entries in item order.
func (inv Inventory) Entries() []Entry {
	return slices.Clone(inv.entries)
}

// Items returns the content as a freshly allocated map.
func (inv Inventory) Items() map[string]int {
	m := make(map[string]int, len(inv.entries))
	for _, e := range inv.entries {
		m[e.Item] = e.Quantity
	}
	return m
}

// Key returns a canonical encoding of the content. Two inventories have the
// same key if and only if they are Equal, which makes Key suitable for use
// in maps.
func (inv Inventory) Key() string {
	return inv.key
}

// Equal reports whether both inventories hold the same quantities.
func (inv Inventory) Equal(other Inventory) bool {
	return inv.key == other.key
}

// Compare defines a total order over inventories: entries are compared
// pairwise by item name and then by quantity, and a proper prefix sorts first.
func Compare(a, b Inventory) int {
	n := min(len(a.entries), len(b.entries))
	for i := range n {
		if c := cmp.Compare(a.entries[i].Item, b.entries[i].Item); c != 0 {
			return c
		}
		if c := cmp.Compare(a.entries[i].Quantity, b.entries[i].Quantity); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.entries), len(b.entries))
}

// String renders the inventory as {item: qty, ...}, omitting zero quantities.
func (inv Inventory) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range inv.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %d", e.Item, e.Quantity)
	}
	b.WriteByte('}')
	return b.String()
}

// MarshalJSON encodes the inventory as an item to quantity object.
func (inv Inventory) MarshalJSON() ([]byte, error) {
	return json.Marshal(inv.Items())
}

// UnmarshalJSON decodes an item to quantity object.
func (inv *Inventory) UnmarshalJSON(data []byte) error {
	var items map[string]int
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to decode inventory: %w", err)
	}
	*inv = New(items)
	return nil
}

// MarshalYAML encodes the inventory as an item to quantity mapping.
func (inv Inventory) MarshalYAML() (any, error) {
	return inv.Items(), nil
}
