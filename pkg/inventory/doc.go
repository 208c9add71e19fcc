// Package inventory provides the immutable item-quantity state explored by
// the planner.
//
// An Inventory stores only positive quantities, sorted by item name. Reading an
// absent item yields 0. Identity is defined purely by content: Key returns a
// canonical encoding usable as a map key, and Compare gives a total order used
// to break ties deterministically in the search frontier.
//
// Inventories are never modified after construction. Successor states are
// assembled on a Builder and published with Build:
//
//	next := current.Builder().Add("wood", -1).Add("plank", 4).Build()
package inventory
