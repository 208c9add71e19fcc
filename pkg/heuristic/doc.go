// Package heuristic provides remaining-cost estimates and pruning filters for
// the search engine.
//
// Estimates (Func) only order the frontier. Zero is the default and reduces
// the search to uniform-cost search. MaxProducerCost is admissible, so the
// engine still returns a minimum-cost plan with it.
//
// Filters (ToolCap, MaterialCap) are hard constraints attached to a
// recipe.Book. They shrink the state space in exchange for the optimality
// guarantee. A search that fails with filters attached may have pruned every
// route to the goal; without filters, failure only ever means the time limit
// or the reachable state space ran out.
package heuristic
