// Package recipe compiles crafting rules into transitions and generates the
// successors of an inventory.
//
// # Core Types
//
// Rule is the raw definition read from a domain file:
//
//	type Rule struct {
//	    Requires map[string]bool // items that must be present, not used up
//	    Consumes map[string]int  // items required and removed
//	    Produces map[string]int  // items added
//	    Time     float64         // cost of the action
//	}
//
// Recipe is a compiled Rule. Check reports feasibility and Apply returns the
// resulting inventory without touching its input.
//
// Book owns an ordered set of recipes and acts as the successor generator for
// the search engine. Recipes are ordered by name, so the sequence of
// transitions for a given inventory is identical on every run.
//
// # Pruning
//
// Filters attached with WithFilter are hard constraints: a transition they
// reject is never generated. Use them to bound the state space; heuristics in
// pkg/heuristic only order the frontier.
//
// # Usage
//
//	book := recipe.NewBook(def.Recipes)
//	for _, t := range book.Successors(state) {
//	    fmt.Println(t.Name, t.State, t.Cost)
//	}
package recipe
