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

// Package search finds the cheapest sequence of recipe applications that
// takes a start inventory to one satisfying a goal.
//
// The engine is a time-boxed A*. Every invocation owns its frontier and
// bookkeeping maps, so concurrent searches over the same read-only
// recipe.Book and goal.Checker are independent.
//
// Usage:
//
//	book := recipe.NewBook(rules)
//	checker := goal.Compile(goal.Goal{"wooden_pickaxe": 1})
//	res := search.Search(ctx, book, start, checker,
//	    heuristic.MaxProducerCost(book, checker),
//	    search.WithTimeLimit(5*time.Second))
//	if !res.Found() {
//	    return fmt.Errorf("no plan: %s", res.Outcome)
//	}
//
// Frontier entries are never updated in place. When a cheaper path to a
// state is recorded the old entry stays queued and is discarded when popped,
// because its cost no longer matches the best known cost.
//
// Ties on priority are broken by inventory.Compare, so repeated runs over the
// same input return the same plan.
//
// A heuristic returning +Inf removes the state from the search. Admissible
// estimates preserve optimality; Weighted estimates and pruning filters do not.
//
// Search reports failure through Result.Outcome and never returns an error:
// OutcomeTimeLimit when the budget is spent, OutcomeCanceled when the context
// is done, and OutcomeExhausted when no reachable state meets the goal.
package search
