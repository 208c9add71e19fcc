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

// Package planner runs a search over a crafting domain and reports the
// result in a serializable form.
//
// Run validates the definition, attaches the requested pruning filters,
// selects the estimate, and invokes the search engine:
//
//	report, err := planner.Run(ctx, def, planner.Config{
//	    TimeLimit: 5 * time.Second,
//	    Heuristic: heuristic.NameMaxProducer,
//	    Prune:     []string{heuristic.FilterToolCap},
//	})
//
// Errors are returned only for invalid input. A search that ends without a
// plan produces a Report with Found set to false and the Outcome explaining
// why.
//
// Handler serves the same operation over HTTP as POST /v1/plan. Found reports
// are cached by request and identical concurrent requests share one search.
package planner
