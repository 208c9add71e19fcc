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

package planner

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"k8s.io/utils/clock"

	"github.com/craftplan/craftplan/pkg/domain"
	"github.com/craftplan/craftplan/pkg/errors"
	"github.com/craftplan/craftplan/pkg/heuristic"
	"github.com/craftplan/craftplan/pkg/recipe"
	"github.com/craftplan/craftplan/pkg/search"
)

// Config selects how a domain is searched.
type Config struct {
	// TimeLimit is the search budget. Zero selects defaults.SearchTimeLimit.
	TimeLimit time.Duration
	// Unbounded disables the budget.
	Unbounded bool
	// Heuristic names the estimate; see heuristic.Names.
	Heuristic string
	// Weight scales the estimate. Zero means 1.
	Weight float64
	// Prune names the pruning filters; see heuristic.FilterNames.
	Prune []string
	// Clock overrides the budget clock.
	Clock clock.PassiveClock
	// Logger overrides slog.Default for the search.
	Logger *slog.Logger
	// Version is stamped into the report header.
	Version string
}

// Validate checks the parts of c that do not depend on a domain.
func (c Config) Validate() error {
	if c.TimeLimit < 0 {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("time limit must not be negative, got %s", c.TimeLimit))
	}
	if c.Weight < 0 || math.IsNaN(c.Weight) || math.IsInf(c.Weight, 0) {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("weight must be a finite non-negative number, got %v", c.Weight))
	}
	return nil
}

func (c Config) searchOptions() []search.Option {
	var opts []search.Option
	switch {
	case c.Unbounded:
		opts = append(opts, search.WithUnbounded())
	case c.TimeLimit > 0:
		opts = append(opts, search.WithTimeLimit(c.TimeLimit))
	}
	if c.Clock != nil {
		opts = append(opts, search.WithClock(c.Clock))
	}
	if c.Logger != nil {
		opts = append(opts, search.WithLogger(c.Logger))
	}
	return opts
}

// Run searches def under cfg. It returns an INVALID_REQUEST error when def
// or cfg is invalid; otherwise the report carries the outcome.
func Run(ctx context.Context, def *domain.Definition, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	problem := def.Compile()
	filters, err := heuristic.NewFilters(cfg.Prune, problem.Book, problem.Checker)
	if err != nil {
		return nil, err
	}
	book := problem.Book.With(recipe.WithFilter(filters...))

	h, err := heuristic.New(cfg.Heuristic, book, problem.Checker)
	if err != nil {
		return nil, err
	}
	if cfg.Weight > 0 {
		h = heuristic.Weighted(h, cfg.Weight)
	}

	slog.Debug("planning",
		"recipes", book.Len(),
		"heuristic", heuristicName(cfg.Heuristic),
		"prune", cfg.Prune,
		"unbounded", cfg.Unbounded,
		"timeLimit", cfg.TimeLimit)

	res := search.Search(ctx, book, problem.Start, problem.Checker, h, cfg.searchOptions()...)
	return newReport(problem, cfg, res), nil
}

func heuristicName(name string) string {
	if name == "" {
		return heuristic.NameZero
	}
	return name
}
