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

package search

import (
	"log/slog"
	"time"

	"k8s.io/utils/clock"

	"github.com/craftplan/craftplan/pkg/defaults"
)

// Options defines parameters for a search.
type Options struct {
	// TimeLimit is the wall-clock budget. Ignored when Unbounded is set.
	TimeLimit time.Duration
	// Unbounded disables the time budget; the search then runs until it finds
	// a plan, the frontier empties, or the context is canceled.
	Unbounded bool
	// Clock measures the budget.
	Clock clock.PassiveClock
	// Logger receives progress and outcome records.
	Logger *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		TimeLimit: defaults.SearchTimeLimit,
		Clock:     clock.RealClock{},
		Logger:    slog.Default(),
	}
}

// WithTimeLimit sets the wall-clock budget and turns bounded mode back on.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
		o.Unbounded = false
	}
}

// WithUnbounded disables the time budget.
func WithUnbounded() Option {
	return func(o *Options) { o.Unbounded = true }
}

// WithClock replaces the clock used to measure the budget.
func WithClock(c clock.PassiveClock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
