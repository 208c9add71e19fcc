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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "craftplan_searches_total",
			Help: "Total number of searches by outcome",
		},
		[]string{"outcome"},
	)

	searchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "craftplan_search_duration_seconds",
			Help:    "Wall-clock duration of searches in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	expandedStates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "craftplan_search_expanded_states_total",
			Help: "Total number of states expanded across all searches",
		},
	)

	staleEntries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "craftplan_search_stale_entries_total",
			Help: "Total number of superseded frontier entries discarded at pop time",
		},
	)
)

func observe(r *Result) {
	searchesTotal.WithLabelValues(string(r.Outcome)).Inc()
	searchDuration.Observe(r.Elapsed.Seconds())
	expandedStates.Add(float64(r.Expanded))
	staleEntries.Add(float64(r.Stale))
}
