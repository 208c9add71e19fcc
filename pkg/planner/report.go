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
	"strconv"

	"github.com/craftplan/craftplan/pkg/domain"
	"github.com/craftplan/craftplan/pkg/header"
	"github.com/craftplan/craftplan/pkg/inventory"
	"github.com/craftplan/craftplan/pkg/search"
)

// Report is the serializable result of a planning run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Found      bool                `json:"found" yaml:"found"`
	Outcome    search.Outcome      `json:"outcome" yaml:"outcome"`
	TotalCost  float64             `json:"totalCost" yaml:"totalCost"`
	Elapsed    string              `json:"elapsed" yaml:"elapsed"`
	Discovered int                 `json:"discovered" yaml:"discovered"`
	Expanded   int                 `json:"expanded" yaml:"expanded"`
	Stale      int                 `json:"stale" yaml:"stale"`
	Pruned     int                 `json:"pruned" yaml:"pruned"`
	Heuristic  string              `json:"heuristic" yaml:"heuristic"`
	Prune      []string            `json:"prune,omitempty" yaml:"prune,omitempty"`
	Start      inventory.Inventory `json:"start" yaml:"start"`
	Steps      []Step              `json:"steps" yaml:"steps"`
}

// Step is one action of a plan with the inventory it leaves behind.
type Step struct {
	Index  int                 `json:"index" yaml:"index"`
	Recipe string              `json:"recipe" yaml:"recipe"`
	Cost   float64             `json:"cost" yaml:"cost"`
	State  inventory.Inventory `json:"state" yaml:"state"`
}

func newReport(p *domain.Problem, cfg Config, res *search.Result) *Report {
	r := &Report{
		Header:     header.New(header.KindPlanReport, cfg.Version),
		Found:      res.Found(),
		Outcome:    res.Outcome,
		TotalCost:  res.TotalCost,
		Elapsed:    res.Elapsed.String(),
		Discovered: res.Discovered,
		Expanded:   res.Expanded,
		Stale:      res.Stale,
		Pruned:     res.Pruned,
		Heuristic:  heuristicName(cfg.Heuristic),
		Prune:      cfg.Prune,
		Start:      p.Start,
		Steps:      make([]Step, 0, len(res.Plan)),
	}
	for i, st := range res.Plan {
		r.Steps = append(r.Steps, Step{
			Index:  i + 1,
			Recipe: st.Action.Name,
			Cost:   st.Action.Cost,
			State:  st.State,
		})
	}
	return r
}

// Headers implements serializer.Tabular.
func (r Report) Headers() []string {
	return []string{"step", "recipe", "cost", "total", "inventory"}
}

// Rows implements serializer.Tabular. The first row shows the start
// inventory and the last row summarizes the outcome.
func (r Report) Rows() [][]string {
	rows := make([][]string, 0, len(r.Steps)+2)
	rows = append(rows, []string{"0", "(start)", "-", "0", r.Start.String()})

	var total float64
	for _, st := range r.Steps {
		total += st.Cost
		rows = append(rows, []string{
			strconv.Itoa(st.Index),
			st.Recipe,
			formatCost(st.Cost),
			formatCost(total),
			st.State.String(),
		})
	}

	rows = append(rows, []string{"-", string(r.Outcome), "-", formatCost(r.TotalCost),
		"expanded=" + strconv.Itoa(r.Expanded) + " elapsed=" + r.Elapsed})
	return rows
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
