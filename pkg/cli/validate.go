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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/urfave/cli/v3"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/craftplan/craftplan/pkg/domain"
	"github.com/craftplan/craftplan/pkg/header"
	"github.com/craftplan/craftplan/pkg/heuristic"
)

// DomainSummary describes a valid domain.
type DomainSummary struct {
	header.Header `json:",inline" yaml:",inline"`

	Source       string         `json:"source" yaml:"source"`
	Items        int            `json:"items" yaml:"items"`
	Recipes      int            `json:"recipes" yaml:"recipes"`
	Tools        []string       `json:"tools,omitempty" yaml:"tools,omitempty"`
	Initial      map[string]int `json:"initial,omitempty" yaml:"initial,omitempty"`
	Goal         map[string]int `json:"goal" yaml:"goal"`
	Unproducible []string       `json:"unproducible,omitempty" yaml:"unproducible,omitempty"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Check a domain file and summarize it",
		Description: `Load a crafting domain, report every problem found, and summarize the
domain when it is valid.

The summary lists the tools (items some recipe requires and none consumes)
and any goal item no recipe produces and the initial inventory lacks, which
makes the goal unreachable.

Examples:
  craftplan validate -d crafting.json
  craftplan validate -d https://example.com/crafting.yaml --format json`,
		Flags: []cli.Flag{
			domainFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			path := cmd.String("domain")
			def, err := domain.Load(ctx, path)
			if err != nil {
				return fmt.Errorf("domain %q is invalid: %w", path, err)
			}

			summary := summarize(path, def)
			if err := writeOutput(ctx, cmd, summary); err != nil {
				return fmt.Errorf("failed to serialize summary: %w", err)
			}

			slog.Info("domain is valid",
				"source", path,
				"recipes", summary.Recipes,
				"unproducible", len(summary.Unproducible))
			return nil
		},
	}
}

func summarize(source string, def *domain.Definition) *DomainSummary {
	problem := def.Compile()

	var unproducible []string
	for _, item := range problem.Checker.Items() {
		if len(problem.Book.Producers(item)) == 0 && problem.Start.Get(item) < problem.Checker.Required(item) {
			unproducible = append(unproducible, item)
		}
	}

	items := sets.New(def.Items...)
	for _, r := range problem.Book.Recipes() {
		items.Insert(slices.Collect(maps.Keys(r.Consumes()))...)
		items.Insert(slices.Collect(maps.Keys(r.Produces()))...)
		items = items.Union(r.Requires())
	}

	return &DomainSummary{
		Header:       header.New(header.KindDomainSummary, version, header.WithMetadata("source", source)),
		Source:       source,
		Items:        items.Len(),
		Recipes:      problem.Book.Len(),
		Tools:        sets.List(heuristic.Tools(problem.Book)),
		Initial:      def.Initial,
		Goal:         def.Goal,
		Unproducible: unproducible,
	}
}

func heuristicsCmd() *cli.Command {
	return &cli.Command{
		Name:  "heuristics",
		Usage: "List the supported estimates and pruning filters",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer
			fmt.Fprintln(w, "Estimates (--heuristic):")
			for _, n := range heuristic.Names() {
				fmt.Fprintf(w, "  %s\n", n)
			}
			fmt.Fprintln(w, "Pruning filters (--prune):")
			for _, n := range heuristic.FilterNames() {
				fmt.Fprintf(w, "  %s\n", n)
			}
			return nil
		},
	}
}
