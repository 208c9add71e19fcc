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

	"github.com/urfave/cli/v3"

	"github.com/craftplan/craftplan/pkg/defaults"
	"github.com/craftplan/craftplan/pkg/domain"
	"github.com/craftplan/craftplan/pkg/heuristic"
	"github.com/craftplan/craftplan/pkg/planner"
)

func planCmd() *cli.Command {
	return &cli.Command{
		Name:                  "plan",
		EnableShellCompletion: true,
		Usage:                 "Search for the cheapest sequence of recipes reaching the domain goal",
		Description: `Load a crafting domain and run a time-boxed A* search from its initial
inventory to its goal.

The report lists every step with the recipe applied, its cost, and the
inventory after it. When the search ends without a plan the report says why:
  time-limit  the budget ran out (the goal may still be reachable)
  exhausted   every reachable inventory was explored
  canceled    the command was interrupted

Examples:
  craftplan plan -d crafting.json
  craftplan plan -d crafting.json --heuristic max-producer --prune tool-cap --prune material-cap
  craftplan plan -d crafting.yaml --unbounded --format table`,
		Flags: []cli.Flag{
			domainFlag(),
			&cli.DurationFlag{
				Name:    "time-limit",
				Aliases: []string{"l"},
				Value:   defaults.SearchTimeLimit,
				Usage:   "Wall-clock search budget",
				Sources: cli.EnvVars("CRAFTPLAN_TIME_LIMIT"),
			},
			&cli.BoolFlag{
				Name:  "unbounded",
				Usage: "Search without a time budget",
			},
			&cli.StringFlag{
				Name:  "heuristic",
				Value: heuristic.NameZero,
				Usage: fmt.Sprintf("Remaining-cost estimate (supported values: %v)", heuristic.Names()),
			},
			&cli.Float64Flag{
				Name:  "weight",
				Value: 1,
				Usage: "Scale the estimate; values above 1 trade optimality for speed",
			},
			&cli.StringSliceFlag{
				Name:  "prune",
				Usage: fmt.Sprintf("Pruning filter, repeatable (supported values: %v)", heuristic.FilterNames()),
			},
			&cli.BoolFlag{
				Name:  "fail-on-no-plan",
				Usage: "Exit with non-zero status when no plan is found",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			path := cmd.String("domain")
			slog.Info("loading domain", "uri", path)

			def, err := domain.Load(ctx, path)
			if err != nil {
				return fmt.Errorf("failed to load domain from %q: %w", path, err)
			}

			report, err := planner.Run(ctx, def, planner.Config{
				TimeLimit: cmd.Duration("time-limit"),
				Unbounded: cmd.Bool("unbounded"),
				Heuristic: cmd.String("heuristic"),
				Weight:    cmd.Float64("weight"),
				Prune:     cmd.StringSlice("prune"),
				Version:   version,
			})
			if err != nil {
				return fmt.Errorf("planning failed: %w", err)
			}

			if err := writeOutput(ctx, cmd, report); err != nil {
				return fmt.Errorf("failed to serialize plan: %w", err)
			}

			slog.Info("planning completed",
				"found", report.Found,
				"outcome", report.Outcome,
				"steps", len(report.Steps),
				"cost", report.TotalCost,
				"elapsed", report.Elapsed)

			if !report.Found && cmd.Bool("fail-on-no-plan") {
				return fmt.Errorf("no plan found: %s", report.Outcome)
			}
			return nil
		},
	}
}
