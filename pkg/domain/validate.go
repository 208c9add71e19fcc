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

package domain

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/craftplan/craftplan/pkg/errors"
)

// Validate checks d and returns a single INVALID_REQUEST error listing every
// problem found, or nil.
func (d *Definition) Validate() error {
	if d == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "domain definition is nil")
	}

	var errs error
	known, dupes := d.itemSet()
	for _, item := range dupes {
		errs = multierr.Append(errs, fmt.Errorf("item %q listed more than once", item))
	}

	checkItem := func(where, item string) {
		if strings.TrimSpace(item) == "" {
			errs = multierr.Append(errs, fmt.Errorf("%s: empty item name", where))
			return
		}
		if known.Len() > 0 && !known.Has(item) {
			errs = multierr.Append(errs, fmt.Errorf("%s: unknown item %q", where, item))
		}
	}
	checkQuantities := func(where string, m map[string]int) {
		for _, item := range slices.Sorted(maps.Keys(m)) {
			checkItem(where, item)
			if m[item] < 0 {
				errs = multierr.Append(errs, fmt.Errorf("%s: negative quantity %d for %q", where, m[item], item))
			}
		}
	}

	checkQuantities("initial", d.Initial)
	checkQuantities("goal", d.Goal)

	for _, name := range slices.Sorted(maps.Keys(d.Recipes)) {
		rule := d.Recipes[name]
		where := fmt.Sprintf("recipe %q", name)
		if strings.TrimSpace(name) == "" {
			errs = multierr.Append(errs, fmt.Errorf("recipe with empty name"))
		}
		if math.IsNaN(rule.Time) || math.IsInf(rule.Time, 0) || rule.Time < 0 {
			errs = multierr.Append(errs, fmt.Errorf("%s: time must be a finite non-negative number, got %v", where, rule.Time))
		}
		for _, item := range slices.Sorted(maps.Keys(rule.Requires)) {
			checkItem(where+" requires", item)
		}
		checkQuantities(where+" consumes", rule.Consumes)
		checkQuantities(where+" produces", rule.Produces)
	}

	if errs == nil {
		return nil
	}

	problems := multierr.Errors(errs)
	msgs := make([]string, 0, len(problems))
	for _, p := range problems {
		msgs = append(msgs, p.Error())
	}
	return errors.WrapWithContext(errors.ErrCodeInvalidRequest,
		fmt.Sprintf("invalid domain: %d problem(s)", len(problems)), errs,
		map[string]any{"problems": msgs})
}

func (d *Definition) itemSet() (sets.Set[string], []string) {
	known := sets.New[string]()
	dupes := sets.New[string]()
	for _, item := range d.Items {
		if known.Has(item) {
			dupes.Insert(item)
		}
		known.Insert(item)
	}
	return known, sets.List(dupes)
}
