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

package heuristic

import (
	"fmt"
	"strings"

	"github.com/craftplan/craftplan/pkg/errors"
	"github.com/craftplan/craftplan/pkg/goal"
	"github.com/craftplan/craftplan/pkg/recipe"
)

// Estimate names accepted by New.
const (
	NameZero        = "zero"
	NameMaxProducer = "max-producer"
)

// Filter names accepted by NewFilters.
const (
	FilterToolCap     = "tool-cap"
	FilterMaterialCap = "material-cap"
)

// Names returns the supported estimate names.
func Names() []string {
	return []string{NameZero, NameMaxProducer}
}

// FilterNames returns the supported pruning filter names.
func FilterNames() []string {
	return []string{FilterToolCap, FilterMaterialCap}
}

// New returns the estimate registered under name. An empty name selects Zero.
func New(name string, book *recipe.Book, checker *goal.Checker) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameZero:
		return Zero, nil
	case NameMaxProducer:
		return MaxProducerCost(book, checker), nil
	default:
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown heuristic %q", name),
			map[string]any{"supported": Names()})
	}
}

// NewFilters builds the pruning filters registered under names, in order.
func NewFilters(names []string, book *recipe.Book, checker *goal.Checker) ([]recipe.Filter, error) {
	filters := make([]recipe.Filter, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case FilterToolCap:
			filters = append(filters, ToolCap(book, checker))
		case FilterMaterialCap:
			filters = append(filters, MaterialCap(book, checker))
		default:
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("unknown prune filter %q", name),
				map[string]any{"supported": FilterNames()})
		}
	}
	return filters, nil
}
