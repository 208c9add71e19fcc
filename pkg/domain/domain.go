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
	"context"
	"fmt"
	"log/slog"

	"github.com/craftplan/craftplan/pkg/errors"
	"github.com/craftplan/craftplan/pkg/goal"
	"github.com/craftplan/craftplan/pkg/inventory"
	"github.com/craftplan/craftplan/pkg/recipe"
	"github.com/craftplan/craftplan/pkg/serializer"
)

// Definition is the document form of a crafting domain.
type Definition struct {
	// Items lists every item the domain tracks. When empty, any item name is
	// accepted.
	Items   []string               `json:"Items,omitempty" yaml:"Items,omitempty"`
	Initial map[string]int         `json:"Initial,omitempty" yaml:"Initial,omitempty"`
	Goal    map[string]int         `json:"Goal" yaml:"Goal"`
	Recipes map[string]recipe.Rule `json:"Recipes" yaml:"Recipes"`
}

// Problem is a compiled definition ready to be searched.
type Problem struct {
	Book    *recipe.Book
	Checker *goal.Checker
	Start   inventory.Inventory
}

// Load reads the definition at path (a file or http(s) URL) and validates it.
func Load(ctx context.Context, path string) (*Definition, error) {
	def, err := serializer.FromFileContext[Definition](ctx, path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to load domain from %s", path), err)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("domain loaded",
		"path", path,
		"items", len(def.Items),
		"recipes", len(def.Recipes))

	return def, nil
}

// Compile builds the Problem described by d. Options are applied to the
// recipe book, so pruning filters can be attached here. Compile does not
// validate; call Validate first for untrusted input.
func (d *Definition) Compile(opts ...recipe.BookOption) *Problem {
	return &Problem{
		Book:    recipe.NewBook(d.Recipes, opts...),
		Checker: goal.Compile(d.Goal),
		Start:   inventory.New(d.Initial),
	}
}
