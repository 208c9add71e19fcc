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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftplan/craftplan/pkg/errors"
	"github.com/craftplan/craftplan/pkg/goal"
	"github.com/craftplan/craftplan/pkg/inventory"
	"github.com/craftplan/craftplan/pkg/recipe"
)

func toolRules() map[string]recipe.Rule {
	return map[string]recipe.Rule{
		"punch for wood": {Produces: map[string]int{"wood": 1}, Time: 4},
		"craft plank":    {Consumes: map[string]int{"wood": 1}, Produces: map[string]int{"plank": 4}, Time: 1},
		"craft bench":    {Consumes: map[string]int{"plank": 4}, Produces: map[string]int{"bench": 1}, Time: 1},
		"craft table at bench": {
			Requires: map[string]bool{"bench": true},
			Consumes: map[string]int{"plank": 6},
			Produces: map[string]int{"table": 1},
			Time:     3,
		},
		"buy table": {Produces: map[string]int{"table": 1}, Time: 50},
	}
}

func TestZero(t *testing.T) {
	assert.Zero(t, Zero(inventory.New(map[string]int{"wood": 5})))
}

func TestMaxProducerCost(t *testing.T) {
	book := recipe.NewBook(toolRules())
	checker := goal.Compile(goal.Goal{"table": 1, "plank": 2})
	h := MaxProducerCost(book, checker)

	tests := []struct {
		name  string
		state map[string]int
		want  float64
	}{
		{"goal reached", map[string]int{"table": 1, "plank": 2}, 0},
		{"only planks short", map[string]int{"table": 1}, 1},
		{"table short uses cheapest producer", map[string]int{"plank": 2}, 3},
		{"both short takes the max", nil, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, h(inventory.New(tt.state)), 0)
		})
	}
}

func TestMaxProducerCost_UnproducibleItemIsInfinite(t *testing.T) {
	book := recipe.NewBook(toolRules())
	h := MaxProducerCost(book, goal.Compile(goal.Goal{"diamond": 1}))

	assert.True(t, math.IsInf(h(inventory.New(nil)), 1))
	assert.Zero(t, h(inventory.New(map[string]int{"diamond": 1})))
}

func TestWeighted(t *testing.T) {
	one := func(inventory.Inventory) float64 { return 1 }
	assert.InDelta(t, 2.5, Weighted(one, 2.5)(inventory.New(nil)), 1e-9)
	assert.InDelta(t, 1.0, Weighted(one, 1)(inventory.New(nil)), 0)
}

func TestWeighted_NonPositiveWeight(t *testing.T) {
	book := recipe.NewBook(toolRules())
	dead := MaxProducerCost(book, goal.Compile(goal.Goal{"diamond": 1}))
	one := func(inventory.Inventory) float64 { return 1 }
	start := inventory.New(nil)

	for _, w := range []float64{0, -3, math.NaN()} {
		assert.True(t, math.IsInf(Weighted(dead, w)(start), 1), "weight %v keeps a dead end infinite", w)
		assert.Zero(t, Weighted(one, w)(start), "weight %v zeroes finite estimates", w)
	}
}

func TestWeighted_InfiniteWeight(t *testing.T) {
	zero := Weighted(Zero, math.Inf(1))(inventory.New(nil))
	assert.False(t, math.IsNaN(zero))
	assert.Zero(t, zero)
}

func TestTools(t *testing.T) {
	book := recipe.NewBook(toolRules())
	assert.ElementsMatch(t, []string{"bench"}, Tools(book).UnsortedList())
}

func TestToolCap(t *testing.T) {
	book := recipe.NewBook(toolRules())
	filter := ToolCap(book, goal.Compile(goal.Goal{"table": 1}))
	bench, ok := book.Get("craft bench")
	require.True(t, ok)

	first := inventory.New(map[string]int{"plank": 8})
	assert.True(t, filter(first, bench.Apply(first), bench), "first bench is allowed")

	second := inventory.New(map[string]int{"plank": 8, "bench": 1})
	assert.False(t, filter(second, bench.Apply(second), bench), "second bench is pruned")
}

func TestToolCap_HonorsGoalAmount(t *testing.T) {
	book := recipe.NewBook(toolRules())
	filter := ToolCap(book, goal.Compile(goal.Goal{"bench": 2}))
	bench, _ := book.Get("craft bench")

	second := inventory.New(map[string]int{"plank": 8, "bench": 1})
	assert.True(t, filter(second, bench.Apply(second), bench))

	third := inventory.New(map[string]int{"plank": 8, "bench": 2})
	assert.False(t, filter(third, bench.Apply(third), bench))
}

func TestMaterialCap(t *testing.T) {
	book := recipe.NewBook(toolRules())
	filter := MaterialCap(book, goal.Compile(goal.Goal{"table": 1}))
	plank, _ := book.Get("craft plank")
	wood, _ := book.Get("punch for wood")

	// largest plank consumption is 6
	low := inventory.New(map[string]int{"wood": 1, "plank": 5})
	assert.True(t, filter(low, plank.Apply(low), plank))

	enough := inventory.New(map[string]int{"wood": 1, "plank": 6})
	assert.False(t, filter(enough, plank.Apply(enough), plank))

	// wood is consumed one at a time
	assert.True(t, filter(inventory.New(nil), wood.Apply(inventory.New(nil)), wood))
	oneWood := inventory.New(map[string]int{"wood": 1})
	assert.False(t, filter(oneWood, wood.Apply(oneWood), wood))
}

func TestCapFilters_DoNotAllocate(t *testing.T) {
	book := recipe.NewBook(toolRules())
	checker := goal.Compile(goal.Goal{"table": 1})
	bench, _ := book.Get("craft bench")
	from := inventory.New(map[string]int{"plank": 8, "bench": 1})
	to := bench.Apply(from)

	for name, filter := range map[string]recipe.Filter{
		FilterToolCap:     ToolCap(book, checker),
		FilterMaterialCap: MaterialCap(book, checker),
	} {
		allocs := testing.AllocsPerRun(100, func() { filter(from, to, bench) })
		assert.Zero(t, allocs, "%s allocates per transition", name)
	}
}

func TestCapFilters_RecipeOutsideBook(t *testing.T) {
	book := recipe.NewBook(toolRules())
	filter := ToolCap(book, goal.Compile(goal.Goal{"table": 1}))

	extra := recipe.Compile("trade for bench", recipe.Rule{
		Consumes: map[string]int{"wood": 2},
		Produces: map[string]int{"bench": 1},
		Time:     2,
	})
	from := inventory.New(map[string]int{"wood": 2, "bench": 1})
	assert.False(t, filter(from, extra.Apply(from), extra))
}

func BenchmarkToolCap(b *testing.B) {
	book := recipe.NewBook(toolRules())
	filter := ToolCap(book, goal.Compile(goal.Goal{"table": 1}))
	bench, _ := book.Get("craft bench")
	from := inventory.New(map[string]int{"plank": 8, "bench": 1})
	to := bench.Apply(from)

	b.ReportAllocs()
	for b.Loop() {
		filter(from, to, bench)
	}
}

func TestNew(t *testing.T) {
	book := recipe.NewBook(toolRules())
	checker := goal.Compile(goal.Goal{"table": 1})

	for _, name := range append(Names(), "", " Max-Producer ") {
		h, err := New(name, book, checker)
		require.NoError(t, err, name)
		require.NotNil(t, h, name)
	}

	_, err := New("manhattan", book, checker)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestNewFilters(t *testing.T) {
	book := recipe.NewBook(toolRules())
	checker := goal.Compile(goal.Goal{"table": 1})

	filters, err := NewFilters(FilterNames(), book, checker)
	require.NoError(t, err)
	assert.Len(t, filters, 2)

	filters, err = NewFilters(nil, book, checker)
	require.NoError(t, err)
	assert.Empty(t, filters)

	_, err = NewFilters([]string{"tool-cap", "nope"}, book, checker)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
}
