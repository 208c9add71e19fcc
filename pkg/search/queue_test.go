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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftplan/craftplan/pkg/inventory"
)

func TestPriorityQueue_Order(t *testing.T) {
	var q priorityQueue
	q.push(&queueItem{priority: 3, state: inventory.New(map[string]int{"a": 1})})
	q.push(&queueItem{priority: 1, state: inventory.New(map[string]int{"z": 1})})
	q.push(&queueItem{priority: 2, state: inventory.New(map[string]int{"b": 1})})
	q.push(&queueItem{priority: 1, state: inventory.New(map[string]int{"c": 1})})

	var got []string
	for q.Len() > 0 {
		got = append(got, q.pop().state.String())
	}

	assert.Equal(t, []string{"{c: 1}", "{z: 1}", "{b: 1}", "{a: 1}"}, got)
}

func TestPriorityQueue_TiesIndependentOfPushOrder(t *testing.T) {
	states := []inventory.Inventory{
		inventory.New(map[string]int{"wood": 2}),
		inventory.New(map[string]int{"plank": 4}),
		inventory.New(map[string]int{"wood": 1}),
		inventory.New(nil),
	}

	drain := func(order []int) []string {
		var q priorityQueue
		for _, i := range order {
			q.push(&queueItem{priority: 7, state: states[i]})
		}
		var out []string
		for q.Len() > 0 {
			out = append(out, q.pop().state.Key())
		}
		return out
	}

	assert.Equal(t, drain([]int{0, 1, 2, 3}), drain([]int{3, 2, 1, 0}))
	assert.Equal(t, drain([]int{0, 1, 2, 3}), drain([]int{2, 0, 3, 1}))
}
