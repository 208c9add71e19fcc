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
	"container/heap"

	"github.com/craftplan/craftplan/pkg/inventory"
)

// queueItem is one frontier entry. cost is the path cost the entry was pushed
// with; it goes stale once a cheaper path to the same state is recorded.
type queueItem struct {
	priority float64
	cost     float64
	state    inventory.Inventory
}

// priorityQueue orders entries by priority, then by the inventory total order
// so that ties resolve identically on every run.
type priorityQueue []*queueItem

var _ heap.Interface = (*priorityQueue)(nil)

func (q priorityQueue) Len() int { return len(q) }

func (q priorityQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return inventory.Compare(q[i].state, q[j].state) < 0
}

func (q priorityQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *priorityQueue) Push(x any) {
	*q = append(*q, x.(*queueItem))
}

func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

func (q *priorityQueue) push(item *queueItem) {
	heap.Push(q, item)
}

func (q *priorityQueue) pop() *queueItem {
	return heap.Pop(q).(*queueItem)
}
