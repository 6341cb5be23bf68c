// SPDX-License-Identifier: MIT

// Package frontier provides the min-priority queue shared by the
// weighted traversals. Entries are ordered by (Priority, insertion
// sequence), so equal priorities pop in the order they were pushed.
//
// Stale entries are never removed: callers use the lazy decrease-key
// pattern and skip entries they no longer care about on Pop.
package frontier

import "container/heap"

// Item is one frontier entry.
type Item struct {
	ID       string // vertex ID
	Priority int64  // ordering key (dist for Dijkstra, dist+h for A*)
	Dist     int64  // distance at push time, used to detect stale entries
	seq      uint64 // insertion order for tie-breaking
}

// Queue is a min-heap of Items. The zero value is ready to use.
type Queue struct {
	items itemHeap
	seq   uint64
}

// Push inserts id with the given priority and distance.
// Complexity: O(log n).
func (q *Queue) Push(id string, priority, dist int64) {
	q.seq++
	heap.Push(&q.items, Item{ID: id, Priority: priority, Dist: dist, seq: q.seq})
}

// Pop removes and returns the smallest Item; ok is false when empty.
// Complexity: O(log n).
func (q *Queue) Pop() (Item, bool) {
	if q.items.Len() == 0 {
		return Item{}, false
	}

	return heap.Pop(&q.items).(Item), true
}

// Len returns the number of queued entries, stale ones included.
func (q *Queue) Len() int { return q.items.Len() }

// itemHeap implements heap.Interface.
type itemHeap []Item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(Item)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
