// Package indexheap implements a binary min-heap of (vertex, key) entries that
// supports O(log n) decrease-key through a vertex→slot index.
//
// The heap array and the index map are two views of the same state. Every
// structural change goes through swap, which moves both entries and rewrites
// both index slots together; no other code writes to the index.
//
// Ordering rules:
//
//   - siftDown picks the smaller child; on equal keys the left child wins.
//     It swaps only when that child is strictly smaller than the parent.
//   - siftUp moves an entry up while it is strictly smaller than its parent.
//
// Complexity:
//
//   - New:         O(n) bottom-up heapify.
//   - Pop:         O(log n).
//   - DecreaseKey: O(log n).
//
// The heap is not safe for concurrent use.
package indexheap

import (
	"errors"
	"fmt"
)

// ErrNotQueued is returned by DecreaseKey when the vertex is not in the heap,
// either because it was never added or because it has already been popped.
var ErrNotQueued = errors.New("indexheap: vertex not queued")

// Entry is one (vertex, key) pair held by the heap.
type Entry[V comparable] struct {
	Vertex V
	Key    float64
}

// Heap is a binary min-heap over Entry values keyed by Entry.Key.
type Heap[V comparable] struct {
	items []Entry[V]
	index map[V]int // vertex → slot in items
}

// New builds a heap from entries with bottom-up heapify: for every slot from
// the last parent down to the root, siftDown. The slice is copied.
// Vertices must be distinct; a repeated vertex keeps only its last slot in the index.
func New[V comparable](entries []Entry[V]) *Heap[V] {
	h := &Heap[V]{
		items: make([]Entry[V], len(entries)),
		index: make(map[V]int, len(entries)),
	}
	copy(h.items, entries)
	for i, e := range h.items {
		h.index[e.Vertex] = i
	}
	for i := (len(h.items) - 2) / 2; i >= 0; i-- {
		h.siftDown(i)
	}

	return h
}

// Len returns the number of queued entries.
func (h *Heap[V]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[V]) IsEmpty() bool { return len(h.items) == 0 }

// Contains reports whether v is currently queued.
func (h *Heap[V]) Contains(v V) bool {
	_, ok := h.index[v]

	return ok
}

// Key returns the current key of v and whether v is queued.
func (h *Heap[V]) Key(v V) (float64, bool) {
	i, ok := h.index[v]
	if !ok {
		return 0, false
	}

	return h.items[i].Key, true
}

// Peek returns the minimum entry without removing it.
func (h *Heap[V]) Peek() (Entry[V], bool) {
	if len(h.items) == 0 {
		return Entry[V]{}, false
	}

	return h.items[0], true
}

// Pop removes and returns the minimum entry. On an empty heap it returns
// false and leaves the heap untouched.
func (h *Heap[V]) Pop() (Entry[V], bool) {
	if len(h.items) == 0 {
		return Entry[V]{}, false
	}
	last := len(h.items) - 1
	h.swap(0, last)
	top := h.items[last]
	h.items = h.items[:last]
	delete(h.index, top.Vertex)
	h.siftDown(0)

	return top, true
}

// DecreaseKey overwrites v's key with key and restores order by sifting up.
//
// key must not be greater than v's current key. The heap only sifts up here,
// so raising a key leaves the heap order broken.
func (h *Heap[V]) DecreaseKey(v V, key float64) error {
	i, ok := h.index[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotQueued, v)
	}
	h.items[i].Key = key
	h.siftUp(i)

	return nil
}

func (h *Heap[V]) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		child := left
		if right := left + 1; right < n && h.items[right].Key < h.items[left].Key {
			child = right
		}
		if h.items[child].Key >= h.items[i].Key {
			return
		}
		h.swap(i, child)
		i = child
	}
}

func (h *Heap[V]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].Key >= h.items[parent].Key {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// swap exchanges slots i and j and rewrites both index entries.
func (h *Heap[V]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i].Vertex] = i
	h.index[h.items[j].Vertex] = j
}
