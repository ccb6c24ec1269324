// Package pqueue implements a binary min-heap priority queue keyed by a
// float64 priority.
//
// Ties are broken by insertion order: of two items with equal priority, the
// one inserted first is extracted first. There is no decrease-key; callers
// that improve a value's priority insert it again and skip the stale entry
// when it surfaces (the "lazy decrease-key" pattern).
//
// Complexity:
//
//   - Insert:     O(log n)
//   - ExtractMin: O(log n)
//   - Peek, Len:  O(1)
//   - Contains:   O(n) linear scan; not meant for hot paths.
package pqueue

// Item is a (priority, value) pair held by the queue.
type Item[T comparable] struct {
	Priority float64
	Value    T
	seq      uint64 // insertion counter, breaks priority ties
}

// Queue is a min-priority queue. The zero value is ready to use.
// A Queue is not safe for concurrent use.
type Queue[T comparable] struct {
	items []Item[T]
	next  uint64
}

// New returns an empty queue with room for capacity items.
func New[T comparable](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{items: make([]Item[T], 0, capacity)}
}

// Len returns the number of queued items, stale entries included.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Insert appends (priority, value) and sifts it up while it ranks before its parent.
func (q *Queue[T]) Insert(priority float64, value T) {
	q.items = append(q.items, Item[T]{Priority: priority, Value: value, seq: q.next})
	q.next++
	q.siftUp(len(q.items) - 1)
}

// ExtractMin removes and returns the lowest-priority item.
// ok is false when the queue is empty.
func (q *Queue[T]) ExtractMin() (item Item[T], ok bool) {
	n := len(q.items)
	switch n {
	case 0:
		return item, false
	case 1:
		item = q.items[0]
		q.items = q.items[:0]

		return item, true
	}

	item = q.items[0]
	q.items[0] = q.items[n-1]
	q.items[n-1] = Item[T]{} // release the value for GC
	q.items = q.items[:n-1]
	q.siftDown(0)

	return item, true
}

// Peek returns the lowest-priority item without removing it.
func (q *Queue[T]) Peek() (Item[T], bool) {
	if len(q.items) == 0 {
		return Item[T]{}, false
	}

	return q.items[0], true
}

// Contains reports whether any queued item holds value.
func (q *Queue[T]) Contains(value T) bool {
	for i := range q.items {
		if q.items[i].Value == value {
			return true
		}
	}

	return false
}

// less orders by priority, then by insertion sequence.
func (q *Queue[T]) less(i, j int) bool {
	a, b := &q.items[i], &q.items[j]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}

	return a.seq < b.seq
}

func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			return
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

// siftDown moves item i towards the leaves, descending into the smaller
// child while that child ranks before it.
func (q *Queue[T]) siftDown(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && q.less(right, left) {
			smallest = right
		}
		if !q.less(smallest, i) {
			return
		}
		q.items[i], q.items[smallest] = q.items[smallest], q.items[i]
		i = smallest
	}
}
