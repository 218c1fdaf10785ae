package frontier

import "container/heap"

// entry is one queued pair. seq is the insertion counter used to keep
// ties in FIFO order.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// entries is a min-heap of entry ordered by (priority, seq).
type entries[T any] []entry[T]

// Len returns the number of entries in the heap.
func (h entries[T]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence.
func (h entries[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two entries.
func (h entries[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push.
func (h *entries[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop removes the last entry; called by heap.Pop.
func (h *entries[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop the reference held by the backing array
	*h = old[:n-1]

	return e
}

// Frontier is a min-priority queue with stable tie-breaking.
// The zero value is an empty, ready-to-use Frontier.
type Frontier[T any] struct {
	heap entries[T]
	next uint64
}

// New returns an empty Frontier with room for capacity entries.
func New[T any](capacity int) *Frontier[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Frontier[T]{heap: make(entries[T], 0, capacity)}
}

// Insert queues item with the given priority.
// Complexity: O(log n).
func (f *Frontier[T]) Insert(item T, priority float64) {
	heap.Push(&f.heap, entry[T]{item: item, priority: priority, seq: f.next})
	f.next++
}

// ExtractMin removes and returns the item with the lowest priority. Among
// equal priorities the earliest inserted wins. ok is false when the
// Frontier is empty.
// Complexity: O(log n).
func (f *Frontier[T]) ExtractMin() (item T, priority float64, ok bool) {
	if len(f.heap) == 0 {
		return item, 0, false
	}
	e := heap.Pop(&f.heap).(entry[T])

	return e.item, e.priority, true
}

// Peek returns the minimum without removing it.
// Complexity: O(1).
func (f *Frontier[T]) Peek() (item T, priority float64, ok bool) {
	if len(f.heap) == 0 {
		return item, 0, false
	}

	return f.heap[0].item, f.heap[0].priority, true
}

// IsEmpty reports whether no entries are queued.
func (f *Frontier[T]) IsEmpty() bool { return len(f.heap) == 0 }

// Len returns the number of queued entries, stale copies included.
func (f *Frontier[T]) Len() int { return len(f.heap) }

// Clone returns an independent copy; operations on either Frontier never
// affect the other.
// Complexity: O(n).
func (f *Frontier[T]) Clone() *Frontier[T] {
	c := &Frontier[T]{heap: make(entries[T], len(f.heap), cap(f.heap)), next: f.next}
	copy(c.heap, f.heap)

	return c
}
