package core

// Ring is a fixed-capacity FIFO. Pushing into a full ring evicts the oldest item.
type Ring[T any] struct {
	items []T
	head  int // index of the oldest item
	size  int
}

// NewRing creates a ring holding at most capacity items.
// A non-positive capacity yields a ring that retains nothing.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring[T]{items: make([]T, capacity)}
}

// Push appends v, evicting the oldest item when the ring is full.
func (r *Ring[T]) Push(v T) {
	capacity := len(r.items)
	if capacity == 0 {
		return
	}
	if r.size < capacity {
		r.items[(r.head+r.size)%capacity] = v
		r.size++
		return
	}
	r.items[r.head] = v
	r.head = (r.head + 1) % capacity
}

// Len returns the number of items held.
func (r *Ring[T]) Len() int {
	return r.size
}

// Clear drops all items.
func (r *Ring[T]) Clear() {
	var zero T
	for i := range r.items {
		r.items[i] = zero
	}
	r.head = 0
	r.size = 0
}

// Items returns a copy of the contents ordered oldest to newest.
func (r *Ring[T]) Items() []T {
	out := make([]T, r.size)
	for i := range r.size {
		out[i] = r.items[(r.head+i)%len(r.items)]
	}
	return out
}
