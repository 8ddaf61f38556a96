package engine

import "sync"

// ring is a fixed-size FIFO. push overwrites the oldest entry when full, tryPush refuses the new one.
// Push is safe from any goroutine; Consume is meant for the single game loop consumer.
type ring[T any] struct {
	mu    sync.Mutex
	items []T
	head  uint64 // Read index (next position to read from)
	tail  uint64 // Write index (next position to write to)
}

func newRing[T any](capacity int) *ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &ring[T]{items: make([]T, capacity)}
}

func (r *ring[T]) push(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := uint64(len(r.items))
	r.items[r.tail%size] = item
	r.tail++

	// Overwrite oldest
	if r.tail-r.head > size {
		r.head = r.tail - size
	}
}

// tryPush appends item unless the ring is full and reports whether it was stored
func (r *ring[T]) tryPush(item T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := uint64(len(r.items))
	if r.tail-r.head >= size {
		return false
	}
	r.items[r.tail%size] = item
	r.tail++
	return true
}

// consume returns pending entries oldest first and empties the ring, nil when empty
func (r *ring[T]) consume() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := r.snapshot()
	r.head = r.tail
	return result
}

func (r *ring[T]) peek() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshot()
}

func (r *ring[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int(r.tail - r.head)
}

// snapshot copies pending entries; caller holds mu
func (r *ring[T]) snapshot() []T {
	available := r.tail - r.head
	if available == 0 {
		return nil
	}

	size := uint64(len(r.items))
	result := make([]T, available)
	for i := uint64(0); i < available; i++ {
		result[i] = r.items[(r.head+i)%size]
	}
	return result
}
