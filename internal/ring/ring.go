// Package ring provides a fixed-capacity circular buffer.
//
// Once full, every Push overwrites the oldest element in O(1). Items are
// always reported oldest first.
package ring

// Buffer is a fixed-size circular buffer. The zero value is not usable;
// create one with New.
type Buffer[T any] struct {
	data  []T
	head  int // next write position
	count int
}

// New creates a buffer holding at most size elements. Panics if size < 1.
func New[T any](size int) *Buffer[T] {
	if size < 1 {
		panic("ring: size must be positive")
	}
	return &Buffer[T]{data: make([]T, size)}
}

// Push appends v. When the buffer is full the oldest element is overwritten
// and returned with evicted=true.
func (r *Buffer[T]) Push(v T) (old T, evicted bool) {
	size := len(r.data)
	if r.count == size {
		old, evicted = r.data[r.head], true
	}
	r.data[r.head] = v
	r.head = (r.head + 1) % size
	if r.count < size {
		r.count++
	}
	return old, evicted
}

// Len returns the number of stored elements.
func (r *Buffer[T]) Len() int {
	return r.count
}

// Cap returns the fixed capacity.
func (r *Buffer[T]) Cap() int {
	return len(r.data)
}

// Full reports whether the next Push will evict.
func (r *Buffer[T]) Full() bool {
	return r.count == len(r.data)
}

// At returns the i-th element counting from the oldest. Panics when out of range.
func (r *Buffer[T]) At(i int) T {
	if i < 0 || i >= r.count {
		panic("ring: index out of range")
	}
	return r.data[r.index(i)]
}

// Last returns the last count elements oldest first. Returns fewer if not
// enough are stored, nil when count <= 0 or the buffer is empty.
func (r *Buffer[T]) Last(count int) []T {
	if count <= 0 || r.count == 0 {
		return nil
	}
	if count > r.count {
		count = r.count
	}

	result := make([]T, count)
	// head points to the next write position; the newest element is at head-1.
	start := (r.head - count + len(r.data)) % len(r.data)
	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%len(r.data)]
	}
	return result
}

// Items returns a copy of every stored element oldest first.
func (r *Buffer[T]) Items() []T {
	return r.Last(r.count)
}

// index maps a logical position (0 = oldest) to a slot in data.
func (r *Buffer[T]) index(i int) int {
	oldest := (r.head - r.count + len(r.data)) % len(r.data)
	return (oldest + i) % len(r.data)
}
