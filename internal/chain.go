package internal

// Chain is an immutable singly linked prefix. Appending shares the existing
// prefix, so many frontier entries can extend the same path without copying it.
// A nil *Chain is the empty chain.
type Chain[T any] struct {
	parent *Chain[T]
	value  T
	length int
}

// Append returns a new chain ending in value. The receiver may be nil.
func (c *Chain[T]) Append(value T) *Chain[T] {
	return &Chain[T]{parent: c, value: value, length: c.Len() + 1}
}

// Len returns the number of elements in the chain.
func (c *Chain[T]) Len() int {
	if c == nil {
		return 0
	}
	return c.length
}

// Last returns the final element and whether the chain is non-empty.
func (c *Chain[T]) Last() (T, bool) {
	if c == nil {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Slice rebuilds the chain in order, first element first.
func (c *Chain[T]) Slice() []T {
	values := make([]T, c.Len())
	for i, link := len(values)-1, c; link != nil; i, link = i-1, link.parent {
		values[i] = link.value
	}
	return values
}
