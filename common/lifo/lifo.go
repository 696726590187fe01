// Package lifo implements the last-in-first-out buffer every stack algorithm works on
package lifo

// Stack is a slice-backed LIFO buffer. The zero value is an empty stack.
type Stack[T any] struct {
	items []T
}

// New creates a stack by pushing values in order, so the last value ends up on top
func New[T any](values ...T) *Stack[T] {
	s := &Stack[T]{}
	for _, v := range values {
		s.Push(v)
	}
	return s
}

// Push adds an item to the stack
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes and returns the last item from the stack
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	val := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return val, true
}

// Peek returns the last item without removing it
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of items in the stack
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty checks if the stack is empty
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Copy creates a new stack with the same elements
func (s *Stack[T]) Copy() *Stack[T] {
	return &Stack[T]{items: append([]T(nil), s.items...)}
}

// Values returns a copy of the items ordered from top to bottom.
func (s *Stack[T]) Values() []T {
	out := make([]T, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		out = append(out, s.items[i])
	}
	return out
}
