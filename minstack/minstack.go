// Package minstack provides an integer stack that answers minimum queries in O(1).
package minstack

import (
	"errors"

	"github.com/ChainSafe/stackkit/common/lifo"
)

// ErrEmptyStack is returned by Pop, Peek and Min when the stack holds no elements.
var ErrEmptyStack = errors.New("stack is empty")

// MinStack pairs the element stack with a ledger of running minima.
// The top of minima is always the smallest value present in elements;
// both are empty exactly when the stack is empty.
type MinStack struct {
	elements *lifo.Stack[int]
	minima   *lifo.Stack[int]
}

// New returns a stack with values pushed in order, the last one on top.
func New(values ...int) *MinStack {
	s := &MinStack{
		elements: lifo.New[int](),
		minima:   lifo.New[int](),
	}
	for _, v := range values {
		s.Push(v)
	}
	return s
}

// Push adds value on top of the stack.
// Values equal to the current minimum are recorded again, so popping one
// occurrence still leaves the other one tracked.
func (s *MinStack) Push(value int) {
	s.elements.Push(value)
	if current, ok := s.minima.Peek(); !ok || value <= current {
		s.minima.Push(value)
	}
}

// Pop removes and returns the top element.
func (s *MinStack) Pop() (int, error) {
	value, ok := s.elements.Pop()
	if !ok {
		return 0, ErrEmptyStack
	}
	if current, _ := s.minima.Peek(); value == current {
		s.minima.Pop()
	}
	return value, nil
}

// Peek returns the top element without removing it.
func (s *MinStack) Peek() (int, error) {
	value, ok := s.elements.Peek()
	if !ok {
		return 0, ErrEmptyStack
	}
	return value, nil
}

// Min returns the smallest element currently on the stack.
func (s *MinStack) Min() (int, error) {
	value, ok := s.minima.Peek()
	if !ok {
		return 0, ErrEmptyStack
	}
	return value, nil
}

// Values returns a snapshot of the elements from top to bottom.
func (s *MinStack) Values() []int {
	return s.elements.Values()
}

// Len returns the number of elements.
func (s *MinStack) Len() int {
	return s.elements.Len()
}

// IsEmpty reports whether the stack holds no elements.
func (s *MinStack) IsEmpty() bool {
	return s.elements.IsEmpty()
}

// Sum returns the total of all elements, 0 for an empty stack.
func (s *MinStack) Sum() int {
	sum := 0
	for _, v := range s.elements.Values() {
		sum += v
	}
	return sum
}

// ContainsCycle always reports false: elements live in a slice, there are no
// links between them that could loop back.
func (s *MinStack) ContainsCycle() bool {
	return false
}

// RemoveDuplicates keeps one occurrence of every distinct value.
// The stack is unwound from the top, so the occurrence nearest to the top
// survives and deeper repeats are dropped. Survivors keep their relative order.
//
// The result is built on fresh buffers and swapped in at the end; the minima
// ledger is rebuilt by replaying pushes, since dropped repeats may have been
// recorded in it more than once.
func (s *MinStack) RemoveDuplicates() {
	unwind := s.elements.Copy()
	seen := make(map[int]struct{}, unwind.Len())
	kept := lifo.New[int]()
	for !unwind.IsEmpty() {
		value, _ := unwind.Pop()
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		kept.Push(value)
	}

	rebuilt := New()
	for !kept.IsEmpty() {
		value, _ := kept.Pop()
		rebuilt.Push(value)
	}
	s.elements, s.minima = rebuilt.elements, rebuilt.minima
}
