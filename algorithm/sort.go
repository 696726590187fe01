package algorithm

import "github.com/ChainSafe/stackkit/common/lifo"

// SortStack returns a new stack holding the values of input in ascending
// order from the top: the smallest value is on top, the largest at the bottom.
// Only push and pop are used. Each value popped from input sinks into the
// result once every smaller value above it has been moved back to input.
// input is left empty.
func SortStack(input *lifo.Stack[int]) *lifo.Stack[int] {
	sorted := lifo.New[int]()
	for !input.IsEmpty() {
		temp, _ := input.Pop()
		for {
			top, ok := sorted.Peek()
			if !ok || top >= temp {
				break
			}
			sorted.Pop()
			input.Push(top)
		}
		sorted.Push(temp)
	}
	return sorted
}
