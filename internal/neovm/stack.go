// Adapted from _teacher_ref/core/vm/stack.go: same push/pop/swap/dup/peek
// shape, generalized from a single *big.Int cell to a stackitem.Item.
package neovm

import "github.com/SignatureToken/neo-debugger-tools/internal/stackitem"

// Stack is a LIFO of stack_item values, used for both the evaluation stack
// and the alt stack of a Context (spec.md §3, §6).
type Stack struct {
	data []stackitem.Item
}

func newStack() *Stack { return &Stack{} }

// Push appends an item to the top of the stack.
func (s *Stack) Push(it stackitem.Item) {
	s.data = append(s.data, it)
}

// Pop removes and returns the top item. Pop on an empty stack panics; the
// engine recovers that panic and reports it as a stack-underflow FAULT.
func (s *Stack) Pop() stackitem.Item {
	n := len(s.data) - 1
	it := s.data[n]
	s.data = s.data[:n]
	return it
}

// Peek returns the item n slots below the top (0 is the top) without
// removing it, and whether n was in range. This is the primitive the
// variable tracker (C3) and the entry-point seeder use — peek failures are
// swallowed by their callers, never here.
func (s *Stack) Peek(n int) (stackitem.Item, bool) {
	idx := len(s.data) - 1 - n
	if idx < 0 || idx >= len(s.data) {
		return stackitem.Item{}, false
	}
	return s.data[idx], true
}

// Len reports the number of items currently on the stack.
func (s *Stack) Len() int { return len(s.data) }

// Items returns a forward-order (bottom-to-top) snapshot of the stack's
// contents, used by the facade's EvaluationStack/AltStack sequences.
func (s *Stack) Items() []stackitem.Item {
	out := make([]stackitem.Item, len(s.data))
	copy(out, s.data)
	return out
}
