// Package stack provides a last-in-first-out container of names.
//
// It backs crowd tracking in crowd.Control and path reconstruction in
// dijkstra.ShortestPath. Operations on an empty Stack never fail: Pop is a
// no-op and Top returns the empty string.
//
// Complexity: Push, Pop, Top O(1) amortized; Items O(n).
package stack

// Stack is a LIFO sequence of names. The zero value is an empty stack.
type Stack struct {
	items []string
}

// New returns an empty Stack.
func New() *Stack {
	return &Stack{}
}

// Push appends name on top of the stack.
func (s *Stack) Push(name string) {
	s.items = append(s.items, name)
}

// Pop removes the most recently pushed name and returns it.
// On an empty stack it does nothing and returns ("", false).
func (s *Stack) Pop() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	last := len(s.items) - 1
	name := s.items[last]
	s.items[last] = ""
	s.items = s.items[:last]

	return name, true
}

// Top returns the most recently pushed name, or "" when empty.
func (s *Stack) Top() string {
	if len(s.items) == 0 {
		return ""
	}

	return s.items[len(s.items)-1]
}

// Empty reports whether the stack holds no names.
func (s *Stack) Empty() bool { return len(s.items) == 0 }

// Len returns the number of names on the stack.
func (s *Stack) Len() int { return len(s.items) }

// Clear removes every name.
func (s *Stack) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Items returns a copy of the contents, most recently pushed first.
func (s *Stack) Items() []string {
	out := make([]string, len(s.items))
	for i, name := range s.items {
		out[len(s.items)-1-i] = name
	}

	return out
}
