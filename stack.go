package main

// Stack is the interpreter's LIFO of integer cells.
type Stack struct {
	values []int
}

// Depth returns the number of values on the stack.
func (s *Stack) Depth() int { return len(s.values) }

// Values returns a copy of the stack contents, bottom first.
func (s *Stack) Values() []int {
	vals := make([]int, len(s.values))
	copy(vals, s.values)
	return vals
}

func (s *Stack) push(val int) { s.values = append(s.values, val) }

func (s *Stack) clear() { s.values = s.values[:0] }

// need returns a StackUnderflow fault unless at least n values are present.
func (s *Stack) need(tok Token, n int) error {
	if have := len(s.values); have < n {
		return faultf(StackUnderflow, tok, "need %v, have %v", n, have)
	}
	return nil
}

// pop removes and returns the top value; callers check need first.
func (s *Stack) pop() (val int) {
	i := len(s.values) - 1
	val, s.values = s.values[i], s.values[:i]
	return val
}

// pop2 removes the top two values, returning them in push order.
func (s *Stack) pop2() (v1, v2 int) {
	v2 = s.pop()
	v1 = s.pop()
	return v1, v2
}

func (s *Stack) top() int { return s.values[len(s.values)-1] }
