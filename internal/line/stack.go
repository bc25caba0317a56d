package line

// Stack serves the most recently pushed record first.
// The zero value is an empty stack.
type Stack struct {
	top *node
	n   int
}

func (s *Stack) Len() int      { return s.n }
func (s *Stack) IsEmpty() bool { return s.top == nil }

// Push puts a Missed record on top.
func (s *Stack) Push(name string, duration int) {
	s.top = &node{
		rec:  Record{Name: name, Class: Missed, Duration: duration},
		next: s.top,
	}
	s.n++
}

// Pop removes the top record. ok is false if the stack is empty.
func (s *Stack) Pop() (rec Record, ok bool) {
	if s.top == nil {
		return Record{}, false
	}
	nd := s.top
	s.top = nd.next
	nd.next = nil
	s.n--
	return nd.rec, true
}

// Clear drops every node still held.
func (s *Stack) Clear() {
	for s.top != nil {
		nd := s.top
		s.top = nd.next
		nd.next = nil
	}
	s.n = 0
}
