package repo

// IDSequence hands out product ids starting at 1. Ids are strictly
// increasing and never reused for the lifetime of the sequence.
type IDSequence struct {
	next int
}

func NewIDSequence() *IDSequence {
	return &IDSequence{next: 1}
}

func (s *IDSequence) Next() int {
	if s.next == 0 {
		s.next = 1
	}
	id := s.next
	s.next++
	return id
}

// Peek returns the id the next call to Next will hand out.
func (s *IDSequence) Peek() int {
	if s.next == 0 {
		return 1
	}
	return s.next
}
