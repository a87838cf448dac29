package utils

// NameSet is a deduplicated sequence of names kept in first-seen order.
// Membership is exact, case-sensitive string equality.
// The zero value is an empty set ready for use.
type NameSet struct {
	order []string
	index map[string]struct{}
}

// NewNameSet builds a set from names, dropping repeats.
func NewNameSet(names ...string) *NameSet {
	s := &NameSet{}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add appends name if it is not already present and reports whether it did.
func (s *NameSet) Add(name string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, exists := s.index[name]; exists {
		return false
	}
	s.index[name] = struct{}{}
	s.order = append(s.order, name)
	return true
}

// Contains reports whether name is in the set.
func (s *NameSet) Contains(name string) bool {
	_, exists := s.index[name]
	return exists
}

// Len returns the number of distinct names.
func (s *NameSet) Len() int {
	return len(s.order)
}

// Values returns a copy of the names in first-seen order.
func (s *NameSet) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
