// Package selection tracks the players chosen for comparison and the pinned player.
package selection

import "slices"

// DefaultLimit is the comparison set size.
const DefaultLimit = 2

// Set is a bounded, insertion-ordered set of player names. When full, adding
// a new name evicts the oldest one (FIFO, not LRU). Names are not validated
// against the record store; callers do that before building a comparison.
//
// Set is not safe for concurrent use; the owning controller serializes access.
type Set struct {
	names []string
	limit int
}

// New creates an empty Set.
func New(opts ...Option) *Set {
	s := &Set{limit: DefaultLimit}
	for _, opt := range opts {
		opt(s)
	}
	s.names = make([]string, 0, s.limit)
	return s
}

// Toggle removes name if selected, otherwise adds it, evicting the oldest
// member when the set is full. It reports the evicted name, if any.
func (s *Set) Toggle(name string) (evicted string, ok bool) {
	if i := slices.Index(s.names, name); i >= 0 {
		s.names = slices.Delete(s.names, i, i+1)
		return "", false
	}
	if len(s.names) >= s.limit {
		evicted, ok = s.names[0], true
		s.names = slices.Delete(s.names, 0, 1)
	}
	s.names = append(s.names, name)
	return evicted, ok
}

// Has reports whether name is selected.
func (s *Set) Has(name string) bool {
	return slices.Contains(s.names, name)
}

// CanCompare is true iff the set is full.
func (s *Set) CanCompare() bool {
	return len(s.names) == s.limit
}

// Names returns the members in insertion order.
func (s *Set) Names() []string {
	return slices.Clone(s.names)
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.names) }

// Clear empties the set.
func (s *Set) Clear() {
	s.names = s.names[:0]
}

// SelectFirst replaces the selection with the first members of names, up to
// the limit. This backs the "select all" checkbox.
func (s *Set) SelectFirst(names []string) {
	s.Clear()
	for _, n := range names {
		if len(s.names) == s.limit {
			break
		}
		if !s.Has(n) {
			s.names = append(s.names, n)
		}
	}
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	return &Set{names: slices.Clone(s.names), limit: s.limit}
}
