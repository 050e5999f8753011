package core

import "quantum/internal/types"

// ResultSet is the deduplicated collection of dependencies resolved in
// one traversal, keyed by the name each dependency was declared under.
// It only grows within a resolution pass; there is no removal.
type ResultSet struct {
	deps map[string]types.ResolvedDependency
}

func NewResultSet() *ResultSet {
	return &ResultSet{deps: map[string]types.ResolvedDependency{}}
}

// Contains reports whether a name has already been resolved.
func (s *ResultSet) Contains(name string) bool {
	_, ok := s.deps[name]
	return ok
}

// Add stores a resolved record under name, overwriting any existing
// entry. The resolver never calls Add for a name it already added.
func (s *ResultSet) Add(name string, dep types.ResolvedDependency) {
	s.deps[name] = dep
}

// Get returns the record for name.
func (s *ResultSet) Get(name string) (types.ResolvedDependency, bool) {
	dep, ok := s.deps[name]
	return dep, ok
}

// All returns a read-only view of every resolved record. Callers must
// not mutate the returned map.
func (s *ResultSet) All() map[string]types.ResolvedDependency {
	return s.deps
}

// Len returns the number of resolved records.
func (s *ResultSet) Len() int {
	return len(s.deps)
}
