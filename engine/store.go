package engine

import (
	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/parameter"
)

// Store is a sparse-set container for component type T
// Not synchronized: only the frame goroutine touches stores
type Store[T any] struct {
	kind       Kind
	components map[core.Entity]T
	entities   []core.Entity // Insertion order, swap-removed
}

// NewStore creates an empty store for kind
func NewStore[T any](kind Kind) *Store[T] {
	return &Store[T]{
		kind:       kind,
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, parameter.StoreInitialCapacity),
	}
}

// Kind returns the signature bit of T
func (s *Store[T]) Kind() Kind {
	return s.kind
}

// Set inserts or replaces the component of e
func (s *Store[T]) Set(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get returns a copy of the component of e
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Remove deletes the component of e
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			last := len(s.entities) - 1
			s.entities[i] = s.entities[last]
			s.entities = s.entities[:last]
			break
		}
	}
}

// Has reports whether e has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// All returns a copy of the member entities
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns the member count
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes every component
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]T)
	s.entities = make([]core.Entity, 0, parameter.StoreInitialCapacity)
}

// RemoveBatch deletes several entities with a single compaction pass
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 || len(s.components) == 0 {
		return
	}

	toRemove := make(map[core.Entity]struct{}, len(entities))
	for _, e := range entities {
		if _, exists := s.components[e]; exists {
			toRemove[e] = struct{}{}
			delete(s.components, e)
		}
	}
	if len(toRemove) == 0 {
		return
	}

	w := 0
	for _, e := range s.entities {
		if _, drop := toRemove[e]; !drop {
			s.entities[w] = e
			w++
		}
	}
	s.entities = s.entities[:w]
}
