package engine

import "github.com/lixenwraith/voxel-fighter/core"

// AnyStore provides type-erased operations for lifecycle management
// World uses it to drop an entity from every store without knowing component types
type AnyStore interface {
	// Kind is the signature bit this store answers for
	Kind() Kind

	// Remove deletes the entity's component if present
	Remove(e core.Entity)

	// RemoveBatch deletes several entities in one pass
	RemoveBatch(entities []core.Entity)

	// Has checks if an entity has this component
	Has(e core.Entity) bool

	// Count returns the number of entities with this component
	Count() int

	// Clear removes all components
	Clear()
}

// QueryableStore extends AnyStore with the iteration needed by QueryBuilder
type QueryableStore interface {
	AnyStore

	// All returns a copy of the entities holding this component
	All() []core.Entity
}
