package engine

import "github.com/lixenwraith/voxel-fighter/core"

// EntityBuilder assembles an entity's components and commits them together on Build
//
// Example:
//
//	e := With(With(world.NewEntity(),
//	    world.Components.Transform, component.NewTransform(pos)),
//	    world.Components.Forces, component.NewForces()).
//	    Build()
type EntityBuilder struct {
	world   *World
	entity  core.Entity
	pending []func()
	built   bool
}

// NewEntity reserves an id; the entity is not alive until Build
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.reserveEntityID(),
	}
}

// Entity returns the reserved id
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// With queues a component of type T for the entity; panics after Build
func With[T any](eb *EntityBuilder, store *Store[T], c T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	e := eb.entity
	eb.pending = append(eb.pending, func() { store.Set(e, c) })
	return eb
}

// Build marks the entity alive and applies queued components
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		return eb.entity
	}
	eb.built = true
	eb.world.alive[eb.entity] = struct{}{}
	for _, apply := range eb.pending {
		apply()
	}
	eb.pending = nil
	return eb.entity
}
