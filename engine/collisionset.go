package engine

import "github.com/lixenwraith/voxel-fighter/core"

// EntityPair is a broad-phase entity-entity candidate
type EntityPair struct {
	A, B core.Entity
}

// CollisionSet is the broad-phase output for one frame
// World maps each tracked entity to candidate voxel indices; an entity may be tracked with no candidates.
// Iteration through Entities follows tracking order so resolution is deterministic
type CollisionSet struct {
	World map[core.Entity][]int
	Pairs []EntityPair

	order []core.Entity
}

// NewCollisionSet creates an empty set
func NewCollisionSet() *CollisionSet {
	return &CollisionSet{World: make(map[core.Entity][]int)}
}

// Reset empties the set, keeping allocated capacity
func (c *CollisionSet) Reset() {
	for e := range c.World {
		delete(c.World, e)
	}
	c.order = c.order[:0]
	c.Pairs = c.Pairs[:0]
}

// Track registers e with an empty candidate list if not yet present
func (c *CollisionSet) Track(e core.Entity) {
	if _, ok := c.World[e]; ok {
		return
	}
	c.World[e] = nil
	c.order = append(c.order, e)
}

// AddVoxel appends a candidate voxel index for e
func (c *CollisionSet) AddVoxel(e core.Entity, index int) {
	c.Track(e)
	c.World[e] = append(c.World[e], index)
}

// AddPair records an entity-entity candidate
func (c *CollisionSet) AddPair(a, b core.Entity) {
	c.Pairs = append(c.Pairs, EntityPair{A: a, B: b})
}

// Entities returns tracked entities in tracking order
func (c *CollisionSet) Entities() []core.Entity {
	return c.order
}

// Candidates returns the voxel indices listed for e
func (c *CollisionSet) Candidates(e core.Entity) []int {
	return c.World[e]
}

// Len returns the number of tracked entities
func (c *CollisionSet) Len() int {
	return len(c.order)
}
