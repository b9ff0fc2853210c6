package system

import (
	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/engine"
)

// PairResolver handles broad-phase entity-entity candidates
// Implementations may read and write any component through w; they run after voxel resolution
type PairResolver interface {
	ResolvePair(w *engine.World, a, b core.Entity)
}

// NopPairResolver leaves entity pairs untouched
// Entity-entity response is not modelled; install a custom resolver to add it
type NopPairResolver struct{}

// ResolvePair does nothing
func (NopPairResolver) ResolvePair(*engine.World, core.Entity, core.Entity) {}

// PairResolverFunc adapts a function to PairResolver
type PairResolverFunc func(w *engine.World, a, b core.Entity)

// ResolvePair calls f
func (f PairResolverFunc) ResolvePair(w *engine.World, a, b core.Entity) {
	f(w, a, b)
}
