package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/event"
)

// SpawnFunc fills a builder for a deferred spawn
type SpawnFunc func(eb *EntityBuilder)

// Commands buffers structural changes requested during a frame
// Nothing is applied until Commit, so systems never observe entities appearing or vanishing mid-iteration
type Commands struct {
	spawns   []SpawnFunc
	despawns []core.Entity
	queued   map[core.Entity]struct{}
}

// NewCommands creates an empty buffer
func NewCommands() *Commands {
	return &Commands{queued: make(map[core.Entity]struct{})}
}

// Spawn defers creation of an entity built by fn
func (c *Commands) Spawn(fn SpawnFunc) {
	c.spawns = append(c.spawns, fn)
}

// Despawn defers destruction of e; repeated requests collapse to one
func (c *Commands) Despawn(e core.Entity) {
	if _, ok := c.queued[e]; ok {
		return
	}
	c.queued[e] = struct{}{}
	c.despawns = append(c.despawns, e)
}

// Pending returns the number of queued spawns and despawns
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.despawns)
}

// IsDespawning reports whether e is queued for destruction this frame
func (c *Commands) IsDespawning(e core.Entity) bool {
	_, ok := c.queued[e]
	return ok
}

// Commit applies despawns, then spawns, and returns the spawned entities
// Spawns requested by SpawnFuncs during commit run in the next commit
func (c *Commands) Commit(w *World) []core.Entity {
	despawns, spawns := c.despawns, c.spawns
	c.despawns, c.spawns = nil, nil
	c.queued = make(map[core.Entity]struct{})

	for _, e := range w.DestroyEntities(despawns) {
		w.Resources.Log.Debug("despawn skipped", zap.Uint64("entity", uint64(e)),
			zap.Error(fmt.Errorf("destroy %d: %w", e, ErrDeadEntity)))
	}

	if len(spawns) == 0 {
		return nil
	}
	spawned := make([]core.Entity, 0, len(spawns))
	for _, fn := range spawns {
		eb := w.NewEntity()
		fn(eb)
		e := eb.Build()
		spawned = append(spawned, e)
		w.Resources.Emit(event.EventSpawned, &event.SpawnedPayload{Entity: e})
	}
	return spawned
}
