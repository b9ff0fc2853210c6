package system

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/voxel-fighter/component"
	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/engine"
	"github.com/lixenwraith/voxel-fighter/event"
	"github.com/lixenwraith/voxel-fighter/parameter"
)

// ExplosionSystem detonates explosives on timer expiry or voxel contact
// Triggers are collected from events and carved during Update, so detonations land in this system's slot
type ExplosionSystem struct {
	world     *engine.World
	log       *zap.Logger
	mapEntity core.Entity

	pending []core.Entity
	queued  map[core.Entity]struct{}

	statTriggered *atomic.Int64
	statCarved    *atomic.Int64
}

// NewExplosionSystem creates an explosion system carving the voxel map on mapEntity
func NewExplosionSystem(world *engine.World, mapEntity core.Entity) *ExplosionSystem {
	return &ExplosionSystem{
		world:         world,
		log:           world.Resources.Log.Named("explosion"),
		mapEntity:     mapEntity,
		queued:        make(map[core.Entity]struct{}),
		statTriggered: world.Resources.Status.Counters.Get("explosion.triggered"),
		statCarved:    world.Resources.Status.Counters.Get("explosion.carved"),
	}
}

// Name returns system's name
func (s *ExplosionSystem) Name() string {
	return "explosion"
}

// Priority returns the system's priority
func (s *ExplosionSystem) Priority() int {
	return parameter.PriorityExplosion
}

// EventTypes returns the event types the system handles
func (s *ExplosionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTimerExpired,
		event.EventCollision,
	}
}

// HandleEvent detonates explosives whose trigger matches the event
func (s *ExplosionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventTimerExpired:
		if p, ok := ev.Payload.(*event.TimerExpiredPayload); ok {
			s.trigger(p.Entity, component.TriggerTimer)
		}
	case event.EventCollision:
		if p, ok := ev.Payload.(*event.CollisionPayload); ok && p.Hit() {
			s.trigger(p.Entity, component.TriggerCollision)
		}
	}
}

func (s *ExplosionSystem) trigger(e core.Entity, cause component.ExplosiveTrigger) {
	explosive, ok := s.world.Components.Explosive.Get(e)
	if !ok || explosive.Trigger != cause {
		return
	}
	if _, dup := s.queued[e]; dup {
		return
	}
	s.queued[e] = struct{}{}
	s.pending = append(s.pending, e)
}

// Update carves every triggered explosive and queues its despawn
func (s *ExplosionSystem) Update() {
	if len(s.pending) == 0 {
		return
	}
	pending := s.pending
	s.pending = nil
	clear(s.queued)

	voxels, hasMap := s.world.Components.VoxelMap.Get(s.mapEntity)

	for _, e := range pending {
		explosive, ok := s.world.Components.Explosive.Get(e)
		if !ok || s.world.Resources.Commands.IsDespawning(e) {
			continue
		}
		so, ok := s.world.Components.SceneObject.Get(e)
		if !ok {
			s.log.Warn("explosive without position", zap.Uint64("entity", uint64(e)))
			continue
		}

		center := so.Position()
		carved := 0
		if hasMap {
			carved = voxels.Carve(component.MapPoint(center), float32(explosive.Radius))
		}

		s.statTriggered.Add(1)
		s.statCarved.Add(int64(carved))
		s.log.Debug("detonated",
			zap.Uint64("entity", uint64(e)),
			zap.Int("radius", explosive.Radius),
			zap.Int("carved", carved))

		s.world.Resources.Emit(event.EventExplosion, &event.ExplosionPayload{
			Entity: e,
			Center: center,
			Radius: explosive.Radius,
			Carved: carved,
		})
		s.world.Resources.Commands.Despawn(e)
	}
}
