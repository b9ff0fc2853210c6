package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/voxel-fighter/component"
	"github.com/lixenwraith/voxel-fighter/event"
)

type eventSink struct {
	types []event.EventType
	got   []event.GameEvent
}

func (s *eventSink) EventTypes() []event.EventType  { return s.types }
func (s *eventSink) HandleEvent(ev event.GameEvent) { s.got = append(s.got, ev) }

func fillSolid(m component.VoxelMapComponent) {
	for i := range m.Cells {
		m.Cells[i] = solid
	}
}

func TestExplosionSystem_TimerDetonation(t *testing.T) {
	w, mapEntity, m := newMapWorld(10, 10, 10)
	fillSolid(m)

	e := addBody(w, mgl32.Vec3{-5, -5, -5}, mgl32.Vec3{})
	w.Components.Explosive.Set(e, component.ExplosiveComponent{Radius: 1, Trigger: component.TriggerTimer})
	w.Components.Timer.Set(e, component.TimerComponent{Remaining: time.Millisecond})

	sink := &eventSink{types: []event.EventType{event.EventExplosion}}
	w.AddHandler(sink)
	w.AddSystem(NewTimerSystem(w))
	w.AddSystem(NewExplosionSystem(w, mapEntity))

	w.Update(2 * time.Millisecond)

	assert.False(t, w.Alive(e), "despawned at end of frame")
	assert.False(t, m.Solid(5, 5, 5))
	assert.False(t, m.Solid(5, 5, 6))
	assert.True(t, m.Solid(5, 6, 6), "outside radius 1")

	require.Len(t, sink.got, 1)
	p := sink.got[0].Payload.(*event.ExplosionPayload)
	assert.Equal(t, e, p.Entity)
	assert.Equal(t, mgl32.Vec3{-5, -5, -5}, p.Center, "payload carries the world position")
	assert.Equal(t, 7, p.Carved)
	assert.Equal(t, int64(7), w.Resources.Status.Counters.Get("explosion.carved").Load())
}

func TestExplosionSystem_CollisionTriggerNeedsHit(t *testing.T) {
	w, mapEntity, _ := newMapWorld(10, 10, 10)
	rocket := addBody(w, mgl32.Vec3{5, 5, 5}, mgl32.Vec3{})
	w.Components.Explosive.Set(rocket, component.ExplosiveComponent{Radius: 2, Trigger: component.TriggerCollision})

	s := NewExplosionSystem(w, mapEntity)
	s.HandleEvent(event.GameEvent{Type: event.EventCollision, Payload: &event.CollisionPayload{Entity: rocket}})
	s.Update()
	assert.Equal(t, 0, w.Resources.Commands.Pending(), "zero response does not detonate")

	s.HandleEvent(event.GameEvent{Type: event.EventCollision, Payload: &event.CollisionPayload{
		Entity: rocket, Response: mgl32.Vec3{0, 0, -1}, Accepted: 1,
	}})
	s.HandleEvent(event.GameEvent{Type: event.EventCollision, Payload: &event.CollisionPayload{
		Entity: rocket, Response: mgl32.Vec3{0, 0, -1}, Accepted: 1,
	}})
	s.Update()
	assert.True(t, w.Resources.Commands.IsDespawning(rocket))
	assert.Equal(t, int64(1), w.Resources.Status.Counters.Get("explosion.triggered").Load())
}

func TestExplosionSystem_IgnoresMismatchedTrigger(t *testing.T) {
	w, mapEntity, _ := newMapWorld(10, 10, 10)
	grenade := addBody(w, mgl32.Vec3{5, 5, 5}, mgl32.Vec3{})
	w.Components.Explosive.Set(grenade, component.ExplosiveComponent{Radius: 2, Trigger: component.TriggerTimer})
	plain := addBody(w, mgl32.Vec3{5, 5, 5}, mgl32.Vec3{})

	s := NewExplosionSystem(w, mapEntity)
	hit := mgl32.Vec3{1, 0, 0}
	s.HandleEvent(event.GameEvent{Type: event.EventCollision, Payload: &event.CollisionPayload{Entity: grenade, Response: hit}})
	s.HandleEvent(event.GameEvent{Type: event.EventCollision, Payload: &event.CollisionPayload{Entity: plain, Response: hit}})
	s.HandleEvent(event.GameEvent{Type: event.EventTimerExpired, Payload: &event.TimerExpiredPayload{Entity: plain}})
	s.Update()

	assert.Equal(t, 0, w.Resources.Commands.Pending())
}

// A rocket flying into the ground detonates in the same frame its contact is resolved
func TestExplosionSystem_RocketFrame(t *testing.T) {
	w, mapEntity, m := newMapWorld(10, 10, 10)
	m.Set(5, 5, 6, solid)

	// Map cell (5,5,5), falling toward the cell below it
	rocket := addBody(w, mgl32.Vec3{-5, -5, -5}, mgl32.Vec3{0, 0, -1})
	w.Components.Explosive.Set(rocket, component.ExplosiveComponent{Radius: 2, Trigger: component.TriggerCollision})

	w.AddSystem(NewBroadPhaseSystem(w, mapEntity))
	w.AddSystem(NewCollisionSystem(w, mapEntity))
	w.AddSystem(NewExplosionSystem(w, mapEntity))
	w.AddHandler(&eventSink{types: []event.EventType{event.EventExplosion}})

	w.Update(time.Millisecond)

	assert.False(t, w.Alive(rocket))
	assert.False(t, m.Solid(5, 5, 6))
}
