package game

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/voxel-fighter/component"
	"github.com/lixenwraith/voxel-fighter/config"
	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/engine"
	"github.com/lixenwraith/voxel-fighter/event"
	"github.com/lixenwraith/voxel-fighter/input"
)

func setup(t *testing.T) (*engine.World, core.Entity, *Spawner) {
	t.Helper()
	cfg := config.Default()
	w := engine.NewWorld(nil)
	mapEntity := w.CreateEntity()
	w.Components.VoxelMap.Set(mapEntity, component.NewVoxelMap(16, 16, 16))
	w.Components.SceneObject.Set(mapEntity, component.NewSceneObject())
	return w, mapEntity, NewSpawner(w, mapEntity, cfg.Player, cfg.Projectiles)
}

func TestSpawner_Player(t *testing.T) {
	w, mapEntity, s := setup(t)
	pos := mgl32.Vec3{4, 5, 6}
	p := s.Player(pos)

	require.True(t, w.Alive(p))
	assert.True(t, w.Matches(p, engine.SignatureOf(
		engine.KindSceneObject, engine.KindTransform, engine.KindCollider, engine.KindForces)))

	so, _ := w.Components.SceneObject.Get(p)
	assert.Equal(t, pos, so.Position())
	assert.Equal(t, mapEntity, so.Parent)

	root, _ := w.Components.SceneObject.Get(mapEntity)
	assert.Contains(t, root.Children, p)

	forces, _ := w.Components.Forces.Get(p)
	assert.Equal(t, float32(1), forces.GravityScale)
}

func TestSpawner_LaunchGrenade(t *testing.T) {
	w, _, s := setup(t)
	p := s.Player(mgl32.Vec3{4, 4, 4})
	f, _ := w.Components.Forces.Get(p)
	f.Velocity = mgl32.Vec3{1, 0, 0}
	w.Components.Forces.Set(p, f)

	require.True(t, s.Launch(p, mgl32.Vec3{0, -1, 0}, Grenade))
	assert.Equal(t, 1, w.Resources.Commands.Pending(), "deferred until commit")

	spawned := w.Resources.Commands.Commit(w)
	require.Len(t, spawned, 1)
	g := spawned[0]

	forces, _ := w.Components.Forces.Get(g)
	assert.Equal(t, mgl32.Vec3{}, forces.Velocity)
	assert.Equal(t, mgl32.Vec3{1, -10, 5}, forces.Forces)
	assert.Equal(t, float32(1), forces.GravityScale)

	ex, ok := w.Components.Explosive.Get(g)
	require.True(t, ok)
	assert.Equal(t, component.TriggerTimer, ex.Trigger)
	assert.Equal(t, 5, ex.Radius)

	timer, ok := w.Components.Timer.Get(g)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, timer.Remaining)

	so, _ := w.Components.SceneObject.Get(g)
	assert.Equal(t, mgl32.Vec3{4, 4, 4}, so.Position())
}

func TestSpawner_LaunchRocket(t *testing.T) {
	w, _, s := setup(t)
	p := s.Player(mgl32.Vec3{4, 4, 4})

	require.True(t, s.Launch(p, mgl32.Vec3{1, 0, 0}, Rocket))
	r := w.Resources.Commands.Commit(w)[0]

	forces, _ := w.Components.Forces.Get(r)
	assert.Equal(t, float32(0), forces.GravityScale)
	assert.Equal(t, mgl32.Vec3{10, 0, 5}, forces.Forces)

	ex, _ := w.Components.Explosive.Get(r)
	assert.Equal(t, component.TriggerCollision, ex.Trigger)
	assert.False(t, w.Components.Timer.Has(r))
}

func TestSpawner_LaunchWithoutSource(t *testing.T) {
	w, _, s := setup(t)
	assert.False(t, s.Launch(w.CreateEntity(), mgl32.Vec3{1, 0, 0}, Grenade))
	assert.Equal(t, 0, w.Resources.Commands.Pending())
}

func TestSpawner_SpawnedEvent(t *testing.T) {
	w, _, s := setup(t)
	p := s.Player(mgl32.Vec3{4, 4, 4})
	s.Launch(p, mgl32.Vec3{1, 0, 0}, Rocket)
	w.Resources.Commands.Commit(w)

	got := w.Resources.Events.Consume()
	require.Len(t, got, 1)
	assert.Equal(t, event.EventSpawned, got[0].Type)
}

func TestController_Thrust(t *testing.T) {
	w, _, s := setup(t)
	p := s.Player(mgl32.Vec3{4, 4, 4})
	c := NewController(w, s, p, 0.1)

	assert.True(t, c.Apply(input.IntentRight))
	assert.True(t, c.Apply(input.IntentUp))
	assert.False(t, c.Apply(input.IntentSliceUp))

	forces, _ := w.Components.Forces.Get(p)
	assert.InDelta(t, -0.1, forces.Forces[0], 1e-6, "screen right is world -X")
	assert.InDelta(t, 0.2, forces.Forces[2], 1e-6, "jump is double thrust upward")
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, c.Facing(), "vertical thrust keeps facing")

	c.Apply(input.IntentForward)
	c.Apply(input.IntentDown)
	forces, _ = w.Components.Forces.Get(p)
	assert.InDelta(t, 0.1, forces.Forces[1], 1e-6)
	assert.InDelta(t, 0.1, forces.Forces[2], 1e-6)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Facing())
}

func TestController_LaunchUsesFacing(t *testing.T) {
	w, _, s := setup(t)
	p := s.Player(mgl32.Vec3{4, 4, 4})
	c := NewController(w, s, p, 0.1)
	assert.Equal(t, p, c.Player())

	c.Apply(input.IntentLeft)
	c.Apply(input.IntentRocket)
	r := w.Resources.Commands.Commit(w)[0]

	forces, _ := w.Components.Forces.Get(r)
	// Player thrust sits in pending forces, not velocity, so only the impulse carries over
	assert.Equal(t, mgl32.Vec3{10, 0, 5}, forces.Forces)
}
