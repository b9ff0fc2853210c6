// Package game binds player input to entity spawning and forces on top of the engine
package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/voxel-fighter/component"
	"github.com/lixenwraith/voxel-fighter/config"
	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/engine"
)

// Projectile selects what a launch spawns
type Projectile uint8

const (
	Grenade Projectile = iota
	Rocket
)

func (p Projectile) String() string {
	if p == Rocket {
		return "rocket"
	}
	return "grenade"
}

// Spawner creates the player and projectiles with the collision signature
// Spawned bodies hang off the map entity's scene node when it has one
type Spawner struct {
	world     *engine.World
	mapEntity core.Entity
	player    config.PlayerConfig
	proj      config.ProjectileConfig
}

func NewSpawner(world *engine.World, mapEntity core.Entity, player config.PlayerConfig, proj config.ProjectileConfig) *Spawner {
	return &Spawner{
		world:     world,
		mapEntity: mapEntity,
		player:    player,
		proj:      proj,
	}
}

// Player creates the player body at pos immediately
func (s *Spawner) Player(pos mgl32.Vec3) core.Entity {
	w := s.world
	eb := w.NewEntity()
	engine.With(eb, w.Components.SceneObject, s.attach(eb.Entity(), pos))
	engine.With(eb, w.Components.Transform, component.NewTransform(pos))
	engine.With(eb, w.Components.Collider, component.NewBoxCollider(s.player.HalfExtent))
	engine.With(eb, w.Components.Forces, component.NewForces())
	return eb.Build()
}

// Launch queues a projectile leaving from's position along facing
// The projectile inherits from's velocity; the launch impulse and upward lift land in its pending forces
// Returns false when from has no position or forces
func (s *Spawner) Launch(from core.Entity, facing mgl32.Vec3, kind Projectile) bool {
	so, ok := s.world.Components.SceneObject.Get(from)
	if !ok {
		return false
	}
	origin, ok := s.world.Components.Forces.Get(from)
	if !ok {
		return false
	}

	pos := so.Position()
	forces := component.NewForces()
	impulse := facing.Mul(s.proj.LaunchForce)
	impulse[2] += s.proj.LaunchLift
	forces.AddForce(origin.Velocity.Add(impulse))

	explosive := component.ExplosiveComponent{Radius: s.proj.GrenadeRadius, Trigger: component.TriggerTimer}
	var timer *component.TimerComponent
	switch kind {
	case Rocket:
		forces.GravityScale = 0
		explosive = component.ExplosiveComponent{Radius: s.proj.RocketRadius, Trigger: component.TriggerCollision}
	default:
		timer = &component.TimerComponent{Remaining: s.proj.GrenadeFuse}
	}

	w := s.world
	half := s.proj.HalfExtent
	w.Resources.Commands.Spawn(func(eb *engine.EntityBuilder) {
		engine.With(eb, w.Components.SceneObject, s.attach(eb.Entity(), pos))
		engine.With(eb, w.Components.Transform, component.NewTransform(pos))
		engine.With(eb, w.Components.Collider, component.NewBoxCollider(half))
		engine.With(eb, w.Components.Forces, forces)
		engine.With(eb, w.Components.Explosive, explosive)
		if timer != nil {
			engine.With(eb, w.Components.Timer, *timer)
		}
	})
	return true
}

// attach links e under the map node and returns its scene object already placed at pos
// Global is set here because the scene pass runs after the systems that read it on the spawn frame
func (s *Spawner) attach(e core.Entity, pos mgl32.Vec3) component.SceneObjectComponent {
	so := component.NewSceneObject()
	so.Global = mgl32.Translate3D(pos[0], pos[1], pos[2])

	root, ok := s.world.Components.SceneObject.Get(s.mapEntity)
	if !ok {
		return so
	}
	so.Parent = s.mapEntity
	so.Global = root.Global.Mul4(so.Global)
	root.Children = append(root.Children, e)
	s.world.Components.SceneObject.Set(s.mapEntity, root)
	return so
}
