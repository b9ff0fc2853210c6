package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/voxel-fighter/engine"
	"github.com/lixenwraith/voxel-fighter/parameter"
)

// PhysicsSystem integrates forces into velocity and velocity into the local transform
// Velocity is expressed in cells per tick; DeltaTime scales it so a frame of one tick moves by exactly Velocity
type PhysicsSystem struct {
	world   *engine.World
	gravity mgl32.Vec3
	tick    time.Duration
}

// NewPhysicsSystem creates an integrator with the given gravity and nominal tick
func NewPhysicsSystem(world *engine.World, gravity mgl32.Vec3, tick time.Duration) *PhysicsSystem {
	if tick <= 0 {
		tick = parameter.TickDuration
	}
	return &PhysicsSystem{
		world:   world,
		gravity: gravity,
		tick:    tick,
	}
}

// Name returns system's name
func (s *PhysicsSystem) Name() string {
	return "physics"
}

// Priority returns the system's priority
func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

// Update adds scaled gravity, folds pending forces and translates every {Transform, Forces} entity
func (s *PhysicsSystem) Update() {
	scale := float32(s.world.Resources.Time.DeltaTime) / float32(s.tick)

	entities := s.world.Query().
		With(s.world.Components.Transform).
		With(s.world.Components.Forces).
		Execute()

	for _, e := range entities {
		forces, _ := s.world.Components.Forces.Get(e)
		transform, _ := s.world.Components.Transform.Get(e)

		if forces.GravityScale != 0 {
			forces.AddForce(s.gravity.Mul(forces.GravityScale))
		}
		forces.Fold()
		transform.Translate(forces.Velocity.Mul(scale))

		s.world.Components.Forces.Set(e, forces)
		s.world.Components.Transform.Set(e, transform)
	}
}
