package component

import "github.com/go-gl/mathgl/mgl32"

// ForcesComponent carries per-entity velocity and the force accumulator for the current frame
// Forces are summed during the frame and folded into Velocity by the integrator
type ForcesComponent struct {
	Velocity     mgl32.Vec3
	Forces       mgl32.Vec3
	GravityScale float32
}

// NewForces returns a gravity-affected body at rest
func NewForces() ForcesComponent {
	return ForcesComponent{GravityScale: 1}
}

// AddForce accumulates v into the pending forces
func (f *ForcesComponent) AddForce(v mgl32.Vec3) {
	f.Forces = f.Forces.Add(v)
}

// Damp divides velocity by factor; factors <= 0 are ignored
func (f *ForcesComponent) Damp(factor float32) {
	if factor <= 0 {
		return
	}
	f.Velocity = f.Velocity.Mul(1 / factor)
}

// Motion is the velocity the entity will have once pending forces are folded in
func (f ForcesComponent) Motion() mgl32.Vec3 {
	return f.Velocity.Add(f.Forces)
}

// Fold moves pending forces into velocity and clears the accumulator
func (f *ForcesComponent) Fold() {
	f.Velocity = f.Velocity.Add(f.Forces)
	f.Forces = mgl32.Vec3{}
}
