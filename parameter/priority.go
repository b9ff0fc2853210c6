package parameter

// System execution priorities (lower runs first)
// Frame order: timers, broad phase, resolution, explosives, integrator, scene graph
const (
	PriorityTimer       = 10
	PriorityBroadPhase  = 20
	PriorityCollision   = 30 // After broad phase, before integrator consumes Forces
	PriorityExplosion   = 40 // Reacts to collision and timer events of this frame
	PriorityPhysics     = 50
	PriorityScene       = 60
	PriorityDiagnostics = 1000
)
