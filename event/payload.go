package event

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/voxel-fighter/core"
)

// CollisionPayload carries the resolved response for one entity
// Response is the impulse before negation; Accepted counts contacts that contributed
type CollisionPayload struct {
	Entity   core.Entity
	Response mgl32.Vec3
	Accepted int
	Checked  int
}

// Hit reports whether any axis of the response is non-zero
func (p *CollisionPayload) Hit() bool {
	return p.Response[0] != 0 || p.Response[1] != 0 || p.Response[2] != 0
}

// TimerExpiredPayload names the entity whose timer ran out
type TimerExpiredPayload struct {
	Entity core.Entity
}

// ExplosionPayload describes a detonation
type ExplosionPayload struct {
	Entity core.Entity
	Center mgl32.Vec3
	Radius int
	Carved int
}

// SpawnedPayload names a freshly committed entity
type SpawnedPayload struct {
	Entity core.Entity
}
