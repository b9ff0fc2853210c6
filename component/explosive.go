package component

// ExplosiveTrigger selects what detonates an explosive
type ExplosiveTrigger uint8

const (
	// TriggerTimer detonates when the entity's timer runs out
	TriggerTimer ExplosiveTrigger = iota
	// TriggerCollision detonates on the first frame with a voxel contact
	TriggerCollision
)

// ExplosiveComponent carves a sphere of voxels when triggered
type ExplosiveComponent struct {
	Radius  int
	Trigger ExplosiveTrigger
}
