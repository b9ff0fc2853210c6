package event

// EventType represents the type of game event
type EventType int

const (
	// EventCollision reports the voxel response computed for one entity this frame
	// Trigger: CollisionSystem, once per entity in the collision set
	// Consumer: ExplosionSystem, audio | Payload: *CollisionPayload
	EventCollision EventType = iota + 1

	// EventTimerExpired signals a timer reaching zero
	// Trigger: TimerSystem
	// Consumer: ExplosionSystem | Payload: *TimerExpiredPayload
	EventTimerExpired

	// EventExplosion reports a detonation and the voxels it removed
	// Trigger: ExplosionSystem
	// Consumer: audio, HUD | Payload: *ExplosionPayload
	EventExplosion

	// EventSpawned signals a deferred spawn being committed
	// Trigger: Commands.Commit
	// Consumer: diagnostics | Payload: *SpawnedPayload
	EventSpawned
)

var typeNames = map[EventType]string{
	EventCollision:    "Collision",
	EventTimerExpired: "TimerExpired",
	EventExplosion:    "Explosion",
	EventSpawned:      "Spawned",
}

// String returns the event name, "Unknown" for unregistered values
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
