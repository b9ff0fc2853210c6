package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/voxel-fighter/event"
	"github.com/lixenwraith/voxel-fighter/status"
)

// Resource holds world singletons, accessed via World.Resources
type Resource struct {
	Time       *TimeResource
	Events     *event.EventQueue
	Commands   *Commands
	Collisions *CollisionSet

	// Telemetry
	Status *status.Registry
	Log    *zap.Logger
}

// TimeResource is advanced by World.Update at the start of each frame
type TimeResource struct {
	// FrameNumber counts completed and in-progress frames, first frame is 1
	FrameNumber int64

	// DeltaTime is the simulated duration of the current frame
	DeltaTime time.Duration

	// Elapsed is the simulated time since the world was created
	Elapsed time.Duration
}

func (tr *TimeResource) advance(dt time.Duration) {
	tr.FrameNumber++
	tr.DeltaTime = dt
	tr.Elapsed += dt
}

// Emit pushes an event stamped with the current frame
func (r *Resource) Emit(t event.EventType, payload any) {
	r.Events.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   r.Time.FrameNumber,
	})
}
