package system

import (
	"github.com/lixenwraith/voxel-fighter/engine"
	"github.com/lixenwraith/voxel-fighter/event"
	"github.com/lixenwraith/voxel-fighter/parameter"
)

// TimerSystem counts entity timers down and reports expiry once
type TimerSystem struct {
	world *engine.World
}

// NewTimerSystem creates a new timer system
func NewTimerSystem(world *engine.World) *TimerSystem {
	return &TimerSystem{world: world}
}

// Name returns system's name
func (s *TimerSystem) Name() string {
	return "timer"
}

// Priority returns the system's priority
func (s *TimerSystem) Priority() int {
	return parameter.PriorityTimer
}

// Update decrements timers and emits EventTimerExpired on the frame they reach zero
func (s *TimerSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime

	for _, e := range s.world.Components.Timer.All() {
		timer, ok := s.world.Components.Timer.Get(e)
		if !ok || timer.Expired {
			continue
		}

		timer.Remaining -= dt
		if timer.Remaining <= 0 {
			timer.Remaining = 0
			timer.Expired = true
			s.world.Resources.Emit(event.EventTimerExpired, &event.TimerExpiredPayload{Entity: e})
		}
		s.world.Components.Timer.Set(e, timer)
	}
}
