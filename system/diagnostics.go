package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/voxel-fighter/engine"
	"github.com/lixenwraith/voxel-fighter/parameter"
	"github.com/lixenwraith/voxel-fighter/status"
)

// DiagnosticsSystem publishes frame-level engine metrics to the status registry
// It runs last so the counts reflect the frame's final entity set before commit
type DiagnosticsSystem struct {
	world *engine.World
	now   func() time.Time
	last  time.Time

	statFrames   *atomic.Int64
	statDropped  *atomic.Int64
	statEntities *status.Gauge
	statFrameMs  *status.Gauge
	statPending  *status.Gauge
}

// NewDiagnosticsSystem creates a diagnostics system using the wall clock
func NewDiagnosticsSystem(world *engine.World) *DiagnosticsSystem {
	reg := world.Resources.Status
	return &DiagnosticsSystem{
		world:        world,
		now:          time.Now,
		statFrames:   reg.Counters.Get("engine.frames"),
		statDropped:  reg.Counters.Get("engine.events_dropped"),
		statEntities: reg.Gauges.Get("engine.entities"),
		statFrameMs:  reg.Gauges.Get("engine.frame_ms"),
		statPending:  reg.Gauges.Get("engine.commands"),
	}
}

// Name returns system's name
func (s *DiagnosticsSystem) Name() string {
	return "diagnostics"
}

// Priority returns the system's priority
func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

func (s *DiagnosticsSystem) Update() {
	now := s.now()
	if !s.last.IsZero() {
		s.statFrameMs.Set(float64(now.Sub(s.last)) / float64(time.Millisecond))
	}
	s.last = now

	s.statFrames.Store(s.world.Resources.Time.FrameNumber)
	s.statDropped.Store(int64(s.world.Resources.Events.Dropped()))
	s.statEntities.Set(float64(s.world.EntityCount()))
	s.statPending.Set(float64(s.world.Resources.Commands.Pending()))
}
