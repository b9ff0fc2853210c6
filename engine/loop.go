package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// inputBacklog bounds queued input callbacks between frames
const inputBacklog = 256

// Loop drives World frames at a fixed tick
// Input producers on other goroutines hand work to the frame goroutine through Submit
type Loop struct {
	world   *World
	tick    time.Duration
	input   chan func(*World)
	onFrame []func(*World)
}

// NewLoop creates a loop for w; tick <= 0 panics
func NewLoop(w *World, tick time.Duration) *Loop {
	if tick <= 0 {
		panic("loop tick must be positive")
	}
	return &Loop{
		world: w,
		tick:  tick,
		input: make(chan func(*World), inputBacklog),
	}
}

// Submit queues fn to run on the frame goroutine before the next update
// Returns false when the backlog is full and fn was dropped
func (l *Loop) Submit(fn func(*World)) bool {
	select {
	case l.input <- fn:
		return true
	default:
		return false
	}
}

// OnFrame adds a hook run after every frame, in registration order
func (l *Loop) OnFrame(fn func(*World)) {
	l.onFrame = append(l.onFrame, fn)
}

// Step runs one frame of dt: drain input, update the world, run frame hooks
func (l *Loop) Step(dt time.Duration) {
	l.drainInput()
	l.world.Update(dt)
	for _, fn := range l.onFrame {
		fn(l.world)
	}
}

func (l *Loop) drainInput() {
	for {
		select {
		case fn := <-l.input:
			fn(l.world)
		default:
			return
		}
	}
}

// Run steps the world every tick until ctx is cancelled
// Every frame advances simulated time by exactly one tick
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()

	log := l.world.Resources.Log
	log.Info("loop started", zap.Duration("tick", l.tick))
	defer func() {
		log.Info("loop stopped", zap.Int64("frames", l.world.Resources.Time.FrameNumber))
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.Step(l.tick)
		}
	}
}
