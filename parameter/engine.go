package parameter

import "time"

// Frame timing
const (
	TickRate     = 60
	TickDuration = time.Second / TickRate
)

// Event queue
const (
	EventQueueSize  = 1024 // Power of two
	EventBufferMask = EventQueueSize - 1
)

// Store preallocation
const (
	StoreInitialCapacity = 64
)
