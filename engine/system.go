package engine

import "github.com/lixenwraith/voxel-fighter/event"

// System processes entities once per frame
type System interface {
	// Name identifies the system in logs and status keys
	Name() string

	// Priority orders execution, lower runs first
	Priority() int

	// Update runs the system for the current frame
	Update()
}

// EventHandler processes routed events
// Systems implementing it are registered with the router by World.AddSystem
type EventHandler interface {
	// EventTypes lists the event types the handler receives
	EventTypes() []event.EventType

	// HandleEvent is called on the frame goroutine between system updates
	HandleEvent(ev event.GameEvent)
}
