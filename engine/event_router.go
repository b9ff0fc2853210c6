package engine

import "github.com/lixenwraith/voxel-fighter/event"

// maxDispatchPasses bounds handler chains that emit further events
const maxDispatchPasses = 8

// EventRouter dispatches queued events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the frame goroutine
//   - Handlers for one type run in registration order
//   - World drains the queue after every system, so a later system sees events
//     emitted earlier in the same frame
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
}

// NewEventRouter creates a router attached to queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for each of its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll drains the queue in FIFO order
// Events emitted by handlers are dispatched in follow-up passes; returns the number dispatched
func (r *EventRouter) DispatchAll() int {
	dispatched := 0
	for pass := 0; pass < maxDispatchPasses; pass++ {
		events := r.queue.Consume()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		dispatched += len(events)
	}
	return dispatched
}

// HasHandlers reports whether t has any handler
func (r *EventRouter) HasHandlers(t event.EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for t
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
