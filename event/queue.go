package event

import (
	"github.com/lixenwraith/voxel-fighter/parameter"
)

// EventQueue is a fixed-size ring buffer of game events
// Single producer and consumer: the frame goroutine pushes during system updates
// and the router drains between systems
//
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	events  [parameter.EventQueueSize]GameEvent
	head    uint64 // Read index
	tail    uint64 // Write index
	dropped uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest unread one when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
		eq.dropped++
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&parameter.EventBufferMask])
		eq.events[i&parameter.EventBufferMask] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
