package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/parameter"
)

func TestEventQueue_FIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventCollision, Frame: int64(i)})
	}
	require.Equal(t, 5, q.Len())

	events := q.Consume()
	require.Len(t, events, 5)
	for i, ev := range events {
		assert.Equal(t, int64(i), ev.Frame)
	}
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Consume())
}

func TestEventQueue_OverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventTimerExpired, Frame: int64(i)})
	}

	assert.Equal(t, parameter.EventQueueSize, q.Len())
	assert.Equal(t, uint64(10), q.Dropped())

	events := q.Consume()
	require.Len(t, events, parameter.EventQueueSize)
	assert.Equal(t, int64(10), events[0].Frame)
	assert.Equal(t, int64(total-1), events[len(events)-1].Frame)
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "Collision", EventCollision.String())
	assert.Equal(t, "Explosion", EventExplosion.String())
	assert.Equal(t, "Unknown", EventType(999).String())
}

func TestCollisionPayload_Hit(t *testing.T) {
	p := &CollisionPayload{Entity: core.Entity(3)}
	assert.False(t, p.Hit())
	p.Response[2] = 0.5
	assert.True(t, p.Hit())
}
