package engine

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/event"
	"github.com/lixenwraith/voxel-fighter/status"
)

// World owns entities, component stores, systems and frame resources
// All methods must be called from the frame goroutine
type World struct {
	Components ComponentStore
	Resources  *Resource

	nextID  core.Entity
	alive   map[core.Entity]struct{}
	systems []System
	router  *EventRouter
}

// NewWorld creates an empty world; a nil logger is replaced by a no-op logger
func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	queue := event.NewEventQueue()
	return &World{
		Components: newComponentStore(),
		Resources: &Resource{
			Time:       &TimeResource{},
			Events:     queue,
			Commands:   NewCommands(),
			Collisions: NewCollisionSet(),
			Status:     status.NewRegistry(),
			Log:        log,
		},
		nextID: 1,
		alive:  make(map[core.Entity]struct{}),
		router: NewEventRouter(queue),
	}
}

func (w *World) reserveEntityID() core.Entity {
	e := w.nextID
	w.nextID++
	return e
}

// CreateEntity allocates a live entity with no components
func (w *World) CreateEntity() core.Entity {
	e := w.reserveEntityID()
	w.alive[e] = struct{}{}
	return e
}

// Alive reports whether e was created and not yet destroyed
func (w *World) Alive(e core.Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.alive)
}

// DestroyEntity removes e from every store and unlinks it from its scene parent
func (w *World) DestroyEntity(e core.Entity) error {
	if !w.Alive(e) {
		return fmt.Errorf("destroy %d: %w", e, ErrDeadEntity)
	}

	if so, ok := w.Components.SceneObject.Get(e); ok && so.Parent != core.NullEntity {
		if parent, ok := w.Components.SceneObject.Get(so.Parent); ok {
			parent.Children = removeEntity(parent.Children, e)
			w.Components.SceneObject.Set(so.Parent, parent)
		}
	}

	for _, s := range w.Components.stores() {
		s.Remove(e)
	}
	delete(w.alive, e)
	return nil
}

// DestroyEntities removes every live entity in es with one pass per store
// Dead and repeated entities are returned unprocessed
func (w *World) DestroyEntities(es []core.Entity) (skipped []core.Entity) {
	live := make([]core.Entity, 0, len(es))
	seen := make(map[core.Entity]struct{}, len(es))
	for _, e := range es {
		if _, dup := seen[e]; dup || !w.Alive(e) {
			skipped = append(skipped, e)
			continue
		}
		seen[e] = struct{}{}
		live = append(live, e)
	}
	if len(live) == 0 {
		return skipped
	}

	for _, e := range live {
		so, ok := w.Components.SceneObject.Get(e)
		if !ok || so.Parent == core.NullEntity {
			continue
		}
		if parent, ok := w.Components.SceneObject.Get(so.Parent); ok {
			parent.Children = removeEntity(parent.Children, e)
			w.Components.SceneObject.Set(so.Parent, parent)
		}
	}

	for _, s := range w.Components.stores() {
		s.RemoveBatch(live)
	}
	for _, e := range live {
		delete(w.alive, e)
	}
	return skipped
}

func removeEntity(list []core.Entity, e core.Entity) []core.Entity {
	out := list[:0]
	for _, x := range list {
		if x != e {
			out = append(out, x)
		}
	}
	return out
}

// Signature computes the component signature of e from store membership
func (w *World) Signature(e core.Entity) Signature {
	var sig Signature
	for _, s := range w.Components.stores() {
		if s.Has(e) {
			sig = sig.With(s.Kind())
		}
	}
	return sig
}

// Matches reports whether e carries every kind in sig
func (w *World) Matches(e core.Entity, sig Signature) bool {
	for _, k := range sig.Kinds() {
		if !w.Components.ByKind(k).Has(e) {
			return false
		}
	}
	return true
}

// AddSystem inserts s in priority order; equal priorities keep insertion order
// Systems implementing EventHandler are registered with the router
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	if h, ok := s.(EventHandler); ok {
		w.router.Register(h)
	}
}

// AddHandler registers a non-system event consumer
func (w *World) AddHandler(h EventHandler) {
	w.router.Register(h)
}

// Systems returns registered systems in execution order
func (w *World) Systems() []System {
	return w.systems
}

// Update runs one frame
// Events queued before the frame are dispatched first, then after each system.
// Deferred commands are committed once every system has run
func (w *World) Update(dt time.Duration) {
	w.Resources.Time.advance(dt)
	w.router.DispatchAll()

	for _, s := range w.systems {
		s.Update()
		w.router.DispatchAll()
	}

	w.Resources.Commands.Commit(w)
	w.router.DispatchAll()
}
