package engine

import (
	"github.com/lixenwraith/voxel-fighter/component"
)

// ComponentStore holds one typed store per component kind
type ComponentStore struct {
	SceneObject *Store[component.SceneObjectComponent]
	Transform   *Store[component.TransformComponent]
	Collider    *Store[component.ColliderComponent]
	Forces      *Store[component.ForcesComponent]
	VoxelMap    *Store[component.VoxelMapComponent]
	Explosive   *Store[component.ExplosiveComponent]
	Timer       *Store[component.TimerComponent]

	byKind [kindCount]QueryableStore
}

func newComponentStore() ComponentStore {
	c := ComponentStore{
		SceneObject: NewStore[component.SceneObjectComponent](KindSceneObject),
		Transform:   NewStore[component.TransformComponent](KindTransform),
		Collider:    NewStore[component.ColliderComponent](KindCollider),
		Forces:      NewStore[component.ForcesComponent](KindForces),
		VoxelMap:    NewStore[component.VoxelMapComponent](KindVoxelMap),
		Explosive:   NewStore[component.ExplosiveComponent](KindExplosive),
		Timer:       NewStore[component.TimerComponent](KindTimer),
	}
	for _, s := range []QueryableStore{
		c.SceneObject, c.Transform, c.Collider, c.Forces, c.VoxelMap, c.Explosive, c.Timer,
	} {
		c.byKind[s.Kind()] = s
	}
	return c
}

// ByKind returns the store answering for k, nil for unknown kinds
func (c *ComponentStore) ByKind(k Kind) QueryableStore {
	if k >= kindCount {
		return nil
	}
	return c.byKind[k]
}

func (c *ComponentStore) stores() []QueryableStore {
	return c.byKind[:]
}
