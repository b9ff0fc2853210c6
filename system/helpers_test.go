package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/voxel-fighter/component"
	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/engine"
	"github.com/lixenwraith/voxel-fighter/parameter"
)

var (
	solid = mgl32.Vec4{0.5, 0.4, 0.3, 1}
	air   = mgl32.Vec4{}
)

// newMapWorld creates a world whose map entity holds an all-air map of the given size
func newMapWorld(x, y, z int) (*engine.World, core.Entity, component.VoxelMapComponent) {
	w := engine.NewWorld(nil)
	m := component.NewVoxelMap(x, y, z)
	mapEntity := w.CreateEntity()
	w.Components.VoxelMap.Set(mapEntity, m)
	w.Components.SceneObject.Set(mapEntity, component.NewSceneObject())
	return w, mapEntity, m
}

// addBody creates an entity carrying the collision signature at pos
func addBody(w *engine.World, pos, vel mgl32.Vec3) core.Entity {
	e := w.CreateEntity()
	so := component.NewSceneObject()
	so.Global = mgl32.Translate3D(pos[0], pos[1], pos[2])
	w.Components.SceneObject.Set(e, so)
	w.Components.Transform.Set(e, component.NewTransform(pos))
	w.Components.Collider.Set(e, component.NewBoxCollider(0.5))
	f := component.NewForces()
	f.Velocity = vel
	w.Components.Forces.Set(e, f)
	return e
}

func mustIndex(m component.VoxelMapComponent, x, y, z int) int {
	i, ok := m.Index(x, y, z)
	if !ok {
		panic("index out of range")
	}
	return i
}

func damped(v mgl32.Vec3) mgl32.Vec3 {
	f := component.ForcesComponent{Velocity: v}
	f.Damp(parameter.VelocityDamping)
	return f.Velocity
}

func forcesOf(w *engine.World, e core.Entity) component.ForcesComponent {
	f, _ := w.Components.Forces.Get(e)
	return f
}
