package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/engine"
	"github.com/lixenwraith/voxel-fighter/parameter"
)

// SceneSystem composes local transforms down the scene graph into SceneObject.Global
type SceneSystem struct {
	world   *engine.World
	log     *zap.Logger
	visited map[core.Entity]struct{}
}

// NewSceneSystem creates a scene graph updater
func NewSceneSystem(world *engine.World) *SceneSystem {
	return &SceneSystem{
		world:   world,
		log:     world.Resources.Log.Named("scene"),
		visited: make(map[core.Entity]struct{}),
	}
}

// Name returns system's name
func (s *SceneSystem) Name() string {
	return "scene"
}

// Priority returns the system's priority
func (s *SceneSystem) Priority() int {
	return parameter.PriorityScene
}

// Update walks roots in store order, children in insertion order
// Nodes left unvisited belong to a parent cycle and are walked as roots
func (s *SceneSystem) Update() {
	clear(s.visited)
	nodes := s.world.Components.SceneObject.All()

	for _, e := range nodes {
		so, _ := s.world.Components.SceneObject.Get(e)
		if so.Parent == core.NullEntity || !s.world.Components.SceneObject.Has(so.Parent) {
			s.walk(e, mgl32.Ident4())
		}
	}
	for _, e := range nodes {
		if _, ok := s.visited[e]; ok {
			continue
		}
		s.log.Debug("scene cycle broken", zap.Uint64("entity", uint64(e)))
		s.walk(e, mgl32.Ident4())
	}
}

func (s *SceneSystem) walk(e core.Entity, parent mgl32.Mat4) {
	if _, ok := s.visited[e]; ok {
		return
	}
	s.visited[e] = struct{}{}

	so, ok := s.world.Components.SceneObject.Get(e)
	if !ok {
		return
	}
	local := mgl32.Ident4()
	if t, ok := s.world.Components.Transform.Get(e); ok {
		local = t.Local
	}
	so.Global = parent.Mul4(local)
	s.world.Components.SceneObject.Set(e, so)

	for _, child := range so.Children {
		s.walk(child, so.Global)
	}
}
