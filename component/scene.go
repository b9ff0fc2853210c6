package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/voxel-fighter/core"
)

// SceneObjectComponent holds the world transform produced by the scene system
// and the entity's place in the scene graph
type SceneObjectComponent struct {
	Global   mgl32.Mat4
	Parent   core.Entity
	Children []core.Entity
}

// NewSceneObject returns a root node with identity transform
func NewSceneObject() SceneObjectComponent {
	return SceneObjectComponent{Global: mgl32.Ident4()}
}

// Position is the translation column of the world transform
func (s SceneObjectComponent) Position() mgl32.Vec3 {
	return s.Global.Col(3).Vec3()
}

// TransformComponent is the local transform relative to the scene parent
type TransformComponent struct {
	Local mgl32.Mat4
}

// NewTransform returns an identity transform translated to pos
func NewTransform(pos mgl32.Vec3) TransformComponent {
	return TransformComponent{Local: mgl32.Translate3D(pos[0], pos[1], pos[2])}
}

// Translate moves the local transform by v in parent space
func (t *TransformComponent) Translate(v mgl32.Vec3) {
	t.Local = mgl32.Translate3D(v[0], v[1], v[2]).Mul4(t.Local)
}

// Translation returns the local translation column
func (t TransformComponent) Translation() mgl32.Vec3 {
	return t.Local.Col(3).Vec3()
}
