package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/voxel-fighter/component"
)

// TestQueryBuilder verifies store intersection
func TestQueryBuilder(t *testing.T) {
	w := NewWorld(nil)

	e1 := w.CreateEntity()
	w.Components.Transform.Set(e1, component.NewTransform(mgl32.Vec3{1, 1, 1}))
	w.Components.Forces.Set(e1, component.NewForces())

	e2 := w.CreateEntity()
	w.Components.Transform.Set(e2, component.NewTransform(mgl32.Vec3{2, 2, 2}))

	e3 := w.CreateEntity()
	w.Components.Forces.Set(e3, component.NewForces())

	results := w.Query().
		With(w.Components.Transform).
		With(w.Components.Forces).
		Execute()

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0] != e1 {
		t.Errorf("Expected entity %d, got %d", e1, results[0])
	}

	single := w.Query().With(w.Components.Transform).Execute()
	if len(single) != 2 {
		t.Errorf("Expected 2 transform results, got %d", len(single))
	}

	if empty := w.Query().Execute(); len(empty) != 0 {
		t.Errorf("Expected 0 empty results, got %d", len(empty))
	}
}

// TestQueryBuilder_DoesNotMutateStore verifies in-place filtering works on a copy
func TestQueryBuilder_DoesNotMutateStore(t *testing.T) {
	w := NewWorld(nil)
	for i := 0; i < 4; i++ {
		e := w.CreateEntity()
		w.Components.Forces.Set(e, component.NewForces())
		if i%2 == 0 {
			w.Components.Timer.Set(e, component.TimerComponent{})
		}
	}
	_ = w.Query().With(w.Components.Forces).With(w.Components.Timer).Execute()
	if got := len(w.Components.Forces.All()); got != 4 {
		t.Errorf("Forces store changed by query: %d entities", got)
	}
}

// TestQuerySignature verifies signature-driven queries
func TestQuerySignature(t *testing.T) {
	w := NewWorld(nil)
	e := w.CreateEntity()
	w.Components.SceneObject.Set(e, component.NewSceneObject())
	w.Components.Collider.Set(e, component.NewBoxCollider(0.5))
	w.Components.Forces.Set(e, component.NewForces())

	partial := w.CreateEntity()
	w.Components.SceneObject.Set(partial, component.NewSceneObject())

	got := w.QuerySignature(SignatureOf(KindSceneObject, KindCollider, KindForces))
	if len(got) != 1 || got[0] != e {
		t.Errorf("Expected [%d], got %v", e, got)
	}
}

// TestQueryBuilder_Panic verifies panic behavior
func TestQueryBuilder_Panic(t *testing.T) {
	w := NewWorld(nil)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when modifying executed query")
		}
	}()

	q := w.Query()
	q.Execute()
	q.With(w.Components.Transform)
}
