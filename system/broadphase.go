package system

import (
	"sync/atomic"

	"github.com/lixenwraith/voxel-fighter/component"
	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/engine"
	"github.com/lixenwraith/voxel-fighter/parameter"
	"github.com/lixenwraith/voxel-fighter/vmath"
)

// BroadPhaseSystem rebuilds the frame's collision set
// Every entity with the collision signature is tracked, even with no nearby solid voxel,
// so resolution damps it every frame
type BroadPhaseSystem struct {
	world     *engine.World
	mapEntity core.Entity

	boxes    []vmath.Box
	entities []core.Entity

	statCandidates *atomic.Int64
	statPairs      *atomic.Int64
}

// NewBroadPhaseSystem creates a broad phase sweeping the voxel map on mapEntity
func NewBroadPhaseSystem(world *engine.World, mapEntity core.Entity) *BroadPhaseSystem {
	return &BroadPhaseSystem{
		world:          world,
		mapEntity:      mapEntity,
		statCandidates: world.Resources.Status.Counters.Get("broadphase.candidates"),
		statPairs:      world.Resources.Status.Counters.Get("broadphase.pairs"),
	}
}

// Name returns system's name
func (s *BroadPhaseSystem) Name() string {
	return "broadphase"
}

// Priority returns the system's priority
func (s *BroadPhaseSystem) Priority() int {
	return parameter.PriorityBroadPhase
}

// Update lists, per entity, the solid voxels within one cell of its mirrored box in x, y, z order,
// then every overlapping entity pair in world space
func (s *BroadPhaseSystem) Update() {
	set := s.world.Resources.Collisions
	set.Reset()

	s.entities = s.entities[:0]
	s.boxes = s.boxes[:0]

	voxels, hasMap := s.world.Components.VoxelMap.Get(s.mapEntity)
	dims := [3]int{voxels.X, voxels.Y, voxels.Z}

	for _, e := range s.world.QuerySignature(CollisionSignature) {
		so, _ := s.world.Components.SceneObject.Get(e)
		collider, _ := s.world.Components.Collider.Get(e)
		pos := so.Position()
		box := vmath.Box{Min: collider.Min(pos), Max: collider.Max(pos)}
		// Mirroring swaps the corners
		cells := vmath.Box{Min: component.MapPoint(box.Max), Max: component.MapPoint(box.Min)}

		s.entities = append(s.entities, e)
		s.boxes = append(s.boxes, box)
		set.Track(e)

		if !hasMap {
			continue
		}
		lo, hi, ok := cells.CellRange(parameter.BroadPhaseMargin, dims)
		if !ok {
			continue
		}
		for x := lo[0]; x <= hi[0]; x++ {
			for y := lo[1]; y <= hi[1]; y++ {
				for z := lo[2]; z <= hi[2]; z++ {
					idx, ok := voxels.Index(x, y, z)
					if !ok || !voxels.SolidAt(idx) {
						continue
					}
					set.AddVoxel(e, idx)
					s.statCandidates.Add(1)
				}
			}
		}
	}

	// O(n²) pair scan
	for i := 0; i < len(s.entities); i++ {
		for j := i + 1; j < len(s.entities); j++ {
			if s.boxes[i].Overlaps(s.boxes[j]) {
				set.AddPair(s.entities[i], s.entities[j])
				s.statPairs.Add(1)
			}
		}
	}
}
