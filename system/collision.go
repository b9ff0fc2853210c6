package system

import (
	"fmt"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/lixenwraith/voxel-fighter/component"
	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/engine"
	"github.com/lixenwraith/voxel-fighter/event"
	"github.com/lixenwraith/voxel-fighter/parameter"
	"github.com/lixenwraith/voxel-fighter/vmath"
)

// CollisionSignature is the component set required of every entity in the collision set
var CollisionSignature = engine.SignatureOf(engine.KindSceneObject, engine.KindCollider, engine.KindForces)

// CollisionSystem turns broad-phase voxel candidates into a stopping impulse
//
// For each tracked entity the candidate voxels are visited in broad-phase order.
// A voxel contributes when its collapsed contact normal opposes the entity's motion,
// the contact point lies inside the map and that point is air. The first accepted
// contact on an axis copies the motion on that axis into the response; later contacts
// on the same axis are ignored. Velocity is then damped once and the negated response
// is added to the entity's forces.
type CollisionSystem struct {
	world     *engine.World
	log       *zap.Logger
	mapEntity core.Entity
	pairs     PairResolver

	statEntities   *atomic.Int64
	statChecked    *atomic.Int64
	statAccepted   *atomic.Int64
	statRejected   *atomic.Int64
	statDegenerate *atomic.Int64
	statSkipped    *atomic.Int64
	statPairs      *atomic.Int64

	enabled bool
}

// NewCollisionSystem creates a collision system resolving against the voxel map on mapEntity
func NewCollisionSystem(world *engine.World, mapEntity core.Entity) *CollisionSystem {
	s := &CollisionSystem{
		world:     world,
		log:       world.Resources.Log.Named("collision"),
		mapEntity: mapEntity,
		pairs:     NopPairResolver{},
	}

	reg := world.Resources.Status
	s.statEntities = reg.Counters.Get("collision.entities")
	s.statChecked = reg.Counters.Get("collision.checked")
	s.statAccepted = reg.Counters.Get("collision.accepted")
	s.statRejected = reg.Counters.Get("collision.rejected")
	s.statDegenerate = reg.Counters.Get("collision.degenerate")
	s.statSkipped = reg.Counters.Get("collision.skipped")
	s.statPairs = reg.Counters.Get("collision.pairs")

	s.Init()
	return s
}

// Init enables the system
func (s *CollisionSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *CollisionSystem) Name() string {
	return "collision"
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

// Signature returns the components an entity needs to be resolved
func (s *CollisionSystem) Signature() engine.Signature {
	return CollisionSignature
}

// SetEnabled toggles resolution; a disabled system leaves every entity untouched
func (s *CollisionSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// SetPairResolver replaces the entity pair handler; nil restores the no-op default
func (s *CollisionSystem) SetPairResolver(r PairResolver) {
	if r == nil {
		r = NopPairResolver{}
	}
	s.pairs = r
}

// Update resolves every entity in the collision set, then every entity pair
// Failures are logged and counted, never returned
func (s *CollisionSystem) Update() {
	if !s.enabled {
		return
	}

	voxels, ok := s.world.Components.VoxelMap.Get(s.mapEntity)
	if !ok {
		s.statSkipped.Add(1)
		s.log.Warn("collision pass skipped",
			zap.Uint64("world", uint64(s.mapEntity)),
			zap.Error(fmt.Errorf("voxel map: %w", engine.ErrMissingComponent)))
		return
	}

	set := s.world.Resources.Collisions
	for _, e := range set.Entities() {
		contact, err := s.resolve(e, voxels, set.Candidates(e))
		if err != nil {
			s.statSkipped.Add(1)
			s.log.Warn("entity skipped", zap.Uint64("entity", uint64(e)), zap.Error(err))
			continue
		}
		s.statEntities.Add(1)
		s.statChecked.Add(int64(contact.Checked))
		s.statAccepted.Add(int64(contact.Accepted))
		s.statRejected.Add(int64(contact.Checked - contact.Accepted))
		if contact.Accepted > 0 {
			s.world.Resources.Emit(event.EventCollision, contact)
		}
	}

	for _, p := range set.Pairs {
		s.ResolveEntityPair(p.A, p.B)
	}
}

// ResolveEntityPair hands an entity-entity candidate to the installed PairResolver
func (s *CollisionSystem) ResolveEntityPair(a, b core.Entity) {
	s.statPairs.Add(1)
	s.pairs.ResolvePair(s.world, a, b)
}

func (s *CollisionSystem) resolve(e core.Entity, voxels component.VoxelMapComponent, candidates []int) (*event.CollisionPayload, error) {
	so, okScene := s.world.Components.SceneObject.Get(e)
	collider, okCollider := s.world.Components.Collider.Get(e)
	forces, okForces := s.world.Components.Forces.Get(e)
	if !okScene || !okCollider || !okForces {
		return nil, fmt.Errorf("signature %s, want %s: %w",
			s.world.Signature(e), CollisionSignature, engine.ErrMissingComponent)
	}

	contact := &event.CollisionPayload{Entity: e, Checked: len(candidates)}
	brE := collider.Corner(so.Position())
	motion := forces.Motion()
	dims := voxels.Dimensions()

	for _, index := range candidates {
		posV := voxels.Position(index)
		normal, err := contactNormal(brE, posV)
		if err != nil {
			s.statDegenerate.Add(1)
			s.log.Debug("candidate skipped",
				zap.Uint64("entity", uint64(e)), zap.Int("voxel", index), zap.Error(err))
			continue
		}

		c := posV.Sub(normal)
		if normal.Dot(motion) >= 0 || !vmath.InHalfOpen(c, dims) {
			continue
		}
		if voxels.Color(c[0], c[1], c[2])[3] >= parameter.OccupancyThreshold {
			continue
		}

		contact.Accepted++
		for i := 0; i < 3; i++ {
			if normal[i] != 0 && contact.Response[i] == 0 {
				contact.Response[i] += motion[i]
				break
			}
		}
	}

	forces.Damp(parameter.VelocityDamping)
	forces.AddForce(contact.Response.Mul(-1))
	s.world.Components.Forces.Set(e, forces)

	return contact, nil
}

// contactNormal collapses the corner offset between entity and voxel to its dominant axis
// and returns it as a unit vector
func contactNormal(brE, posV mgl32.Vec3) (mgl32.Vec3, error) {
	brV := posV.Sub(vmath.Splat3(parameter.VoxelCenterOffset)).Mul(-1)
	df := vmath.DominantAxis(brE.Sub(brV))
	if vmath.IsZero3(df) {
		return mgl32.Vec3{}, fmt.Errorf("corner %v voxel %v: %w", brE, posV, engine.ErrDegenerateNormal)
	}
	return vmath.UnitAxis(df), nil
}
