package engine

import "strings"

// Kind identifies a component type in a Signature
type Kind uint8

const (
	KindSceneObject Kind = iota
	KindTransform
	KindCollider
	KindForces
	KindVoxelMap
	KindExplosive
	KindTimer

	kindCount
)

var kindNames = [kindCount]string{
	KindSceneObject: "SceneObject",
	KindTransform:   "Transform",
	KindCollider:    "Collider",
	KindForces:      "Forces",
	KindVoxelMap:    "VoxelMap",
	KindExplosive:   "Explosive",
	KindTimer:       "Timer",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// Signature is a bitset of component kinds
type Signature uint64

// SignatureOf builds a signature from kinds
func SignatureOf(kinds ...Kind) Signature {
	var s Signature
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// With returns s with k set
func (s Signature) With(k Kind) Signature {
	return s | 1<<k
}

// Has reports whether k is set
func (s Signature) Has(k Kind) bool {
	return s&(1<<k) != 0
}

// Contains reports whether s is a superset of other
func (s Signature) Contains(other Signature) bool {
	return s&other == other
}

// Union returns the kinds present in either signature
func (s Signature) Union(other Signature) Signature {
	return s | other
}

// Kinds lists the set kinds in ascending order
func (s Signature) Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (s Signature) String() string {
	kinds := s.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}
