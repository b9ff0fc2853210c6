package engine

import (
	"sort"

	"github.com/lixenwraith/voxel-fighter/core"
)

// QueryBuilder intersects component stores
// Stores are visited smallest first; result order follows the smallest store's insertion order
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query starts an empty query
//
// Example:
//
//	entities := world.Query().
//	    With(world.Components.Transform).
//	    With(world.Components.Forces).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{stores: make([]QueryableStore, 0, 4)}
}

// QuerySignature returns entities whose signature contains sig
func (w *World) QuerySignature(sig Signature) []core.Entity {
	qb := w.Query()
	for _, k := range sig.Kinds() {
		qb.With(w.Components.ByKind(k))
	}
	return qb.Execute()
}

// With adds a store filter; panics after Execute
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns entities present in every added store
// Repeated calls return the cached result
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	// All returns a copy, filtering in place is safe
	candidates := qb.stores[0].All()
	for _, store := range qb.stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}
