package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry is the process-wide metrics facade
// Systems resolve their metric pointers once at construction and write atomics during Update,
// the HUD and the sandbox shutdown log read them from any goroutine
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
	Labels   *MetricMap[Label]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
		Labels:   NewMetricMap[Label](),
	}
}

// Entry is a formatted metric for display
type Entry struct {
	Key   string
	Value string
}

// Snapshot formats metrics matching any of prefixes (all when none are given),
// counters first, then gauges and labels, each sorted by key
func (r *Registry) Snapshot(prefixes ...string) []Entry {
	var out []Entry
	r.Counters.Range(func(k string, v *atomic.Int64) {
		out = append(out, Entry{Key: k, Value: strconv.FormatInt(v.Load(), 10)})
	}, prefixes...)
	r.Gauges.Range(func(k string, v *Gauge) {
		out = append(out, Entry{Key: k, Value: fmt.Sprintf("%.2f", v.Value())})
	}, prefixes...)
	r.Labels.Range(func(k string, v *Label) {
		out = append(out, Entry{Key: k, Value: v.Value()})
	}, prefixes...)
	return out
}

// TotalCount returns the number of metrics of all kinds
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count() + r.Labels.Count()
}
