package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 metric stored as bits; zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

// Set stores v
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Value loads the current value
func (g *Gauge) Value() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Label is a short string metric, truncated to MaxLabelLen
type Label struct {
	ptr atomic.Pointer[string]
}

// MaxLabelLen bounds label length so the HUD line stays readable
const MaxLabelLen = 24

// Set stores s
func (l *Label) Set(s string) {
	if len(s) > MaxLabelLen {
		s = s[:MaxLabelLen]
	}
	l.ptr.Store(&s)
}

// Value returns the stored string, empty when unset
func (l *Label) Value() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
