package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry holds the game's runtime metrics
// The frame loop caches pointers once and writes them every frame; the debug line reads them
type Registry struct {
	Labels   *Table[Label]
	Counters *Table[atomic.Int64]
	Gauges   *Table[Gauge]
	Flags    *Table[atomic.Bool]
}

func NewRegistry() *Registry {
	return &Registry{
		Labels:   newTable[Label](),
		Counters: newTable[atomic.Int64](),
		Gauges:   newTable[Gauge](),
		Flags:    newTable[atomic.Bool](),
	}
}

// Len returns the number of metrics across all tables
func (r *Registry) Len() int {
	return r.Labels.Len() + r.Counters.Len() + r.Gauges.Len() + r.Flags.Len()
}

// Line renders key=value pairs: labels, counters, gauges, then flags, each in key order
func (r *Registry) Line() string {
	var b strings.Builder
	sep := func() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
	}

	r.Labels.Each(func(k string, v *Label) {
		sep()
		b.WriteString(k + "=" + v.Get())
	})
	r.Counters.Each(func(k string, v *atomic.Int64) {
		sep()
		fmt.Fprintf(&b, "%s=%d", k, v.Load())
	})
	r.Gauges.Each(func(k string, v *Gauge) {
		sep()
		fmt.Fprintf(&b, "%s=%.1f", k, v.Get())
	})
	r.Flags.Each(func(k string, v *atomic.Bool) {
		sep()
		fmt.Fprintf(&b, "%s=%t", k, v.Load())
	})

	return b.String()
}
