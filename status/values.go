package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// MaxLabelRunes caps label length so the debug line stays on one row
const MaxLabelRunes = 24

// Gauge is a float64 metric stored as raw bits
// Zero value reads as 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Smooth folds sample into an exponential moving average and returns the result
// alpha is the weight of the new sample; the first sample on a zero gauge is taken as is
func (g *Gauge) Smooth(sample, alpha float64) float64 {
	for {
		old := g.bits.Load()
		next := sample
		if old != 0 {
			next = math.Float64frombits(old)*(1-alpha) + sample*alpha
		}
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Label is a short string metric such as the active screen name
type Label struct {
	ptr atomic.Pointer[string]
}

// Set stores val cut to MaxLabelRunes runes
func (l *Label) Set(val string) {
	if utf8.RuneCountInString(val) > MaxLabelRunes {
		r := []rune(val)
		val = string(r[:MaxLabelRunes])
	}
	l.ptr.Store(&val)
}

func (l *Label) Get() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
