package status

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestGaugeSetGet(t *testing.T) {
	var g Gauge
	if g.Get() != 0 {
		t.Errorf("Expected zero value 0, got %f", g.Get())
	}
	g.Set(848.53)
	if g.Get() != 848.53 {
		t.Errorf("Expected 848.53, got %f", g.Get())
	}
}

func TestGaugeSmooth(t *testing.T) {
	var g Gauge
	if got := g.Smooth(16, 0.5); got != 16 {
		t.Errorf("Expected first sample to be taken as is, got %f", got)
	}
	if got := g.Smooth(32, 0.5); got != 24 {
		t.Errorf("Expected 24, got %f", got)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				g.Smooth(24, 0.1)
			}
		}()
	}
	wg.Wait()
	if g.Get() != 24 {
		t.Errorf("Expected average to stay at 24, got %f", g.Get())
	}
}

func TestLabelTruncatesRunes(t *testing.T) {
	var l Label
	if l.Get() != "" {
		t.Error("Expected empty zero value")
	}

	l.Set(strings.Repeat("é", MaxLabelRunes+5))
	if got := []rune(l.Get()); len(got) != MaxLabelRunes {
		t.Errorf("Expected truncation to %d runes, got %d", MaxLabelRunes, len(got))
	}

	l.Set("menu")
	if l.Get() != "menu" {
		t.Errorf("Expected menu, got %q", l.Get())
	}
}

func TestTableCachesPointers(t *testing.T) {
	tbl := newTable[atomic.Int64]()

	p1 := tbl.Get(KeyScore)
	p1.Store(7)
	if p2 := tbl.Get(KeyScore); p2 != p1 || p2.Load() != 7 {
		t.Error("Expected Get to return the cached pointer")
	}

	tbl.Get(KeyFrames)
	var keys []string
	tbl.Each(func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	if len(keys) != 2 || keys[0] != KeyFrames || keys[1] != KeyScore {
		t.Errorf("Expected sorted keys, got %v", keys)
	}
	if tbl.Len() != 2 {
		t.Errorf("Expected 2 keys, got %d", tbl.Len())
	}
}

func TestRegistryLine(t *testing.T) {
	r := NewRegistry()
	if r.Line() != "" {
		t.Errorf("Expected empty line, got %q", r.Line())
	}

	r.Labels.Get(KeyScreen).Set("playing")
	r.Counters.Get(KeyScore).Store(3)
	r.Counters.Get(KeyFrames).Store(120)
	r.Gauges.Get(KeyBallSpeed).Set(848.53)
	r.Flags.Get(KeyAudioAvailable).Store(true)

	want := "screen=playing frames=120 score=3 speed=848.5 audio=true"
	if got := r.Line(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if r.Len() != 5 {
		t.Errorf("Expected 5 metrics, got %d", r.Len())
	}
}
