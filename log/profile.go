package log

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	// frameWindow is how many recent frames the percentile is computed over.
	frameWindow = 100
	// slowFrame is the budget of one frame at 60fps.
	slowFrame = 16 * time.Millisecond
)

// RenderProfiler times frames and named render passes while debug logging is
// on. All methods are no-ops otherwise.
type RenderProfiler struct {
	mu     sync.Mutex
	passes map[string]*passStats
	frames []time.Duration // ring of the last frameWindow frames
	next   int
	count  int64
	total  time.Duration
}

type passStats struct {
	count           int64
	total, min, max time.Duration
}

func (s *passStats) add(d time.Duration) {
	if s.count == 0 || d < s.min {
		s.min = d
	}
	s.max = max(s.max, d)
	s.count++
	s.total += d
}

var (
	profiler    = newProfiler()
	renderTrace = tracer("render")
)

func newProfiler() *RenderProfiler {
	return &RenderProfiler{passes: make(map[string]*passStats)}
}

// GetProfiler returns the process-wide profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender starts timing one pass of name; call the returned func when the
// pass is done.
func (p *RenderProfiler) StartRender(name string) func() {
	if !DebugEnabled {
		return func() {}
	}
	start := time.Now()
	return func() {
		d := time.Since(start)
		p.mu.Lock()
		defer p.mu.Unlock()
		s, ok := p.passes[name]
		if !ok {
			s = &passStats{}
			p.passes[name] = s
		}
		s.add(d)
	}
}

// RecordFrame records the time taken to produce a whole view.
func (p *RenderProfiler) RecordFrame(d time.Duration) {
	if !DebugEnabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.count++
	p.total += d
	if len(p.frames) < frameWindow {
		p.frames = append(p.frames, d)
	} else {
		p.frames[p.next] = d
	}
	p.next = (p.next + 1) % frameWindow

	if d > slowFrame {
		renderTrace("slow frame: %v", d)
	}
}

// p95 returns the 95th percentile of the recent frames. Callers hold mu.
func (p *RenderProfiler) p95() time.Duration {
	if len(p.frames) == 0 {
		return 0
	}
	sorted := slices.Clone(p.frames)
	slices.Sort(sorted)
	return sorted[(len(sorted)*95-1)/100]
}

// GetStats summarises frames and passes, slowest pass first.
func (p *RenderProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "render profile: %d frames", p.count)
	if p.count > 0 {
		fmt.Fprintf(&b, ", avg %v, p95 %v", p.total/time.Duration(p.count), p.p95())
	}
	b.WriteString("\n")

	names := make([]string, 0, len(p.passes))
	for name := range p.passes {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Compare(p.passes[b].total, p.passes[a].total)
	})
	for _, name := range names {
		s := p.passes[name]
		fmt.Fprintf(&b, "  %s: n=%d avg=%v min=%v max=%v\n",
			name, s.count, s.total/time.Duration(s.count), s.min, s.max)
	}
	return b.String()
}

// LogStats writes GetStats to the debug log.
func (p *RenderProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Debug(p.GetStats())
	}
}

// Reset discards everything recorded so far.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.passes = make(map[string]*passStats)
	p.frames = nil
	p.next = 0
	p.count = 0
	p.total = 0
}
