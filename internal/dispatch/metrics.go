package dispatch

import (
	"sort"
	"sync"
	"time"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	verbs map[Verb]*VerbMetrics

	totalDispatches uint64
	totalErrors     uint64
	totalDuration   time.Duration
}

// VerbMetrics holds the counters for a single verb.
type VerbMetrics struct {
	Verb          Verb
	DispatchCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
	LastDispatch  time.Time
}

// NewMetrics creates an empty metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		verbs: make(map[Verb]*VerbMetrics),
	}
}

// Record records one dispatch event.
func (m *Metrics) Record(v Verb, duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration
	if err != nil {
		m.totalErrors++
	}

	vm := m.verbs[v]
	if vm == nil {
		vm = &VerbMetrics{
			Verb:        v,
			MinDuration: duration,
			MaxDuration: duration,
		}
		m.verbs[v] = vm
	}

	vm.DispatchCount++
	vm.TotalDuration += duration
	vm.LastDispatch = time.Now()
	if err != nil {
		vm.ErrorCount++
	}
	if duration < vm.MinDuration {
		vm.MinDuration = duration
	}
	if duration > vm.MaxDuration {
		vm.MaxDuration = duration
	}
}

// TotalDispatches returns the number of recorded dispatches.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalErrors returns the number of dispatches that failed.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// VerbStats returns a copy of the counters for a verb, or nil when the verb
// has never been dispatched.
func (m *Metrics) VerbStats(v Verb) *VerbMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	vm := m.verbs[v]
	if vm == nil {
		return nil
	}
	out := *vm
	return &out
}

// Snapshot returns copies of all per-verb counters sorted by dispatch count,
// most dispatched first.
func (m *Metrics) Snapshot() []VerbMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]VerbMetrics, 0, len(m.verbs))
	for _, vm := range m.verbs {
		out = append(out, *vm)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DispatchCount != out[j].DispatchCount {
			return out[i].DispatchCount > out[j].DispatchCount
		}
		return out[i].Verb < out[j].Verb
	})
	return out
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verbs = make(map[Verb]*VerbMetrics)
	m.totalDispatches = 0
	m.totalErrors = 0
	m.totalDuration = 0
}
