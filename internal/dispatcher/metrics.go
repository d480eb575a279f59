package dispatcher

import (
	"sync"
	"time"
)

// CommandStats holds per-command dispatch counters.
type CommandStats struct {
	// Count is the number of dispatches.
	Count uint64
	// Errors is the number of error results.
	Errors uint64
	// Panics is the number of recovered handler panics.
	Panics uint64
	// TotalTime is the cumulative handler execution time.
	TotalTime time.Duration
}

// Metrics collects dispatch statistics per command name.
type Metrics struct {
	mu    sync.Mutex
	stats map[string]CommandStats
}

// NewMetrics creates a metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		stats: make(map[string]CommandStats),
	}
}

// RecordDispatch records one dispatch of the named command.
func (m *Metrics) RecordDispatch(name string, elapsed time.Duration, status Status) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.stats[name]
	s.Count++
	s.TotalTime += elapsed
	if status == StatusError {
		s.Errors++
	}
	m.stats[name] = s
}

// RecordPanic records a recovered panic for the named command.
func (m *Metrics) RecordPanic(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.stats[name]
	s.Panics++
	m.stats[name] = s
}

// Stats returns a copy of the counters for one command.
func (m *Metrics) Stats(name string) CommandStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats[name]
}

// All returns a copy of all collected counters.
func (m *Metrics) All() map[string]CommandStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]CommandStats, len(m.stats))
	for name, s := range m.stats {
		out[name] = s
	}
	return out
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = make(map[string]CommandStats)
}
