// Package tape provides the append-only history log of completed
// calculations. Entries are immutable and are never removed or edited
// within a session; views that only want the most recent lines take
// the tail themselves.
package tape

import (
	"fmt"
	"sync"
	"time"

	"github.com/dshills/calcstorm/internal/calc"
)

// Entry records one completed evaluation.
type Entry struct {
	// Left is the accumulator value before evaluation.
	Left float64

	// Op is the operator that was applied.
	Op calc.Operator

	// Right is the operand entered by the user.
	Right float64

	// Result is the evaluation result.
	Result float64

	// When is the time the evaluation completed.
	When time.Time
}

// String renders the entry in the history format
// "<left> <op> <right> = <result>".
func (e Entry) String() string {
	return fmt.Sprintf("%s %s %s = %s",
		calc.Format(e.Left), e.Op, calc.Format(e.Right), calc.Format(e.Result))
}

// Log is an append-only sequence of entries.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds an entry. If the entry has no timestamp, one is set.
func (l *Log) Append(e Entry) {
	if e.When.IsZero() {
		e.When = time.Now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of all entries in append order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Tail returns a copy of the most recent n entries in append order.
// If n exceeds the log length the whole log is returned.
func (l *Log) Tail(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 {
		return nil
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}

	out := make([]Entry, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Last returns the most recent entry.
func (l *Log) Last() (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Lines renders the most recent n entries as history lines.
func (l *Log) Lines(n int) []string {
	entries := l.Tail(n)
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}
