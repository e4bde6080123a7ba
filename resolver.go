package logport

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Entry is one backend candidate in the resolution order.
// Available must be cheap and side-effect free; New is called at most once
// per process (for the winning entry).
type Entry struct {
	Name      string
	Priority  int // lower wins; ties resolve in registration order
	Available func() bool
	New       func() Provider
}

// Resolver is the single source of truth for which backend is active.
//
// Auto-detection scans the registered entries in priority order and
// instantiates the first available one. The scan runs at most once per
// Resolver, even under concurrent first access, and is never recomputed:
// a backend that becomes available later is intentionally ignored.
//
// An explicit override set via SetProvider always wins over auto-detection
// and never triggers it. There is no unset; callers replace, never clear.
type Resolver struct {
	mu      sync.Mutex
	entries []Entry

	once     sync.Once
	resolved Provider

	override atomic.Pointer[Provider]
}

// NewResolver builds a Resolver seeded with entries.
func NewResolver(entries ...Entry) *Resolver {
	r := &Resolver{}
	r.entries = append(r.entries, entries...)
	return r
}

// Register appends a backend candidate. Registration after the first
// resolution has no effect on the memoized pick.
func (r *Resolver) Register(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// SetProvider installs an explicit override. Last write wins.
func (r *Resolver) SetProvider(p Provider) {
	r.override.Store(&p)
}

// Logger returns a Logger bound to name, routed through the override if set,
// else the auto-detected backend, else an inert LogFunc reporting false.
func (r *Resolver) Logger(name string) Logger {
	if p := r.provider(); p != nil {
		return Logger{log: p.GetLogger(name)}
	}
	return Logger{log: nopLog}
}

// CurrentLogger derives the name from the immediate caller and delegates to
// Logger.
func (r *Resolver) CurrentLogger() Logger {
	return r.Logger(callerName(2))
}

func (r *Resolver) provider() Provider {
	if p := r.override.Load(); p != nil {
		return *p
	}
	r.once.Do(func() {
		r.mu.Lock()
		entries := make([]Entry, len(r.entries))
		copy(entries, r.entries)
		r.mu.Unlock()

		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Priority < entries[j].Priority
		})
		for _, e := range entries {
			if e.Available == nil || e.New == nil || !e.Available() {
				continue
			}
			r.resolved = e.New()
			return
		}
	})
	return r.resolved
}
