// Package lockmap provides per-key mutexes. The character orchestrator uses
// one to serialize crew mutations per crew ID, which closes the lost-update
// race between concurrent character creations against the same crew.
package lockmap

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// LockMap hands out a mutex per key. Entries are dropped once no goroutine
// holds or waits on them.
type LockMap struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New creates an empty LockMap.
func New() *LockMap {
	return &LockMap{
		entries: make(map[string]*entry),
	}
}

// Lock acquires the mutex for key and returns the matching unlock function.
func (l *LockMap) Lock(key string) func() {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.entries, key)
		}
		l.mu.Unlock()
	}
}
