package events

import "sync"

// Locks hands out one mutex per storage namespace so the load, apply and
// persist cycle of one visitor never interleaves with another request of
// the same visitor. An entry lives only while someone holds or waits on it.
type Locks struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewLocks creates an empty lock table
func NewLocks() *Locks {
	return &Locks{locks: make(map[string]*lockEntry)}
}

// For returns the lock of namespace
func (l *Locks) For(namespace string) sync.Locker {
	return namespaceLock{table: l, namespace: namespace}
}

// Len returns the number of namespaces currently locked or waited on
func (l *Locks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

func (l *Locks) acquire(namespace string) *lockEntry {
	l.mu.Lock()
	e, ok := l.locks[namespace]
	if !ok {
		e = &lockEntry{}
		l.locks[namespace] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return e
}

func (l *Locks) release(namespace string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.locks[namespace]
	if !ok {
		panic("events: unlock of unlocked namespace " + namespace)
	}
	e.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, namespace)
	}
}

type namespaceLock struct {
	table     *Locks
	namespace string
}

func (n namespaceLock) Lock()   { n.table.acquire(n.namespace) }
func (n namespaceLock) Unlock() { n.table.release(n.namespace) }
