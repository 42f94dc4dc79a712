// Package lock provides a keyed mutual exclusion primitive used to serialize
// mutations of a single aggregate without blocking work on unrelated aggregates.
package lock

import "sync"

// KeyedMutex provides exclusive sections scoped to a string key.
// Locking one key never blocks holders of other keys, so mutations to
// different aggregates proceed in parallel while mutations to the same
// aggregate are strictly serialized.
//
// Example:
//
//	locker := lock.NewKeyedMutex()
//	unlock := locker.Lock(trackingID.String())
//	defer unlock()
//	// mutate the aggregate identified by trackingID
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*keyedLock),
	}
}

// Lock acquires the exclusive section for key, blocking until any current
// holder of the same key releases it. The returned function releases the
// section and must be called exactly once, typically via defer.
func (m *KeyedMutex) Lock(key string) func() {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &keyedLock{}
		m.locks[key] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, key)
		}
		m.mu.Unlock()
	}
}
