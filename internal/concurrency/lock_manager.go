// Package concurrency provides keyed mutual exclusion.
package concurrency

import (
	"sync"
)

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// LockManager hands out one mutex per key. An entry lives only while some
// caller holds or waits on it, so the key space is bounded by in-flight
// callers rather than by every key ever seen.
type LockManager[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*keyLock
}

// NewLockManager creates a new LockManager
func NewLockManager[K comparable]() *LockManager[K] {
	return &LockManager[K]{locks: make(map[K]*keyLock)}
}

// Lock acquires the mutex for key and returns its unlock function.
// The returned function must be called exactly once.
func (lm *LockManager[K]) Lock(key K) func() {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		lm.release(key, l)
	}
}

func (lm *LockManager[K]) release(key K, l *keyLock) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
}

// size reports how many keys currently have an entry.
func (lm *LockManager[K]) size() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
