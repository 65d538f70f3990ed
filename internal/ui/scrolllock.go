package ui

import "sync"

// ScrollLock suppresses portfolio scrolling while it is held. It is the
// terminal counterpart of locking page scroll behind the loading screen.
// ScrollLock satisfies loader.Guard.
type ScrollLock struct {
	mu      sync.Mutex
	holders int
}

// Acquire takes the lock and returns its release func. Release is
// idempotent per acquisition. A nil lock is never held.
func (l *ScrollLock) Acquire() func() {
	if l == nil {
		return func() {}
	}
	l.mu.Lock()
	l.holders++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.holders--
			l.mu.Unlock()
		})
	}
}

// Locked reports whether any holder has the lock.
func (l *ScrollLock) Locked() bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders > 0
}
