package loader

import "sync"

// Guard is a host resource held for the active lifetime of a sequence,
// such as a scroll lock. Acquire returns the matching release func.
type Guard interface {
	Acquire() (release func())
}

// GuardFunc adapts a function to a Guard.
type GuardFunc func() (release func())

// Acquire calls f.
func (f GuardFunc) Acquire() func() { return f() }

// Hold acquires g and returns a release func that is safe to call any
// number of times; only the first call releases. A nil guard yields a no-op.
func Hold(g Guard) func() {
	if g == nil {
		return func() {}
	}
	release := g.Acquire()
	if release == nil {
		return func() {}
	}
	var once sync.Once
	return func() { once.Do(release) }
}
