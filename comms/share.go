// comms/share.go
package comms

import (
	"sync"
	"time"
)

// Share is a single-slot latest-value cell. A Put always overwrites whatever
// is in the slot and never blocks, so a producer (task or interrupt) can
// publish state without caring whether anyone has read the previous value.
// Reads are peeks: they copy the latest value out without consuming it, so
// any number of readers observe the same most recent write.
//
// The slot is logically unset until the first Put. Get blocks (up to the
// default wait) only in that window; TryGet returns the zero value instead.
type Share[T any] struct {
	name string
	wait time.Duration

	mu      sync.Mutex
	val     T
	written bool
	first   chan struct{} // closed on the first write
}

// NewShare creates a share whose Get waits forever for the first write.
func NewShare[T any](name string) *Share[T] {
	return NewShareWait[T](name, Forever)
}

// NewShareWait creates a share whose Get gives up after wait if nothing has
// ever been written.
func NewShareWait[T any](name string, wait time.Duration) *Share[T] {
	s := &Share[T]{name: trimName(name), wait: wait, first: make(chan struct{})}
	register(s)
	return s
}

// Put overwrites the slot. It never blocks and is safe from any context.
func (s *Share[T]) Put(v T) {
	s.mu.Lock()
	s.val = v
	wake := !s.written
	s.written = true
	s.mu.Unlock()
	if wake {
		close(s.first)
	}
}

// Update applies fn to the current value under the lock and stores the
// result, returning it. It counts as a write. This is the read-modify-write
// entry point for counters and flags shared between tasks.
func (s *Share[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	s.val = fn(s.val)
	v := s.val
	wake := !s.written
	s.written = true
	s.mu.Unlock()
	if wake {
		close(s.first)
	}
	return v
}

// Get copies the latest value into *out without consuming it. If nothing has
// ever been written it blocks up to the default wait; on timeout *out is
// left untouched and Get reports false.
func (s *Share[T]) Get(out *T) bool {
	if !s.ready(s.wait) {
		return false
	}
	s.mu.Lock()
	*out = s.val
	s.mu.Unlock()
	return true
}

// TryGet is the non-blocking, interrupt-context peek. Before the first write
// it returns the zero value and false.
func (s *Share[T]) TryGet() (T, bool) {
	s.mu.Lock()
	v, ok := s.val, s.written
	s.mu.Unlock()
	return v, ok
}

func (s *Share[T]) ready(wait time.Duration) bool {
	select {
	case <-s.first:
		return true
	default:
	}
	if wait == 0 {
		return false
	}
	if wait < 0 {
		<-s.first
		return true
	}
	tm := time.NewTimer(wait)
	defer tm.Stop()
	select {
	case <-s.first:
		return true
	case <-tm.C:
		return false
	}
}

func (s *Share[T]) ShareName() string { return s.name }

func (s *Share[T]) ShareStatus() Status {
	return Status{Kind: KindShare, Usable: true}
}
