// comms/queue.go
package comms

import (
	"sync"
	"time"
)

// Forever makes a blocking operation wait indefinitely for its turn. A wait
// of zero makes the blocking entry points fail immediately, like their Try
// counterparts.
const Forever time.Duration = -1

// Queue is a bounded FIFO channel between tasks. The Put/Get/Peek entry
// points may suspend the calling goroutine up to the queue's default wait;
// the Try variants never block and are the ones to call from interrupt or
// callback context. A front-push jumps the FIFO order for out-of-band data.
//
// A queue asked for a capacity below one is unusable: it still registers
// (and reports UNUSABLE), but every operation on it fails without blocking.
type Queue[T any] struct {
	name string
	wait time.Duration

	mu      sync.Mutex
	buf     []T
	head    int
	count   int
	maxFull int

	readable chan struct{} // an item may be waiting
	writable chan struct{} // space may be free
}

// NewQueue creates a queue holding up to capacity items, with blocking
// operations waiting forever by default.
func NewQueue[T any](capacity int, name string) *Queue[T] {
	return NewQueueWait[T](capacity, name, Forever)
}

// NewQueueWait creates a queue whose blocking operations give up after wait.
func NewQueueWait[T any](capacity int, name string, wait time.Duration) *Queue[T] {
	q := &Queue[T]{name: trimName(name), wait: wait}
	if capacity >= 1 {
		q.buf = make([]T, capacity)
		q.readable = make(chan struct{}, 1)
		q.writable = make(chan struct{}, 1)
	}
	register(q)
	return q
}

// Usable reports whether construction succeeded and the queue can carry data.
func (q *Queue[T]) Usable() bool { return q.buf != nil }

// Cap returns the nominal capacity.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Len returns the current occupancy.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	n := q.count
	q.mu.Unlock()
	return n
}

// Empty reports whether nothing is waiting to be read.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }

// MaxFull returns the high-water mark: the largest occupancy seen so far.
// It is a diagnostic; it never decreases and never exceeds Cap.
func (q *Queue[T]) MaxFull() int {
	q.mu.Lock()
	n := q.maxFull
	q.mu.Unlock()
	return n
}

// Put appends an item, blocking up to the default wait while the queue is
// full. It reports whether the item was accepted.
func (q *Queue[T]) Put(v T) bool { return q.send(v, false, q.wait) }

// TryPut appends an item without ever blocking; for interrupt context.
func (q *Queue[T]) TryPut(v T) bool { return q.send(v, false, 0) }

// PutFront inserts an item at the head so it is read before everything
// already queued. Blocking rules match Put.
func (q *Queue[T]) PutFront(v T) bool { return q.send(v, true, q.wait) }

// TryPutFront is the non-blocking, interrupt-context form of PutFront.
func (q *Queue[T]) TryPutFront(v T) bool { return q.send(v, true, 0) }

// Get removes the head item into *out, blocking up to the default wait while
// the queue is empty. On failure *out is left untouched.
func (q *Queue[T]) Get(out *T) bool { return q.recv(out, true, q.wait) }

// TryGet is the non-blocking, interrupt-context form of Get.
func (q *Queue[T]) TryGet(out *T) bool { return q.recv(out, true, 0) }

// Peek copies the head item into *out without removing it. Blocking rules
// match Get.
func (q *Queue[T]) Peek(out *T) bool { return q.recv(out, false, q.wait) }

// TryPeek is the non-blocking, interrupt-context form of Peek.
func (q *Queue[T]) TryPeek(out *T) bool { return q.recv(out, false, 0) }

func (q *Queue[T]) ShareName() string { return q.name }

func (q *Queue[T]) ShareStatus() Status {
	q.mu.Lock()
	st := Status{
		Kind:     KindQueue,
		Usable:   q.buf != nil,
		MaxFull:  q.maxFull,
		Capacity: len(q.buf),
	}
	q.mu.Unlock()
	return st
}

func (q *Queue[T]) send(v T, front bool, wait time.Duration) bool {
	if !q.Usable() {
		return false
	}
	if q.trySend(v, front) {
		return true
	}
	if wait == 0 {
		return false
	}
	var expired <-chan time.Time
	if wait >= 0 {
		tm := time.NewTimer(wait)
		defer tm.Stop()
		expired = tm.C
	}
	for {
		select {
		case <-q.writable:
			if q.trySend(v, front) {
				return true
			}
		case <-expired:
			return false
		}
	}
}

func (q *Queue[T]) trySend(v T, front bool) bool {
	q.mu.Lock()
	if q.count == len(q.buf) {
		q.mu.Unlock()
		return false
	}
	if front {
		q.head--
		if q.head < 0 {
			q.head += len(q.buf)
		}
		q.buf[q.head] = v
	} else {
		q.buf[(q.head+q.count)%len(q.buf)] = v
	}
	q.count++
	if q.count > q.maxFull {
		q.maxFull = q.count
	}
	spare := q.count < len(q.buf)
	q.mu.Unlock()

	signal(q.readable)
	if spare {
		// Pass the baton: other senders may still fit.
		signal(q.writable)
	}
	return true
}

func (q *Queue[T]) recv(out *T, remove bool, wait time.Duration) bool {
	if !q.Usable() {
		return false
	}
	if q.tryRecv(out, remove) {
		return true
	}
	if wait == 0 {
		return false
	}
	var expired <-chan time.Time
	if wait >= 0 {
		tm := time.NewTimer(wait)
		defer tm.Stop()
		expired = tm.C
	}
	for {
		select {
		case <-q.readable:
			if q.tryRecv(out, remove) {
				return true
			}
		case <-expired:
			return false
		}
	}
}

func (q *Queue[T]) tryRecv(out *T, remove bool) bool {
	q.mu.Lock()
	if q.count == 0 {
		q.mu.Unlock()
		return false
	}
	*out = q.buf[q.head]
	if remove {
		var zero T
		q.buf[q.head] = zero
		q.head = (q.head + 1) % len(q.buf)
		q.count--
	}
	more := q.count > 0
	q.mu.Unlock()

	if remove {
		signal(q.writable)
	}
	if more {
		signal(q.readable)
	}
	return true
}

// signal posts a wakeup edge without ever blocking; collapsed signals are
// fine because waiters re-check state and re-arm.
func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
