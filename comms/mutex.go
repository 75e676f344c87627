// comms/mutex.go
package comms

import "time"

// Mutex guards a resource shared between tasks. Unlike sync.Mutex it carries
// an acquisition timeout: Take can fail, and a caller seeing false must not
// enter the guarded section. There is no ownership tracking and no interrupt
// context use; it exists for task-side critical sections around resources
// that are not themselves queues or shares.
type Mutex struct {
	sem  chan struct{}
	wait time.Duration
}

// NewMutex creates an unlocked mutex. Take gives up after wait; pass Forever
// to wait indefinitely.
func NewMutex(wait time.Duration) *Mutex {
	return &Mutex{sem: make(chan struct{}, 1), wait: wait}
}

// Take acquires the mutex, blocking up to the configured wait. It reports
// whether the acquisition succeeded.
func (m *Mutex) Take() bool {
	select {
	case m.sem <- struct{}{}:
		return true
	default:
	}
	if m.wait == 0 {
		return false
	}
	if m.wait < 0 {
		m.sem <- struct{}{}
		return true
	}
	tm := time.NewTimer(m.wait)
	defer tm.Stop()
	select {
	case m.sem <- struct{}{}:
		return true
	case <-tm.C:
		return false
	}
}

// TryTake acquires the mutex only if it is immediately free.
func (m *Mutex) TryTake() bool {
	select {
	case m.sem <- struct{}{}:
		return true
	default:
		return false
	}
}

// Give releases the mutex. Giving a mutex that was never taken is a no-op.
func (m *Mutex) Give() {
	select {
	case <-m.sem:
	default:
	}
}
