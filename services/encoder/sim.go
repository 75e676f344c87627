package encoder

import "sync"

// Sim is an in-memory encoder counter for host builds and tests. Advance
// plays the role of the shaft turning.
type Sim struct {
	mu     sync.Mutex
	count  uint16
	paused bool
}

// Advance moves the simulated shaft by delta counts. Ignored while paused.
func (s *Sim) Advance(delta int16) {
	s.mu.Lock()
	if !s.paused {
		s.count += uint16(delta)
	}
	s.mu.Unlock()
}

func (s *Sim) Count() uint16 {
	s.mu.Lock()
	c := s.count
	s.mu.Unlock()
	return c
}

func (s *Sim) Zero() {
	s.mu.Lock()
	s.count = 0
	s.mu.Unlock()
}

func (s *Sim) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

func (s *Sim) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}
