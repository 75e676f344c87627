// services/encoder/service.go
package encoder

import (
	"context"
	"time"

	"intertask-go/comms"
	"intertask-go/x/mathx"
	"intertask-go/x/timex"
)

// Config centralises the service's timings and limits. Zero values get
// sensible defaults in New.
type Config struct {
	Name          string // base name for the registered data items
	SampleHz      uint32 // polling rate, clamped to 1..1000
	DeltaQueueLen int    // capacity of the movement-delta queue
}

// Service polls an encoder counter and republishes it through the
// data-exchange layer: the wrap-corrected 32-bit position goes into a Share
// (latest value wins, consumers tolerate staleness), every nonzero movement
// delta goes into a Queue (consumers that must not miss a step read that).
// The producer side never blocks: deltas are dropped when the queue is full.
type Service struct {
	dev    Device
	period time.Duration
	mu     *comms.Mutex
	pos    *comms.Share[int32]
	deltas *comms.Queue[int16]

	last     uint16
	position int32
}

// New creates the service and registers its share and queue. The caller
// supplies the device; platform wiring decides whether that is real
// hardware or a simulation.
func New(cfg Config, dev Device) *Service {
	if cfg.Name == "" {
		cfg.Name = "enc"
	}
	hz := mathx.Clamp(cfg.SampleHz, 1, 1000)
	qlen := cfg.DeltaQueueLen
	if qlen <= 0 {
		qlen = 16
	}
	return &Service{
		dev:    dev,
		period: timex.PeriodFromHz(hz),
		mu:     comms.NewMutex(comms.Forever),
		pos:    comms.NewShare[int32](cfg.Name + ".pos"),
		deltas: comms.NewQueue[int16](qlen, cfg.Name+".deltas"),
	}
}

// Position returns the share carrying the latest wrap-corrected position.
func (s *Service) Position() *comms.Share[int32] { return s.pos }

// Deltas returns the queue of movement deltas, one entry per sample that saw
// the counter move.
func (s *Service) Deltas() *comms.Queue[int16] { return s.deltas }

// Run polls the device until ctx is cancelled.
func (s *Service) Run(ctx context.Context) {
	tick := time.NewTicker(s.period)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			s.step()
		}
	}
}

// Zero resets the device counter and the accumulated position.
func (s *Service) Zero() {
	if !s.mu.Take() {
		return
	}
	s.dev.Zero()
	s.last = 0
	s.position = 0
	s.pos.Put(0)
	s.mu.Give()
}

func (s *Service) step() {
	if !s.mu.Take() {
		return
	}
	raw := s.dev.Count()
	delta := int16(raw - s.last) // 16-bit wrap gives the signed movement
	s.last = raw
	if delta != 0 {
		s.position += int32(delta)
		s.pos.Put(s.position)
		s.deltas.TryPut(delta)
	}
	s.mu.Give()
}
