//go:build rp2040 || rp2350

package encoder

import (
	"machine"

	"tinygo.org/x/drivers/encoders"
)

// Quadrature adapts the interrupt-driven TinyGo quadrature driver to the
// Device surface. Pause/Resume only freeze the reported count; the
// underlying pin interrupts keep running.
type Quadrature struct {
	dev    *encoders.QuadratureDevice
	paused bool
	held   int
}

// NewQuadrature configures the two encoder pins and returns the adapted
// device. Precision is the driver's step divider (4 for a detent-per-cycle
// rotary encoder).
func NewQuadrature(pinA, pinB machine.Pin, precision int) (*Quadrature, error) {
	dev := encoders.NewQuadratureViaInterrupt(pinA, pinB)
	if err := dev.Configure(encoders.QuadratureConfig{Precision: precision}); err != nil {
		return nil, err
	}
	return &Quadrature{dev: dev}, nil
}

func (q *Quadrature) Count() uint16 {
	if q.paused {
		return uint16(q.held)
	}
	return uint16(q.dev.Position())
}

func (q *Quadrature) Zero() {
	q.dev.SetPosition(0)
	q.held = 0
}

func (q *Quadrature) Pause() {
	q.held = q.dev.Position()
	q.paused = true
}

func (q *Quadrature) Resume() {
	q.dev.SetPosition(q.held)
	q.paused = false
}
