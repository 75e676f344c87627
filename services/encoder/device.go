package encoder

// Device is the counter surface of a quadrature encoder: a free-running
// 16-bit count that wraps around, plus zero/pause/resume control. The
// service only ever looks at count differences, so wrap-around is handled
// by 16-bit arithmetic rather than by the device.
type Device interface {
	Count() uint16
	Zero()
	Pause()
	Resume()
}
