// comms/textqueue.go
package comms

import (
	"time"

	"intertask-go/errcode"
)

// TextQueue carries text between tasks, one byte at a time, through a
// Queue[byte]. It implements io.Writer and io.Reader, so formatted output
// can be streamed into it from any task (or, via TryPut on the embedded
// queue, from interrupt context) and drained by a single console task that
// owns the actual serial device.
type TextQueue struct {
	*Queue[byte]
}

// NewTextQueue creates a text queue holding up to capacity bytes. It
// registers in the diagnostics list like any other queue.
func NewTextQueue(capacity int, name string) *TextQueue {
	return &TextQueue{Queue: NewQueue[byte](capacity, name)}
}

// NewTextQueueWait creates a text queue whose blocking operations give up
// after wait.
func NewTextQueueWait(capacity int, name string, wait time.Duration) *TextQueue {
	return &TextQueue{Queue: NewQueueWait[byte](capacity, name, wait)}
}

// Write queues every byte of p in order, blocking per the queue's default
// wait. If a byte cannot be queued in time, Write returns how many bytes
// made it and errcode.Timeout.
func (t *TextQueue) Write(p []byte) (int, error) {
	if !t.Usable() {
		return 0, errcode.Unusable
	}
	for i, b := range p {
		if !t.Put(b) {
			return i, errcode.Timeout
		}
	}
	return len(p), nil
}

// WriteString queues a string, with the same rules as Write.
func (t *TextQueue) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

// ReadByte removes and returns one byte, blocking per the queue's default
// wait. It returns errcode.Timeout if nothing arrived in time.
func (t *TextQueue) ReadByte() (byte, error) {
	var b byte
	if !t.Get(&b) {
		if !t.Usable() {
			return 0, errcode.Unusable
		}
		return 0, errcode.Timeout
	}
	return b, nil
}

// Read blocks for the first byte, then drains whatever else is immediately
// available into p. It never returns 0, nil.
func (t *TextQueue) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, err := t.ReadByte()
	if err != nil {
		return 0, err
	}
	p[0] = b
	n := 1
	for n < len(p) && t.TryGet(&p[n]) {
		n++
	}
	return n, nil
}
