// comms/registry.go
package comms

import (
	"io"
	"sync"

	"intertask-go/x/fmtx"
)

// Kind tags the two flavors of registered data items.
type Kind uint8

const (
	KindQueue Kind = iota
	KindShare
)

func (k Kind) String() string {
	if k == KindQueue {
		return "queue"
	}
	return "share"
}

// Status is a diagnostic snapshot of one registered item. MaxFull and
// Capacity are only meaningful for queues.
type Status struct {
	Kind     Kind
	Usable   bool
	MaxFull  int
	Capacity int
}

// Shareable is implemented by every data item that joins the registry.
type Shareable interface {
	ShareName() string
	ShareStatus() Status
}

const (
	noName     = "(No Name)"
	maxNameLen = 15
	nameCols   = 16
)

// The process-wide registry. Items join at construction and are never
// removed; they are expected to live for the life of the process, like
// statically allocated firmware objects.
var (
	regMu   sync.RWMutex
	entries []Shareable
)

func register(s Shareable) {
	regMu.Lock()
	entries = append(entries, s)
	regMu.Unlock()
}

// trimName bounds a display name for the report; an empty name gets the
// conventional placeholder.
func trimName(name string) string {
	if name == "" {
		return noName
	}
	if len(name) > maxNameLen {
		return name[:maxNameLen]
	}
	return name
}

// Walk visits every registered item, most recently created first.
func Walk(visit func(Shareable)) {
	regMu.RLock()
	defer regMu.RUnlock()
	for i := len(entries) - 1; i >= 0; i-- {
		visit(entries[i])
	}
}

// PrintAll writes the status report for all registered items to w, one line
// per item, newest first.
func PrintAll(w io.Writer) {
	io.WriteString(w, "Share/Queue     Type    Max. Full\n")
	io.WriteString(w, "-----------     ----    ---------\n")
	Walk(func(s Shareable) {
		io.WriteString(w, statusLine(s))
	})
}

func statusLine(s Shareable) string {
	st := s.ShareStatus()
	head := fmtx.Sprintf("%-16s%s\t", s.ShareName(), st.Kind.String())
	if st.Kind != KindQueue {
		return head + "\n"
	}
	if !st.Usable {
		return head + "UNUSABLE\n"
	}
	return head + fmtx.Sprintf("%d/%d\n", st.MaxFull, st.Capacity)
}
