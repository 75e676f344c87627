// comms/cmd/selftest/main.go
//
// Host-runnable exercise of the data-exchange layer. A sender task pushes
// redundant test words through a queue, a share, and (deliberately) an
// unprotected global; a receiver task checks each path for corruption. The
// global is the control group: it demonstrates the hazard the queue and
// share exist to prevent, so mismatches on it are expected, not a bug.
package main

import (
	"math/rand/v2"
	"os"
	"sync"

	"intertask-go/comms"
	"intertask-go/x/fmtx"
	"intertask-go/x/timex"
)

const rounds = 5000

// badGlobal is the unsynchronized transfer path. No lock, on purpose.
var badGlobal uint32

func main() {
	started := timex.NowMs()
	share := comms.NewShare[uint32]("Share 0")
	queue := comms.NewQueue[uint32](10, "Queue 0.1")

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			// A random 16-bit word mirrored into the upper half; most
			// corruption shows up as a half mismatch.
			word := rand.Uint32() & 0xFFFF
			word |= word << 16

			badGlobal = word
			share.Put(word)
			queue.Put(word)
		}
	}()

	var queueErrs, shareErrs, globalErrs int
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			var fromQueue, fromShare uint32
			queue.Get(&fromQueue) // synchronizes with the sender
			share.Get(&fromShare)
			fromGlobal := badGlobal

			if fromQueue>>16 != fromQueue&0xFFFF {
				queueErrs++
			}
			if fromShare>>16 != fromShare&0xFFFF {
				shareErrs++
			}
			if fromGlobal>>16 != fromGlobal&0xFFFF {
				globalErrs++
			}
		}
	}()

	wg.Wait()

	fmtx.Printf("rounds:        %d (%d ms)\n", rounds, timex.NowMs()-started)
	fmtx.Printf("queue errors:  %d\n", queueErrs)
	fmtx.Printf("share errors:  %d\n", shareErrs)
	fmtx.Printf("global errors: %d (unprotected path, errors expected under load)\n", globalErrs)
	fmtx.Printf("\n")
	comms.PrintAll(os.Stdout)

	if queueErrs > 0 || shareErrs > 0 {
		os.Exit(1)
	}
}
