// comms/queue_test.go
package comms

import (
	"testing"
	"time"
)

const testPatience = 2 * time.Second

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int](8, "fifo")
	for i := 1; i <= 5; i++ {
		if !q.Put(i) {
			t.Fatalf("put %d failed", i)
		}
	}
	for i := 1; i <= 5; i++ {
		var got int
		if !q.Get(&got) {
			t.Fatalf("get %d failed", i)
		}
		if got != i {
			t.Errorf("expected %d, got %d", i, got)
		}
	}
}

func TestQueuePutFrontJumpsOrder(t *testing.T) {
	q := NewQueue[string](8, "front")
	q.Put("a")
	q.Put("b")
	q.PutFront("x")
	q.PutFront("y")

	// Front pushes come out ahead of everything queued at the time of the
	// call, so the second one leads.
	want := []string{"y", "x", "a", "b"}
	for _, w := range want {
		var got string
		if !q.Get(&got) {
			t.Fatal("get failed")
		}
		if got != w {
			t.Errorf("expected %q, got %q", w, got)
		}
	}
}

func TestQueueLenTracksPutsAndGets(t *testing.T) {
	q := NewQueue[int](10, "len")
	for i := 0; i < 7; i++ {
		q.Put(i)
	}
	var v int
	for i := 0; i < 3; i++ {
		q.Get(&v)
	}
	if n := q.Len(); n != 4 {
		t.Errorf("expected occupancy 4, got %d", n)
	}
	if q.Empty() {
		t.Error("queue should not be empty")
	}
}

func TestQueueFullFailsImmediatelyWithZeroWait(t *testing.T) {
	q := NewQueueWait[int](2, "full", 0)
	q.Put(1)
	q.Put(2)

	start := time.Now()
	if q.Put(3) {
		t.Fatal("put on full queue should fail")
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("zero-wait put took %v", elapsed)
	}
	if n := q.Len(); n != 2 {
		t.Errorf("occupancy changed by failed put: %d", n)
	}
}

func TestQueueEmptyGetLeavesOutUnchanged(t *testing.T) {
	q := NewQueueWait[uint32](4, "empty", 0)
	got := uint32(0xDEADBEEF)
	if q.Get(&got) {
		t.Fatal("get on empty queue should fail")
	}
	if got != 0xDEADBEEF {
		t.Errorf("failed get modified output: %#x", got)
	}
	if q.Peek(&got) {
		t.Fatal("peek on empty queue should fail")
	}
	if got != 0xDEADBEEF {
		t.Errorf("failed peek modified output: %#x", got)
	}
}

func TestQueueHighWaterMark(t *testing.T) {
	q := NewQueue[int](10, "hwm")
	var v int

	for i := 0; i < 7; i++ {
		q.Put(i)
	}
	if m := q.MaxFull(); m != 7 {
		t.Fatalf("expected high-water mark 7, got %d", m)
	}

	// Draining must not lower it.
	for i := 0; i < 7; i++ {
		q.Get(&v)
	}
	if m := q.MaxFull(); m != 7 {
		t.Errorf("high-water mark decreased to %d", m)
	}

	// Refilling below the mark must not move it either.
	q.Put(1)
	q.Put(2)
	if m := q.MaxFull(); m != 7 {
		t.Errorf("high-water mark moved to %d", m)
	}
	if m := q.MaxFull(); m > q.Cap() {
		t.Errorf("high-water mark %d exceeds capacity %d", m, q.Cap())
	}
}

func TestQueuePeekNonDestructive(t *testing.T) {
	q := NewQueue[int](4, "peek")
	q.Put(42)
	var a, b, c int
	if !q.Peek(&a) || !q.Peek(&b) {
		t.Fatal("peek failed")
	}
	if a != 42 || b != 42 {
		t.Errorf("peeks returned %d, %d", a, b)
	}
	if n := q.Len(); n != 1 {
		t.Errorf("peek consumed the item, occupancy %d", n)
	}
	if !q.Get(&c) || c != 42 {
		t.Errorf("get after peek returned %d", c)
	}
}

func TestQueueBlockingHandoff(t *testing.T) {
	q := NewQueue[uint32](10, "Q")
	done := make(chan uint32, 1)

	go func() {
		var got uint32
		if q.Get(&got) {
			done <- got
		}
	}()

	time.Sleep(20 * time.Millisecond) // receiver should be parked by now
	if !q.Put(0x00AA00AA) {
		t.Fatal("put failed")
	}

	select {
	case got := <-done:
		if got != 0x00AA00AA {
			t.Errorf("expected 0x00AA00AA, got %#x", got)
		}
	case <-time.After(testPatience):
		t.Fatal("timeout waiting for blocked get to complete")
	}
	if n := q.Len(); n != 0 {
		t.Errorf("expected empty queue after handoff, occupancy %d", n)
	}
}

func TestQueuePutBlocksUntilSpace(t *testing.T) {
	q := NewQueue[int](1, "block")
	q.Put(1)

	done := make(chan bool, 1)
	go func() { done <- q.Put(2) }()

	select {
	case <-done:
		t.Fatal("put completed with the queue full")
	case <-time.After(30 * time.Millisecond):
	}

	var v int
	q.Get(&v)
	select {
	case ok := <-done:
		if !ok {
			t.Fatal("blocked put failed after space opened")
		}
	case <-time.After(testPatience):
		t.Fatal("timeout waiting for blocked put")
	}
}

func TestQueueUnusable(t *testing.T) {
	q := NewQueue[int](0, "broken")
	if q.Usable() {
		t.Fatal("zero-capacity queue should be unusable")
	}
	if q.Put(1) || q.TryPut(1) || q.PutFront(1) {
		t.Error("puts on unusable queue should fail")
	}
	var v int
	if q.Get(&v) || q.TryGet(&v) || q.Peek(&v) {
		t.Error("gets on unusable queue should fail")
	}
	if n := q.Len(); n != 0 {
		t.Errorf("unusable queue occupancy %d", n)
	}
}

func TestQueueTryVariantsNeverBlock(t *testing.T) {
	q := NewQueue[int](2, "try") // blocking ops would wait forever
	if !q.TryPut(1) || !q.TryPut(2) {
		t.Fatal("try put failed with space available")
	}
	start := time.Now()
	if q.TryPut(3) {
		t.Fatal("try put succeeded on full queue")
	}
	var v int
	if !q.TryGet(&v) || v != 1 {
		t.Fatalf("try get returned %d", v)
	}
	if !q.TryPeek(&v) || v != 2 {
		t.Fatalf("try peek returned %d", v)
	}
	if !q.TryPutFront(0) {
		t.Fatal("try put front failed with space available")
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("try variants took %v", elapsed)
	}
}

func TestQueueManyProducersOneConsumer(t *testing.T) {
	const producers = 4
	const perProducer = 250
	q := NewQueue[int](8, "mpsc")

	for p := 0; p < producers; p++ {
		go func() {
			for i := 0; i < perProducer; i++ {
				q.Put(i)
			}
		}()
	}

	seen := 0
	deadline := time.After(testPatience)
	for seen < producers*perProducer {
		var v int
		got := make(chan bool, 1)
		go func() { got <- q.Get(&v) }()
		select {
		case ok := <-got:
			if !ok {
				t.Fatal("get failed")
			}
			seen++
		case <-deadline:
			t.Fatalf("stalled after %d items", seen)
		}
	}
	if m := q.MaxFull(); m > q.Cap() {
		t.Errorf("high-water mark %d exceeds capacity %d", m, q.Cap())
	}
}
