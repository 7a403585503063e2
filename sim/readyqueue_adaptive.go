// Implements the CUSTOM policy's adaptive dual-tier ready queue: per class,
// a "short" FIFO and a "long" FIFO, plus a dynamic quantum recomputed on
// every membership change (spec §4.2).

package sim

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// QuantumMax is the fixed cap on the adaptive policy's dynamic quantum.
const QuantumMax int64 = 20

// AdaptiveQueue implements ReadyQueue for the CUSTOM policy. Threads are
// classified into a short or long tier on push, based on how their
// remaining burst time compares to the dynamic quantum at that instant;
// they are never reclassified while parked — only popping moves them out.
type AdaptiveQueue struct {
	short [NumClasses]*linkedlistqueue.Queue
	long  [NumClasses]*linkedlistqueue.Queue

	numThreads     int
	totalRemaining int64
	currentQuantum int64
}

// NewAdaptiveQueue constructs an empty adaptive dual-tier ready queue.
func NewAdaptiveQueue() *AdaptiveQueue {
	rq := &AdaptiveQueue{currentQuantum: QuantumMax}
	for c := 0; c < NumClasses; c++ {
		rq.short[c] = linkedlistqueue.New()
		rq.long[c] = linkedlistqueue.New()
	}
	return rq
}

func (rq *AdaptiveQueue) recomputeQuantum() {
	if rq.numThreads == 0 {
		// Undefined per spec §4.2; pinned to the cap. A dispatch that
		// completes while the queue is empty reads this value as its
		// quantum.
		rq.currentQuantum = QuantumMax
		return
	}
	q := rq.totalRemaining / int64(rq.numThreads)
	if q > QuantumMax {
		q = QuantumMax
	}
	rq.currentQuantum = q
}

func (rq *AdaptiveQueue) Push(t *Thread, now int64) {
	r := t.RemainingInBurst()
	rq.numThreads++
	rq.totalRemaining += r
	rq.recomputeQuantum()

	if r <= rq.currentQuantum {
		rq.short[t.Class].Enqueue(t)
	} else {
		rq.long[t.Class].Enqueue(t)
	}
}

func (rq *AdaptiveQueue) Pop() *Thread {
	t := popFirst(rq.short[:])
	if t == nil {
		t = popFirst(rq.long[:])
	}
	if t == nil {
		return nil
	}
	rq.numThreads--
	rq.totalRemaining -= t.RemainingInBurst()
	rq.recomputeQuantum()
	return t
}

// popFirst scans tiers in ascending class order and dequeues the first
// non-empty one's head.
func popFirst(tiers []*linkedlistqueue.Queue) *Thread {
	for _, q := range tiers {
		if v, ok := q.Dequeue(); ok {
			return v.(*Thread)
		}
	}
	return nil
}

func (rq *AdaptiveQueue) Size() int { return rq.numThreads }

func (rq *AdaptiveQueue) CurrentQuantum() int64 { return rq.currentQuantum }
