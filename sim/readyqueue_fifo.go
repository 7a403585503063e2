// Implements the two non-adaptive ready-queue shapes: a single FIFO (used
// by FCFS and RR) and a four-class FIFO (used by PRIORITY). Both are built
// on gods' doubly-linked queue, the same container family
// KnightChaser-vrunq reaches for to back its own runnable-task structure.

package sim

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// SingleFIFOQueue is an insertion-ordered queue with no class awareness.
// FCFS and RR both use it; RR additionally treats it as preemptive (see
// Preemptive in policy.go) but the queue structure itself is identical.
type SingleFIFOQueue struct {
	q *linkedlistqueue.Queue
}

// NewSingleFIFOQueue constructs an empty single FIFO ready queue.
func NewSingleFIFOQueue() *SingleFIFOQueue {
	return &SingleFIFOQueue{q: linkedlistqueue.New()}
}

func (rq *SingleFIFOQueue) Push(t *Thread, now int64) {
	rq.q.Enqueue(t)
}

func (rq *SingleFIFOQueue) Pop() *Thread {
	v, ok := rq.q.Dequeue()
	if !ok {
		return nil
	}
	return v.(*Thread)
}

func (rq *SingleFIFOQueue) Size() int { return rq.q.Size() }

func (rq *SingleFIFOQueue) CurrentQuantum() int64 { return 0 }

// ClassFIFOQueue holds one FIFO per process class. Pop scans classes in
// ascending numeric order (SYSTEM first) and returns the head of the first
// non-empty class; within a class, order is FIFO. Used by PRIORITY, which
// is strictly non-preemptive on arrival (spec §4.2).
type ClassFIFOQueue struct {
	byClass [NumClasses]*linkedlistqueue.Queue
	size    int
}

// NewClassFIFOQueue constructs an empty four-class FIFO ready queue.
func NewClassFIFOQueue() *ClassFIFOQueue {
	rq := &ClassFIFOQueue{}
	for c := range rq.byClass {
		rq.byClass[c] = linkedlistqueue.New()
	}
	return rq
}

func (rq *ClassFIFOQueue) Push(t *Thread, now int64) {
	rq.byClass[t.Class].Enqueue(t)
	rq.size++
}

func (rq *ClassFIFOQueue) Pop() *Thread {
	for c := 0; c < NumClasses; c++ {
		if v, ok := rq.byClass[c].Dequeue(); ok {
			rq.size--
			return v.(*Thread)
		}
	}
	return nil
}

func (rq *ClassFIFOQueue) Size() int { return rq.size }

func (rq *ClassFIFOQueue) CurrentQuantum() int64 { return 0 }
