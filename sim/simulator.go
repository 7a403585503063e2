// sim/simulator.go
package sim

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// noProcessID marks that no process has been dispatched yet.
const noProcessID = -1

// EventQueue implements heap.Interface and orders events by the
// deterministic rule of spec §4.1: time, then kind rank, then process id,
// then thread id (thread ids are only ordinals within a process).
// See the canonical Go example at https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []Event

func (eq EventQueue) Len() int { return len(eq) }

func (eq EventQueue) Less(i, j int) bool {
	a, b := eq[i], eq[j]
	if a.Timestamp() != b.Timestamp() {
		return a.Timestamp() < b.Timestamp()
	}
	if a.Kind() != b.Kind() {
		return a.Kind() < b.Kind()
	}
	if a.ProcessID() != b.ProcessID() {
		return a.ProcessID() < b.ProcessID()
	}
	return a.ThreadID() < b.ThreadID()
}

func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(Event))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator is the core object that holds simulation time, system state,
// and the event loop. All mutable state is owned here; handlers receive it
// through Event.Execute and mutate it directly (spec §5: single-threaded,
// cooperative, no locking required).
type Simulator struct {
	Clock int64

	Workload   *Workload
	EventQueue EventQueue
	Ready      ReadyQueue

	RunningThread     *Thread
	CurrentProcessID  int

	Algorithm Algorithm
	Quantum   int64

	Metrics *Metrics
	Trace   *trace.Trace // nil disables trace collection entirely
}

// NewSimulator constructs a Simulator ready to run. trc may be nil, in
// which case no transition records are collected (matches running without
// -v/-t).
func NewSimulator(w *Workload, cfg Config, trc *trace.Trace) *Simulator {
	sim := &Simulator{
		Workload:         w,
		EventQueue:       make(EventQueue, 0),
		Ready:            NewReadyQueue(cfg.Algorithm),
		CurrentProcessID: noProcessID,
		Algorithm:        cfg.Algorithm,
		Quantum:          cfg.Quantum,
		Metrics:          NewMetrics(),
		Trace:            trc,
	}
	for _, t := range w.AllThreads() {
		sim.Schedule(&ArrivedEvent{time: t.ArrivalTime, Thread: t})
	}
	return sim
}

// Schedule pushes an event into the simulator's event queue.
func (sim *Simulator) Schedule(ev Event) {
	heap.Push(&sim.EventQueue, ev)
}

// Run drains the event queue, advancing the clock to each event's
// timestamp before executing it. The loop terminates naturally once the
// queue empties (spec §5: no cancellation, no timeouts).
func (sim *Simulator) Run() {
	for len(sim.EventQueue) > 0 {
		ev := heap.Pop(&sim.EventQueue).(Event)
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[t=%06d] executing %s thread=%d", sim.Clock, ev.Kind(), ev.ThreadID())
		ev.Execute(sim)
	}
	sim.assertAllThreadsTerminated()
}

// assertAllThreadsTerminated is the loop-drained invariant check spec §5
// describes: a malformed workload that never produces THREAD_COMPLETED for
// some thread would otherwise go unnoticed once the heap empties.
func (sim *Simulator) assertAllThreadsTerminated() {
	for _, t := range sim.Workload.AllThreads() {
		if t.State != StateExit {
			panic(fmt.Sprintf("workload error: thread %d/%d never completed (state=%s)", t.ProcessID, t.ID, t.State))
		}
	}
}

// completeDispatch implements the shared second half of
// PROCESS_DISPATCH_COMPLETED/THREAD_DISPATCH_COMPLETED (spec §4.3): charge
// the overhead, transition the thread to RUNNING, record its start time on
// first dispatch, and decide whether the slice runs to burst completion or
// is cut short by a quantum.
func (sim *Simulator) completeDispatch(now int64, t *Thread, overhead int64, kind EventKind) {
	sim.Metrics.TotalDispatchTime += overhead
	t.State = StateRunning
	if !t.StartTimeSet {
		t.StartTime = now
		t.StartTimeSet = true
	}
	sim.CurrentProcessID = t.ProcessID

	sim.emitFor(now, kind, t, "Transitioned from READY to RUNNING")

	if !Preemptive(sim.Algorithm) {
		b := t.Bursts[t.BurstIndex]
		sim.Schedule(&CPUBurstCompletedEvent{time: now + b.CPUTime, Thread: t})
		return
	}

	r := t.RemainingInBurst()
	q := sim.currentQuantum()
	if r <= q {
		sim.Schedule(&CPUBurstCompletedEvent{time: now + r, Thread: t})
	} else {
		sim.Schedule(&ThreadPreemptedEvent{time: now + q, Thread: t})
		t.CurrentBurstCompleted += q
	}
}

// currentQuantum resolves the quantum a preemptive dispatch should use:
// RR's is a static configuration value, CUSTOM's is read live from its
// adaptive ready queue (spec §4.2/§4.3).
func (sim *Simulator) currentQuantum() int64 {
	if sim.Algorithm == AlgorithmCustom {
		return sim.Ready.CurrentQuantum()
	}
	return sim.Quantum
}

// emitFor appends a transition record to the trace, if one is attached.
func (sim *Simulator) emitFor(now int64, kind EventKind, t *Thread, message string) {
	if sim.Trace == nil {
		return
	}
	sim.Trace.RecordTransition(trace.Record{
		Time:      now,
		Kind:      kind.String(),
		ThreadID:  t.ID,
		ProcessID: t.ProcessID,
		Class:     t.Class.String(),
		Message:   message,
	})
}

// SummarizeThreads appends one ThreadSummary per thread to the attached
// trace, in process-then-thread order. Called once, after Run, when
// per-thread output is enabled.
func (sim *Simulator) SummarizeThreads() {
	if sim.Trace == nil {
		return
	}
	for _, p := range sim.Workload.Processes {
		for _, t := range p.Threads {
			var cpu, io int64
			for _, b := range t.Bursts {
				cpu += b.CPUTime
				io += b.IOTime
			}
			sim.Trace.RecordThreadSummary(trace.ThreadSummary{
				ProcessID:  p.ID,
				ThreadID:   t.ID,
				Arrival:    t.ArrivalTime,
				CPUDemand:  cpu,
				IODemand:   io,
				Turnaround: t.EndTime - t.ArrivalTime,
				End:        t.EndTime,
			})
		}
	}
}
