package sim

import "fmt"

// EventKind identifies the eight event types the scheduler core handles.
// The numeric value of each constant IS the tie-break rank used by the
// event queue: on equal timestamps, the event with the smaller Kind runs
// first (see container/heap ordering in simulator.go and spec §4.1).
type EventKind int

const (
	KindCPUBurstCompleted EventKind = iota
	KindThreadCompleted
	KindDispatcherInvoked
	KindProcessDispatchCompleted
	KindThreadDispatchCompleted
	KindThreadPreempted
	KindIOBurstCompleted
	KindThreadArrived
)

// String returns the exact identifier spec §3/§6 uses for this kind; trace
// output relies on this string.
func (k EventKind) String() string {
	switch k {
	case KindCPUBurstCompleted:
		return "CPU_BURST_COMPLETED"
	case KindThreadCompleted:
		return "THREAD_COMPLETED"
	case KindDispatcherInvoked:
		return "DISPATCHER_INVOKED"
	case KindProcessDispatchCompleted:
		return "PROCESS_DISPATCH_COMPLETED"
	case KindThreadDispatchCompleted:
		return "THREAD_DISPATCH_COMPLETED"
	case KindThreadPreempted:
		return "THREAD_PREEMPTED"
	case KindIOBurstCompleted:
		return "IO_BURST_COMPLETED"
	case KindThreadArrived:
		return "THREAD_ARRIVED"
	default:
		return fmt.Sprintf("EVENT_KIND(%d)", int(k))
	}
}

// noThreadID is the tie-break sentinel used by events that are not yet
// bound to a specific thread (DispatcherInvokedEvent, before it pops one).
const noThreadID = -1

// Event is the interface every queued event satisfies. Timestamp and Kind
// drive ordering in the event queue; Execute mutates simulator state and
// may push follow-on events.
type Event interface {
	Timestamp() int64
	Kind() EventKind
	// ProcessID and ThreadID are the tie-break keys among same-time,
	// same-kind events: a thread's ID is only an ordinal within its own
	// process, so ProcessID must be compared first to order events bound to
	// threads of different processes (e.g. two threads both numbered 0).
	// Events with no bound thread return noProcessID/noThreadID.
	ProcessID() int
	ThreadID() int
	Execute(sim *Simulator)
}

// ArrivedEvent marks the instant a thread first becomes READY.
type ArrivedEvent struct {
	time   int64
	Thread *Thread
}

func (e *ArrivedEvent) Timestamp() int64  { return e.time }
func (e *ArrivedEvent) Kind() EventKind   { return KindThreadArrived }
func (e *ArrivedEvent) ProcessID() int    { return e.Thread.ProcessID }
func (e *ArrivedEvent) ThreadID() int     { return e.Thread.ID }

// Execute implements the THREAD_ARRIVED transition (spec §4.3).
func (e *ArrivedEvent) Execute(sim *Simulator) {
	t := e.Thread
	t.State = StateReady
	t.ArrivalTime = e.time
	sim.Ready.Push(t, e.time)
	sim.emitFor(e.time, KindThreadArrived, t, "Transitioned from NEW to READY")
	if sim.RunningThread == nil {
		sim.Schedule(&DispatcherInvokedEvent{time: e.time})
	}
}

// DispatcherInvokedEvent pops the next thread from the ready queue and
// begins dispatching it.
type DispatcherInvokedEvent struct {
	time int64
}

func (e *DispatcherInvokedEvent) Timestamp() int64 { return e.time }
func (e *DispatcherInvokedEvent) Kind() EventKind  { return KindDispatcherInvoked }
func (e *DispatcherInvokedEvent) ProcessID() int   { return noProcessID }
func (e *DispatcherInvokedEvent) ThreadID() int    { return noThreadID }

// Execute implements the DISPATCHER_INVOKED transition (spec §4.3).
func (e *DispatcherInvokedEvent) Execute(sim *Simulator) {
	selectedFrom := sim.Ready.Size()
	t := sim.Ready.Pop()
	if t == nil {
		panic("DISPATCHER_INVOKED: ready queue is empty; invariant violated")
	}

	var next Event
	if sim.CurrentProcessID == noProcessID || sim.CurrentProcessID != t.ProcessID {
		next = &ProcessDispatchCompletedEvent{time: e.time + sim.Workload.ProcessSwitchOverhead, Thread: t}
	} else {
		next = &ThreadDispatchCompletedEvent{time: e.time + sim.Workload.ThreadSwitchOverhead, Thread: t}
	}
	sim.RunningThread = t
	sim.Schedule(next)

	sim.emitFor(e.time, KindDispatcherInvoked, t,
		fmt.Sprintf("Selected from %d threads; will run to completion of burst", selectedFrom))
}

// ProcessDispatchCompletedEvent and ThreadDispatchCompletedEvent both
// complete a dispatch; they differ only in which overhead they charge.
type ProcessDispatchCompletedEvent struct {
	time   int64
	Thread *Thread
}

func (e *ProcessDispatchCompletedEvent) Timestamp() int64 { return e.time }
func (e *ProcessDispatchCompletedEvent) Kind() EventKind  { return KindProcessDispatchCompleted }
func (e *ProcessDispatchCompletedEvent) ProcessID() int   { return e.Thread.ProcessID }
func (e *ProcessDispatchCompletedEvent) ThreadID() int    { return e.Thread.ID }
func (e *ProcessDispatchCompletedEvent) Execute(sim *Simulator) {
	sim.completeDispatch(e.time, e.Thread, sim.Workload.ProcessSwitchOverhead, KindProcessDispatchCompleted)
}

type ThreadDispatchCompletedEvent struct {
	time   int64
	Thread *Thread
}

func (e *ThreadDispatchCompletedEvent) Timestamp() int64 { return e.time }
func (e *ThreadDispatchCompletedEvent) Kind() EventKind  { return KindThreadDispatchCompleted }
func (e *ThreadDispatchCompletedEvent) ProcessID() int   { return e.Thread.ProcessID }
func (e *ThreadDispatchCompletedEvent) ThreadID() int    { return e.Thread.ID }
func (e *ThreadDispatchCompletedEvent) Execute(sim *Simulator) {
	sim.completeDispatch(e.time, e.Thread, sim.Workload.ThreadSwitchOverhead, KindThreadDispatchCompleted)
}

// CPUBurstCompletedEvent marks the end of a thread's CPU use, whether by
// running to completion of the burst or (for preemptive policies) landing
// exactly at the burst's remaining time.
type CPUBurstCompletedEvent struct {
	time   int64
	Thread *Thread
}

func (e *CPUBurstCompletedEvent) Timestamp() int64 { return e.time }
func (e *CPUBurstCompletedEvent) Kind() EventKind  { return KindCPUBurstCompleted }
func (e *CPUBurstCompletedEvent) ProcessID() int   { return e.Thread.ProcessID }
func (e *CPUBurstCompletedEvent) ThreadID() int    { return e.Thread.ID }

// Execute implements the CPU_BURST_COMPLETED transition (spec §4.3).
func (e *CPUBurstCompletedEvent) Execute(sim *Simulator) {
	t := e.Thread
	b := t.Bursts[t.BurstIndex]
	sim.Metrics.TotalServiceTime += b.CPUTime
	t.CurrentBurstCompleted = 0

	if b.IOTime > 0 {
		t.State = StateBlocked
		sim.Schedule(&IOBurstCompletedEvent{time: e.time + b.IOTime, Thread: t, Burst: b})
		sim.emitFor(e.time, KindCPUBurstCompleted, t, "Transitioned from RUNNING to BLOCKED")
	} else {
		t.State = StateExit
		sim.Schedule(&ThreadCompletedEvent{time: e.time, Thread: t})
		sim.emitFor(e.time, KindCPUBurstCompleted, t, "Transitioned from RUNNING to EXIT")
	}

	sim.RunningThread = nil
	if sim.Ready.Size() > 0 {
		sim.Schedule(&DispatcherInvokedEvent{time: e.time})
	}
}

// ThreadPreemptedEvent marks a preemptive policy cutting a thread's
// dispatch short at the end of a quantum.
type ThreadPreemptedEvent struct {
	time   int64
	Thread *Thread
}

func (e *ThreadPreemptedEvent) Timestamp() int64 { return e.time }
func (e *ThreadPreemptedEvent) Kind() EventKind  { return KindThreadPreempted }
func (e *ThreadPreemptedEvent) ProcessID() int   { return e.Thread.ProcessID }
func (e *ThreadPreemptedEvent) ThreadID() int    { return e.Thread.ID }

// Execute implements the THREAD_PREEMPTED transition (spec §4.3).
func (e *ThreadPreemptedEvent) Execute(sim *Simulator) {
	t := e.Thread
	t.State = StateReady
	sim.RunningThread = nil
	sim.Ready.Push(t, e.time)
	sim.emitFor(e.time, KindThreadPreempted, t, "Transitioned from RUNNING to READY")
	sim.Schedule(&DispatcherInvokedEvent{time: e.time})
}

// IOBurstCompletedEvent marks a thread's I/O wait ending.
type IOBurstCompletedEvent struct {
	time   int64
	Thread *Thread
	Burst  Burst
}

func (e *IOBurstCompletedEvent) Timestamp() int64 { return e.time }
func (e *IOBurstCompletedEvent) Kind() EventKind  { return KindIOBurstCompleted }
func (e *IOBurstCompletedEvent) ProcessID() int   { return e.Thread.ProcessID }
func (e *IOBurstCompletedEvent) ThreadID() int    { return e.Thread.ID }

// Execute implements the IO_BURST_COMPLETED transition (spec §4.3).
func (e *IOBurstCompletedEvent) Execute(sim *Simulator) {
	t := e.Thread
	sim.Metrics.TotalIOTime += e.Burst.IOTime
	t.BurstIndex++
	t.State = StateReady
	sim.Ready.Push(t, e.time)
	sim.emitFor(e.time, KindIOBurstCompleted, t, "Transitioned from BLOCKED to READY")
	if sim.RunningThread == nil {
		sim.Schedule(&DispatcherInvokedEvent{time: e.time})
	}
}

// ThreadCompletedEvent marks a thread's final transition to EXIT.
type ThreadCompletedEvent struct {
	time   int64
	Thread *Thread
}

func (e *ThreadCompletedEvent) Timestamp() int64 { return e.time }
func (e *ThreadCompletedEvent) Kind() EventKind  { return KindThreadCompleted }
func (e *ThreadCompletedEvent) ProcessID() int   { return e.Thread.ProcessID }
func (e *ThreadCompletedEvent) ThreadID() int    { return e.Thread.ID }

// Execute implements the THREAD_COMPLETED transition (spec §4.3/§4.4).
func (e *ThreadCompletedEvent) Execute(sim *Simulator) {
	t := e.Thread
	sim.Metrics.TotalElapsedTime = e.time
	t.EndTime = e.time
	response := t.StartTime - t.ArrivalTime
	turnaround := t.EndTime - t.ArrivalTime
	sim.Metrics.RecordCompletion(t.Class, response, turnaround)
	sim.emitFor(e.time, KindThreadCompleted, t, "Recorded completion metrics for class")
}
