// Package trace provides decision-trace recording for the scheduler core.
// This package has no dependency on sim — it stores pure data types so
// that both sim (the producer) and format (the consumer) can import it
// without a cycle.
package trace

// Record captures one event-handler transition for verbose output (spec
// §4.5/§6). Kind and Class are the exact identifier strings spec §3/§6
// name (e.g. "CPU_BURST_COMPLETED", "BATCH"), not numeric codes, so the
// formatter never has to know about sim's internal enums.
type Record struct {
	Time      int64
	Kind      string
	ThreadID  int
	ProcessID int
	Class     string
	Message   string
}

// ThreadSummary captures one thread's per-thread table row, emitted at
// finalization when per-thread output is enabled (spec §4.5/§6).
type ThreadSummary struct {
	ProcessID  int
	ThreadID   int
	Arrival    int64
	CPUDemand  int64 // sum of cpu_time across all of the thread's bursts
	IODemand   int64 // sum of io_time across all of the thread's bursts
	Turnaround int64 // End - Arrival
	End        int64
}
