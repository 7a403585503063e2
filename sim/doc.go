// Package sim provides the core discrete-event simulation engine for the
// CPU scheduler simulator.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - model.go: Process/Thread/Burst, the immutable workload description
//   - event.go: the eight event kinds and their deterministic tie-break order
//   - readyqueue.go, readyqueue_fifo.go, readyqueue_adaptive.go: the
//     policy-specific ready-queue implementations (FCFS/RR single FIFO,
//     PRIORITY class FIFO, CUSTOM adaptive dual-tier)
//   - simulator.go: the event loop and the thread-lifecycle transition handlers
//   - metrics.go: running accumulators and the final report
//
// # Architecture
//
// sim is the core; it has no knowledge of text formats or files. Two
// external collaborators sit on either side of it:
//   - parser: turns a workload text file into a Workload
//   - format: turns a trace.Record stream and a Report into the text
//     artifacts described by the CLI's --verbose/--per_thread output
//
// sim/trace holds pure data types shared between sim and format; it has no
// dependency on sim itself.
package sim
