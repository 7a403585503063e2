package sim

import "fmt"

// Algorithm names a scheduling policy chosen on the command line.
type Algorithm string

const (
	AlgorithmFCFS     Algorithm = "FCFS"
	AlgorithmRR       Algorithm = "RR"
	AlgorithmPriority Algorithm = "PRIORITY"
	AlgorithmCustom   Algorithm = "CUSTOM"
)

// ParseAlgorithm validates a CLI/config token against the four supported
// policies. Unlike the historical downgrade-to-CUSTOM behavior spec §7
// allows as an implementer's choice, this implementation rejects unknown
// tokens (see DESIGN.md Open Questions).
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmFCFS, AlgorithmRR, AlgorithmPriority, AlgorithmCustom:
		return Algorithm(s), nil
	default:
		return "", fmt.Errorf("unknown algorithm %q: must be one of FCFS, RR, PRIORITY, CUSTOM", s)
	}
}

// NewReadyQueue constructs the ready-queue implementation a policy uses.
func NewReadyQueue(alg Algorithm) ReadyQueue {
	switch alg {
	case AlgorithmFCFS, AlgorithmRR:
		return NewSingleFIFOQueue()
	case AlgorithmPriority:
		return NewClassFIFOQueue()
	case AlgorithmCustom:
		return NewAdaptiveQueue()
	default:
		panic(fmt.Sprintf("NewReadyQueue: unhandled algorithm %q", alg))
	}
}

// Preemptive reports whether a policy ends a dispatch early at a quantum
// boundary (RR, CUSTOM) or always runs a burst to completion (FCFS,
// PRIORITY).
func Preemptive(alg Algorithm) bool {
	switch alg {
	case AlgorithmRR, AlgorithmCustom:
		return true
	default:
		return false
	}
}
