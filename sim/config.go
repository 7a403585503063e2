package sim

// Config selects the scheduling policy and its static parameters for a
// run. Overheads live on Workload (they come from the workload file's
// header line, not the CLI); Config carries what the CLI contributes.
type Config struct {
	Algorithm Algorithm
	// Quantum is RR's static time slice. CUSTOM ignores it and recomputes
	// its own dynamic quantum from the adaptive ready queue instead (spec
	// §4.2); FCFS and PRIORITY ignore it entirely since they never
	// preempt.
	Quantum int64
}

// NewConfig returns a Config with the given algorithm and RR quantum.
func NewConfig(alg Algorithm, quantum int64) Config {
	return Config{Algorithm: alg, Quantum: quantum}
}
