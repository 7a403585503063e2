// Tracks simulation-wide running totals and per-class completion counters,
// and finalizes them into a Report at the end of a run (spec §4.4).

package sim

// ClassStats accumulates the raw sums a class's completions contribute;
// Finalize divides these into averages.
type ClassStats struct {
	Count         int
	ResponseSum   int64
	TurnaroundSum int64
}

// Metrics aggregates running totals for a single simulation run. Only the
// event loop mutates it.
type Metrics struct {
	TotalElapsedTime   int64
	TotalServiceTime   int64
	TotalIOTime        int64
	TotalDispatchTime  int64

	ClassStats [NumClasses]ClassStats
}

// NewMetrics returns a zero-valued accumulator ready for a run.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordCompletion folds one thread's completion into its class's running
// sums. Called from the THREAD_COMPLETED handler.
func (m *Metrics) RecordCompletion(class Class, responseTime, turnaroundTime int64) {
	cs := &m.ClassStats[class]
	cs.Count++
	cs.ResponseSum += responseTime
	cs.TurnaroundSum += turnaroundTime
}

// ClassReport is one class's row in the final summary.
type ClassReport struct {
	Class               Class
	Count               int
	AvgResponseTime     float64
	AvgTurnaroundTime   float64
}

// Report is the finalized, read-only metrics record handed to the
// formatter at the end of a run.
type Report struct {
	TotalElapsedTime  int64
	TotalServiceTime  int64
	TotalIOTime       int64
	TotalDispatchTime int64
	TotalIdleTime     int64

	CPUUtilization float64
	CPUEfficiency  float64

	ClassReports [NumClasses]ClassReport
}

// Finalize computes idle time, utilization, efficiency, and per-class
// averages (substituting 0 when a class has no completions, per spec
// §4.4).
func (m *Metrics) Finalize() *Report {
	r := &Report{
		TotalElapsedTime:  m.TotalElapsedTime,
		TotalServiceTime:  m.TotalServiceTime,
		TotalIOTime:       m.TotalIOTime,
		TotalDispatchTime: m.TotalDispatchTime,
	}
	r.TotalIdleTime = m.TotalElapsedTime - m.TotalDispatchTime - m.TotalServiceTime

	if m.TotalElapsedTime > 0 {
		r.CPUUtilization = float64(m.TotalElapsedTime-r.TotalIdleTime) / float64(m.TotalElapsedTime)
		r.CPUEfficiency = float64(m.TotalServiceTime) / float64(m.TotalElapsedTime)
	}

	for c := 0; c < NumClasses; c++ {
		cs := m.ClassStats[c]
		cr := ClassReport{Class: Class(c), Count: cs.Count}
		if cs.Count > 0 {
			cr.AvgResponseTime = float64(cs.ResponseSum) / float64(cs.Count)
			cr.AvgTurnaroundTime = float64(cs.TurnaroundSum) / float64(cs.Count)
		}
		r.ClassReports[c] = cr
	}
	return r
}
