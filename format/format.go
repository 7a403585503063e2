// Package format renders a sim/trace record stream and a sim.Report into
// the exact text artifacts spec §6 describes. It is an external
// collaborator: sim never formats text itself, matching the contract
// described in spec.md §1 ("the formatter consumes a stream of trace
// records and a final metrics record").
package format

import (
	"fmt"
	"io"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

// WriteVerbose renders one block per transition record, in the layout of
// spec §6:
//
//	At time <t>:
//	    <EVENT_KIND_NAME>
//	    Thread <tid> in process <pid> [<CLASS>]
//	    <message>
//	<blank>
func WriteVerbose(w io.Writer, records []trace.Record) error {
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "At time %d:\n", r.Time); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "    %s\n", r.Kind); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "    Thread %d in process %d [%s]\n", r.ThreadID, r.ProcessID, r.Class); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "    %s\n\n", r.Message); err != nil {
			return err
		}
	}
	return nil
}

const (
	labelWidth = 20
	valueWidth = 13
)

// WriteSummary renders the final report: one block per class (count,
// average response time, average turnaround time, both 2-decimal fixed),
// followed by the run totals and the two percentage figures (spec §6).
func WriteSummary(w io.Writer, r *sim.Report) error {
	for _, cr := range r.ClassReports {
		if _, err := fmt.Fprintf(w, "Class %s:\n", cr.Class); err != nil {
			return err
		}
		if err := writeRow(w, "  Count:", fmt.Sprintf("%d", cr.Count)); err != nil {
			return err
		}
		if err := writeRow(w, "  Avg response time:", fmt.Sprintf("%.2f", cr.AvgResponseTime)); err != nil {
			return err
		}
		if err := writeRow(w, "  Avg turnaround time:", fmt.Sprintf("%.2f", cr.AvgTurnaroundTime)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	rows := []struct {
		label string
		value string
	}{
		{"Total elapsed time:", fmt.Sprintf("%d", r.TotalElapsedTime)},
		{"Total service time:", fmt.Sprintf("%d", r.TotalServiceTime)},
		{"Total I/O time:", fmt.Sprintf("%d", r.TotalIOTime)},
		{"Total dispatch time:", fmt.Sprintf("%d", r.TotalDispatchTime)},
		{"Total idle time:", fmt.Sprintf("%d", r.TotalIdleTime)},
	}
	for _, row := range rows {
		if err := writeRow(w, row.label, row.value); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if err := writeRow(w, "CPU utilization:", fmt.Sprintf("%.2f", r.CPUUtilization*100)); err != nil {
		return err
	}
	if err := writeRow(w, "CPU efficiency:", fmt.Sprintf("%.2f", r.CPUEfficiency*100)); err != nil {
		return err
	}
	return nil
}

func writeRow(w io.Writer, label, value string) error {
	_, err := fmt.Fprintf(w, "%-*s%*s\n", labelWidth, label, valueWidth, value)
	return err
}

// WritePerThread renders the per-thread table: one line per thread, ARR,
// CPU (sum of cpu_time), I/O (sum of io_time), TRT (turnaround), END,
// grouped per process in process order (spec §6).
func WritePerThread(w io.Writer, workload *sim.Workload, summaries []trace.ThreadSummary) error {
	byProcess := make(map[int][]trace.ThreadSummary)
	for _, s := range summaries {
		byProcess[s.ProcessID] = append(byProcess[s.ProcessID], s)
	}

	for _, p := range workload.Processes {
		if _, err := fmt.Fprintf(w, "Process %d [%s]:\n", p.ID, p.Class); err != nil {
			return err
		}
		for _, s := range byProcess[p.ID] {
			if _, err := fmt.Fprintf(w,
				"  Thread %-4d ARR=%-8d CPU=%-8d I/O=%-8d TRT=%-8d END=%-8d\n",
				s.ThreadID, s.Arrival, s.CPUDemand, s.IODemand, s.Turnaround, s.End,
			); err != nil {
				return err
			}
		}
	}
	return nil
}
