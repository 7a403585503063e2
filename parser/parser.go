// Package parser turns the line-based workload text format (spec §6) into
// a sim.Workload. It is an external collaborator: the core (package sim)
// never reads a file or a string directly.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/schedsim/schedsim/sim"
)

// lineReader yields tokenized, non-blank lines from the input, tracking
// line numbers for error messages. Blank lines are skipped transparently
// wherever they appear, per spec §6 ("Blank lines anywhere between records
// are ignored.").
type lineReader struct {
	scanner *bufio.Scanner
	lineNo  int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

// next returns the fields of the next non-blank line, or (nil, io.EOF) if
// the input is exhausted.
func (lr *lineReader) next() ([]string, error) {
	for lr.scanner.Scan() {
		lr.lineNo++
		line := strings.TrimSpace(lr.scanner.Text())
		if line == "" {
			continue
		}
		return strings.Fields(line), nil
	}
	if err := lr.scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lr.lineNo, err)
	}
	return nil, io.EOF
}

// errAt wraps an error with the line number it was found on.
func (lr *lineReader) errAt(format string, args ...any) error {
	return fmt.Errorf("line %d: %s", lr.lineNo, fmt.Sprintf(format, args...))
}

// ParseFile opens path and parses it as a workload file.
func ParseFile(path string) (*sim.Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workload file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a workload in the format described by spec §6 from r.
func Parse(r io.Reader) (*sim.Workload, error) {
	lr := newLineReader(r)

	header, err := lr.next()
	if err != nil {
		return nil, lr.errAt("expected header line: %v", err)
	}
	if len(header) != 3 {
		return nil, lr.errAt("header: expected 3 integers (num_processes thread_switch_overhead process_switch_overhead), got %d fields", len(header))
	}
	numProcesses, err := parseInt(header[0])
	if err != nil {
		return nil, lr.errAt("header: num_processes: %v", err)
	}
	threadSwitchOverhead, err := parseInt(header[1])
	if err != nil {
		return nil, lr.errAt("header: thread_switch_overhead: %v", err)
	}
	processSwitchOverhead, err := parseInt(header[2])
	if err != nil {
		return nil, lr.errAt("header: process_switch_overhead: %v", err)
	}

	processes := make([]*sim.Process, 0, numProcesses)
	for i := 0; i < numProcesses; i++ {
		proc, err := parseProcess(lr)
		if err != nil {
			return nil, fmt.Errorf("process %d: %w", i, err)
		}
		processes = append(processes, proc)
	}

	return sim.NewWorkload(processes, int64(threadSwitchOverhead), int64(processSwitchOverhead)), nil
}

func parseProcess(lr *lineReader) (*sim.Process, error) {
	fields, err := lr.next()
	if err != nil {
		return nil, lr.errAt("expected process header: %v", err)
	}
	if len(fields) != 3 {
		return nil, lr.errAt("process header: expected 3 integers (process_id process_class num_threads), got %d fields", len(fields))
	}
	procID, err := parseInt(fields[0])
	if err != nil {
		return nil, lr.errAt("process id: %v", err)
	}
	classVal, err := parseInt(fields[1])
	if err != nil {
		return nil, lr.errAt("process class: %v", err)
	}
	if classVal < 0 || classVal >= sim.NumClasses {
		return nil, lr.errAt("process class: %d out of range [0,%d)", classVal, sim.NumClasses)
	}
	numThreads, err := parseInt(fields[2])
	if err != nil {
		return nil, lr.errAt("num_threads: %v", err)
	}

	proc := &sim.Process{ID: procID, Class: sim.Class(classVal)}
	for i := 0; i < numThreads; i++ {
		thr, err := parseThread(lr, i)
		if err != nil {
			return nil, fmt.Errorf("thread %d: %w", i, err)
		}
		proc.Threads = append(proc.Threads, thr)
	}
	return proc, nil
}

func parseThread(lr *lineReader, threadID int) (*sim.Thread, error) {
	fields, err := lr.next()
	if err != nil {
		return nil, lr.errAt("expected thread header: %v", err)
	}
	if len(fields) != 2 {
		return nil, lr.errAt("thread header: expected 2 integers (arrival_time num_bursts), got %d fields", len(fields))
	}
	arrival, err := parseInt(fields[0])
	if err != nil {
		return nil, lr.errAt("arrival_time: %v", err)
	}
	numBursts, err := parseInt(fields[1])
	if err != nil {
		return nil, lr.errAt("num_bursts: %v", err)
	}
	if numBursts <= 0 {
		return nil, lr.errAt("num_bursts: must be positive, got %d", numBursts)
	}

	thr := &sim.Thread{ID: threadID, ArrivalTime: int64(arrival)}
	for i := 0; i < numBursts; i++ {
		b, err := parseBurst(lr)
		if err != nil {
			return nil, fmt.Errorf("burst %d: %w", i, err)
		}
		thr.Bursts = append(thr.Bursts, b)
	}
	return thr, nil
}

// parseBurst reads "cpu_time io_time", or a single "cpu_time" token, in
// which case io_time defaults to 0 (spec §6: the terminal-burst shorthand).
func parseBurst(lr *lineReader) (sim.Burst, error) {
	fields, err := lr.next()
	if err != nil {
		return sim.Burst{}, lr.errAt("expected burst line: %v", err)
	}
	if len(fields) != 1 && len(fields) != 2 {
		return sim.Burst{}, lr.errAt("burst: expected 1 or 2 integers, got %d fields", len(fields))
	}
	cpu, err := parseInt(fields[0])
	if err != nil {
		return sim.Burst{}, lr.errAt("cpu_time: %v", err)
	}
	io := 0
	if len(fields) == 2 {
		io, err = parseInt(fields[1])
		if err != nil {
			return sim.Burst{}, lr.errAt("io_time: %v", err)
		}
	}
	return sim.Burst{CPUTime: int64(cpu), IOTime: int64(io)}, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}
