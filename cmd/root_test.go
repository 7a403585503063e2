package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
)

// resetFlags restores the package-level flag variables to runCmd's
// registered defaults. rootCmd/runCmd are process-wide singletons (cobra's
// usual wiring), so tests that run the CLI more than once must reset state
// a prior run's explicit flags would otherwise leak into the next.
func resetFlags(t *testing.T) {
	algorithm = string(sim.AlgorithmFCFS)
	quantum = 10
	verbose = false
	perThread = false
	logLevel = "error"
	t.Cleanup(func() {
		algorithm = string(sim.AlgorithmFCFS)
		quantum = 10
		verbose = false
		perThread = false
		logLevel = "error"
	})
}

func writeWorkload(t *testing.T, contents string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "workload.txt")
	writeFile(t, path, contents)
	return path
}

const oneThreadWorkload = "1 0 0\n0 0 1\n0 1\n10\n"

func TestRun_FCFSDefault_PrintsSummary(t *testing.T) {
	resetFlags(t)
	path := writeWorkload(t, oneThreadWorkload)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", path})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "Class SYSTEM:")
	assert.Contains(t, out.String(), "Total elapsed time:")
	assert.Contains(t, out.String(), "CPU utilization:")
}

func TestRun_VerboseFlag_IncludesTransitionTrace(t *testing.T) {
	resetFlags(t)
	path := writeWorkload(t, oneThreadWorkload)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", "--verbose", path})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "THREAD_ARRIVED")
	assert.Contains(t, out.String(), "At time 0:")
}

func TestRun_PerThreadFlag_IncludesPerThreadTable(t *testing.T) {
	resetFlags(t)
	path := writeWorkload(t, oneThreadWorkload)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", "--per_thread", path})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "Process 0 [SYSTEM]:")
	assert.Contains(t, out.String(), "Thread 0")
}

func TestRun_UnknownAlgorithm_ReturnsError(t *testing.T) {
	resetFlags(t)
	path := writeWorkload(t, oneThreadWorkload)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", "-a", "NOT_REAL", path})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown algorithm")
}

func TestRun_MissingWorkloadFile_ReturnsError(t *testing.T) {
	resetFlags(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", "/nonexistent/workload.txt"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening workload file")
}

func TestRun_NoPositionalArgument_ReturnsError(t *testing.T) {
	resetFlags(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run"})
	err := rootCmd.Execute()
	require.Error(t, err)
}

func TestRun_RRWithQuantumFlag_Succeeds(t *testing.T) {
	resetFlags(t)
	path := writeWorkload(t, "1 0 0\n0 2 1\n0 1\n25\n")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", "-a", "RR", "-q", "10", path})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Class NORMAL:")
}
