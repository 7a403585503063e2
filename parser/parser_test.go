package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
)

func TestParse_SingleProcessSingleThreadSingleBurst(t *testing.T) {
	input := `1 3 6
0 0 1
0 1
10 0
`
	w, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, int64(3), w.ThreadSwitchOverhead)
	assert.Equal(t, int64(6), w.ProcessSwitchOverhead)
	require.Len(t, w.Processes, 1)

	p := w.Processes[0]
	assert.Equal(t, 0, p.ID)
	assert.Equal(t, sim.ClassSystem, p.Class)
	require.Len(t, p.Threads, 1)

	th := p.Threads[0]
	assert.Equal(t, 0, th.ID)
	assert.Equal(t, int64(0), th.ArrivalTime)
	require.Len(t, th.Bursts, 1)
	assert.Equal(t, sim.Burst{CPUTime: 10, IOTime: 0}, th.Bursts[0])
}

func TestParse_TerminalBurstShorthand_DefaultsIOToZero(t *testing.T) {
	input := `1 0 0
0 2 1
0 2
5 3
7
`
	w, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	th := w.Processes[0].Threads[0]
	require.Len(t, th.Bursts, 2)
	assert.Equal(t, sim.Burst{CPUTime: 5, IOTime: 3}, th.Bursts[0])
	assert.Equal(t, sim.Burst{CPUTime: 7, IOTime: 0}, th.Bursts[1])
}

func TestParse_MultiProcessMultiThread_AssignsOrdinalThreadIDs(t *testing.T) {
	input := `2 1 2
0 0 2
0 1
3
5 1
4
1 3 1
2 1
6
`
	w, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, w.Processes, 2)

	p0 := w.Processes[0]
	require.Len(t, p0.Threads, 2)
	assert.Equal(t, 0, p0.Threads[0].ID)
	assert.Equal(t, 1, p0.Threads[1].ID)

	p1 := w.Processes[1]
	require.Len(t, p1.Threads, 1)
	assert.Equal(t, 0, p1.Threads[0].ID)
	assert.Equal(t, sim.ClassBatch, p1.Class)
}

func TestParse_BlankLinesAnywhere_AreIgnored(t *testing.T) {
	input := "1 0 0\n\n0 0 1\n\n0 1\n\n9\n\n"
	w, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, sim.Burst{CPUTime: 9}, w.Processes[0].Threads[0].Bursts[0])
}

func TestParse_HeaderWrongFieldCount_ReturnsLineNumberedError(t *testing.T) {
	_, err := Parse(strings.NewReader("1 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), "header")
}

func TestParse_HeaderNonInteger_ReturnsError(t *testing.T) {
	_, err := Parse(strings.NewReader("one 0 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParse_ProcessClassOutOfRange_ReturnsError(t *testing.T) {
	input := `1 0 0
0 99 1
0 1
1
`
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestParse_ProcessHeaderWrongFieldCount_ReturnsError(t *testing.T) {
	input := "1 0 0\n0 0\n"
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "process header")
}

func TestParse_ThreadHeaderWrongFieldCount_ReturnsError(t *testing.T) {
	input := "1 0 0\n0 0 1\n0\n"
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thread header")
}

func TestParse_NumBurstsNotPositive_ReturnsError(t *testing.T) {
	input := "1 0 0\n0 0 1\n0 0\n"
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "num_bursts")
}

func TestParse_BurstWrongFieldCount_ReturnsError(t *testing.T) {
	input := "1 0 0\n0 0 1\n0 1\n1 2 3\n"
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "burst")
}

func TestParse_BurstNonInteger_ReturnsError(t *testing.T) {
	input := "1 0 0\n0 0 1\n0 1\nfive\n"
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cpu_time")
}

func TestParse_TruncatedInput_ReturnsEOFWrappedError(t *testing.T) {
	_, err := Parse(strings.NewReader("2 0 0\n0 0 1\n0 1\n1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "process 1")
}

func TestParseFile_MissingFile_ReturnsError(t *testing.T) {
	_, err := ParseFile("/nonexistent/path/workload.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening workload file")
}
