package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordCompletion_AccumulatesPerClass(t *testing.T) {
	m := NewMetrics()
	m.RecordCompletion(ClassInteractive, 5, 20)
	m.RecordCompletion(ClassInteractive, 15, 30)
	m.RecordCompletion(ClassBatch, 100, 200)

	assert.Equal(t, 2, m.ClassStats[ClassInteractive].Count)
	assert.Equal(t, int64(20), m.ClassStats[ClassInteractive].ResponseSum)
	assert.Equal(t, int64(50), m.ClassStats[ClassInteractive].TurnaroundSum)
	assert.Equal(t, 1, m.ClassStats[ClassBatch].Count)
}

func TestMetrics_Finalize_AveragesAndZeroForEmptyClasses(t *testing.T) {
	m := NewMetrics()
	m.RecordCompletion(ClassSystem, 10, 40)
	m.RecordCompletion(ClassSystem, 20, 60)

	r := m.Finalize()

	sys := r.ClassReports[ClassSystem]
	assert.Equal(t, 2, sys.Count)
	assert.Equal(t, 15.0, sys.AvgResponseTime)
	assert.Equal(t, 50.0, sys.AvgTurnaroundTime)

	batch := r.ClassReports[ClassBatch]
	assert.Equal(t, 0, batch.Count)
	assert.Equal(t, 0.0, batch.AvgResponseTime)
	assert.Equal(t, 0.0, batch.AvgTurnaroundTime)
}

func TestMetrics_Finalize_IdleTimeAndUtilization(t *testing.T) {
	m := NewMetrics()
	m.TotalElapsedTime = 100
	m.TotalServiceTime = 50
	m.TotalDispatchTime = 10

	r := m.Finalize()

	assert.Equal(t, int64(40), r.TotalIdleTime) // 100 - 10 - 50
	assert.InDelta(t, 0.6, r.CPUUtilization, 1e-9)
	assert.InDelta(t, 0.5, r.CPUEfficiency, 1e-9)
}

func TestMetrics_Finalize_ZeroElapsedTimeNoDivideByZero(t *testing.T) {
	r := NewMetrics().Finalize()
	assert.Equal(t, 0.0, r.CPUUtilization)
	assert.Equal(t, 0.0, r.CPUEfficiency)
}
