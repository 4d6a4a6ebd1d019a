package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcess(t *testing.T) {
	p := NewProcess(3, 2, 5, 1)

	assert.Equal(t, 5, p.RemainingTime)
	assert.Equal(t, NotStarted, p.StartTime)
	assert.Equal(t, NotStarted, p.ResponseTime)
	assert.Zero(t, p.CompletionTime)
	assert.Zero(t, p.WaitingTime)
	assert.False(t, p.Finished())
}

func TestProcess_DispatchOnlyOnce(t *testing.T) {
	p := NewProcess(1, 2, 4, 0)

	p.Dispatch(3)
	p.Dispatch(7)

	assert.Equal(t, 3, p.StartTime)
	assert.Equal(t, 1, p.ResponseTime)
}

func TestProcess_Execute(t *testing.T) {
	p := NewProcess(1, 1, 4, 0)
	p.Dispatch(2)

	p.Execute(2, 3)
	assert.Equal(t, 1, p.RemainingTime)
	assert.Zero(t, p.CompletionTime)

	p.Execute(8, 1)
	assert.True(t, p.Finished())
	assert.Equal(t, 9, p.CompletionTime)
	assert.Equal(t, 8, p.TurnaroundTime)
	assert.Equal(t, 4, p.WaitingTime)
}

func TestProcess_ExecuteOutOfRangePanics(t *testing.T) {
	p := NewProcess(1, 0, 2, 0)

	assert.Panics(t, func() { p.Execute(0, 3) })
	assert.Panics(t, func() { p.Execute(0, 0) })
}

func TestCloneAndCollect(t *testing.T) {
	input := []Process{NewProcess(7, 0, 3, 0), NewProcess(4, 1, 2, 0)}
	input[0].WaitingTime = 99

	clones := Clone(input)
	require.Len(t, clones, 2)
	assert.Zero(t, clones[0].WaitingTime)
	assert.Equal(t, 1, clones[1].Order())

	clones[1].Dispatch(5)
	clones[0], clones[1] = clones[1], clones[0]
	out := Collect(clones)

	assert.Equal(t, 7, out[0].ID)
	assert.Equal(t, 4, out[1].ID)
	assert.Equal(t, 5, out[1].StartTime)
	assert.Equal(t, NotStarted, input[1].StartTime)
}

func TestTimeline_Append(t *testing.T) {
	var tl Timeline

	tl.Append(1, 0, 2)
	tl.Append(1, 2, 3)
	tl.Append(2, 5, 6)
	tl.Append(1, 6, 8)

	assert.Equal(t, Timeline{{1, 0, 3}, {2, 5, 6}, {1, 6, 8}}, tl)
	assert.Equal(t, 6, tl.BusyTime())
	assert.Equal(t, 8, tl.Makespan())
	assert.Equal(t, 2, tl.IdleTime())
	assert.Equal(t, []Slice{{1, 0, 3}, {1, 6, 8}}, tl.SlicesOf(1))
}

func TestTimeline_AppendMalformedPanics(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
	}{
		{name: "empty", start: 4, end: 4},
		{name: "inverted", start: 5, end: 4},
		{name: "overlap", start: 1, end: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := Timeline{{ProcessID: 1, Start: 0, End: 3}}
			assert.Panics(t, func() { tl.Append(2, tt.start, tt.end) })
		})
	}
}

func TestTimeline_Empty(t *testing.T) {
	var tl Timeline

	assert.Zero(t, tl.Makespan())
	assert.Zero(t, tl.IdleTime())
}
