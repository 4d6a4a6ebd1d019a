package requests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestScheduleRequests_Processes(t *testing.T) {
	var r ScheduleRequests
	body := `{"jobs":[{"process_id":2,"arrival_time":1,"burst_time":3},{"process_id":1,"arrival_time":0,"burst_time":5,"priority":2}],"time_quantum":4}`
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	processes := r.Processes()

	require.Len(t, processes, 2)
	assert.Equal(t, 4, r.TimeQuantum)
	assert.Equal(t, 2, processes[0].ID)
	assert.Equal(t, 0, processes[0].Priority)
	assert.Equal(t, 3, processes[0].RemainingTime)
	assert.Equal(t, core.NotStarted, processes[0].StartTime)
	assert.Equal(t, 2, processes[1].Priority)
}

func TestFromProcesses(t *testing.T) {
	r := FromProcesses([]core.Process{core.NewProcess(5, 2, 3, 1)}, 2)

	assert.Equal(t, ScheduleRequests{
		Jobs:        []Job{{ProcessId: 5, ArrivalTime: 2, BurstTime: 3, Priority: 1}},
		TimeQuantum: 2,
	}, r)
}
