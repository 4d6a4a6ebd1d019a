package main

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/schedulers"
)

func writeProcesses(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "processes.csv")
	body := "id,arrival_time,burst_time,priority\n1,0,5,2\n2,1,3,1\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_Local(t *testing.T) {
	exportDir := t.TempDir()
	var out bytes.Buffer

	err := run([]string{"-algorithms", "fcfs, rr", "-quantum", "2", "-export", exportDir, writeProcesses(t)}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "First-come, first-serve")
	assert.Contains(t, out.String(), "Round-robin (quantum 2)")
	assert.NotContains(t, out.String(), "Shortest-job-first")

	data, err := os.ReadFile(filepath.Join(exportDir, "fcfs.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"id,arrival_time,burst_time,priority,waiting_time,turnaround_time,completion_time,response_time\n"+
			"1,0,5,2,0,5,5,0\n"+
			"2,1,3,1,4,7,8,4\n",
		string(data))
	assert.FileExists(t, filepath.Join(exportDir, "rr.csv"))
}

func TestRun_DefaultAlgorithms(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run([]string{writeProcesses(t)}, &out))

	for _, algorithm := range schedulers.Algorithms {
		assert.Contains(t, out.String(), schedulers.Title(algorithm))
	}
}

func TestRun_Remote(t *testing.T) {
	httpmock.Activate(t)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, "http://scheduler.test/api/v1/all",
		httpmock.NewStringResponder(http.StatusOK,
			`[{"algorithm":"sjf","total_time":8,"timeline":[{"process_id":1,"start":0,"end":5},{"process_id":2,"start":5,"end":8}],"details":[{"process_id":1,"burst_time":5},{"process_id":2,"burst_time":3}]}]`))

	var out bytes.Buffer
	err := run([]string{"-server", "http://scheduler.test", "-algorithms", "sjf", writeProcesses(t)}, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Shortest-job-first")
	assert.Contains(t, out.String(), "|   P1   |   P2   |")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "no file", args: nil, want: ErrInvalidArgs},
		{name: "unknown flag", args: []string{"-bogus", "x.csv"}, want: ErrInvalidArgs},
		{name: "unknown algorithm", args: []string{"-algorithms", "lottery", writeProcesses(t)}, want: schedulers.ErrUnknownAlgorithm},
		{name: "bad quantum", args: []string{"-algorithms", "rr", "-quantum", "-1", writeProcesses(t)}, want: schedulers.ErrInvalidQuantum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, &bytes.Buffer{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	err := run([]string{filepath.Join(t.TempDir(), "missing.csv")}, &bytes.Buffer{})

	assert.ErrorIs(t, err, os.ErrNotExist)
}
