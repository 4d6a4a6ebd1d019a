package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/responses"
)

func TestCalculateAverage(t *testing.T) {
	details := []responses.ProcessResponse{
		{ProcessId: 1, WaitingTime: 0, ResponseTime: 0, TurnAroundTime: 5},
		{ProcessId: 2, WaitingTime: 4, ResponseTime: 3, TurnAroundTime: 7},
	}

	wait, response, turnaround := CalculateAverage(details)

	assert.InDelta(t, 2.0, wait, 1e-9)
	assert.InDelta(t, 1.5, response, 1e-9)
	assert.InDelta(t, 6.0, turnaround, 1e-9)
}

func TestCalculateAverage_Empty(t *testing.T) {
	wait, response, turnaround := CalculateAverage(nil)

	assert.Zero(t, wait)
	assert.Zero(t, response)
	assert.Zero(t, turnaround)
}
