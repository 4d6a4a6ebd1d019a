package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// Algorithm names as used by the api and the cli.
const (
	FirstComeFirstServe        = "fcfs"
	ShortestJobFirst           = "sjf"
	ShortestRemainingTimeFirst = "srtf"
	RoundRobin                 = "rr"
	Priority                   = "priority"
	PriorityPreemptive         = "priority-preemptive"
)

// Algorithms lists every supported algorithm in presentation order.
var Algorithms = []string{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTimeFirst,
	RoundRobin,
	Priority,
	PriorityPreemptive,
}

var titles = map[string]string{
	FirstComeFirstServe:        "First-come, first-serve",
	ShortestJobFirst:           "Shortest-job-first",
	ShortestRemainingTimeFirst: "Shortest-remaining-time-first",
	RoundRobin:                 "Round-robin",
	Priority:                   "Priority",
	PriorityPreemptive:         "Priority (preemptive)",
}

// Title returns a human readable name, or the name itself if it is unknown.
func Title(algorithm string) string {
	if t, ok := titles[algorithm]; ok {
		return t
	}
	return algorithm
}

// Result is the outcome of one algorithm run.
type Result struct {
	Algorithm   string
	TimeQuantum int
	Timeline    core.Timeline
	Processes   []core.Process
}

// Run executes the named algorithm. timeQuantum is only read by round robin.
func Run(algorithm string, processes []core.Process, timeQuantum int) (Result, error) {
	var (
		timeline core.Timeline
		done     []core.Process
		err      error
	)
	switch algorithm {
	case FirstComeFirstServe:
		timeline, done, err = ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		timeline, done, err = ScheduleShortestJobFirst(processes)
	case ShortestRemainingTimeFirst:
		timeline, done, err = ScheduleShortestRemainingTimeFirst(processes)
	case RoundRobin:
		timeline, done, err = ScheduleRoundRobin(processes, timeQuantum)
	case Priority:
		timeline, done, err = SchedulePriority(processes)
	case PriorityPreemptive:
		timeline, done, err = SchedulePriorityPreemptive(processes)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", algorithm, err)
	}

	result := Result{Algorithm: algorithm, Timeline: timeline, Processes: done}
	if algorithm == RoundRobin {
		result.TimeQuantum = timeQuantum
	}
	return result, nil
}

// RunAll runs each algorithm on its own copy of processes. It stops at the first failure.
func RunAll(algorithms []string, processes []core.Process, timeQuantum int) ([]Result, error) {
	results := make([]Result, 0, len(algorithms))
	for _, algorithm := range algorithms {
		result, err := Run(algorithm, processes, timeQuantum)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
