package schedulers

import "cpu-scheduler/internal/core"

// ScheduleShortestJobFirst is non-preemptive: the arrived process with the
// smallest burst runs to completion.
func ScheduleShortestJobFirst(processes []core.Process) (core.Timeline, []core.Process, error) {
	if err := Validate(processes); err != nil {
		return nil, nil, err
	}
	timeline, done := runToCompletion(ShortestJobFirst, processes, byBurst)
	return timeline, done, nil
}

// ScheduleShortestRemainingTimeFirst is preemptive SJF: a newly arrived process
// with strictly less remaining time takes the cpu from the running one.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) (core.Timeline, []core.Process, error) {
	if err := Validate(processes); err != nil {
		return nil, nil, err
	}
	timeline, done := runPreemptive(ShortestRemainingTimeFirst, processes, byRemaining)
	return timeline, done, nil
}
