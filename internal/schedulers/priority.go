package schedulers

import "cpu-scheduler/internal/core"

// SchedulePriority is non-preemptive priority scheduling. Lower values win.
func SchedulePriority(processes []core.Process) (core.Timeline, []core.Process, error) {
	if err := Validate(processes); err != nil {
		return nil, nil, err
	}
	timeline, done := runToCompletion(Priority, processes, byPriority)
	return timeline, done, nil
}

func SchedulePriorityPreemptive(processes []core.Process) (core.Timeline, []core.Process, error) {
	if err := Validate(processes); err != nil {
		return nil, nil, err
	}
	timeline, done := runPreemptive(PriorityPreemptive, processes, byPriority)
	return timeline, done, nil
}
