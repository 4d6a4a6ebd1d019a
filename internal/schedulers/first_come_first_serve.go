package schedulers

import "cpu-scheduler/internal/core"

// ScheduleFirstComeFirstServe runs processes in arrival order; equal arrivals
// keep their input order.
func ScheduleFirstComeFirstServe(processes []core.Process) (core.Timeline, []core.Process, error) {
	if err := Validate(processes); err != nil {
		return nil, nil, err
	}
	timeline, done := runToCompletion(FirstComeFirstServe, processes, byArrival)
	return timeline, done, nil
}
