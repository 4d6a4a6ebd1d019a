package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// runToCompletion is the non-preemptive dispatch loop: at every decision point
// the eligible process minimizing key gets the cpu until its burst is done.
// When nothing is eligible the clock jumps to the next arrival.
func runToCompletion(name string, processes []core.Process, key selectionKey) (core.Timeline, []core.Process) {
	slog.Debug("running scheduler", slog.String("algorithm", name), slog.Int("processes", len(processes)))

	procs := core.Clone(processes)
	pending := append([]*core.Process(nil), procs...)
	timeline := make(core.Timeline, 0, len(procs))

	now := 0
	for len(pending) > 0 {
		i := key.pick(pending, now)
		if i == -1 {
			now = nextArrival(pending, now)
			continue
		}

		p := pending[i]
		pending = remove(pending, i)

		p.Dispatch(now)
		timeline.Append(p.ID, now, now+p.BurstTime)
		p.Execute(now, p.BurstTime)
		now += p.BurstTime
	}

	slog.Debug("scheduler finished", slog.String("algorithm", name), slog.Int("makespan", now))
	return timeline, core.Collect(procs)
}
