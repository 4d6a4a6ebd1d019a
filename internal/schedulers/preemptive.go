package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// runPreemptive re-evaluates the choice whenever a process arrives or finishes.
// Between those events a per-unit decision would always keep the running
// process, so each run between them becomes one slice. The running process
// keeps the cpu on equal keys.
func runPreemptive(name string, processes []core.Process, key selectionKey) (core.Timeline, []core.Process) {
	slog.Debug("running scheduler", slog.String("algorithm", name), slog.Int("processes", len(processes)))

	procs := core.Clone(processes)
	incomplete := append([]*core.Process(nil), procs...)
	timeline := make(core.Timeline, 0, len(procs))

	var current *core.Process
	now := 0
	for len(incomplete) > 0 {
		i := key.pick(incomplete, now)
		if i == -1 {
			now = nextArrival(incomplete, now)
			continue
		}

		next := incomplete[i]
		if current != nil && next != current && key(current) == key(next) {
			next = current
		}
		if current != nil && next != current {
			slog.Debug("preempted",
				slog.String("algorithm", name),
				slog.Int("pid", current.ID),
				slog.Int("by", next.ID),
				slog.Int("time", now),
			)
		}
		current = next
		current.Dispatch(now)

		run := current.RemainingTime
		if arrival := nextArrival(incomplete, now); arrival != -1 && arrival-now < run {
			run = arrival - now
		}
		timeline.Append(current.ID, now, now+run)
		current.Execute(now, run)
		now += run

		if current.Finished() {
			incomplete = removeProcess(incomplete, current)
			current = nil
		}
	}

	slog.Debug("scheduler finished", slog.String("algorithm", name), slog.Int("makespan", now))
	return timeline, core.Collect(procs)
}

func removeProcess(pending []*core.Process, p *core.Process) []*core.Process {
	for i := range pending {
		if pending[i] == p {
			return remove(pending, i)
		}
	}
	panic("schedulers: process not pending")
}
