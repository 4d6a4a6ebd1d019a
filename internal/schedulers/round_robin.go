package schedulers

import (
	"log/slog"
	"sort"

	"cpu-scheduler/internal/core"
)

// processQueue is the FIFO ready queue of round robin.
type processQueue struct {
	queue []*core.Process
}

func (q *processQueue) AddToEnd(p *core.Process) {
	q.queue = append(q.queue, p)
}

func (q *processQueue) RemoveFromTop() (*core.Process, bool) {
	if len(q.queue) == 0 {
		return nil, false
	}
	p := q.queue[0]
	q.queue = q.queue[1:]
	return p, true
}

func (q *processQueue) Len() int {
	return len(q.queue)
}

// ScheduleRoundRobin grants each dispatch at most timeQuantum units. Processes
// that arrive while a slice runs are queued before the preempted one.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (core.Timeline, []core.Process, error) {
	if err := validateQuantum(timeQuantum); err != nil {
		return nil, nil, err
	}
	if err := Validate(processes); err != nil {
		return nil, nil, err
	}
	slog.Debug("running scheduler",
		slog.String("algorithm", RoundRobin),
		slog.Int("processes", len(processes)),
		slog.Int("time_quantum", timeQuantum),
	)

	procs := core.Clone(processes)
	arrivals := append([]*core.Process(nil), procs...)
	sort.SliceStable(arrivals, func(i, j int) bool {
		return arrivals[i].ArrivalTime < arrivals[j].ArrivalTime
	})

	var (
		ready    processQueue
		timeline = make(core.Timeline, 0, len(procs))
		next     int
		now      int
	)
	admit := func() {
		for next < len(arrivals) && arrivals[next].ArrivalTime <= now {
			ready.AddToEnd(arrivals[next])
			next++
		}
	}

	for next < len(arrivals) || ready.Len() > 0 {
		admit()
		p, ok := ready.RemoveFromTop()
		if !ok {
			now = arrivals[next].ArrivalTime
			continue
		}

		p.Dispatch(now)
		slice := min(timeQuantum, p.RemainingTime)
		timeline.Append(p.ID, now, now+slice)
		p.Execute(now, slice)
		now += slice

		admit()
		if !p.Finished() {
			ready.AddToEnd(p)
		}
	}

	slog.Debug("scheduler finished", slog.String("algorithm", RoundRobin), slog.Int("makespan", now))
	return timeline, core.Collect(procs), nil
}
