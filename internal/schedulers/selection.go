package schedulers

import "cpu-scheduler/internal/core"

// selectionKey is the value a discipline minimizes when picking the next process.
type selectionKey func(p *core.Process) int

func byArrival(p *core.Process) int   { return p.ArrivalTime }
func byBurst(p *core.Process) int     { return p.BurstTime }
func byRemaining(p *core.Process) int { return p.RemainingTime }
func byPriority(p *core.Process) int  { return p.Priority }

// less orders by key, then earliest arrival, then input order.
func (k selectionKey) less(a, b *core.Process) bool {
	if ka, kb := k(a), k(b); ka != kb {
		return ka < kb
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Order() < b.Order()
}

// pick returns the index of the best eligible process at now, or -1.
func (k selectionKey) pick(pending []*core.Process, now int) int {
	best := -1
	for i, p := range pending {
		if p.ArrivalTime > now {
			continue
		}
		if best == -1 || k.less(p, pending[best]) {
			best = i
		}
	}
	return best
}

// nextArrival returns the earliest arrival in pending that is after now, or -1.
func nextArrival(pending []*core.Process, now int) int {
	next := -1
	for _, p := range pending {
		if p.ArrivalTime > now && (next == -1 || p.ArrivalTime < next) {
			next = p.ArrivalTime
		}
	}
	return next
}

func remove(pending []*core.Process, i int) []*core.Process {
	return append(pending[:i], pending[i+1:]...)
}
